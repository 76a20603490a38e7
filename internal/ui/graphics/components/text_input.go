package components

import (
	"fmt"
	"strconv"
	"unicode"

	"habiter/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// NumberInput is a single-line field that only accepts digits.
type NumberInput struct {
	X, Y          int
	Width, Height int
	Label         string
	Text          string
	MaxLength     int
	Focused       bool
	cursorBlink   int
}

func NewNumberInput(x, y, width, height int, label string) *NumberInput {
	return &NumberInput{
		X:         x,
		Y:         y,
		Width:     width,
		Height:    height,
		Label:     label,
		MaxLength: 5,
	}
}

func (ni *NumberInput) Update() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		ni.Focused = mx >= ni.X && mx < ni.X+ni.Width && my >= ni.Y && my < ni.Y+ni.Height
	}

	if !ni.Focused {
		return
	}

	ni.cursorBlink++

	var runes []rune
	runes = ebiten.AppendInputChars(runes)
	for _, r := range runes {
		if unicode.IsDigit(r) && len(ni.Text) < ni.MaxLength {
			ni.Text += string(r)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) && len(ni.Text) > 0 {
		ni.Text = ni.Text[:len(ni.Text)-1]
	}
}

func (ni *NumberInput) Value() (int32, error) {
	v, err := strconv.ParseInt(ni.Text, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%s: not a number", ni.Label)
	}
	return int32(v), nil
}

func (ni *NumberInput) SetValue(v int32) {
	ni.Text = strconv.Itoa(int(v))
}

func (ni *NumberInput) Draw(screen *ebiten.Image) {
	fonts := types.GetFonts()
	text.Draw(screen, ni.Label, fonts.Normal, ni.X, ni.Y-8, types.ColorText)

	vector.DrawFilledRect(screen,
		float32(ni.X), float32(ni.Y),
		float32(ni.Width), float32(ni.Height),
		types.ColorInputBg, false)

	borderColor := types.ColorInputBorder
	if ni.Focused {
		borderColor = types.ColorInputFocused
	}
	vector.StrokeRect(screen,
		float32(ni.X), float32(ni.Y),
		float32(ni.Width), float32(ni.Height),
		2, borderColor, false)

	textX := ni.X + 8
	textY := ni.Y + ni.Height/2 + 4
	text.Draw(screen, ni.Text, fonts.Normal, textX, textY, types.ColorText)

	if ni.Focused && (ni.cursorBlink/30)%2 == 0 {
		bounds := text.BoundString(fonts.Normal, ni.Text)
		cursorX := float32(textX + bounds.Dx() + 2)
		cursorY := float32(ni.Y + 5)
		vector.StrokeLine(screen, cursorX, cursorY, cursorX, float32(ni.Y+ni.Height-5), 2, types.ColorText, false)
	}
}

func (ni *NumberInput) SetPosition(x, y int) {
	ni.X = x
	ni.Y = y
}
