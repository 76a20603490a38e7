package components

import (
	"image/color"

	"habiter/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Button is clicked with the left mouse button or, when Hotkey is set, with
// that key.
type Button struct {
	X, Y          int
	Width, Height int
	Text          string
	Hotkey        ebiten.Key
	HasHotkey     bool
	Enabled       bool
	hovered       bool
	pressed       bool
}

func NewButton(x, y, width, height int, buttonText string) *Button {
	return &Button{
		X:       x,
		Y:       y,
		Width:   width,
		Height:  height,
		Text:    buttonText,
		Enabled: true,
	}
}

func (b *Button) WithHotkey(key ebiten.Key) *Button {
	b.Hotkey = key
	b.HasHotkey = true
	return b
}

func (b *Button) Update() bool {
	if !b.Enabled {
		return false
	}

	if b.HasHotkey && inpututil.IsKeyJustPressed(b.Hotkey) {
		return true
	}

	mx, my := ebiten.CursorPosition()
	b.hovered = mx >= b.X && mx < b.X+b.Width && my >= b.Y && my < b.Y+b.Height

	wasPressed := b.pressed
	b.pressed = b.hovered && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	return wasPressed && !b.pressed && b.hovered
}

func (b *Button) Draw(screen *ebiten.Image) {
	var bgColor color.RGBA
	switch {
	case !b.Enabled:
		bgColor = types.Darken(types.ColorButton, 0.5)
	case b.pressed:
		bgColor = types.Darken(types.ColorButtonHover, 0.8)
	case b.hovered:
		bgColor = types.ColorButtonHover
	default:
		bgColor = types.ColorButton
	}

	vector.DrawFilledRect(screen,
		float32(b.X), float32(b.Y),
		float32(b.Width), float32(b.Height),
		bgColor, false)

	vector.StrokeRect(screen,
		float32(b.X), float32(b.Y),
		float32(b.Width), float32(b.Height),
		1, types.ColorInputBorder, false)

	fonts := types.GetFonts()
	textColor := types.ColorButtonText
	if !b.Enabled {
		textColor = types.ColorTextDim
	}

	label := b.Text
	if b.HasHotkey {
		label += " [" + b.Hotkey.String() + "]"
	}

	bounds := text.BoundString(fonts.Normal, label)
	textX := b.X + (b.Width-bounds.Dx())/2
	textY := b.Y + (b.Height+bounds.Dy())/2

	text.Draw(screen, label, fonts.Normal, textX, textY, textColor)
}

func (b *Button) SetPosition(x, y int) {
	b.X = x
	b.Y = y
}
