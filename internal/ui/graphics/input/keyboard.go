package input

import (
	"habiter/internal/domain"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var directionKeys = map[ebiten.Key]domain.Direction{
	ebiten.KeyUp:    domain.DirectionUp,
	ebiten.KeyW:     domain.DirectionUp,
	ebiten.KeyDown:  domain.DirectionDown,
	ebiten.KeyS:     domain.DirectionDown,
	ebiten.KeyLeft:  domain.DirectionLeft,
	ebiten.KeyA:     domain.DirectionLeft,
	ebiten.KeyRight: domain.DirectionRight,
	ebiten.KeyD:     domain.DirectionRight,
}

// KeyDirection maps a key to a direction, DirectionNone for anything else.
func KeyDirection(key ebiten.Key) domain.Direction {
	return directionKeys[key]
}

type KeyboardHandler struct {
	pressed []ebiten.Key
}

func NewKeyboardHandler() *KeyboardHandler {
	return &KeyboardHandler{}
}

// Update returns every direction pressed this frame in press order, so two
// quick turns between ticks both reach the game.
func (kh *KeyboardHandler) Update() []domain.Direction {
	kh.pressed = inpututil.AppendJustPressedKeys(kh.pressed[:0])

	var dirs []domain.Direction
	for _, key := range kh.pressed {
		if dir := KeyDirection(key); dir != domain.DirectionNone {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

func IsEscapePressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

func IsEnterPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter)
}

func IsTabPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyTab)
}

func IsRestartPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyR) || IsEnterPressed()
}
