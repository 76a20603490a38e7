package graphics

import (
	"testing"

	"habiter/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
)

type scaledScreen struct {
	scale float64
}

func (s *scaledScreen) Update() types.UIEvent     { return types.UIEvent{} }
func (s *scaledScreen) Draw(screen *ebiten.Image) {}
func (s *scaledScreen) OnEnter()                  {}
func (s *scaledScreen) OnExit()                   {}
func (s *scaledScreen) SetScale(scale float64)    { s.scale = scale }

func TestEnginePushesScale(t *testing.T) {
	e := NewEngine("test", 0, 0)
	screen := &scaledScreen{}

	e.push(screen)
	if screen.scale != 1 {
		t.Errorf("default scale = %g, want 1", screen.scale)
	}

	e.SetScale(2)
	e.push(screen)
	if screen.scale != 2 {
		t.Errorf("scale = %g, want 2", screen.scale)
	}
}
