package screens

import (
	"fmt"
	"image/color"

	"habiter/internal/domain"
	"habiter/internal/ui/graphics/components"
	"habiter/internal/ui/graphics/input"
	"habiter/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type GameOverScreen struct {
	ctx types.ScreenContext

	fieldRenderer *components.FieldRenderer

	btnRestart  *components.Button
	btnScores   *components.Button
	btnSettings *components.Button
	btnQuit     *components.Button

	snap domain.Snapshot
	rank int
}

func NewGameOverScreen(ctx types.ScreenContext) *GameOverScreen {
	return &GameOverScreen{
		ctx:           ctx,
		fieldRenderer: components.NewFieldRenderer(),
		btnRestart:    components.NewButton(0, 0, 250, 50, "Restart").WithHotkey(ebiten.KeyR),
		btnScores:     components.NewButton(0, 0, 250, 50, "High Scores").WithHotkey(ebiten.KeyH),
		btnSettings:   components.NewButton(0, 0, 250, 50, "Settings").WithHotkey(ebiten.KeyO),
		btnQuit:       components.NewButton(0, 0, 250, 50, "Quit").WithHotkey(ebiten.KeyQ),
	}
}

func (s *GameOverScreen) SetGameOver(snap domain.Snapshot, rank int) {
	s.snap = snap
	s.rank = rank
}

func (s *GameOverScreen) SetScale(scale float64) {
	s.fieldRenderer.Scale = scale
}

func (s *GameOverScreen) Update() types.UIEvent {
	w, h := s.ctx.Size()
	centerX := w / 2
	centerY := h / 2

	s.btnRestart.SetPosition(centerX-125, centerY-20)
	s.btnScores.SetPosition(centerX-125, centerY+40)
	s.btnSettings.SetPosition(centerX-125, centerY+100)
	s.btnQuit.SetPosition(centerX-125, centerY+160)

	if s.btnRestart.Update() || input.IsRestartPressed() {
		return types.UIEvent{Type: types.UIEventRestart}
	}

	if s.btnScores.Update() {
		return types.UIEvent{Type: types.UIEventShowScores}
	}

	if s.btnSettings.Update() {
		return types.UIEvent{Type: types.UIEventShowSettings}
	}

	if s.btnQuit.Update() || input.IsEscapePressed() {
		return types.UIEvent{Type: types.UIEventQuit}
	}

	return types.UIEvent{Type: types.UIEventNone}
}

func (s *GameOverScreen) Draw(screen *ebiten.Image) {
	screen.Fill(types.ColorBackground)

	fonts := types.GetFonts()
	w, h := s.ctx.Size()

	if len(s.snap.Snake) > 0 {
		drawBoard(screen, s.fieldRenderer, s.snap, w, h)
	}
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), color.RGBA{0, 0, 0, 170}, false)

	title := "GAME OVER"
	bounds := text.BoundString(fonts.Title, title)
	text.Draw(screen, title, fonts.Title, (w-bounds.Dx())/2, h/2-130, types.ColorError)

	summary := fmt.Sprintf("Score: %d", s.snap.Score)
	bounds = text.BoundString(fonts.Large, summary)
	text.Draw(screen, summary, fonts.Large, (w-bounds.Dx())/2, h/2-85, types.ColorTextHighlight)

	detail := fmt.Sprintf("The snake %s after %d ticks, length %d", s.snap.Cause, s.snap.Ticks, len(s.snap.Snake))
	bounds = text.BoundString(fonts.Normal, detail)
	text.Draw(screen, detail, fonts.Normal, (w-bounds.Dx())/2, h/2-55, types.ColorText)

	if s.rank > 0 {
		rankText := fmt.Sprintf("New high score! Rank #%d", s.rank)
		if s.rank == 1 {
			rankText = "New best score!"
		}
		bounds = text.BoundString(fonts.Normal, rankText)
		text.Draw(screen, rankText, fonts.Normal, (w-bounds.Dx())/2, h/2-35, types.ColorSuccess)
	}

	s.btnRestart.Draw(screen)
	s.btnScores.Draw(screen)
	s.btnSettings.Draw(screen)
	s.btnQuit.Draw(screen)
}

func (s *GameOverScreen) OnEnter() {}

func (s *GameOverScreen) OnExit() {}
