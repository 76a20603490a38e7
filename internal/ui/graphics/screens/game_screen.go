package screens

import (
	"fmt"

	"habiter/internal/domain"
	"habiter/internal/ui/graphics/components"
	"habiter/internal/ui/graphics/input"
	"habiter/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

type GameScreen struct {
	ctx types.ScreenContext

	fieldRenderer *components.FieldRenderer
	scoreboard    *components.Scoreboard
	keyboard      *input.KeyboardHandler

	snap    domain.Snapshot
	hasSnap bool
	best    int

	errorMsg string
}

func NewGameScreen(ctx types.ScreenContext) *GameScreen {
	return &GameScreen{
		ctx:           ctx,
		fieldRenderer: components.NewFieldRenderer(),
		scoreboard:    components.NewScoreboard(0, 0, components.PanelWidth-20, 400),
		keyboard:      input.NewKeyboardHandler(),
	}
}

func (s *GameScreen) SetSnapshot(snap domain.Snapshot) {
	s.snap = snap
	s.hasSnap = true
}

func (s *GameScreen) SetScale(scale float64) {
	s.fieldRenderer.Scale = scale
}

func (s *GameScreen) SetBest(best int) {
	s.best = best
}

func (s *GameScreen) Update() types.UIEvent {
	if input.IsEscapePressed() {
		return types.UIEvent{Type: types.UIEventQuit}
	}

	if dirs := s.keyboard.Update(); len(dirs) > 0 {
		return types.UIEvent{
			Type:    types.UIEventSteer,
			Payload: types.SteerData{Directions: dirs},
		}
	}

	return types.UIEvent{Type: types.UIEventNone}
}

func (s *GameScreen) Draw(screen *ebiten.Image) {
	screen.Fill(types.ColorBackground)

	w, h := s.ctx.Size()
	fonts := types.GetFonts()

	if !s.hasSnap {
		msg := "Starting..."
		bounds := text.BoundString(fonts.Normal, msg)
		text.Draw(screen, msg, fonts.Normal, (w-bounds.Dx())/2, h/2, types.ColorTextDim)
		return
	}

	drawBoard(screen, s.fieldRenderer, s.snap, w, h)

	s.scoreboard.X = w - components.PanelWidth + 10
	s.scoreboard.Y = components.HeaderHeight
	s.scoreboard.Height = h - components.HeaderHeight - components.FooterHeight
	s.scoreboard.Draw(screen, s.snap, s.best)

	s.drawHeader(screen, w)
	s.drawFooter(screen, w, h)
}

func (s *GameScreen) drawHeader(screen *ebiten.Image, w int) {
	fonts := types.GetFonts()

	scoreText := fmt.Sprintf("Score: %d", s.snap.Score)
	bounds := text.BoundString(fonts.Large, scoreText)
	text.Draw(screen, scoreText, fonts.Large, (w-components.PanelWidth-bounds.Dx())/2, 35, types.ColorTextHighlight)
}

func (s *GameScreen) drawFooter(screen *ebiten.Image, w, h int) {
	fonts := types.GetFonts()

	hint := "W/A/S/D or Arrows to move  |  ESC to quit"
	text.Draw(screen, hint, fonts.Small, 20, h-10, types.ColorTextDim)

	if s.errorMsg != "" {
		bounds := text.BoundString(fonts.Normal, s.errorMsg)
		text.Draw(screen, s.errorMsg, fonts.Normal, w-bounds.Dx()-20, h-10, types.ColorError)
	}
}

func (s *GameScreen) OnEnter() {
	s.errorMsg = ""
}

func (s *GameScreen) OnExit() {}

func (s *GameScreen) SetError(err string) {
	s.errorMsg = err
}

// drawBoard lays out and draws the field with everything on it.
func drawBoard(screen *ebiten.Image, fr *components.FieldRenderer, snap domain.Snapshot, w, h int) {
	fr.CalculateLayout(w, h, snap.Field, fr.MaxCell(snap.CellSize))
	fr.DrawField(screen, snap.Field)
	fr.DrawJunk(screen, snap.Junk)
	fr.DrawFood(screen, snap.Foods)
	fr.DrawSnake(screen, snap.Snake, snap.GameOver())
}
