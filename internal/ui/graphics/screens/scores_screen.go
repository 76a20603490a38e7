package screens

import (
	"fmt"

	"habiter/internal/record"
	"habiter/internal/ui/graphics/components"
	"habiter/internal/ui/graphics/input"
	"habiter/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type ScoresScreen struct {
	ctx types.ScreenContext

	btnBack *components.Button

	records []record.Record
}

func NewScoresScreen(ctx types.ScreenContext) *ScoresScreen {
	return &ScoresScreen{
		ctx:     ctx,
		btnBack: components.NewButton(0, 0, 200, 50, "Back"),
	}
}

func (s *ScoresScreen) SetRecords(records []record.Record) {
	s.records = records
}

func (s *ScoresScreen) Update() types.UIEvent {
	w, h := s.ctx.Size()
	s.btnBack.SetPosition((w-200)/2, h-90)

	if s.btnBack.Update() || input.IsEscapePressed() {
		return types.UIEvent{Type: types.UIEventShowGameOver}
	}

	return types.UIEvent{Type: types.UIEventNone}
}

func (s *ScoresScreen) Draw(screen *ebiten.Image) {
	screen.Fill(types.ColorBackground)

	fonts := types.GetFonts()
	w, _ := s.ctx.Size()

	title := "HIGH SCORES"
	bounds := text.BoundString(fonts.Title, title)
	text.Draw(screen, title, fonts.Title, (w-bounds.Dx())/2, 90, types.ColorTextHighlight)

	tableX := w/2 - 260
	y := 150

	text.Draw(screen, "#", fonts.Normal, tableX, y, types.ColorTextDim)
	text.Draw(screen, "Score", fonts.Normal, tableX+40, y, types.ColorTextDim)
	text.Draw(screen, "Length", fonts.Normal, tableX+130, y, types.ColorTextDim)
	text.Draw(screen, "Ticks", fonts.Normal, tableX+220, y, types.ColorTextDim)
	text.Draw(screen, "Finished", fonts.Normal, tableX+310, y, types.ColorTextDim)

	y += 10
	vector.StrokeLine(screen, float32(tableX), float32(y), float32(tableX+520), float32(y), 1, types.ColorGrid, false)
	y += 25

	if len(s.records) == 0 {
		text.Draw(screen, "No games recorded yet", fonts.Normal, tableX, y, types.ColorTextDim)
	}

	for i, r := range s.records {
		clr := types.ColorText
		if i == 0 {
			clr = types.ColorSuccess
		}

		text.Draw(screen, fmt.Sprintf("%d", i+1), fonts.Normal, tableX, y, clr)
		text.Draw(screen, fmt.Sprintf("%d", r.Score), fonts.Normal, tableX+40, y, clr)
		text.Draw(screen, fmt.Sprintf("%d", r.Length), fonts.Normal, tableX+130, y, clr)
		text.Draw(screen, fmt.Sprintf("%d", r.Ticks), fonts.Normal, tableX+220, y, clr)
		text.Draw(screen, r.FinishedAt.Format("2006-01-02 15:04"), fonts.Normal, tableX+310, y, clr)

		y += 28
	}

	s.btnBack.Draw(screen)
}

func (s *ScoresScreen) OnEnter() {}

func (s *ScoresScreen) OnExit() {}
