package components

import (
	"fmt"

	"habiter/internal/domain"
	"habiter/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type Scoreboard struct {
	X, Y          int
	Width, Height int
}

func NewScoreboard(x, y, width, height int) *Scoreboard {
	return &Scoreboard{
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
	}
}

func (sb *Scoreboard) Draw(screen *ebiten.Image, snap domain.Snapshot, best int) {
	vector.DrawFilledRect(screen,
		float32(sb.X), float32(sb.Y),
		float32(sb.Width), float32(sb.Height),
		types.Darken(types.ColorFieldBg, 0.8), false)

	vector.StrokeRect(screen,
		float32(sb.X), float32(sb.Y),
		float32(sb.Width), float32(sb.Height),
		1, types.ColorGrid, false)

	fonts := types.GetFonts()

	text.Draw(screen, "SESSION", fonts.Normal, sb.X+10, sb.Y+20, types.ColorTextHighlight)

	sessionID := snap.SessionID
	if len(sessionID) > 8 {
		sessionID = sessionID[:8]
	}

	lines := []struct {
		label string
		value string
	}{
		{"Score", fmt.Sprintf("%d", snap.Score)},
		{"Best", fmt.Sprintf("%d", max(best, snap.Score))},
		{"Length", fmt.Sprintf("%d", len(snap.Snake))},
		{"Food left", fmt.Sprintf("%d/%d", len(snap.Foods), snap.FoodCount)},
		{"Junk", fmt.Sprintf("%d", len(snap.Junk))},
		{"Ticks", fmt.Sprintf("%d", snap.Ticks)},
		{"Heading", snap.Direction.String()},
		{"Id", sessionID},
	}

	y := sb.Y + 45
	for _, line := range lines {
		if y > sb.Y+sb.Height-10 {
			break
		}
		text.Draw(screen, line.label, fonts.Normal, sb.X+10, y, types.ColorTextDim)
		bounds := text.BoundString(fonts.Normal, line.value)
		text.Draw(screen, line.value, fonts.Normal, sb.X+sb.Width-bounds.Dx()-10, y, types.ColorText)
		y += 22
	}

	y += 10
	for _, kind := range []domain.FoodKind{domain.FoodApple, domain.FoodBanana, domain.FoodCarrot, domain.FoodCake, domain.FoodBurger, domain.FoodPizza} {
		if y > sb.Y+sb.Height-10 {
			break
		}
		main, _ := types.FoodColor(kind)
		vector.DrawFilledRect(screen, float32(sb.X+10), float32(y-10), 12, 12, main, false)

		label := kind.String()
		textColor := types.ColorSuccess
		if !kind.Healthy() {
			label += " (avoid)"
			textColor = types.ColorError
		}
		text.Draw(screen, label, fonts.Small, sb.X+28, y, textColor)
		y += 20
	}
}
