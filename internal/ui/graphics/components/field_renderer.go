package components

import (
	"habiter/internal/domain"
	"habiter/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	HeaderHeight = 50
	PanelWidth   = 230
	FooterHeight = 30
)

type FieldRenderer struct {
	CellSize int
	OffsetX  int
	OffsetY  int
	// Scale multiplies the configured cell size, as the window does.
	Scale float64
}

func NewFieldRenderer() *FieldRenderer {
	return &FieldRenderer{
		CellSize: 50,
		OffsetX:  10,
		OffsetY:  HeaderHeight,
		Scale:    1,
	}
}

// MaxCell is the largest cell in pixels for a configured cell size.
func (fr *FieldRenderer) MaxCell(cellSize int32) int {
	if fr.Scale <= 0 {
		return int(cellSize)
	}
	return int(float64(cellSize) * fr.Scale)
}

// CalculateLayout fits the board left of the side panel, keeping square
// cells no larger than the configured cell size.
func (fr *FieldRenderer) CalculateLayout(screenWidth, screenHeight int, field domain.Field, maxCell int) {
	if field.Width <= 0 || field.Height <= 0 {
		return
	}

	availableWidth := screenWidth - PanelWidth - 20
	availableHeight := screenHeight - HeaderHeight - FooterHeight

	cellW := availableWidth / int(field.Width)
	cellH := availableHeight / int(field.Height)

	fr.CellSize = cellW
	if cellH < cellW {
		fr.CellSize = cellH
	}
	if maxCell > 0 && fr.CellSize > maxCell {
		fr.CellSize = maxCell
	}
	if fr.CellSize < 4 {
		fr.CellSize = 4
	}

	fieldWidth := fr.CellSize * int(field.Width)
	fieldHeight := fr.CellSize * int(field.Height)
	fr.OffsetX = (availableWidth-fieldWidth)/2 + 10
	fr.OffsetY = (availableHeight-fieldHeight)/2 + HeaderHeight
}

// CellRect is the top-left corner of c in screen pixels.
func (fr *FieldRenderer) CellRect(c domain.Coord) (float32, float32) {
	return float32(fr.OffsetX + int(c.X)*fr.CellSize), float32(fr.OffsetY + int(c.Y)*fr.CellSize)
}

func (fr *FieldRenderer) DrawField(screen *ebiten.Image, field domain.Field) {
	w := float32(int(field.Width) * fr.CellSize)
	h := float32(int(field.Height) * fr.CellSize)

	vector.DrawFilledRect(screen,
		float32(fr.OffsetX), float32(fr.OffsetY),
		w, h,
		types.ColorFieldBg, false)

	for x := int32(0); x <= field.Width; x++ {
		x1 := float32(fr.OffsetX + int(x)*fr.CellSize)
		vector.StrokeLine(screen,
			x1, float32(fr.OffsetY),
			x1, float32(fr.OffsetY)+h,
			1, types.ColorGrid, false)
	}
	for y := int32(0); y <= field.Height; y++ {
		y1 := float32(fr.OffsetY + int(y)*fr.CellSize)
		vector.StrokeLine(screen,
			float32(fr.OffsetX), y1,
			float32(fr.OffsetX)+w, y1,
			1, types.ColorGrid, false)
	}
}

func (fr *FieldRenderer) DrawFood(screen *ebiten.Image, foods []domain.FoodItem) {
	for _, food := range foods {
		fr.drawItem(screen, food)
	}
}

// DrawJunk marks every obstacle with a red frame on top of its sprite.
func (fr *FieldRenderer) DrawJunk(screen *ebiten.Image, junk []domain.FoodItem) {
	for _, item := range junk {
		fr.drawItem(screen, item)

		x, y := fr.CellRect(item.Pos)
		size := float32(fr.CellSize)
		vector.StrokeRect(screen, x+1, y+1, size-2, size-2, 2, types.Darken(types.ColorError, 0.8), false)
	}
}

func (fr *FieldRenderer) drawItem(screen *ebiten.Image, item domain.FoodItem) {
	x, y := fr.CellRect(item.Pos)
	size := float32(fr.CellSize)
	pad := size / 6
	main, accent := types.FoodColor(item.Kind)
	cx, cy := x+size/2, y+size/2

	switch item.Kind {
	case domain.FoodApple:
		vector.DrawFilledCircle(screen, cx, cy+pad/3, size/2-pad, main, true)
		vector.DrawFilledRect(screen, cx-size/20, y+pad/2, size/10, pad, accent, false)

	case domain.FoodBanana:
		vector.DrawFilledCircle(screen, cx, cy, size/2-pad, main, true)
		vector.DrawFilledCircle(screen, cx+pad, cy-pad, size/2-pad, types.ColorFieldBg, true)
		vector.DrawFilledRect(screen, x+pad, cy-size/20, size/10, size/10, accent, false)

	case domain.FoodCarrot:
		vector.DrawFilledRect(screen, cx-size/8, y+pad*1.5, size/4, size-pad*2.5, main, false)
		vector.DrawFilledRect(screen, cx-size/6, y+pad/2, size/3, pad, accent, false)

	case domain.FoodCake:
		vector.DrawFilledRect(screen, x+pad, cy-pad/2, size-pad*2, size/2-pad/2, main, false)
		vector.DrawFilledRect(screen, x+pad, cy-pad, size-pad*2, pad/2+1, accent, false)

	case domain.FoodBurger:
		layer := (size - pad*2) / 4
		vector.DrawFilledRect(screen, x+pad, y+pad, size-pad*2, layer*1.5, main, false)
		vector.DrawFilledRect(screen, x+pad, y+pad+layer*1.5, size-pad*2, layer, accent, false)
		vector.DrawFilledRect(screen, x+pad, y+pad+layer*2.5, size-pad*2, layer*1.5, main, false)

	case domain.FoodPizza:
		r := size/2 - pad
		vector.DrawFilledCircle(screen, cx, cy, r, main, true)
		vector.DrawFilledCircle(screen, cx-r/3, cy-r/3, r/5, accent, true)
		vector.DrawFilledCircle(screen, cx+r/3, cy, r/5, accent, true)
		vector.DrawFilledCircle(screen, cx-r/5, cy+r/2, r/5, accent, true)

	default:
		vector.DrawFilledRect(screen, x+pad, y+pad, size-pad*2, size-pad*2, main, false)
	}
}

func (fr *FieldRenderer) DrawSnake(screen *ebiten.Image, points []domain.Coord, dead bool) {
	for i := len(points) - 1; i >= 0; i-- {
		x, y := fr.CellRect(points[i])
		size := float32(fr.CellSize - 2)

		cellColor := types.ColorSnake
		if i == 0 {
			cellColor = types.Darken(types.ColorSnake, 0.7)
		}
		if dead {
			cellColor = types.Darken(cellColor, 0.5)
		}

		vector.DrawFilledRect(screen, x+1, y+1, size, size, cellColor, false)
	}
}
