package components

import (
	"testing"

	"habiter/internal/domain"
)

func TestCalculateLayoutFollowsScale(t *testing.T) {
	field := domain.Field{Width: 16, Height: 12}

	tests := []struct {
		name     string
		scale    float64
		w, h     int
		wantCell int
	}{
		// Window sizes as cmd/habiter computes them for an 800x600 board.
		{"scale 1", 1, 800 + PanelWidth + 40, 600 + HeaderHeight + FooterHeight + 20, 50},
		{"scale 2", 2, 1600 + PanelWidth + 40, 1200 + HeaderHeight + FooterHeight + 20, 100},
		{"scale 1.5", 1.5, 1200 + PanelWidth + 40, 900 + HeaderHeight + FooterHeight + 20, 75},
		{"zero scale keeps configured size", 0, 1600 + PanelWidth + 40, 1200 + HeaderHeight + FooterHeight + 20, 50},
		{"small window shrinks cells", 2, 400 + PanelWidth + 20, 300 + HeaderHeight + FooterHeight, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fr := NewFieldRenderer()
			fr.Scale = tt.scale

			fr.CalculateLayout(tt.w, tt.h, field, fr.MaxCell(50))
			if fr.CellSize != tt.wantCell {
				t.Errorf("CellSize = %d, want %d", fr.CellSize, tt.wantCell)
			}
		})
	}
}

func TestCalculateLayoutCentersBoard(t *testing.T) {
	fr := NewFieldRenderer()
	fr.Scale = 2

	w, h := 1600+PanelWidth+40, 1200+HeaderHeight+FooterHeight+20
	fr.CalculateLayout(w, h, domain.Field{Width: 16, Height: 12}, fr.MaxCell(50))

	availableWidth := w - PanelWidth - 20
	if got, want := fr.OffsetX, (availableWidth-1600)/2+10; got != want {
		t.Errorf("OffsetX = %d, want %d", got, want)
	}
	if got, want := fr.OffsetY, (h-HeaderHeight-FooterHeight-1200)/2+HeaderHeight; got != want {
		t.Errorf("OffsetY = %d, want %d", got, want)
	}
}
