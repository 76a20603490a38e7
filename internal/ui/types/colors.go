package types

import (
	"image/color"

	"habiter/internal/domain"
)

var (
	ColorBackground    = color.RGBA{30, 30, 30, 255}
	ColorFieldBg       = color.RGBA{34, 52, 38, 255}
	ColorGrid          = color.RGBA{46, 68, 50, 255}
	ColorSnake         = color.RGBA{0, 255, 0, 255}
	ColorText          = color.RGBA{220, 220, 220, 255}
	ColorTextDim       = color.RGBA{150, 150, 150, 255}
	ColorTextHighlight = color.RGBA{56, 139, 186, 255}
	ColorButton        = color.RGBA{68, 68, 68, 255}
	ColorButtonHover   = color.RGBA{90, 90, 100, 255}
	ColorButtonText    = color.RGBA{56, 139, 186, 255}
	ColorInputBg       = color.RGBA{50, 50, 55, 255}
	ColorInputBorder   = color.RGBA{100, 100, 110, 255}
	ColorInputFocused  = color.RGBA{100, 150, 200, 255}
	ColorError         = color.RGBA{255, 60, 60, 255}
	ColorSuccess       = color.RGBA{100, 255, 100, 255}
)

// FoodColors gives each kind a body color and an accent (stem, crust, leaf).
var FoodColors = map[domain.FoodKind][2]color.RGBA{
	domain.FoodApple:  {{220, 40, 40, 255}, {90, 160, 60, 255}},
	domain.FoodBanana: {{250, 220, 70, 255}, {120, 90, 40, 255}},
	domain.FoodCarrot: {{245, 135, 30, 255}, {60, 170, 70, 255}},
	domain.FoodCake:   {{240, 180, 200, 255}, {250, 250, 250, 255}},
	domain.FoodBurger: {{190, 120, 50, 255}, {90, 50, 30, 255}},
	domain.FoodPizza:  {{240, 190, 80, 255}, {200, 50, 40, 255}},
}

func FoodColor(kind domain.FoodKind) (color.RGBA, color.RGBA) {
	c, ok := FoodColors[kind]
	if !ok {
		return ColorError, ColorError
	}
	return c[0], c[1]
}

func Darken(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}
