package types

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

type Fonts struct {
	Normal font.Face
	Small  font.Face
	Large  font.Face
	Title  font.Face
}

var defaultFonts *Fonts

// InitFonts falls back to the bitmap face when the pixel font cannot be
// parsed.
func InitFonts() {
	defaultFonts = &Fonts{
		Normal: basicfont.Face7x13,
		Small:  basicfont.Face7x13,
		Large:  basicfont.Face7x13,
		Title:  basicfont.Face7x13,
	}

	pixelFont, err := opentype.Parse(fonts.PressStart2P_ttf)
	if err != nil {
		log.Printf("UI: failed to parse pixel font: %v", err)
		return
	}

	if face, err := newFace(pixelFont, 18); err == nil {
		defaultFonts.Large = face
	} else {
		log.Printf("UI: failed to create large face: %v", err)
	}
	if face, err := newFace(pixelFont, 40); err == nil {
		defaultFonts.Title = face
	} else {
		log.Printf("UI: failed to create title face: %v", err)
	}
}

func newFace(f *opentype.Font, size float64) (font.Face, error) {
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

func GetFonts() *Fonts {
	if defaultFonts == nil {
		InitFonts()
	}
	return defaultFonts
}
