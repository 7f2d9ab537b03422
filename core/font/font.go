/*
Package font is for typeface and font handling.

We stick to the following definitions:

* A "scalable font" is a font, i.e. a variant of a typeface with a
certain weight, slant, etc.  An example is "Noto Sans CJK JP regular".

* A "typecase" is a scaled font, i.e. a font in a certain size, prepared
for a certain output resolution. The name is reminiscent of the wooden
boxes of typesetters in the era of metal type.

Please note that Go (Golang) does use the terms "font" and "face"
differently–actually more or less in an opposite manner.

Score notation is set in CJK fonts. Fonts without CJK coverage will render
the notation glyphs as missing-glyph boxes, but are fine for tests.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package font

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/npillmayer/schuko/tracing"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// tracer traces with key 'kuchi.font'.
func tracer() tracing.Trace {
	return tracing.Select("kuchi.font")
}

// ScalableFont is a loaded font file.
type ScalableFont struct {
	Fontname string
	Filepath string     // file path
	Binary   []byte     // raw data
	SFNT     *sfnt.Font // the font's container
}

// TypeCase is a font face with a fixed size and resolution.
type TypeCase struct {
	scalableFontParent *ScalableFont
	face               xfont.Face // Go uses 'face' and 'font' in an inverse manner
	size               float32
	dpi                float64
}

// LoadOpenTypeFont loads an OpenType or TrueType font file.
func LoadOpenTypeFont(fontfile string) (*ScalableFont, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, err
	}
	f, err := ParseOpenTypeFont(bytez)
	if err != nil {
		return nil, err
	}
	f.Filepath = fontfile
	return f, nil
}

// ParseOpenTypeFont parses font data. The font's name is taken from the
// font's name table.
func ParseOpenTypeFont(fbytes []byte) (f *ScalableFont, err error) {
	f = &ScalableFont{Binary: fbytes}
	f.SFNT, err = sfnt.Parse(f.Binary)
	if err != nil {
		return nil, err
	}
	f.Fontname, _ = f.SFNT.Name(nil, sfnt.NameIDFull)
	return
}

// MaxSize is the largest font size in big points.
const MaxSize = 500

// PrepareCase creates a typecase with a given size (in big points) for a
// given output resolution.
func (sf *ScalableFont) PrepareCase(fontsize float32, dpi float64) (*TypeCase, error) {
	if fontsize <= 0 || fontsize > MaxSize {
		return nil, fmt.Errorf("font size must be 0 < size <= %d, is %g", MaxSize, fontsize)
	}
	if dpi <= 0 {
		dpi = 72
	}
	options := &opentype.FaceOptions{
		Size:    float64(fontsize),
		DPI:     dpi,
		Hinting: xfont.HintingNone,
	}
	f, err := opentype.NewFace(sf.SFNT, options)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("prepared typecase %s at %.2fbp, %.0f dpi", sf.Fontname, fontsize, dpi)
	return &TypeCase{
		scalableFontParent: sf,
		face:               f,
		size:               fontsize,
		dpi:                dpi,
	}, nil
}

// ScalableFontParent returns the font a typecase has been derived from.
func (tc *TypeCase) ScalableFontParent() *ScalableFont {
	return tc.scalableFontParent
}

// PtSize returns the size of the typecase in big points.
func (tc *TypeCase) PtSize() float32 {
	return tc.size
}

// DPI returns the resolution the typecase has been prepared for.
func (tc *TypeCase) DPI() float64 {
	return tc.dpi
}

// Face returns the font face of a typecase, to be used for drawing.
func (tc *TypeCase) Face() xfont.Face {
	return tc.face
}

// --- Packaged font ---------------------------------------------------------

// PackagedFontName is the name under which the packaged font may be requested.
const PackagedFontName = "gofont"

// PackagedFont returns a font which is always present. Currently we use
// Go Sans. It has no CJK glyphs and is selected only on explicit request.
func PackagedFont() *ScalableFont {
	packagedFontLoading.Do(func() {
		packagedFont = loadPackagedFont()
	})
	return packagedFont
}

var packagedFontLoading sync.Once

var packagedFont *ScalableFont

func loadPackagedFont() *ScalableFont {
	var err error
	gofont := &ScalableFont{
		Fontname: "Go Sans",
		Filepath: "internal",
		Binary:   goregular.TTF,
	}
	gofont.SFNT, err = sfnt.Parse(gofont.Binary)
	if err != nil {
		panic("cannot load packaged font") // this cannot happen
	}
	return gofont
}

// NormalizeFontname creates a registry key from a font name or font file name.
func NormalizeFontname(fname string) string {
	fname = strings.TrimSpace(fname)
	if slash := strings.LastIndexAny(fname, `/\`); slash >= 0 {
		fname = fname[slash+1:]
	}
	fname = strings.ReplaceAll(fname, " ", "_")
	if dot := strings.LastIndex(fname, "."); dot > 0 {
		switch strings.ToLower(fname[dot:]) {
		case ".ttf", ".otf", ".ttc":
			fname = fname[:dot]
		}
	}
	return strings.ToLower(fname)
}
