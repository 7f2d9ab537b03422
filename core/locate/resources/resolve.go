package resources

import (
	"fmt"
	"os"
	"strings"

	"github.com/flopp/go-findfont"
	"github.com/npillmayer/kuchi/core"
	"github.com/npillmayer/kuchi/core/font"
	"github.com/npillmayer/kuchi/core/font/fontregistry"
)

// DefaultFonts lists system fonts with Japanese glyphs, tried in order if no
// font name is configured.
var DefaultFonts = []string{
	"ipaexg.ttf",
	"ipag.ttf",
	"TakaoGothic.ttf",
	"NotoSansJP-Regular.otf",
	"NotoSansJP-Regular.ttf",
	"YuGothR.ttf",
}

// NotFound returns an application error for a missing font.
func NotFound(res string) error {
	e := fmt.Errorf("resource missing: %v", res)
	return core.WrapError(e, core.EMISSING, "font not found: %s", res)
}

// findFont is a seam for tests.
var findFont = findfont.Find

// ResolveFont locates and loads a font by name. An empty name selects the
// first of DefaultFonts present on the system.
func ResolveFont(name string) (*font.ScalableFont, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		for _, fname := range DefaultFonts {
			if f, err := ResolveFont(fname); err == nil {
				return f, nil
			}
		}
		return nil, NotFound(strings.Join(DefaultFonts, ", "))
	}
	if font.NormalizeFontname(name) == font.PackagedFontName {
		tracer().Debugf("using packaged font")
		return font.PackagedFont(), nil
	}
	if fi, err := os.Stat(name); err == nil && !fi.IsDir() {
		tracer().Debugf("font %s is a file", name)
		return load(name)
	}
	fpath, err := findFont(name) // try to find as system font
	if err != nil || fpath == "" {
		tracer().Infof("font %s not found", name)
		return nil, NotFound(name)
	}
	tracer().Debugf("%s is a system font at %s", name, fpath)
	return load(fpath)
}

func load(fpath string) (*font.ScalableFont, error) {
	f, err := font.LoadOpenTypeFont(fpath)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot load font file %s", fpath)
	}
	return f, nil
}

// RegisterFont resolves a font and stores it in a registry under name.
func RegisterFont(fr *fontregistry.Registry, name string) error {
	if fr.HasFont(name) {
		return nil
	}
	f, err := ResolveFont(name)
	if err != nil {
		return err
	}
	fr.StoreFont(name, f)
	return nil
}
