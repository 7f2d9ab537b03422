package fontregistry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/npillmayer/kuchi/core"
	"github.com/npillmayer/kuchi/core/font"
	"github.com/npillmayer/schuko/tracing"
)

// Registry is a type for holding information about loaded fonts for a
// typesetter.
type Registry struct {
	sync.Mutex
	fonts     map[string]*font.ScalableFont
	typecases map[string]*font.TypeCase
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	fr := &Registry{
		fonts:     make(map[string]*font.ScalableFont),
		typecases: make(map[string]*font.TypeCase),
	}
	return fr
}

// StoreFont pushes a font into the registry if it isn't contained yet.
//
// The font will be stored using the normalized font name as a key. If this
// key is already associated with a font, that font will not be overridden.
func (fr *Registry) StoreFont(name string, f *font.ScalableFont) {
	if f == nil {
		tracer().Errorf("registry cannot store null font")
		return
	}
	normalizedName := font.NormalizeFontname(name)
	fr.Lock()
	defer fr.Unlock()
	if _, ok := fr.fonts[normalizedName]; !ok {
		tracer().Debugf("registry stores font %s as %s", f.Fontname, normalizedName)
		fr.fonts[normalizedName] = f
	}
}

// HasFont is true if a font has been stored under name.
func (fr *Registry) HasFont(name string) bool {
	fr.Lock()
	defer fr.Unlock()
	_, ok := fr.fonts[font.NormalizeFontname(name)]
	return ok
}

// TypeCase returns a concrete typecase with a given font, size and resolution.
// If a suitable typecase has already been cached, TypeCase will return the cached
// typecase. If a font has previously been stored under `name`, a typecase
// will be derived from this font.
//
// A font which has not been stored is an error with code core.EMISSING.
func (fr *Registry) TypeCase(name string, size float32, dpi float64) (*font.TypeCase, error) {
	normalizedName := font.NormalizeFontname(name)
	tname := appendSize(normalizedName, size, dpi)
	fr.Lock()
	defer fr.Unlock()
	if t, ok := fr.typecases[tname]; ok {
		return t, nil
	}
	f, ok := fr.fonts[normalizedName]
	if !ok {
		tracer().Infof("registry does not contain font %s", normalizedName)
		return nil, core.Error(core.EMISSING, "font not found in registry: %s", name)
	}
	t, err := f.PrepareCase(size, dpi)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot prepare font %s at %.2f", name, size)
	}
	tracer().Debugf("font registry has font %s, caches at %.2f", normalizedName, size)
	fr.typecases[tname] = t
	return t, nil
}

// LogFontList is a helper function to dump the list of known fonts and typecases
// in a registry to the trace-file (log-level Info).
func (fr *Registry) LogFontList() {
	fr.Lock()
	defer fr.Unlock()
	level := tracer().GetTraceLevel()
	tracer().SetTraceLevel(tracing.LevelInfo)
	tracer().Infof("--- registered fonts ---")
	for _, k := range sortedKeys(fr.fonts) {
		tracer().Infof("font [%s] = %v", k, fr.fonts[k].Fontname)
	}
	tracer().Infof("%d typecases", len(fr.typecases))
	tracer().Infof("------------------------")
	tracer().SetTraceLevel(level)
}

func sortedKeys(m map[string]*font.ScalableFont) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func appendSize(fname string, size float32, dpi float64) string {
	return fmt.Sprintf("%s-%.2f@%.0f", fname, size, dpi)
}
