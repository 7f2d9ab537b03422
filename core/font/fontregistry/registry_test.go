package fontregistry

import (
	"testing"

	"github.com/npillmayer/kuchi/core"
	"github.com/npillmayer/kuchi/core/font"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestRegistryCachesTypeCases(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kuchi.font")
	defer teardown()
	//
	fr := NewRegistry()
	fr.StoreFont(font.PackagedFontName, font.PackagedFont())
	assert.True(t, fr.HasFont("GoFont"))
	tc1, err := fr.TypeCase(font.PackagedFontName, 16, 144)
	if err != nil {
		t.Fatal(err)
	}
	tc2, err := fr.TypeCase(font.PackagedFontName, 16, 144)
	assert.NoError(t, err)
	assert.Same(t, tc1, tc2)
	tc3, err := fr.TypeCase(font.PackagedFontName, 8, 144)
	assert.NoError(t, err)
	assert.NotSame(t, tc1, tc3)
	fr.LogFontList()
}

func TestRegistryMissingFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kuchi.font")
	defer teardown()
	//
	fr := NewRegistry()
	_, err := fr.TypeCase("MS-Gothic", 16, 72)
	assert.Error(t, err)
	assert.Equal(t, core.EMISSING, core.Code(err))
}

func TestStoreDoesNotOverride(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kuchi.font")
	defer teardown()
	//
	fr := NewRegistry()
	first := font.PackagedFont()
	fr.StoreFont("score", first)
	fr.StoreFont("score", &font.ScalableFont{Fontname: "other"})
	fr.StoreFont("nil", nil)
	assert.False(t, fr.HasFont("nil"))
	tc, err := fr.TypeCase("score", 12, 72)
	assert.NoError(t, err)
	assert.Equal(t, first, tc.ScalableFontParent())
}
