package dimen

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestParseDimen(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kuchi.core")
	defer teardown()
	//
	d, err := ParseDimen("12px", SP)
	if err != nil {
		t.Errorf("(1) %s", err.Error())
	} else if d != 12*BP {
		t.Errorf("(1) expected d to be 12bp (%d), is %d", 12*BP, d)
	}
	//
	d, err = ParseDimen("0", BP)
	if err != nil {
		t.Errorf("(2) %s", err.Error())
	} else if d != 0 {
		t.Errorf("(2) expected d to be 0, is %d", d)
	}
	//
	d, err = ParseDimen("30", BP)
	assert.NoError(t, err)
	assert.Equal(t, 30*BP, d)
	//
	d, err = ParseDimen("2.5", BP)
	assert.NoError(t, err)
	assert.Equal(t, 5*BP/2, d)
	//
	d, err = ParseDimen("10mm", BP)
	assert.NoError(t, err)
	assert.Equal(t, 10*MM, d)
}

func TestParseDimenErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kuchi.core")
	defer teardown()
	//
	for _, s := range []string{"", "abc", "12zz", "1.2.3", "--3"} {
		_, err := ParseDimen(s, BP)
		assert.Error(t, err, "expected %q to be rejected", s)
	}
}

func TestLandscape(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kuchi.core")
	defer teardown()
	//
	l := DINA4.Landscape()
	assert.Equal(t, 297*MM, l.X)
	assert.Equal(t, 210*MM, l.Y)
	assert.Equal(t, l, l.Landscape())
}

func TestRectFromTopRight(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kuchi.core")
	defer teardown()
	//
	r := RectFromTopRight(Point{100 * BP, 50 * BP}, 30*BP, 20*BP)
	assert.Equal(t, 70*BP, r.Left())
	assert.Equal(t, 100*BP, r.Right())
	assert.Equal(t, 50*BP, r.Top())
	assert.Equal(t, 70*BP, r.Bottom())
	assert.Equal(t, 85*BP, r.CenterX())
	assert.Equal(t, Point{100 * BP, 50 * BP}, r.TopR())
	assert.True(t, r.Contains(Point{80 * BP, 60 * BP}))
	assert.False(t, r.Contains(Point{60 * BP, 60 * BP}))
}

func TestPoints(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kuchi.core")
	defer teardown()
	//
	assert.Equal(t, 16*BP, FromPoints(16))
	assert.Equal(t, 4*BP, FromPoints(8)/2)
	assert.InDelta(t, 12.5, FromPoints(12.5).Points(), 0.0001)
}

func TestChecked(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "kuchi.core")
	defer teardown()
	//
	d, ok := Checked(int64(30*BP) * 1000)
	assert.True(t, ok)
	assert.Equal(t, 30000*BP, d)
	_, ok = Checked(int64(30*BP) * 1200)
	assert.False(t, ok, "30bp x 1200 exceeds the range of dimensions")
	_, ok = Checked(-int64(30*BP) * 1200)
	assert.False(t, ok)
}
