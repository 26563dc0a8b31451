package css

import (
	"image/color"
	"testing"

	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValue(t *testing.T) {
	for _, tc := range []struct {
		text string
		want Value
	}{
		{"12", Scalar(12, UnitNone)},
		{"1.5px", Scalar(1.5, UnitPx)},
		{"-4pt", Scalar(-4, UnitPt)},
		{"50%", Scalar(50, UnitPercent)},
		{"3em", Scalar(3, UnitNone)},
		{"#ff0000", Color(color.RGBA{0xff, 0, 0, 0xff})},
		{"#01020304", Color(color.RGBA{1, 2, 3, 4})},
		{"center", Symbol("center")},
		{`"a b"`, String("a b")},
		{"  7  ", Scalar(7, UnitNone)},
	} {
		v, err := ParseValue(tc.text)
		require.NoError(t, err, tc.text)
		assert.Equal(t, tc.want, v, tc.text)
	}
	for _, bad := range []string{"", "4px 2px", "#12", "- 4", "url(x.png)"} {
		_, err := ParseValue(bad)
		assert.ErrorIs(t, err, ErrValue, "value %q", bad)
	}
}

func TestValueConversions(t *testing.T) {
	c, ok := Symbol("Blue").Color()
	assert.True(t, ok)
	assert.Equal(t, color.RGBA{0, 0, 0xff, 0xff}, c)
	_, ok = Symbol("bluish").Color()
	assert.False(t, ok)
	//
	d, ok := Scalar(10, UnitPt).Dimen()
	assert.True(t, ok)
	assert.Equal(t, dimen.DU(10*dimen.PT), d)
	d, ok = Scalar(4, UnitPx).Dimen()
	assert.True(t, ok)
	assert.Equal(t, dimen.DU(4*dimen.PX), d)
	d, ok = Scalar(2.5, UnitNone).Dimen()
	assert.True(t, ok)
	assert.Equal(t, 2.5, d.Points())
	d, _ = Scalar(1e6, UnitPt).Dimen()
	assert.Equal(t, dimen.DU(dimen.Infinity), d)
	_, ok = Scalar(4, UnitPercent).Dimen()
	assert.False(t, ok)
	p, ok := Scalar(80, UnitPercent).Percentage()
	assert.True(t, ok)
	assert.Equal(t, percent.FromInt(80), p)
	p, ok = Scalar(12.5, UnitPercent).Percentage()
	assert.True(t, ok)
	assert.Equal(t, percent.Percent(13), p)
	x, _ := Scalar(12.5, UnitPercent).Scalar()
	assert.Equal(t, 12.5, x)
	p, _ = Scalar(250, UnitPercent).Percentage()
	assert.Equal(t, percent.Percent(100), p)
	//
	s, ok := String("x").Text()
	assert.True(t, ok)
	assert.Equal(t, "x", s)
	_, ok = Scalar(1, UnitNone).Text()
	assert.False(t, ok)
}

func TestColorString(t *testing.T) {
	assert.Equal(t, "red", ColorString(color.RGBA{0xff, 0, 0, 0xff}))
	assert.Equal(t, "#123456", ColorString(color.RGBA{0x12, 0x34, 0x56, 0xff}))
	assert.Equal(t, "#12345678", ColorString(color.RGBA{0x12, 0x34, 0x56, 0x78}))
	assert.Equal(t, "12px", Scalar(12, UnitPx).String())
}
