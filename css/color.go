package css

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// basicPalette holds the CSS basic color keywords.
var basicPalette = map[string]color.RGBA{
	"black":       {0, 0, 0, 0xff},
	"silver":      {0xc0, 0xc0, 0xc0, 0xff},
	"gray":        {0x80, 0x80, 0x80, 0xff},
	"grey":        {0x80, 0x80, 0x80, 0xff},
	"white":       {0xff, 0xff, 0xff, 0xff},
	"maroon":      {0x80, 0, 0, 0xff},
	"red":         {0xff, 0, 0, 0xff},
	"purple":      {0x80, 0, 0x80, 0xff},
	"fuchsia":     {0xff, 0, 0xff, 0xff},
	"green":       {0, 0x80, 0, 0xff},
	"lime":        {0, 0xff, 0, 0xff},
	"olive":       {0x80, 0x80, 0, 0xff},
	"yellow":      {0xff, 0xff, 0, 0xff},
	"navy":        {0, 0, 0x80, 0xff},
	"blue":        {0, 0, 0xff, 0xff},
	"teal":        {0, 0x80, 0x80, 0xff},
	"aqua":        {0, 0xff, 0xff, 0xff},
	"powderblue":  {0xb0, 0xe0, 0xe6, 0xff},
	"transparent": {0, 0, 0, 0},
}

// NamedColor looks up a color keyword, case-insensitive.
func NamedColor(name string) (color.RGBA, bool) {
	c, ok := basicPalette[strings.ToLower(name)]
	return c, ok
}

// ParseHexColor reads colors in notation #rrggbb or #rrggbbaa. The leading
// '#' is optional.
func ParseHexColor(hex string) (color.RGBA, error) {
	h := strings.TrimPrefix(hex, "#")
	if len(h) != 6 && len(h) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: need 6 or 8 digits", hex)
	}
	x, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	if len(h) == 6 {
		x = x<<8 | 0xff
	}
	return color.RGBA{
		R: uint8(x >> 24),
		G: uint8(x >> 16),
		B: uint8(x >> 8),
		A: uint8(x),
	}, nil
}

// ColorString returns a color keyword for c, if it is in the palette, or
// its hex notation otherwise.
func ColorString(c color.RGBA) string {
	for _, name := range []string{"black", "white", "red", "lime", "blue", "gray", "transparent"} {
		if basicPalette[name] == c {
			return name
		}
	}
	for name, p := range basicPalette {
		if p == c && name != "grey" {
			return name
		}
	}
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}
