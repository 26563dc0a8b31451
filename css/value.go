package css

import (
	"fmt"
	"image/color"
	"math"

	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
)

// Unit is the unit of a scalar value.
type Unit uint8

// Units for scalars. Unknown units are read as UnitNone.
const (
	UnitNone Unit = iota
	UnitPx
	UnitPt
	UnitPercent
)

func (u Unit) String() string {
	switch u {
	case UnitPx:
		return "px"
	case UnitPt:
		return "pt"
	case UnitPercent:
		return "%"
	}
	return ""
}

func unitFromString(s string) Unit {
	switch s {
	case "px":
		return UnitPx
	case "pt":
		return UnitPt
	case "%":
		return UnitPercent
	}
	return UnitNone
}

type valueKind uint8

const (
	kindNone valueKind = iota
	kindScalar
	kindColor
	kindSymbol
	kindString
)

// Value is the value of a declaration: a scalar with a unit, a color, a
// symbol (an identifier like `center`) or a quoted string.
//
// Values are comparable.
type Value struct {
	kind   valueKind
	scalar float64
	unit   Unit
	color  color.RGBA
	text   string
}

// Scalar creates a scalar value.
func Scalar(x float64, u Unit) Value {
	return Value{kind: kindScalar, scalar: x, unit: u}
}

// Color creates a color value.
func Color(c color.RGBA) Value {
	return Value{kind: kindColor, color: c}
}

// Symbol creates an identifier value.
func Symbol(s string) Value {
	return Value{kind: kindSymbol, text: s}
}

// String creates a string value.
func String(s string) Value {
	return Value{kind: kindString, text: s}
}

// Scalar returns the number of a scalar value, ignoring its unit.
func (v Value) Scalar() (float64, bool) {
	return v.scalar, v.kind == kindScalar
}

// Unit returns the unit of a scalar value.
func (v Value) Unit() Unit {
	return v.unit
}

// Color returns the color of a color value. Symbols naming a color of the
// CSS basic palette are converted.
func (v Value) Color() (color.RGBA, bool) {
	switch v.kind {
	case kindColor:
		return v.color, true
	case kindSymbol:
		return NamedColor(v.text)
	}
	return color.RGBA{}, false
}

// Text returns the text of a symbol or string value.
func (v Value) Text() (string, bool) {
	return v.text, v.kind == kindSymbol || v.kind == kindString
}

// Dimen converts a length into typesetting units. Pixels and scalars
// without a unit count as big points, percentages are no lengths.
func (v Value) Dimen() (dimen.DU, bool) {
	if v.kind != kindScalar {
		return 0, false
	}
	switch v.unit {
	case UnitNone, UnitPx:
		return toDU(v.scalar * float64(dimen.PX)), true
	case UnitPt:
		return toDU(v.scalar * float64(dimen.PT)), true
	}
	return 0, false
}

// toDU rounds x to scaled points, saturating at ±dimen.Infinity.
func toDU(x float64) dimen.DU {
	return dimen.DU(math.Max(-dimen.Infinity, math.Min(dimen.Infinity, math.Round(x))))
}

// Percentage returns a %-value. Percentages are integral and clamped
// between 0 and 100, so 12.5% yields 13%. Scalar returns the exact number.
func (v Value) Percentage() (percent.Percent, bool) {
	if v.kind != kindScalar || v.unit != UnitPercent {
		return percent.FromInt(0), false
	}
	return percent.FromFloat(v.scalar), true
}

func (v Value) String() string {
	switch v.kind {
	case kindScalar:
		return fmt.Sprintf("%g%s", v.scalar, v.unit)
	case kindColor:
		return ColorString(v.color)
	case kindSymbol:
		return v.text
	case kindString:
		return fmt.Sprintf("%q", v.text)
	}
	return "<none>"
}

// --- Matching --------------------------------------------------------------

// Match starts a type switch on a value:
//
//	var c color.RGBA
//	var x float64
//	switch m := v.Match(); m {
//	case m.Color(&c):
//	    ...
//	case m.Scalar(&x, nil):
//	    ...
//	}
func (v Value) Match() *ValueMatcher {
	return &ValueMatcher{value: v}
}

// ValueMatcher is returned by Value.Match. Each method returns the matcher
// if the value is of the respective kind, nil otherwise. Target pointers
// may be nil.
type ValueMatcher struct {
	value Value
}

// Scalar matches a scalar value.
func (m *ValueMatcher) Scalar(x *float64, u *Unit) *ValueMatcher {
	if m.value.kind != kindScalar {
		return nil
	}
	if x != nil {
		*x = m.value.scalar
	}
	if u != nil {
		*u = m.value.unit
	}
	return m
}

// Color matches a color value. Named colors given as symbols do not match,
// use Value.Color to convert these.
func (m *ValueMatcher) Color(c *color.RGBA) *ValueMatcher {
	if m.value.kind != kindColor {
		return nil
	}
	if c != nil {
		*c = m.value.color
	}
	return m
}

// Symbol matches an identifier value.
func (m *ValueMatcher) Symbol(s *string) *ValueMatcher {
	if m.value.kind != kindSymbol {
		return nil
	}
	if s != nil {
		*s = m.value.text
	}
	return m
}

// Quoted matches a quoted string value.
func (m *ValueMatcher) Quoted(s *string) *ValueMatcher {
	if m.value.kind != kindString {
		return nil
	}
	if s != nil {
		*s = m.value.text
	}
	return m
}
