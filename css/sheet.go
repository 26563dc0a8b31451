package css

import (
	"image/color"
	"strings"

	"github.com/npillmayer/boxlayout/maybe"
	"go.uber.org/multierr"
)

// Declaration is a single property setting within a rule.
type Declaration struct {
	Property  string
	Value     Value
	Important bool
}

// Rule is a list of selectors with declarations applying to all of them.
type Rule struct {
	Selectors    []Selector
	Declarations []Declaration
}

// lookup finds the declaration of a property. If a property is declared
// more than once, the last declaration is in effect.
func (r Rule) lookup(property string) (Declaration, bool) {
	for i := len(r.Declarations) - 1; i >= 0; i-- {
		if r.Declarations[i].Property == property {
			return r.Declarations[i], true
		}
	}
	return Declaration{}, false
}

// specificityFor returns the highest specificity of all selectors of r
// matching q, or false if none does.
func (r Rule) specificityFor(q Selector) (Specificity, bool) {
	var best Specificity
	found := false
	for _, sel := range r.Selectors {
		if !sel.Matches(q) {
			continue
		}
		if sp := sel.Specificity(); !found || best.Less(sp) {
			best = sp
		}
		found = true
	}
	return best, found
}

func (r Rule) String() string {
	sels := make([]string, len(r.Selectors))
	for i, s := range r.Selectors {
		sels[i] = s.String()
	}
	var b strings.Builder
	b.WriteString(strings.Join(sels, ", "))
	b.WriteString(" {")
	for _, d := range r.Declarations {
		b.WriteString(" " + d.Property + ": " + d.Value.String())
		if d.Important {
			b.WriteString(" !important")
		}
		b.WriteString(";")
	}
	b.WriteString(" }")
	return b.String()
}

// Sheet is an ordered list of rules. Order matters: of two equally ranked
// declarations, the one of the later rule wins.
//
// A Sheet is not modified by lookups and may be shared between readers.
type Sheet struct {
	rules       []Rule
	diagnostics error
}

// NewSheet creates a sheet from rules, in declaration order.
func NewSheet(rules ...Rule) *Sheet {
	return &Sheet{rules: append([]Rule(nil), rules...)}
}

// Rules returns the rules of a sheet, in declaration order.
func (sh *Sheet) Rules() []Rule {
	if sh == nil {
		return nil
	}
	return sh.rules
}

// Append adds rules from another sheet, which take precedence over the
// existing rules on ties.
func (sh *Sheet) Append(other *Sheet) {
	if other == nil {
		return
	}
	sh.rules = append(sh.rules, other.rules...)
	sh.diagnostics = multierr.Append(sh.diagnostics, other.diagnostics)
}

// Diagnostics returns the problems found while parsing, combined into a
// single error, or nil. Use multierr.Errors to get them one by one.
func (sh *Sheet) Diagnostics() error {
	if sh == nil {
		return nil
	}
	return sh.diagnostics
}

func (sh *Sheet) report(err error) {
	tracer().Errorf("css: %v", err)
	sh.diagnostics = multierr.Append(sh.diagnostics, err)
}

// Get resolves the cascaded value of a property for a widget described by
// selector q.
//
// Every rule with at least one selector matching q and a declaration for
// property is a candidate, ranked by importance first, then by the highest
// specificity of its matching selectors. Ties are won by the later rule.
func (sh *Sheet) Get(property string, q Selector) maybe.Maybe[Value] {
	if sh == nil {
		return maybe.Nothing[Value]()
	}
	var winner Declaration
	var best Specificity
	found := false
	for _, rule := range sh.rules {
		decl, ok := rule.lookup(property)
		if !ok {
			continue
		}
		sp, ok := rule.specificityFor(q)
		if !ok {
			continue
		}
		if !found || !outranks(winner.Important, best, decl.Important, sp) {
			winner, best, found = decl, sp, true
		}
	}
	if !found {
		return maybe.Nothing[Value]()
	}
	tracer().Debugf("css: %s for %v = %v", property, q, winner.Value)
	return maybe.Just(winner.Value)
}

// outranks is true if (imp1, sp1) is strictly higher than (imp2, sp2).
func outranks(imp1 bool, sp1 Specificity, imp2 bool, sp2 Specificity) bool {
	if imp1 != imp2 {
		return imp1
	}
	return sp2.Less(sp1)
}

// Color resolves a property to a color. Values which are no colors yield
// Nothing.
func (sh *Sheet) Color(property string, q Selector) maybe.Maybe[color.RGBA] {
	return maybe.AndThen(func(v Value) maybe.Maybe[color.RGBA] {
		return maybe.FromOK(v.Color())
	}, sh.Get(property, q))
}

// Scalar resolves a property to a number, ignoring its unit.
func (sh *Sheet) Scalar(property string, q Selector) maybe.Maybe[float64] {
	return maybe.AndThen(func(v Value) maybe.Maybe[float64] {
		return maybe.FromOK(v.Scalar())
	}, sh.Get(property, q))
}

// String resolves a property to the text of a symbol or quoted string.
func (sh *Sheet) String(property string, q Selector) maybe.Maybe[string] {
	return maybe.AndThen(func(v Value) maybe.Maybe[string] {
		return maybe.FromOK(v.Text())
	}, sh.Get(property, q))
}

// Align resolves a property to an alignment.
func (sh *Sheet) Align(property string, q Selector) maybe.Maybe[Alignment] {
	return maybe.AndThen(func(s string) maybe.Maybe[Alignment] {
		return maybe.FromOK(ParseAlignment(s))
	}, sh.String(property, q))
}

// Alignment is the relative position of a widget within the space of its
// parent.
type Alignment uint8

// Alignments.
const (
	AlignStart Alignment = iota
	AlignMiddle
	AlignEnd
)

// ParseAlignment reads start, middle (or center) and end.
func ParseAlignment(s string) (Alignment, bool) {
	switch strings.ToLower(s) {
	case "start", "left", "top":
		return AlignStart, true
	case "middle", "center":
		return AlignMiddle, true
	case "end", "right", "bottom":
		return AlignEnd, true
	}
	return AlignStart, false
}

func (a Alignment) String() string {
	switch a {
	case AlignMiddle:
		return "middle"
	case AlignEnd:
		return "end"
	}
	return "start"
}
