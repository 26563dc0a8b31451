package css

import (
	"sort"
	"strings"
)

// Specificity ranks selectors. Components are compared most significant
// first: number of ids, number of classes and pseudo-classes, number of
// element names.
type Specificity [3]int

// Add sums two specificities component-wise.
func (s Specificity) Add(t Specificity) Specificity {
	return Specificity{s[0] + t[0], s[1] + t[1], s[2] + t[2]}
}

// Less compares lexicographically.
func (s Specificity) Less(t Specificity) bool {
	for i := range s {
		if s[i] != t[i] {
			return s[i] < t[i]
		}
	}
	return false
}

// RelationKind is the combinator between a selector and its outer selector.
type RelationKind uint8

// Combinators.
const (
	Ancestor RelationKind = iota // descendant combinator "a b"
	Parent                       // child combinator "a > b"
)

func (k RelationKind) String() string {
	if k == Parent {
		return ">"
	}
	return " "
}

// Relation ties a selector to a selector for an enclosing widget.
type Relation struct {
	Kind     RelationKind
	Selector Selector
}

// Selector describes a widget for style lookup. The zero value is the
// universal selector "*".
//
// Used in a rule, a Selector is a pattern. Used as a query, it describes a
// concrete widget; its Relation then holds the selector of the widget's
// parent (Kind Parent), with the chain continuing up to the root.
type Selector struct {
	Element       string // empty means any element
	ID            string
	Classes       []string
	PseudoClasses []string
	Relation      *Relation
}

// Element creates a selector for an element name.
func Element(name string) Selector {
	return Selector{Element: name}
}

// Any is the universal selector.
func Any() Selector {
	return Selector{}
}

// WithID returns a copy of s with the id set.
func (s Selector) WithID(id string) Selector {
	s.ID = id
	return s
}

// WithClass returns a copy of s with an additional class.
func (s Selector) WithClass(class string) Selector {
	s.Classes = addName(s.Classes, class)
	return s
}

// WithoutClass returns a copy of s with a class removed.
func (s Selector) WithoutClass(class string) Selector {
	s.Classes = removeName(s.Classes, class)
	return s
}

// WithPseudoClass returns a copy of s with an additional pseudo-class.
func (s Selector) WithPseudoClass(pc string) Selector {
	s.PseudoClasses = addName(s.PseudoClasses, pc)
	return s
}

// WithoutPseudoClass returns a copy of s with a pseudo-class removed.
func (s Selector) WithoutPseudoClass(pc string) Selector {
	s.PseudoClasses = removeName(s.PseudoClasses, pc)
	return s
}

// Within returns a copy of s, related to an outer selector.
func (s Selector) Within(kind RelationKind, outer Selector) Selector {
	s.Relation = &Relation{Kind: kind, Selector: outer}
	return s
}

// ChildOf is a shortcut for s.Within(Parent, parent).
func (s Selector) ChildOf(parent Selector) Selector {
	return s.Within(Parent, parent)
}

// IsEmpty is true for the universal selector without relations.
func (s Selector) IsEmpty() bool {
	return s.Element == "" && s.ID == "" && len(s.Classes) == 0 && len(s.PseudoClasses) == 0 &&
		s.Relation == nil
}

// Specificity of s, summed over its relation chain.
func (s Selector) Specificity() Specificity {
	sp := Specificity{0, len(s.Classes) + len(s.PseudoClasses), 0}
	if s.ID != "" {
		sp[0] = 1
	}
	if s.Element != "" {
		sp[2] = 1
	}
	if s.Relation != nil {
		sp = sp.Add(s.Relation.Selector.Specificity())
	}
	return sp
}

// Matches checks if a widget described by query q is selected by s.
//
// The compound part of s has to match q itself. If s has a relation, the
// outer selector has to match q's parent (Parent) or any of q's ancestors
// (Ancestor). A query without ancestry never matches a selector with a
// relation.
func (s Selector) Matches(q Selector) bool {
	if !s.matchesCompound(q) {
		return false
	}
	if s.Relation == nil {
		return true
	}
	outer := s.Relation.Selector
	switch s.Relation.Kind {
	case Parent:
		return q.Relation != nil && outer.Matches(q.Relation.Selector)
	case Ancestor:
		for a := q.Relation; a != nil; a = a.Selector.Relation {
			if outer.Matches(a.Selector) {
				return true
			}
		}
	}
	return false
}

func (s Selector) matchesCompound(q Selector) bool {
	if s.Element != "" && s.Element != q.Element {
		return false
	}
	if s.ID != "" && s.ID != q.ID {
		return false
	}
	return isSubset(s.Classes, q.Classes) && isSubset(s.PseudoClasses, q.PseudoClasses)
}

func (s Selector) String() string {
	var b strings.Builder
	if s.Relation != nil {
		b.WriteString(s.Relation.Selector.String())
		if s.Relation.Kind == Parent {
			b.WriteString(" > ")
		} else {
			b.WriteString(" ")
		}
	}
	if s.Element == "" && s.ID == "" && len(s.Classes) == 0 && len(s.PseudoClasses) == 0 {
		b.WriteString("*")
	}
	b.WriteString(s.Element)
	if s.ID != "" {
		b.WriteString("#" + s.ID)
	}
	for _, c := range sorted(s.Classes) {
		b.WriteString("." + c)
	}
	for _, pc := range sorted(s.PseudoClasses) {
		b.WriteString(":" + pc)
	}
	return b.String()
}

// --- Helpers ---------------------------------------------------------------

// addName appends to a copy of names, avoiding duplicates.
func addName(names []string, name string) []string {
	for _, n := range names {
		if n == name {
			return names
		}
	}
	r := make([]string, len(names), len(names)+1)
	copy(r, names)
	return append(r, name)
}

func removeName(names []string, name string) []string {
	r := make([]string, 0, len(names))
	for _, n := range names {
		if n != name {
			r = append(r, n)
		}
	}
	return r
}

func isSubset(sub, super []string) bool {
	for _, s := range sub {
		found := false
		for _, t := range super {
			if s == t {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func sorted(names []string) []string {
	r := append([]string(nil), names...)
	sort.Strings(r)
	return r
}
