package cssom

// StyleSheet is an interface to abstract away a stylesheet-implementation.
// Clients of the cascade resolver provide a concrete implementation of this
// interface (e.g., see package douceuradapter).
//
// See interface Rule.
type StyleSheet interface {
	AppendRules(StyleSheet) // append rules from another stylesheet
	Empty() bool            // does this stylesheet contain any rules?
	Rules() []Rule          // all the rules of a stylesheet, in source order
}

// Rule is the type stylesheets consists of.
//
// See interface StyleSheet.
type Rule interface {
	Selector() string               // the prelude / selectors of the rule
	IsAtRule() bool                 // at-rules (@media etc.) carry no declarations for us
	DeclarationList() []Declaration // declarations in source order, repetitions included
	Properties() []string           // property keys, e.g. "margin-top", without repetitions
	Value(string) string            // property value for key, e.g. "15px"; last one wins
	IsImportant(string) bool        // is property key marked as important?
}

// Declaration is a raw property setting, e.g.
//
//	color: black !important
type Declaration struct {
	Property  string
	Value     string
	Important bool
}

// Last returns the last declaration for a property key from a list of
// declarations, mirroring the cascade rule that later declarations win.
func Last(decls []Declaration, key string) (Declaration, bool) {
	for i := len(decls) - 1; i >= 0; i-- {
		if decls[i].Property == key {
			return decls[i], true
		}
	}
	tracer().Debugf("cssom: no declaration for %q", key)
	return Declaration{}, false
}

// Keys returns the distinct property keys of a list of declarations, in
// order of first appearance.
func Keys(decls []Declaration) []string {
	seen := make(map[string]bool, len(decls))
	keys := make([]string, 0, len(decls))
	for _, d := range decls {
		if !seen[d.Property] {
			seen[d.Property] = true
			keys = append(keys, d.Property)
		}
	}
	return keys
}
