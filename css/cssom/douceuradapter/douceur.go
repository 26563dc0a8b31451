/*
Package douceuradapter is a concrete implementation of interface cssom.StyleSheet.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"fmt"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/boxlayout/css/cssom"
)

// CSSStyles is an adapter for interface cssom.StyleSheet.
// For an explanation of the motivation behind this design, please refer
// to documentation for package cssom.
type CSSStyles struct {
	css css.Stylesheet
}

// Parse parses CSS text with douceur and wraps the result.
func Parse(text string) (*CSSStyles, error) {
	sheet, err := parser.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("douceur: %w", err)
	}
	return Wrap(sheet), nil
}

// Wrap a douceur.css.Stylesheet into CssStyles.
// The stylesheet is now managed by the wrapper.
func Wrap(css *css.Stylesheet) *CSSStyles {
	if css == nil {
		return &CSSStyles{}
	}
	sheet := &CSSStyles{*css}
	return sheet
}

// Empty checks if this stylesheet contains any rules.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Empty() bool {
	return len(sheet.css.Rules) == 0
}

// AppendRules appends rules from another stylesheet.
// Other has to be a *CSSStyles as well, otherwise AppendRules is a no-op.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) AppendRules(other cssom.StyleSheet) {
	othercss, ok := other.(*CSSStyles)
	if !ok || othercss == nil {
		return
	}
	sheet.css.Rules = append(sheet.css.Rules, othercss.css.Rules...)
}

// Rules returns all the rules of a stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Rules() []cssom.Rule {
	rules := make([]cssom.Rule, len(sheet.css.Rules))
	for i := range sheet.css.Rules {
		rules[i] = Rule(*sheet.css.Rules[i])
	}
	return rules
}

var _ cssom.StyleSheet = &CSSStyles{}

// Rule is an adapter for interface cssom.Rule.
type Rule css.Rule

// Selector returns the prelude / selectors of the rule.
func (r Rule) Selector() string {
	return r.Prelude
}

// IsAtRule is true for @-rules, e.g. @media.
func (r Rule) IsAtRule() bool {
	return r.Kind == css.AtRule
}

// DeclarationList returns the declarations of the rule in source order.
func (r Rule) DeclarationList() []cssom.Declaration {
	decls := make([]cssom.Declaration, 0, len(r.Declarations))
	for _, d := range r.Declarations {
		decls = append(decls, cssom.Declaration{
			Property:  d.Property,
			Value:     d.Value,
			Important: d.Important,
		})
	}
	return decls
}

// Properties returns the property keys of a rule,
// e.g. "margin-top"
func (r Rule) Properties() []string {
	return cssom.Keys(r.DeclarationList())
}

// Value returns the property values for given key with this rule, e.g. "15px".
// If the key is declared more than once, the last declaration counts.
func (r Rule) Value(key string) string {
	d, _ := cssom.Last(r.DeclarationList(), key)
	return d.Value
}

// IsImportant returns true if a style key is marked as important ("!").
func (r Rule) IsImportant(key string) bool {
	d, _ := cssom.Last(r.DeclarationList(), key)
	return d.Important
}

var _ cssom.Rule = Rule{}
