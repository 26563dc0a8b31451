/*
Package css provides a small cascade resolver for widget styles.

A Sheet holds rules, each rule a list of selectors and a list of
declarations. Widgets describe themselves with a Selector (element name,
id, classes and pseudo-classes, optionally the selectors of their
ancestors) and query the sheet for single properties:

	sheet, err := css.Parse(`button { padding: 4px }  #ok.primary:hover { color: #ff0000 }`)
	...
	color := sheet.Color("color", css.Element("button").WithID("ok").WithClass("primary").WithPseudoClass("hover"))

Among all declarations for a property whose rule has a selector matching
the query, the winner is the one with the highest (important,
specificity). Of two equally ranked declarations the one declared later
wins.

Parsing is done by github.com/aymerick/douceur, wrapped by package
cssom/douceuradapter. Selectors and values are tokenized with the
github.com/gorilla/css scanner. Malformed rules and declarations are
dropped and reported as diagnostics, but do not stop parsing.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package css

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxlayout.css'.
func tracer() tracing.Trace {
	return tracing.Select("boxlayout.css")
}
