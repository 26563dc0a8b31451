/*
Package cssom decouples the cascade resolver from concrete CSS parsers.

CSSOM is the "CSS Object Model", similar to the DOM for HTML. We only need a
tiny part of it: a stylesheet is a list of rules, a rule has a prelude
(its selectors, as text) and a list of declarations. Package css reads
stylesheets through the interfaces StyleSheet and Rule and builds its own
typed rules from them. A concrete implementation over
github.com/aymerick/douceur may be found in sub-package douceuradapter.

Having this interface imposes a performance hit. However, style sheets for
widgets are small and parsed once per theme.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'boxlayout.css'.
func tracer() tracing.Trace {
	return tracing.Select("boxlayout.css")
}
