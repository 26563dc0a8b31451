/*
Package theme holds style defaults for widgets and resolves them against a
cascading style sheet.

A Theme carries fallback values (padding, colors, border width, font sizes)
and, optionally, a css.Sheet. Lookups first consult the sheet with the
selector of a widget and fall back to the theme's defaults:

	th := theme.New(sheet, theme.WithName("dark"))
	pad := th.PaddingFor(css.Element("button"))

Widgets change their appearance depending on their InteractionState
(hovered, pressed, focused, ...). A state is either turned into CSS
pseudo-classes and added to the widget's selector, or used to pick
overrides from a Styles builder.

A theme is passed to layout algorithms explicitly through the layout
context. There is no global theme.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package theme

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxlayout.theme'.
func tracer() tracing.Trace {
	return tracing.Select("boxlayout.theme")
}
