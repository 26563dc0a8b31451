/*
Package boxlayout is a box-constraint layout engine for widget trees, with
a small CSS-style cascade for theming.

Widgets are kept in a graph (package graph). Every widget carries a layout
algorithm (package layout) which receives box constraints from its parent,
requests sizes for its children and reports its own size. Algorithms are
resumable: instead of recursing into children they return a request to the
driver, which keeps an explicit stack of suspended layouts. Deep widget
trees therefore never grow the Go stack.

Themes (package theme) resolve visual properties like padding or colors
for a widget's selector against a style sheet (package css). Rules are
ranked by importance and specificity, later rules winning ties.

	g := graph.New(theme.New(sheet))
	col := g.Add(layout.NewLinear(layout.Vertical), nil, css.Element("column"))
	…
	size, err := g.Layout(col, layout.Loose(layout.Dim(320, 200)))

Package layoutdbg helps debugging laid out graphs, and command boxdump
lays out widget trees described in YAML.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package boxlayout
