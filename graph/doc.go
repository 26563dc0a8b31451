/*
Package graph implements a widget graph to be laid out by package layout.

Widgets are nodes of a tree, built on top of the general purpose tree of
package tree. Every node carries

  - a layout algorithm, deciding how its children are sized and placed
  - a layout item, a hint for the algorithm of its parent
  - a CSS selector and an interaction state, used for theming
  - its rectangle, as computed by the most recent layout pass

Nodes are addressed by layout.ID. IDs are handed out in order of creation
and are never reused, not even after a node has been removed.

	g := graph.New(theme.Default())
	col := g.Add(layout.NewLinear(layout.Vertical), nil, css.Element("column"))
	btn := g.Add(layout.Fixed(layout.Dim(80, 20)), layout.LinearItem{}, css.Element("button"))
	g.AddChild(col, btn)
	size, err := g.Layout(col, layout.Loose(layout.Dim(640, 480)))

A graph is not safe for concurrent use. During a layout pass the driver has
exclusive access to it.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package graph

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxlayout.graph'.
func tracer() tracing.Trace {
	return tracing.Select("boxlayout.graph")
}
