/*
Package layout computes sizes and positions for a tree of widgets.

# Overview

Layout follows a box-constraint model. A parent hands each child a set of
BoxConstraints (minimum and maximum width and height); the child answers
with its resolved Dimensions; the parent then positions the child relative
to its own origin. Every widget node carries a Layout algorithm, deciding
how it treats its children, and an Item, a hint for the algorithm of its
parent.

Built-in algorithms are

	Childless   fixed-size leaf, refuses children
	Stack       children overlap, each one fills the maximum box
	Linear      children placed one after another along an axis
	Inset       single child, padded by explicit or themed padding

Clients may add their own algorithms by implementing interface Layout.

# Resumable Algorithms

Algorithms never recurse into their children. Whenever an algorithm needs a
child to be measured, it returns RequestChild(id, constraints) to the
Driver. The Driver lays out the child (which may suspend itself several
times), then calls the same Layout value again, handing over the child's
size. Algorithms keep explicit step counters and accumulators to resume
where they left off:

	Layout(c, children, Nothing, ctx)   -> RequestChild(a, ca)
	  ... driver lays out a ...
	Layout(c, children, Just(size a), ctx) -> RequestChild(b, cb)
	  ... driver lays out b ...
	Layout(c, children, Just(size b), ctx) -> Size(dims)

The driver owns the widget graph for the whole pass. Algorithms reach the
graph through a Context only.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package layout

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxlayout.layout'.
func tracer() tracing.Trace {
	return tracing.Select("boxlayout.layout")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("layout: "+msg, msgargs...)
		panic(msg)
	}
}
