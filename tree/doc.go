/*
Package tree implements an all-purpose tree type.

There are many tree implementations around. This one supports trees
of a fairly simple structure: every node holds a payload, a parent link and
an ordered slice of children. Other tree types (e.g., the widget graph) are
built on top of it by composition, embedding a Node and pointing the
payload back at the embedding type.

# Walkers

We support a set of search & filter functions on tree nodes. Clients will chain
these to perform tasks on nodes. You may think of the set of operations to
form a small Domain Specific Language (DSL), similar in concept to JQuery,
but of course with a much smaller set of functions.

Navigation functions:

	Parent()                     // find parent for all selected nodes
	AncestorWith(predicate)      // find ancestor with a given predicate
	DescendentsWith(predicate)   // find descendents with a given predicate
	AllDescendents()             // find all descendents
	TopDown(action)              // traverse all nodes top down (depth first)

All operations run synchronously.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxlayout.tree'.
func tracer() tracing.Trace {
	return tracing.Select("boxlayout.tree")
}
