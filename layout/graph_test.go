package layout

import (
	"github.com/npillmayer/boxlayout/css"
	"github.com/npillmayer/boxlayout/maybe"
	"github.com/npillmayer/boxlayout/theme"
)

// testGraph is a minimal Graph for testing algorithms without package graph.
type testGraph struct {
	nodes map[ID]*testNode
	pass  int
}

type testNode struct {
	algo     Layout
	item     Item
	children []ID
	pos      Point
	size     Dimensions
	sized    int // pass in which size was set
	sel      css.Selector
}

func newTestGraph() *testGraph {
	return &testGraph{nodes: make(map[ID]*testNode)}
}

func (g *testGraph) add(id ID, algo Layout, item Item, children ...ID) *testGraph {
	g.nodes[id] = &testNode{algo: algo, item: item, children: children}
	return g
}

func (g *testGraph) Contains(id ID) bool {
	_, ok := g.nodes[id]
	return ok
}

func (g *testGraph) Children(id ID) []ID {
	return g.nodes[id].children
}

func (g *testGraph) Algorithm(id ID) Layout {
	return g.nodes[id].algo
}

func (g *testGraph) LayoutItem(id ID) Item {
	return g.nodes[id].item
}

func (g *testGraph) Position(id ID, p Point) {
	g.nodes[id].pos = p
}

func (g *testGraph) SetSize(id ID, d Dimensions) {
	n := g.nodes[id]
	n.size = d
	n.sized = g.pass
}

func (g *testGraph) GetSize(id ID) maybe.Maybe[Dimensions] {
	n := g.nodes[id]
	if n.sized != g.pass {
		return maybe.Nothing[Dimensions]()
	}
	return maybe.Just(n.size)
}

func (g *testGraph) Selector(id ID) css.Selector {
	return g.nodes[id].sel
}

func (g *testGraph) Theme() *theme.Theme {
	return nil
}

func (g *testGraph) BeginPass() {
	g.pass++
}

func (g *testGraph) pos(id ID) Point {
	return g.nodes[id].pos
}

func (g *testGraph) size(id ID) Dimensions {
	return g.nodes[id].size
}

var _ Graph = &testGraph{}
