package graph

import (
	"errors"
	"fmt"

	"github.com/npillmayer/boxlayout/css"
	"github.com/npillmayer/boxlayout/layout"
	"github.com/npillmayer/boxlayout/maybe"
	"github.com/npillmayer/boxlayout/theme"
	"github.com/npillmayer/boxlayout/tree"
)

// ErrCycle is returned if adding a child would create a cycle.
var ErrCycle = errors.New("node would become its own ancestor")

// Graph is a tree (or forest) of widget nodes.
type Graph struct {
	nodes []*Node // index is id-1; nil for removed nodes
	theme *theme.Theme
	pass  uint64 // current layout pass, starting at 1; nodes never sized carry 0
	opts  []layout.Option
}

// New creates an empty widget graph. th is handed to layout algorithms
// during layout passes; it may be nil, in which case the default theme is
// used.
func New(th *theme.Theme, opts ...layout.Option) *Graph {
	return &Graph{theme: th, opts: opts, pass: 1}
}

// Add creates a new, unattached widget node and returns its id.
func (g *Graph) Add(algo layout.Layout, item layout.Item, sel css.Selector) layout.ID {
	id := layout.ID(len(g.nodes) + 1)
	g.nodes = append(g.nodes, newNode(id, algo, item, sel))
	tracer().Debugf("graph: added node %d %v", id, sel)
	return id
}

// Node returns the widget node for an id.
func (g *Graph) Node(id layout.ID) (*Node, bool) {
	if id == layout.NoID || int(id) > len(g.nodes) {
		return nil, false
	}
	n := g.nodes[id-1]
	return n, n != nil
}

func (g *Graph) node(id layout.ID) (*Node, error) {
	n, ok := g.Node(id)
	if !ok {
		return nil, fmt.Errorf("graph: node %d: %w", id, layout.ErrUnknownNode)
	}
	return n, nil
}

// mustNode is used on the driver's side, where unknown ids are programmer
// errors.
func (g *Graph) mustNode(id layout.ID) *Node {
	n, ok := g.Node(id)
	if !ok {
		panic(fmt.Sprintf("graph: node %d is not a widget node", id))
	}
	return n
}

// AddChild appends child to the children of parent. A child already
// attached elsewhere is moved. Adding a child twice does not duplicate it.
func (g *Graph) AddChild(parent, child layout.ID) error {
	p, err := g.node(parent)
	if err != nil {
		return err
	}
	ch, err := g.node(child)
	if err != nil {
		return err
	}
	if p == ch || isAncestor(ch, p) {
		return fmt.Errorf("graph: cannot add %d to %d: %w", child, parent, ErrCycle)
	}
	p.AddChild(&ch.Node)
	return nil
}

// Remove detaches the subtree at id. All nodes of the subtree are removed
// from the graph; their ids stay invalid.
func (g *Graph) Remove(id layout.ID) error {
	n, err := g.node(id)
	if err != nil {
		return err
	}
	n.Isolate()
	subtree, err := tree.NewWalker(&n.Node).AllDescendents().Result()
	if err != nil && !errors.Is(err, tree.ErrEmptyTree) {
		return err
	}
	for _, d := range subtree {
		g.nodes[widget(d).id-1] = nil
	}
	g.nodes[n.id-1] = nil
	tracer().Debugf("graph: removed subtree at %d (%d nodes)", id, len(subtree)+1)
	return nil
}

// Len returns the number of nodes in the graph.
func (g *Graph) Len() int {
	cnt := 0
	for _, n := range g.nodes {
		if n != nil {
			cnt++
		}
	}
	return cnt
}

// SetLayout replaces the layout algorithm of a node.
func (g *Graph) SetLayout(id layout.ID, algo layout.Layout) error {
	n, err := g.node(id)
	if err != nil {
		return err
	}
	n.algo = algo
	return nil
}

// SetItem replaces the layout item of a node.
func (g *Graph) SetItem(id layout.ID, item layout.Item) error {
	n, err := g.node(id)
	if err != nil {
		return err
	}
	n.item = item
	return nil
}

// SetState sets the interaction state of a node, which is reflected as
// pseudo-classes in the node's style selector.
func (g *Graph) SetState(id layout.ID, state theme.InteractionState) error {
	n, err := g.node(id)
	if err != nil {
		return err
	}
	n.state = state
	return nil
}

// Rect returns the box of a node relative to its parent.
func (g *Graph) Rect(id layout.ID) (layout.Rect, error) {
	n, err := g.node(id)
	if err != nil {
		return layout.Rect{}, err
	}
	return n.rect, nil
}

// AbsoluteRect returns the box of a node relative to the root of its tree.
func (g *Graph) AbsoluteRect(id layout.ID) (layout.Rect, error) {
	n, err := g.node(id)
	if err != nil {
		return layout.Rect{}, err
	}
	r := n.rect
	for _, a := range ancestors(n) {
		r = r.Translate(a.rect.Min)
	}
	return r, nil
}

// Walk returns a walker on the subtree at id, or nil for an unknown id.
func (g *Graph) Walk(id layout.ID) *tree.Walker[*Node] {
	n, ok := g.Node(id)
	if !ok {
		return nil
	}
	return tree.NewWalker(&n.Node)
}

// Layout runs a layout pass on the subtree at root with constraints c.
// The root is positioned at the origin.
func (g *Graph) Layout(root layout.ID, c layout.BoxConstraints) (layout.Dimensions, error) {
	n, err := g.node(root)
	if err != nil {
		return layout.Dimensions{}, err
	}
	size, err := g.driver().Run(root, c)
	if err != nil {
		return size, err
	}
	if n.ParentNode() == nil {
		n.rect = n.rect.MoveTo(layout.Point{})
	}
	return size, nil
}

// Measure lays out the subtree at id within the current pass, without
// invalidating sizes resolved earlier in that pass.
func (g *Graph) Measure(id layout.ID, c layout.BoxConstraints) (layout.Dimensions, error) {
	if _, err := g.node(id); err != nil {
		return layout.Dimensions{}, err
	}
	return g.driver().Measure(id, c)
}

func (g *Graph) driver() *layout.Driver {
	return layout.NewDriver(g, g.opts...)
}

// --- Driver interface ------------------------------------------------------

// Contains is part of interface layout.Graph.
func (g *Graph) Contains(id layout.ID) bool {
	_, ok := g.Node(id)
	return ok
}

// Children returns the ids of the direct children of a node, in order.
// Unknown ids have no children.
func (g *Graph) Children(id layout.ID) []layout.ID {
	n, ok := g.Node(id)
	if !ok {
		return nil
	}
	children := n.Node.Children()
	ids := make([]layout.ID, 0, len(children))
	seen := make(map[layout.ID]bool, len(children))
	for _, ch := range children {
		if cid := widget(ch).id; !seen[cid] {
			seen[cid] = true
			ids = append(ids, cid)
		}
	}
	return ids
}

// Algorithm is part of interface layout.Graph.
func (g *Graph) Algorithm(id layout.ID) layout.Layout {
	return g.mustNode(id).algo
}

// LayoutItem is part of interface layout.Graph.
func (g *Graph) LayoutItem(id layout.ID) layout.Item {
	return g.mustNode(id).item
}

// Position is part of interface layout.Graph.
func (g *Graph) Position(id layout.ID, p layout.Point) {
	n := g.mustNode(id)
	n.rect = n.rect.MoveTo(p)
}

// SetSize is part of interface layout.Graph.
func (g *Graph) SetSize(id layout.ID, d layout.Dimensions) {
	n := g.mustNode(id)
	n.rect = n.rect.Resize(d)
	n.sized = g.pass
}

// GetSize is part of interface layout.Graph. Sizes of nodes not laid out
// in the current pass are Nothing.
func (g *Graph) GetSize(id layout.ID) maybe.Maybe[layout.Dimensions] {
	n, ok := g.Node(id)
	if !ok || n.sized != g.pass {
		return maybe.Nothing[layout.Dimensions]()
	}
	return maybe.Just(n.rect.Size())
}

// Selector returns the style selector of a node: the node's own selector
// with pseudo-classes for its interaction state, related to the selectors
// of its ancestors.
func (g *Graph) Selector(id layout.ID) css.Selector {
	n, ok := g.Node(id)
	if !ok {
		return css.Any()
	}
	chain := append([]*Node{n}, ancestors(n)...)
	sel := chain[len(chain)-1].styled()
	for i := len(chain) - 2; i >= 0; i-- {
		sel = chain[i].styled().ChildOf(sel)
	}
	return sel
}

// ancestors returns the ancestors of n, nearest first.
func ancestors(n *Node) []*Node {
	var result []*Node
	w := tree.NewWalker(&n.Node)
	for {
		sel, err := w.Parent().Result()
		if err != nil || len(sel) == 0 {
			return result
		}
		result = append(result, widget(sel[0]))
	}
}

// isAncestor is true if a is an ancestor of n.
func isAncestor(a, n *Node) bool {
	found, _ := tree.NewWalker(&n.Node).AncestorWith(func(test, _ *tree.Node[*Node]) (*tree.Node[*Node], error) {
		if test == &a.Node {
			return test, nil
		}
		return nil, nil
	}).Result()
	return len(found) > 0
}

// Theme is part of interface layout.Graph.
func (g *Graph) Theme() *theme.Theme {
	return g.theme
}

// BeginPass is part of interface layout.Graph.
func (g *Graph) BeginPass() {
	g.pass++
	tracer().Debugf("graph: begin layout pass %d", g.pass)
}

var _ layout.Graph = &Graph{}
