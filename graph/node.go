package graph

import (
	"fmt"

	"github.com/npillmayer/boxlayout/css"
	"github.com/npillmayer/boxlayout/layout"
	"github.com/npillmayer/boxlayout/theme"
	"github.com/npillmayer/boxlayout/tree"
)

// Node is a widget node, the building block of the widget graph.
type Node struct {
	tree.Node[*Node] // we build on top of general purpose tree
	id               layout.ID
	algo             layout.Layout
	item             layout.Item
	selector         css.Selector
	state            theme.InteractionState
	rect             layout.Rect
	sized            uint64 // pass in which rect got its extent
}

func newNode(id layout.ID, algo layout.Layout, item layout.Item, sel css.Selector) *Node {
	n := &Node{id: id, algo: algo, item: item, selector: sel}
	n.Payload = n // Payload will always reference the node itself
	return n
}

// widget gets the widget node from a generic tree node.
func widget(n *tree.Node[*Node]) *Node {
	if n == nil {
		return nil
	}
	return n.Payload
}

// ID returns the id of the node.
func (n *Node) ID() layout.ID {
	return n.id
}

// Layout returns the layout algorithm of the node, which may be nil.
func (n *Node) Layout() layout.Layout {
	return n.algo
}

// Item returns the layout hint for the node's parent.
func (n *Node) Item() layout.Item {
	return n.item
}

// Selector returns the selector the node has been created with, without
// state and ancestry.
func (n *Node) Selector() css.Selector {
	return n.selector
}

// State returns the interaction state of the node.
func (n *Node) State() theme.InteractionState {
	return n.state
}

// styled is the node's selector with pseudo-classes for its state.
func (n *Node) styled() css.Selector {
	return n.state.Apply(n.selector)
}

// Rect returns the box of the node relative to its parent.
func (n *Node) Rect() layout.Rect {
	return n.rect
}

// ParentNode returns the widget node of the parent, or nil for roots.
func (n *Node) ParentNode() *Node {
	return widget(n.Parent())
}

func (n *Node) String() string {
	return fmt.Sprintf("#%d %v %v", n.id, n.selector, n.rect)
}
