package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
)

// ErrInvalidFilter is returned if a walker step is called with a nil function.
var ErrInvalidFilter = errors.New("filter stage is invalid")

// ErrEmptyTree is returned if a Walker is called with an empty tree. Refer to
// the documentation of NewWalker() for details about this scenario.
var ErrEmptyTree = errors.New("cannot walk empty tree")

// Walker holds information for operating on trees: finding nodes and
// doing work on them. Clients usually create a Walker for a (sub-)tree
// to search for a selection of nodes matching certain criteria, and
// then perform some operation on this selection.
//
// A typical usage of a Walker looks like this:
//
//	nodes, err := NewWalker(node).AncestorWith(predicate).TopDown(action).Result()
//
// Every step works on the selection of the previous step. Steps run
// synchronously in the caller's goroutine. Once a step fails, later steps
// are skipped and Result reports the error.
type Walker[T comparable] struct {
	initial   *Node[T]   // initial node of (sub-)tree
	selection []*Node[T] // current selection
	err       error      // first error encountered
}

// NewWalker creates a Walker for the initial node of a (sub-)tree.
// The initial selection consists of this node only.
//
// If initial is nil, NewWalker will return a nil-Walker, resulting
// in a NOP-chain of operations, resulting in an empty set of nodes
// and an error (ErrEmptyTree).
func NewWalker[T comparable](initial *Node[T]) *Walker[T] {
	if initial == nil {
		return nil
	}
	tracer().Debugf("new tree-walker, initial node = %v", initial)
	return &Walker[T]{initial: initial, selection: []*Node[T]{initial}}
}

// Result returns the current selection and the first error that occured.
func (w *Walker[T]) Result() ([]*Node[T], error) {
	if w == nil {
		return nil, ErrEmptyTree
	}
	return w.selection, w.err
}

// ----------------------------------------------------------------------

// Predicate is a function type to match against nodes of a tree.
// Is is used as an argument for various Walker functions to
// collect a selection of nodes.
// test is the node under test, node is the input node.
type Predicate[T comparable] func(test *Node[T], node *Node[T]) (match *Node[T], err error)

// Whatever is a predicate to match anything (see type Predicate).
// It is useful to match the first node in a given direction.
func Whatever[T comparable]() Predicate[T] {
	return func(test *Node[T], node *Node[T]) (*Node[T], error) {
		return test, nil
	}
}

// Action is a function type to operate on tree nodes.
// Resulting nodes make up the selection of the next step.
type Action[T comparable] func(n *Node[T], parent *Node[T], position int) (*Node[T], error)

func (w *Walker[T]) step(f func([]*Node[T]) ([]*Node[T], error)) *Walker[T] {
	if w == nil || w.err != nil {
		return w
	}
	sel, err := f(w.selection)
	w.selection = dedup(sel)
	w.err = err
	return w
}

// Parent replaces every node of the selection by its parent.
// The root node does not produce a result.
func (w *Walker[T]) Parent() *Walker[T] {
	return w.step(func(sel []*Node[T]) ([]*Node[T], error) {
		var result []*Node[T]
		for _, n := range sel {
			if p := n.Parent(); p != nil {
				result = append(result, p)
			}
		}
		return result, nil
	})
}

// AncestorWith finds, for every selected node, the nearest ancestor matching
// the given predicate. The search does not include the start node.
func (w *Walker[T]) AncestorWith(predicate Predicate[T]) *Walker[T] {
	if predicate == nil {
		return w.fail(ErrInvalidFilter)
	}
	return w.step(func(sel []*Node[T]) ([]*Node[T], error) {
		var result []*Node[T]
		for _, n := range sel {
			for anc := n.Parent(); anc != nil; anc = anc.Parent() {
				match, err := predicate(anc, n)
				if err != nil {
					return result, err
				}
				if match != nil {
					result = append(result, match)
					break
				}
			}
		}
		return result, nil
	})
}

// DescendentsWith finds descendents matching a predicate, in depth-first
// pre-order. The search does not include the start node.
func (w *Walker[T]) DescendentsWith(predicate Predicate[T]) *Walker[T] {
	if predicate == nil {
		return w.fail(ErrInvalidFilter)
	}
	return w.step(func(sel []*Node[T]) ([]*Node[T], error) {
		var result []*Node[T]
		for _, n := range sel {
			var err error
			preorder(n, func(d *Node[T]) bool {
				if d == n || err != nil {
					return err == nil
				}
				var match *Node[T]
				if match, err = predicate(d, n); err != nil {
					return false
				}
				if match != nil {
					result = append(result, match)
				}
				return true
			})
			if err != nil {
				return result, err
			}
		}
		return result, nil
	})
}

// AllDescendents traverses all descendents.
// This is just a wrapper around `w.DescendentsWith(Whatever)`.
func (w *Walker[T]) AllDescendents() *Walker[T] {
	return w.DescendentsWith(Whatever[T]())
}

// TopDown traverses the subtrees of the selection, starting at (and
// including) the selected nodes. Parents are always processed before
// their children.
//
// If the action function returns an error for a node,
// descending the branch below this node is aborted and the error is
// reported by Result.
func (w *Walker[T]) TopDown(action Action[T]) *Walker[T] {
	if action == nil {
		return w.fail(ErrInvalidFilter)
	}
	return w.step(func(sel []*Node[T]) ([]*Node[T], error) {
		var result []*Node[T]
		var lasterr error
		for _, n := range sel {
			preorder(n, func(d *Node[T]) bool {
				p := d.Parent()
				pos := 0
				if p != nil {
					pos = p.IndexOfChild(d)
				}
				r, err := action(d, p, pos)
				if err != nil {
					lasterr = err
					return false // do not descend further
				}
				if r != nil {
					result = append(result, r)
				}
				return true
			})
		}
		return result, lasterr
	})
}

// --- Helpers ---------------------------------------------------------------

func (w *Walker[T]) fail(err error) *Walker[T] {
	if w != nil && w.err == nil {
		w.err = err
	}
	return w
}

// preorder visits n and its descendents; f returns false to skip the
// children of a node.
func preorder[T comparable](n *Node[T], f func(*Node[T]) bool) {
	stack := []*Node[T]{n}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !f(top) {
			continue
		}
		for i := len(top.children) - 1; i >= 0; i-- {
			stack = append(stack, top.children[i])
		}
	}
}

func dedup[T comparable](nodes []*Node[T]) []*Node[T] {
	if len(nodes) < 2 {
		return nodes
	}
	seen := make(map[*Node[T]]struct{}, len(nodes))
	result := nodes[:0]
	for _, n := range nodes {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		result = append(result, n)
	}
	return result
}
