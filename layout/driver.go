package layout

import (
	"errors"
	"fmt"

	"github.com/npillmayer/boxlayout/css"
	"github.com/npillmayer/boxlayout/maybe"
	"github.com/npillmayer/boxlayout/theme"
)

// ErrUnknownNode is returned if a pass is started at an ID which does not
// denote a widget node.
var ErrUnknownNode = errors.New("not a widget node")

// ErrNoGraph is returned by a Driver without a graph.
var ErrNoGraph = errors.New("driver has no graph")

// Graph is what the driver needs from a widget graph. The graph is owned
// exclusively by the driver for the duration of a pass.
type Graph interface {
	Contains(id ID) bool                   // is id a widget node?
	Children(id ID) []ID                   // direct children, duplicates removed
	Algorithm(id ID) Layout                // layout algorithm of a node, may be nil
	LayoutItem(id ID) Item                 // hint for the parent's algorithm
	Position(id ID, p Point)               // set the origin of a node
	SetSize(id ID, d Dimensions)           // set the extent of a node, marks it sized
	GetSize(id ID) maybe.Maybe[Dimensions] // extent, if sized in the current pass
	Selector(id ID) css.Selector           // style selector of a node
	Theme() *theme.Theme                   // theme for the pass, may be nil
	BeginPass()                            // invalidate sizes of the previous pass
}

// Driver walks a widget graph depth first, running the layout algorithm of
// every node and feeding back the sizes of children. It does so with an
// explicit stack of frames instead of recursion: algorithms suspend by
// returning RequestChild and are resumed once the child is done.
type Driver struct {
	g        Graph
	maxDepth int
}

// Option configures a Driver at creation time.
type Option struct {
	config func(*Driver)
}

// MaxDepth limits the nesting depth of a pass. Exceeding it is treated like
// a cyclic graph. n ≤ 0 means unlimited, which is the default.
func MaxDepth(n int) Option {
	return Option{config: func(d *Driver) {
		d.maxDepth = n
	}}
}

// NewDriver creates a driver for a graph.
func NewDriver(g Graph, opts ...Option) *Driver {
	d := &Driver{g: g}
	for _, opt := range opts {
		if opt.config != nil {
			opt.config(d)
		}
	}
	return d
}

// Run performs a full layout pass, starting at root with constraints c.
// It returns the resolved size of root.
//
// Structural inconsistencies found during the pass (unknown child IDs,
// cycles, a Childless node with children) panic; a pass is never left
// half done with an error.
func (d *Driver) Run(root ID, c BoxConstraints) (Dimensions, error) {
	if d == nil || d.g == nil {
		return Dimensions{}, ErrNoGraph
	}
	if !d.g.Contains(root) {
		return Dimensions{}, fmt.Errorf("layout: cannot start pass at node %d: %w", root, ErrUnknownNode)
	}
	d.g.BeginPass()
	size := d.run(root, c)
	tracer().Infof("layout pass at node %d with %v resolved to %v", root, c, size)
	return size, nil
}

// Measure lays out the subtree at id with constraints c within the current
// pass, without invalidating sizes resolved earlier. It is a synchronous
// convenience for clients outside of layout algorithms; algorithms
// request children by returning RequestChild.
func (d *Driver) Measure(id ID, c BoxConstraints) (Dimensions, error) {
	if d == nil || d.g == nil {
		return Dimensions{}, ErrNoGraph
	}
	if !d.g.Contains(id) {
		return Dimensions{}, fmt.Errorf("layout: cannot measure node %d: %w", id, ErrUnknownNode)
	}
	return d.run(id, c), nil
}

// frame is the suspended layout of a single node.
type frame struct {
	id          ID
	constraints BoxConstraints
	children    []ID
	algo        Layout
}

func (d *Driver) enter(id ID, c BoxConstraints) frame {
	algo := d.g.Algorithm(id)
	if algo != nil {
		algo.Reset()
	}
	tracer().Debugf("enter node %d with %v", id, c)
	return frame{id: id, constraints: c, children: d.g.Children(id), algo: algo}
}

// run is the trampoline: it calls the algorithm on top of the stack until
// it either requests a child (push) or reports its size (pop).
func (d *Driver) run(root ID, c BoxConstraints) Dimensions {
	ctx := &passContext{g: d.g}
	stack := []frame{d.enter(root, c)}
	active := map[ID]bool{root: true}
	child := maybe.Nothing[Dimensions]()
	var size Dimensions
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		ctx.current = top.id
		var r Result
		if top.algo == nil {
			r = Size(Dimensions{Width: top.constraints.MinWidth, Height: top.constraints.MinHeight})
		} else {
			r = top.algo.Layout(top.constraints, top.children, child, ctx)
		}
		child = maybe.Nothing[Dimensions]()
		if id, cc, ok := r.Request(); ok {
			assertThat(d.g.Contains(id), "node %d requested layout of %d, which is not a widget node", top.id, id)
			assertThat(!active[id], "node %d requested layout of %d, which is being laid out (cycle)", top.id, id)
			assertThat(d.maxDepth <= 0 || len(stack) < d.maxDepth, "maximum nesting depth %d exceeded", d.maxDepth)
			stack = append(stack, d.enter(id, cc))
			active[id] = true
			continue
		}
		size = r.Dimensions().nonNegative()
		d.g.SetSize(top.id, size)
		tracer().Debugf("node %d resolved to %v", top.id, size)
		delete(active, top.id)
		stack = stack[:len(stack)-1]
		child = maybe.Just(size)
	}
	return size
}

// --- Context ---------------------------------------------------------------

// passContext mediates between algorithms and the graph during a pass.
type passContext struct {
	g       Graph
	current ID
}

func (pc *passContext) ID() ID {
	return pc.current
}

func (pc *passContext) LayoutItem(id ID) Item {
	assertThat(pc.g.Contains(id), "layout item requested for %d, which is not a widget node", id)
	return pc.g.LayoutItem(id)
}

func (pc *passContext) Position(id ID, p Point) {
	assertThat(pc.g.Contains(id), "cannot position %d, which is not a widget node", id)
	pc.g.Position(id, p)
}

func (pc *passContext) GetSize(id ID) maybe.Maybe[Dimensions] {
	if !pc.g.Contains(id) {
		return maybe.Nothing[Dimensions]()
	}
	return pc.g.GetSize(id)
}

func (pc *passContext) Selector(id ID) css.Selector {
	return pc.g.Selector(id)
}

func (pc *passContext) Theme() *theme.Theme {
	if t := pc.g.Theme(); t != nil {
		return t
	}
	return theme.Default()
}

var _ Context = &passContext{}
