package layout

import (
	"fmt"

	"github.com/npillmayer/boxlayout/css"
	"github.com/npillmayer/boxlayout/maybe"
	"github.com/npillmayer/boxlayout/theme"
)

// Layout is a layout algorithm attached to a widget node.
//
// Layout is called by the Driver, first with child = Nothing, then, after
// each RequestChild result, with the size the requested child resolved
// to. Implementations keep their progress in explicit state and must not
// call back into the driver. A nil Layout sizes a node to the minimum of its
// constraints and leaves its children alone.
type Layout interface {
	// Reset rewinds the algorithm to its initial step. The driver calls it
	// before the first call of a node's layout in a pass.
	Reset()
	// Layout performs the next step of the algorithm.
	Layout(c BoxConstraints, children []ID, child maybe.Maybe[Dimensions], ctx Context) Result
}

// Context is the view of the widget graph an algorithm gets. It hides the
// graph itself, so an algorithm never holds on to graph storage while a
// child is measured.
type Context interface {
	ID() ID                                // the node currently laid out
	LayoutItem(id ID) Item                 // panics if id is not a widget node
	Position(id ID, p Point)               // set origin of a node, keeping its extent
	GetSize(id ID) maybe.Maybe[Dimensions] // Nothing until sized in this pass
	Selector(id ID) css.Selector           // style selector of a node
	Theme() *theme.Theme                   // theme in effect for this pass
}

// Result is the outcome of a single call to Layout: either the resolved size
// of the node, or a request to measure a child first.
type Result struct {
	request     bool
	size        Dimensions
	child       ID
	constraints BoxConstraints
}

// Size creates a result reporting the node's own resolved size.
func Size(d Dimensions) Result {
	return Result{size: d}
}

// RequestChild creates a result asking the driver to lay out child under
// constraints c and to resume the algorithm afterwards.
func RequestChild(child ID, c BoxConstraints) Result {
	return Result{request: true, child: child, constraints: c}
}

// IsRequest is true for results created by RequestChild.
func (r Result) IsRequest() bool {
	return r.request
}

// Request unpacks a child request.
func (r Result) Request() (ID, BoxConstraints, bool) {
	return r.child, r.constraints, r.request
}

// Dimensions returns the size of a Size result.
func (r Result) Dimensions() Dimensions {
	return r.size
}

func (r Result) String() string {
	if r.request {
		return fmt.Sprintf("RequestChild(%d, %v)", r.child, r.constraints)
	}
	return fmt.Sprintf("Size%v", r.size)
}
