package layout

import "github.com/npillmayer/boxlayout/maybe"

// Stack overlays all children. Every child is forced to the maximum size of
// the incoming constraints and placed at the origin; the Stack itself
// always resolves to the maximum size.
type Stack struct {
	index int // child currently measured
}

// NewStack creates a Stack layout.
func NewStack() *Stack {
	return &Stack{}
}

// Reset rewinds to the first child.
func (s *Stack) Reset() {
	s.index = 0
}

// Layout requests children one by one with c.GrowToMax().
func (s *Stack) Layout(c BoxConstraints, children []ID, child maybe.Maybe[Dimensions], ctx Context) Result {
	if !child.IsNothing() && s.index < len(children) {
		ctx.Position(children[s.index], Point{})
		s.index++
	}
	if s.index < len(children) {
		tracer().Debugf("stack: request child #%d = %d", s.index, children[s.index])
		return RequestChild(children[s.index], c.GrowToMax())
	}
	return Size(Dimensions{Width: c.MaxWidth, Height: c.MaxHeight})
}

var _ Layout = &Stack{}
