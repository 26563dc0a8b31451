package layout

import (
	"math"

	"github.com/npillmayer/boxlayout/maybe"
)

// step is the state of a Linear layout. Steps are run strictly in order.
type step uint8

const (
	sizeFixed   step = iota // measure non-growing children
	sizeGrowing             // distribute remaining space among growing children
	positioning             // place children along the main axis
	finished                // report own size
)

func (s step) String() string {
	switch s {
	case sizeFixed:
		return "SizeFixed"
	case sizeGrowing:
		return "SizeGrowing"
	case positioning:
		return "Position"
	case finished:
		return "Finished"
	}
	return "?"
}

// Linear places children one after another along its Direction, similar
// to a single-line flex container.
//
// Children with a LinearItem{Grow: true} hint share the space left over by
// their fixed siblings in equal parts, regardless of their content. All
// other children are sized first, each bounded by the space still
// available. On the cross axis every child is aligned to the start.
type Linear struct {
	Direction Direction

	step     step
	index    int                       // child currently measured
	occupied float64                   // sum of main axis extents
	widest   float64                   // max of cross axis extents
	growing  int                       // number of growing children
	measured []maybe.Maybe[Dimensions] // sizes of children measured by l
}

// NewLinear creates a Linear layout for the given direction.
func NewLinear(dir Direction) *Linear {
	return &Linear{Direction: dir}
}

// Reset rewinds the algorithm to step SizeFixed and clears the accumulators.
func (l *Linear) Reset() {
	*l = Linear{Direction: l.Direction}
}

// Layout performs the next step of the state machine
//
//	SizeFixed → SizeGrowing → Position → Finished
//
// returning to the driver whenever a child has to be measured.
func (l *Linear) Layout(c BoxConstraints, children []ID, child maybe.Maybe[Dimensions], ctx Context) Result {
	var size Dimensions
	switch m := child.Match(); m {
	case m.Just(&size):
		l.resume(c, size)
	}
	if l.measured == nil {
		l.measured = make([]maybe.Maybe[Dimensions], len(children))
	}
	for {
		switch l.step {
		case sizeFixed:
			for l.index < len(children) {
				id := children[l.index]
				if linearItemOf(ctx, id).Grow {
					l.growing++
					l.index++
					continue
				}
				return RequestChild(id, l.fixedConstraints(c))
			}
			l.index = 0
			l.step = sizeGrowing
			if l.growing == 0 || l.exhausted(c) {
				l.step = positioning
			}
		case sizeGrowing:
			for l.index < len(children) {
				id := children[l.index]
				if !linearItemOf(ctx, id).Grow {
					l.index++
					continue
				}
				return RequestChild(id, l.growingConstraints(c))
			}
			l.step = positioning
		case positioning:
			l.position(children, ctx)
			l.step = finished
		case finished:
			return Size(l.ownSize(c))
		}
	}
}

// resume accounts for the size of the child measured last and advances to
// the next child.
func (l *Linear) resume(c BoxConstraints, size Dimensions) {
	tracer().Debugf("linear %s: child #%d resolved to %v", l.step, l.index, size)
	assertThat(l.step == sizeFixed || l.step == sizeGrowing,
		"linear layout received a child size in step %s", l.step)
	if l.step == sizeFixed {
		l.occupied += axisMain(l.Direction, size)
	}
	if l.index < len(l.measured) {
		l.measured[l.index] = maybe.Just(size)
	}
	l.widest = math.Max(l.widest, axisCross(l.Direction, size))
	l.index++
	if l.exhausted(c) {
		tracer().Debugf("linear: main axis exhausted at %g, skipping to positioning", l.occupied)
		l.step = positioning
	}
}

func (l *Linear) exhausted(c BoxConstraints) bool {
	return l.occupied >= axisMainMax(l.Direction, c)
}

// fixedConstraints bounds a fixed child by the remaining main axis length
// and the full cross axis.
func (l *Linear) fixedConstraints(c BoxConstraints) BoxConstraints {
	remaining := axisMainMax(l.Direction, c) - l.occupied
	return axisConstraints(l.Direction, 0, remaining, 0, axisCrossMax(l.Direction, c))
}

// growingConstraints pins a growing child to an equal share of the
// remaining main axis length. Only called with growing > 0.
func (l *Linear) growingConstraints(c BoxConstraints) BoxConstraints {
	share := (axisMainMax(l.Direction, c) - l.occupied) / float64(l.growing)
	return axisConstraints(l.Direction, share, share, 0, axisCrossMax(l.Direction, c))
}

// position places all children measured by l, in order. Children left
// unmeasured by an early exit are skipped, even if they carry a size from
// an earlier layout.
func (l *Linear) position(children []ID, ctx Context) {
	offset := 0.0
	for i, id := range children {
		if l.measured[i] == nil {
			continue
		}
		size, ok := l.measured[i].Get()
		if !ok {
			continue
		}
		ctx.Position(id, axisPoint(l.Direction, offset, 0))
		offset += axisMain(l.Direction, size)
	}
	l.occupied = offset
}

func (l *Linear) ownSize(c BoxConstraints) Dimensions {
	if l.Direction == Horizontal {
		return Dimensions{
			Width:  c.CheckWidth(l.occupied),
			Height: c.CheckHeight(l.widest),
		}
	}
	return Dimensions{
		Width:  c.CheckWidth(l.widest),
		Height: c.CheckHeight(l.occupied),
	}
}

var _ Layout = &Linear{}
