package layout

import (
	"testing"

	"github.com/npillmayer/boxlayout/maybe"
	"github.com/npillmayer/boxlayout/theme"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChildlessClampsAndRefusesChildren(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxlayout.layout")
	defer teardown()
	//
	g := newTestGraph().add(1, Fixed(Dim(500, 5)), nil)
	size, err := NewDriver(g).Run(1, BoxConstraints{MinHeight: 10, MaxWidth: 100, MaxHeight: 100})
	require.NoError(t, err)
	assert.Equal(t, Dim(100, 10), size)
	//
	g.add(2, Fixed(Dim(1, 1)), nil).add(1, Fixed(Dim(1, 1)), nil, 2)
	assert.Panics(t, func() {
		_, _ = NewDriver(g).Run(1, Loose(Dim(100, 100)))
	})
}

func TestLinearVerticalFixed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxlayout.layout")
	defer teardown()
	//
	g := newTestGraph().
		add(1, NewLinear(Vertical), nil, 2, 3, 4).
		add(2, Fixed(Dim(50, 10)), LinearItem{}).
		add(3, Fixed(Dim(50, 20)), LinearItem{}).
		add(4, Fixed(Dim(50, 30)), nil)
	size, err := NewDriver(g).Run(1, Loose(Dim(100, 100)))
	require.NoError(t, err)
	assert.Equal(t, Dim(50, 60), size)
	assert.Equal(t, Pt(0, 0), g.pos(2))
	assert.Equal(t, Pt(0, 10), g.pos(3))
	assert.Equal(t, Pt(0, 30), g.pos(4))
}

func TestLinearHorizontalFixed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxlayout.layout")
	defer teardown()
	//
	g := newTestGraph().
		add(1, NewLinear(Horizontal), nil, 2, 3).
		add(2, Fixed(Dim(15, 40)), nil).
		add(3, Fixed(Dim(25, 10)), nil)
	size, err := NewDriver(g).Run(1, Loose(Dim(100, 100)))
	require.NoError(t, err)
	assert.Equal(t, Dim(40, 40), size)
	assert.Equal(t, Pt(15, 0), g.pos(3))
}

// recorder wraps an algorithm and remembers the constraints it was called with.
type recorder struct {
	algo Layout
	seen []BoxConstraints
}

func (r *recorder) Reset() {
	r.algo.Reset()
}

func (r *recorder) Layout(c BoxConstraints, children []ID, child maybe.Maybe[Dimensions], ctx Context) Result {
	r.seen = append(r.seen, c)
	return r.algo.Layout(c, children, child, ctx)
}

func TestLinearGrowingTakesRemainder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxlayout.layout")
	defer teardown()
	//
	grower := &recorder{algo: Fixed(Dim(10, 5))}
	g := newTestGraph().
		add(1, NewLinear(Vertical), nil, 2, 3).
		add(2, Fixed(Dim(30, 20)), nil).
		add(3, grower, Grow())
	size, err := NewDriver(g).Run(1, Loose(Dim(100, 100)))
	require.NoError(t, err)
	require.Len(t, grower.seen, 1)
	assert.Equal(t, Loose(Dim(100, 100)).FitHeight(80), grower.seen[0])
	assert.Equal(t, 100.0, size.Height)
	assert.Equal(t, Dim(10, 80), g.size(3))
	assert.Equal(t, Pt(0, 20), g.pos(3))
}

func TestLinearGrowingSplitsEqually(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxlayout.layout")
	defer teardown()
	//
	g := newTestGraph().
		add(1, NewLinear(Horizontal), nil, 2, 3, 4, 5).
		add(2, Fixed(Dim(40, 10)), nil).
		add(3, Fixed(Dim(1, 1)), Grow()).
		add(4, Fixed(Dim(1, 1)), nil).
		add(5, Fixed(Dim(1, 1)), Grow())
	size, err := NewDriver(g).Run(1, Loose(Dim(200, 50)))
	require.NoError(t, err)
	// remaining 200-40-1 = 159, two growing children
	assert.Equal(t, 79.5, g.size(3).Width)
	assert.Equal(t, 79.5, g.size(5).Width)
	assert.Equal(t, Pt(40, 0), g.pos(3))
	assert.Equal(t, Pt(119.5, 0), g.pos(4))
	assert.Equal(t, Pt(120.5, 0), g.pos(5))
	assert.Equal(t, Dim(200, 10), size)
}

func TestLinearZeroGrowingSkipsDivision(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxlayout.layout")
	defer teardown()
	//
	g := newTestGraph().
		add(1, NewLinear(Vertical), nil, 2).
		add(2, Fixed(Dim(10, 10)), StackItem{})
	size, err := NewDriver(g).Run(1, Loose(Dim(100, 100)))
	require.NoError(t, err)
	assert.Equal(t, Dim(10, 10), size)
	//
	g = newTestGraph().add(1, NewLinear(Vertical), nil)
	size, err = NewDriver(g).Run(1, BoxConstraints{MinWidth: 5, MaxWidth: 100, MaxHeight: 100})
	require.NoError(t, err)
	assert.Equal(t, Dim(5, 0), size)
}

func TestLinearEarlyExit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxlayout.layout")
	defer teardown()
	//
	g := newTestGraph().
		add(1, NewLinear(Vertical), nil, 2, 3, 4, 5).
		add(2, Fixed(Dim(10, 60)), nil).
		add(3, Fixed(Dim(10, 60)), nil).
		add(4, Fixed(Dim(10, 60)), nil).
		add(5, Fixed(Dim(10, 60)), Grow())
	size, err := NewDriver(g).Run(1, Loose(Dim(100, 100)))
	require.NoError(t, err)
	assert.Equal(t, Dim(10, 100), size)
	assert.Equal(t, Dim(10, 40), g.size(3), "second child bounded by remaining space")
	assert.True(t, g.GetSize(4).IsNothing(), "third child must not be measured")
	assert.True(t, g.GetSize(5).IsNothing(), "growing child must not be measured")
}

func TestStackFillsMax(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxlayout.layout")
	defer teardown()
	//
	g := newTestGraph().
		add(1, NewStack(), nil, 2, 3).
		add(2, Fixed(Dim(10, 10)), StackItem{}).
		add(3, NewLinear(Vertical), nil, 4).
		add(4, Fixed(Dim(5, 5)), nil)
	g.nodes[3].pos = Pt(7, 7)
	size, err := NewDriver(g).Run(1, BoxConstraints{MaxWidth: 80, MaxHeight: 60})
	require.NoError(t, err)
	assert.Equal(t, Dim(80, 60), size)
	assert.Equal(t, Dim(80, 60), g.size(2))
	assert.Equal(t, Dim(80, 60), g.size(3))
	assert.Equal(t, Pt(0, 0), g.pos(3))
	assert.Equal(t, Dim(5, 5), g.size(4))
}

func TestLayoutIsIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxlayout.layout")
	defer teardown()
	//
	g := newTestGraph().
		add(1, NewLinear(Horizontal), nil, 2, 3).
		add(2, Fixed(Dim(30, 20)), nil).
		add(3, NewStack(), Grow(), 4).
		add(4, Fixed(Dim(1, 1)), nil)
	d := NewDriver(g)
	first, err := d.Run(1, Loose(Dim(100, 50)))
	require.NoError(t, err)
	p3, s3 := g.pos(3), g.size(3)
	second, err := d.Run(1, Loose(Dim(100, 50)))
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, p3, g.pos(3))
	assert.Equal(t, s3, g.size(3))
	assert.Equal(t, Dim(70, 50), s3)
}

func TestInsetPadsChild(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxlayout.layout")
	defer teardown()
	//
	child := &recorder{algo: Fixed(Dim(10, 10))}
	pad := theme.Padding{Top: 1, Right: 2, Bottom: 3, Left: 4}
	g := newTestGraph().
		add(1, NewInset(pad), nil, 2).
		add(2, child, nil)
	size, err := NewDriver(g).Run(1, Loose(Dim(100, 100)))
	require.NoError(t, err)
	assert.Equal(t, Dim(16, 14), size)
	assert.Equal(t, Pt(4, 1), g.pos(2))
	assert.Equal(t, Loose(Dim(94, 96)), child.seen[0])
	//
	g = newTestGraph().add(1, NewInset(pad), nil)
	size, err = NewDriver(g).Run(1, Loose(Dim(100, 100)))
	require.NoError(t, err)
	assert.Equal(t, Dim(6, 4), size)
}

func TestThemedInsetUsesDefaultTheme(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxlayout.layout")
	defer teardown()
	//
	g := newTestGraph().add(1, ThemedInset(), nil)
	size, err := NewDriver(g).Run(1, Unbounded())
	require.NoError(t, err)
	p := theme.Default().Padding
	assert.Equal(t, Dim(p.Left+p.Right, p.Top+p.Bottom), size)
}

func TestDriverNilLayoutTakesMin(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxlayout.layout")
	defer teardown()
	//
	g := newTestGraph().add(1, nil, nil, 2).add(2, Fixed(Dim(3, 3)), nil)
	size, err := NewDriver(g).Run(1, BoxConstraints{MinWidth: 7, MaxWidth: 10, MinHeight: 8, MaxHeight: 10})
	require.NoError(t, err)
	assert.Equal(t, Dim(7, 8), size)
	assert.True(t, g.GetSize(2).IsNothing())
}

func TestDriverErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxlayout.layout")
	defer teardown()
	//
	g := newTestGraph().add(1, Fixed(Dim(1, 1)), nil)
	_, err := NewDriver(g).Run(99, Unbounded())
	assert.ErrorIs(t, err, ErrUnknownNode)
	_, err = NewDriver(nil).Run(1, Unbounded())
	assert.ErrorIs(t, err, ErrNoGraph)
	_, err = NewDriver(g).Measure(99, Unbounded())
	assert.ErrorIs(t, err, ErrUnknownNode)
	//
	g.add(1, NewStack(), nil, 42)
	assert.Panics(t, func() {
		_, _ = NewDriver(g).Run(1, Unbounded())
	}, "unknown child must panic")
}

func TestDriverDetectsCycles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxlayout.layout")
	defer teardown()
	//
	g := newTestGraph().
		add(1, NewStack(), nil, 2).
		add(2, NewStack(), nil, 1)
	assert.Panics(t, func() {
		_, _ = NewDriver(g).Run(1, Loose(Dim(10, 10)))
	})
}

func TestDriverMaxDepth(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxlayout.layout")
	defer teardown()
	//
	g := newTestGraph().
		add(1, NewStack(), nil, 2).
		add(2, NewStack(), nil, 3).
		add(3, Fixed(Dim(1, 1)), nil)
	_, err := NewDriver(g, MaxDepth(3)).Run(1, Loose(Dim(10, 10)))
	assert.NoError(t, err)
	assert.Panics(t, func() {
		_, _ = NewDriver(g, MaxDepth(2)).Run(1, Loose(Dim(10, 10)))
	})
}

func TestDriverMeasureKeepsPass(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxlayout.layout")
	defer teardown()
	//
	g := newTestGraph().
		add(1, NewLinear(Vertical), nil, 2).
		add(2, Fixed(Dim(20, 20)), nil).
		add(3, Fixed(Dim(5, 5)), nil)
	d := NewDriver(g)
	_, err := d.Run(1, Loose(Dim(100, 100)))
	require.NoError(t, err)
	size, err := d.Measure(3, Loose(Dim(2, 100)))
	require.NoError(t, err)
	assert.Equal(t, Dim(2, 5), size)
	assert.False(t, g.GetSize(2).IsNothing(), "measure must not invalidate the pass")
}

func TestLinearUnderMeasure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "boxlayout.layout")
	defer teardown()
	//
	g := newTestGraph().
		add(1, NewLinear(Horizontal), nil, 2, 3, 4).
		add(2, Fixed(Dim(30, 10)), nil).
		add(3, Fixed(Dim(30, 10)), nil).
		add(4, Fixed(Dim(30, 10)), nil)
	d := NewDriver(g)
	_, err := d.Run(1, Loose(Dim(100, 50)))
	require.NoError(t, err)
	assert.Equal(t, Pt(60, 0), g.pos(4))
	size, err := d.Measure(1, Loose(Dim(40, 50)))
	require.NoError(t, err)
	assert.Equal(t, Dim(40, 10), size)
	assert.Equal(t, Pt(0, 0), g.pos(2))
	assert.Equal(t, Pt(30, 0), g.pos(3))
	assert.Equal(t, Dim(10, 10), g.size(3))
	// child 4 keeps its size and position from the first layout
	assert.Equal(t, Pt(60, 0), g.pos(4))
	assert.Equal(t, Dim(30, 10), g.size(4))
}

func TestResultString(t *testing.T) {
	assert.Equal(t, "Size(1×2)", Size(Dim(1, 2)).String())
	r := RequestChild(7, Loose(Dim(3, 4)))
	assert.True(t, r.IsRequest())
	id, c, ok := r.Request()
	assert.True(t, ok)
	assert.Equal(t, ID(7), id)
	assert.Equal(t, Loose(Dim(3, 4)), c)
}
