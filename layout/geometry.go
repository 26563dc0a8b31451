package layout

import "fmt"

// ID identifies a widget node within a graph. IDs are stable across layout
// passes as long as the node is not removed.
type ID uint32

// NoID is the zero ID, never handed out for a widget node.
const NoID ID = 0

// Dimensions are the resolved extent of a widget.
type Dimensions struct {
	Width, Height float64
}

// Dim is a shortcut for Dimensions{w, h}.
func Dim(w, h float64) Dimensions {
	return Dimensions{Width: w, Height: h}
}

func (d Dimensions) String() string {
	return fmt.Sprintf("(%g×%g)", d.Width, d.Height)
}

// nonNegative clamps both extents at 0.
func (d Dimensions) nonNegative() Dimensions {
	if d.Width < 0 {
		d.Width = 0
	}
	if d.Height < 0 {
		d.Height = 0
	}
	return d
}

// Point is a position, relative to the origin of a parent widget.
type Point struct {
	X, Y float64
}

// Pt is a shortcut for Point{x, y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the vector p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

// Rect is the box of a widget node. Min is the origin as set by the
// parent's layout algorithm, Max is derived from the extent resolved by
// the node's own algorithm.
type Rect struct {
	Min, Max Point
}

// W is the width of r.
func (r Rect) W() float64 {
	return r.Max.X - r.Min.X
}

// H is the height of r.
func (r Rect) H() float64 {
	return r.Max.Y - r.Min.Y
}

// Size returns the extent of r.
func (r Rect) Size() Dimensions {
	return Dimensions{Width: r.W(), Height: r.H()}
}

// MoveTo returns r with its origin at p, keeping its extent.
func (r Rect) MoveTo(p Point) Rect {
	return Rect{Min: p, Max: Point{X: p.X + r.W(), Y: p.Y + r.H()}}
}

// Resize returns r with extent d, keeping its origin.
func (r Rect) Resize(d Dimensions) Rect {
	return Rect{Min: r.Min, Max: Point{X: r.Min.X + d.Width, Y: r.Min.Y + d.Height}}
}

// Translate shifts r by the vector p.
func (r Rect) Translate(p Point) Rect {
	return Rect{Min: r.Min.Add(p), Max: r.Max.Add(p)}
}

func (r Rect) String() string {
	return fmt.Sprintf("[%v-%v]", r.Min, r.Max)
}

// Direction is the main axis of a Linear layout.
type Direction uint8

// Directions for Linear.
const (
	Vertical Direction = iota
	Horizontal
)

func (d Direction) String() string {
	switch d {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	}
	panic("unreachable")
}

// --- Axis helpers ----------------------------------------------------------

func axisMain(d Direction, sz Dimensions) float64 {
	if d == Horizontal {
		return sz.Width
	}
	return sz.Height
}

func axisCross(d Direction, sz Dimensions) float64 {
	if d == Horizontal {
		return sz.Height
	}
	return sz.Width
}

func axisPoint(d Direction, main, cross float64) Point {
	if d == Horizontal {
		return Point{X: main, Y: cross}
	}
	return Point{X: cross, Y: main}
}

func axisMainMax(d Direction, c BoxConstraints) float64 {
	if d == Horizontal {
		return c.MaxWidth
	}
	return c.MaxHeight
}

func axisCrossMax(d Direction, c BoxConstraints) float64 {
	if d == Horizontal {
		return c.MaxHeight
	}
	return c.MaxWidth
}

// axisConstraints builds constraints from main/cross ranges.
func axisConstraints(d Direction, mainMin, mainMax, crossMin, crossMax float64) BoxConstraints {
	if d == Horizontal {
		return BoxConstraints{
			MinWidth: mainMin, MaxWidth: mainMax,
			MinHeight: crossMin, MaxHeight: crossMax,
		}
	}
	return BoxConstraints{
		MinWidth: crossMin, MaxWidth: crossMax,
		MinHeight: mainMin, MaxHeight: mainMax,
	}
}
