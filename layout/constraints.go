package layout

import (
	"fmt"
	"math"
)

// BoxConstraints are the ranges of acceptable widths and heights a parent
// hands down to a child.
//
// Callers have to make sure that min ≤ max holds for both axes; it is not
// enforced. Builder methods return a modified copy:
//
//	c := layout.BoxConstraints{}.WithMaxWidth(100).FitHeight(20)
type BoxConstraints struct {
	MinWidth, MaxWidth   float64
	MinHeight, MaxHeight float64
}

// Loose returns constraints accepting any size from zero up to d.
func Loose(d Dimensions) BoxConstraints {
	return BoxConstraints{MaxWidth: d.Width, MaxHeight: d.Height}
}

// Tight returns constraints which can only be satisfied by d.
func Tight(d Dimensions) BoxConstraints {
	return BoxConstraints{}.Fit(d)
}

// Unbounded returns constraints without an upper limit.
func Unbounded() BoxConstraints {
	return BoxConstraints{MaxWidth: math.Inf(1), MaxHeight: math.Inf(1)}
}

func (c BoxConstraints) String() string {
	return fmt.Sprintf("w[%g,%g] h[%g,%g]", c.MinWidth, c.MaxWidth, c.MinHeight, c.MaxHeight)
}

// WithMinWidth sets the minimum width.
func (c BoxConstraints) WithMinWidth(w float64) BoxConstraints {
	c.MinWidth = w
	return c
}

// WithMaxWidth sets the maximum width.
func (c BoxConstraints) WithMaxWidth(w float64) BoxConstraints {
	c.MaxWidth = w
	return c
}

// WithMinHeight sets the minimum height.
func (c BoxConstraints) WithMinHeight(h float64) BoxConstraints {
	c.MinHeight = h
	return c
}

// WithMaxHeight sets the maximum height.
func (c BoxConstraints) WithMaxHeight(h float64) BoxConstraints {
	c.MaxHeight = h
	return c
}

// FitWidth pins minimum and maximum width to w.
func (c BoxConstraints) FitWidth(w float64) BoxConstraints {
	return c.WithMinWidth(w).WithMaxWidth(w)
}

// FitHeight pins minimum and maximum height to h.
func (c BoxConstraints) FitHeight(h float64) BoxConstraints {
	return c.WithMinHeight(h).WithMaxHeight(h)
}

// Fit pins both axes to d, forcing a child to exactly this size.
func (c BoxConstraints) Fit(d Dimensions) BoxConstraints {
	return c.FitWidth(d.Width).FitHeight(d.Height)
}

// GrowToMax pins both axes to their current maximum.
func (c BoxConstraints) GrowToMax() BoxConstraints {
	return c.Fit(Dimensions{Width: c.MaxWidth, Height: c.MaxHeight})
}

// CheckWidth clamps a proposed width into [MinWidth, MaxWidth].
func (c BoxConstraints) CheckWidth(w float64) float64 {
	return clamp(w, c.MinWidth, c.MaxWidth)
}

// CheckHeight clamps a proposed height into [MinHeight, MaxHeight].
func (c BoxConstraints) CheckHeight(h float64) float64 {
	return clamp(h, c.MinHeight, c.MaxHeight)
}

// Constrain clamps both extents of d.
func (c BoxConstraints) Constrain(d Dimensions) Dimensions {
	return Dimensions{Width: c.CheckWidth(d.Width), Height: c.CheckHeight(d.Height)}
}

// IsTight is true if the constraints allow exactly one size.
func (c BoxConstraints) IsTight() bool {
	return c.MinWidth == c.MaxWidth && c.MinHeight == c.MaxHeight
}

// Deflate shrinks the constraints by a horizontal and vertical amount,
// never going below zero.
func (c BoxConstraints) Deflate(dw, dh float64) BoxConstraints {
	c.MaxWidth = math.Max(0, c.MaxWidth-dw)
	c.MaxHeight = math.Max(0, c.MaxHeight-dh)
	c.MinWidth = math.Min(math.Max(0, c.MinWidth-dw), c.MaxWidth)
	c.MinHeight = math.Min(math.Max(0, c.MinHeight-dh), c.MaxHeight)
	return c
}

// clamp applies the lower bound first, then the upper bound. With min > max
// (a caller error) the result is max.
func clamp(v, min, max float64) float64 {
	if v < min {
		v = min
	}
	if v > max {
		v = max
	}
	return v
}
