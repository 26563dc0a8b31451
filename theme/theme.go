package theme

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/npillmayer/boxlayout/css"
	"github.com/npillmayer/boxlayout/maybe"
)

// Padding is space around the content of a widget.
type Padding struct {
	Top, Right, Bottom, Left float64
}

// Uniform returns a padding of x on all sides.
func Uniform(x float64) Padding {
	return Padding{Top: x, Right: x, Bottom: x, Left: x}
}

// Horizontal is Left + Right.
func (p Padding) Horizontal() float64 {
	return p.Left + p.Right
}

// Vertical is Top + Bottom.
func (p Padding) Vertical() float64 {
	return p.Top + p.Bottom
}

func (p Padding) String() string {
	return fmt.Sprintf("[%g %g %g %g]", p.Top, p.Right, p.Bottom, p.Left)
}

// Theme is a collection of widget styling defaults, optionally backed by a
// style sheet.
type Theme struct {
	Name            string
	Padding         Padding // default padding for containers
	Background      color.RGBA
	Shape           color.RGBA // default color of widget shapes
	Border          color.RGBA
	BorderWidth     float64
	Label           color.RGBA // default color of labels
	FontSizeLarge   float64
	FontSizeMedium  float64
	FontSizeSmall   float64
	DragThreshold   float64       // minimum mouse travel before a drag starts
	DoubleClickTime time.Duration // max time between clicks of a double click

	sheet *css.Sheet
}

var (
	black = color.RGBA{0, 0, 0, 0xff}
	white = color.RGBA{0xff, 0xff, 0xff, 0xff}
)

// Default returns the theme used when clients do not provide one.
func Default() *Theme {
	return &Theme{
		Name:            "Default Theme",
		Background:      black,
		Shape:           white,
		Border:          black,
		BorderWidth:     1,
		Label:           black,
		FontSizeLarge:   26,
		FontSizeMedium:  18,
		FontSizeSmall:   12,
		DoubleClickTime: 500 * time.Millisecond,
	}
}

// Option configures a Theme at creation time.
type Option struct {
	config func(*Theme)
}

// WithName names the theme.
func WithName(name string) Option {
	return Option{config: func(t *Theme) {
		t.Name = name
	}}
}

// WithPadding sets the default padding.
func WithPadding(p Padding) Option {
	return Option{config: func(t *Theme) {
		t.Padding = p
	}}
}

// WithBorderWidth sets the default border width.
func WithBorderWidth(w float64) Option {
	return Option{config: func(t *Theme) {
		t.BorderWidth = w
	}}
}

// New creates a theme from the defaults, backed by a style sheet. sheet
// may be nil.
func New(sheet *css.Sheet, opts ...Option) *Theme {
	t := Default()
	t.sheet = sheet
	for _, opt := range opts {
		if opt.config != nil {
			opt.config(t)
		}
	}
	tracer().Infof("theme %q created, sheet has %d rules", t.Name, len(sheet.Rules()))
	return t
}

// Sheet returns the style sheet backing t, or nil.
func (t *Theme) Sheet() *css.Sheet {
	if t == nil {
		return nil
	}
	return t.sheet
}

// PaddingFor resolves the padding for a widget, with percentages
// resolving to 0. See PaddingWithin.
func (t *Theme) PaddingFor(sel css.Selector) Padding {
	return t.PaddingWithin(sel, 0)
}

// PaddingWithin resolves the padding for a widget inside a containing box
// of width ref. A "padding" declaration sets all sides, "padding-top" etc.
// override single sides. Percentages refer to ref for all four sides, as
// in CSS. Sides not declared in the sheet keep the theme's default padding.
func (t *Theme) PaddingWithin(sel css.Selector, ref float64) Padding {
	if t == nil {
		return Padding{}
	}
	p := t.Padding
	if t.sheet == nil {
		return p
	}
	if x, ok := t.length("padding", sel, ref).Get(); ok {
		p = Uniform(x)
	}
	p.Top = t.length("padding-top", sel, ref).WithDefault(p.Top)
	p.Right = t.length("padding-right", sel, ref).WithDefault(p.Right)
	p.Bottom = t.length("padding-bottom", sel, ref).WithDefault(p.Bottom)
	p.Left = t.length("padding-left", sel, ref).WithDefault(p.Left)
	return p
}

// LengthFor resolves a length property for a widget. Unitless values and
// pixels count one layout unit each, points are converted to big points.
// Percentages refer to ref; an infinite ref resolves them to 0.
func (t *Theme) LengthFor(property string, sel css.Selector, ref, fallback float64) float64 {
	return t.length(property, sel, ref).WithDefault(fallback)
}

func (t *Theme) length(property string, sel css.Selector, ref float64) maybe.Maybe[float64] {
	return maybe.AndThen(func(v css.Value) maybe.Maybe[float64] {
		return maybe.FromOK(resolveLength(v, ref))
	}, t.Sheet().Get(property, sel))
}

func resolveLength(v css.Value, ref float64) (float64, bool) {
	if d, ok := v.Dimen(); ok {
		return d.Points(), true
	}
	if p, ok := v.Percentage(); ok {
		if math.IsInf(ref, 0) {
			return 0, true
		}
		return float64(p) / 100 * ref, true
	}
	return 0, false
}

// ColorFor resolves a color property for a widget, falling back to
// fallback if the sheet does not declare a color for it.
func (t *Theme) ColorFor(property string, sel css.Selector, fallback color.RGBA) color.RGBA {
	return t.Sheet().Color(property, sel).WithDefault(fallback)
}

// ScalarFor resolves a numeric property for a widget.
func (t *Theme) ScalarFor(property string, sel css.Selector, fallback float64) float64 {
	return t.Sheet().Scalar(property, sel).WithDefault(fallback)
}

// BackgroundFor resolves "background-color", defaulting to the theme's
// background.
func (t *Theme) BackgroundFor(sel css.Selector) color.RGBA {
	if t == nil {
		return black
	}
	return t.ColorFor("background-color", sel, t.Background)
}

// BorderWidthFor resolves "border-width", defaulting to the theme's
// border width.
func (t *Theme) BorderWidthFor(sel css.Selector) float64 {
	if t == nil {
		return 0
	}
	return t.LengthFor("border-width", sel, 0, t.BorderWidth)
}
