package layout

import (
	"github.com/npillmayer/boxlayout/maybe"
	"github.com/npillmayer/boxlayout/theme"
)

// Inset adds padding around a single child. It is built on interface
// Layout only and serves as a template for custom algorithms.
//
// If Themed is set, the padding is looked up in the theme for the
// selector of the node, and Padding is ignored. Percentages refer to the
// maximum width offered to the Inset.
type Inset struct {
	Padding theme.Padding
	Themed  bool

	pad       theme.Padding // padding in effect for this pass
	requested bool
}

// NewInset creates an Inset with explicit padding.
func NewInset(p theme.Padding) *Inset {
	return &Inset{Padding: p}
}

// ThemedInset creates an Inset taking its padding from the theme.
func ThemedInset() *Inset {
	return &Inset{Themed: true}
}

// Reset forgets the padding resolved in a previous pass.
func (in *Inset) Reset() {
	in.pad = theme.Padding{}
	in.requested = false
}

// Layout requests the child with constraints deflated by the padding and
// places it at (left, top).
func (in *Inset) Layout(c BoxConstraints, children []ID, child maybe.Maybe[Dimensions], ctx Context) Result {
	assertThat(len(children) <= 1, "an Inset may have at most one child (has %d)", len(children))
	if !in.requested {
		in.pad = in.Padding
		if in.Themed {
			in.pad = ctx.Theme().PaddingWithin(ctx.Selector(ctx.ID()), c.MaxWidth)
		}
	}
	dw, dh := in.pad.Left+in.pad.Right, in.pad.Top+in.pad.Bottom
	if len(children) == 0 {
		return Size(c.Constrain(Dimensions{Width: dw, Height: dh}))
	}
	if !in.requested {
		in.requested = true
		return RequestChild(children[0], c.Deflate(dw, dh))
	}
	size := child.WithDefault(Dimensions{})
	ctx.Position(children[0], Point{X: in.pad.Left, Y: in.pad.Top})
	return Size(c.Constrain(Dimensions{Width: size.Width + dw, Height: size.Height + dh}))
}

var _ Layout = &Inset{}
