package layout

import "github.com/npillmayer/boxlayout/maybe"

// Childless is the algorithm for fixed-size leaf widgets. A Childless widget
// may not have children; giving it some is a programmer error and panics.
type Childless struct {
	Width, Height float64
}

// Fixed returns a Childless layout of size d.
func Fixed(d Dimensions) *Childless {
	return &Childless{Width: d.Width, Height: d.Height}
}

// Reset is a no-op, Childless is stateless.
func (cl *Childless) Reset() {}

// Layout returns the fixed extent, clamped into c.
func (cl *Childless) Layout(c BoxConstraints, children []ID, _ maybe.Maybe[Dimensions], _ Context) Result {
	assertThat(len(children) == 0, "a Childless widget may not have children (has %d)", len(children))
	return Size(Dimensions{
		Width:  c.CheckWidth(cl.Width),
		Height: c.CheckHeight(cl.Height),
	})
}

var _ Layout = &Childless{}
