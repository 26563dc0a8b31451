package theme

// Styles is a widget style of type S together with its variations for
// interaction states:
//
//	button := theme.NewStyles(ButtonStyle{Color: gray}).
//	    When(theme.State(theme.Hovered), ButtonStyle{Color: white}).
//	    When(theme.State(theme.Pressed), ButtonStyle{Color: black})
//
// Cases are kept in declaration order. When several cases apply to a state,
// later cases override earlier ones.
type Styles[S any] struct {
	base  S
	cases []styleCase[S]
}

type styleCase[S any] struct {
	when  InteractionState
	style S
}

// NewStyles creates Styles with a base style and no special cases.
func NewStyles[S any](base S) *Styles[S] {
	return &Styles[S]{base: base}
}

// When adds a special case, applied if pattern state applies for the
// widget's state (see InteractionState.AppliesFor).
func (st *Styles[S]) When(state InteractionState, style S) *Styles[S] {
	st.cases = append(st.cases, styleCase[S]{when: state, style: style})
	return st
}

// Base returns the style without any special case applied.
func (st *Styles[S]) Base() S {
	return st.base
}

// For returns all styles applying for a widget in state, base style first,
// then every applying case in declaration order.
func (st *Styles[S]) For(state InteractionState) []S {
	r := []S{st.base}
	for _, c := range st.cases {
		if c.when.AppliesFor(state) {
			r = append(r, c.style)
		}
	}
	return r
}

// Resolve folds the applying styles for state with merge, starting from
// the base style. With a merge that lets the second argument win, the last
// applying case wins.
func (st *Styles[S]) Resolve(state InteractionState, merge func(acc, over S) S) S {
	styles := st.For(state)
	acc := styles[0]
	for _, s := range styles[1:] {
		acc = merge(acc, s)
	}
	tracer().Debugf("theme: %d style case(s) applied for state %v", len(styles)-1, state)
	return acc
}
