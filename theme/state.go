package theme

import (
	"strings"

	"github.com/npillmayer/boxlayout/css"
	"github.com/npillmayer/boxlayout/maybe"
)

// Flag is a single aspect of a widget's interaction state.
type Flag uint8

// Flags of an InteractionState.
const (
	Hovered Flag = 1 << iota
	Pressed
	Focused
	Selected
	Enabled
	Empty
)

var flagNames = []struct {
	flag Flag
	name string
}{
	{Hovered, "hovered"}, {Pressed, "pressed"}, {Focused, "focused"},
	{Selected, "selected"}, {Enabled, "enabled"}, {Empty, "empty"},
}

func (f Flag) String() string {
	for _, fn := range flagNames {
		if fn.flag == f {
			return fn.name
		}
	}
	return "?"
}

// InteractionState describes the states of a widget relevant for theming.
// Every flag is tri-state: unset, true or false. The zero value has all
// flags unset. States are comparable values; setters return a copy.
//
// Used as a pattern (see AppliesFor), unset flags match anything.
type InteractionState struct {
	set   Flag // flags with a value
	value Flag // values of flags in set
}

// State creates a state with the given flags set to true.
func State(flags ...Flag) InteractionState {
	var s InteractionState
	for _, f := range flags {
		s = s.With(f)
	}
	return s
}

// With sets flag f to true.
func (s InteractionState) With(f Flag) InteractionState {
	return s.Set(f, true)
}

// Without sets flag f to false.
func (s InteractionState) Without(f Flag) InteractionState {
	return s.Set(f, false)
}

// Set sets flag f to on.
func (s InteractionState) Set(f Flag, on bool) InteractionState {
	s.set |= f
	if on {
		s.value |= f
	} else {
		s.value &^= f
	}
	return s
}

// Unset returns f to the unset state.
func (s InteractionState) Unset(f Flag) InteractionState {
	s.set &^= f
	s.value &^= f
	return s
}

// Is returns the value of flag f, or Nothing if unset.
func (s InteractionState) Is(f Flag) maybe.Maybe[bool] {
	return maybe.FromOK(s.value&f != 0, s.set&f != 0)
}

// AppliesFor checks whether a style guarded by pattern s should be applied
// to a widget in state other: every flag set in s has to be set to the
// same value in other.
func (s InteractionState) AppliesFor(other InteractionState) bool {
	if s.set&^other.set != 0 {
		return false
	}
	return (s.value^other.value)&s.set == 0
}

// PseudoClasses maps the flags set to true to CSS pseudo-classes. Enabled
// maps to "enabled" or "disabled", if set.
func (s InteractionState) PseudoClasses() []string {
	var pcs []string
	on := func(f Flag) bool { return s.set&f != 0 && s.value&f != 0 }
	if on(Hovered) {
		pcs = append(pcs, "hover")
	}
	if on(Pressed) {
		pcs = append(pcs, "active")
	}
	if on(Focused) {
		pcs = append(pcs, "focus")
	}
	if on(Selected) {
		pcs = append(pcs, "checked")
	}
	if s.set&Enabled != 0 {
		if s.value&Enabled != 0 {
			pcs = append(pcs, "enabled")
		} else {
			pcs = append(pcs, "disabled")
		}
	}
	if on(Empty) {
		pcs = append(pcs, "empty")
	}
	return pcs
}

// Apply returns sel with the pseudo-classes of s added.
func (s InteractionState) Apply(sel css.Selector) css.Selector {
	for _, pc := range s.PseudoClasses() {
		sel = sel.WithPseudoClass(pc)
	}
	return sel
}

func (s InteractionState) String() string {
	var parts []string
	for _, fn := range flagNames {
		if s.set&fn.flag == 0 {
			continue
		}
		if s.value&fn.flag != 0 {
			parts = append(parts, fn.name)
		} else {
			parts = append(parts, "!"+fn.name)
		}
	}
	return "{" + strings.Join(parts, ",") + "}"
}
