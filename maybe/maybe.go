/*
Package maybe implements an option type.

A Maybe is either Just a value or Nothing. Clients inspect it with a
switch on its matcher:

	var size layout.Dimensions
	switch m := ctx.GetSize(id).Match(); m {
	case m.Just(&size):
		// use size
	case m.Nothing():
		// not sized yet
	}

The value type must be comparable for the switch idiom to work, as the
matcher is compared against the results of its own methods.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package maybe

// Maybe is an optional value of type T.
type Maybe[T any] interface {
	Match() Matcher[T]
	WithDefault(T) T
	Map(func(T) T) Maybe[T]
	IsNothing() bool
	Get() (T, bool)
}

type maybe[T any] struct {
	value T
	tag   bool
}

// Just wraps x into a Maybe.
func Just[T any](x T) Maybe[T] {
	return maybe[T]{value: x, tag: true}
}

// Nothing returns an empty Maybe.
func Nothing[T any]() Maybe[T] {
	return maybe[T]{tag: false}
}

// FromOK converts the comma-ok idiom into a Maybe.
func FromOK[T any](x T, ok bool) Maybe[T] {
	if ok {
		return Just(x)
	}
	return Nothing[T]()
}

func (m maybe[T]) Match() Matcher[T] {
	return matcher[T]{m: m}
}

func (m maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

func (m maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.tag {
		return Just(f(m.value))
	}
	return m
}

func (m maybe[T]) IsNothing() bool {
	return !m.tag
}

// Get unwraps the value, returning false for Nothing.
func (m maybe[T]) Get() (T, bool) {
	return m.value, m.tag
}

// AndThen chains a computation which itself may produce Nothing.
func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	if x == nil {
		return Nothing[S]()
	}
	if v, ok := x.Get(); ok {
		return f(v)
	}
	return Nothing[S]()
}

// Map applies f to the value of x, if present.
func Map[T any](f func(T) T, x Maybe[T]) Maybe[T] {
	if x == nil {
		return Nothing[T]()
	}
	return x.Map(f)
}

// --- Matching --------------------------------------------------------------

// Matcher is returned by Maybe.Match. Each method returns the matcher itself
// if the case applies, nil otherwise.
type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

type matcher[T any] struct {
	m maybe[T]
}

func (mm matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.tag {
		if v != nil {
			*v = mm.m.value
		}
		return mm
	}
	return nil
}

func (mm matcher[T]) Nothing() Matcher[T] {
	if !mm.m.tag {
		return mm
	}
	return nil
}
