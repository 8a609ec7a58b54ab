/*
Package maybe implements an option type for values which may or may not be present.

Style refinements use Maybe for every field. An absent value means "not set
at this layer" and is different from a value explicitly set to T's zero value.
The zero value of Maybe[T] is Nothing.

Matching

Clients may use a switch statement to decompose a Maybe:

    var v int
    switch m := x.Match(); m {
    case m.Just(&v):
        // use v
    case m.Nothing():
        // no value
    }

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package maybe

import "fmt"

// Maybe is either Just a value or Nothing.
type Maybe[T any] struct {
	value T
	tag   bool
}

// Just wraps a present value.
func Just[T any](x T) Maybe[T] {
	return Maybe[T]{value: x, tag: true}
}

// Nothing returns an absent value.
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// IsJust is true if m holds a value.
func (m Maybe[T]) IsJust() bool {
	return m.tag
}

// IsNothing is true if m is absent.
func (m Maybe[T]) IsNothing() bool {
	return !m.tag
}

// Get returns the value and wether it is present. For Nothing the zero value
// of T is returned.
func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.tag
}

// WithDefault returns the value of m or def, if m is Nothing.
func (m Maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

// Map applies f to a present value.
func (m Maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.tag {
		return Just(f(m.value))
	}
	return m
}

// Or returns m if it is present, other otherwise.
//
// With a stack of layers, `higher.Or(lower)` selects the value of the layer
// with higher precedence.
func (m Maybe[T]) Or(other Maybe[T]) Maybe[T] {
	if m.tag {
		return m
	}
	return other
}

// GetOrInsertWith returns a pointer to the value of m. If m is Nothing, it is
// set to Just(f()) first. The pointer is valid until m is re-assigned.
func (m *Maybe[T]) GetOrInsertWith(f func() T) *T {
	if !m.tag {
		m.value = f()
		m.tag = true
	}
	return &m.value
}

func (m Maybe[T]) String() string {
	if m.tag {
		return fmt.Sprintf("Just(%v)", m.value)
	}
	return "Nothing"
}

// AndThen chains a computation which may fail to produce a value.
func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	var v T
	switch m := x.Match(); m {
	case m.Just(&v):
		return f(v)
	case m.Nothing():
	}
	return Nothing[S]()
}

// Map is the package level version of (Maybe).Map, allowing a change of type.
func Map[T, S any](f func(T) S, x Maybe[T]) Maybe[S] {
	if v, ok := x.Get(); ok {
		return Just(f(v))
	}
	return Nothing[S]()
}

// --- Matching --------------------------------------------------------------

// Matcher is used to decompose a Maybe in a switch statement.
type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

// Match returns a matcher for m. Matchers are pointers, so comparing them in a
// switch statement works for any T, including non-comparable ones.
func (m Maybe[T]) Match() Matcher[T] {
	return &matcher[T]{m: m}
}

type matcher[T any] struct {
	m Maybe[T]
}

func (mm *matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.tag {
		if v != nil {
			*v = mm.m.value
		}
		return mm
	}
	return nil
}

func (mm *matcher[T]) Nothing() Matcher[T] {
	if !mm.m.tag {
		return mm
	}
	return nil
}
