/*
Package unit provides the value types styles are built from: lengths,
colors and small geometry containers.

Lengths are kept in the unit they have been specified in. Converting between
units needs the size of the enclosing container and the root font size, both
of which are known only at layout time. Conversion helpers are provided for
layout and paint consumers; the cascade never converts.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package unit

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
)

// ErrInvalidLength is returned for length literals which cannot be parsed.
var ErrInvalidLength = errors.New("invalid length")

// Pixels is a device-independent pixel value.
type Pixels float32

// DU converts p to typesetting design units. A pixel is 0.75pt.
func (p Pixels) DU() dimen.DU {
	return dimen.DU(math.Round(float64(p) * 0.75 * float64(dimen.PT)))
}

func (p Pixels) String() string {
	return strconv.FormatFloat(float64(p), 'f', -1, 32) + "px"
}

const (
	lengthNone     uint32 = 0x0000
	lengthPixels   uint32 = 0x0001 // absolute
	lengthRems     uint32 = 0x0002 // multiple of root font size
	lengthFraction uint32 = 0x0003 // fraction of available space
	lengthAuto     uint32 = 0x0004 // determined by layout
	kindMask       uint32 = 0x000f

	absoluteFlag uint32 = 0x0100 // set for pixels and rems
)

// Length is an option type for lengths.
//
/*
type Length
	= Pixels px
	| Rems n
	| Fraction f
	| Auto
*/
// The zero value is an invalid length, which matches no kind.
type Length struct {
	value float32
	flags uint32
}

// Px creates an absolute length of x pixels.
func Px(x float32) Length {
	return Length{value: x, flags: lengthPixels | absoluteFlag}
}

// Rems creates a length relative to the root font size.
func Rems(n float32) Length {
	return Length{value: n, flags: lengthRems | absoluteFlag}
}

// Relative creates a length as a fraction of the available space.
// 1.0 is the full size of the enclosing box on the respective axis.
func Relative(f float32) Length {
	return Length{value: f, flags: lengthFraction}
}

// Percentage creates a relative length from a percent value.
func Percentage(n float32) Length {
	return Relative(n / 100)
}

// Auto creates a length to be determined by layout.
func Auto() Length {
	return Length{flags: lengthAuto}
}

// IsNone is true for the zero value.
func (l Length) IsNone() bool {
	return l.flags&kindMask == lengthNone
}

// IsAuto is true for Auto().
func (l Length) IsAuto() bool {
	return l.flags&kindMask == lengthAuto
}

// IsAbsolute is true for pixel and rem lengths.
func (l Length) IsAbsolute() bool {
	return l.flags&absoluteFlag > 0
}

// IsDefinite is true for absolute and relative lengths.
func (l Length) IsDefinite() bool {
	k := l.flags & kindMask
	return k == lengthPixels || k == lengthRems || k == lengthFraction
}

// ToPixels resolves l, given the root font size and the available space on the
// relevant axis. Auto and invalid lengths cannot be resolved.
func (l Length) ToPixels(remSize Pixels, available Pixels) (Pixels, bool) {
	switch l.flags & kindMask {
	case lengthPixels:
		return Pixels(l.value), true
	case lengthRems:
		return Pixels(l.value) * remSize, true
	case lengthFraction:
		return Pixels(l.value) * available, true
	}
	return 0, false
}

// ToDU resolves l to typesetting design units. See ToPixels.
func (l Length) ToDU(remSize Pixels, available Pixels) (dimen.DU, bool) {
	px, ok := l.ToPixels(remSize, available)
	if !ok {
		return 0, false
	}
	return px.DU(), true
}

// Percent returns a relative length as a percentage, rounded to an integer.
func (l Length) Percent() (percent.Percent, bool) {
	if l.flags&kindMask != lengthFraction {
		return percent.FromInt(0), false
	}
	return percent.FromInt(int(math.Round(float64(l.value) * 100))), true
}

func (l Length) String() string {
	v := strconv.FormatFloat(float64(l.value), 'f', -1, 32)
	switch l.flags & kindMask {
	case lengthPixels:
		return v + "px"
	case lengthRems:
		return v + "rem"
	case lengthFraction:
		return strconv.FormatFloat(float64(l.value)*100, 'f', -1, 32) + "%"
	case lengthAuto:
		return "auto"
	}
	return "none"
}

// ParseLength creates a length from a literal, e.g. "12px", "1.5rem",
// "75%" or "auto". A plain "0" is accepted as zero pixels.
func ParseLength(s string) (Length, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	var num string
	var mk func(float32) Length
	switch {
	case s == "auto":
		return Auto(), nil
	case s == "0":
		return Px(0), nil
	case strings.HasSuffix(s, "px"):
		num, mk = strings.TrimSuffix(s, "px"), Px
	case strings.HasSuffix(s, "rem"):
		num, mk = strings.TrimSuffix(s, "rem"), Rems
	case strings.HasSuffix(s, "%"):
		num, mk = strings.TrimSuffix(s, "%"), Percentage
	default:
		return Length{}, fmt.Errorf("%w: missing unit in %q", ErrInvalidLength, s)
	}
	x, err := strconv.ParseFloat(num, 32)
	if err != nil {
		return Length{}, fmt.Errorf("%w: %q: %v", ErrInvalidLength, s, err)
	}
	return mk(float32(x)), nil
}

// ---------------------------------------------------------------------------

// Match returns a matcher to decompose l in a switch statement:
//
//    var px unit.Pixels
//    switch m := l.Match(); m {
//    case m.Pixels(&px):
//        …
//    case m.IsKind(unit.Auto()):
//        …
//    }
func (l Length) Match() *Matcher {
	return &Matcher{length: l}
}

// Matcher decomposes lengths.
type Matcher struct {
	length Length
}

// IsKind matches if the length is of the same kind as l.
func (m *Matcher) IsKind(l Length) *Matcher {
	if m.length.flags&kindMask == l.flags&kindMask {
		return m
	}
	return nil
}

// Pixels matches absolute pixel lengths.
func (m *Matcher) Pixels(px *Pixels) *Matcher {
	if m.length.flags&kindMask == lengthPixels {
		if px != nil {
			*px = Pixels(m.length.value)
		}
		return m
	}
	return nil
}

// Rems matches font-relative lengths.
func (m *Matcher) Rems(n *float32) *Matcher {
	if m.length.flags&kindMask == lengthRems {
		if n != nil {
			*n = m.length.value
		}
		return m
	}
	return nil
}

// Fraction matches container-relative lengths.
func (m *Matcher) Fraction(f *float32) *Matcher {
	if m.length.flags&kindMask == lengthFraction {
		if f != nil {
			*f = m.length.value
		}
		return m
	}
	return nil
}

// --- Expression matching ---------------------------------------------------

// LengthPatterns holds the results for each kind of length.
type LengthPatterns[T any] struct {
	Pixels   T
	Rems     T
	Fraction T
	Auto     T
	Default  T
}

// LengthPattern starts an expression match on l.
func LengthPattern[T any](l Length) *MatchExpr[T] {
	return &MatchExpr[T]{length: l}
}

// MatchExpr is part of expression matching for lengths and is created by
// LengthPattern only.
type MatchExpr[T any] struct {
	length Length
}

// OneOf selects the pattern for the kind of length.
func (m *MatchExpr[T]) OneOf(patterns LengthPatterns[T]) T {
	switch m.length.flags & kindMask {
	case lengthPixels:
		return patterns.Pixels
	case lengthRems:
		return patterns.Rems
	case lengthFraction:
		return patterns.Fraction
	case lengthAuto:
		return patterns.Auto
	}
	return patterns.Default
}

// With extracts the numeric value of the length.
func (m *MatchExpr[T]) With(x *float32) *MatchExpr[T] {
	*x = m.length.value
	return m
}

// Const returns x.
func (m *MatchExpr[T]) Const(x T) T {
	return x
}
