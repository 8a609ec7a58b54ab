package unit_test

import (
	"errors"
	"testing"

	"github.com/npillmayer/refine/unit"
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLengthBasic(t *testing.T) {
	ten := unit.Px(10)
	var px unit.Pixels
	switch m := ten.Match(); m {
	case m.Pixels(&px):
		t.Logf("px = %s", px)
	default:
		t.Errorf("expected Px(10) to be a pixel value, isn't: %#v", ten)
	}
	if px != 10 {
		t.Errorf("expected 10px, have %v", px)
	}

	auto := unit.Auto()
	switch m := auto.Match(); m {
	case m.IsKind(unit.Auto()):
		t.Logf("length is auto")
	default:
		t.Errorf("expected length auto to match auto, isn't: %#v", auto)
	}

	rel := unit.Relative(0.75)
	var f float32
	switch m := rel.Match(); m {
	case m.Pixels(nil), m.Rems(nil):
		t.Errorf("expected Relative(0.75) not to be absolute")
	case m.Fraction(&f):
		t.Logf("fraction = %v", f)
	}
	if f != 0.75 {
		t.Errorf("expected fraction 0.75, have %v", f)
	}
}

func TestLengthPattern(t *testing.T) {
	l := unit.Rems(1.5)
	var x float32
	m := unit.LengthPattern[float32](l)
	px := m.OneOf(unit.LengthPatterns[float32]{
		Pixels:  m.With(&x).Const(x),
		Rems:    m.With(&x).Const(x * 16),
		Auto:    0,
		Default: -1,
	})
	if px != 24 {
		t.Errorf("expected 1.5rem to be 24px at 16px root size, is %v", px)
	}
	kind := unit.LengthPattern[string](unit.Auto()).OneOf(unit.LengthPatterns[string]{
		Auto:    "auto",
		Default: "other",
	})
	assert.Equal(t, "auto", kind)
}

func TestLengthEquality(t *testing.T) {
	assert.Equal(t, unit.Px(1), unit.Px(1))
	assert.NotEqual(t, unit.Px(1), unit.Rems(1))
	assert.NotEqual(t, unit.Relative(1), unit.Px(1))
	assert.Equal(t, unit.Percentage(50), unit.Relative(0.5))
	assert.True(t, unit.Length{}.IsNone())
}

func TestLengthKinds(t *testing.T) {
	assert.True(t, unit.Px(3).IsAbsolute())
	assert.True(t, unit.Rems(3).IsAbsolute())
	assert.False(t, unit.Relative(1).IsAbsolute())
	assert.True(t, unit.Relative(1).IsDefinite())
	assert.False(t, unit.Auto().IsDefinite())
	assert.True(t, unit.Auto().IsAuto())
}

func TestLengthToPixels(t *testing.T) {
	cases := []struct {
		l  unit.Length
		px unit.Pixels
		ok bool
	}{
		{unit.Px(12), 12, true},
		{unit.Rems(2), 32, true},
		{unit.Relative(0.5), 50, true},
		{unit.Auto(), 0, false},
		{unit.Length{}, 0, false},
	}
	for _, c := range cases {
		px, ok := c.l.ToPixels(16, 100)
		assert.Equal(t, c.ok, ok, "length %s", c.l)
		assert.Equal(t, c.px, px, "length %s", c.l)
	}
}

func TestLengthToDU(t *testing.T) {
	du, ok := unit.Px(4).ToDU(16, 0)
	require.True(t, ok)
	if du != 3*dimen.PT {
		t.Errorf("expected 4px to be 3pt, is %s", du)
	}
	_, ok = unit.Auto().ToDU(16, 0)
	assert.False(t, ok)
}

func TestLengthPercent(t *testing.T) {
	p, ok := unit.Relative(0.8).Percent()
	require.True(t, ok)
	assert.Equal(t, percent.FromInt(80), p)
	_, ok = unit.Px(1).Percent()
	assert.False(t, ok)
}

func TestParseLength(t *testing.T) {
	for in, want := range map[string]unit.Length{
		"12px":   unit.Px(12),
		"1.5rem": unit.Rems(1.5),
		"75%":    unit.Relative(0.75),
		"auto":   unit.Auto(),
		" 0 ":    unit.Px(0),
	} {
		l, err := unit.ParseLength(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, l, in)
	}
	for _, in := range []string{"12", "px", "abcrem", ""} {
		_, err := unit.ParseLength(in)
		if !errors.Is(err, unit.ErrInvalidLength) {
			t.Errorf("expected %q to be rejected with ErrInvalidLength, have %v", in, err)
		}
	}
}

func TestLengthString(t *testing.T) {
	assert.Equal(t, "12px", unit.Px(12).String())
	assert.Equal(t, "1.5rem", unit.Rems(1.5).String())
	assert.Equal(t, "50%", unit.Relative(0.5).String())
	assert.Equal(t, "auto", unit.Auto().String())
}
