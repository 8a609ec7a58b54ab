package maybe_test

import (
	"testing"

	. "github.com/npillmayer/refine/maybe"
)

func TestMaybeSimple(t *testing.T) {
	x := Just(7) // infers type
	y := Nothing[int]()

	var v int
	switch m := x.Match(); m {
	case m.Just(&v):
		t.Logf("Just(%d)", v)
	case m.Nothing():
		t.Logf("Nothing")
	}
	if v != 7 {
		t.Errorf("expected v to be 7, is %#v", v)
	}

	var w int
	switch m := y.Match(); m {
	case m.Just(&w):
		t.Logf("Just(%d)", w)
	case m.Nothing():
		t.Logf("Nothing")
	}
	if w != 0 {
		t.Errorf("expected w to be 0, is %#v", w)
	}
}

func TestMaybeZeroIsNothing(t *testing.T) {
	var x Maybe[string]
	if x.IsJust() {
		t.Error("expected zero value of Maybe to be Nothing, isn't")
	}
	if x != Nothing[string]() {
		t.Errorf("expected zero value to equal Nothing, is %v", x)
	}
	z := Just("")
	if !z.IsJust() {
		t.Error("expected Just(\"\") to be present, isn't")
	}
}

func TestMaybeMatchSlice(t *testing.T) {
	x := Just([]int{1, 2})
	var v []int
	switch m := x.Match(); m {
	case m.Just(&v):
	case m.Nothing():
		t.Error("expected Just([1 2]) to match Just, didn't")
	}
	if len(v) != 2 {
		t.Errorf("expected matched slice to have length 2, is %v", v)
	}
}

func TestMaybeWithDefault(t *testing.T) {
	x := Just(7)
	xx := x.WithDefault(100)
	if xx != 7 {
		t.Logf("y = %d", xx)
		t.Error("expected Just(7) to have value 7, isn't")
	}

	y := Nothing[int]()
	yy := y.WithDefault(100)
	if yy != 100 {
		t.Logf("y = %d", yy)
		t.Error("expected Nothing to default to 100, isn't")
	}
}

func TestMaybeOr(t *testing.T) {
	hi, lo := Just(1), Just(2)
	if v, _ := hi.Or(lo).Get(); v != 1 {
		t.Errorf("expected higher value to win, have %d", v)
	}
	if v, _ := Nothing[int]().Or(lo).Get(); v != 2 {
		t.Errorf("expected fallback to lower value, have %d", v)
	}
	if Nothing[int]().Or(Nothing[int]()).IsJust() {
		t.Error("expected Nothing.Or(Nothing) to be Nothing")
	}
}

func TestMaybeGetOrInsertWith(t *testing.T) {
	type pair struct{ a, b int }
	var x Maybe[pair]
	p := x.GetOrInsertWith(func() pair { return pair{a: 1} })
	p.b = 5
	if v, ok := x.Get(); !ok || v.a != 1 || v.b != 5 {
		t.Errorf("expected inserted and mutated value {1 5}, have %v", x)
	}
	p = x.GetOrInsertWith(func() pair { return pair{a: 99} })
	if p.a != 1 {
		t.Errorf("expected existing value to be kept, have %v", *p)
	}
}

func TestMaybeMap(t *testing.T) {
	x := Just(7)
	xx := x.Map(func(n int) int {
		return n * 2
	})
	var v int
	switch m := xx.Match(); m {
	case m.Just(&v):
	case m.Nothing():
	}
	if v != 14 {
		t.Logf("x * 2 = %d", v)
		t.Error("expected Just(7).Map(…) to return 14, didn't")
	}

	s := Map(func(n int) string {
		return string(rune('a' + n))
	}, Just(2))
	if str, _ := s.Get(); str != "c" {
		t.Errorf("expected Map(…, Just 2) to return \"c\", is %v", s)
	}

	y := Nothing[int]()
	yy := y.Map(func(n int) int {
		return n * 2
	})
	var w int
	switch m := yy.Match(); m {
	case m.Just(&w):
	case m.Nothing():
		w = 99
	}
	if w != 99 {
		t.Logf("nothing * 2 = %d", w)
		t.Error("expected Nothing.Map(…) to return 99, didn't")
	}
}

func TestMaybeAndThen(t *testing.T) {
	gt0 := func(n int) Maybe[bool] {
		if n > 0 {
			return Just(true)
		}
		return Nothing[bool]()
	}

	gt := AndThen(gt0, Just(7))
	var isGreater bool
	switch m := gt.Match(); m {
	case m.Just(&isGreater):
		t.Logf("ok: 7 > 0")
	case m.Nothing():
		t.Error("expected Just(7) |> andThen(gt0) to be true, isn't")
	}
	if AndThen(gt0, Just(-1)).IsJust() {
		t.Error("expected Just(-1) |> andThen(gt0) to be Nothing, isn't")
	}
}
