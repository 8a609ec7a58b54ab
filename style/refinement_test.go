package style

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/refine/maybe"
	"github.com/npillmayer/refine/unit"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroRefinementIsEmpty(t *testing.T) {
	var r StyleRefinement
	if !r.IsEmpty() {
		t.Errorf("expected zero refinement to be empty, has %v", r.Properties())
	}
	r.Text.FontFamily = maybe.Just("Inter")
	if r.IsEmpty() {
		t.Error("expected refinement with font family to be non-empty")
	}
}

func TestRefineHigherWins(t *testing.T) {
	lower := StyleRefinement{}
	lower.Display = maybe.Just(DisplayFlex)
	lower.Margin.SetAll(unit.Px(4))
	lower.Text.Color = maybe.Just(unit.Black)
	higher := StyleRefinement{}
	higher.Margin.Top = maybe.Just(unit.Px(8))
	higher.Text.Color = maybe.Just(unit.White)

	lower.Refine(&higher)
	assert.Equal(t, maybe.Just(DisplayFlex), lower.Display, "unset field in higher must fall through")
	assert.Equal(t, maybe.Just(unit.Px(8)), lower.Margin.Top)
	assert.Equal(t, maybe.Just(unit.Px(4)), lower.Margin.Left)
	assert.Equal(t, maybe.Just(unit.White), lower.Text.Color)
}

func TestRefineNil(t *testing.T) {
	r := StyleRefinement{}
	r.ZIndex = maybe.Just(uint32(3))
	r.Refine(nil)
	assert.Equal(t, maybe.Just(uint32(3)), r.ZIndex)
}

func TestRefineReplacesShadowList(t *testing.T) {
	a := BoxShadow{Color: unit.Black, BlurRadius: 1}
	b := BoxShadow{Color: unit.Black, BlurRadius: 2}
	c := BoxShadow{Color: unit.Black, BlurRadius: 3}
	lower := StyleRefinement{BoxShadow: maybe.Just([]BoxShadow{a})}
	higher := StyleRefinement{BoxShadow: maybe.Just([]BoxShadow{b, c})}
	lower.Refine(&higher)
	shadows, ok := lower.BoxShadow.Get()
	require.True(t, ok)
	assert.Equal(t, []BoxShadow{b, c}, shadows)

	// no aliasing with the higher layer
	hs, _ := higher.BoxShadow.Get()
	hs[0].BlurRadius = 99
	shadows, _ = lower.BoxShadow.Get()
	if shadows[0].BlurRadius != 2 {
		t.Errorf("expected merged shadow list to be independent, blur is %v", shadows[0].BlurRadius)
	}
}

func TestRefineEmptyShadowListClears(t *testing.T) {
	lower := StyleRefinement{BoxShadow: maybe.Just([]BoxShadow{{BlurRadius: 1}})}
	higher := StyleRefinement{BoxShadow: maybe.Just([]BoxShadow{})}
	lower.Refine(&higher)
	shadows, ok := lower.BoxShadow.Get()
	if !ok || len(shadows) != 0 {
		t.Errorf("expected an explicit empty shadow list, have %v", lower.BoxShadow)
	}
}

func TestCloneIsDeep(t *testing.T) {
	r := StyleRefinement{BoxShadow: maybe.Just([]BoxShadow{{BlurRadius: 1}})}
	c := r.Clone()
	cs, _ := c.BoxShadow.Get()
	cs[0].BlurRadius = 5
	rs, _ := r.BoxShadow.Get()
	if rs[0].BlurRadius != 1 {
		t.Errorf("expected clone not to share shadows, original blur is %v", rs[0].BlurRadius)
	}
}

func TestApplyToBaseline(t *testing.T) {
	r := StyleRefinement{}
	r.Padding.Left = maybe.Just(unit.Rems(1))
	r.FlexGrow = maybe.Just(float32(1))
	r.Text.Color = maybe.Just(unit.White)
	base := DefaultStyle()
	s := r.ApplyTo(base)

	expected := DefaultStyle()
	expected.Padding.Left = unit.Rems(1)
	expected.FlexGrow = 1
	if diff := cmp.Diff(expected, s, cmp.AllowUnexported(unit.Length{}, TextDecoration{}, maybe.Maybe[unit.Hsla]{})); diff != "" {
		t.Errorf("resolved style mismatch (-want +got):\n%s", diff)
	}
	if s.Text.Color != unit.Black {
		t.Errorf("expected ApplyTo to leave text alone, color is %v", s.Text.Color)
	}
}

func TestUnderlineMutMaterializesDefault(t *testing.T) {
	var r TextStyleRefinement
	r.UnderlineMut().Thickness = 2
	d, ok := r.Decoration.Get()
	require.True(t, ok)
	u, underlined := d.Underline()
	require.True(t, underlined)
	assert.Equal(t, UnderlineStyle{Color: maybe.Nothing[unit.Hsla](), Wavy: false, Thickness: 2}, u)

	r.UnderlineMut().Wavy = true
	d, _ = r.Decoration.Get()
	u, _ = d.Underline()
	assert.Equal(t, unit.Pixels(2), u.Thickness, "second mutation must keep earlier settings")
	assert.True(t, u.Wavy)
}

func TestClearDecorationThenUnderline(t *testing.T) {
	var r TextStyleRefinement
	r.UnderlineMut().Thickness = 4
	r.ClearDecoration()
	d, ok := r.Decoration.Get()
	require.True(t, ok, "clear must be an explicit value")
	if _, underlined := d.Underline(); underlined {
		t.Error("expected decoration to be cleared")
	}
	r.UnderlineMut().Wavy = true
	d, _ = r.Decoration.Get()
	u, _ := d.Underline()
	assert.Equal(t, UnderlineStyle{Wavy: true}, u)
}

func TestDecorationReplacedAsWhole(t *testing.T) {
	var lower, higher TextStyleRefinement
	lower.UnderlineMut().Thickness = 2
	lower.UnderlineMut().Color = maybe.Just(unit.White)
	higher.UnderlineMut().Wavy = true
	lower.Refine(&higher)
	d, _ := lower.Decoration.Get()
	u, _ := d.Underline()
	assert.Equal(t, UnderlineStyle{Wavy: true}, u)
}

func TestTextStyleUnderlineColorFallback(t *testing.T) {
	ts := DefaultTextStyle()
	if _, ok := ts.Underline(); ok {
		t.Error("expected default text style to have no underline")
	}
	ts.Color = unit.Rgb(0xff0000)
	ts.Decoration = Underlined(UnderlineStyle{Thickness: 1})
	u, ok := ts.Underline()
	require.True(t, ok)
	assert.Equal(t, ts.Color, u.Color)
	ts.Decoration = Underlined(UnderlineStyle{Thickness: 1, Color: maybe.Just(unit.White)})
	u, _ = ts.Underline()
	assert.Equal(t, unit.White, u.Color)
}

func TestTextStylePixels(t *testing.T) {
	ts := DefaultTextStyle()
	assert.Equal(t, unit.Pixels(16), ts.FontSizePixels(16))
	assert.Equal(t, unit.Pixels(20), ts.LineHeightPixels(16))
	ts.FontSize = unit.Px(12)
	ts.LineHeight = unit.Px(14)
	assert.Equal(t, unit.Pixels(12), ts.FontSizePixels(16))
	assert.Equal(t, unit.Pixels(14), ts.LineHeightPixels(16))
}

func TestDefaultStyle(t *testing.T) {
	s := DefaultStyle()
	if !s.IsVisible() || s.HasBorder() {
		t.Errorf("expected default style to be visible without border")
	}
	if s.BoxShadow == nil || len(s.BoxShadow) != 0 {
		t.Errorf("expected empty, non-nil shadow list, have %#v", s.BoxShadow)
	}
	if !s.Size.Width.IsAuto() || !s.FlexBasis.IsAuto() {
		t.Errorf("expected auto width and flex basis, have %v, %v", s.Size.Width, s.FlexBasis)
	}
	assert.Equal(t, CursorArrow, s.MouseCursor)
	assert.Equal(t, "Helvetica", s.Text.FontFamily)
	assert.True(t, s.Background.Color.IsTransparent())
}

func TestProperties(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "refine.style")
	defer teardown()
	//
	r := StyleRefinement{}
	r.Margin.Top = maybe.Just(unit.Px(4))
	r.BorderWidths.Left = maybe.Just(unit.Px(1))
	r.Inset.Right = maybe.Just(unit.Auto())
	r.Text.FontSize = maybe.Just(unit.Rems(1.5))
	r.BoxShadow = maybe.Just([]BoxShadow{})
	props := r.Properties()
	t.Logf("properties = %v", props)
	assert.Equal(t, []KeyValue{
		{"right", "auto"},
		{"margin-top", "4px"},
		{"border-left-width", "1px"},
		{"box-shadow", "none"},
		{"font-size", "1.5rem"},
	}, props)
	assert.Equal(t, []string{PGBorder, PGDimension, PGMargins, PGText}, r.Groups())
	t.Logf("refinement = %s", r.String())
}

func TestGroupOf(t *testing.T) {
	assert.Equal(t, PGPadding, GroupOf("padding-left"))
	assert.Equal(t, PGFlex, GroupOf("justify-content"))
	assert.Equal(t, PGX, GroupOf("float"))
	assert.True(t, IsInherited("color"))
	assert.True(t, IsInherited("font-size"))
	assert.False(t, IsInherited("margin-top"))
	assert.False(t, IsInherited("background-color"))
}

func TestSetProperty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "refine.style")
	defer teardown()
	//
	r := StyleRefinement{}
	for _, kv := range []KeyValue{
		{"display", "flex"},
		{"margin-left", "8px"},
		{"padding-top", "0.5rem"},
		{"border-bottom-width", "2px"},
		{"width", "50%"},
		{"color", "#ff0000"},
		{"cursor", "pointer"},
		{"z-index", "7"},
		{"overflow", "hidden"},
		{"font-weight", "700"},
		{"text-decoration", "none"},
	} {
		require.NoError(t, r.Set(kv.Key, kv.Value), kv.Key)
	}
	assert.Equal(t, maybe.Just(DisplayFlex), r.Display)
	assert.Equal(t, maybe.Just(unit.Px(8)), r.Margin.Left)
	assert.Equal(t, maybe.Just(unit.Rems(0.5)), r.Padding.Top)
	assert.Equal(t, maybe.Just(unit.Px(2)), r.BorderWidths.Bottom)
	assert.Equal(t, maybe.Just(unit.Relative(0.5)), r.Size.Width)
	assert.Equal(t, maybe.Just(unit.Rgb(0xff0000)), r.Text.Color)
	assert.Equal(t, maybe.Just(CursorPointingHand), r.MouseCursor)
	assert.Equal(t, maybe.Just(uint32(7)), r.ZIndex)
	assert.Equal(t, maybe.Just(OverflowHidden), r.Overflow.Y)
	assert.Equal(t, maybe.Just(WeightBold), r.Text.FontWeight)
	assert.Equal(t, maybe.Just(NoDecoration()), r.Text.Decoration)
}

func TestSetPropertyErrors(t *testing.T) {
	r := StyleRefinement{}
	r.Margin.Top = maybe.Just(unit.Px(1))
	err := r.Set("margin-top", "12")
	assert.ErrorIs(t, err, unit.ErrInvalidLength)
	assert.Equal(t, maybe.Just(unit.Px(1)), r.Margin.Top, "failed set must not touch the property")
	assert.ErrorIs(t, r.Set("float", "left"), ErrUnknownKeyword)
	assert.ErrorIs(t, r.Set("display", "grid"), ErrUnknownKeyword)
	assert.ErrorIs(t, r.Set("color", "red"), unit.ErrInvalidColor)
	assert.True(t, r.Display.IsNothing())
}
