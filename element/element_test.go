package element

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/refine/cascade"
	"github.com/npillmayer/refine/maybe"
	"github.com/npillmayer/refine/style"
	"github.com/npillmayer/refine/styled"
	"github.com/npillmayer/refine/unit"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

var allowUnexported = cmp.AllowUnexported(
	unit.Length{},
	style.TextDecoration{},
	maybe.Maybe[unit.Hsla]{},
)

func button(name string) *Node {
	b := New(name)
	b.Defaults().Flex().Px(styled.S4).Py(styled.S2).Rounded(styled.RadiusMd).
		Bg(unit.Rgb(0xe2e8f0)).CursorPointer()
	b.On(Hover).Bg(unit.Rgb(0xcbd5e1)).ShadowSm()
	b.On(Focus).BorderColor(unit.Rgb(0x3b82f6)).Border(styled.Border2)
	b.On(Active).Bg(unit.Rgb(0x94a3b8)).ShadowNone()
	b.On(Disabled).Bg(unit.Rgb(0xf1f5f9)).CursorNotAllowed().TextColor(unit.Rgb(0x94a3b8))
	return b
}

func TestTreeStructure(t *testing.T) {
	root := New("root")
	a, b := New("a"), New("b")
	root.AddChild(a, nil, b)
	if root.ChildCount() != 2 {
		t.Fatalf("expected 2 children, have %d", root.ChildCount())
	}
	if ch, ok := root.Child(1); !ok || ch != b {
		t.Errorf("expected child #1 to be b, is %v", ch)
	}
	if _, ok := root.Child(2); ok {
		t.Error("expected no child #2")
	}
	if a.Parent() != root || root.Parent() != nil {
		t.Error("expected parent links to be set")
	}
	children := root.Children()
	children[0] = nil
	if ch, _ := root.Child(0); ch != a {
		t.Error("expected Children to return a copy")
	}
}

func TestLayersOrder(t *testing.T) {
	n := button("button")
	assert.Len(t, n.Layers(), 2)
	n.SetState(Disabled | Hover)
	layers := n.Layers()
	require.Len(t, layers, 4)
	assert.Equal(t, maybe.Just(style.CursorOperationNotAllowed), layers[3].MouseCursor)
	assert.True(t, layers[2].BoxShadow.IsJust(), "hover overlay expected below disabled")
	assert.Equal(t, "hover|disabled", n.State().String())
	assert.True(t, n.State().Has(Disabled))
	assert.False(t, n.State().Has(Focus))
}

func TestOverlayPrecedence(t *testing.T) {
	r := cascade.NewResolver()
	n := button("button")

	s := Resolve(n, r)
	assert.Equal(t, style.ColorFill(unit.Rgb(0xe2e8f0)), s.Background)
	assert.Empty(t, s.BoxShadow)

	n.SetState(Hover)
	s = Resolve(n, r)
	assert.Equal(t, style.ColorFill(unit.Rgb(0xcbd5e1)), s.Background)
	assert.Len(t, s.BoxShadow, 1)

	n.SetState(Hover | Active)
	s = Resolve(n, r)
	assert.Equal(t, style.ColorFill(unit.Rgb(0x94a3b8)), s.Background)
	assert.Empty(t, s.BoxShadow, "active clears the hover shadow")

	n.SetState(Hover | Focus | Active | Disabled)
	s = Resolve(n, r)
	assert.Equal(t, style.ColorFill(unit.Rgb(0xf1f5f9)), s.Background)
	assert.Equal(t, style.CursorOperationNotAllowed, s.MouseCursor)
	assert.Equal(t, unit.Px(2), s.BorderWidths.Top, "focus border is not touched by higher overlays")
}

func TestOverlayForMultipleStates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "refine.element")
	defer teardown()
	//
	n := New("n")
	n.On(Hover | Focus).Bg(unit.Black)
	n.SetState(Hover | Focus)
	for _, layer := range n.Layers() {
		if !layer.IsEmpty() {
			t.Errorf("expected detached builder for combined states, have layer %v", layer)
		}
	}
}

func TestResolveTreeTextInheritance(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "refine.element")
	defer teardown()
	//
	root := New("root")
	root.Style().Font("Inter").TextLg().P(styled.S4)
	panel := New("panel")
	panel.Style().TextColor(unit.White)
	label := New("label")
	root.AddChild(panel.AddChild(label))

	ResolveTree(root, cascade.NewResolver())
	s, ok := label.Computed()
	require.True(t, ok)
	assert.Equal(t, "Inter", s.Text.FontFamily)
	assert.Equal(t, unit.Rems(1.125), s.Text.FontSize)
	assert.Equal(t, unit.White, s.Text.Color)
	assert.Equal(t, unit.Px(0), s.Padding.Left, "padding must not be inherited")

	// resolving a single node picks up the parent's text style
	label.Style().Italic()
	s = Resolve(label, cascade.NewResolver())
	assert.Equal(t, "Inter", s.Text.FontFamily)
	assert.Equal(t, style.FontItalic, s.Text.FontStyle)
}

func TestComputedBeforeResolution(t *testing.T) {
	if _, ok := New("x").Computed(); ok {
		t.Error("expected unresolved node to have no computed style")
	}
	ResolveTree(nil, cascade.NewResolver())
}

func buildTree(depth, fanout int) *Node {
	var build func(name string, d int) *Node
	build = func(name string, d int) *Node {
		n := New(name)
		switch d % 3 {
		case 0:
			n.Style().TextSize(unit.Px(float32(10 + d)))
		case 1:
			n.Style().TextColor(unit.Degrees(float32(30*d), 0.5, 0.5, 1))
		case 2:
			n.Style().TextDecorationWavy().P(styled.S1)
		}
		if d < depth {
			for i := 0; i < fanout; i++ {
				n.AddChild(build(fmt.Sprintf("%s.%d", name, i), d+1))
			}
		}
		return n
	}
	return build("root", 0)
}

func collect(n *Node, into map[string]style.Style) {
	s, _ := n.Computed()
	into[n.Name] = s
	for _, ch := range n.Children() {
		collect(ch, into)
	}
}

func TestResolveTreeParallel(t *testing.T) {
	defer goleak.VerifyNone(t)
	r := cascade.NewResolver()

	seq := buildTree(5, 3)
	ResolveTree(seq, r)
	expected := map[string]style.Style{}
	collect(seq, expected)

	for _, workers := range []int{0, 1, 4} {
		par := buildTree(5, 3)
		err := ResolveTreeParallel(context.Background(), par, r, workers)
		require.NoError(t, err)
		got := map[string]style.Style{}
		collect(par, got)
		if diff := cmp.Diff(expected, got, allowUnexported); diff != "" {
			t.Errorf("workers=%d: parallel resolution differs (-seq +par):\n%s", workers, diff)
		}
	}
}

func TestResolveTreeParallelCancelled(t *testing.T) {
	defer goleak.VerifyNone(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	root := buildTree(2, 2)
	err := ResolveTreeParallel(ctx, root, cascade.NewResolver(), 2)
	assert.ErrorIs(t, err, context.Canceled)
	if _, ok := root.Computed(); ok {
		t.Error("expected cancelled resolution not to resolve the root")
	}
}

func TestPrint(t *testing.T) {
	root := New("root")
	root.Style().Flex().Gap(styled.S2)
	b := button("ok")
	b.SetState(Hover)
	root.AddChild(b, New("spacer"))
	out := Print(root)
	t.Logf("\n%s", out)
	for _, s := range []string{"root", "ok [hover]", "spacer", "display: flex", "column-gap: 0.5rem", "box-shadow:"} {
		if !strings.Contains(out, s) {
			t.Errorf("expected output to contain %q", s)
		}
	}
	assert.Equal(t, "<empty>", Print(nil))
}
