package styled

import (
	"github.com/npillmayer/refine/maybe"
	"github.com/npillmayer/refine/style"
	"github.com/npillmayer/refine/unit"
)

// Bg sets a solid background color.
func (b Builder) Bg(c unit.Hsla) Builder {
	return b.Fill(style.ColorFill(c))
}

// Fill sets the background fill.
func (b Builder) Fill(f style.Fill) Builder {
	b.style.Background = maybe.Just(f)
	return b
}

// BorderColor sets the color of all borders.
func (b Builder) BorderColor(c unit.Hsla) Builder {
	b.style.BorderColor = maybe.Just(c)
	return b
}

// --- Shadows ---------------------------------------------------------------

// Shadow replaces the list of box shadows. Shadows of lower layers are
// dropped, even if shadows is empty.
func (b Builder) Shadow(shadows ...style.BoxShadow) Builder {
	b.style.BoxShadow = maybe.Just(append(make([]style.BoxShadow, 0, len(shadows)), shadows...))
	return b
}

// ShadowNone removes all box shadows.
func (b Builder) ShadowNone() Builder { return b.Shadow() }

func (b Builder) ShadowSm() Builder  { return b.Shadow(shadowSm...) }
func (b Builder) ShadowMd() Builder  { return b.Shadow(shadowMd...) }
func (b Builder) ShadowLg() Builder  { return b.Shadow(shadowLg...) }
func (b Builder) ShadowXl() Builder  { return b.Shadow(shadowXl...) }
func (b Builder) Shadow2xl() Builder { return b.Shadow(shadow2xl...) }

func shadow(alpha float32, y, blur, spread unit.Pixels) style.BoxShadow {
	return style.BoxShadow{
		Color:        unit.HSLA(0, 0, 0, alpha),
		Offset:       unit.Pt(0, y),
		BlurRadius:   blur,
		SpreadRadius: spread,
	}
}

var (
	shadowSm = []style.BoxShadow{shadow(0.05, 1, 2, 0)}
	shadowMd = []style.BoxShadow{
		{Color: unit.HSLA(0.5, 0, 0, 0.1), Offset: unit.Pt(0, 4), BlurRadius: 6, SpreadRadius: -1},
		shadow(0.1, 2, 4, -2),
	}
	shadowLg  = []style.BoxShadow{shadow(0.1, 10, 15, -3), shadow(0.1, 4, 6, -4)}
	shadowXl  = []style.BoxShadow{shadow(0.1, 20, 25, -5), shadow(0.1, 8, 10, -6)}
	shadow2xl = []style.BoxShadow{shadow(0.25, 25, 50, -12)}
)

// --- Corner radii ----------------------------------------------------------

// Radius is a step on the scale of corner radii.
type Radius uint8

// Corner radii.
const (
	RadiusNone Radius = iota // 0
	RadiusSm                 // 0.125rem
	RadiusMd                 // 0.25rem
	RadiusLg                 // 0.5rem
	RadiusXl                 // 0.75rem
	Radius2xl                // 1rem
	Radius3xl                // 1.5rem
	RadiusFull               // large enough to make a pill
)

var radiusScale = [...]unit.Length{
	RadiusNone: unit.Px(0),
	RadiusSm:   unit.Rems(0.125),
	RadiusMd:   unit.Rems(0.25),
	RadiusLg:   unit.Rems(0.5),
	RadiusXl:   unit.Rems(0.75),
	Radius2xl:  unit.Rems(1),
	Radius3xl:  unit.Rems(1.5),
	RadiusFull: unit.Px(9999),
}

// Length returns the corner radius for r.
func (r Radius) Length() (unit.Length, bool) {
	if int(r) >= len(radiusScale) {
		return unit.Length{}, false
	}
	return radiusScale[r], true
}

const (
	tl = 1 << iota
	tr
	br
	bl
)

func (b Builder) Rounded(r Radius) Builder   { return b.rounded(r, tl|tr|br|bl) }
func (b Builder) RoundedT(r Radius) Builder  { return b.rounded(r, tl|tr) }
func (b Builder) RoundedB(r Radius) Builder  { return b.rounded(r, bl|br) }
func (b Builder) RoundedL(r Radius) Builder  { return b.rounded(r, tl|bl) }
func (b Builder) RoundedR(r Radius) Builder  { return b.rounded(r, tr|br) }
func (b Builder) RoundedTL(r Radius) Builder { return b.rounded(r, tl) }
func (b Builder) RoundedTR(r Radius) Builder { return b.rounded(r, tr) }
func (b Builder) RoundedBR(r Radius) Builder { return b.rounded(r, br) }
func (b Builder) RoundedBL(r Radius) Builder { return b.rounded(r, bl) }

func (b Builder) rounded(r Radius, corners int) Builder {
	l, ok := r.Length()
	if !ok {
		tracer().Errorf("radius %d is not on the scale, ignored", r)
		return b
	}
	c := &b.style.CornerRadii
	for _, corner := range []struct {
		flag int
		f    *maybe.Maybe[unit.Length]
	}{{tl, &c.TopLeft}, {tr, &c.TopRight}, {br, &c.BottomRight}, {bl, &c.BottomLeft}} {
		if corners&corner.flag != 0 {
			*corner.f = maybe.Just(l)
		}
	}
	return b
}

// --- Border widths ---------------------------------------------------------

// BorderWidth is a step on the scale of border widths.
type BorderWidth uint8

// Border widths, in pixels.
const (
	Border0 BorderWidth = 0
	Border1 BorderWidth = 1
	Border2 BorderWidth = 2
	Border4 BorderWidth = 4
	Border8 BorderWidth = 8
)

// Length returns the width in pixels.
func (w BorderWidth) Length() unit.Length {
	return unit.Px(float32(w))
}

func (b Builder) Border(w BorderWidth) Builder {
	b.style.BorderWidths.SetAll(w.Length())
	return b
}

func (b Builder) BorderT(w BorderWidth) Builder {
	b.style.BorderWidths.Top = maybe.Just(w.Length())
	return b
}

func (b Builder) BorderR(w BorderWidth) Builder {
	b.style.BorderWidths.Right = maybe.Just(w.Length())
	return b
}

func (b Builder) BorderB(w BorderWidth) Builder {
	b.style.BorderWidths.Bottom = maybe.Just(w.Length())
	return b
}

func (b Builder) BorderL(w BorderWidth) Builder {
	b.style.BorderWidths.Left = maybe.Just(w.Length())
	return b
}
