package styled

import (
	"github.com/npillmayer/refine/maybe"
	"github.com/npillmayer/refine/unit"
)

// Spacing is a step on the spacing scale, used for sizes, margins, padding,
// insets and gaps. Numbered steps are multiples of 0.25rem, e.g. S4 is 1rem
// and S0p5 is 0.125rem.
type Spacing uint8

// Steps of the spacing scale.
const (
	S0 Spacing = iota
	S0p5
	S1
	S1p5
	S2
	S2p5
	S3
	S3p5
	S4
	S5
	S6
	S7
	S8
	S9
	S10
	S11
	S12
	S14
	S16
	S20
	S24
	S28
	S32
	S36
	S40
	S44
	S48
	S52
	S56
	S60
	S64
	S72
	S80
	S96
	SPx
	SFull
	SAuto
	SHalf
	SThird
	STwoThirds
	SQuarter
	SThreeQuarters
)

var spacingScale = [...]struct {
	key    string
	length unit.Length
}{
	S0:             {"0", unit.Px(0)},
	S0p5:           {"0.5", unit.Rems(0.125)},
	S1:             {"1", unit.Rems(0.25)},
	S1p5:           {"1.5", unit.Rems(0.375)},
	S2:             {"2", unit.Rems(0.5)},
	S2p5:           {"2.5", unit.Rems(0.625)},
	S3:             {"3", unit.Rems(0.75)},
	S3p5:           {"3.5", unit.Rems(0.875)},
	S4:             {"4", unit.Rems(1)},
	S5:             {"5", unit.Rems(1.25)},
	S6:             {"6", unit.Rems(1.5)},
	S7:             {"7", unit.Rems(1.75)},
	S8:             {"8", unit.Rems(2)},
	S9:             {"9", unit.Rems(2.25)},
	S10:            {"10", unit.Rems(2.5)},
	S11:            {"11", unit.Rems(2.75)},
	S12:            {"12", unit.Rems(3)},
	S14:            {"14", unit.Rems(3.5)},
	S16:            {"16", unit.Rems(4)},
	S20:            {"20", unit.Rems(5)},
	S24:            {"24", unit.Rems(6)},
	S28:            {"28", unit.Rems(7)},
	S32:            {"32", unit.Rems(8)},
	S36:            {"36", unit.Rems(9)},
	S40:            {"40", unit.Rems(10)},
	S44:            {"44", unit.Rems(11)},
	S48:            {"48", unit.Rems(12)},
	S52:            {"52", unit.Rems(13)},
	S56:            {"56", unit.Rems(14)},
	S60:            {"60", unit.Rems(15)},
	S64:            {"64", unit.Rems(16)},
	S72:            {"72", unit.Rems(18)},
	S80:            {"80", unit.Rems(20)},
	S96:            {"96", unit.Rems(24)},
	SPx:            {"px", unit.Px(1)},
	SFull:          {"full", unit.Relative(1)},
	SAuto:          {"auto", unit.Auto()},
	SHalf:          {"1/2", unit.Relative(1.0 / 2)},
	SThird:         {"1/3", unit.Relative(1.0 / 3)},
	STwoThirds:     {"2/3", unit.Relative(2.0 / 3)},
	SQuarter:       {"1/4", unit.Relative(1.0 / 4)},
	SThreeQuarters: {"3/4", unit.Relative(3.0 / 4)},
}

// Length returns the length of step s.
func (s Spacing) Length() (unit.Length, bool) {
	if int(s) >= len(spacingScale) {
		return unit.Length{}, false
	}
	return spacingScale[s].length, true
}

func (s Spacing) String() string {
	if int(s) >= len(spacingScale) {
		return "<invalid spacing>"
	}
	return spacingScale[s].key
}

// ParseSpacing finds the step for a key of the scale, e.g. "2.5", "px" or "1/3".
func ParseSpacing(key string) (Spacing, bool) {
	for i, step := range spacingScale {
		if step.key == key {
			return Spacing(i), true
		}
	}
	return 0, false
}

// spacing sets all fields to the length of step s. If definite is true,
// auto is rejected.
func (b Builder) spacing(what string, s Spacing, definite bool, fields ...*maybe.Maybe[unit.Length]) Builder {
	l, ok := s.Length()
	if !ok {
		tracer().Errorf("%s: spacing %d is not on the scale, ignored", what, s)
		return b
	}
	if definite && !l.IsDefinite() {
		tracer().Errorf("%s cannot be %v, ignored", what, s)
		return b
	}
	for _, f := range fields {
		*f = maybe.Just(l)
	}
	return b
}

// --- Sizes -----------------------------------------------------------------

func (b Builder) W(s Spacing) Builder {
	return b.spacing("width", s, false, &b.style.Size.Width)
}

func (b Builder) H(s Spacing) Builder {
	return b.spacing("height", s, false, &b.style.Size.Height)
}

// Size sets width and height.
func (b Builder) Size(s Spacing) Builder {
	return b.spacing("size", s, false, &b.style.Size.Width, &b.style.Size.Height)
}

func (b Builder) MinW(s Spacing) Builder {
	return b.spacing("min-width", s, false, &b.style.MinSize.Width)
}

func (b Builder) MinH(s Spacing) Builder {
	return b.spacing("min-height", s, false, &b.style.MinSize.Height)
}

func (b Builder) MaxW(s Spacing) Builder {
	return b.spacing("max-width", s, false, &b.style.MaxSize.Width)
}

func (b Builder) MaxH(s Spacing) Builder {
	return b.spacing("max-height", s, false, &b.style.MaxSize.Height)
}

// Width sets the width to an arbitrary length.
func (b Builder) Width(l unit.Length) Builder {
	b.style.Size.Width = maybe.Just(l)
	return b
}

// Height sets the height to an arbitrary length.
func (b Builder) Height(l unit.Length) Builder {
	b.style.Size.Height = maybe.Just(l)
	return b
}

// --- Margins ---------------------------------------------------------------

func (b Builder) M(s Spacing) Builder {
	m := &b.style.Margin
	return b.spacing("margin", s, false, &m.Top, &m.Right, &m.Bottom, &m.Left)
}

func (b Builder) Mx(s Spacing) Builder {
	m := &b.style.Margin
	return b.spacing("margin", s, false, &m.Left, &m.Right)
}

func (b Builder) My(s Spacing) Builder {
	m := &b.style.Margin
	return b.spacing("margin", s, false, &m.Top, &m.Bottom)
}

func (b Builder) Mt(s Spacing) Builder { return b.spacing("margin", s, false, &b.style.Margin.Top) }
func (b Builder) Mr(s Spacing) Builder { return b.spacing("margin", s, false, &b.style.Margin.Right) }
func (b Builder) Mb(s Spacing) Builder { return b.spacing("margin", s, false, &b.style.Margin.Bottom) }
func (b Builder) Ml(s Spacing) Builder { return b.spacing("margin", s, false, &b.style.Margin.Left) }

// --- Padding ---------------------------------------------------------------

// Padding has to be definite; SAuto is ignored.
func (b Builder) P(s Spacing) Builder {
	p := &b.style.Padding
	return b.spacing("padding", s, true, &p.Top, &p.Right, &p.Bottom, &p.Left)
}

func (b Builder) Px(s Spacing) Builder {
	p := &b.style.Padding
	return b.spacing("padding", s, true, &p.Left, &p.Right)
}

func (b Builder) Py(s Spacing) Builder {
	p := &b.style.Padding
	return b.spacing("padding", s, true, &p.Top, &p.Bottom)
}

func (b Builder) Pt(s Spacing) Builder { return b.spacing("padding", s, true, &b.style.Padding.Top) }
func (b Builder) Pr(s Spacing) Builder { return b.spacing("padding", s, true, &b.style.Padding.Right) }
func (b Builder) Pb(s Spacing) Builder { return b.spacing("padding", s, true, &b.style.Padding.Bottom) }
func (b Builder) Pl(s Spacing) Builder { return b.spacing("padding", s, true, &b.style.Padding.Left) }

// --- Insets ----------------------------------------------------------------

// Inset sets the offsets of a positioned element on all sides.
func (b Builder) Inset(s Spacing) Builder {
	i := &b.style.Inset
	return b.spacing("inset", s, false, &i.Top, &i.Right, &i.Bottom, &i.Left)
}

func (b Builder) Top(s Spacing) Builder    { return b.spacing("top", s, false, &b.style.Inset.Top) }
func (b Builder) Right(s Spacing) Builder  { return b.spacing("right", s, false, &b.style.Inset.Right) }
func (b Builder) Bottom(s Spacing) Builder { return b.spacing("bottom", s, false, &b.style.Inset.Bottom) }
func (b Builder) Left(s Spacing) Builder   { return b.spacing("left", s, false, &b.style.Inset.Left) }

// --- Gaps ------------------------------------------------------------------

// Gap sets the gaps between rows and columns of flex items.
func (b Builder) Gap(s Spacing) Builder {
	return b.spacing("gap", s, true, &b.style.Gap.Width, &b.style.Gap.Height)
}

// GapX sets the gap between columns.
func (b Builder) GapX(s Spacing) Builder {
	return b.spacing("gap", s, true, &b.style.Gap.Width)
}

// GapY sets the gap between rows.
func (b Builder) GapY(s Spacing) Builder {
	return b.spacing("gap", s, true, &b.style.Gap.Height)
}
