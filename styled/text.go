package styled

import (
	"github.com/npillmayer/refine/maybe"
	"github.com/npillmayer/refine/style"
	"github.com/npillmayer/refine/unit"
)

// text returns the text refinement nested in the style.
func (b Builder) text() *style.TextStyleRefinement {
	return &b.style.Text
}

func (b Builder) TextColor(c unit.Hsla) Builder {
	b.text().Color = maybe.Just(c)
	return b
}

func (b Builder) TextBg(c unit.Hsla) Builder {
	b.text().BackgroundColor = maybe.Just(c)
	return b
}

// TextSize sets the font size. Only pixel and rem sizes are accepted.
func (b Builder) TextSize(size unit.Length) Builder {
	if !size.IsAbsolute() {
		tracer().Errorf("font size must be given in px or rem, is %v; ignored", size)
		return b
	}
	b.text().FontSize = maybe.Just(size)
	return b
}

func (b Builder) TextXs() Builder   { return b.TextSize(unit.Rems(0.75)) }
func (b Builder) TextSm() Builder   { return b.TextSize(unit.Rems(0.875)) }
func (b Builder) TextBase() Builder { return b.TextSize(unit.Rems(1)) }
func (b Builder) TextLg() Builder   { return b.TextSize(unit.Rems(1.125)) }
func (b Builder) TextXl() Builder   { return b.TextSize(unit.Rems(1.25)) }
func (b Builder) Text2xl() Builder  { return b.TextSize(unit.Rems(1.5)) }
func (b Builder) Text3xl() Builder  { return b.TextSize(unit.Rems(1.875)) }

// Font sets the font family.
func (b Builder) Font(family string) Builder {
	b.text().FontFamily = maybe.Just(family)
	return b
}

// LineHeight sets the line height. Relative values are multiples of the
// font size.
func (b Builder) LineHeight(l unit.Length) Builder {
	if !l.IsDefinite() {
		tracer().Errorf("line height must be definite, is %v; ignored", l)
		return b
	}
	b.text().LineHeight = maybe.Just(l)
	return b
}

func (b Builder) FontWeight(w style.FontWeight) Builder {
	b.text().FontWeight = maybe.Just(w)
	return b
}

func (b Builder) Italic() Builder {
	b.text().FontStyle = maybe.Just(style.FontItalic)
	return b
}

func (b Builder) NotItalic() Builder {
	b.text().FontStyle = maybe.Just(style.FontNormal)
	return b
}

func (b Builder) WhitespaceNormal() Builder {
	b.text().WhiteSpace = maybe.Just(style.WhiteSpaceNormal)
	return b
}

func (b Builder) WhitespaceNowrap() Builder {
	b.text().WhiteSpace = maybe.Just(style.WhiteSpaceNowrap)
	return b
}

// --- Decoration ------------------------------------------------------------

// TextDecorationNone removes the underline, overriding any underline of
// lower layers.
func (b Builder) TextDecorationNone() Builder {
	b.text().ClearDecoration()
	return b
}

// TextDecorationColor sets the underline color, underlining the text if it
// is not underlined yet.
func (b Builder) TextDecorationColor(c unit.Hsla) Builder {
	b.text().UnderlineMut().Color = maybe.Just(c)
	return b
}

func (b Builder) TextDecorationSolid() Builder {
	b.text().UnderlineMut().Wavy = false
	return b
}

func (b Builder) TextDecorationWavy() Builder {
	b.text().UnderlineMut().Wavy = true
	return b
}

func (b Builder) TextDecoration0() Builder { return b.underlineThickness(0) }
func (b Builder) TextDecoration1() Builder { return b.underlineThickness(1) }
func (b Builder) TextDecoration2() Builder { return b.underlineThickness(2) }
func (b Builder) TextDecoration4() Builder { return b.underlineThickness(4) }
func (b Builder) TextDecoration8() Builder { return b.underlineThickness(8) }

func (b Builder) underlineThickness(px unit.Pixels) Builder {
	b.text().UnderlineMut().Thickness = px
	return b
}
