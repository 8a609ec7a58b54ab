package style

import (
	"fmt"

	"github.com/npillmayer/refine/maybe"
	"github.com/npillmayer/refine/unit"
)

// UnderlineStyle describes an underline decoration. An unset color means
// "use the text color".
type UnderlineStyle struct {
	Color     maybe.Maybe[unit.Hsla]
	Wavy      bool
	Thickness unit.Pixels
}

// TextDecoration is either an underline or no decoration at all.
// The zero value is no decoration.
type TextDecoration struct {
	underline  UnderlineStyle
	underlined bool
}

// NoDecoration returns a decoration which paints nothing. Setting it clears
// any decoration of lower layers.
func NoDecoration() TextDecoration {
	return TextDecoration{}
}

// Underlined returns an underline decoration.
func Underlined(u UnderlineStyle) TextDecoration {
	return TextDecoration{underline: u, underlined: true}
}

// Underline returns the underline, if there is one.
func (d TextDecoration) Underline() (UnderlineStyle, bool) {
	return d.underline, d.underlined
}

func (d TextDecoration) String() string {
	if !d.underlined {
		return "none"
	}
	u := d.underline
	s := "solid"
	if u.Wavy {
		s = "wavy"
	}
	if c, ok := u.Color.Get(); ok {
		return fmt.Sprintf("underline %s %s %s", s, u.Thickness, c)
	}
	return fmt.Sprintf("underline %s %s", s, u.Thickness)
}

// TextStyleRefinement is a partial text style.
type TextStyleRefinement struct {
	Color           maybe.Maybe[unit.Hsla]
	BackgroundColor maybe.Maybe[unit.Hsla]
	FontFamily      maybe.Maybe[string]
	FontSize        maybe.Maybe[unit.Length] // pixels or rems
	FontWeight      maybe.Maybe[FontWeight]
	FontStyle       maybe.Maybe[FontStyle]
	LineHeight      maybe.Maybe[unit.Length]
	WhiteSpace      maybe.Maybe[WhiteSpace]
	Decoration      maybe.Maybe[TextDecoration]
}

// UnderlineMut returns the underline of this layer for mutation.
// If the layer has no underline yet, or has cleared the decoration, a
// default underline (no color, solid, zero thickness) is put in place first.
func (t *TextStyleRefinement) UnderlineMut() *UnderlineStyle {
	d := t.Decoration.GetOrInsertWith(NoDecoration)
	if !d.underlined {
		*d = Underlined(UnderlineStyle{})
	}
	return &d.underline
}

// ClearDecoration explicitly removes any decoration.
func (t *TextStyleRefinement) ClearDecoration() {
	t.Decoration = maybe.Just(NoDecoration())
}

// Refine overwrites every field which is set in higher. The decoration is
// replaced as a whole.
func (t *TextStyleRefinement) Refine(higher *TextStyleRefinement) {
	if higher == nil {
		return
	}
	t.Color = higher.Color.Or(t.Color)
	t.BackgroundColor = higher.BackgroundColor.Or(t.BackgroundColor)
	t.FontFamily = higher.FontFamily.Or(t.FontFamily)
	t.FontSize = higher.FontSize.Or(t.FontSize)
	t.FontWeight = higher.FontWeight.Or(t.FontWeight)
	t.FontStyle = higher.FontStyle.Or(t.FontStyle)
	t.LineHeight = higher.LineHeight.Or(t.LineHeight)
	t.WhiteSpace = higher.WhiteSpace.Or(t.WhiteSpace)
	t.Decoration = higher.Decoration.Or(t.Decoration)
}

// ApplyTo returns base with every set field replaced.
func (t *TextStyleRefinement) ApplyTo(base TextStyle) TextStyle {
	return TextStyle{
		Color:           t.Color.WithDefault(base.Color),
		BackgroundColor: t.BackgroundColor.WithDefault(base.BackgroundColor),
		FontFamily:      t.FontFamily.WithDefault(base.FontFamily),
		FontSize:        t.FontSize.WithDefault(base.FontSize),
		FontWeight:      t.FontWeight.WithDefault(base.FontWeight),
		FontStyle:       t.FontStyle.WithDefault(base.FontStyle),
		LineHeight:      t.LineHeight.WithDefault(base.LineHeight),
		WhiteSpace:      t.WhiteSpace.WithDefault(base.WhiteSpace),
		Decoration:      t.Decoration.WithDefault(base.Decoration),
	}
}

// IsEmpty is true if no field is set.
func (t *TextStyleRefinement) IsEmpty() bool {
	return t.Color.IsNothing() && t.BackgroundColor.IsNothing() &&
		t.FontFamily.IsNothing() && t.FontSize.IsNothing() &&
		t.FontWeight.IsNothing() && t.FontStyle.IsNothing() &&
		t.LineHeight.IsNothing() && t.WhiteSpace.IsNothing() &&
		t.Decoration.IsNothing()
}

// --- Resolved text style ---------------------------------------------------

// TextStyle is a resolved text style.
type TextStyle struct {
	Color           unit.Hsla
	BackgroundColor unit.Hsla
	FontFamily      string
	FontSize        unit.Length
	FontWeight      FontWeight
	FontStyle       FontStyle
	LineHeight      unit.Length
	WhiteSpace      WhiteSpace
	Decoration      TextDecoration
}

// Underline is an underline ready for painting.
type Underline struct {
	Color     unit.Hsla
	Wavy      bool
	Thickness unit.Pixels
}

// Underline tells wether an underline is painted and how. An underline
// without a color of its own takes the text color.
func (ts TextStyle) Underline() (Underline, bool) {
	u, ok := ts.Decoration.Underline()
	if !ok {
		return Underline{}, false
	}
	return Underline{
		Color:     u.Color.WithDefault(ts.Color),
		Wavy:      u.Wavy,
		Thickness: u.Thickness,
	}, true
}

// FontSizePixels resolves the font size against the root font size.
// Relative font sizes are taken relative to the root font size as well.
func (ts TextStyle) FontSizePixels(remSize unit.Pixels) unit.Pixels {
	px, ok := ts.FontSize.ToPixels(remSize, remSize)
	if !ok {
		return remSize
	}
	return px
}

// LineHeightPixels resolves the line height. Relative line heights are
// multiples of the font size.
func (ts TextStyle) LineHeightPixels(remSize unit.Pixels) unit.Pixels {
	fontSize := ts.FontSizePixels(remSize)
	px, ok := ts.LineHeight.ToPixels(remSize, fontSize)
	if !ok {
		return fontSize
	}
	return px
}
