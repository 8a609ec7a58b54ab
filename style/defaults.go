package style

import "github.com/npillmayer/refine/unit"

// Style is a resolved style: every property has a concrete value.
type Style struct {
	Display    Display
	Visibility Visibility
	Position   Position
	ZIndex     uint32
	Overflow   unit.Point[Overflow]
	Inset      unit.Edges[unit.Length]

	Size    unit.Size[unit.Length]
	MinSize unit.Size[unit.Length]
	MaxSize unit.Size[unit.Length]

	Margin       unit.Edges[unit.Length]
	Padding      unit.Edges[unit.Length]
	BorderWidths unit.Edges[unit.Length]

	Gap            unit.Size[unit.Length]
	FlexDirection  FlexDirection
	FlexWrap       FlexWrap
	FlexGrow       float32
	FlexShrink     float32
	FlexBasis      unit.Length
	AlignItems     AlignItems
	AlignSelf      AlignSelf
	AlignContent   JustifyContent
	JustifyContent JustifyContent

	Background  Fill
	BorderColor unit.Hsla
	CornerRadii unit.Corners[unit.Length]
	BoxShadow   []BoxShadow
	MouseCursor CursorStyle

	Text TextStyle
}

// IsVisible is false for boxes which are not displayed or are hidden.
func (s *Style) IsVisible() bool {
	return s.Display != DisplayNone && s.Visibility == Visible
}

// HasBorder is true if any border side has a non-zero width.
func (s *Style) HasBorder() bool {
	zero := unit.Px(0)
	b := s.BorderWidths
	return b.Top != zero || b.Right != zero || b.Bottom != zero || b.Left != zero
}

// DefaultStyle returns the baseline every element description starts from.
// Its text style is DefaultTextStyle.
func DefaultStyle() Style {
	zero := unit.Px(0)
	auto := unit.Auto()
	return Style{
		Display:        DisplayBlock,
		Visibility:     Visible,
		Position:       PositionStatic,
		Overflow:       unit.Point[Overflow]{X: OverflowVisible, Y: OverflowVisible},
		Inset:          unit.AllEdges(auto),
		Size:           unit.Size[unit.Length]{Width: auto, Height: auto},
		MinSize:        unit.Size[unit.Length]{Width: auto, Height: auto},
		MaxSize:        unit.Size[unit.Length]{Width: auto, Height: auto},
		Margin:         unit.AllEdges(zero),
		Padding:        unit.AllEdges(zero),
		BorderWidths:   unit.AllEdges(zero),
		Gap:            unit.Size[unit.Length]{Width: zero, Height: zero},
		FlexDirection:  FlexRow,
		FlexWrap:       NoWrap,
		FlexBasis:      auto,
		AlignItems:     AlignStretch,
		AlignSelf:      SelfAuto,
		AlignContent:   JustifyStretch,
		JustifyContent: JustifyFlexStart,
		Background:     ColorFill(unit.Transparent),
		BorderColor:    unit.Transparent,
		CornerRadii:    unit.AllCorners(zero),
		BoxShadow:      []BoxShadow{},
		MouseCursor:    CursorArrow,
		Text:           DefaultTextStyle(),
	}
}

// DefaultTextStyle is the text style of the root of an element tree.
func DefaultTextStyle() TextStyle {
	return TextStyle{
		Color:           unit.Black,
		BackgroundColor: unit.Transparent,
		FontFamily:      "Helvetica",
		FontSize:        unit.Rems(1),
		FontWeight:      WeightNormal,
		FontStyle:       FontNormal,
		LineHeight:      unit.Relative(1.25),
		WhiteSpace:      WhiteSpaceNormal,
		Decoration:      NoDecoration(),
	}
}
