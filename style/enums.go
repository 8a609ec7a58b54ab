package style

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKeyword is returned when parsing an unknown style keyword.
var ErrUnknownKeyword = errors.New("unknown style keyword")

// Display is a type for the display mode of a box.
type Display uint8

// Display modes. Hidden boxes (see Visibility) still occupy space, while
// boxes with DisplayNone do not.
const (
	DisplayBlock Display = iota // default
	DisplayFlex
	DisplayNone
)

var displayNames = map[Display]string{
	DisplayBlock: "block",
	DisplayFlex:  "flex",
	DisplayNone:  "none",
}

func (d Display) String() string {
	return enumString(displayNames, d)
}

// ParseDisplay returns the display mode for a keyword.
func ParseDisplay(display string) (Display, error) {
	return parseEnum(displayNames, display, DisplayBlock)
}

// Position is a type for the positioning scheme of a box.
type Position uint8

// Positioning schemes.
const (
	PositionStatic   Position = iota // default
	PositionRelative                 // offset from normal flow
	PositionAbsolute                 // positioned relative to enclosing box
)

var positionNames = map[Position]string{
	PositionStatic:   "static",
	PositionRelative: "relative",
	PositionAbsolute: "absolute",
}

func (p Position) String() string {
	return enumString(positionNames, p)
}

// ParsePosition returns the position scheme for a keyword.
func ParsePosition(position string) (Position, error) {
	return parseEnum(positionNames, position, PositionStatic)
}

// Visibility is a type for the visibility of a box.
type Visibility uint8

// Visibility values.
const (
	Visible Visibility = iota
	Hidden
)

var visibilityNames = map[Visibility]string{
	Visible: "visible",
	Hidden:  "hidden",
}

func (v Visibility) String() string {
	return enumString(visibilityNames, v)
}

// Overflow is a type for the overflow behaviour on one axis.
type Overflow uint8

// Overflow values.
const (
	OverflowVisible Overflow = iota
	OverflowHidden
	OverflowScroll
)

var overflowNames = map[Overflow]string{
	OverflowVisible: "visible",
	OverflowHidden:  "hidden",
	OverflowScroll:  "scroll",
}

func (o Overflow) String() string {
	return enumString(overflowNames, o)
}

// FlexDirection is the main axis of a flex container.
type FlexDirection uint8

// Flex directions.
const (
	FlexRow FlexDirection = iota
	FlexColumn
	FlexRowReverse
	FlexColumnReverse
)

var flexDirectionNames = map[FlexDirection]string{
	FlexRow:           "row",
	FlexColumn:        "column",
	FlexRowReverse:    "row-reverse",
	FlexColumnReverse: "column-reverse",
}

func (f FlexDirection) String() string {
	return enumString(flexDirectionNames, f)
}

// FlexWrap controls wrapping of flex items.
type FlexWrap uint8

// Flex wrap modes.
const (
	NoWrap FlexWrap = iota
	Wrap
	WrapReverse
)

var flexWrapNames = map[FlexWrap]string{
	NoWrap:      "nowrap",
	Wrap:        "wrap",
	WrapReverse: "wrap-reverse",
}

func (f FlexWrap) String() string {
	return enumString(flexWrapNames, f)
}

// AlignItems aligns flex items on the cross axis.
type AlignItems uint8

// Cross axis alignments.
const (
	AlignStretch AlignItems = iota
	AlignStart
	AlignEnd
	AlignFlexStart
	AlignFlexEnd
	AlignCenter
	AlignBaseline
)

var alignItemsNames = map[AlignItems]string{
	AlignStretch:   "stretch",
	AlignStart:     "start",
	AlignEnd:       "end",
	AlignFlexStart: "flex-start",
	AlignFlexEnd:   "flex-end",
	AlignCenter:    "center",
	AlignBaseline:  "baseline",
}

func (a AlignItems) String() string {
	return enumString(alignItemsNames, a)
}

// AlignSelf overrides the container's AlignItems for a single item.
type AlignSelf uint8

// Item alignments. SelfAuto follows the container.
const (
	SelfAuto AlignSelf = iota
	SelfStretch
	SelfStart
	SelfEnd
	SelfCenter
	SelfBaseline
)

var alignSelfNames = map[AlignSelf]string{
	SelfAuto:     "auto",
	SelfStretch:  "stretch",
	SelfStart:    "start",
	SelfEnd:      "end",
	SelfCenter:   "center",
	SelfBaseline: "baseline",
}

func (a AlignSelf) String() string {
	return enumString(alignSelfNames, a)
}

// JustifyContent distributes space on the main axis. The same values are
// used for AlignContent, distributing lines on the cross axis.
type JustifyContent uint8

// Content distributions.
const (
	JustifyStart JustifyContent = iota
	JustifyEnd
	JustifyFlexStart
	JustifyFlexEnd
	JustifyCenter
	JustifyStretch
	JustifySpaceBetween
	JustifySpaceEvenly
	JustifySpaceAround
)

var justifyNames = map[JustifyContent]string{
	JustifyStart:        "start",
	JustifyEnd:          "end",
	JustifyFlexStart:    "flex-start",
	JustifyFlexEnd:      "flex-end",
	JustifyCenter:       "center",
	JustifyStretch:      "stretch",
	JustifySpaceBetween: "space-between",
	JustifySpaceEvenly:  "space-evenly",
	JustifySpaceAround:  "space-around",
}

func (j JustifyContent) String() string {
	return enumString(justifyNames, j)
}

// WhiteSpace controls line wrapping of text.
type WhiteSpace uint8

// White-space modes.
const (
	WhiteSpaceNormal WhiteSpace = iota
	WhiteSpaceNowrap
)

var whiteSpaceNames = map[WhiteSpace]string{
	WhiteSpaceNormal: "normal",
	WhiteSpaceNowrap: "nowrap",
}

func (w WhiteSpace) String() string {
	return enumString(whiteSpaceNames, w)
}

// FontWeight is a numeric font weight, 100–900.
type FontWeight uint16

// Common font weights.
const (
	WeightThin     FontWeight = 100
	WeightLight    FontWeight = 300
	WeightNormal   FontWeight = 400
	WeightMedium   FontWeight = 500
	WeightSemibold FontWeight = 600
	WeightBold     FontWeight = 700
	WeightBlack    FontWeight = 900
)

func (w FontWeight) String() string {
	return fmt.Sprintf("%d", uint16(w))
}

// FontStyle selects upright or slanted glyphs.
type FontStyle uint8

// Font styles.
const (
	FontNormal FontStyle = iota
	FontItalic
	FontOblique
)

var fontStyleNames = map[FontStyle]string{
	FontNormal:  "normal",
	FontItalic:  "italic",
	FontOblique: "oblique",
}

func (f FontStyle) String() string {
	return enumString(fontStyleNames, f)
}

// ---------------------------------------------------------------------------

func enumString[E ~uint8](names map[E]string, e E) string {
	if s, ok := names[e]; ok {
		return s
	}
	return fmt.Sprintf("<invalid %d>", e)
}

func parseEnum[E ~uint8](names map[E]string, keyword string, def E) (E, error) {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	for e, s := range names {
		if s == keyword {
			return e, nil
		}
	}
	return def, fmt.Errorf("%w: %q", ErrUnknownKeyword, keyword)
}
