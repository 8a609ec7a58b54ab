package style

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/refine/maybe"
	"github.com/npillmayer/refine/unit"
)

// Set sets a single property from its textual form, using the keys listed by
// Properties. It is meant for tests and for debugging tools; element
// descriptions use the builder in package styled.
//
//    r.Set("margin-top", "4px")
//    r.Set("color", "#ff0000")
//
func (r *StyleRefinement) Set(key string, value string) error {
	value = strings.TrimSpace(value)
	var err error
	switch key {
	case "display":
		err = into(&r.Display)(ParseDisplay(value))
	case "visibility":
		err = into(&r.Visibility)(parseEnum(visibilityNames, value, Visible))
	case "position":
		err = into(&r.Position)(ParsePosition(value))
	case "overflow":
		var o Overflow
		if o, err = parseEnum(overflowNames, value, OverflowVisible); err == nil {
			r.Overflow.X, r.Overflow.Y = maybe.Just(o), maybe.Just(o)
		}
	case "overflow-x":
		err = into(&r.Overflow.X)(parseEnum(overflowNames, value, OverflowVisible))
	case "overflow-y":
		err = into(&r.Overflow.Y)(parseEnum(overflowNames, value, OverflowVisible))
	case "z-index":
		var z uint64
		if z, err = strconv.ParseUint(value, 10, 32); err == nil {
			r.ZIndex = maybe.Just(uint32(z))
		}
	case "cursor":
		err = into(&r.MouseCursor)(ParseCursor(value))
	case "flex-direction":
		err = into(&r.FlexDirection)(parseEnum(flexDirectionNames, value, FlexRow))
	case "flex-wrap":
		err = into(&r.FlexWrap)(parseEnum(flexWrapNames, value, NoWrap))
	case "flex-grow":
		err = into(&r.FlexGrow)(parseFloat(value))
	case "flex-shrink":
		err = into(&r.FlexShrink)(parseFloat(value))
	case "align-items":
		err = into(&r.AlignItems)(parseEnum(alignItemsNames, value, AlignStretch))
	case "align-self":
		err = into(&r.AlignSelf)(parseEnum(alignSelfNames, value, SelfAuto))
	case "align-content":
		err = into(&r.AlignContent)(parseEnum(justifyNames, value, JustifyStretch))
	case "justify-content":
		err = into(&r.JustifyContent)(parseEnum(justifyNames, value, JustifyFlexStart))
	case "background-color":
		var c unit.Hsla
		if c, err = unit.ParseHex(value); err == nil {
			r.Background = maybe.Just(ColorFill(c))
		}
	case "border-color":
		err = into(&r.BorderColor)(unit.ParseHex(value))
	case "color":
		err = into(&r.Text.Color)(unit.ParseHex(value))
	case "text-background-color":
		err = into(&r.Text.BackgroundColor)(unit.ParseHex(value))
	case "font-family":
		r.Text.FontFamily = maybe.Just(value)
	case "font-weight":
		var w uint64
		if w, err = strconv.ParseUint(value, 10, 16); err == nil {
			r.Text.FontWeight = maybe.Just(FontWeight(w))
		}
	case "font-style":
		err = into(&r.Text.FontStyle)(parseEnum(fontStyleNames, value, FontNormal))
	case "white-space":
		err = into(&r.Text.WhiteSpace)(parseEnum(whiteSpaceNames, value, WhiteSpaceNormal))
	case "text-decoration":
		if value != "none" {
			err = fmt.Errorf("%w: text-decoration %q", ErrUnknownKeyword, value)
		} else {
			r.Text.ClearDecoration()
		}
	default:
		if lp := r.lengthProperty(key); lp != nil {
			err = into(lp)(unit.ParseLength(value))
		} else {
			err = fmt.Errorf("%w: property %q", ErrUnknownKeyword, key)
		}
	}
	if err != nil {
		tracer().Debugf("cannot set %s: %v", key, err)
	}
	return err
}

// lengthProperty returns the field of a length-valued property, or nil.
func (r *StyleRefinement) lengthProperty(key string) *maybe.Maybe[unit.Length] {
	edges := func(e *EdgesRefinement[unit.Length], side string) *maybe.Maybe[unit.Length] {
		switch side {
		case "top":
			return &e.Top
		case "right":
			return &e.Right
		case "bottom":
			return &e.Bottom
		case "left":
			return &e.Left
		}
		return nil
	}
	switch key {
	case "width":
		return &r.Size.Width
	case "height":
		return &r.Size.Height
	case "min-width":
		return &r.MinSize.Width
	case "min-height":
		return &r.MinSize.Height
	case "max-width":
		return &r.MaxSize.Width
	case "max-height":
		return &r.MaxSize.Height
	case "column-gap":
		return &r.Gap.Width
	case "row-gap":
		return &r.Gap.Height
	case "flex-basis":
		return &r.FlexBasis
	case "font-size":
		return &r.Text.FontSize
	case "line-height":
		return &r.Text.LineHeight
	case "top", "right", "bottom", "left":
		return edges(&r.Inset, key)
	case "border-top-left-radius":
		return &r.CornerRadii.TopLeft
	case "border-top-right-radius":
		return &r.CornerRadii.TopRight
	case "border-bottom-right-radius":
		return &r.CornerRadii.BottomRight
	case "border-bottom-left-radius":
		return &r.CornerRadii.BottomLeft
	}
	if side, ok := strings.CutPrefix(key, "margin-"); ok {
		return edges(&r.Margin, side)
	}
	if side, ok := strings.CutPrefix(key, "padding-"); ok {
		return edges(&r.Padding, side)
	}
	if side, ok := strings.CutPrefix(key, "border-"); ok {
		if side, ok = strings.CutSuffix(side, "-width"); ok {
			return edges(&r.BorderWidths, side)
		}
	}
	return nil
}

// into returns a sink for the result of a parser, setting dst on success.
// On error dst is left untouched.
func into[T any](dst *maybe.Maybe[T]) func(T, error) error {
	return func(v T, err error) error {
		if err == nil {
			*dst = maybe.Just(v)
		}
		return err
	}
}

func parseFloat(s string) (float32, error) {
	x, err := strconv.ParseFloat(s, 32)
	return float32(x), err
}
