package style

import (
	"fmt"
	"strings"
)

// CursorStyle is a platform-agnostic mouse cursor shape. The host windowing
// system maps it to a native cursor.
type CursorStyle uint8

// Cursor shapes.
const (
	CursorArrow CursorStyle = iota // default
	CursorIBeam
	CursorCrosshair
	CursorClosedHand
	CursorOpenHand
	CursorPointingHand
	CursorResizeLeft
	CursorResizeRight
	CursorResizeLeftRight
	CursorResizeUp
	CursorResizeDown
	CursorResizeUpDown
	CursorDisappearingItem
	CursorIBeamVertical
	CursorOperationNotAllowed
	CursorDragLink
	CursorDragCopy
	CursorContextualMenu
)

var cursorNames = map[CursorStyle]string{
	CursorArrow:               "arrow",
	CursorIBeam:               "ibeam",
	CursorCrosshair:           "crosshair",
	CursorClosedHand:          "closed-hand",
	CursorOpenHand:            "open-hand",
	CursorPointingHand:        "pointing-hand",
	CursorResizeLeft:          "resize-left",
	CursorResizeRight:         "resize-right",
	CursorResizeLeftRight:     "resize-left-right",
	CursorResizeUp:            "resize-up",
	CursorResizeDown:          "resize-down",
	CursorResizeUpDown:        "resize-up-down",
	CursorDisappearingItem:    "disappearing-item",
	CursorIBeamVertical:       "ibeam-vertical",
	CursorOperationNotAllowed: "operation-not-allowed",
	CursorDragLink:            "drag-link",
	CursorDragCopy:            "drag-copy",
	CursorContextualMenu:      "contextual-menu",
}

func (c CursorStyle) String() string {
	return enumString(cursorNames, c)
}

// CursorKeywords maps the intent of a cursor, named by its CSS keyword, to a
// cursor shape. Several intents share a shape.
var CursorKeywords = map[string]CursorStyle{
	"default":       CursorArrow,
	"pointer":       CursorPointingHand,
	"text":          CursorIBeam,
	"move":          CursorClosedHand,
	"not-allowed":   CursorOperationNotAllowed,
	"context-menu":  CursorContextualMenu,
	"crosshair":     CursorCrosshair,
	"vertical-text": CursorIBeamVertical,
	"alias":         CursorDragLink,
	"copy":          CursorDragCopy,
	"no-drop":       CursorOperationNotAllowed,
	"grab":          CursorOpenHand,
	"grabbing":      CursorClosedHand,
	"col-resize":    CursorResizeLeftRight,
	"row-resize":    CursorResizeUpDown,
	"n-resize":      CursorResizeUp,
	"e-resize":      CursorResizeRight,
	"s-resize":      CursorResizeDown,
	"w-resize":      CursorResizeLeft,
}

// ParseCursor returns the cursor shape for a CSS cursor keyword.
func ParseCursor(keyword string) (CursorStyle, error) {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	if c, ok := CursorKeywords[keyword]; ok {
		return c, nil
	}
	return CursorArrow, fmt.Errorf("%w: cursor %q", ErrUnknownKeyword, keyword)
}
