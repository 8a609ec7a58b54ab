package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/refine/maybe"
)

// KeyValue is a style property which is set in a refinement, in textual form.
// Keys follow CSS naming, e.g. "margin-top" or "font-size".
type KeyValue struct {
	Key   string
	Value string
}

func (kv KeyValue) String() string {
	return kv.Key + ": " + kv.Value
}

// Properties lists all properties which are set in r. Properties of the
// same property group are listed next to each other.
func (r *StyleRefinement) Properties() []KeyValue {
	var kv []KeyValue
	kv = add(kv, "display", r.Display)
	kv = add(kv, "visibility", r.Visibility)
	kv = add(kv, "position", r.Position)
	kv = add(kv, "z-index", r.ZIndex)
	kv = add(kv, "overflow-x", r.Overflow.X)
	kv = add(kv, "overflow-y", r.Overflow.Y)
	kv = addEdges(kv, "", "", r.Inset)
	kv = add(kv, "width", r.Size.Width)
	kv = add(kv, "height", r.Size.Height)
	kv = add(kv, "min-width", r.MinSize.Width)
	kv = add(kv, "min-height", r.MinSize.Height)
	kv = add(kv, "max-width", r.MaxSize.Width)
	kv = add(kv, "max-height", r.MaxSize.Height)
	kv = addEdges(kv, "margin", "", r.Margin)
	kv = addEdges(kv, "padding", "", r.Padding)
	kv = addEdges(kv, "border", "width", r.BorderWidths)
	kv = add(kv, "border-color", r.BorderColor)
	kv = add(kv, "border-top-left-radius", r.CornerRadii.TopLeft)
	kv = add(kv, "border-top-right-radius", r.CornerRadii.TopRight)
	kv = add(kv, "border-bottom-right-radius", r.CornerRadii.BottomRight)
	kv = add(kv, "border-bottom-left-radius", r.CornerRadii.BottomLeft)
	kv = add(kv, "column-gap", r.Gap.Width)
	kv = add(kv, "row-gap", r.Gap.Height)
	kv = add(kv, "flex-direction", r.FlexDirection)
	kv = add(kv, "flex-wrap", r.FlexWrap)
	kv = add(kv, "flex-grow", r.FlexGrow)
	kv = add(kv, "flex-shrink", r.FlexShrink)
	kv = add(kv, "flex-basis", r.FlexBasis)
	kv = add(kv, "align-items", r.AlignItems)
	kv = add(kv, "align-self", r.AlignSelf)
	kv = add(kv, "align-content", r.AlignContent)
	kv = add(kv, "justify-content", r.JustifyContent)
	kv = add(kv, "background-color", r.Background)
	if shadows, ok := r.BoxShadow.Get(); ok {
		kv = append(kv, KeyValue{"box-shadow", shadowList(shadows)})
	}
	kv = add(kv, "cursor", r.MouseCursor)
	return append(kv, r.Text.Properties()...)
}

// Properties lists all text properties which are set in t.
func (t *TextStyleRefinement) Properties() []KeyValue {
	var kv []KeyValue
	kv = add(kv, "color", t.Color)
	kv = add(kv, "text-background-color", t.BackgroundColor)
	kv = add(kv, "font-family", t.FontFamily)
	kv = add(kv, "font-size", t.FontSize)
	kv = add(kv, "font-weight", t.FontWeight)
	kv = add(kv, "font-style", t.FontStyle)
	kv = add(kv, "line-height", t.LineHeight)
	kv = add(kv, "white-space", t.WhiteSpace)
	kv = add(kv, "text-decoration", t.Decoration)
	return kv
}

func (r *StyleRefinement) String() string {
	props := r.Properties()
	if len(props) == 0 {
		return "{}"
	}
	var b strings.Builder
	b.WriteString("{\n")
	for _, kv := range props {
		fmt.Fprintf(&b, "    %s: %s\n", kv.Key, kv.Value)
	}
	b.WriteString("}")
	return b.String()
}

// Groups returns the names of all property groups which have at least one
// property set in r, in alphabetical order.
func (r *StyleRefinement) Groups() []string {
	seen := map[string]bool{}
	for _, kv := range r.Properties() {
		seen[GroupOf(kv.Key)] = true
	}
	groups := make([]string, 0, len(seen))
	for g := range seen {
		groups = append(groups, g)
	}
	sort.Strings(groups)
	return groups
}

func add[T any](kv []KeyValue, key string, m maybe.Maybe[T]) []KeyValue {
	if v, ok := m.Get(); ok {
		kv = append(kv, KeyValue{Key: key, Value: fmt.Sprintf("%v", v)})
	}
	return kv
}

func addEdges[T any](kv []KeyValue, pre, suf string, e EdgesRefinement[T]) []KeyValue {
	kv = add(kv, p(pre, suf, fourDirs[0]), e.Top)
	kv = add(kv, p(pre, suf, fourDirs[1]), e.Right)
	kv = add(kv, p(pre, suf, fourDirs[2]), e.Bottom)
	return add(kv, p(pre, suf, fourDirs[3]), e.Left)
}

func shadowList(shadows []BoxShadow) string {
	if len(shadows) == 0 {
		return "none"
	}
	s := make([]string, len(shadows))
	for i, sh := range shadows {
		s[i] = sh.String()
	}
	return strings.Join(s, ", ")
}

var fourDirs = [4]string{"top", "right", "bottom", "left"}

func p(prefix string, suffix string, tag string) string {
	if prefix == "" && suffix == "" {
		return tag
	}
	if suffix == "" {
		return prefix + "-" + tag
	}
	if prefix == "" {
		return tag + "-" + suffix
	}
	return prefix + "-" + tag + "-" + suffix
}

// --- Property Groups --------------------------------------------------

// Symbolic names for string literals, denoting property groups.
const (
	PGDisplay   = "Display"
	PGDimension = "Dimension"
	PGMargins   = "Margins"
	PGPadding   = "Padding"
	PGBorder    = "Border"
	PGFlex      = "Flex"
	PGColor     = "Color"
	PGText      = "Text"
	PGX         = "X"
)

var groupNameForKey = map[string]string{
	"display":                    PGDisplay,
	"visibility":                 PGDisplay,
	"position":                   PGDisplay,
	"z-index":                    PGDisplay,
	"overflow-x":                 PGDisplay,
	"overflow-y":                 PGDisplay,
	"cursor":                     PGDisplay,
	"top":                        PGDimension,
	"right":                      PGDimension,
	"bottom":                     PGDimension,
	"left":                       PGDimension,
	"width":                      PGDimension,
	"height":                     PGDimension,
	"min-width":                  PGDimension,
	"min-height":                 PGDimension,
	"max-width":                  PGDimension,
	"max-height":                 PGDimension,
	"margin-top":                 PGMargins,
	"margin-right":               PGMargins,
	"margin-bottom":              PGMargins,
	"margin-left":                PGMargins,
	"padding-top":                PGPadding,
	"padding-right":              PGPadding,
	"padding-bottom":             PGPadding,
	"padding-left":               PGPadding,
	"border-top-width":           PGBorder,
	"border-right-width":         PGBorder,
	"border-bottom-width":        PGBorder,
	"border-left-width":          PGBorder,
	"border-color":               PGBorder,
	"border-top-left-radius":     PGBorder,
	"border-top-right-radius":    PGBorder,
	"border-bottom-right-radius": PGBorder,
	"border-bottom-left-radius":  PGBorder,
	"box-shadow":                 PGBorder,
	"column-gap":                 PGFlex,
	"row-gap":                    PGFlex,
	"flex-direction":             PGFlex,
	"flex-wrap":                  PGFlex,
	"flex-grow":                  PGFlex,
	"flex-shrink":                PGFlex,
	"flex-basis":                 PGFlex,
	"align-items":                PGFlex,
	"align-self":                 PGFlex,
	"align-content":              PGFlex,
	"justify-content":            PGFlex,
	"background-color":           PGColor,
	"color":                      PGColor,
	"text-background-color":      PGText,
	"font-family":                PGText,
	"font-size":                  PGText,
	"font-weight":                PGText,
	"font-style":                 PGText,
	"line-height":                PGText,
	"white-space":                PGText,
	"text-decoration":            PGText,
}

// GroupOf returns the name of the property group a key belongs to.
// Unknown keys belong to group PGX.
func GroupOf(key string) string {
	if g, ok := groupNameForKey[key]; ok {
		return g
	}
	return PGX
}

// IsInherited tells wether a property is inherited from the enclosing
// element when no layer sets it. Only text properties are inherited.
func IsInherited(key string) bool {
	if key == "color" {
		return true
	}
	return GroupOf(key) == PGText
}
