package style

import (
	"fmt"

	"github.com/npillmayer/refine/unit"
)

// BoxShadow describes a shadow painted below a box.
// Negative blur radii are accepted here; painters clamp them to zero.
type BoxShadow struct {
	Color        unit.Hsla
	Offset       unit.Point[unit.Pixels]
	BlurRadius   unit.Pixels
	SpreadRadius unit.Pixels
}

func (s BoxShadow) String() string {
	return fmt.Sprintf("%s %s %s %s %s", s.Offset.X, s.Offset.Y, s.BlurRadius, s.SpreadRadius, s.Color)
}

func cloneShadows(s []BoxShadow) []BoxShadow {
	if s == nil {
		return nil
	}
	return append(make([]BoxShadow, 0, len(s)), s...)
}

// Fill is the paint for the background of a box.
type Fill struct {
	Color unit.Hsla
}

// ColorFill creates a solid fill.
func ColorFill(c unit.Hsla) Fill {
	return Fill{Color: c}
}

func (f Fill) String() string {
	return f.Color.String()
}
