package cascade

import (
	"github.com/npillmayer/refine/style"
)

// Merge folds layers, given from lowest to highest precedence, into a single
// refinement. nil layers are skipped. The layers are not modified and the
// result does not share memory with any of them.
func Merge(layers ...*style.StyleRefinement) style.StyleRefinement {
	var merged style.StyleRefinement
	for _, layer := range layers {
		merged.Refine(layer) // Refine copies lists
	}
	return merged
}

// Resolver turns stacks of refinements into resolved styles.
// A Resolver is immutable and may be shared between goroutines.
type Resolver struct {
	baseline style.Style
	rootText style.TextStyle
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithBaseline sets the style used for properties no layer sets.
// The text style of the baseline is ignored, see WithRootText.
func WithBaseline(s style.Style) Option {
	return func(r *Resolver) {
		r.baseline = s
	}
}

// WithRootText sets the text style inherited by elements without an
// enclosing element.
func WithRootText(ts style.TextStyle) Option {
	return func(r *Resolver) {
		r.rootText = ts
	}
}

// NewResolver creates a resolver. Without options, style.DefaultStyle and
// style.DefaultTextStyle are used.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		baseline: style.DefaultStyle(),
		rootText: style.DefaultTextStyle(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.baseline.BoxShadow == nil {
		r.baseline.BoxShadow = []style.BoxShadow{}
	}
	return r
}

// Baseline returns the baseline style of r, including the root text style.
func (r *Resolver) Baseline() style.Style {
	s := (&style.StyleRefinement{}).ApplyTo(r.baseline)
	s.Text = r.rootText
	return s
}

// Resolve computes the style of an element from its layers, given from lowest
// to highest precedence. parentText is the resolved text style of the
// enclosing element, or nil for a root element.
func (r *Resolver) Resolve(layers []*style.StyleRefinement, parentText *style.TextStyle) style.Style {
	merged := Merge(layers...)
	return r.apply(&merged, parentText)
}

// ResolveText computes just the text style of an element. See Resolve.
func (r *Resolver) ResolveText(layers []*style.StyleRefinement, parentText *style.TextStyle) style.TextStyle {
	var text style.TextStyleRefinement
	for _, layer := range layers {
		if layer != nil {
			text.Refine(&layer.Text)
		}
	}
	return text.ApplyTo(r.inherited(parentText))
}

func (r *Resolver) apply(merged *style.StyleRefinement, parentText *style.TextStyle) style.Style {
	// pass 1: geometry and paint from the baseline, never from ancestors
	s := merged.ApplyTo(r.baseline)
	// pass 2: text from the enclosing element
	s.Text = merged.Text.ApplyTo(r.inherited(parentText))
	tracer().Debugf("cascade: resolved style, text inherited=%v", parentText != nil)
	return s
}

func (r *Resolver) inherited(parentText *style.TextStyle) style.TextStyle {
	if parentText != nil {
		return *parentText
	}
	return r.rootText
}
