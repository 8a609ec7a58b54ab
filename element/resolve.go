package element

import (
	"context"
	"runtime"

	"github.com/npillmayer/refine/cascade"
	"github.com/npillmayer/refine/style"
	"golang.org/x/sync/errgroup"
)

// Resolve computes and stores the style of a single node. The text style is
// inherited from the resolved style of the parent of n, if there is one.
func Resolve(n *Node, r *cascade.Resolver) style.Style {
	s := r.Resolve(n.Layers(), inheritedText(n))
	n.setComputed(s)
	return s
}

// ResolveTree computes the styles of all nodes of the tree rooted at root,
// top-down. If root has a resolved parent, root inherits its text style.
func ResolveTree(root *Node, r *cascade.Resolver) {
	if root == nil {
		return
	}
	resolveSubtree(root, r, inheritedText(root))
}

func resolveSubtree(n *Node, r *cascade.Resolver, parentText *style.TextStyle) {
	s := r.Resolve(n.Layers(), parentText)
	n.setComputed(s)
	text := s.Text
	for _, ch := range n.Children() {
		resolveSubtree(ch, r, &text)
	}
}

// ResolveTreeParallel works like ResolveTree, but resolves subtrees in
// parallel, using at most workers goroutines. If workers is less than 1,
// the number of CPUs is used. If no worker is available, a subtree is
// resolved by the calling goroutine.
//
// Each subtree receives its own copy of the text style of its parent.
// Resolution stops early if ctx is cancelled; some nodes may then be left
// unresolved.
func ResolveTreeParallel(ctx context.Context, root *Node, r *cascade.Resolver, workers int) error {
	if root == nil {
		return nil
	}
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	var visit func(n *Node, parentText *style.TextStyle) error
	visit = func(n *Node, parentText *style.TextStyle) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		s := r.Resolve(n.Layers(), parentText)
		n.setComputed(s)
		for _, ch := range n.Children() {
			text := s.Text // snapshot per child
			if g.TryGo(func() error { return visit(ch, &text) }) {
				continue
			}
			if err := visit(ch, &text); err != nil {
				return err
			}
		}
		return nil
	}
	g.Go(func() error { return visit(root, inheritedText(root)) })
	err := g.Wait()
	if err != nil {
		tracer().Infof("element tree %s: parallel resolution stopped: %v", root.Name, err)
	}
	return err
}

// inheritedText returns the resolved text style of the parent of n, or nil.
func inheritedText(n *Node) *style.TextStyle {
	if n.parent == nil {
		return nil
	}
	if s, ok := n.parent.Computed(); ok {
		return &s.Text
	}
	tracer().Debugf("element %s: parent %s is not resolved, using root text style", n.Name, n.parent.Name)
	return nil
}
