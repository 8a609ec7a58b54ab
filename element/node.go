package element

import (
	"fmt"
	"sync"

	"github.com/npillmayer/refine/style"
	"github.com/npillmayer/refine/styled"
)

// Node is an element description, the building block of an element tree.
//
// Style layers are meant to be set up while the tree is built. Children and
// interaction states may change later, concurrently with readers.
type Node struct {
	parent   *Node         // parent node of this node
	children childrenSlice // mutex-protected slice of children nodes
	Name     string        // for debugging
	defaults style.StyleRefinement
	style    style.StyleRefinement
	overlays [len(stateNames)]style.StyleRefinement
	mx       sync.RWMutex // guards state and computed
	state    State
	computed *style.Style
}

// New creates an element description.
func New(name string) *Node {
	return &Node{Name: name}
}

func (n *Node) String() string {
	return fmt.Sprintf("(%s #ch=%d)", n.Name, n.ChildCount())
}

// Defaults returns a builder for the component defaults of n.
func (n *Node) Defaults() styled.Builder {
	return styled.On(&n.defaults)
}

// Style returns a builder for the call-site style of n.
func (n *Node) Style() styled.Builder {
	return styled.On(&n.style)
}

// On returns a builder for the style overlay of a single interaction state.
// For anything else than a single state, a detached builder is returned.
func (n *Node) On(s State) styled.Builder {
	i, ok := s.single()
	if !ok {
		tracer().Errorf("element %s: overlay for state %v must be for a single state", n.Name, s)
		return styled.New()
	}
	return styled.On(&n.overlays[i])
}

// SetState sets the active interaction states.
func (n *Node) SetState(s State) *Node {
	n.mx.Lock()
	defer n.mx.Unlock()
	n.state = s
	return n
}

// State returns the active interaction states.
func (n *Node) State() State {
	n.mx.RLock()
	defer n.mx.RUnlock()
	return n.state
}

// Layers returns the style layers of n from lowest to highest precedence,
// respecting the active interaction states. The layers are owned by n and
// must not be modified.
func (n *Node) Layers() []*style.StyleRefinement {
	state := n.State()
	layers := make([]*style.StyleRefinement, 0, 2+len(n.overlays))
	layers = append(layers, &n.defaults, &n.style)
	for i := range n.overlays {
		if state&(1<<i) != 0 {
			layers = append(layers, &n.overlays[i])
		}
	}
	return layers
}

// Computed returns the resolved style of n, if n has been resolved.
func (n *Node) Computed() (style.Style, bool) {
	n.mx.RLock()
	defer n.mx.RUnlock()
	if n.computed == nil {
		return style.Style{}, false
	}
	return *n.computed, true
}

func (n *Node) setComputed(s style.Style) {
	n.mx.Lock()
	defer n.mx.Unlock()
	n.computed = &s
}

// --- Tree structure --------------------------------------------------------

// AddChild appends children to n, making n their parent.
// It returns n to allow for chaining.
//
// This operation is concurrency-safe.
func (n *Node) AddChild(children ...*Node) *Node {
	for _, ch := range children {
		if ch != nil {
			n.children.addChild(ch, n)
		}
	}
	return n
}

// Parent returns the parent node or nil (for the root of the tree).
func (n *Node) Parent() *Node {
	return n.parent
}

// ChildCount returns the number of children of n (concurrency-safe).
func (n *Node) ChildCount() int {
	return n.children.length()
}

// Child is a concurrency-safe way to get a child of n.
func (n *Node) Child(i int) (*Node, bool) {
	ch := n.children.child(i)
	return ch, ch != nil
}

// Children returns a copy of the children of n.
func (n *Node) Children() []*Node {
	return n.children.asSlice()
}

type childrenSlice struct {
	sync.RWMutex
	slice []*Node
}

func (chs *childrenSlice) length() int {
	chs.RLock()
	defer chs.RUnlock()
	return len(chs.slice)
}

func (chs *childrenSlice) addChild(child *Node, parent *Node) {
	chs.Lock()
	defer chs.Unlock()
	chs.slice = append(chs.slice, child)
	child.parent = parent
}

func (chs *childrenSlice) child(i int) *Node {
	chs.RLock()
	defer chs.RUnlock()
	if i < 0 || i >= len(chs.slice) {
		return nil
	}
	return chs.slice[i]
}

func (chs *childrenSlice) asSlice() []*Node {
	chs.RLock()
	defer chs.RUnlock()
	children := make([]*Node, len(chs.slice))
	copy(children, chs.slice)
	return children
}
