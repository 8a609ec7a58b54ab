package element

import (
	"fmt"

	tp "github.com/xlab/treeprint"
)

// Print returns a textual rendering of the tree rooted at root, listing the
// style properties set for each node and its active states.
func Print(root *Node) string {
	if root == nil {
		return "<empty>"
	}
	p := tp.New()
	ppt(p, root)
	return p.String()
}

func ppt(p tp.Tree, n *Node) {
	label := n.Name
	if st := n.State(); st != None {
		label = fmt.Sprintf("%s [%v]", label, st)
	}
	var props []string
	for _, layer := range n.Layers() {
		for _, kv := range layer.Properties() {
			props = append(props, kv.String())
		}
	}
	if n.ChildCount() == 0 && len(props) == 0 {
		p.AddNode(label)
		return
	}
	branch := p.AddBranch(label)
	for _, prop := range props {
		branch.AddNode(prop)
	}
	for _, ch := range n.Children() {
		ppt(branch, ch)
	}
}
