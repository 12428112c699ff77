package course

import "github.com/samber/lo"

// Node is one occurrence of a course label in the tree. Several nodes may
// carry the same label.
type Node struct {
	label    string
	parent   *Node
	children []*Node
}

func newNode(label string) *Node {
	return &Node{
		label: label,
	}
}

func (n *Node) Label() string {
	return n.label
}

// Parent returns nil for the root and for nodes that are only indexed.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns a copy of the children in insertion order.
func (n *Node) Children() []*Node {
	return append([]*Node(nil), n.children...)
}

func (n *Node) IsLeaf() bool {
	return len(n.children) == 0
}

func (n *Node) push(label string) *Node {
	// create child
	child := &Node{
		label:  label,
		parent: n,
	}

	// add child
	n.children = append(n.children, child)

	return child
}

func (n *Node) detach() {
	// check parent
	if n.parent == nil {
		return
	}

	// remove from parent
	n.parent.children = lo.Filter(n.parent.children, func(child *Node, _ int) bool {
		return child != n
	})

	// unset parent
	n.parent = nil
}

// Walk calls fn for the node and all descendants in pre-order.
func (n *Node) Walk(fn func(level int, n *Node)) {
	n.walk(0, fn)
}

func (n *Node) walk(level int, fn func(int, *Node)) {
	// emit self
	fn(level, n)

	// walk children
	for _, child := range n.children {
		child.walk(level+1, fn)
	}
}

// IsDirectChild reports whether parent has a direct child with exactly the
// given label.
func IsDirectChild(parent *Node, label string) bool {
	return lo.ContainsBy(parent.children, func(child *Node) bool {
		return child.label == label
	})
}
