package course

import (
	"io"

	"github.com/ddddddO/gtree"
)

// Render writes the tree below root as indented text.
func Render(w io.Writer, root *Node) error {
	// convert nodes
	out := gtree.NewRoot(root.label)
	convert(out, root)

	return gtree.OutputProgrammably(w, out)
}

func convert(out *gtree.Node, node *Node) {
	for _, child := range node.children {
		convert(out.Add(child.label), child)
	}
}
