package Trees

import (
	"fmt"

	"github.com/xlab/treeprint"
)

// Render draws the shape of the tree, one node per line, left child above right child.
// Children are labeled "L:" or "R:". An empty tree renders as "<empty>".
// Recursive.
func (u *BST[T, S]) Render() string {
	if u.root == 0 {
		return "<empty>\n"
	}
	t := treeprint.NewWithRoot(fmt.Sprint(u.vs[u.root]))
	u.render(t, u.root)
	return t.String()
}

func (u *BST[T, S]) render(t treeprint.Tree, i S) {
	n := u.links[i]
	if n.l != 0 {
		u.render(t.AddBranch(fmt.Sprint("L:", u.vs[n.l])), n.l)
	}
	if n.r != 0 {
		u.render(t.AddBranch(fmt.Sprint("R:", u.vs[n.r])), n.r)
	}
}
