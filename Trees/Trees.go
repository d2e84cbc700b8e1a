package Trees

import (
	"io"
	"iter"
)

// Tree represents an ordered set of values implemented using nodes.
// Receivers that has a bool as a second return value indicates whether
// the first return value is defined. For example, if calling Minimum on
// an empty tree, the return value will be (x T, false bool). In this
// case the value of x is the zero value of T and shouldn't be used.
// Methods implemented recursively are noted, otherwise functions are
// implemented iteratively.
type Tree[T any] interface {
	//Insert v to the Tree. Returning true if successful, false if an equal value
	//is already present, in which case nothing changes.
	Insert(v T) bool
	//Delete v from the Tree. Returning true if successful, false if v isn't
	//present, in which case nothing changes.
	Delete(v T) bool
	//Contains element v.
	Contains(v T) bool
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//Height of the tree. -1 for an empty tree.
	Height() int
	//Size of the tree.
	Size() int
	IsEmpty() bool
	//Clear removes every element.
	Clear()
	//Values in the given order.
	Values(o Order) []T
	//All returns a lazy sequence of the values in the given order.
	//The tree must not be modified while the sequence is being consumed.
	All(o Order) iter.Seq[T]
	//Emit writes the values in the given order to w.
	Emit(o Order, w io.Writer) error
	EmitRecursive(o Order, w io.Writer) error
}

var _ Tree[int] = (*BST[int, uint32])(nil)
