package Trees

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// Comparable is implemented by types that order themselves. Compare returns a
// negative number when the receiver is less than o, 0 when equal and a positive
// number when greater.
type Comparable[T any] interface {
	Compare(o T) int
}

// BST is an unbalanced binary search tree with no repeated values.
// T is the type of values it holds, S is the type of the indexes used to address
// nodes in the underlying arena; S must be able to count every live node plus one,
// otherwise inserting panics.
// The order of values is given by a three-way comparator, which must be a strict
// total order on the values inserted. This is not checked; a comparator violating it
// leaves the tree in an undefined state.
// Nothing is rebalanced, so the height D is O(log n) on average for random insertion
// order but degrades to n-1 when values arrive sorted.
// BST isn't safe for concurrent use; guard the whole tree with a single mutex if it
// must be shared.
type BST[T any, S constraints.Unsigned] struct {
	base[T, S]
	cmp  func(a, b T) int
	size int
}

// New returns an empty BST ordered by cmp.Compare. hint is the expected number of
// nodes, used to size the arena.
func New[T cmp.Ordered, S constraints.Unsigned](hint S) *BST[T, S] {
	return NewFunc[T, S](hint, cmp.Compare[T])
}

// NewFunc returns an empty BST ordered by compare.
func NewFunc[T any, S constraints.Unsigned](hint S, compare func(a, b T) int) *BST[T, S] {
	return &BST[T, S]{base: makeBase[T, S](hint), cmp: compare}
}

// NewComparable returns an empty BST of values that compare themselves.
func NewComparable[T Comparable[T], S constraints.Unsigned](hint S) *BST[T, S] {
	return NewFunc[T, S](hint, func(a, b T) int { return a.Compare(b) })
}

// Insert v. Returns false, leaving the tree untouched, if an equal value is already in it.
// Time: O(D); Space: O(1)
func (u *BST[T, S]) Insert(v T) bool {
	if u.root == 0 {
		u.root = u.alloc(v)
		u.size++
		return true
	}
	var p S
	var c int
	for cur := u.root; cur != 0; {
		p = cur
		if c = u.cmp(v, u.vs[cur]); c < 0 {
			cur = u.links[cur].l
		} else if c > 0 {
			cur = u.links[cur].r
		} else {
			return false
		}
	}
	// the parent is kept as an index since alloc may move links.
	i := u.alloc(v)
	if c < 0 {
		u.links[p].l = i
	} else {
		u.links[p].r = i
	}
	u.size++
	return true
}

// Contains reports whether a value equal to v is in the tree.
// Time: O(D); Space: O(1)
func (u *BST[T, S]) Contains(v T) bool {
	for cur := u.root; cur != 0; {
		if c := u.cmp(v, u.vs[cur]); c < 0 {
			cur = u.links[cur].l
		} else if c > 0 {
			cur = u.links[cur].r
		} else {
			return true
		}
	}
	return false
}

// Delete v. Returns false, leaving the tree untouched, if v isn't in it.
// A node with two children keeps its place and takes the value of its in-order
// successor; the successor, which has no left child, is the node spliced out.
// Time: O(D); Space: O(1)
func (u *BST[T, S]) Delete(v T) bool {
	// slot is the child field of the parent that points at cur, or &u.root.
	for slot := &u.root; *slot != 0; {
		cur := *slot
		if c := u.cmp(v, u.vs[cur]); c < 0 {
			slot = &u.links[cur].l
		} else if c > 0 {
			slot = &u.links[cur].r
		} else {
			if n := u.links[cur]; n.l != 0 && n.r != 0 {
				succ := &u.links[cur].r
				for u.links[*succ].l != 0 {
					succ = &u.links[*succ].l
				}
				u.vs[cur] = u.vs[*succ]
				slot = succ
			}
			u.unlink(slot)
			u.size--
			return true
		}
	}
	return false
}

// Height of the tree: -1 when empty, 0 for a single node.
// Recursive. On a degenerate tree the recursion is as deep as the tree, n-1 frames
// for n sorted insertions.
// Time: O(n); Space: O(D)
func (u *BST[T, S]) Height() int {
	return u.height(u.root)
}

func (u *BST[T, S]) height(i S) int {
	if i == 0 {
		return -1
	}
	return 1 + max(u.height(u.links[i].l), u.height(u.links[i].r))
}

// Size is the number of values in the tree.
// Time: O(1); Space: O(1)
func (u *BST[T, S]) Size() int {
	return u.size
}

func (u *BST[T, S]) IsEmpty() bool {
	return u.size == 0
}

// Minimum value of the tree. (zero value, false) when empty.
// Time: O(D); Space: O(1)
func (u *BST[T, S]) Minimum() (T, bool) {
	if u.root == 0 {
		return *new(T), false
	}
	return u.vs[u.leftmost(u.root)], true
}

// Maximum value of the tree. (zero value, false) when empty.
// Time: O(D); Space: O(1)
func (u *BST[T, S]) Maximum() (T, bool) {
	if u.root == 0 {
		return *new(T), false
	}
	return u.vs[u.rightmost(u.root)], true
}

// Clear removes every value. The arena keeps its capacity.
func (u *BST[T, S]) Clear() {
	u.reset()
	u.size = 0
}
