package Trees

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// link holds the child indexes of a node. 0 means no child.
// The zero value is meaningful: a node without children.
type link[S constraints.Unsigned] struct {
	l, r S
}

// base is the node store: every node lives in the arena and is addressed by its
// index, so parent and child relations are plain integers and nothing points back up.
// links[0] and vs[0] belong to the nil sentinel and are never handed out.
type base[T any, S constraints.Unsigned] struct {
	root, free S // free is the beginning of the linked list that contains all the free indexes; link[S]::l represents next.
	links      []link[S]
	vs         []T // vs[i] is the value of node i.
}

func makeBase[T any, S constraints.Unsigned](hint S) base[T, S] {
	links := make([]link[S], 1, uint64(hint)+1)
	vs := make([]T, 1, uint64(hint)+1)
	return base[T, S]{links: links, vs: vs}
}

// addFree index once.
func (u *base[T, S]) addFree(a S) {
	u.links[a].l = u.free
	u.free = a
}

// popFree index once. Returns 0 when there's no free index(when u.free==0).
func (u *base[T, S]) popFree() S {
	b := u.free
	u.free = u.links[u.free].l
	return b
}

// alloc a childless node holding v. Freed indexes are reused before the arrays grow.
// Growing may move the arrays, so pointers into links mustn't be held across alloc.
func (u *base[T, S]) alloc(v T) S {
	if i := u.popFree(); i != 0 {
		u.links[i], u.vs[i] = link[S]{}, v
		return i
	}
	i := S(len(u.links))
	if uint64(i) != uint64(len(u.links)) || i == 0 {
		panic(fmt.Sprintf("Trees: %d nodes overflow the index type %T", len(u.links), i))
	}
	u.links = append(u.links, link[S]{})
	u.vs = append(u.vs, v)
	return i
}

// release node i back to the free list. Its value is zeroed so the arena doesn't
// keep it alive. i must already be unreachable.
func (u *base[T, S]) release(i S) {
	u.vs[i] = *new(T)
	u.addFree(i)
}

// unlink the node in *slot, which has at most one child, by linking the slot to that
// child (or to 0). slot is the parent's child field, or &u.root.
// Time: O(1); Space: O(1)
func (u *base[T, S]) unlink(slot *S) {
	i := *slot
	if n := u.links[i]; n.l == 0 {
		*slot = n.r
	} else {
		*slot = n.l
	}
	u.release(i)
}

// reset tears down every node. O(len) because values are zeroed; the arrays are kept.
func (u *base[T, S]) reset() {
	clear(u.vs)
	u.links, u.vs = u.links[:1], u.vs[:1]
	u.links[0] = link[S]{}
	u.root, u.free = 0, 0
}

// leftmost node of the subtree rooting at i. i!=0.
func (u *base[T, S]) leftmost(i S) S {
	for u.links[i].l != 0 {
		i = u.links[i].l
	}
	return i
}

func (u *base[T, S]) rightmost(i S) S {
	for u.links[i].r != 0 {
		i = u.links[i].r
	}
	return i
}
