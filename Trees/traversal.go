package Trees

import (
	"errors"
	"fmt"
	"io"
	"iter"

	"github.com/g-m-twostay/go-bst/Queues"
	"golang.org/x/exp/constraints"
)

// Order in which a traversal visits the nodes.
type Order uint8

const (
	InOrder    Order = iota // left, self, right. Ascending for a BST.
	PreOrder                // self, left, right.
	PostOrder               // left, right, self.
	LevelOrder              // breadth first, left to right within a depth.
)

var ErrUnknownOrder = errors.New("unknown traversal order")

var orderNames = [...]string{InOrder: "in", PreOrder: "pre", PostOrder: "post", LevelOrder: "level"}

func (o Order) String() string {
	if int(o) < len(orderNames) {
		return orderNames[o]
	}
	return fmt.Sprintf("Order(%d)", uint8(o))
}

// ParseOrder accepts the names returned by Order.String.
func ParseOrder(s string) (Order, error) {
	for i, n := range orderNames {
		if n == s {
			return Order(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOrder, s)
}

// Recursive calls f on every value in the order o, stopping as soon as f returns false.
// The recursion is as deep as the tree. Level order has no recursive form and walks the
// same queue as Iterative. The tree must not be modified by f.
// Time: O(n)
func (u *BST[T, S]) Recursive(o Order, f func(T) bool) {
	switch o {
	case InOrder:
		u.inOrder(u.root, f)
	case PreOrder:
		u.preOrder(u.root, f)
	case PostOrder:
		u.postOrder(u.root, f)
	case LevelOrder:
		u.Iterative(LevelOrder, f)
	}
}

func (u *BST[T, S]) inOrder(i S, f func(T) bool) bool {
	return i == 0 || u.inOrder(u.links[i].l, f) && f(u.vs[i]) && u.inOrder(u.links[i].r, f)
}

func (u *BST[T, S]) preOrder(i S, f func(T) bool) bool {
	return i == 0 || f(u.vs[i]) && u.preOrder(u.links[i].l, f) && u.preOrder(u.links[i].r, f)
}

func (u *BST[T, S]) postOrder(i S, f func(T) bool) bool {
	return i == 0 || u.postOrder(u.links[i].l, f) && u.postOrder(u.links[i].r, f) && f(u.vs[i])
}

// Iterative is Recursive without recursion: in, pre and post order keep an explicit
// stack of at most D+1 indexes, level order keeps a queue of at most one level.
// Time: O(n)
func (u *BST[T, S]) Iterative(o Order, f func(T) bool) {
	for c := u.newCursor(o); ; {
		if i, ok := c.next(); !ok || !f(u.vs[i]) {
			return
		}
	}
}

// Iter returns a closure f acting like an iterator over the values in the order o.
// Calling f is like calling "Next()" of iterators: val, valid=f()
// val is meaningful only if valid is true. When valid==false, then f is exhausted and
// stays so. The tree must not be modified during the iteration of f.
// Time: f(): amortized O(1).
func (u *BST[T, S]) Iter(o Order) func() (T, bool) {
	c := u.newCursor(o)
	return func() (T, bool) {
		if i, ok := c.next(); ok {
			return u.vs[i], true
		}
		return *new(T), false
	}
}

// All returns the values in the order o as a lazy sequence, see Iterative.
func (u *BST[T, S]) All(o Order) iter.Seq[T] {
	return func(yield func(T) bool) {
		u.Iterative(o, yield)
	}
}

// Values collects the values in the order o, see Recursive.
func (u *BST[T, S]) Values(o Order) []T {
	r := make([]T, 0, u.size)
	u.Recursive(o, func(v T) bool {
		r = append(r, v)
		return true
	})
	return r
}

// Emit writes every value in the order o to w, each followed by a space, walking
// iteratively. Returns the first error from w, at which point the traversal stops.
func (u *BST[T, S]) Emit(o Order, w io.Writer) error {
	return emit(u.Iterative, o, w)
}

// EmitRecursive is Emit over the Recursive walk.
func (u *BST[T, S]) EmitRecursive(o Order, w io.Writer) error {
	return emit(u.Recursive, o, w)
}

func emit[T any](walk func(Order, func(T) bool), o Order, w io.Writer) (err error) {
	walk(o, func(v T) bool {
		_, err = fmt.Fprint(w, v, " ")
		return err == nil
	})
	return
}

// cursor is the state of an iterative traversal. Once next reports false it keeps
// doing so.
type cursor[T any, S constraints.Unsigned] struct {
	u    *BST[T, S]
	o    Order
	cur  S   // in and post order: the next subtree to descend along its left spine.
	last S   // post order: the node emitted last.
	st   []S // in, pre and post order.
	q    Queues.ArrayQueue[S]
}

func (u *BST[T, S]) newCursor(o Order) *cursor[T, S] {
	c := &cursor[T, S]{u: u, o: o}
	switch o {
	case InOrder, PostOrder:
		c.cur = u.root
		c.st = make([]S, 0, 16)
	case PreOrder:
		c.st = make([]S, 0, 16)
		if u.root != 0 {
			c.st = append(c.st, u.root)
		}
	case LevelOrder:
		c.q = Queues.MakeArrayQueue[S](8)
		if u.root != 0 {
			c.q.Push(u.root)
		}
	}
	return c
}

func (c *cursor[T, S]) pushLeft(i S) {
	for ; i != 0; i = c.u.links[i].l {
		c.st = append(c.st, i)
	}
}

// next node index in the traversal.
func (c *cursor[T, S]) next() (i S, ok bool) {
	links := c.u.links
	switch c.o {
	case InOrder:
		c.pushLeft(c.cur)
		if len(c.st) == 0 {
			return 0, false
		}
		i, c.st = c.st[len(c.st)-1], c.st[:len(c.st)-1]
		c.cur = links[i].r
		return i, true
	case PreOrder:
		if len(c.st) == 0 {
			return 0, false
		}
		i, c.st = c.st[len(c.st)-1], c.st[:len(c.st)-1]
		// right first so that left is popped first.
		if r := links[i].r; r != 0 {
			c.st = append(c.st, r)
		}
		if l := links[i].l; l != 0 {
			c.st = append(c.st, l)
		}
		return i, true
	case PostOrder:
		for {
			c.pushLeft(c.cur)
			c.cur = 0
			if len(c.st) == 0 {
				return 0, false
			}
			top := c.st[len(c.st)-1]
			if r := links[top].r; r != 0 && r != c.last {
				c.cur = r
				continue
			}
			c.st, c.last = c.st[:len(c.st)-1], top
			return top, true
		}
	case LevelOrder:
		if c.q.Empty() {
			return 0, false
		}
		i, _ = c.q.Pop()
		if l := links[i].l; l != 0 {
			c.q.Push(l)
		}
		if r := links[i].r; r != 0 {
			c.q.Push(r)
		}
		return i, true
	}
	return 0, false
}
