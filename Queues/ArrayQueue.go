package Queues

// circArrQ is a ring buffer. head is the index of the oldest item, tail is where the
// next item goes; head==tail is ambiguous so sz tells full from empty.
type circArrQ[T any] struct {
	sz, head, tail uint
	content        []T
}

// MakeArrayQueue with room for initCap items before the first resize.
func MakeArrayQueue[T any](initCap uint) ArrayQueue[T] {
	return &circArrQ[T]{0, 0, 0, make([]T, initCap)}
}

func (u *circArrQ[T]) Empty() bool {
	return u.sz == 0
}

// resize moves the items to a new array of length newLen, oldest first. newLen>=sz.
func (u *circArrQ[T]) resize(newLen uint) {
	nc := make([]T, newLen)
	if u.sz > 0 {
		if u.head < u.tail {
			copy(nc, u.content[u.head:u.tail])
		} else {
			n := copy(nc, u.content[u.head:])
			copy(nc[n:], u.content[:u.tail])
		}
	}
	u.content, u.head = nc, 0
	if u.tail = u.sz; newLen > 0 {
		u.tail %= newLen
	}
}

// Push item to the back. Grows by half of the current length, at least 4.
// Time: amortized O(1)
func (u *circArrQ[T]) Push(item T) {
	if l := uint(len(u.content)); u.sz == l {
		u.resize(l + max(l>>1, 4))
	}
	u.content[u.tail] = item
	u.tail = (u.tail + 1) % uint(len(u.content))
	u.sz++
}

func (u *circArrQ[T]) Pop() (item T, e error) {
	if u.Empty() {
		return item, &EmptyQueueError{}
	}
	item = u.content[u.head]
	u.content[u.head] = *new(T)
	u.head = (u.head + 1) % uint(len(u.content))
	u.sz--
	return item, nil
}
