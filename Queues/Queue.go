package Queues

// Queue is a first-in-first-out container.
type Queue[T any] interface {
	Push(item T)
	//Pop the oldest item. Returns *EmptyQueueError when there's nothing to pop.
	Pop() (T, error)
	Empty() bool
}

type ArrayQueue[T any] interface {
	Queue[T]
	resize(newLen uint)
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}
