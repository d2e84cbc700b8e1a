package Queues

import (
	"math/rand"
	"testing"
)

var rg = rand.New(rand.NewSource(0))

func TestArrayQueue_Order(t *testing.T) {
	q := MakeArrayQueue[int](0)
	if _, e := q.Pop(); e == nil {
		t.Errorf("pop on empty queue returned no error")
	}
	var model []int
	for i := range 10000 {
		if len(model) > 0 && rg.Intn(3) == 0 {
			v, e := q.Pop()
			if e != nil {
				t.Fatalf("pop failed with %d items: %v", len(model), e)
			}
			if v != model[0] {
				t.Fatalf("popped %d, want %d", v, model[0])
			}
			model = model[1:]
		} else {
			q.Push(i)
			model = append(model, i)
		}
		if q.Empty() != (len(model) == 0) {
			t.Fatalf("empty is %v with %d items", q.Empty(), len(model))
		}
	}
}

// Growing while the items wrap around the end of the array keeps them in order.
func TestArrayQueue_GrowWrapped(t *testing.T) {
	for _, initCap := range []uint{0, 1, 2, 5} {
		q := MakeArrayQueue[int](initCap)
		next, want := 0, 0
		for round := range 50 {
			for range round%7 + 1 {
				q.Push(next)
				next++
			}
			for range round % 5 {
				if v, e := q.Pop(); e != nil || v != want {
					t.Fatalf("cap %d: popped (%d, %v), want %d", initCap, v, e, want)
				}
				want++
			}
		}
		for ; want < next; want++ {
			if v, _ := q.Pop(); v != want {
				t.Fatalf("cap %d: popped %d, want %d", initCap, v, want)
			}
		}
		if !q.Empty() {
			t.Errorf("cap %d: queue not empty after popping everything", initCap)
		}
	}
}
