package Trees

import (
	"math"
	"slices"
	"testing"

	"github.com/emirpasic/gods/lists/doublylinkedlist"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

// The same random sequence of inserts and deletes is replayed on the BST and on
// well known ordered sets; after every step the answers must agree.
func TestCompare_OrderedSets(t *testing.T) {
	tree := New[int, uint32](0)
	gs := treeset.NewWithIntComparator()
	bt := btree.NewOrderedG[int](16)
	lr := llrb.New()
	for step := range 20000 {
		v := rg.Intn(5000)
		if rg.Intn(3) == 0 {
			_, had := bt.Delete(v)
			lr.Delete(llrb.Int(v))
			gs.Remove(v)
			if tree.Delete(v) != had {
				t.Fatalf("step %d: delete of %d disagrees with btree", step, v)
			}
		} else {
			_, had := bt.ReplaceOrInsert(v)
			lr.ReplaceOrInsert(llrb.Int(v))
			gs.Add(v)
			if tree.Insert(v) == had {
				t.Fatalf("step %d: insert of %d disagrees with btree", step, v)
			}
		}
		if tree.Size() != bt.Len() || tree.Size() != lr.Len() || tree.Size() != gs.Size() {
			t.Fatalf("step %d: size %d, btree %d, llrb %d, treeset %d", step, tree.Size(), bt.Len(), lr.Len(), gs.Size())
		}
	}
	got := tree.Values(InOrder)
	var fromBtree []int
	bt.Ascend(func(v int) bool {
		fromBtree = append(fromBtree, v)
		return true
	})
	var fromLLRB []int
	lr.AscendGreaterOrEqual(llrb.Int(math.MinInt), func(i llrb.Item) bool {
		fromLLRB = append(fromLLRB, int(i.(llrb.Int)))
		return true
	})
	var fromGods []int
	for _, v := range gs.Values() {
		fromGods = append(fromGods, v.(int))
	}
	if !slices.Equal(got, fromBtree) || !slices.Equal(got, fromLLRB) || !slices.Equal(got, fromGods) {
		t.Errorf("in-order differs from the ordered sets")
	}
	for v := range 5000 {
		if tree.Contains(v) != bt.Has(v) || tree.Contains(v) != lr.Has(llrb.Int(v)) || tree.Contains(v) != gs.Contains(v) {
			t.Fatalf("membership of %d differs", v)
		}
	}
}

// A doubly linked list kept sorted by hand holds the same values as the tree's
// in-order traversal. The list only needs its positional contract: Insert at an
// index, Remove at an index, IndexOf and Values.
func TestCompare_SortedList(t *testing.T) {
	tree := New[int, uint16](0)
	list := doublylinkedlist.New()
	for range 3000 {
		v := rg.Intn(1000)
		if rg.Intn(2) == 0 {
			if i := list.IndexOf(v); i >= 0 {
				list.Remove(i)
			}
			tree.Delete(v)
			continue
		}
		if list.IndexOf(v) < 0 {
			at := 0
			for it := list.Iterator(); it.Next() && it.Value().(int) < v; {
				at++
			}
			list.Insert(at, v)
		}
		tree.Insert(v)
	}
	var want []int
	for _, v := range list.Values() {
		want = append(want, v.(int))
	}
	if got := tree.Values(InOrder); !slices.Equal(got, want) {
		t.Errorf("in-order %v differs from sorted list %v", got, want)
	}
	if tree.Size() != list.Size() {
		t.Errorf("tree size is %d, list size is %d", tree.Size(), list.Size())
	}
}
