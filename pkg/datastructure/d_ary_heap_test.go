package datastructure

import (
	"testing"
)

func TestExtractMinOrder(t *testing.T) {
	h := NewFourAryHeap[int]()

	ranks := []float64{5, 1, 4, 2, 3}
	for i, rank := range ranks {
		h.Insert(NewPriorityQueueNode(rank, i))
	}

	prev := -1.0
	for !h.IsEmpty() {
		node, err := h.ExtractMin()
		if err != nil {
			t.Fatalf("err: %v", err)
		}
		if node.GetRank() < prev {
			t.Fatalf("extraction out of order: %f after %f", node.GetRank(), prev)
		}
		prev = node.GetRank()
	}
}

func TestEqualRanksExtractInInsertionOrder(t *testing.T) {
	h := NewBinaryHeap[int]()

	for item := 0; item < 10; item++ {
		h.Insert(NewPriorityQueueNode(7.0, item))
	}

	for want := 0; want < 10; want++ {
		node, err := h.ExtractMin()
		if err != nil {
			t.Fatalf("err: %v", err)
		}
		if node.GetItem() != want {
			t.Fatalf("tie-break broken: got item %d, want %d", node.GetItem(), want)
		}
	}
}

func TestDecreaseKey(t *testing.T) {
	h := NewFourAryHeap[string]()

	a := NewPriorityQueueNode(10.0, "a")
	b := NewPriorityQueueNode(5.0, "b")
	h.Insert(a)
	h.Insert(b)

	if err := h.DecreaseKey(a, 1.0); err != nil {
		t.Fatalf("err: %v", err)
	}

	node, _ := h.ExtractMin()
	if node.GetItem() != "a" {
		t.Fatalf("after DecreaseKey, min = %q, want a", node.GetItem())
	}

	// increasing a key must be rejected
	if err := h.DecreaseKey(b, 99.0); err == nil {
		t.Fatal("DecreaseKey with a larger rank must fail")
	}
}

func TestExtractFromEmptyHeap(t *testing.T) {
	h := NewFourAryHeap[int]()
	if _, err := h.ExtractMin(); err == nil {
		t.Fatal("ExtractMin on an empty heap must fail")
	}
	if _, err := h.GetMin(); err == nil {
		t.Fatal("GetMin on an empty heap must fail")
	}
}
