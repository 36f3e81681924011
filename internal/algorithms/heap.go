package algorithms

import "github.com/san-kum/sortlab/internal/engine"

type Heap struct{}

func NewHeap() *Heap { return &Heap{} }

func (h *Heap) Name() string { return "heap-sort" }

func (h *Heap) Sort(ops *engine.Ops) error {
	n := ops.Len()

	// Build the max-heap sifting down from the middle outward.
	for i := n/2 - 1; i >= 0; i-- {
		if ops.Stopped() {
			return engine.ErrStopped
		}
		if err := h.siftDown(ops, i, n); err != nil {
			return err
		}
	}

	for end := n - 1; end > 0; end-- {
		if ops.Stopped() {
			return engine.ErrStopped
		}
		if err := ops.Swap(0, end); err != nil {
			return err
		}
		if err := ops.MarkSorted(end); err != nil {
			return err
		}
		if err := h.siftDown(ops, 0, end); err != nil {
			return err
		}
	}
	return ops.MarkSorted(0)
}

func (h *Heap) siftDown(ops *engine.Ops, root, size int) error {
	for {
		largest := root
		left, right := 2*root+1, 2*root+2
		if left < size {
			greater, err := ops.Compare(left, largest)
			if err != nil {
				return err
			}
			if greater {
				largest = left
			}
		}
		if right < size {
			greater, err := ops.Compare(right, largest)
			if err != nil {
				return err
			}
			if greater {
				largest = right
			}
		}
		if largest == root {
			return nil
		}
		if err := ops.Swap(root, largest); err != nil {
			return err
		}
		root = largest
	}
}
