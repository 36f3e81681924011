package algorithms

import "github.com/san-kum/sortlab/internal/engine"

type Bubble struct{}

func NewBubble() *Bubble { return &Bubble{} }

func (b *Bubble) Name() string { return "bubble-sort" }

func (b *Bubble) Sort(ops *engine.Ops) error {
	n := ops.Len()
	for i := 0; i < n-1; i++ {
		if ops.Stopped() {
			return engine.ErrStopped
		}
		swapped := false
		for j := 0; j < n-1-i; j++ {
			greater, err := ops.Compare(j, j+1)
			if err != nil {
				return err
			}
			if greater {
				if err := ops.Swap(j, j+1); err != nil {
					return err
				}
				swapped = true
			}
		}
		if err := ops.MarkSorted(n - 1 - i); err != nil {
			return err
		}
		if !swapped {
			// A clean pass means the remaining prefix is already ordered.
			rest := make([]int, 0, n-1-i)
			for k := 0; k < n-1-i; k++ {
				rest = append(rest, k)
			}
			return ops.MarkSorted(rest...)
		}
	}
	return ops.MarkSorted(0)
}
