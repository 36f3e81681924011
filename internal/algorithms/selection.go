package algorithms

import "github.com/san-kum/sortlab/internal/engine"

type Selection struct{}

func NewSelection() *Selection { return &Selection{} }

func (s *Selection) Name() string { return "selection-sort" }

func (s *Selection) Sort(ops *engine.Ops) error {
	n := ops.Len()
	for i := 0; i < n-1; i++ {
		if ops.Stopped() {
			return engine.ErrStopped
		}
		min := i
		if err := ops.Highlight(engine.TagMin, min); err != nil {
			return err
		}
		for j := i + 1; j < n; j++ {
			greater, err := ops.Compare(min, j)
			if err != nil {
				return err
			}
			if greater {
				if err := ops.Highlight(engine.TagDefault, min); err != nil {
					return err
				}
				min = j
				if err := ops.Highlight(engine.TagMin, min); err != nil {
					return err
				}
			}
		}
		if min != i {
			if err := ops.Swap(i, min); err != nil {
				return err
			}
		} else if err := ops.Highlight(engine.TagDefault, min); err != nil {
			return err
		}
		if err := ops.MarkSorted(i); err != nil {
			return err
		}
	}
	return ops.MarkSorted(n - 1)
}
