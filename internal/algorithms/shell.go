package algorithms

import "github.com/san-kum/sortlab/internal/engine"

type Shell struct{}

func NewShell() *Shell { return &Shell{} }

func (s *Shell) Name() string { return "shell-sort" }

// Sort runs gapped insertion over the classic n/2, n/4, ..., 1 sequence.
func (s *Shell) Sort(ops *engine.Ops) error {
	n := ops.Len()
	for gap := n / 2; gap > 0; gap /= 2 {
		if ops.Stopped() {
			return engine.ErrStopped
		}
		for i := gap; i < n; i++ {
			for j := i; j >= gap; j -= gap {
				greater, err := ops.Compare(j-gap, j)
				if err != nil {
					return err
				}
				if !greater {
					break
				}
				if err := ops.Swap(j-gap, j); err != nil {
					return err
				}
			}
		}
	}
	return markAll(ops)
}
