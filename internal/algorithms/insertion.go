package algorithms

import "github.com/san-kum/sortlab/internal/engine"

type Insertion struct{}

func NewInsertion() *Insertion { return &Insertion{} }

func (s *Insertion) Name() string { return "insertion-sort" }

// Sort shifts larger elements rightward one position at a time through the
// swap primitive. Each shift counts as a full swap, so the swap counter
// runs higher than the textbook definition; downstream displays rely on
// that count.
func (s *Insertion) Sort(ops *engine.Ops) error {
	n := ops.Len()
	for i := 1; i < n; i++ {
		if ops.Stopped() {
			return engine.ErrStopped
		}
		for j := i; j > 0; j-- {
			greater, err := ops.Compare(j-1, j)
			if err != nil {
				return err
			}
			if !greater {
				break
			}
			if err := ops.Swap(j-1, j); err != nil {
				return err
			}
		}
	}
	return markAll(ops)
}
