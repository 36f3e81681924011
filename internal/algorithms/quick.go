package algorithms

import "github.com/san-kum/sortlab/internal/engine"

type Quick struct{}

func NewQuick() *Quick { return &Quick{} }

func (q *Quick) Name() string { return "quick-sort" }

func (q *Quick) Sort(ops *engine.Ops) error {
	if err := q.sortRange(ops, 0, ops.Len()-1); err != nil {
		return err
	}
	return markAll(ops)
}

func (q *Quick) sortRange(ops *engine.Ops, lo, hi int) error {
	if lo > hi {
		return nil
	}
	if lo == hi {
		return ops.MarkSorted(lo)
	}
	if ops.Stopped() {
		return engine.ErrStopped
	}
	p, err := q.partition(ops, lo, hi)
	if err != nil {
		return err
	}
	// The pivot sits in its final slot before either side recurses.
	if err := ops.MarkSorted(p); err != nil {
		return err
	}
	if err := q.sortRange(ops, lo, p-1); err != nil {
		return err
	}
	return q.sortRange(ops, p+1, hi)
}

// partition is the Lomuto scheme with the last element as pivot.
func (q *Quick) partition(ops *engine.Ops, lo, hi int) (int, error) {
	if err := ops.Highlight(engine.TagPivot, hi); err != nil {
		return 0, err
	}
	i := lo - 1
	for j := lo; j < hi; j++ {
		greater, err := ops.Compare(j, hi)
		if err != nil {
			return 0, err
		}
		if !greater {
			i++
			if i != j {
				if err := ops.Swap(i, j); err != nil {
					return 0, err
				}
			}
		}
	}
	dest := i + 1
	if dest != hi {
		if err := ops.Swap(dest, hi); err != nil {
			return 0, err
		}
	}
	return dest, nil
}
