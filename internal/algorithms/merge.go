package algorithms

import "github.com/san-kum/sortlab/internal/engine"

type Merge struct{}

func NewMerge() *Merge { return &Merge{} }

func (m *Merge) Name() string { return "merge-sort" }

func (m *Merge) Sort(ops *engine.Ops) error {
	if err := m.sortRange(ops, 0, ops.Len()-1); err != nil {
		return err
	}
	return markAll(ops)
}

func (m *Merge) sortRange(ops *engine.Ops, lo, hi int) error {
	if lo >= hi {
		return nil
	}
	if ops.Stopped() {
		return engine.ErrStopped
	}
	mid := lo + (hi-lo)/2
	if err := m.sortRange(ops, lo, mid); err != nil {
		return err
	}
	if err := m.sortRange(ops, mid+1, hi); err != nil {
		return err
	}
	return m.merge(ops, lo, mid, hi)
}

func (m *Merge) merge(ops *engine.Ops, lo, mid, hi int) error {
	span := make([]int, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		span = append(span, i)
	}
	if err := ops.Highlight(engine.TagComparing, span...); err != nil {
		return err
	}

	left := make([]int, 0, mid-lo+1)
	for i := lo; i <= mid; i++ {
		left = append(left, ops.Value(i))
	}
	right := make([]int, 0, hi-mid)
	for i := mid + 1; i <= hi; i++ {
		right = append(right, ops.Value(i))
	}

	i, j, k := 0, 0, lo
	for i < len(left) && j < len(right) {
		greater, err := ops.CompareValues(left[i], right[j], lo+i, mid+1+j)
		if err != nil {
			return err
		}
		if greater {
			if err := ops.Set(k, right[j]); err != nil {
				return err
			}
			j++
		} else {
			// Ties take the left half, keeping the sort stable.
			if err := ops.Set(k, left[i]); err != nil {
				return err
			}
			i++
		}
		k++
	}
	for ; i < len(left); i++ {
		if err := ops.Set(k, left[i]); err != nil {
			return err
		}
		k++
	}
	for ; j < len(right); j++ {
		if err := ops.Set(k, right[j]); err != nil {
			return err
		}
		k++
	}

	return ops.Highlight(engine.TagDefault, span...)
}
