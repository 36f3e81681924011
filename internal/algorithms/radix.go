package algorithms

import "github.com/san-kum/sortlab/internal/engine"

type Radix struct{}

func NewRadix() *Radix { return &Radix{} }

func (r *Radix) Name() string { return "radix-sort" }

// Sort is least-significant-digit radix sort in base 10, looping while the
// value span still has digits left at the current exponent. Digits are
// taken from v-min so negative values order correctly. No swaps.
func (r *Radix) Sort(ops *engine.Ops) error {
	min, max := bounds(ops)
	span := max - min

	for exp := 1; span/exp > 0; exp *= 10 {
		if ops.Stopped() {
			return engine.ErrStopped
		}
		if err := r.pass(ops, min, exp); err != nil {
			return err
		}
	}
	return markAll(ops)
}

func (r *Radix) pass(ops *engine.Ops, min, exp int) error {
	n := ops.Len()
	output := make([]int, n)
	var counts [10]int

	for i := 0; i < n; i++ {
		if err := ops.Highlight(engine.TagComparing, i); err != nil {
			return err
		}
		counts[((ops.Value(i)-min)/exp)%10]++
		if err := ops.Highlight(engine.TagDefault, i); err != nil {
			return err
		}
	}
	for d := 1; d < 10; d++ {
		counts[d] += counts[d-1]
	}
	// Walk backwards so equal digits keep their order.
	for i := n - 1; i >= 0; i-- {
		v := ops.Value(i)
		d := ((v - min) / exp) % 10
		counts[d]--
		output[counts[d]] = v
	}

	for i := 0; i < n; i++ {
		if err := ops.Set(i, output[i]); err != nil {
			return err
		}
	}
	return nil
}
