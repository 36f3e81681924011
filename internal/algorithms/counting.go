package algorithms

import "github.com/san-kum/sortlab/internal/engine"

type Counting struct{}

func NewCounting() *Counting { return &Counting{} }

func (c *Counting) Name() string { return "counting-sort" }

// Sort counts occurrences over the value range and writes the ordered
// values back via set; it never swaps. Values are offset by the minimum so
// negative inputs index the counting array correctly.
func (c *Counting) Sort(ops *engine.Ops) error {
	n := ops.Len()
	min, max := bounds(ops)

	counts := make([]int, max-min+1)
	for i := 0; i < n; i++ {
		if err := ops.Highlight(engine.TagComparing, i); err != nil {
			return err
		}
		counts[ops.Value(i)-min]++
		if err := ops.Highlight(engine.TagDefault, i); err != nil {
			return err
		}
	}

	idx := 0
	for v, cnt := range counts {
		for ; cnt > 0; cnt-- {
			if ops.Stopped() {
				return engine.ErrStopped
			}
			if err := ops.Set(idx, v+min); err != nil {
				return err
			}
			idx++
		}
	}
	return markAll(ops)
}

func bounds(ops *engine.Ops) (min, max int) {
	min, max = ops.Value(0), ops.Value(0)
	for i := 1; i < ops.Len(); i++ {
		v := ops.Value(i)
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}
