package engine

import (
	"context"
	"sync"
)

// Ensemble runs the same algorithm over many inputs in parallel, one
// controller per run, in instant mode. Used for benchmarking counter
// statistics across seeds.
type Ensemble struct {
	reg Registry
}

func NewEnsemble(reg Registry) *Ensemble {
	return &Ensemble{reg: reg}
}

func (e *Ensemble) Run(ctx context.Context, name string, inputs [][]int) ([]*Result, error) {
	results := make([]*Result, len(inputs))
	errs := make([]error, len(inputs))

	var wg sync.WaitGroup
	for i, input := range inputs {
		wg.Add(1)
		go func(idx int, input []int) {
			defer wg.Done()

			ctl := NewController(e.reg, nil)
			cfg := Config{Speed: 10, Mode: ModeContinuous, Input: input, Instant: true}
			results[idx], errs[idx] = ctl.Run(ctx, name, cfg)
		}(i, input)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
