package algorithms

import (
	"fmt"

	"github.com/san-kum/sortlab/internal/engine"
)

// Registry resolves algorithm names to fresh sequence instances.
type Registry struct {
	algorithms map[string]func() engine.Algorithm
}

func NewRegistry() *Registry {
	r := &Registry{
		algorithms: make(map[string]func() engine.Algorithm),
	}

	r.algorithms["bubble-sort"] = func() engine.Algorithm { return NewBubble() }
	r.algorithms["selection-sort"] = func() engine.Algorithm { return NewSelection() }
	r.algorithms["insertion-sort"] = func() engine.Algorithm { return NewInsertion() }
	r.algorithms["merge-sort"] = func() engine.Algorithm { return NewMerge() }
	r.algorithms["quick-sort"] = func() engine.Algorithm { return NewQuick() }
	r.algorithms["heap-sort"] = func() engine.Algorithm { return NewHeap() }
	r.algorithms["counting-sort"] = func() engine.Algorithm { return NewCounting() }
	r.algorithms["radix-sort"] = func() engine.Algorithm { return NewRadix() }
	r.algorithms["shell-sort"] = func() engine.Algorithm { return NewShell() }

	return r
}

func (r *Registry) Get(name string) (engine.Algorithm, error) {
	fn, ok := r.algorithms[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", engine.ErrUnknownAlgorithm, name)
	}
	return fn(), nil
}

func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.algorithms))
	for name := range r.algorithms {
		names = append(names, name)
	}
	return names
}

// markAll tags every element sorted at once; algorithms that do not settle
// elements incrementally use it as their closing sweep.
func markAll(ops *engine.Ops) error {
	idx := make([]int, ops.Len())
	for i := range idx {
		idx[i] = i
	}
	return ops.MarkSorted(idx...)
}
