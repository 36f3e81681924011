// Package arrays generates deterministic input arrays for sorting runs.
package arrays

import (
	"fmt"
	"math/rand"
)

const (
	KindRandom       = "random"
	KindSorted       = "sorted"
	KindReversed     = "reversed"
	KindNearlySorted = "nearly-sorted"
	KindFewUnique    = "few-unique"
)

// Kinds lists the supported generation kinds.
func Kinds() []string {
	return []string{KindRandom, KindSorted, KindReversed, KindNearlySorted, KindFewUnique}
}

// Generate builds an input array of the given kind. The same kind, size
// and seed always produce the same array.
func Generate(kind string, size int, seed int64) ([]int, error) {
	if size <= 0 {
		return nil, fmt.Errorf("arrays: size must be positive, got %d", size)
	}
	rng := rand.New(rand.NewSource(seed))

	switch kind {
	case KindRandom, "":
		out := make([]int, size)
		for i := range out {
			out[i] = rng.Intn(size) + 1
		}
		return out, nil

	case KindSorted:
		out := make([]int, size)
		for i := range out {
			out[i] = i + 1
		}
		return out, nil

	case KindReversed:
		out := make([]int, size)
		for i := range out {
			out[i] = size - i
		}
		return out, nil

	case KindNearlySorted:
		out := make([]int, size)
		for i := range out {
			out[i] = i + 1
		}
		// Disturb roughly a tenth of the positions.
		swaps := size / 10
		if swaps < 1 {
			swaps = 1
		}
		for s := 0; s < swaps; s++ {
			i, j := rng.Intn(size), rng.Intn(size)
			out[i], out[j] = out[j], out[i]
		}
		return out, nil

	case KindFewUnique:
		levels := 5
		if size < levels {
			levels = size
		}
		out := make([]int, size)
		for i := range out {
			out[i] = (rng.Intn(levels) + 1) * (size / levels)
		}
		return out, nil

	default:
		return nil, fmt.Errorf("arrays: unknown kind: %s", kind)
	}
}
