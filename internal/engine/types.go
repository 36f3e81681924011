package engine

import (
	"fmt"
	"math"
	"time"
)

// Tag classifies the visual state of an array element.
type Tag int

const (
	TagDefault Tag = iota
	TagComparing
	TagSwapping
	TagPivot
	TagMin
	TagMax
	TagSorted
)

func (t Tag) String() string {
	switch t {
	case TagDefault:
		return "default"
	case TagComparing:
		return "comparing"
	case TagSwapping:
		return "swapping"
	case TagPivot:
		return "pivot"
	case TagMin:
		return "min"
	case TagMax:
		return "max"
	case TagSorted:
		return "sorted"
	default:
		return fmt.Sprintf("tag(%d)", int(t))
	}
}

// Op identifies the kind of a step descriptor.
type Op int

const (
	OpCompare Op = iota
	OpSwap
	OpSet
	OpHighlight
	OpSorted
	OpComplete
)

func (o Op) String() string {
	switch o {
	case OpCompare:
		return "compare"
	case OpSwap:
		return "swap"
	case OpSet:
		return "set"
	case OpHighlight:
		return "highlight"
	case OpSorted:
		return "sorted"
	case OpComplete:
		return "complete"
	default:
		return fmt.Sprintf("op(%d)", int(o))
	}
}

// Step describes one observable event in a sorting run. Steps are emitted
// for consumption by observers; no consumer is required to act on every
// descriptor.
type Step struct {
	Op      Op
	Indices []int
	Value   int
	Tag     Tag
}

// Mode selects how a run advances past comparisons.
type Mode string

const (
	ModeContinuous Mode = "continuous"
	ModeStep       Mode = "step"
)

// MaxArrayLen bounds the accepted input size.
const MaxArrayLen = 10000

// Config holds the immutable parameters of one run.
type Config struct {
	Speed int
	Mode  Mode
	Input []int

	// Instant skips the per-primitive speed delays. Pause, stop and
	// step-mode waits are still enforced. Used by benchmarks and tests.
	Instant bool
}

func DefaultConfig() Config {
	return Config{Speed: 5, Mode: ModeContinuous}
}

// Result summarizes a finished or cancelled run.
type Result struct {
	Algorithm   string
	Success     bool
	Final       []int
	Comparisons int64
	Swaps       int64
	Accesses    int64
	Elapsed     time.Duration
	Err         error
}

// State is a point-in-time snapshot of the engine.
type State struct {
	Algorithm   string
	Running     bool
	Paused      bool
	Stopped     bool
	Array       []int
	Comparisons int64
	Swaps       int64
	Accesses    int64
	Elapsed     time.Duration
	Step        int64
	Progress    float64
}

// Algorithm is a sorting step sequence. Sort must perform all array access
// through the primitives on ops and must propagate any error they return.
type Algorithm interface {
	Name() string
	Sort(ops *Ops) error
}

// Registry resolves algorithm names.
type Registry interface {
	Get(name string) (Algorithm, error)
	Names() []string
}

// Observer receives every step descriptor together with the engine state
// at the time of emission.
type Observer interface {
	OnStep(step Step, state State)
}

// FromFloats converts caller-supplied numeric input into working values.
// NaN, infinite and fractional values are rejected.
func FromFloats(values []float64) ([]int, error) {
	out := make([]int, len(values))
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: non-finite value at index %d", ErrInvalidArray, i)
		}
		if v != math.Trunc(v) {
			return nil, fmt.Errorf("%w: non-integer value %v at index %d", ErrInvalidArray, v, i)
		}
		out[i] = int(v)
	}
	return out, nil
}

func validateInput(input []int) error {
	if len(input) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidArray)
	}
	if len(input) > MaxArrayLen {
		return fmt.Errorf("%w: length %d exceeds maximum %d", ErrInvalidArray, len(input), MaxArrayLen)
	}
	return nil
}
