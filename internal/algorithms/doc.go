// Package algorithms provides the sorting step sequences the engine can
// drive.
//
// Each algorithm implements the [engine.Algorithm] interface, expressing
// the sort entirely through step primitives:
//
//   - [Bubble]: adjacent passes with early exit on a clean pass
//   - [Selection]: running-minimum scan, at most one swap per pass
//   - [Insertion]: rightward shifts expressed as single-position swaps
//   - [Merge]: recursive divide and conquer, writes via set only
//   - [Quick]: Lomuto partition with last-element pivot
//   - [Heap]: max-heap build, then repeated root extraction
//   - [Counting]: value-range counting array, no swaps
//   - [Radix]: least-significant-digit base 10, no swaps
//   - [Shell]: gapped insertion over the n/2, n/4, ..., 1 sequence
//
// Use [NewRegistry] to resolve algorithms by name:
//
//	reg := algorithms.NewRegistry()
//	ctl := engine.NewController(reg, renderer)
package algorithms
