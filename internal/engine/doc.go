// Package engine drives sorting algorithms step by step for animation.
//
// The package defines the fundamental types for cooperative, observable
// sorting runs:
//
//   - [Step]: one observable event in a sort (comparison, swap, write, ...)
//   - [Ops]: the step primitives an algorithm calls for all array access;
//     the only place where timing, pausing and cancellation are enforced
//   - [Algorithm]: a sorting step sequence expressed against [Ops]
//   - [Controller]: owns run state and exposes run/pause/resume/stop/step
//   - [Renderer]: sink reflecting per-element visual state
//
// # Example
//
//	reg := algorithms.NewRegistry()
//	ctl := engine.NewController(reg, nil)
//	result, _ := ctl.Run(ctx, "bubble-sort", engine.Config{Speed: 8, Input: data})
//
// # Thread Safety
//
// Run drives the sequence on the calling goroutine. Stop, Pause, Resume,
// Step, SetSpeed and State are safe to call from other goroutines while a
// run is in flight. Only one sequence runs at a time; a new Run cancels
// any in-flight run first.
package engine
