// Package viz provides the interactive Bubble Tea view of a sorting run.
//
// The view implements the engine's renderer contract behind a mutex and
// redraws on a fixed tick, so the engine's execution path never blocks on
// the terminal. Keys: space pauses and resumes, n releases one step-mode
// comparison, + and - change speed, r restarts, q quits.
package viz
