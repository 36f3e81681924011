package engine

import "time"

// delayTable maps speed 1..10 to the per-primitive delay.
var delayTable = [...]time.Duration{
	1:  1000 * time.Millisecond,
	2:  800 * time.Millisecond,
	3:  600 * time.Millisecond,
	4:  400 * time.Millisecond,
	5:  250 * time.Millisecond,
	6:  150 * time.Millisecond,
	7:  100 * time.Millisecond,
	8:  50 * time.Millisecond,
	9:  25 * time.Millisecond,
	10: 10 * time.Millisecond,
}

const (
	// pollInterval bounds how long pause and stop can go unobserved.
	pollInterval = 100 * time.Millisecond

	// markSorted pauses for a quarter of the speed delay.
	sortedDelayDiv = 4
)

// ClampSpeed constrains n to the valid speed range [1,10].
func ClampSpeed(n int) int {
	if n < 1 {
		return 1
	}
	if n > 10 {
		return 10
	}
	return n
}

// DelayFor returns the per-primitive delay for a speed setting.
func DelayFor(speed int) time.Duration {
	return delayTable[ClampSpeed(speed)]
}
