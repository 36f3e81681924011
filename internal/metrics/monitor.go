package metrics

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Monitor accumulates operation counters and wall-clock time for one run.
// A snapshot is valid whether or not the run has finished; elapsed time
// includes intervals spent paused.
type Monitor struct {
	mu          sync.Mutex
	comparisons int64
	swaps       int64
	accesses    int64
	started     time.Time
	stopped     time.Time
	running     bool
}

// Snapshot is a point-in-time copy of the monitor.
type Snapshot struct {
	Comparisons int64
	Swaps       int64
	Accesses    int64
	Elapsed     time.Duration
	Running     bool
}

func NewMonitor() *Monitor {
	return &Monitor{}
}

// Start resets the counters and begins timing.
func (m *Monitor) Start() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.comparisons = 0
	m.swaps = 0
	m.accesses = 0
	m.started = time.Now()
	m.stopped = time.Time{}
	m.running = true
}

// Stop freezes the timer. Counters keep their values.
func (m *Monitor) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.running {
		return
	}
	m.stopped = time.Now()
	m.running = false
}

func (m *Monitor) AddComparisons(n int64) {
	m.mu.Lock()
	m.comparisons += n
	m.mu.Unlock()
}

func (m *Monitor) AddSwaps(n int64) {
	m.mu.Lock()
	m.swaps += n
	m.mu.Unlock()
}

func (m *Monitor) AddAccesses(n int64) {
	m.mu.Lock()
	m.accesses += n
	m.mu.Unlock()
}

func (m *Monitor) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.comparisons = 0
	m.swaps = 0
	m.accesses = 0
	m.started = time.Time{}
	m.stopped = time.Time{}
	m.running = false
}

func (m *Monitor) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := Snapshot{
		Comparisons: m.comparisons,
		Swaps:       m.swaps,
		Accesses:    m.accesses,
		Running:     m.running,
	}
	switch {
	case m.started.IsZero():
	case m.running:
		s.Elapsed = time.Since(m.started)
	default:
		s.Elapsed = m.stopped.Sub(m.started)
	}
	return s
}

// Summary renders a human-readable one-line report.
func (m *Monitor) Summary() string {
	s := m.Snapshot()
	return fmt.Sprintf("comparisons: %s  swaps: %s  accesses: %s  time: %s",
		FormatCount(s.Comparisons), FormatCount(s.Swaps), FormatCount(s.Accesses),
		FormatDuration(s.Elapsed))
}

// FormatCount renders n with thousands separators.
func FormatCount(n int64) string {
	neg := n < 0
	if neg {
		n = -n
	}
	digits := fmt.Sprintf("%d", n)
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)
	out := strings.Join(groups, ",")
	if neg {
		out = "-" + out
	}
	return out
}

// FormatDuration renders d as ms, s or m-s depending on magnitude.
func FormatDuration(d time.Duration) string {
	switch {
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%.2fs", d.Seconds())
	default:
		mins := int(d.Minutes())
		secs := int(d.Seconds()) - mins*60
		return fmt.Sprintf("%dm %02ds", mins, secs)
	}
}
