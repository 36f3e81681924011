package engine

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/san-kum/sortlab/internal/metrics"
)

// Controller owns run state and drives one sorting step sequence at a
// time. Construct it explicitly; there is no shared global instance.
type Controller struct {
	reg      Registry
	renderer Renderer

	mu        sync.Mutex
	observers []Observer
	run       *runState

	speed atomic.Int32
}

// runState is created fresh on every Run call and never reused.
type runState struct {
	name    string
	mode    Mode
	instant bool

	arrMu  sync.Mutex
	arr    []int
	sorted []bool

	sortedN   atomic.Int64
	steps     atomic.Int64
	paused    atomic.Bool
	stopped   atomic.Bool
	running   atomic.Bool
	completed atomic.Bool

	mon *metrics.Monitor

	stopOnce sync.Once
	stopCh   chan struct{}
	stepCh   chan struct{}
	done     chan struct{}
}

func (r *runState) stop() {
	r.stopOnce.Do(func() {
		r.stopped.Store(true)
		close(r.stopCh)
	})
}

// NewController builds a controller over a registry of algorithms. A nil
// renderer runs headless.
func NewController(reg Registry, renderer Renderer) *Controller {
	if renderer == nil {
		renderer = NullRenderer{}
	}
	c := &Controller{reg: reg, renderer: renderer}
	c.speed.Store(5)
	return c
}

// AddObserver registers o for step notifications on subsequent runs.
func (c *Controller) AddObserver(o Observer) {
	c.mu.Lock()
	c.observers = append(c.observers, o)
	c.mu.Unlock()
}

// Algorithms lists the names the controller can run.
func (c *Controller) Algorithms() []string {
	names := c.reg.Names()
	sort.Strings(names)
	return names
}

// Run validates name and config, cancels any in-flight run, then drives
// the step sequence to completion or cancellation. Configuration errors
// are returned synchronously with no state mutation. A stopped run is not
// an error: the Result carries Success=false and a nil Err.
func (c *Controller) Run(ctx context.Context, name string, cfg Config) (*Result, error) {
	algo, err := c.reg.Get(name)
	if err != nil {
		return nil, err
	}
	if err := validateInput(cfg.Input); err != nil {
		return nil, err
	}
	if cfg.Mode == "" {
		cfg.Mode = ModeContinuous
	}

	// A new run implicitly cancels any in-flight run before starting.
	c.mu.Lock()
	prev := c.run
	c.mu.Unlock()
	if prev != nil {
		if prev.running.Load() {
			prev.stop()
		}
		<-prev.done
	}

	arr := append([]int(nil), cfg.Input...)
	r := &runState{
		name:    name,
		mode:    cfg.Mode,
		instant: cfg.Instant,
		arr:     arr,
		sorted:  make([]bool, len(arr)),
		mon:     metrics.NewMonitor(),
		stopCh:  make(chan struct{}),
		stepCh:  make(chan struct{}),
		done:    make(chan struct{}),
	}
	r.running.Store(true)

	c.mu.Lock()
	c.run = r
	c.mu.Unlock()
	c.speed.Store(int32(ClampSpeed(cfg.Speed)))

	if ctx == nil {
		ctx = context.Background()
	}
	go func() {
		select {
		case <-ctx.Done():
			r.stop()
		case <-r.done:
		}
	}()

	safeRender(c.renderer, func(rd Renderer) { rd.Initialize(cfg.Input) })
	r.mon.Start()

	ops := &Ops{ctl: c, run: r}
	runErr := runSequence(algo, ops)

	r.mon.Stop()
	r.running.Store(false)

	snap := r.mon.Snapshot()
	res := &Result{
		Algorithm:   name,
		Comparisons: snap.Comparisons,
		Swaps:       snap.Swaps,
		Accesses:    snap.Accesses,
		Elapsed:     snap.Elapsed,
	}
	r.arrMu.Lock()
	res.Final = append([]int(nil), r.arr...)
	r.arrMu.Unlock()

	switch {
	case errors.Is(runErr, ErrStopped):
		// Cancellation completes the run without an error.
	case runErr != nil:
		res.Err = runErr
	default:
		res.Success = true
		r.completed.Store(true)
		ops.emit(Step{Op: OpComplete})
	}

	close(r.done)
	return res, nil
}

// runSequence recovers panics at the controller boundary so an unexpected
// fault inside a sequence becomes a failed Result, never a crash.
func runSequence(algo Algorithm, ops *Ops) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("engine: %s panicked: %v", algo.Name(), p)
		}
	}()
	return algo.Sort(ops)
}

func (c *Controller) current() *runState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.run
}

// Pause suspends the run at its next primitive. No effect if not running.
func (c *Controller) Pause() {
	if r := c.current(); r != nil && r.running.Load() && !r.stopped.Load() {
		r.paused.Store(true)
	}
}

// Resume clears the paused flag.
func (c *Controller) Resume() {
	if r := c.current(); r != nil {
		r.paused.Store(false)
	}
}

// Stop cancels the in-flight run. Primitives observe it within one poll
// interval, even while paused or mid-delay. Calling Stop after a run has
// completed is a no-op.
func (c *Controller) Stop() {
	if r := c.current(); r != nil && r.running.Load() {
		r.stop()
	}
}

// Step releases exactly one pending step-mode suspension. A no-op when no
// comparison is waiting.
func (c *Controller) Step() {
	r := c.current()
	if r == nil {
		return
	}
	select {
	case r.stepCh <- struct{}{}:
	default:
	}
}

// SetSpeed changes the speed used by subsequent primitive delays.
func (c *Controller) SetSpeed(n int) {
	c.speed.Store(int32(ClampSpeed(n)))
}

// Speed returns the current speed setting.
func (c *Controller) Speed() int {
	return int(c.speed.Load())
}

// State returns a point-in-time snapshot of the current (or most recent)
// run.
func (c *Controller) State() State {
	r := c.current()
	if r == nil {
		return State{}
	}
	snap := r.mon.Snapshot()
	st := State{
		Algorithm:   r.name,
		Running:     r.running.Load(),
		Paused:      r.paused.Load(),
		Stopped:     r.stopped.Load(),
		Comparisons: snap.Comparisons,
		Swaps:       snap.Swaps,
		Accesses:    snap.Accesses,
		Elapsed:     snap.Elapsed,
		Step:        r.steps.Load(),
	}
	r.arrMu.Lock()
	st.Array = append([]int(nil), r.arr...)
	r.arrMu.Unlock()
	if n := len(st.Array); n > 0 {
		st.Progress = 100 * float64(r.sortedN.Load()) / float64(n)
	}
	if r.completed.Load() {
		st.Progress = 100
	}
	return st
}
