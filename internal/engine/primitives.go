package engine

import "time"

// Ops exposes the step primitives of one run. Every primitive is a
// synchronization point: it aborts once the run is stopped, blocks while
// it is paused, performs its effect, and then delays according to the
// current speed. Algorithms never touch the working array outside these
// primitives, except through the plain read accessors.
type Ops struct {
	ctl *Controller
	run *runState
}

// Len returns the length of the working array.
func (o *Ops) Len() int { return len(o.run.arr) }

// Value reads one element without passing through a synchronization point.
// Merge, counting and radix sort use it to fill temporary buffers; the
// write-back goes through Set.
func (o *Ops) Value(i int) int { return o.run.arr[i] }

// Values returns a copy of the working array.
func (o *Ops) Values() []int {
	o.run.arrMu.Lock()
	defer o.run.arrMu.Unlock()
	return append([]int(nil), o.run.arr...)
}

// Stopped reports whether cancellation was requested. Sequences check it
// at loop boundaries and return ErrStopped.
func (o *Ops) Stopped() bool { return o.run.stopped.Load() }

// gate blocks while the run is paused and aborts once it is stopped. This
// is the only place pause is enforced.
func (o *Ops) gate() error {
	for {
		if o.run.stopped.Load() {
			return ErrStopped
		}
		if !o.run.paused.Load() {
			return nil
		}
		if err := o.sleep(pollInterval); err != nil {
			return err
		}
	}
}

// sleep waits for d or until the run is stopped, whichever comes first.
func (o *Ops) sleep(d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-o.run.stopCh:
		return ErrStopped
	}
}

func (o *Ops) delay() error {
	if o.run.instant {
		return nil
	}
	return o.sleep(DelayFor(int(o.ctl.speed.Load())))
}

func (o *Ops) awaitStep() error {
	select {
	case <-o.run.stepCh:
		return nil
	case <-o.run.stopCh:
		return ErrStopped
	}
}

func (o *Ops) emit(s Step) {
	o.run.steps.Add(1)
	c := o.ctl
	c.mu.Lock()
	obs := append([]Observer(nil), c.observers...)
	c.mu.Unlock()
	if len(obs) == 0 {
		return
	}
	st := c.State()
	for _, ob := range obs {
		ob.OnStep(s, st)
	}
}

// Compare reports whether element i is greater than element j.
func (o *Ops) Compare(i, j int) (bool, error) {
	if err := o.gate(); err != nil {
		return false, err
	}
	return o.compareVals(o.run.arr[i], o.run.arr[j], i, j)
}

// CompareValues reports whether a is greater than b, attributing the
// comparison to positions i and j on screen. Merge sort compares the heads
// of copied halves whose original slots may already have been overwritten
// in place.
func (o *Ops) CompareValues(a, b, i, j int) (bool, error) {
	if err := o.gate(); err != nil {
		return false, err
	}
	return o.compareVals(a, b, i, j)
}

func (o *Ops) compareVals(a, b, i, j int) (bool, error) {
	o.run.mon.AddComparisons(1)
	o.run.mon.AddAccesses(2)
	safeRender(o.ctl.renderer, func(r Renderer) {
		r.SetElementState(i, TagComparing)
		r.SetElementState(j, TagComparing)
	})
	o.emit(Step{Op: OpCompare, Indices: []int{i, j}})
	if err := o.delay(); err != nil {
		return false, err
	}
	// Only comparisons await an explicit step signal; the number of manual
	// steps needed to finish a run equals its comparison count.
	if o.run.mode == ModeStep {
		if err := o.awaitStep(); err != nil {
			return false, err
		}
	}
	safeRender(o.ctl.renderer, func(r Renderer) {
		r.SetElementState(i, TagDefault)
		r.SetElementState(j, TagDefault)
	})
	return a > b, nil
}

// Swap exchanges elements i and j in place.
func (o *Ops) Swap(i, j int) error {
	if err := o.gate(); err != nil {
		return err
	}
	o.run.arrMu.Lock()
	o.run.arr[i], o.run.arr[j] = o.run.arr[j], o.run.arr[i]
	o.run.arrMu.Unlock()
	o.run.mon.AddSwaps(1)
	o.run.mon.AddAccesses(4)
	safeRender(o.ctl.renderer, func(r Renderer) {
		r.SetElementState(i, TagSwapping)
		r.SetElementState(j, TagSwapping)
		r.SwapElements(i, j)
	})
	o.emit(Step{Op: OpSwap, Indices: []int{i, j}})
	if err := o.delay(); err != nil {
		return err
	}
	safeRender(o.ctl.renderer, func(r Renderer) {
		r.SetElementState(i, TagDefault)
		r.SetElementState(j, TagDefault)
	})
	return nil
}

// Set overwrites element i with value.
func (o *Ops) Set(i, value int) error {
	if err := o.gate(); err != nil {
		return err
	}
	o.run.arrMu.Lock()
	o.run.arr[i] = value
	o.run.arrMu.Unlock()
	o.run.mon.AddAccesses(2)
	safeRender(o.ctl.renderer, func(r Renderer) {
		r.WriteElement(i, value)
	})
	o.emit(Step{Op: OpSet, Indices: []int{i}, Value: value})
	return o.delay()
}

// Highlight tags elements without mutating or counting anything.
func (o *Ops) Highlight(tag Tag, indices ...int) error {
	if err := o.gate(); err != nil {
		return err
	}
	idx := append([]int(nil), indices...)
	safeRender(o.ctl.renderer, func(r Renderer) {
		for _, i := range idx {
			r.SetElementState(i, tag)
		}
	})
	o.emit(Step{Op: OpHighlight, Indices: idx, Tag: tag})
	return o.delay()
}

// MarkSorted tags elements as settled into their final position. It delays
// for a quarter of the normal speed delay.
func (o *Ops) MarkSorted(indices ...int) error {
	if err := o.gate(); err != nil {
		return err
	}
	idx := append([]int(nil), indices...)
	for _, i := range idx {
		if !o.run.sorted[i] {
			o.run.sorted[i] = true
			o.run.sortedN.Add(1)
		}
	}
	safeRender(o.ctl.renderer, func(r Renderer) {
		for _, i := range idx {
			r.SetElementState(i, TagSorted)
		}
	})
	o.emit(Step{Op: OpSorted, Indices: idx})
	if o.run.instant {
		return nil
	}
	return o.sleep(DelayFor(int(o.ctl.speed.Load())) / sortedDelayDiv)
}
