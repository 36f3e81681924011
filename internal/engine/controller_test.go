package engine

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

type fnAlgo struct {
	name string
	fn   func(ops *Ops) error
}

func (a fnAlgo) Name() string        { return a.name }
func (a fnAlgo) Sort(ops *Ops) error { return a.fn(ops) }

type fnRegistry map[string]Algorithm

func (r fnRegistry) Get(name string) (Algorithm, error) {
	a, ok := r[name]
	if !ok {
		return nil, ErrUnknownAlgorithm
	}
	return a, nil
}

func (r fnRegistry) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	return names
}

// bubbleFn is a minimal working sequence used to exercise the controller.
func bubbleFn(ops *Ops) error {
	n := ops.Len()
	for i := 0; i < n-1; i++ {
		for j := 0; j < n-1-i; j++ {
			greater, err := ops.Compare(j, j+1)
			if err != nil {
				return err
			}
			if greater {
				if err := ops.Swap(j, j+1); err != nil {
					return err
				}
			}
		}
		if err := ops.MarkSorted(n - 1 - i); err != nil {
			return err
		}
	}
	return ops.MarkSorted(0)
}

// spinFn compares forever until the run is cancelled.
func spinFn(ops *Ops) error {
	for {
		if _, err := ops.Compare(0, 1); err != nil {
			return err
		}
	}
}

func newTestController(algos ...Algorithm) *Controller {
	reg := fnRegistry{}
	for _, a := range algos {
		reg[a.Name()] = a
	}
	return NewController(reg, nil)
}

func instantCfg(input []int) Config {
	return Config{Speed: 10, Mode: ModeContinuous, Input: input, Instant: true}
}

func TestRunUnknownAlgorithm(t *testing.T) {
	ctl := newTestController()
	_, err := ctl.Run(context.Background(), "nope", instantCfg([]int{1}))
	if !errors.Is(err, ErrUnknownAlgorithm) {
		t.Fatalf("expected ErrUnknownAlgorithm, got %v", err)
	}
}

func TestRunInvalidInput(t *testing.T) {
	ctl := newTestController(fnAlgo{"bubble", bubbleFn})

	_, err := ctl.Run(context.Background(), "bubble", instantCfg(nil))
	if !errors.Is(err, ErrInvalidArray) {
		t.Fatalf("empty input: expected ErrInvalidArray, got %v", err)
	}

	_, err = ctl.Run(context.Background(), "bubble", instantCfg(make([]int, MaxArrayLen+1)))
	if !errors.Is(err, ErrInvalidArray) {
		t.Fatalf("oversized input: expected ErrInvalidArray, got %v", err)
	}
}

func TestRunCompletes(t *testing.T) {
	ctl := newTestController(fnAlgo{"bubble", bubbleFn})
	input := []int{5, 2, 8, 1, 9}

	res, err := ctl.Run(context.Background(), "bubble", instantCfg(input))
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !res.Success {
		t.Error("expected success")
	}
	if res.Err != nil {
		t.Errorf("unexpected result error: %v", res.Err)
	}
	want := []int{1, 2, 5, 8, 9}
	for i := range want {
		if res.Final[i] != want[i] {
			t.Errorf("final[%d] = %d, want %d", i, res.Final[i], want[i])
		}
	}
	// Input must not be mutated in place.
	if input[0] != 5 {
		t.Error("caller input was mutated")
	}
	if res.Comparisons == 0 || res.Accesses == 0 {
		t.Errorf("counters not recorded: %+v", res)
	}
}

func TestRunSingleElement(t *testing.T) {
	ctl := newTestController(fnAlgo{"bubble", bubbleFn})
	res, err := ctl.Run(context.Background(), "bubble", instantCfg([]int{7}))
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !res.Success {
		t.Error("expected success")
	}
	if res.Comparisons != 0 {
		t.Errorf("expected 0 comparisons, got %d", res.Comparisons)
	}
}

func TestStopMidRun(t *testing.T) {
	ctl := newTestController(fnAlgo{"spin", spinFn})

	done := make(chan *Result, 1)
	go func() {
		res, err := ctl.Run(context.Background(), "spin", instantCfg([]int{2, 1}))
		if err != nil {
			t.Errorf("run returned error: %v", err)
		}
		done <- res
	}()

	time.Sleep(20 * time.Millisecond)
	ctl.Stop()

	select {
	case res := <-done:
		if res.Success {
			t.Error("stopped run must not report success")
		}
		if res.Err != nil {
			t.Errorf("stopped run must carry a nil error, got %v", res.Err)
		}
	case <-time.After(2 * pollInterval):
		t.Fatal("stop was not observed within the poll bound")
	}
}

func TestStopWhileDelayed(t *testing.T) {
	ctl := newTestController(fnAlgo{"spin", spinFn})

	cfg := Config{Speed: 1, Mode: ModeContinuous, Input: []int{2, 1}} // 1s delays
	done := make(chan *Result, 1)
	start := time.Now()
	go func() {
		res, _ := ctl.Run(context.Background(), "spin", cfg)
		done <- res
	}()

	time.Sleep(20 * time.Millisecond)
	ctl.Stop()

	select {
	case res := <-done:
		if elapsed := time.Since(start); elapsed > 500*time.Millisecond {
			t.Errorf("stop during a 1s delay took %v", elapsed)
		}
		if res.Success {
			t.Error("stopped run must not report success")
		}
	case <-time.After(time.Second):
		t.Fatal("stop did not interrupt the delay")
	}
}

func TestStopAfterCompletionIsNoop(t *testing.T) {
	ctl := newTestController(fnAlgo{"bubble", bubbleFn})
	res, err := ctl.Run(context.Background(), "bubble", instantCfg([]int{3, 1, 2}))
	if err != nil || !res.Success {
		t.Fatalf("run failed: %v %+v", err, res)
	}
	ctl.Stop()
	ctl.Stop()
	if st := ctl.State(); st.Stopped {
		t.Error("stop after completion must not flag the run as stopped")
	}
}

func TestPauseResume(t *testing.T) {
	ctl := newTestController(fnAlgo{"bubble", bubbleFn})

	done := make(chan *Result, 1)
	go func() {
		res, _ := ctl.Run(context.Background(), "bubble",
			Config{Speed: 9, Mode: ModeContinuous, Input: []int{4, 3, 2, 1}})
		done <- res
	}()

	time.Sleep(20 * time.Millisecond)
	ctl.Pause()
	time.Sleep(2 * pollInterval)
	if st := ctl.State(); !st.Paused {
		t.Error("expected paused state")
	}

	before := ctl.State().Comparisons
	time.Sleep(3 * pollInterval)
	if after := ctl.State().Comparisons; after != before {
		t.Errorf("comparisons advanced while paused: %d -> %d", before, after)
	}

	ctl.Resume()
	select {
	case res := <-done:
		if !res.Success {
			t.Errorf("run failed after resume: %+v", res)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("run did not finish after resume")
	}
}

func TestStopWhilePaused(t *testing.T) {
	ctl := newTestController(fnAlgo{"spin", spinFn})

	done := make(chan *Result, 1)
	go func() {
		res, _ := ctl.Run(context.Background(), "spin", instantCfg([]int{2, 1}))
		done <- res
	}()

	time.Sleep(20 * time.Millisecond)
	ctl.Pause()
	time.Sleep(20 * time.Millisecond)
	ctl.Stop()

	select {
	case res := <-done:
		if res.Success {
			t.Error("expected unsuccessful result")
		}
	case <-time.After(3 * pollInterval):
		t.Fatal("stop was not observed while paused")
	}
}

func TestStepModeAdvancesPerComparison(t *testing.T) {
	const comparisons = 5
	algo := fnAlgo{"fixed", func(ops *Ops) error {
		for k := 0; k < comparisons; k++ {
			if _, err := ops.Compare(0, 1); err != nil {
				return err
			}
		}
		return ops.MarkSorted(0, 1)
	}}
	ctl := newTestController(algo)

	done := make(chan *Result, 1)
	go func() {
		res, _ := ctl.Run(context.Background(), "fixed",
			Config{Speed: 10, Mode: ModeStep, Input: []int{1, 2}, Instant: true})
		done <- res
	}()

	pumped := 0
	for {
		select {
		case res := <-done:
			if !res.Success {
				t.Fatalf("run failed: %+v", res)
			}
			if res.Comparisons != comparisons {
				t.Errorf("comparisons = %d, want %d", res.Comparisons, comparisons)
			}
			if pumped < comparisons {
				t.Errorf("run finished after %d step signals, want at least %d", pumped, comparisons)
			}
			return
		default:
		}
		ctl.Step()
		pumped++
		time.Sleep(time.Millisecond)
		if pumped > 10000 {
			t.Fatal("run did not finish under step pumping")
		}
	}
}

func TestStepModeBlocksWithoutSignal(t *testing.T) {
	ctl := newTestController(fnAlgo{"spin", spinFn})

	done := make(chan *Result, 1)
	go func() {
		res, _ := ctl.Run(context.Background(), "spin",
			Config{Speed: 10, Mode: ModeStep, Input: []int{2, 1}, Instant: true})
		done <- res
	}()

	select {
	case <-done:
		t.Fatal("step-mode run advanced without step signals")
	case <-time.After(100 * time.Millisecond):
	}

	ctl.Stop()
	select {
	case res := <-done:
		if res.Success {
			t.Error("expected unsuccessful result")
		}
	case <-time.After(time.Second):
		t.Fatal("stop did not release the step wait")
	}
}

func TestPanicBecomesFailedResult(t *testing.T) {
	ctl := newTestController(fnAlgo{"boom", func(ops *Ops) error {
		panic("exploded")
	}})

	res, err := ctl.Run(context.Background(), "boom", instantCfg([]int{1, 2}))
	if err != nil {
		t.Fatalf("run returned error: %v", err)
	}
	if res.Success {
		t.Error("panicked run must not report success")
	}
	if res.Err == nil || !strings.Contains(res.Err.Error(), "panicked") {
		t.Errorf("expected panic error in result, got %v", res.Err)
	}
}

func TestNewRunCancelsPrevious(t *testing.T) {
	ctl := newTestController(
		fnAlgo{"spin", spinFn},
		fnAlgo{"bubble", bubbleFn},
	)

	first := make(chan *Result, 1)
	go func() {
		res, _ := ctl.Run(context.Background(), "spin", instantCfg([]int{2, 1}))
		first <- res
	}()
	time.Sleep(20 * time.Millisecond)

	res, err := ctl.Run(context.Background(), "bubble", instantCfg([]int{3, 1, 2}))
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}
	if !res.Success {
		t.Errorf("second run unsuccessful: %+v", res)
	}

	select {
	case prev := <-first:
		if prev.Success {
			t.Error("cancelled first run must not report success")
		}
		if prev.Err != nil {
			t.Errorf("cancelled first run must carry a nil error, got %v", prev.Err)
		}
	case <-time.After(time.Second):
		t.Fatal("first run never returned")
	}
}

func TestContextCancellation(t *testing.T) {
	ctl := newTestController(fnAlgo{"spin", spinFn})
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan *Result, 1)
	go func() {
		res, _ := ctl.Run(ctx, "spin", instantCfg([]int{2, 1}))
		done <- res
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case res := <-done:
		if res.Success {
			t.Error("cancelled run must not report success")
		}
		if res.Err != nil {
			t.Errorf("cancelled run must carry a nil error, got %v", res.Err)
		}
	case <-time.After(2 * pollInterval):
		t.Fatal("context cancellation was not observed")
	}
}

type recordingObserver struct {
	steps  []Step
	states []State
}

func (r *recordingObserver) OnStep(step Step, state State) {
	r.steps = append(r.steps, step)
	r.states = append(r.states, state)
}

func TestObserverReceivesSteps(t *testing.T) {
	ctl := newTestController(fnAlgo{"bubble", bubbleFn})
	obs := &recordingObserver{}
	ctl.AddObserver(obs)

	res, err := ctl.Run(context.Background(), "bubble", instantCfg([]int{3, 1, 2}))
	if err != nil || !res.Success {
		t.Fatalf("run failed: %v %+v", err, res)
	}

	if len(obs.steps) == 0 {
		t.Fatal("observer received no steps")
	}
	last := obs.steps[len(obs.steps)-1]
	if last.Op != OpComplete {
		t.Errorf("last step op = %v, want complete", last.Op)
	}

	var compares, swaps int64
	for _, s := range obs.steps {
		switch s.Op {
		case OpCompare:
			compares++
		case OpSwap:
			swaps++
		}
	}
	if compares != res.Comparisons {
		t.Errorf("observed %d compare steps, result says %d", compares, res.Comparisons)
	}
	if swaps != res.Swaps {
		t.Errorf("observed %d swap steps, result says %d", swaps, res.Swaps)
	}
}

func TestProgressReachesFull(t *testing.T) {
	ctl := newTestController(fnAlgo{"bubble", bubbleFn})
	res, err := ctl.Run(context.Background(), "bubble", instantCfg([]int{4, 2, 3, 1}))
	if err != nil || !res.Success {
		t.Fatalf("run failed: %v %+v", err, res)
	}
	if st := ctl.State(); st.Progress != 100 {
		t.Errorf("progress = %v, want 100", st.Progress)
	}
}

func TestSetSpeedClamps(t *testing.T) {
	ctl := newTestController()
	ctl.SetSpeed(0)
	if got := ctl.Speed(); got != 1 {
		t.Errorf("speed = %d, want 1", got)
	}
	ctl.SetSpeed(99)
	if got := ctl.Speed(); got != 10 {
		t.Errorf("speed = %d, want 10", got)
	}
}

func TestStateBeforeAnyRun(t *testing.T) {
	ctl := newTestController()
	st := ctl.State()
	if st.Running || st.Algorithm != "" || len(st.Array) != 0 {
		t.Errorf("zero state expected, got %+v", st)
	}
	// Controls are safe with no run in flight.
	ctl.Pause()
	ctl.Resume()
	ctl.Stop()
	ctl.Step()
}
