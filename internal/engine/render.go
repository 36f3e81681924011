package engine

// Renderer reflects per-element visual state to a display backend. The
// engine calls it from the single execution path only and tolerates a
// failing or torn-down sink: faults are swallowed at the call site and
// never abort a run.
type Renderer interface {
	Initialize(values []int)
	SetElementState(i int, tag Tag)
	WriteElement(i, value int)
	SwapElements(i, j int)
	Reset()
}

// NullRenderer discards every call.
type NullRenderer struct{}

func (NullRenderer) Initialize([]int)         {}
func (NullRenderer) SetElementState(int, Tag) {}
func (NullRenderer) WriteElement(int, int)    {}
func (NullRenderer) SwapElements(int, int)    {}
func (NullRenderer) Reset()                   {}

// safeRender shields the run from a failing display backend.
func safeRender(r Renderer, fn func(Renderer)) {
	if r == nil {
		return
	}
	defer func() { _ = recover() }()
	fn(r)
}
