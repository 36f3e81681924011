package viz

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/sortlab/internal/engine"
	"github.com/san-kum/sortlab/internal/metrics"
)

const frameRate = 30

type TickMsg time.Time

// doneMsg carries the run generation so a result from a cancelled run
// cannot clobber the status of its replacement after a restart.
type doneMsg struct {
	gen    int
	result *engine.Result
}

// display holds the element values and tags pushed by the engine. It is
// the renderer the controller writes to; the view reads snapshots of it
// on every tick.
type display struct {
	mu     sync.Mutex
	values []int
	tags   []engine.Tag
}

func (d *display) Initialize(values []int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.values = append([]int(nil), values...)
	d.tags = make([]engine.Tag, len(values))
}

func (d *display) SetElementState(i int, tag engine.Tag) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if i >= 0 && i < len(d.tags) {
		d.tags[i] = tag
	}
}

func (d *display) WriteElement(i, value int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if i >= 0 && i < len(d.values) {
		d.values[i] = value
	}
}

func (d *display) SwapElements(i, j int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if i >= 0 && i < len(d.values) && j >= 0 && j < len(d.values) {
		d.values[i], d.values[j] = d.values[j], d.values[i]
	}
}

func (d *display) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.values = nil
	d.tags = nil
}

func (d *display) snapshot() ([]int, []engine.Tag) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]int(nil), d.values...), append([]engine.Tag(nil), d.tags...)
}

// Model is the Bubble Tea model for a live sorting run.
type Model struct {
	ctl       *engine.Controller
	disp      *display
	algorithm string
	cfg       engine.Config
	speed     int
	gen       int
	result    *engine.Result
	width     int
	height    int
	showHelp  bool
}

// NewModel wires a fresh controller to the view's display.
func NewModel(reg engine.Registry, algorithm string, cfg engine.Config) Model {
	disp := &display{}
	return Model{
		ctl:       engine.NewController(reg, disp),
		disp:      disp,
		algorithm: algorithm,
		cfg:       cfg,
		speed:     engine.ClampSpeed(cfg.Speed),
		width:     100,
		height:    30,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.startRun(), tick())
}

func (m Model) startRun() tea.Cmd {
	ctl, algorithm, cfg, gen := m.ctl, m.algorithm, m.cfg, m.gen
	return func() tea.Msg {
		res, err := ctl.Run(context.Background(), algorithm, cfg)
		if err != nil {
			return doneMsg{gen: gen, result: &engine.Result{Algorithm: algorithm, Err: err}}
		}
		return doneMsg{gen: gen, result: res}
	}
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/frameRate, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case TickMsg:
		return m, tick()
	case doneMsg:
		if msg.gen == m.gen {
			m.result = msg.result
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.ctl.Stop()
		return m, tea.Quit
	case " ":
		if m.ctl.State().Paused {
			m.ctl.Resume()
		} else {
			m.ctl.Pause()
		}
	case "n":
		m.ctl.Step()
	case "+", "=":
		m.speed = engine.ClampSpeed(m.speed + 1)
		m.ctl.SetSpeed(m.speed)
	case "-", "_":
		m.speed = engine.ClampSpeed(m.speed - 1)
		m.ctl.SetSpeed(m.speed)
	case "r":
		m.ctl.Stop()
		m.result = nil
		m.gen++
		m.cfg.Speed = m.speed
		return m, m.startRun()
	case "?":
		m.showHelp = !m.showHelp
	}
	return m, nil
}

func (m Model) View() string {
	values, tags := m.disp.snapshot()
	st := m.ctl.State()

	header := headerStyle.Render(fmt.Sprintf("sortlab - %s", m.algorithm)) +
		"  " + m.statusLine(st)

	barHeight := m.height - 12
	if barHeight < 5 {
		barHeight = 5
	}
	bars := renderBars(values, tags, barHeight, m.width-4)

	stats := m.statsPanel(st)

	view := header + "\n" + bars + "\n" + stats
	if m.showHelp {
		view += helpStyle.Render("\nspace pause/resume  n step  +/- speed  r restart  q quit")
	} else {
		view += helpStyle.Render("\n? help  q quit")
	}
	return view
}

func (m Model) statusLine(st engine.State) string {
	switch {
	case m.result != nil && m.result.Err != nil:
		return statusStopped.Render("FAILED")
	case m.result != nil && !m.result.Success:
		return statusStopped.Render("STOPPED")
	case m.result != nil:
		return statusDone.Render("DONE")
	case st.Paused:
		return statusPaused.Render("PAUSED")
	default:
		return statusRunning.Render("RUNNING")
	}
}

func (m Model) statsPanel(st engine.State) string {
	row := func(label, value string) string {
		return labelStyle.Render(label) + valueStyle.Render(value)
	}
	mode := string(m.cfg.Mode)
	if mode == "" {
		mode = string(engine.ModeContinuous)
	}
	lines := []string{
		row("comparisons", metrics.FormatCount(st.Comparisons)),
		row("swaps", metrics.FormatCount(st.Swaps)),
		row("accesses", metrics.FormatCount(st.Accesses)),
		row("elapsed", metrics.FormatDuration(st.Elapsed)),
		row("progress", fmt.Sprintf("%.0f%%", st.Progress)),
		row("speed", fmt.Sprintf("%d", m.speed)),
		row("mode", mode),
	}
	return statsStyle.Render(strings.Join(lines, "\n"))
}

// renderBars draws the array as a column chart, one character per element,
// colored by tag.
func renderBars(values []int, tags []engine.Tag, barHeight, maxWidth int) string {
	if len(values) == 0 {
		return ""
	}
	n := len(values)
	if maxWidth > 0 && n > maxWidth {
		n = maxWidth
	}

	maxValue := 1
	for _, v := range values[:n] {
		if v > maxValue {
			maxValue = v
		}
	}

	heights := make([]int, n)
	for i, v := range values[:n] {
		h := v * barHeight / maxValue
		if h < 1 && v != 0 {
			h = 1
		}
		heights[i] = h
	}

	var b strings.Builder
	for row := barHeight; row >= 1; row-- {
		b.WriteString("  ")
		for i := 0; i < n; i++ {
			if heights[i] >= row {
				b.WriteString(barStyle(tags[i]).Render("█"))
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	b.WriteString("  " + lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Render(strings.Repeat("─", n)))
	return b.String()
}
