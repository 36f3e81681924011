// Package tui renders a sorting run as plain ANSI bars, without any TUI
// framework. It implements the engine's renderer contract directly.
package tui

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/san-kum/sortlab/internal/engine"
)

const (
	maxBarHeight = 18
	clearScreen  = "\033[2J\033[H"
	hideCursor   = "\033[?25l"
	showCursor   = "\033[?25h"
)

// glyphs per visual tag
var tagGlyphs = map[engine.Tag]rune{
	engine.TagDefault:   '#',
	engine.TagComparing: '?',
	engine.TagSwapping:  'x',
	engine.TagPivot:     'P',
	engine.TagMin:       'm',
	engine.TagMax:       'M',
	engine.TagSorted:    '*',
}

// LiveRenderer draws the working array as a bar chart, redrawing at most
// frameRate times per second.
type LiveRenderer struct {
	mu        sync.Mutex
	title     string
	frameRate int
	lastFrame time.Time
	values    []int
	tags      []engine.Tag
	maxValue  int
}

func NewLiveRenderer(title string, frameRate int) *LiveRenderer {
	if frameRate <= 0 {
		frameRate = 30
	}
	return &LiveRenderer{title: title, frameRate: frameRate}
}

func (r *LiveRenderer) Initialize(values []int) {
	r.mu.Lock()
	r.values = append([]int(nil), values...)
	r.tags = make([]engine.Tag, len(values))
	r.maxValue = 1
	for _, v := range values {
		if v > r.maxValue {
			r.maxValue = v
		}
	}
	r.mu.Unlock()
	r.Render()
}

func (r *LiveRenderer) SetElementState(i int, tag engine.Tag) {
	r.mu.Lock()
	if i >= 0 && i < len(r.tags) {
		r.tags[i] = tag
	}
	r.mu.Unlock()
	r.frame()
}

func (r *LiveRenderer) WriteElement(i, value int) {
	r.mu.Lock()
	if i >= 0 && i < len(r.values) {
		r.values[i] = value
		if value > r.maxValue {
			r.maxValue = value
		}
	}
	r.mu.Unlock()
	r.frame()
}

func (r *LiveRenderer) SwapElements(i, j int) {
	r.mu.Lock()
	if i >= 0 && i < len(r.values) && j >= 0 && j < len(r.values) {
		r.values[i], r.values[j] = r.values[j], r.values[i]
	}
	r.mu.Unlock()
	r.frame()
}

func (r *LiveRenderer) Reset() {
	r.mu.Lock()
	r.values = nil
	r.tags = nil
	r.mu.Unlock()
}

func (r *LiveRenderer) Start() { fmt.Print(hideCursor) }
func (r *LiveRenderer) Stop()  { fmt.Print(showCursor) }

// frame redraws when enough time has passed since the last frame.
func (r *LiveRenderer) frame() {
	r.mu.Lock()
	due := time.Since(r.lastFrame) >= time.Second/time.Duration(r.frameRate)
	if due {
		r.lastFrame = time.Now()
	}
	r.mu.Unlock()
	if due {
		r.Render()
	}
}

// Render draws unconditionally. Callers use it for the final frame.
func (r *LiveRenderer) Render() {
	r.mu.Lock()
	values := append([]int(nil), r.values...)
	tags := append([]engine.Tag(nil), r.tags...)
	maxValue := r.maxValue
	title := r.title
	r.mu.Unlock()

	if len(values) == 0 {
		return
	}

	heights := make([]int, len(values))
	for i, v := range values {
		h := v * maxBarHeight / maxValue
		if h < 1 && v != 0 {
			h = 1
		}
		heights[i] = h
	}

	var b strings.Builder
	b.WriteString(clearScreen)
	b.WriteString(fmt.Sprintf("  %s  (%d elements)\n", title, len(values)))
	b.WriteString("  " + strings.Repeat("-", len(values)) + "\n")

	for row := maxBarHeight; row >= 1; row-- {
		b.WriteString("  ")
		for i := range values {
			if heights[i] >= row {
				b.WriteRune(tagGlyphs[tags[i]])
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}

	b.WriteString("  " + strings.Repeat("-", len(values)) + "\n")
	b.WriteString("  ? comparing  x swapping  P pivot  m min  * sorted\n")
	fmt.Print(b.String())
}
