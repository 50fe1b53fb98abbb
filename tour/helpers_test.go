package tour

import (
	"fmt"
	"sync"
)

// Fake collaborators. They record calls under their own locks because the
// controller invokes them while holding its internal lock.

type fakeTarget string

func (t fakeTarget) ID() string { return string(t) }

type fakeResolver struct {
	failing map[string]bool
}

func (r *fakeResolver) Resolve(selector string) (Target, error) {
	if r.failing[selector] {
		return nil, fmt.Errorf("no element matches %q", selector)
	}
	return fakeTarget(selector), nil
}

type fakeHighlighter struct {
	mu         sync.Mutex
	highlights []string
	clears     []bool
}

func (h *fakeHighlighter) Highlight(step *Step) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.highlights = append(h.highlights, step.Element())
}

func (h *fakeHighlighter) Clear(immediate bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clears = append(h.clears, immediate)
}

func (h *fakeHighlighter) Refresh() {}

func (h *fakeHighlighter) clearCalls() []bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]bool(nil), h.clears...)
}

func (h *fakeHighlighter) highlighted() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.highlights...)
}

type fakeMedia struct {
	mu     sync.Mutex
	events []string
}

func (m *fakeMedia) Play(i int)  { m.record("play", i) }
func (m *fakeMedia) Pause(i int) { m.record("pause", i) }
func (m *fakeMedia) Stop(i int)  { m.record("stop", i) }

func (m *fakeMedia) record(op string, i int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, fmt.Sprintf("%s:%d", op, i))
}

func (m *fakeMedia) recorded() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.events...)
}

type fakeRenderer struct {
	mu       sync.Mutex
	fills    map[int][]float64
	missing  map[int]bool
	autoplay []bool
}

func newFakeRenderer() *fakeRenderer {
	return &fakeRenderer{
		fills:   make(map[int][]float64),
		missing: make(map[int]bool),
	}
}

func (r *fakeRenderer) HasIndicator(i int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return !r.missing[i]
}

func (r *fakeRenderer) SetFill(i int, percent float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fills[i] = append(r.fills[i], percent)
}

func (r *fakeRenderer) SetAutoplayActive(active bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.autoplay = append(r.autoplay, active)
}

func (r *fakeRenderer) setMissing(i int, missing bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.missing[i] = missing
}

func (r *fakeRenderer) fillsFor(i int) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]float64(nil), r.fills[i]...)
}

func (r *fakeRenderer) lastFill(i int) (float64, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	values := r.fills[i]
	if len(values) == 0 {
		return 0, false
	}
	return values[len(values)-1], true
}

type recordingObserver struct {
	mu      sync.Mutex
	entered []int
	ended   []bool
	endedCh chan bool
}

func newRecordingObserver() *recordingObserver {
	return &recordingObserver{endedCh: make(chan bool, 4)}
}

func (o *recordingObserver) StepEntered(index int, step *Step) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.entered = append(o.entered, index)
}

func (o *recordingObserver) TourEnded(immediate bool) {
	o.mu.Lock()
	o.ended = append(o.ended, immediate)
	o.mu.Unlock()
	select {
	case o.endedCh <- immediate:
	default:
	}
}

func (o *recordingObserver) enteredSteps() []int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]int(nil), o.entered...)
}

func (o *recordingObserver) endings() []bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]bool(nil), o.ended...)
}

func definitions(n int) []StepDefinition {
	defs := make([]StepDefinition, n)
	for i := range defs {
		defs[i] = StepDefinition{
			Element: fmt.Sprintf("#panel-%d", i),
			Popover: &Popover{Title: fmt.Sprintf("Step %d", i+1)},
		}
	}
	return defs
}

func (c *Controller) liveTimers() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.autoplay.liveTimersLocked()
}
