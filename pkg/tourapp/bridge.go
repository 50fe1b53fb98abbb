package tourapp

import (
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/BrianJOC/tourguide/tour"
	"github.com/BrianJOC/tourguide/utils/presence"
)

// ---- Tour engine events surfaced to the Bubble Tea loop ----

type repaintMsg struct{}

type stepEnteredMsg struct {
	index int
}

type tourEndedMsg struct {
	immediate bool
}

// uiBridge implements the engine's collaborator contracts against the
// player's panel surface. The engine invokes it from timer and watcher
// goroutines while holding its own lock, so the bridge only mutates its own
// state and pushes messages onto a buffered channel; it never calls back
// into the controller.
type uiBridge struct {
	mu sync.Mutex

	panels map[string]Panel

	highlightedID string
	popover       *tour.Popover
	fills         map[int]float64
	mediaState    map[int]string
	autoplayOn    bool
	mounted       bool

	waiter *presence.Waiter
	events chan tea.Msg
}

func newUIBridge(panels []Panel) *uiBridge {
	byID := make(map[string]Panel, len(panels))
	for _, p := range panels {
		byID[p.ID] = p
	}
	return &uiBridge{
		panels:     byID,
		fills:      make(map[int]float64),
		mediaState: make(map[int]string),
		waiter:     presence.NewWaiter(),
		events:     make(chan tea.Msg, 64),
	}
}

// send is best-effort: a dropped repaint is made up for by the next one.
func (b *uiBridge) send(msg tea.Msg) {
	select {
	case b.events <- msg:
	default:
	}
}

func waitEventCmd(b *uiBridge) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-b.events
		if !ok {
			return nil
		}
		return msg
	}
}

// markMounted records that the surface has rendered; pending indicator
// waits can now be satisfied.
func (b *uiBridge) markMounted() {
	b.mu.Lock()
	b.mounted = true
	b.mu.Unlock()
	b.waiter.Notify()
}

// ---- tour.Resolver ----

type panelTarget string

func (t panelTarget) ID() string { return string(t) }

func (b *uiBridge) Resolve(selector string) (tour.Target, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.panels[selector]; !ok {
		return nil, fmt.Errorf("no panel with id %q", selector)
	}
	return panelTarget(selector), nil
}

// ---- tour.Highlighter ----

func (b *uiBridge) Highlight(step *tour.Step) {
	b.mu.Lock()
	b.highlightedID = step.Element()
	b.popover = step.Popover()
	b.mu.Unlock()
	b.send(repaintMsg{})
}

func (b *uiBridge) Clear(immediate bool) {
	b.mu.Lock()
	b.highlightedID = ""
	b.popover = nil
	b.mu.Unlock()
	b.send(repaintMsg{})
}

func (b *uiBridge) Refresh() {
	b.send(repaintMsg{})
}

// ---- tour.MediaPlayer ----
// The demo surface has no real audio; the channel state drives the note
// indicator next to the popover.

func (b *uiBridge) Play(stepIndex int) {
	b.setMedia(stepIndex, "playing")
}

func (b *uiBridge) Pause(stepIndex int) {
	b.setMedia(stepIndex, "paused")
}

func (b *uiBridge) Stop(stepIndex int) {
	b.setMedia(stepIndex, "stopped")
}

func (b *uiBridge) setMedia(stepIndex int, state string) {
	b.mu.Lock()
	b.mediaState[stepIndex] = state
	b.mu.Unlock()
	b.send(repaintMsg{})
}

// ---- tour.ProgressRenderer ----

func (b *uiBridge) HasIndicator(stepIndex int) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.mounted
}

func (b *uiBridge) SetFill(stepIndex int, percent float64) {
	b.mu.Lock()
	b.fills[stepIndex] = percent
	b.mu.Unlock()
	b.send(repaintMsg{})
}

func (b *uiBridge) SetAutoplayActive(active bool) {
	b.mu.Lock()
	b.autoplayOn = active
	b.mu.Unlock()
	b.send(repaintMsg{})
}

// ---- tour.Watcher ----

func (b *uiBridge) WaitUntil(pred func() bool, fn func()) func() {
	return b.waiter.WaitUntil(pred, fn)
}

// ---- tour.Observer ----

func (b *uiBridge) StepEntered(index int, step *tour.Step) {
	b.send(stepEnteredMsg{index: index})
}

func (b *uiBridge) TourEnded(immediate bool) {
	b.send(tourEndedMsg{immediate: immediate})
}

// ---- snapshot for View ----

type bridgeSnapshot struct {
	highlightedID string
	popover       *tour.Popover
	fills         map[int]float64
	mediaState    map[int]string
	autoplayOn    bool
}

func (b *uiBridge) snapshot() bridgeSnapshot {
	b.mu.Lock()
	defer b.mu.Unlock()
	fills := make(map[int]float64, len(b.fills))
	for k, v := range b.fills {
		fills[k] = v
	}
	media := make(map[int]string, len(b.mediaState))
	for k, v := range b.mediaState {
		media[k] = v
	}
	return bridgeSnapshot{
		highlightedID: b.highlightedID,
		popover:       b.popover,
		fills:         fills,
		mediaState:    media,
		autoplayOn:    b.autoplayOn,
	}
}
