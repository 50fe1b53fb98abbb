package tourapp

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/BrianJOC/tourguide/tour"
)

func newTestModel(t *testing.T, start int) *model {
	t.Helper()

	cfg := Config{Panels: demoPanels(), Steps: demoSteps()}
	cfg.TourConfig = testTourConfig()
	m, err := newModel(cfg, start)
	if err != nil {
		t.Fatalf("new model: %v", err)
	}
	t.Cleanup(func() { m.controller.Reset(true) })
	return m
}

// startedTestModel returns a model that has received its first window size
// message, so the tour is running on step zero.
func startedTestModel(t *testing.T) *model {
	t.Helper()

	m := newTestModel(t, 0)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return updated.(*model)
}

func testTourConfig() tour.Config {
	cfg := tour.DefaultConfig()
	cfg.Animate = false
	return cfg
}

func drainEvents(b *uiBridge) []tea.Msg {
	var msgs []tea.Msg
	for {
		select {
		case msg := <-b.events:
			msgs = append(msgs, msg)
		default:
			return msgs
		}
	}
}

func contains(haystack, needle string) bool {
	return strings.Contains(haystack, needle)
}
