package tourapp

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/BrianJOC/tourguide/definitions"
	"github.com/BrianJOC/tourguide/tour"
)

func demoPanels() []Panel {
	return []Panel{
		{ID: "#sidebar", Title: "Sidebar", Body: "navigation"},
		{ID: "#chart", Title: "Chart", Body: "metrics"},
	}
}

func demoSteps() []tour.StepDefinition {
	return []tour.StepDefinition{
		{Element: "#sidebar", Popover: &tour.Popover{Title: "Sidebar", Description: "start here", ShowButtons: true}, Duration: 50 * time.Millisecond},
		{Element: "#chart", Popover: &tour.Popover{Title: "Chart", Description: "then here", ShowButtons: true}},
	}
}

func TestNewRequiresPanels(t *testing.T) {
	t.Parallel()
	if _, err := New(WithSteps(demoSteps()...)); !errors.Is(err, ErrNoPanels) {
		t.Fatalf("expected ErrNoPanels, got %v", err)
	}
}

func TestNewRequiresSteps(t *testing.T) {
	t.Parallel()
	if _, err := New(WithPanels(demoPanels()...)); !errors.Is(err, ErrNoSteps) {
		t.Fatalf("expected ErrNoSteps, got %v", err)
	}
}

func TestWithDefinitionsAdoptsAutoplay(t *testing.T) {
	t.Parallel()

	def := &definitions.Tour{
		Name:     "sample",
		Autoplay: true,
		Steps: []definitions.Step{
			{Element: "#sidebar", Title: "Sidebar", Description: "start here", Duration: "2s"},
		},
	}
	app, err := New(WithPanels(demoPanels()...), WithDefinitions(def))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if !app.cfg.TourConfig.Autoplay {
		t.Fatal("expected autoplay from definition to carry into the config")
	}
	if len(app.cfg.Steps) != 1 {
		t.Fatalf("expected 1 step, got %d", len(app.cfg.Steps))
	}
	if app.cfg.Steps[0].Duration != 2*time.Second {
		t.Fatalf("unexpected duration %v", app.cfg.Steps[0].Duration)
	}
}

func TestNewModelRejectsUnknownPanels(t *testing.T) {
	t.Parallel()

	cfg := Config{
		Panels:     demoPanels(),
		Steps:      []tour.StepDefinition{{Element: "#missing", Popover: &tour.Popover{Title: "x"}}},
		TourConfig: tour.DefaultConfig(),
	}
	if _, err := newModel(cfg, 0); !errors.Is(err, ErrNoSteps) {
		t.Fatalf("expected ErrNoSteps after skipping unresolvable steps, got %v", err)
	}
}

func TestModelStartsTourOnFirstResize(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, 0)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(*model)

	if !m.started {
		t.Fatal("expected tour to start after the first window size message")
	}
	if got := m.controller.State(); got != tour.Active {
		t.Fatalf("expected active state, got %v", got)
	}
	if m.controller.Cursor() != 0 {
		t.Fatalf("expected cursor 0, got %d", m.controller.Cursor())
	}
}

func TestModelKeyNavigation(t *testing.T) {
	t.Parallel()

	m := startedTestModel(t)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = updated.(*model)
	if m.controller.Cursor() != 1 {
		t.Fatalf("expected cursor 1 after right arrow, got %d", m.controller.Cursor())
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = updated.(*model)
	if m.controller.Cursor() != 0 {
		t.Fatalf("expected cursor 0 after left arrow, got %d", m.controller.Cursor())
	}
}

func TestModelEscapeEndsTour(t *testing.T) {
	t.Parallel()

	m := startedTestModel(t)
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(*model)

	if got := m.controller.State(); got != tour.Inactive {
		t.Fatalf("expected inactive state after escape, got %v", got)
	}
}

func TestModelSpaceTogglesAutoplay(t *testing.T) {
	t.Parallel()

	m := startedTestModel(t)
	if m.controller.AutoplayEnabled() {
		t.Fatal("autoplay should start disabled")
	}

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{' '}})
	m = updated.(*model)
	if !m.controller.AutoplayEnabled() {
		t.Fatal("expected space to enable autoplay")
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{' '}})
	m = updated.(*model)
	if m.controller.AutoplayEnabled() {
		t.Fatal("expected second space to disable autoplay")
	}
}

func TestModelTourEndedMessageUpdatesStatus(t *testing.T) {
	t.Parallel()

	m := startedTestModel(t)
	updated, _ := m.Update(tourEndedMsg{immediate: true})
	m = updated.(*model)

	if !m.finished {
		t.Fatal("expected finished flag after tour ended message")
	}
	if m.statusMsg != "Tour finished" {
		t.Fatalf("unexpected status %q", m.statusMsg)
	}
}

func TestModelViewRendersHighlightedStep(t *testing.T) {
	t.Parallel()

	m := startedTestModel(t)
	view := m.View()

	for _, want := range []string{"Tour Guide", "Sidebar", "start here"} {
		if !contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
}
