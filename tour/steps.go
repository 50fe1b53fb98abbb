// Package tour implements the step-navigation and autoplay orchestration
// engine for guided UI tours: an ordered sequence of highlighted steps, a
// navigation state machine, pausable per-step countdown timers, and a
// progress indicator kept consistent with the actual remaining time.
//
// Rendering is delegated to collaborators (see collaborators.go); the engine
// only decides when transitions and timer events occur.
package tour

import "time"

// Target is an opaque handle to a highlightable element, produced by a
// Resolver. Implementations identify the element to the rendering host.
type Target interface {
	ID() string
}

// Popover describes the contextual panel shown next to a highlighted element.
type Popover struct {
	Title       string
	Description string
	// Position is a rendering hint ("top", "bottom", "left", "right");
	// interpretation belongs to the highlighting collaborator.
	Position    string
	ShowButtons bool
}

// Decision is returned by step hooks to tell the controller whether a
// navigation attempt may proceed. A hook that needs to finish asynchronous
// work first returns Defer and re-invokes navigation itself once ready.
type Decision int

const (
	Proceed Decision = iota
	Defer
)

// Hook is an optional per-step lifecycle callback invoked before the cursor
// moves away from the step. It receives the currently highlighted element.
type Hook func(HighlightedElement) Decision

// StepDefinition is the user-supplied description of one tour stop.
type StepDefinition struct {
	// Element selects the target to highlight. Required.
	Element string
	Popover *Popover
	// Duration is the autoplay dwell time for this step. Zero marks the
	// step as manual: autoplay never advances past it on its own.
	Duration   time.Duration
	OnNext     Hook
	OnPrevious Hook
}

// Step is a prepared tour stop. Steps are built once from definitions by
// Controller.SetSteps and are read-only afterwards.
type Step struct {
	index      int
	element    string
	target     Target
	popover    *Popover
	duration   time.Duration
	onNext     Hook
	onPrevious Hook
}

// Index returns the step's position in the built sequence.
func (s *Step) Index() int { return s.index }

// Element returns the selector the step was built from.
func (s *Step) Element() string { return s.element }

// Target returns the resolved target handle.
func (s *Step) Target() Target { return s.target }

// Popover returns the popover descriptor, or nil for popover-less steps.
func (s *Step) Popover() *Popover { return s.popover }

// Duration returns the autoplay dwell time; zero means manual.
func (s *Step) Duration() time.Duration { return s.duration }

// HasDuration reports whether the step participates in autoplay.
func (s *Step) HasDuration() bool { return s.duration > 0 }

// HighlightedElement pairs a step with its resolved target. It is handed to
// hooks and exposed through the controller's accessors.
type HighlightedElement struct {
	Step   *Step
	Target Target
}
