package tour

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/BrianJOC/tourguide/logging"
)

// State of the navigation controller.
type State int

const (
	Inactive State = iota
	Active
)

func (s State) String() string {
	switch s {
	case Inactive:
		return "inactive"
	case Active:
		return "active"
	default:
		return "unknown"
	}
}

// Key identifies the keyboard inputs the controller understands.
type Key int

const (
	KeyEscape Key = iota
	KeyArrowLeft
	KeyArrowRight
)

// Controller is the public-facing tour state machine. It mediates between
// user input, step hooks, and the autoplay coordinator, and is the only
// component that moves the sequence cursor.
//
// All exported methods are safe for concurrent use; internally every state
// change happens under one lock, so timer and watcher callbacks can never
// interleave mid-transition.
type Controller struct {
	mu     sync.Mutex
	cfg    Config
	logger zerolog.Logger

	seq   sequence
	state State

	highlighter Highlighter
	resolver    Resolver
	media       MediaPlayer
	renderer    ProgressRenderer
	watcher     Watcher
	observers   []Observer

	autoplay *coordinator
	progress *progressSync

	current *HighlightedElement
	last    *HighlightedElement
}

// New constructs a Controller. Collaborators not supplied through options
// fall back to inert defaults, which keeps the engine fully testable without
// a renderer.
func New(cfg Config, opts ...Option) *Controller {
	c := &Controller{
		cfg:         normalizeConfig(cfg),
		logger:      logging.Component("tour"),
		highlighter: nopHighlighter{},
		resolver:    literalResolver{},
		media:       nopMedia{},
		renderer:    nopProgress{},
		watcher:     immediateWatcher{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	c.autoplay = newCoordinator(c)
	c.progress = newProgressSync(c)
	return c
}

// SetSteps builds the step sequence from definitions, replacing any previous
// sequence and resetting the cursor to 0. A definition without an element
// selector is a configuration error and leaves the controller untouched.
// Definitions whose selector resolves to nothing are logged and skipped;
// navigation continues over the remaining steps.
func (c *Controller) SetSteps(defs []StepDefinition) error {
	for i, def := range defs {
		if def.Element == "" {
			return MissingElementError{Index: i}
		}
	}

	steps := make([]*Step, 0, len(defs))
	for _, def := range defs {
		target, err := c.resolver.Resolve(def.Element)
		if err != nil {
			c.logger.Warn().
				Str("element", def.Element).
				Err(err).
				Msg("element not found, skipping step")
			continue
		}
		steps = append(steps, &Step{
			index:      len(steps),
			element:    def.Element,
			target:     target,
			popover:    def.Popover,
			duration:   def.Duration,
			onNext:     def.OnNext,
			onPrevious: def.OnPrevious,
		})
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == Active {
		c.resetLocked(true)
	}
	c.seq.setSteps(steps)
	return nil
}

// DefineSteps is a variadic convenience over SetSteps.
func (c *Controller) DefineSteps(defs ...StepDefinition) error {
	return c.SetSteps(defs)
}

// Start activates the tour at the first step.
func (c *Controller) Start() error {
	return c.StartFrom(0)
}

// StartFrom activates the tour at the given step index. An empty sequence or
// an out-of-range index is a configuration error; no state is mutated.
func (c *Controller) StartFrom(index int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.seq.len() == 0 {
		return EmptySequenceError{}
	}
	if !c.seq.moveTo(index) {
		return StepNotFoundError{Index: index}
	}
	c.state = Active
	c.logger.Info().Int("step", index).Msg("tour started")
	c.enterStepLocked()
	return nil
}

// MoveNext runs the current step's OnNext hook and, unless the hook defers,
// advances the cursor. Advancing past the last step resets the tour.
func (c *Controller) MoveNext() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != Active {
		return
	}
	c.moveNextLocked()
}

// MovePrevious mirrors MoveNext in the other direction; retreating from the
// first step resets the tour.
func (c *Controller) MovePrevious() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != Active {
		return
	}

	step, ok := c.seq.current()
	if !ok {
		return
	}
	if step.onPrevious != nil && c.current != nil {
		if step.onPrevious(*c.current) == Defer {
			c.logger.Debug().Int("step", step.index).Msg("move deferred by hook")
			return
		}
	}
	if !c.seq.retreat() {
		c.resetLocked(!c.cfg.Animate)
		return
	}
	c.autoplay.leaveLocked(step.index)
	c.enterStepLocked()
}

func (c *Controller) moveNextLocked() {
	step, ok := c.seq.current()
	if !ok {
		return
	}
	if step.onNext != nil && c.current != nil {
		if step.onNext(*c.current) == Defer {
			c.logger.Debug().Int("step", step.index).Msg("move deferred by hook")
			return
		}
	}
	if !c.seq.advance() {
		c.resetLocked(!c.cfg.Animate)
		return
	}
	c.autoplay.leaveLocked(step.index)
	c.enterStepLocked()
}

// enterStepLocked highlights the step under the cursor and re-arms autoplay.
func (c *Controller) enterStepLocked() {
	step, ok := c.seq.current()
	if !ok {
		return
	}
	if c.current != nil {
		c.last = c.current
	}
	el := HighlightedElement{Step: step, Target: step.target}
	c.current = &el
	c.highlighter.Highlight(step)
	for _, obs := range c.observers {
		obs.StepEntered(step.index, step)
	}
	c.autoplay.enterLocked(step.index)
}

// autoAdvance is the synthetic advance trigger fired by an elapsed step
// timer. A fire against a stale step index, or after the tour stopped, is a
// silent no-op. On the final step the tour is torn down immediately, with no
// close animation.
func (c *Controller) autoAdvance(stepIndex int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != Active || c.seq.cursor != stepIndex || !c.autoplay.enabled {
		return
	}
	c.autoplay.timerFiredLocked(stepIndex)
	c.logger.Debug().Int("step", stepIndex).Msg("step duration elapsed")

	if !c.seq.hasNext() {
		c.resetLocked(true)
		return
	}
	c.moveNextLocked()
}

// Reset stops all media, clears every timer and pending progress tick,
// returns the cursor to 0, and deactivates the tour. The overlay clear is
// animated unless immediate is true. Reset is idempotent.
func (c *Controller) Reset(immediate bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetLocked(immediate)
}

func (c *Controller) resetLocked(immediate bool) {
	if step, ok := c.seq.current(); ok && c.state == Active {
		c.media.Stop(step.index)
	}
	c.autoplay.clearLocked()
	c.progress.resetLocked()
	c.seq.moveTo(0)
	wasActive := c.state == Active
	c.state = Inactive
	if c.current != nil {
		c.last = c.current
		c.current = nil
	}
	c.highlighter.Clear(immediate)
	if wasActive {
		c.logger.Debug().Bool("immediate", immediate).Msg("tour reset")
		for _, obs := range c.observers {
			obs.TourEnded(immediate)
		}
	}
}

// SetAutoplay toggles automatic advancement. Turning autoplay off pauses the
// active step's timer, media, and progress ticking; turning it back on
// resumes them without restarting the step's countdown.
func (c *Controller) SetAutoplay(on bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.autoplay.setEnabledLocked(on)
}

// AutoplayEnabled reports whether automatic advancement is on.
func (c *Controller) AutoplayEnabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.autoplay.enabled
}

// Highlight spotlights a single element outside the sequence flow. The
// cursor and any running tour sequence are left untouched.
func (c *Controller) Highlight(def StepDefinition) error {
	if def.Element == "" {
		return MissingElementError{Index: -1}
	}
	target, err := c.resolver.Resolve(def.Element)
	if err != nil {
		c.logger.Warn().Str("element", def.Element).Err(err).Msg("element not found")
		return ResolutionError{Selector: def.Element, Err: err}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	step := &Step{
		index:    -1,
		element:  def.Element,
		target:   target,
		popover:  def.Popover,
		duration: def.Duration,
	}
	c.state = Active
	if c.current != nil {
		c.last = c.current
	}
	el := HighlightedElement{Step: step, Target: target}
	c.current = &el
	c.highlighter.Highlight(step)
	return nil
}

// HandleClick routes a pointer event. Clicks on the highlighted element or
// its popover are ignored; clicks outside advance when OverlayClickNext is
// set, otherwise close when AllowClose is set. Advance wins when both are
// configured.
func (c *Controller) HandleClick(onTarget, onPopover bool) {
	c.mu.Lock()
	state := c.state
	c.mu.Unlock()
	if state != Active || onTarget || onPopover {
		return
	}
	if c.cfg.OverlayClickNext {
		c.MoveNext()
		return
	}
	if c.cfg.AllowClose {
		c.Reset(false)
	}
}

// HandleKey routes a keyboard event. Escape always resets; arrow keys only
// act when the current step has a popover, so plain highlights never capture
// page-level arrow input.
func (c *Controller) HandleKey(key Key) {
	if !c.cfg.KeyboardControl {
		return
	}
	c.mu.Lock()
	if c.state != Active {
		c.mu.Unlock()
		return
	}
	if key == KeyEscape {
		c.resetLocked(!c.cfg.Animate)
		c.mu.Unlock()
		return
	}
	step, ok := c.seq.current()
	if !ok || step.popover == nil {
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()

	switch key {
	case KeyArrowRight:
		c.MoveNext()
	case KeyArrowLeft:
		c.MovePrevious()
	}
}

// HasNextStep reports whether a step follows the cursor.
func (c *Controller) HasNextStep() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.seq.hasNext()
}

// HasPreviousStep reports whether a step precedes the cursor.
func (c *Controller) HasPreviousStep() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.seq.hasPrevious()
}

// State returns the controller state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Cursor returns the current step index.
func (c *Controller) Cursor() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.seq.cursor
}

// StepAt returns the prepared step at index i.
func (c *Controller) StepAt(i int) (*Step, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.seq.stepAt(i)
}

// Len returns the number of prepared steps.
func (c *Controller) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.seq.len()
}

// HighlightedElement returns the element currently highlighted, if any.
func (c *Controller) HighlightedElement() (HighlightedElement, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil {
		return HighlightedElement{}, false
	}
	return *c.current, true
}

// LastHighlightedElement returns the element highlighted before the current
// one (or before the last reset).
func (c *Controller) LastHighlightedElement() (HighlightedElement, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.last == nil {
		return HighlightedElement{}, false
	}
	return *c.last, true
}

// Refresh asks the highlighter to reposition the current spotlight.
func (c *Controller) Refresh() {
	c.highlighter.Refresh()
}

// ProgressFill returns the recorded fill percentage for a step.
func (c *Controller) ProgressFill(stepIndex int) float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.progress.fillLocked(stepIndex)
}
