package tour

// Collaborator contracts. The engine decides when things happen; these
// interfaces render them. Implementations are invoked while the controller
// holds its internal lock and therefore must not call back into the
// Controller synchronously.

// Highlighter renders the spotlight for a step and the dimming overlay.
type Highlighter interface {
	// Highlight spotlights the step's target and shows its popover.
	Highlight(step *Step)
	// Clear removes the overlay; when immediate is true any close
	// animation is skipped.
	Clear(immediate bool)
	// Refresh repositions the current spotlight after a layout change.
	Refresh()
}

// Resolver turns a step definition's element selector into a concrete
// target handle. A selector matching nothing returns an error; the
// controller logs it and skips the step.
type Resolver interface {
	Resolve(selector string) (Target, error)
}

// MediaPlayer controls per-step media channels, addressed by step index.
type MediaPlayer interface {
	Play(stepIndex int)
	Pause(stepIndex int)
	// Stop pauses and rewinds the step's media.
	Stop(stepIndex int)
}

// ProgressRenderer draws the per-step progress indicators and the
// play/pause affordance.
type ProgressRenderer interface {
	// HasIndicator reports whether the indicator for the step exists in
	// the visual tree yet. Indicator mounting may lag step entry.
	HasIndicator(stepIndex int) bool
	// SetFill updates a step's fill percentage (0-100).
	SetFill(stepIndex int, percent float64)
	// SetAutoplayActive flips the play/pause affordance.
	SetAutoplayActive(active bool)
}

// Watcher waits for a render-tree condition to become true. WaitUntil must
// evaluate pred immediately and again after every structural change until it
// holds, then invoke fn exactly once. The returned cancel drops the wait
// without invoking fn. utils/presence provides a channel-driven
// implementation.
type Watcher interface {
	WaitUntil(pred func() bool, fn func()) (cancel func())
}

// Observer receives tour lifecycle notifications.
type Observer interface {
	StepEntered(index int, step *Step)
	TourEnded(immediate bool)
}

// No-op defaults so every collaborator is optional.

type nopHighlighter struct{}

func (nopHighlighter) Highlight(*Step) {}
func (nopHighlighter) Clear(bool)      {}
func (nopHighlighter) Refresh()        {}

type nopMedia struct{}

func (nopMedia) Play(int)  {}
func (nopMedia) Pause(int) {}
func (nopMedia) Stop(int)  {}

type nopProgress struct{}

func (nopProgress) HasIndicator(int) bool  { return true }
func (nopProgress) SetFill(int, float64)   {}
func (nopProgress) SetAutoplayActive(bool) {}

// immediateWatcher fires iff the predicate already holds; without a change
// feed there is nothing further to wait on.
type immediateWatcher struct{}

func (immediateWatcher) WaitUntil(pred func() bool, fn func()) func() {
	if pred != nil && fn != nil && pred() {
		fn()
	}
	return func() {}
}

// literalResolver accepts every selector as-is, wrapping it in an opaque
// handle. Hosts with a real element registry supply their own Resolver.
type literalResolver struct{}

type literalTarget string

func (t literalTarget) ID() string { return string(t) }

func (literalResolver) Resolve(selector string) (Target, error) {
	return literalTarget(selector), nil
}
