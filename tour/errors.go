package tour

import "fmt"

// EmptySequenceError indicates Start was called before any steps were set.
type EmptySequenceError struct{}

func (EmptySequenceError) Error() string {
	return "tour has no steps to start"
}

// MissingElementError reports a step definition without an element selector.
type MissingElementError struct {
	Index int
}

func (e MissingElementError) Error() string {
	if e.Index < 0 {
		return "step is missing an element selector"
	}
	return fmt.Sprintf("step %d is missing an element selector", e.Index)
}

// StepNotFoundError reports a start index outside the built sequence.
type StepNotFoundError struct {
	Index int
}

func (e StepNotFoundError) Error() string {
	return fmt.Sprintf("no step at index %d", e.Index)
}

// ResolutionError wraps a resolver failure for a specific selector.
type ResolutionError struct {
	Selector string
	Err      error
}

func (e ResolutionError) Error() string {
	return fmt.Sprintf("cannot resolve element %q: %v", e.Selector, e.Err)
}

func (e ResolutionError) Unwrap() error {
	return e.Err
}
