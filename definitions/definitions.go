// Package definitions provides loading and validation of tour definition
// files, so tours can be authored as YAML instead of Go code.
package definitions

import (
	"fmt"
	"strings"
	"time"

	"github.com/BrianJOC/tourguide/tour"
)

// Tour is an authored tour: an ordered list of step definitions plus
// metadata for pickers and logs.
type Tour struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Steps       []Step `yaml:"steps"`
	// Autoplay turns automatic advancement on when the tour starts.
	Autoplay bool `yaml:"autoplay,omitempty"`
	// Source is the file path the tour was loaded from, or "builtin".
	Source string `yaml:"-"`
}

// Step is one authored tour stop.
type Step struct {
	Element     string `yaml:"element"`
	Title       string `yaml:"title,omitempty"`
	Description string `yaml:"description,omitempty"`
	Position    string `yaml:"position,omitempty"`
	// Duration is the autoplay dwell time as a Go duration string
	// ("2s", "1500ms"). Empty marks the step as manual.
	Duration string `yaml:"duration,omitempty"`
}

// StepDefinitions converts the authored steps into engine definitions.
// Validate must have been called (Load* does); durations are assumed
// parseable here.
func (t *Tour) StepDefinitions() []tour.StepDefinition {
	defs := make([]tour.StepDefinition, 0, len(t.Steps))
	for _, s := range t.Steps {
		def := tour.StepDefinition{Element: s.Element}
		if s.Title != "" || s.Description != "" {
			def.Popover = &tour.Popover{
				Title:       s.Title,
				Description: s.Description,
				Position:    s.Position,
				ShowButtons: true,
			}
		}
		if s.Duration != "" {
			if d, err := time.ParseDuration(s.Duration); err == nil {
				def.Duration = d
			}
		}
		defs = append(defs, def)
	}
	return defs
}

// Validate checks the tour for authoring mistakes.
func (t *Tour) Validate() error {
	t.Name = strings.TrimSpace(t.Name)
	if t.Name == "" {
		return fmt.Errorf("tour name is required")
	}
	if len(t.Steps) == 0 {
		return fmt.Errorf("tour %q has no steps", t.Name)
	}
	for i := range t.Steps {
		t.Steps[i].Element = strings.TrimSpace(t.Steps[i].Element)
		if t.Steps[i].Element == "" {
			return fmt.Errorf("tour %q: step %d is missing an element", t.Name, i)
		}
		if dur := t.Steps[i].Duration; dur != "" {
			if _, err := time.ParseDuration(dur); err != nil {
				return fmt.Errorf("tour %q: step %d has invalid duration %q: %w", t.Name, i, dur, err)
			}
		}
	}
	return nil
}
