// Package tourapp exposes a reusable Bubble Tea tour player. It wires the
// tour.Controller, the rendering collaborators, and keyboard routing behind
// a simple lifecycle API so other binaries can embed a guided tour without
// copying UI code.
package tourapp

import (
	"context"
	"errors"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/BrianJOC/tourguide/definitions"
	"github.com/BrianJOC/tourguide/tour"
)

var (
	// ErrNoSteps indicates no steps were supplied when constructing an App.
	ErrNoSteps = errors.New("tourapp: at least one step must be defined")
	// ErrNoPanels indicates no panels were supplied for the tour surface.
	ErrNoPanels = errors.New("tourapp: at least one panel must be defined")
	// ErrProgramRunning reports that Start was invoked while the program is already running.
	ErrProgramRunning = errors.New("tourapp: program already running")
)

// Panel is one highlightable region of the demo surface. Step definitions
// select panels by ID.
type Panel struct {
	ID    string
	Title string
	Body  string
}

// Config controls how an App should be assembled.
type Config struct {
	Panels         []Panel
	Steps          []tour.StepDefinition
	TourConfig     tour.Config
	ProgramOptions []tea.ProgramOption
}

// Option mutates Config during construction.
type Option func(*Config)

// WithPanels sets the panels making up the tour surface.
func WithPanels(panels ...Panel) Option {
	return func(cfg *Config) {
		if cfg == nil {
			return
		}
		cfg.Panels = append(cfg.Panels, panels...)
	}
}

// WithSteps sets the tour's step definitions.
func WithSteps(steps ...tour.StepDefinition) Option {
	return func(cfg *Config) {
		if cfg == nil {
			return
		}
		cfg.Steps = append(cfg.Steps, steps...)
	}
}

// WithTourConfig sets the engine configuration.
func WithTourConfig(tc tour.Config) Option {
	return func(cfg *Config) {
		if cfg == nil {
			return
		}
		cfg.TourConfig = tc
	}
}

// WithDefinitions takes steps and the autoplay flag from a loaded tour
// definition.
func WithDefinitions(def *definitions.Tour) Option {
	return func(cfg *Config) {
		if cfg == nil || def == nil {
			return
		}
		cfg.Steps = append(cfg.Steps, def.StepDefinitions()...)
		cfg.TourConfig.Autoplay = cfg.TourConfig.Autoplay || def.Autoplay
	}
}

// WithProgramOptions appends tea.Program options.
func WithProgramOptions(opts ...tea.ProgramOption) Option {
	return func(cfg *Config) {
		if cfg == nil {
			return
		}
		cfg.ProgramOptions = append(cfg.ProgramOptions, opts...)
	}
}

// App hosts the Bubble Tea-driven tour player.
type App struct {
	cfg      Config
	mu       sync.Mutex
	program  *tea.Program
	inFlight bool
}

// New constructs an App from the provided options.
func New(opts ...Option) (*App, error) {
	cfg := Config{TourConfig: tour.DefaultConfig()}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if len(cfg.Panels) == 0 {
		return nil, ErrNoPanels
	}
	if len(cfg.Steps) == 0 {
		return nil, ErrNoSteps
	}
	return &App{cfg: cfg}, nil
}

// Start runs the player, beginning the tour at the first step.
func (a *App) Start(ctx context.Context) error {
	return a.start(ctx, 0)
}

// StartFrom runs the player, beginning the tour at the provided step index.
func (a *App) StartFrom(ctx context.Context, start int) error {
	if start < 0 {
		start = 0
	}
	return a.start(ctx, start)
}

// Stop signals the running player (if any) to exit.
func (a *App) Stop() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.program == nil {
		return nil
	}
	a.program.Quit()
	return nil
}

func (a *App) start(ctx context.Context, start int) error {
	if ctx == nil {
		ctx = context.Background()
	}
	model, err := newModel(a.cfg, start)
	if err != nil {
		return err
	}
	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, a.cfg.ProgramOptions...)
	program := tea.NewProgram(model, opts...)

	a.mu.Lock()
	if a.inFlight {
		a.mu.Unlock()
		return ErrProgramRunning
	}
	a.program = program
	a.inFlight = true
	a.mu.Unlock()

	defer func() {
		model.controller.Reset(true)
		a.mu.Lock()
		a.program = nil
		a.inFlight = false
		a.mu.Unlock()
	}()

	_, runErr := program.Run()
	return runErr
}
