package tour

import "time"

// Config controls tour behavior. Zero-valued timing fields are replaced with
// defaults on construction.
type Config struct {
	// Animate enables the close animation on manual resets.
	Animate bool

	// Opacity of the dimming overlay, 0-1.
	Opacity float64

	// Padding around the highlighted element, in cells.
	Padding int

	// AllowClose lets a click outside the highlighted element close the
	// tour.
	AllowClose bool

	// KeyboardControl enables Escape/arrow-key handling.
	KeyboardControl bool

	// OverlayClickNext makes a click outside the highlighted element
	// advance instead of close. Takes priority over AllowClose.
	OverlayClickNext bool

	// Autoplay starts the tour with automatic advancement enabled.
	Autoplay bool

	// StageBackground is the fill behind the highlighted element.
	StageBackground string

	// SettleDelay is the fixed wait after entering a step before media
	// and progress work begin, letting the renderer catch up.
	// Default: 300ms.
	SettleDelay time.Duration

	// TickInterval is how often the progress fill is advanced.
	// Default: 100ms.
	TickInterval time.Duration
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{
		Animate:         true,
		Opacity:         0.75,
		Padding:         1,
		AllowClose:      true,
		KeyboardControl: true,
		StageBackground: "#ffffff",
		SettleDelay:     300 * time.Millisecond,
		TickInterval:    100 * time.Millisecond,
	}
}

func normalizeConfig(cfg Config) Config {
	if cfg.SettleDelay <= 0 {
		cfg.SettleDelay = DefaultConfig().SettleDelay
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = DefaultConfig().TickInterval
	}
	if cfg.Opacity < 0 {
		cfg.Opacity = 0
	}
	if cfg.Opacity > 1 {
		cfg.Opacity = 1
	}
	return cfg
}

// Option mutates controller construction.
type Option func(*Controller)

// WithHighlighter sets the highlighting collaborator.
func WithHighlighter(h Highlighter) Option {
	return func(c *Controller) {
		if h != nil {
			c.highlighter = h
		}
	}
}

// WithResolver sets the element resolution collaborator.
func WithResolver(r Resolver) Option {
	return func(c *Controller) {
		if r != nil {
			c.resolver = r
		}
	}
}

// WithMediaPlayer sets the per-step media collaborator.
func WithMediaPlayer(m MediaPlayer) Option {
	return func(c *Controller) {
		if m != nil {
			c.media = m
		}
	}
}

// WithProgressRenderer sets the progress indicator collaborator.
func WithProgressRenderer(r ProgressRenderer) Option {
	return func(c *Controller) {
		if r != nil {
			c.renderer = r
		}
	}
}

// WithWatcher sets the render-tree watcher used to await indicator mounting.
func WithWatcher(w Watcher) Option {
	return func(c *Controller) {
		if w != nil {
			c.watcher = w
		}
	}
}

// WithObserver registers an observer for lifecycle notifications.
func WithObserver(obs Observer) Option {
	return func(c *Controller) {
		if obs != nil {
			c.observers = append(c.observers, obs)
		}
	}
}
