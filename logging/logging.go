// Package logging provides component-scoped zerolog loggers for the tour
// engine. The default output is discarded so the engine stays silent when
// embedded in a TUI; hosts that want logs call Setup with a writer.
package logging

import (
	"io"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu   sync.RWMutex
	base = zerolog.New(io.Discard)
)

// Setup replaces the base logger. Pass os.Stderr (or a file) and a level to
// enable logging; typically called once at program start.
func Setup(w io.Writer, level zerolog.Level) {
	if w == nil {
		w = io.Discard
	}
	mu.Lock()
	defer mu.Unlock()
	base = zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// Component returns a logger tagged with the given component name.
func Component(name string) zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base.With().Str("component", name).Logger()
}
