// Package diag provides the module's structured diagnostics logging.
// Quirk workarounds degrade silently from the user's point of view; the
// details land here instead. Logging is disabled by default.
package diag

import (
	"io"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	mu     sync.RWMutex
	logger = zerolog.Nop()
)

// Logger returns the current diagnostics logger.
func Logger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// SetLogger replaces the diagnostics logger for the whole module.
func SetLogger(l zerolog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

// Enable configures diagnostics to write console-formatted events at the
// given level to w.
func Enable(w io.Writer, level zerolog.Level) {
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	SetLogger(zerolog.New(out).Level(level).With().Timestamp().Logger())
}
