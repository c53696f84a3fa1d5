package mosaic

import (
	"github.com/rs/zerolog"
)

// WorldOption augments how a World is constructed. Options are applied after
// the environment config is loaded, so they win over environment values.
type WorldOption struct {
	worldOption func(*World)
}

// WithLogger replaces the world's logger entirely. The world still attaches
// its instance id to the logger's context.
func WithLogger(logger zerolog.Logger) WorldOption {
	return WorldOption{
		worldOption: func(w *World) {
			w.overrideLogger = &logger
		},
	}
}

// WithPrettyLog switches log output to a human-friendly console format.
// Intended for local development.
func WithPrettyLog() WorldOption {
	return WorldOption{
		worldOption: func(w *World) {
			w.cfg.MosaicLogPretty = true
		},
	}
}

// WithValidation toggles the extra diagnostic checks: leaked-entity
// detection at teardown. The incremental protocol's own membership asserts
// stay on regardless.
func WithValidation(enabled bool) WorldOption {
	return WorldOption{
		worldOption: func(w *World) {
			w.cfg.MosaicValidation = enabled
		},
	}
}

// WithEntityCapacity presizes the entity table and each component pool. The
// default is 512; tables grow past the capacity as needed.
func WithEntityCapacity(n int) WorldOption {
	return WorldOption{
		worldOption: func(w *World) {
			w.cfg.MosaicEntityCapacity = n
		},
	}
}

// WithListeners attaches debug listeners that receive lifecycle callbacks.
// Callbacks fire synchronously after each state change commits.
func WithListeners(listeners ...Listener) WorldOption {
	return WorldOption{
		worldOption: func(w *World) {
			w.listeners = append(w.listeners, listeners...)
		},
	}
}
