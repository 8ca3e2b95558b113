package logging

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ComponentKey is the field naming the subsystem that wrote an entry.
const ComponentKey = "cmp"

// Component returns the global logger tagged with name.
func Component(name string) zerolog.Logger {
	return Sub(log.Logger, name)
}

// Sub returns parent tagged with name. Use it when a logger is injected
// rather than taken from the global.
func Sub(parent zerolog.Logger, name string) zerolog.Logger {
	return parent.With().Str(ComponentKey, name).Logger()
}
