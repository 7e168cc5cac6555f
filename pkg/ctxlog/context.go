package ctxlog

import (
	"github.com/rs/zerolog"
)

func Op(logger zerolog.Logger, op string) zerolog.Logger {
	return logger.With().Str("op", op).Logger()
}

// Cycle tags every line of one synchronization cycle with its id.
func Cycle(logger zerolog.Logger, id int64) zerolog.Logger {
	return logger.With().Int64("cycle", id).Logger()
}
