package wake

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/rs/zerolog"
)

const ClipnotifyBinary = "clipnotify"

var _ Source = (*Clipnotify)(nil)

// Clipnotify spawns one clipnotify process per wait; it exits on the next
// selection change.
type Clipnotify struct {
	logger zerolog.Logger
	binary string
}

func NewClipnotify(log zerolog.Logger) *Clipnotify {
	return &Clipnotify{
		logger: log.With().Str("component", ClipnotifyBinary).Logger(),
		binary: ClipnotifyBinary,
	}
}

func (c *Clipnotify) Wait(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, c.binary)

	c.logger.Trace().Msg("waiting for selection change")

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%s: %w", c.binary, err)
	}

	return nil
}
