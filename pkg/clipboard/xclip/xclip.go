package xclip

import (
	"context"

	"github.com/labi-le/clipsync/pkg/clipboard"
	"github.com/labi-le/clipsync/pkg/strutil"
	"github.com/rs/zerolog"
)

const (
	Binary = "xclip"
	Name   = Binary

	selection = "clipboard"
	targets   = "TARGETS"
)

var _ clipboard.Backend = (*Clipboard)(nil)

// Clipboard is the X11 CLIPBOARD selection as seen through xclip.
type Clipboard struct {
	logger zerolog.Logger
}

func New(log zerolog.Logger) *Clipboard {
	return &Clipboard{
		logger: log.With().Str("component", Name).Logger(),
	}
}

func (c *Clipboard) Name() string { return Name }

func (c *Clipboard) Targets(ctx context.Context) ([]string, error) {
	out, err := clipboard.Output(ctx, Binary, "-selection", selection, "-o", "-t", targets)
	if err != nil {
		return nil, err
	}

	return strutil.SplitLines(strutil.DecodeUTF8(out)), nil
}

func (c *Clipboard) Read(ctx context.Context, target string) ([]byte, error) {
	c.logger.Trace().Str("target", target).Msg("read")

	return clipboard.Output(ctx, Binary, "-selection", selection, "-o", "-t", target)
}

// Write passes target through untouched: X11 clients ask for the exact
// target they were offered.
func (c *Clipboard) Write(ctx context.Context, target string, data []byte) error {
	args := []string{"-selection", selection, "-i"}
	if target != "" {
		args = append(args, "-t", target)
	}

	c.logger.Trace().Str("target", target).Int("length", len(data)).Msg("write")

	return clipboard.Input(ctx, data, Binary, args...)
}
