package wlclipboard

import (
	"context"

	"github.com/labi-le/clipsync/pkg/clipboard"
	"github.com/labi-le/clipsync/pkg/mime"
	"github.com/labi-le/clipsync/pkg/strutil"
	"github.com/rs/zerolog"
)

const (
	Copy  = "wl-copy"
	Paste = "wl-paste"

	Name = "wl-clipboard"
)

var _ clipboard.Backend = (*Clipboard)(nil)

// Clipboard is the Wayland selection as seen through wl-clipboard.
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
	out, err := clipboard.Output(ctx, Paste, "--list-types")
	if err != nil {
		return nil, err
	}

	return strutil.SplitLines(strutil.DecodeUTF8(out)), nil
}

func (c *Clipboard) Read(ctx context.Context, target string) ([]byte, error) {
	c.logger.Trace().Str("target", target).Msg("read")

	// wl-paste appends a newline to text unless told otherwise
	return clipboard.Output(ctx, Paste, "--no-newline", "--type", target)
}

// Write offers every textual payload as text/plain;charset=utf-8, which is
// what Wayland clients look for first.
func (c *Clipboard) Write(ctx context.Context, target string, data []byte) error {
	if mime.IsText(target) || target == "" {
		target = mime.PlainUTF8
	}

	c.logger.Trace().Str("target", target).Int("length", len(data)).Msg("write")

	return clipboard.Input(ctx, data, Copy, "--type", target)
}
