package bridge

import (
	"time"

	"github.com/labi-le/clipsync/internal/notification"
	"github.com/labi-le/clipsync/pkg/htmltext"
	"github.com/rs/zerolog"
)

// Reducer turns a text/html payload into plain text.
type Reducer func(html []byte) ([]byte, error)

type Options struct {
	Logger   zerolog.Logger
	Notifier notification.Notifier
	Reducer  Reducer

	// TargetsTimeout and ReadTimeout bound each side's helper separately.
	// Writes are not bounded.
	TargetsTimeout time.Duration
	ReadTimeout    time.Duration

	// WakeErrorDelay is the pause after a failed wait, so a broken wake
	// helper does not spin.
	WakeErrorDelay time.Duration
}

type Option func(*Options)

//nolint:mnd //shut up
var DefaultOptions = Options{
	Logger:         zerolog.Nop(),
	Notifier:       notification.NullNotifier{},
	Reducer:        htmltext.Reduce,
	TargetsTimeout: 500 * time.Millisecond,
	ReadTimeout:    800 * time.Millisecond,
	WakeErrorDelay: time.Second,
}

func NewOptions(opts ...Option) Options {
	options := DefaultOptions

	for _, opt := range opts {
		opt(&options)
	}

	return options
}

func WithLogger(logger zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

func WithNotifier(notifier notification.Notifier) Option {
	return func(o *Options) {
		o.Notifier = notifier
	}
}

func WithReducer(reducer Reducer) Option {
	return func(o *Options) {
		o.Reducer = reducer
	}
}

func WithWakeErrorDelay(d time.Duration) Option {
	return func(o *Options) {
		o.WakeErrorDelay = d
	}
}
