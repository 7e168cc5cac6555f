package wake

import (
	"context"
	"fmt"
	"sync"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xfixes"
	"github.com/jezek/xgb/xproto"
	"github.com/rs/zerolog"
)

const (
	xFixesClientMajor = 5
	xFixesClientMinor = 0

	clipboardAtom = "CLIPBOARD"
)

var _ Source = (*XFixes)(nil)

// XFixes listens for CLIPBOARD owner changes on the X server directly,
// which is what clipnotify does without the process per wait.
type XFixes struct {
	logger zerolog.Logger
	conn   *xgb.Conn
	win    xproto.Window

	events chan struct{}
	done   chan struct{}

	mu  sync.Mutex
	err error
}

func NewXFixes(log zerolog.Logger) (*XFixes, error) {
	x := &XFixes{
		logger: log.With().Str("component", "xfixes").Logger(),
		events: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}

	if err := x.init(); err != nil {
		if x.conn != nil {
			x.conn.Close()
		}
		return nil, err
	}

	go x.listen()

	return x, nil
}

func (x *XFixes) init() error {
	var err error
	if x.conn, err = xgb.NewConn(); err != nil {
		return fmt.Errorf("xgb connect: %w", err)
	}

	if err := xfixes.Init(x.conn); err != nil {
		return fmt.Errorf("xfixes init: %w", err)
	}

	if _, err := xfixes.QueryVersion(x.conn, xFixesClientMajor, xFixesClientMinor).Reply(); err != nil {
		return fmt.Errorf("xfixes query version: %w", err)
	}

	reply, err := xproto.InternAtom(x.conn, false, uint16(len(clipboardAtom)), clipboardAtom).Reply()
	if err != nil {
		return fmt.Errorf("intern %s: %w", clipboardAtom, err)
	}

	screen := xproto.Setup(x.conn).DefaultScreen(x.conn)
	if x.win, err = xproto.NewWindowId(x.conn); err != nil {
		return err
	}

	err = xproto.CreateWindowChecked(
		x.conn,
		screen.RootDepth,
		x.win,
		screen.Root,
		0,
		0,
		1,
		1,
		0,
		xproto.WindowClassInputOutput,
		screen.RootVisual,
		0,
		nil,
	).Check()
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}

	mask := xfixes.SelectionEventMaskSetSelectionOwner |
		xfixes.SelectionEventMaskSelectionWindowDestroy |
		xfixes.SelectionEventMaskSelectionClientClose
	err = xfixes.SelectSelectionInputChecked(x.conn, x.win, reply.Atom, uint32(mask)).Check()
	if err != nil {
		return fmt.Errorf("select selection input: %w", err)
	}

	return nil
}

func (x *XFixes) listen() {
	defer close(x.done)

	for {
		ev, err := x.conn.WaitForEvent()
		if ev == nil && err == nil {
			x.setErr(ErrClosed)
			return
		}
		if err != nil {
			x.logger.Debug().Err(err).Msg("x event error")
			continue
		}

		if _, ok := ev.(xfixes.SelectionNotifyEvent); !ok {
			continue
		}

		// bursts collapse into a single pending edge
		select {
		case x.events <- struct{}{}:
		default:
		}
	}
}

func (x *XFixes) setErr(err error) {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.err = err
}

func (x *XFixes) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-x.events:
		return nil
	case <-x.done:
		x.mu.Lock()
		defer x.mu.Unlock()
		return x.err
	}
}

func (x *XFixes) Close() error {
	x.conn.Close()
	<-x.done
	return nil
}
