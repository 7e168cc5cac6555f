package bridge

import (
	"bytes"
	"context"
	"errors"
	"slices"
	"time"

	"github.com/labi-le/clipsync/internal/types/domain"
	"github.com/labi-le/clipsync/pkg/clipboard"
	"github.com/labi-le/clipsync/pkg/ctxlog"
	"github.com/labi-le/clipsync/pkg/id"
	"github.com/labi-le/clipsync/pkg/mime"
	"github.com/labi-le/clipsync/pkg/textnorm"
	"github.com/labi-le/clipsync/pkg/wake"
	"github.com/rs/zerolog"
)

// Engine mirrors the Wayland and X11 selections. It runs one cycle at a
// time and owns the remembered state, so nothing in it is locked.
type Engine struct {
	backends [2]clipboard.Backend
	wake     wake.Source
	opts     Options
	logger   zerolog.Logger
	state    domain.State
}

func New(wayland, x11 clipboard.Backend, src wake.Source, opts Options) *Engine {
	if opts.Reducer == nil {
		opts.Reducer = DefaultOptions.Reducer
	}
	if opts.Notifier == nil {
		opts.Notifier = DefaultOptions.Notifier
	}
	if opts.TargetsTimeout <= 0 {
		opts.TargetsTimeout = DefaultOptions.TargetsTimeout
	}
	if opts.ReadTimeout <= 0 {
		opts.ReadTimeout = DefaultOptions.ReadTimeout
	}
	if opts.WakeErrorDelay <= 0 {
		opts.WakeErrorDelay = DefaultOptions.WakeErrorDelay
	}

	e := &Engine{
		wake:   src,
		opts:   opts,
		logger: opts.Logger.With().Str("component", "bridge").Logger(),
	}
	e.backends[domain.Wayland] = wayland
	e.backends[domain.X11] = x11

	return e
}

// State returns a copy of what is remembered about both sides.
func (e *Engine) State() domain.State {
	return e.state
}

// Run waits for clipboard activity and runs a cycle after each wake-up
// until ctx is done. Backend failures never stop it.
func (e *Engine) Run(ctx context.Context) error {
	log := ctxlog.Op(e.logger, "engine.Run")
	log.Info().
		Str("wayland", e.backends[domain.Wayland].Name()).
		Str("x11", e.backends[domain.X11].Name()).
		Msg("starting Wayland <-> X11 clipboard sync")

	for {
		if err := e.wake.Wait(ctx); err != nil {
			if ctx.Err() != nil {
				return nil
			}

			log.Warn().Err(err).Dur("retry_in", e.opts.WakeErrorDelay).Msg("wake source failed")
			if !sleep(ctx, e.opts.WakeErrorDelay) {
				return nil
			}
		}

		decision := e.Cycle(ctx)
		log.Trace().Stringer("decision", decision).Msg("cycle done")
	}
}

func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// Cycle reads both sides once, decides and propagates.
func (e *Engine) Cycle(ctx context.Context) Decision {
	log := ctxlog.Cycle(ctxlog.Op(e.logger, "engine.Cycle"), id.New())

	var current [2]domain.Snapshot
	for _, side := range domain.Sides {
		current[side] = e.capture(ctx, side, log)
	}

	return e.decide(ctx, current, log)
}

// capture reads a side and reduces HTML to text. When the reduction fails
// the side is read again and kept as HTML. HTML without visible text, like
// a copied <img>, gives way to the next offered target.
func (e *Engine) capture(ctx context.Context, side domain.Side, log zerolog.Logger) domain.Snapshot {
	snap := e.read(ctx, side, log)
	if snap.Mime != mime.HTML {
		return snap
	}

	text, err := e.opts.Reducer(snap.Data)
	if err != nil {
		log.Warn().Err(err).Stringer("side", side).Msg("failed to strip html, reading original again")
		return e.read(ctx, side, log)
	}

	if len(bytes.TrimSpace(text)) == 0 {
		log.Debug().Stringer("side", side).Msg("html has no text, reading next target")
		return e.read(ctx, side, log, mime.HTML)
	}

	log.Debug().Stringer("side", side).Msg("stripped html")
	return domain.NewSnapshot(text, mime.PlainUTF8)
}

// read never fails: any error leaves the side empty for this cycle.
// Targets listed in skip are not considered.
func (e *Engine) read(ctx context.Context, side domain.Side, log zerolog.Logger, skip ...string) domain.Snapshot {
	backend := e.backends[side]
	log = log.With().Stringer("side", side).Logger()

	listCtx, cancelList := context.WithTimeout(ctx, e.opts.TargetsTimeout)
	targets, err := backend.Targets(listCtx)
	cancelList()
	switch {
	case err == nil:
	case errors.Is(err, clipboard.ErrTimeout):
		log.Warn().Err(err).Msg("listing targets timed out")
	default:
		log.Trace().Err(err).Msg("no targets listed")
	}

	targets = slices.DeleteFunc(targets, func(t string) bool {
		return slices.Contains(skip, t)
	})
	target := mime.Select(targets)

	readCtx, cancelRead := context.WithTimeout(ctx, e.opts.ReadTimeout)
	defer cancelRead()

	data, err := backend.Read(readCtx, target)
	switch {
	case err == nil:
		return domain.NewSnapshot(data, target)
	case errors.Is(err, clipboard.ErrNoContent):
		log.Trace().Err(err).Str("target", target).Msg("selection empty")
	case errors.Is(err, clipboard.ErrTimeout):
		log.Warn().Err(err).Str("target", target).Msg("read timed out")
	default:
		log.Warn().Err(err).Str("target", target).Msg("read failed")
	}

	return domain.Empty
}

// changed reports whether side holds something new. An empty read carries
// no information and never counts as a change.
func (e *Engine) changed(side domain.Side, cur domain.Snapshot) bool {
	return !cur.IsEmpty() && !cur.SameData(e.state.Get(side))
}

func (e *Engine) decide(ctx context.Context, cur [2]domain.Snapshot, log zerolog.Logger) Decision {
	var (
		w = cur[domain.Wayland]
		x = cur[domain.X11]

		wChanged = e.changed(domain.Wayland, w)
		xChanged = e.changed(domain.X11, x)
		same     = textnorm.Equal(w.Data, w.Mime, x.Data, x.Mime)
	)

	switch {
	case wChanged && !same:
		e.propagate(ctx, domain.Wayland, w, log)
		return WaylandToX11

	case xChanged && !same:
		e.propagate(ctx, domain.X11, x, log)
		return X11ToWayland

	case wChanged && xChanged:
		log.Info().Object("snapshot", w).Msg("both sides changed, preferring Wayland")
		e.propagate(ctx, domain.Wayland, w, log)
		e.state.Remember(domain.X11, w)
		return Conflict

	default:
		for _, side := range domain.Sides {
			if !cur[side].IsEmpty() {
				e.state.Remember(side, cur[side])
			}
		}
		return NoChange
	}
}

// propagate copies snap from one side to the other unless the other side
// is already known to hold it, which would only echo its own write back.
func (e *Engine) propagate(ctx context.Context, from domain.Side, snap domain.Snapshot, log zerolog.Logger) {
	to := from.Other()

	if !snap.SameData(e.state.Get(to)) {
		e.transfer(ctx, from, snap, log)
		// remembered even when the write failed
		e.state.Remember(to, snap)
	}

	e.state.Remember(from, snap)
}

func (e *Engine) transfer(ctx context.Context, from domain.Side, snap domain.Snapshot, log zerolog.Logger) {
	to := from.Other()
	log = log.With().Stringer("from", from).Stringer("to", to).Logger()

	log.Info().Object("snapshot", snap).Msgf("[%s -> %s]", from, to)

	if err := e.backends[to].Write(ctx, snap.Mime, snap.Data); err != nil {
		log.Error().Err(err).Msg("failed to write clipboard")
		return
	}

	e.opts.Notifier.Notify("%s -> %s (%s)", from, to, mime.AsType(snap.Mime))
}
