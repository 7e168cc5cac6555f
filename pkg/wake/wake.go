// Package wake provides the signals that start a synchronization cycle.
package wake

import (
	"context"
	"errors"
)

// Source blocks until some clipboard activity happened since the previous
// call returned. It says nothing about which selection changed.
type Source interface {
	Wait(ctx context.Context) error
}

var ErrClosed = errors.New("wake source closed")

// Func adapts a plain function to Source.
type Func func(ctx context.Context) error

func (f Func) Wait(ctx context.Context) error { return f(ctx) }
