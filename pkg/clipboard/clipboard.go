package clipboard

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"time"
)

// Backend is one clipboard selection driven through its native helper tools.
type Backend interface {
	// Targets lists the types the current selection owner offers.
	Targets(ctx context.Context) ([]string, error)
	// Read returns the selection converted to target.
	Read(ctx context.Context, target string) ([]byte, error)
	// Write takes ownership of the selection and offers data as target.
	Write(ctx context.Context, target string, data []byte) error
	Name() string
}

var (
	ErrTimeout     = errors.New("clipboard helper timed out")
	ErrNoContent   = errors.New("clipboard has no content for target")
	ErrToolMissing = errors.New("required tool not found in PATH")
)

// waitDelay bounds how long a killed helper may keep its pipes open
// through a forked child.
const waitDelay = 100 * time.Millisecond

func command(ctx context.Context, name string, args ...string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.WaitDelay = waitDelay
	return cmd
}

// Output runs the helper and returns its stdout.
// A non-zero exit is reported as ErrNoContent, a deadline as ErrTimeout.
func Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	out, err := command(ctx, name, args...).Output()
	if err == nil {
		return out, nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		if errors.Is(ctxErr, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%s: %w", name, ErrTimeout)
		}
		return nil, fmt.Errorf("%s: %w", name, ctxErr)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return nil, fmt.Errorf(
			"%s exited with %d (%s): %w",
			name,
			exitErr.ExitCode(),
			bytes.TrimSpace(exitErr.Stderr),
			ErrNoContent,
		)
	}

	return nil, fmt.Errorf("%s: %w", name, err)
}

// Input runs the helper with data on its stdin.
func Input(ctx context.Context, data []byte, name string, args ...string) error {
	var (
		cmd = command(ctx, name, args...)
		in  io.WriteCloser
		err error
	)

	if in, err = cmd.StdinPipe(); err != nil {
		return err
	}

	if err = cmd.Start(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	if _, err = in.Write(data); err != nil {
		_ = cmd.Wait()
		return fmt.Errorf("%s: write stdin: %w", name, err)
	}

	if err = in.Close(); err != nil {
		_ = cmd.Wait()
		return fmt.Errorf("%s: close stdin: %w", name, err)
	}

	if err = cmd.Wait(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	return nil
}

// RequireTools checks that every named helper is on PATH and reports all
// the missing ones at once.
func RequireTools(names ...string) error {
	var errs []error

	for _, name := range names {
		if _, err := exec.LookPath(name); err != nil {
			errs = append(errs, fmt.Errorf("%w: %s", ErrToolMissing, name))
		}
	}

	return errors.Join(errs...)
}
