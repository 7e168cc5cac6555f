// Package clipboardtest installs fake clipboard helpers on PATH so backends
// can be tested without a display server.
package clipboardtest

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const script = `#!/bin/sh
printf '%%s\n' "$@" > '%[1]s/args'
cat > '%[1]s/stdin'
cat '%[1]s/stdout'
`

// Tool is a fake helper binary that records its arguments and stdin and
// prints a fixed stdout.
type Tool struct {
	t   testing.TB
	dir string
}

// Install puts a fake name on PATH for the rest of the test. It must not
// be used from parallel tests.
func Install(t testing.TB, name, stdout string) *Tool {
	t.Helper()

	dir := t.TempDir()
	bin := filepath.Join(t.TempDir(), name)

	if err := os.WriteFile(filepath.Join(dir, "stdout"), []byte(stdout), 0o600); err != nil {
		t.Fatal(err)
	}
	//nolint:gosec // the fake must be executable
	if err := os.WriteFile(bin, []byte(fmt.Sprintf(script, dir)), 0o755); err != nil {
		t.Fatal(err)
	}

	t.Setenv("PATH", filepath.Dir(bin)+string(os.PathListSeparator)+os.Getenv("PATH"))

	return &Tool{t: t, dir: dir}
}

// Args returns the arguments of the last run, nil if it never ran.
func (f *Tool) Args() []string {
	f.t.Helper()

	out, err := os.ReadFile(filepath.Join(f.dir, "args"))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		f.t.Fatal(err)
	}

	return strings.Split(strings.TrimSuffix(string(out), "\n"), "\n")
}

// Stdin returns what the last run read from its stdin.
func (f *Tool) Stdin() string {
	f.t.Helper()

	out, err := os.ReadFile(filepath.Join(f.dir, "stdin"))
	if err != nil {
		f.t.Fatal(err)
	}

	return string(out)
}
