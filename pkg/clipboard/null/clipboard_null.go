// Package null is an in-memory clipboard backend with no process behind it.
package null

import (
	"context"
	"slices"
	"sync"

	"github.com/labi-le/clipsync/pkg/clipboard"
)

var _ clipboard.Backend = (*Clipboard)(nil)

// Entry is one write received by the clipboard.
type Entry struct {
	Target string
	Data   []byte
}

type Clipboard struct {
	name string

	mu      sync.Mutex
	targets []string
	data    map[string][]byte
	writes  []Entry
	reads   int

	targetsErr error
	readErr    error
	writeErr   error
}

func NewNull(name string) *Clipboard {
	return &Clipboard{name: name, data: map[string][]byte{}}
}

func (n *Clipboard) Name() string { return n.name }

// Set replaces the selection, as a user copy would.
func (n *Clipboard) Set(target string, data []byte) {
	n.Offer(map[string][]byte{target: data}, target)
}

// Offer replaces the selection with several representations, advertised in
// the given order.
func (n *Clipboard) Offer(data map[string][]byte, order ...string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.targets = slices.Clone(order)
	n.data = make(map[string][]byte, len(data))
	for k, v := range data {
		n.data[k] = slices.Clone(v)
	}
}

// Fail makes the following calls return the given errors, nil clears them.
func (n *Clipboard) Fail(targets, read, write error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.targetsErr, n.readErr, n.writeErr = targets, read, write
}

func (n *Clipboard) Targets(context.Context) ([]string, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.targetsErr != nil {
		return nil, n.targetsErr
	}
	return slices.Clone(n.targets), nil
}

func (n *Clipboard) Read(_ context.Context, target string) ([]byte, error) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.reads++
	if n.readErr != nil {
		return nil, n.readErr
	}

	data, ok := n.data[target]
	if !ok {
		return nil, clipboard.ErrNoContent
	}
	return slices.Clone(data), nil
}

func (n *Clipboard) Write(_ context.Context, target string, data []byte) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.writes = append(n.writes, Entry{Target: target, Data: slices.Clone(data)})
	if n.writeErr != nil {
		return n.writeErr
	}

	n.targets = []string{target}
	n.data = map[string][]byte{target: slices.Clone(data)}
	return nil
}

// Writes returns every write received so far, failed ones included.
func (n *Clipboard) Writes() []Entry {
	n.mu.Lock()
	defer n.mu.Unlock()

	return slices.Clone(n.writes)
}

// Reads counts calls to Read.
func (n *Clipboard) Reads() int {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.reads
}
