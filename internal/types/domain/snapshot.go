package domain

import (
	"bytes"

	"github.com/cespare/xxhash"
	"github.com/dustin/go-humanize"
	"github.com/labi-le/clipsync/pkg/mime"
	"github.com/rs/zerolog"
)

// Snapshot is the content of one selection at one point in time.
// It is replaced as a whole, never modified in place.
type Snapshot struct {
	Data []byte
	Mime string
}

// Empty is what a side looks like before the first read or after a failed one.
var Empty = Snapshot{}

func NewSnapshot(data []byte, m string) Snapshot {
	return Snapshot{Data: data, Mime: m}
}

func (s Snapshot) IsEmpty() bool { return len(s.Data) == 0 }

// SameData reports whether both snapshots carry the same raw bytes.
func (s Snapshot) SameData(other Snapshot) bool {
	return bytes.Equal(s.Data, other.Data)
}

func (s Snapshot) Hash() uint64 { return xxhash.Sum64(s.Data) }

func (s Snapshot) MarshalZerologObject(e *zerolog.Event) {
	e.Str("mime", s.Mime)
	e.Stringer("kind", mime.AsType(s.Mime))
	e.Str("size", humanize.IBytes(uint64(len(s.Data))))
	e.Uint64("hash", s.Hash())
}
