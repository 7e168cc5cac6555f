// Package textnorm builds the keys used to tell whether two clipboard
// payloads carry the same content.
package textnorm

import (
	"strings"

	"github.com/labi-le/clipsync/pkg/mime"
	"github.com/labi-le/clipsync/pkg/strutil"
)

// Key returns the comparison key of data read under target m.
//
// Non-textual data is its own key. Textual data is decoded lossily and
// loses trailing NULs together with surrounding CR/LF, since clipboard tools
// disagree about the final newline. The key is never written anywhere.
func Key(data []byte, m string) []byte {
	if !mime.IsText(m) {
		return data
	}

	return []byte(Text(data))
}

// Text is Key for data already known to be textual.
func Text(data []byte) string {
	s := strutil.DecodeUTF8(data)
	s = strings.TrimRight(s, "\x00\r\n")
	return strings.TrimLeft(s, "\r\n")
}

// Equal reports whether a and b carry the same content.
func Equal(a []byte, am string, b []byte, bm string) bool {
	return string(Key(a, am)) == string(Key(b, bm))
}
