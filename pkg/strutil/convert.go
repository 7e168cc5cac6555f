package strutil

import (
	"strings"

	"golang.org/x/text/encoding/unicode"
)

// DecodeUTF8 decodes b as UTF-8, replacing every invalid byte with U+FFFD,
// and drops trailing NUL characters.
func DecodeUTF8(b []byte) string {
	out, err := unicode.UTF8.NewDecoder().Bytes(b)
	if err != nil {
		// the replacing decoder does not fail on malformed input
		out = []byte(strings.ToValidUTF8(string(b), "�"))
	}

	return strings.TrimRight(string(out), "\x00")
}

// SplitLines splits s on any line terminator, dropping empty lines.
func SplitLines(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == '\n' || r == '\r'
	})
}
