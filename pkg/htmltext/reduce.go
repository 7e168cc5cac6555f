// Package htmltext turns text/html clipboard payloads into plain text.
package htmltext

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/labi-le/clipsync/pkg/strutil"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var ErrMalformed = errors.New("htmltext: malformed document")

// hidden elements whose text is never shown to the user
var hidden = map[atom.Atom]struct{}{
	atom.Script:   {},
	atom.Style:    {},
	atom.Template: {},
}

// Reduce extracts the visible text of an HTML document: tags are dropped,
// entities decoded, and everything else kept as is, whitespace included.
func Reduce(src []byte) ([]byte, error) {
	z := html.NewTokenizer(strings.NewReader(strutil.DecodeUTF8(src)))

	var (
		out  strings.Builder
		skip int
	)

	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
			}
			return []byte(out.String()), nil

		case html.TextToken:
			if skip == 0 {
				out.Write(z.Text())
			}

		case html.StartTagToken:
			if isHidden(z) {
				skip++
			}

		case html.EndTagToken:
			if skip > 0 && isHidden(z) {
				skip--
			}
		}
	}
}

func isHidden(z *html.Tokenizer) bool {
	name, _ := z.TagName()
	_, ok := hidden[atom.Lookup(name)]
	return ok
}
