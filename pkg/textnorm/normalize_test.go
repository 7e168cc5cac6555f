package textnorm_test

import (
	"bytes"
	"testing"

	"github.com/labi-le/clipsync/pkg/textnorm"
)

func TestKey_Equivalence(t *testing.T) {
	want := textnorm.Key([]byte("hello"), "text/plain")

	for _, in := range []string{"hello\n", "hello\r\n\r\n", "\nhello", "hello\x00", "hello\n\x00\x00"} {
		if got := textnorm.Key([]byte(in), "text/plain"); !bytes.Equal(got, want) {
			t.Errorf("Key(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestKey_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"hello",
		"hello\n",
		"\r\n\r\nhello\r\n",
		"a\x00\n",
		"a\n\x00",
		"\x00\nlead",
		"mid\ndle\n",
		"bad \xff\xfe bytes\n",
		"\n\r\n",
		"trailing space \n",
	}
	mimes := []string{"text/plain", "text/plain;charset=utf-8", "UTF8_STRING", "STRING", "text/html"}

	for _, m := range mimes {
		for _, in := range inputs {
			once := textnorm.Key([]byte(in), m)
			twice := textnorm.Key(once, m)

			if !bytes.Equal(once, twice) {
				t.Errorf("Key not idempotent for %q (%s): %q then %q", in, m, once, twice)
			}
		}
	}
}

func TestKey_NonTextual(t *testing.T) {
	png := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x00}

	if got := textnorm.Key(png, "image/png"); !bytes.Equal(got, png) {
		t.Errorf("image data must be compared byte for byte, got %q", got)
	}
}

func TestKey_KeepsInnerWhitespace(t *testing.T) {
	got := textnorm.Key([]byte("\n  two\nlines  \n"), "text/plain")

	if want := []byte("  two\nlines  "); !bytes.Equal(got, want) {
		t.Errorf("Key = %q, want %q", got, want)
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name   string
		a, b   string
		am, bm string
		want   bool
	}{
		{"newline only", "x\n", "x", "text/plain", "UTF8_STRING", true},
		{"different text", "one", "two", "text/plain", "text/plain", false},
		{"textual vs raw binary", "x\n", "x", "text/plain", "application/octet-stream", true},
		{"binary keeps newline", "x\n", "x\n", "text/plain", "application/octet-stream", false},
		{"binary exact", "x\n", "x\n", "image/png", "image/png", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := textnorm.Equal([]byte(tt.a), tt.am, []byte(tt.b), tt.bm); got != tt.want {
				t.Errorf("Equal = %v, want %v", got, tt.want)
			}
		})
	}
}
