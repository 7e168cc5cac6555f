package xclip_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/labi-le/clipsync/pkg/clipboard/clipboardtest"
	"github.com/labi-le/clipsync/pkg/clipboard/xclip"
	"github.com/labi-le/clipsync/pkg/mime"
	"github.com/rs/zerolog"
)

func TestClipboard_Targets(t *testing.T) {
	tool := clipboardtest.Install(t, xclip.Binary, "TARGETS\nUTF8_STRING\ntext/html\n")

	got, err := xclip.New(zerolog.Nop()).Targets(testContext(t))
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff([]string{"TARGETS", mime.UTF8String, mime.HTML}, got); diff != "" {
		t.Errorf("targets mismatch (-want +got):\n%s", diff)
	}

	want := []string{"-selection", "clipboard", "-o", "-t", "TARGETS"}
	if diff := cmp.Diff(want, tool.Args()); diff != "" {
		t.Errorf("xclip args mismatch (-want +got):\n%s", diff)
	}
}

func TestClipboard_Read(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{"utf8 text", mime.PlainUTF8},
		{"UTF8_STRING", mime.UTF8String},
		{"image", "image/png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tool := clipboardtest.Install(t, xclip.Binary, "payload")

			got, err := xclip.New(zerolog.Nop()).Read(testContext(t), tt.target)
			if err != nil {
				t.Fatal(err)
			}
			if string(got) != "payload" {
				t.Errorf("Read = %q, want %q", got, "payload")
			}

			want := []string{"-selection", "clipboard", "-o", "-t", tt.target}
			if diff := cmp.Diff(want, tool.Args()); diff != "" {
				t.Errorf("xclip args mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestClipboard_Write(t *testing.T) {
	tests := []struct {
		name   string
		target string
		want   []string
	}{
		{"UTF8_STRING passed through", mime.UTF8String, []string{"-selection", "clipboard", "-i", "-t", mime.UTF8String}},
		{"plain text passed through", mime.Plain, []string{"-selection", "clipboard", "-i", "-t", mime.Plain}},
		{"utf8 text passed through", mime.PlainUTF8, []string{"-selection", "clipboard", "-i", "-t", mime.PlainUTF8}},
		{"image passed through", "image/png", []string{"-selection", "clipboard", "-i", "-t", "image/png"}},
		{"no target", "", []string{"-selection", "clipboard", "-i"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tool := clipboardtest.Install(t, xclip.Binary, "")

			if err := xclip.New(zerolog.Nop()).Write(testContext(t), tt.target, []byte("data\n")); err != nil {
				t.Fatal(err)
			}

			if diff := cmp.Diff(tt.want, tool.Args()); diff != "" {
				t.Errorf("xclip args mismatch (-want +got):\n%s", diff)
			}
			if got := tool.Stdin(); got != "data\n" {
				t.Errorf("stdin = %q, want %q", got, "data\n")
			}
		})
	}
}

// testContext stands in for testing.T.Context, which requires Go 1.24.
func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return ctx
}
