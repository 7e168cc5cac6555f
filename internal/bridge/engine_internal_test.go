package bridge

import (
	"context"
	"testing"

	"github.com/labi-le/clipsync/internal/types/domain"
	"github.com/labi-le/clipsync/pkg/clipboard/null"
	"github.com/labi-le/clipsync/pkg/mime"
	"github.com/labi-le/clipsync/pkg/textnorm"
	"github.com/labi-le/clipsync/pkg/wake"
)

// TestEngine_DecisionBoundary walks every combination of "Wayland changed",
// "X11 changed" and "keys equal" and checks which rule fires and what is
// remembered afterwards.
func TestEngine_DecisionBoundary(t *testing.T) {
	tests := []struct {
		name             string
		lastW, lastX     string
		curW, curX       string
		wChanged         bool
		xChanged         bool
		same             bool
		want             Decision
		wantToX, wantToW int
		wantLastW        string
		wantLastX        string
	}{
		{
			name: "nothing changed, in sync", lastW: "m", lastX: "m", curW: "m", curX: "m",
			same: true, want: NoChange, wantLastW: "m", wantLastX: "m",
		},
		{
			name: "nothing changed, out of sync", lastW: "m", lastX: "n", curW: "m", curX: "n",
			want: NoChange, wantLastW: "m", wantLastX: "n",
		},
		{
			name: "wayland changed to equivalent", lastW: "m", lastX: "k", curW: "k\n", curX: "k",
			wChanged: true, same: true, want: NoChange, wantLastW: "k\n", wantLastX: "k",
		},
		{
			name: "wayland changed", lastW: "m", lastX: "m", curW: "w1", curX: "m",
			wChanged: true, want: WaylandToX11, wantToX: 1, wantLastW: "w1", wantLastX: "w1",
		},
		{
			name: "x11 changed to equivalent", lastW: "k", lastX: "m", curW: "k", curX: "k\n",
			xChanged: true, same: true, want: NoChange, wantLastW: "k", wantLastX: "k\n",
		},
		{
			name: "x11 changed", lastW: "m", lastX: "m", curW: "m", curX: "x1",
			xChanged: true, want: X11ToWayland, wantToW: 1, wantLastW: "x1", wantLastX: "x1",
		},
		{
			name: "both changed to equivalent", lastW: "m", lastX: "m", curW: "s\n", curX: "s",
			wChanged: true, xChanged: true, same: true, want: Conflict, wantToX: 1, wantLastW: "s\n", wantLastX: "s\n",
		},
		{
			name: "both changed differently", lastW: "m", lastX: "m", curW: "w1", curX: "x1",
			wChanged: true, xChanged: true, want: WaylandToX11, wantToX: 1, wantLastW: "w1", wantLastX: "w1",
		},
		{
			name: "echo guarded", lastW: "m", lastX: "w1", curW: "w1", curX: "x1",
			wChanged: true, xChanged: true, want: WaylandToX11, wantLastW: "w1", wantLastX: "w1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wl := null.NewNull("wayland")
			x := null.NewNull("x11")
			wl.Set(mime.Plain, []byte(tt.curW))
			x.Set(mime.Plain, []byte(tt.curX))

			e := New(wl, x, wake.Func(nil), NewOptions())
			e.state.Remember(domain.Wayland, domain.NewSnapshot([]byte(tt.lastW), mime.Plain))
			e.state.Remember(domain.X11, domain.NewSnapshot([]byte(tt.lastX), mime.Plain))

			w := domain.NewSnapshot([]byte(tt.curW), mime.Plain)
			xs := domain.NewSnapshot([]byte(tt.curX), mime.Plain)
			if e.changed(domain.Wayland, w) != tt.wChanged ||
				e.changed(domain.X11, xs) != tt.xChanged ||
				textnorm.Equal(w.Data, w.Mime, xs.Data, xs.Mime) != tt.same {
				t.Fatal("row does not describe the combination it claims")
			}

			if got := e.Cycle(testContext(t)); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}

			if n := len(x.Writes()); n != tt.wantToX {
				t.Errorf("expected %d writes to X11, got %d", tt.wantToX, n)
			}
			if n := len(wl.Writes()); n != tt.wantToW {
				t.Errorf("expected %d writes to Wayland, got %d", tt.wantToW, n)
			}

			st := e.State()
			if got := string(st.Get(domain.Wayland).Data); got != tt.wantLastW {
				t.Errorf("remembered Wayland %q, want %q", got, tt.wantLastW)
			}
			if got := string(st.Get(domain.X11).Data); got != tt.wantLastX {
				t.Errorf("remembered X11 %q, want %q", got, tt.wantLastX)
			}
		})
	}
}

func TestNew_DefaultsZeroOptions(t *testing.T) {
	e := New(null.NewNull("wayland"), null.NewNull("x11"), wake.Func(nil), Options{})

	if e.opts.TargetsTimeout != DefaultOptions.TargetsTimeout {
		t.Errorf("TargetsTimeout = %v, want %v", e.opts.TargetsTimeout, DefaultOptions.TargetsTimeout)
	}
	if e.opts.ReadTimeout != DefaultOptions.ReadTimeout {
		t.Errorf("ReadTimeout = %v, want %v", e.opts.ReadTimeout, DefaultOptions.ReadTimeout)
	}
	if e.opts.WakeErrorDelay != DefaultOptions.WakeErrorDelay {
		t.Errorf("WakeErrorDelay = %v, want %v", e.opts.WakeErrorDelay, DefaultOptions.WakeErrorDelay)
	}
	if e.opts.Reducer == nil || e.opts.Notifier == nil {
		t.Error("Reducer and Notifier must be defaulted")
	}
}

// testContext stands in for testing.T.Context, which requires Go 1.24.
func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return ctx
}
