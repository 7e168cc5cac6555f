package bridge

// Decision is the rule a cycle ended up applying.
type Decision uint8

const (
	// NoChange refreshes what is remembered without writing anything.
	NoChange Decision = iota
	WaylandToX11
	X11ToWayland
	// Conflict means both sides changed to content that compares equal;
	// Wayland wins.
	Conflict
)

func (d Decision) String() string {
	switch d {
	case NoChange:
		return "no change"
	case WaylandToX11:
		return "Wayland -> X11"
	case X11ToWayland:
		return "X11 -> Wayland"
	case Conflict:
		return "conflict"
	default:
		return "unknown"
	}
}
