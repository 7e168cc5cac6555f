package domain

// Side names one of the two mirrored selections.
type Side uint8

const (
	Wayland Side = iota
	X11
)

var Sides = [...]Side{Wayland, X11}

func (s Side) Other() Side {
	if s == Wayland {
		return X11
	}
	return Wayland
}

func (s Side) String() string {
	switch s {
	case Wayland:
		return "Wayland"
	case X11:
		return "X11"
	default:
		return "unknown"
	}
}

// State is what the engine remembers about each side between cycles.
type State struct {
	Last [2]Snapshot
}

func (st *State) Get(s Side) Snapshot { return st.Last[s] }

func (st *State) Remember(s Side, snap Snapshot) { st.Last[s] = snap }
