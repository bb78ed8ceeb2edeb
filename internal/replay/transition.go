package replay

type Phase int

const (
	PhaseIdle Phase = iota
	// PhaseExiting holds the old group on screen before the swap.
	PhaseExiting
	// PhaseEntering shows the new group while it settles.
	PhaseEntering
)

func (p Phase) String() string {
	switch p {
	case PhaseExiting:
		return "exiting"
	case PhaseEntering:
		return "entering"
	default:
		return "idle"
	}
}

func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

type Direction int

const (
	Forward Direction = iota
	Backward
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Transition is the rendering hint for a cross-group move. While Active the
// timer is inert and navigation requests are rejected.
type Transition struct {
	Active    bool      `json:"active"`
	Phase     Phase     `json:"phase"`
	Direction Direction `json:"direction"`
	Target    Position  `json:"target"`
}
