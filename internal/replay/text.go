package replay

import "fmt"

// parseText returns the member of all whose String form equals text.
func parseText[T fmt.Stringer](kind string, text []byte, all ...T) (T, error) {
	for _, v := range all {
		if v.String() == string(text) {
			return v, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("unknown %s %q", kind, text)
}

func (s *State) UnmarshalText(text []byte) (err error) {
	*s, err = parseText("state", text, StateClosed, StatePlaying, StatePaused, StateTransitioning)
	return err
}

func (p *Phase) UnmarshalText(text []byte) (err error) {
	*p, err = parseText("phase", text, PhaseIdle, PhaseExiting, PhaseEntering)
	return err
}

func (d *Direction) UnmarshalText(text []byte) (err error) {
	*d, err = parseText("direction", text, Forward, Backward)
	return err
}

func (d *Dismissal) UnmarshalText(text []byte) (err error) {
	*d, err = parseText("dismissal", text, DismissSpringBack, DismissClose)
	return err
}

func (r *Reason) UnmarshalText(text []byte) (err error) {
	*r, err = ParseReason(string(text))
	return err
}
