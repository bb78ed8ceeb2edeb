package replay

import (
	"fmt"
	"strings"
)

// Reason is one independent cause for holding playback.
type Reason uint8

const (
	ReasonPressHold Reason = 1 << iota
	ReasonInputFocus
	ReasonViewersSheet
	ReasonRepliesSheet
	ReasonDeleteDialog
	ReasonDrag
)

var reasonTags = []struct {
	reason Reason
	tag    string
}{
	{ReasonPressHold, "press-hold"},
	{ReasonInputFocus, "input-focus"},
	{ReasonViewersSheet, "viewers-sheet"},
	{ReasonRepliesSheet, "replies-sheet"},
	{ReasonDeleteDialog, "delete-dialog"},
	{ReasonDrag, "drag"},
}

// modalReasons are the sheets and dialogs dismissed after a successful delete.
const modalReasons = ReasonViewersSheet | ReasonRepliesSheet | ReasonDeleteDialog

func (r Reason) String() string {
	for _, rt := range reasonTags {
		if rt.reason == r {
			return rt.tag
		}
	}
	return fmt.Sprintf("reason(%d)", uint8(r))
}

func (r Reason) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func ParseReason(tag string) (Reason, error) {
	tag = strings.ToLower(strings.TrimSpace(tag))
	for _, rt := range reasonTags {
		if rt.tag == tag {
			return rt.reason, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownReason, tag)
}

// PauseSet merges pause reasons. Playback may run only while it is empty, so
// lifting one reason never resumes playback held by another.
type PauseSet struct {
	bits Reason
}

func (s *PauseSet) Add(r Reason) {
	s.bits |= r
}

func (s *PauseSet) Remove(r Reason) {
	s.bits &^= r
}

func (s *PauseSet) Clear() {
	s.bits = 0
}

func (s PauseSet) Has(r Reason) bool {
	return s.bits&r != 0
}

func (s PauseSet) Empty() bool {
	return s.bits == 0
}

func (s PauseSet) Reasons() []Reason {
	var out []Reason
	for _, rt := range reasonTags {
		if s.Has(rt.reason) {
			out = append(out, rt.reason)
		}
	}
	return out
}
