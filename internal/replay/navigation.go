package replay

import "github.com/soccervitae/soccerapp/internal/domain"

// Position addresses one story inside the group collection.
type Position struct {
	Group int `json:"group_index"`
	Story int `json:"story_index"`
}

// Valid reports whether pos addresses an existing story.
func (p Position) Valid(groups []domain.StoryGroup) bool {
	return p.Group >= 0 && p.Group < len(groups) &&
		p.Story >= 0 && p.Story < len(groups[p.Group].Stories)
}

type StepKind int

const (
	// StepStay keeps the current story. To may still differ from the old
	// position when indices shifted underneath it.
	StepStay StepKind = iota
	StepWithinGroup
	StepCrossGroup
	StepClose
)

func (k StepKind) String() string {
	switch k {
	case StepStay:
		return "stay"
	case StepWithinGroup:
		return "within-group"
	case StepCrossGroup:
		return "cross-group"
	case StepClose:
		return "close"
	default:
		return "unknown"
	}
}

type Step struct {
	Kind StepKind
	To   Position
}

// NextPosition moves forward one story, crossing into the next group when the
// current one is exhausted. There is no wrap: past the last group the viewer closes.
func NextPosition(groups []domain.StoryGroup, at Position) Step {
	if !at.Valid(groups) {
		return Step{Kind: StepClose}
	}
	if at.Story+1 < len(groups[at.Group].Stories) {
		return Step{Kind: StepWithinGroup, To: Position{Group: at.Group, Story: at.Story + 1}}
	}
	if at.Group+1 < len(groups) {
		return Step{Kind: StepCrossGroup, To: Position{Group: at.Group + 1}}
	}
	return Step{Kind: StepClose}
}

// PrevPosition moves back one story. From the first story of a group it lands
// on the first story of the previous group, not its last one. At (0,0) it stays.
func PrevPosition(groups []domain.StoryGroup, at Position) Step {
	if !at.Valid(groups) {
		return Step{Kind: StepClose}
	}
	if at.Story > 0 {
		return Step{Kind: StepWithinGroup, To: Position{Group: at.Group, Story: at.Story - 1}}
	}
	if at.Group > 0 {
		return Step{Kind: StepCrossGroup, To: Position{Group: at.Group - 1}}
	}
	return Step{Kind: StepStay, To: at}
}

// AfterDeletion removes the story at deleted from groups and computes where
// playback continues from current. The returned collection is a copy; a group
// left without stories is dropped from it.
//
// When the deleted story is the one on screen:
//   - its group emptied: next group, else previous group, else close
//   - it was not the last of its group: same index, the next story shifted in
//   - it was the last: one index back
//
// Otherwise the current story is kept and only its indices are shifted.
func AfterDeletion(groups []domain.StoryGroup, deleted, current Position) ([]domain.StoryGroup, Step) {
	if !deleted.Valid(groups) {
		return groups, Step{Kind: StepStay, To: current}
	}

	remaining := make([]domain.StoryGroup, 0, len(groups))
	emptied := false
	for gi, g := range groups {
		if gi != deleted.Group {
			remaining = append(remaining, g)
			continue
		}
		stories := make([]domain.Story, 0, len(g.Stories)-1)
		stories = append(stories, g.Stories[:deleted.Story]...)
		stories = append(stories, g.Stories[deleted.Story+1:]...)
		if len(stories) == 0 {
			emptied = true
			continue
		}
		g.Stories = stories
		remaining = append(remaining, g)
	}

	if deleted == current {
		if emptied {
			switch {
			case deleted.Group < len(remaining):
				return remaining, Step{Kind: StepCrossGroup, To: Position{Group: deleted.Group}}
			case deleted.Group > 0:
				return remaining, Step{Kind: StepCrossGroup, To: Position{Group: deleted.Group - 1}}
			default:
				return remaining, Step{Kind: StepClose}
			}
		}
		if deleted.Story < len(remaining[deleted.Group].Stories) {
			return remaining, Step{Kind: StepWithinGroup, To: deleted}
		}
		return remaining, Step{Kind: StepWithinGroup, To: Position{Group: deleted.Group, Story: deleted.Story - 1}}
	}

	to := current
	switch {
	case deleted.Group == current.Group && deleted.Story < current.Story:
		to.Story--
	case emptied && deleted.Group < current.Group:
		to.Group--
	}
	return remaining, Step{Kind: StepStay, To: to}
}
