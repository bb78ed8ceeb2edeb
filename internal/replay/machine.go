// Package replay implements the story playback engine: timed progress,
// navigation across author groups, pause arbitration, drag dismissal and the
// bookkeeping around view, like, reply and delete side effects.
package replay

import (
	"strings"
	"time"

	"github.com/soccervitae/soccerapp/internal/domain"
)

// Effects issues the remote side effects of playback. Implementations must not
// block: results come back through Machine.LikeToggled, ReplySent and StoryDeleted.
type Effects interface {
	RecordView(story domain.Story)
	ToggleLike(story domain.Story, wasLiked bool)
	SendReply(story domain.Story, text string)
	DeleteStory(story domain.Story)
}

// Scheduler runs f once after d, on the goroutine that owns the Machine.
type Scheduler interface {
	AfterFunc(d time.Duration, f func())
}

type State int

const (
	StateClosed State = iota
	StatePlaying
	StatePaused
	StateTransitioning
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateTransitioning:
		return "transitioning"
	default:
		return "closed"
	}
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

type CloseReason string

const (
	CloseEndOfContent      CloseReason = "end-of-content"
	CloseExplicit          CloseReason = "explicit"
	CloseGesture           CloseReason = "gesture"
	CloseDeletionExhausted CloseReason = "deletion-exhausted"
	CloseMissingContent    CloseReason = "missing-content"
)

// Machine is the playback state machine of one open viewer. It is not safe
// for concurrent use; every method and scheduled callback must run on a
// single goroutine.
type Machine struct {
	cfg       Config
	effects   Effects
	scheduler Scheduler

	open        bool
	onClose     func(CloseReason)
	closeReason CloseReason
	viewerID    string
	groups      []domain.StoryGroup
	pos         Position
	progress    float64
	pauses      PauseSet
	drag        Drag
	transition  Transition
	targetID    string
	// gen invalidates transition timers of a previous open or of an
	// abandoned transition.
	gen uint64

	lastShown string
	draft     string
	deleting  string
	likeBurst bool
	burstGen  uint64
}

func NewMachine(cfg Config, effects Effects, scheduler Scheduler) *Machine {
	return &Machine{
		cfg:       cfg,
		effects:   effects,
		scheduler: scheduler,
	}
}

// Open seeds playback at the first story of groups[initialGroup]. Groups
// without stories are dropped. When there is nothing to show at the requested
// group the machine closes right away with CloseMissingContent.
func (m *Machine) Open(viewerID string, groups []domain.StoryGroup, initialGroup int, onClose func(CloseReason)) error {
	if m.open {
		return ErrAlreadyOpen
	}

	compact := make([]domain.StoryGroup, 0, len(groups))
	start := -1
	for i, g := range groups {
		if len(g.Stories) == 0 {
			continue
		}
		if i == initialGroup {
			start = len(compact)
		}
		compact = append(compact, g)
	}

	m.gen++
	m.burstGen++
	m.open = true
	m.onClose = onClose
	m.closeReason = ""
	m.viewerID = viewerID
	m.groups = compact
	m.pos = Position{Group: start}
	m.progress = 0
	m.pauses.Clear()
	m.drag.Reset()
	m.transition = Transition{}
	m.lastShown = ""
	m.draft = ""
	m.deleting = ""
	m.likeBurst = false

	if start < 0 {
		m.close(CloseMissingContent)
		return nil
	}
	m.announce()
	return nil
}

// Close stops playback. Pending timers and in-flight transitions are abandoned.
func (m *Machine) Close(reason CloseReason) {
	m.close(reason)
}

func (m *Machine) close(reason CloseReason) {
	if !m.open {
		return
	}
	m.open = false
	m.gen++
	m.burstGen++
	m.closeReason = reason
	m.pauses.Clear()
	m.drag.Reset()
	m.transition = Transition{}
	m.likeBurst = false
	m.deleting = ""
	m.draft = ""

	onClose := m.onClose
	m.onClose = nil
	if onClose != nil {
		onClose(reason)
	}
}

func (m *Machine) IsOpen() bool {
	return m.open
}

// Playing reports whether the timer may advance progress.
func (m *Machine) Playing() bool {
	return m.open && m.pauses.Empty() && !m.transition.Active
}

func (m *Machine) State() State {
	switch {
	case !m.open:
		return StateClosed
	case m.transition.Active:
		return StateTransitioning
	case !m.pauses.Empty():
		return StatePaused
	default:
		return StatePlaying
	}
}

// Tick is the progress driver. It is a no-op unless playing; reaching 100
// advances to the next story.
func (m *Machine) Tick() {
	if !m.Playing() {
		return
	}
	m.progress += m.cfg.ProgressStep
	if m.progress >= 100 {
		m.progress = 100
		m.apply(NextPosition(m.groups, m.pos), Forward, CloseEndOfContent)
	}
}

func (m *Machine) Advance() error {
	if err := m.navigable(); err != nil {
		return err
	}
	m.apply(NextPosition(m.groups, m.pos), Forward, CloseEndOfContent)
	return nil
}

func (m *Machine) Retreat() error {
	if err := m.navigable(); err != nil {
		return err
	}
	m.apply(PrevPosition(m.groups, m.pos), Backward, CloseEndOfContent)
	return nil
}

// JumpToStory selects a story of the current group directly and restarts its progress.
func (m *Machine) JumpToStory(index int) error {
	if err := m.navigable(); err != nil {
		return err
	}
	if index < 0 || index >= len(m.groups[m.pos.Group].Stories) {
		return ErrOutOfRange
	}
	m.commit(Position{Group: m.pos.Group, Story: index})
	return nil
}

func (m *Machine) navigable() error {
	if !m.open {
		return ErrClosed
	}
	if m.transition.Active {
		return ErrTransitioning
	}
	return nil
}

func (m *Machine) apply(step Step, dir Direction, closeReason CloseReason) {
	switch step.Kind {
	case StepWithinGroup:
		m.commit(step.To)
	case StepCrossGroup:
		m.beginTransition(step.To, dir)
	case StepClose:
		m.close(closeReason)
	}
}

// commit moves to a story and resets its progress.
func (m *Machine) commit(to Position) {
	m.pos = to
	m.progress = 0
	m.announce()
}

// announce records a view whenever the story on screen changed identity.
func (m *Machine) announce() {
	story, ok := m.current()
	if !ok || story.ID == m.lastShown {
		return
	}
	m.lastShown = story.ID
	if m.viewerID != "" {
		m.effects.RecordView(story)
	}
}

func (m *Machine) beginTransition(to Position, dir Direction) {
	m.gen++
	gen := m.gen
	m.transition = Transition{Active: true, Phase: PhaseExiting, Direction: dir, Target: to}
	m.targetID = m.groups[to.Group].Stories[to.Story].ID

	m.scheduler.AfterFunc(m.cfg.ExitDelay, func() {
		if !m.open || m.gen != gen {
			return
		}
		m.transition.Phase = PhaseEntering
		m.commit(m.transition.Target)

		m.scheduler.AfterFunc(m.cfg.EnterDelay, func() {
			if !m.open || m.gen != gen {
				return
			}
			m.transition = Transition{}
		})
	})
}

func (m *Machine) abandonTransition() {
	if !m.transition.Active {
		return
	}
	m.gen++
	m.transition = Transition{}
}

func (m *Machine) AddReason(r Reason) error {
	if !m.open {
		return ErrClosed
	}
	m.pauses.Add(r)
	return nil
}

func (m *Machine) RemoveReason(r Reason) error {
	if !m.open {
		return ErrClosed
	}
	m.pauses.Remove(r)
	return nil
}

func (m *Machine) BeginDrag() error {
	if !m.open {
		return ErrClosed
	}
	m.drag.Begin()
	m.pauses.Add(ReasonDrag)
	return nil
}

func (m *Machine) MoveDrag(translation float64) error {
	if !m.open {
		return ErrClosed
	}
	m.drag.Move(translation)
	return nil
}

// EndDrag closes the viewer or springs the content back, releasing the drag
// pause reason.
func (m *Machine) EndDrag(translation, velocity float64) (Dismissal, error) {
	if !m.open {
		return DismissSpringBack, ErrClosed
	}
	m.drag.Move(translation)
	decision := Decide(m.drag.Translation(), velocity, m.cfg)
	if decision == DismissClose {
		m.close(CloseGesture)
		return decision, nil
	}
	m.drag.Reset()
	m.pauses.Remove(ReasonDrag)
	return decision, nil
}

func (m *Machine) SetDraft(text string) error {
	if !m.open {
		return ErrClosed
	}
	m.draft = text
	return nil
}

func (m *Machine) ToggleLike(wasLiked bool) error {
	story, err := m.foreignStory()
	if err != nil {
		return err
	}
	m.effects.ToggleLike(story, wasLiked)
	return nil
}

// SendReply sends the current draft. The draft is cleared once the reply lands.
func (m *Machine) SendReply() error {
	story, err := m.foreignStory()
	if err != nil {
		return err
	}
	text := strings.TrimSpace(m.draft)
	if text == "" {
		return ErrEmptyReply
	}
	m.effects.SendReply(story, text)
	return nil
}

func (m *Machine) foreignStory() (domain.Story, error) {
	if !m.open {
		return domain.Story{}, ErrClosed
	}
	story, ok := m.current()
	if !ok {
		return domain.Story{}, ErrClosed
	}
	if story.OwnedBy(m.viewerID) {
		return domain.Story{}, ErrOwnStory
	}
	return story, nil
}

// DeleteStory asks for the current story to be deleted. Navigation waits for
// the result in StoryDeleted.
func (m *Machine) DeleteStory() error {
	if !m.open {
		return ErrClosed
	}
	story, ok := m.current()
	if !ok {
		return ErrClosed
	}
	if !story.OwnedBy(m.viewerID) {
		return ErrNotOwner
	}
	if m.deleting != "" {
		return ErrDeleteInFlight
	}
	m.deleting = story.ID
	m.effects.DeleteStory(story)
	return nil
}

// LikeToggled reports a finished like toggle. Liking the story still on
// screen arms the like burst for cfg.LikeBurst.
func (m *Machine) LikeToggled(storyID string, wasLiked bool, err error) {
	if err != nil || wasLiked || !m.open {
		return
	}
	if story, ok := m.current(); !ok || story.ID != storyID {
		return
	}
	m.burstGen++
	gen := m.burstGen
	m.likeBurst = true
	m.scheduler.AfterFunc(m.cfg.LikeBurst, func() {
		if m.burstGen == gen {
			m.likeBurst = false
		}
	})
}

// ReplySent reports a finished reply. The draft is cleared only if the user
// has not typed something else meanwhile.
func (m *Machine) ReplySent(storyID, text string, err error) {
	if err != nil || !m.open {
		return
	}
	if strings.TrimSpace(m.draft) == text {
		m.draft = ""
	}
}

// StoryDeleted reports a finished delete. On success playback re-indexes
// around the removed story and the modal sheets are dismissed.
func (m *Machine) StoryDeleted(storyID string, err error) {
	if m.deleting == storyID {
		m.deleting = ""
	}
	if err != nil || !m.open {
		return
	}

	deleted, ok := m.locate(storyID)
	if !ok {
		m.pauses.Remove(modalReasons)
		return
	}

	m.abandonTransition()
	remaining, step := AfterDeletion(m.groups, deleted, m.pos)
	m.groups = remaining

	switch step.Kind {
	case StepClose:
		m.close(CloseDeletionExhausted)
		return
	case StepWithinGroup, StepCrossGroup:
		m.commit(step.To)
	default:
		m.pos = step.To
	}
	m.pauses.Remove(modalReasons)
}

// Refresh swaps in a newer grouped snapshot and follows the story on screen.
// If that story is gone the viewer closes. A running transition follows its
// target story, or is dropped when the target is gone.
func (m *Machine) Refresh(groups []domain.StoryGroup) {
	if !m.open {
		return
	}
	compact := make([]domain.StoryGroup, 0, len(groups))
	for _, g := range groups {
		if len(g.Stories) > 0 {
			compact = append(compact, g)
		}
	}

	story, ok := m.current()
	if !ok {
		m.close(CloseMissingContent)
		return
	}

	m.groups = compact
	at, found := m.locate(story.ID)
	if !found {
		m.close(CloseMissingContent)
		return
	}
	m.pos = at

	if m.transition.Active {
		if target, ok := m.locate(m.targetID); ok {
			m.transition.Target = target
		} else {
			m.abandonTransition()
		}
	}
}

func (m *Machine) current() (domain.Story, bool) {
	if !m.pos.Valid(m.groups) {
		return domain.Story{}, false
	}
	return m.groups[m.pos.Group].Stories[m.pos.Story], true
}

func (m *Machine) locate(storyID string) (Position, bool) {
	for gi, g := range m.groups {
		if si := g.IndexOf(storyID); si >= 0 {
			return Position{Group: gi, Story: si}, true
		}
	}
	return Position{}, false
}

// Snapshot is a read-only view of the machine for rendering.
type Snapshot struct {
	State          State         `json:"state"`
	CloseReason    CloseReason   `json:"close_reason,omitempty"`
	ViewerID       string        `json:"viewer_id,omitempty"`
	Position       Position      `json:"position"`
	Progress       float64       `json:"progress"`
	GroupCount     int           `json:"group_count"`
	StoryCount     int           `json:"story_count"`
	Group          *GroupHeader  `json:"group,omitempty"`
	Story          *domain.Story `json:"story,omitempty"`
	OwnedByViewer  bool          `json:"owned_by_viewer"`
	PauseReasons   []Reason      `json:"pause_reasons,omitempty"`
	Transition     Transition    `json:"transition"`
	Drag           DragSnapshot  `json:"drag"`
	LikeBurst      bool          `json:"like_burst"`
	Draft          string        `json:"draft,omitempty"`
	DeleteInFlight bool          `json:"delete_in_flight"`
}

type GroupHeader struct {
	AuthorID    string `json:"author_id"`
	DisplayName string `json:"display_name"`
	AvatarURL   string `json:"avatar_url"`
}

func (m *Machine) Snapshot() Snapshot {
	s := Snapshot{
		State:       m.State(),
		CloseReason: m.closeReason,
		Drag:        m.drag.Snapshot(m.cfg),
	}
	if !m.open {
		return s
	}

	s.ViewerID = m.viewerID
	s.Position = m.pos
	s.Progress = m.progress
	s.GroupCount = len(m.groups)
	s.PauseReasons = m.pauses.Reasons()
	s.Transition = m.transition
	s.LikeBurst = m.likeBurst
	s.Draft = m.draft
	s.DeleteInFlight = m.deleting != ""

	if story, ok := m.current(); ok {
		g := m.groups[m.pos.Group]
		s.StoryCount = len(g.Stories)
		s.Group = &GroupHeader{AuthorID: g.AuthorID, DisplayName: g.DisplayName, AvatarURL: g.AvatarURL}
		s.Story = &story
		s.OwnedByViewer = story.OwnedBy(m.viewerID)
	}
	return s
}
