package replay

import (
	"fmt"
	"sort"
	"time"

	"github.com/soccervitae/soccerapp/internal/domain"
)

// manualScheduler fires callbacks only when the test advances it.
type manualScheduler struct {
	now     time.Duration
	seq     int
	pending []pendingFunc
}

type pendingFunc struct {
	at  time.Duration
	seq int
	f   func()
}

func (s *manualScheduler) AfterFunc(d time.Duration, f func()) {
	s.seq++
	s.pending = append(s.pending, pendingFunc{at: s.now + d, seq: s.seq, f: f})
}

func (s *manualScheduler) Advance(d time.Duration) {
	target := s.now + d
	for {
		sort.Slice(s.pending, func(i, j int) bool {
			if s.pending[i].at == s.pending[j].at {
				return s.pending[i].seq < s.pending[j].seq
			}
			return s.pending[i].at < s.pending[j].at
		})
		if len(s.pending) == 0 || s.pending[0].at > target {
			break
		}
		next := s.pending[0]
		s.pending = s.pending[1:]
		s.now = next.at
		next.f()
	}
	s.now = target
}

type likeCall struct {
	storyID  string
	wasLiked bool
}

type replyCall struct {
	storyID string
	text    string
}

type recordingEffects struct {
	views   []string
	likes   []likeCall
	replies []replyCall
	deletes []string
}

func (e *recordingEffects) RecordView(story domain.Story) {
	e.views = append(e.views, story.ID)
}

func (e *recordingEffects) ToggleLike(story domain.Story, wasLiked bool) {
	e.likes = append(e.likes, likeCall{storyID: story.ID, wasLiked: wasLiked})
}

func (e *recordingEffects) SendReply(story domain.Story, text string) {
	e.replies = append(e.replies, replyCall{storyID: story.ID, text: text})
}

func (e *recordingEffects) DeleteStory(story domain.Story) {
	e.deletes = append(e.deletes, story.ID)
}

// group builds a group for author whose stories are named author-<n>.
func group(author string, n int) domain.StoryGroup {
	g := domain.StoryGroup{AuthorID: author, DisplayName: author}
	for i := 0; i < n; i++ {
		g.Stories = append(g.Stories, domain.Story{
			ID:        fmt.Sprintf("%s-%d", author, i),
			AuthorID:  author,
			MediaURL:  fmt.Sprintf("https://cdn.example.com/%s/%d.jpg", author, i),
			MediaKind: domain.MediaKindImage,
			CreatedAt: time.Date(2026, 10, 19, 8, i, 0, 0, time.UTC),
		})
	}
	return g
}

func fixture(sizes ...int) []domain.StoryGroup {
	out := make([]domain.StoryGroup, 0, len(sizes))
	for i, n := range sizes {
		out = append(out, group(string(rune('a'+i)), n))
	}
	return out
}

type harness struct {
	m       *Machine
	sched   *manualScheduler
	effects *recordingEffects
	closes  []CloseReason
}

func newHarness() *harness {
	h := &harness{sched: &manualScheduler{}, effects: &recordingEffects{}}
	h.m = NewMachine(DefaultConfig(), h.effects, h.sched)
	return h
}

func (h *harness) open(viewerID string, gs []domain.StoryGroup, initial int) {
	if err := h.m.Open(viewerID, gs, initial, func(r CloseReason) {
		h.closes = append(h.closes, r)
	}); err != nil {
		panic(err)
	}
}

// settle lets any transition run to completion.
func (h *harness) settle() {
	cfg := DefaultConfig()
	h.sched.Advance(cfg.ExitDelay + cfg.EnterDelay)
}

func (h *harness) storyID() string {
	s := h.m.Snapshot()
	if s.Story == nil {
		return ""
	}
	return s.Story.ID
}
