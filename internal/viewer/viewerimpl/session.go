package viewerimpl

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/soccervitae/soccerapp/internal/replay"
	"github.com/soccervitae/soccerapp/internal/viewer"
)

// session owns one open viewer. The machine is only touched from run.
type session struct {
	id       string
	viewerID string
	machine  *replay.Machine
	clock    clockwork.Clock
	ticker   clockwork.Ticker

	events   chan func()
	done     chan struct{}
	stopOnce sync.Once
}

func newSession(id, viewerID string, clock clockwork.Clock, tick time.Duration) *session {
	return &session{
		id:       id,
		viewerID: viewerID,
		clock:    clock,
		ticker:   clock.NewTicker(tick),
		events:   make(chan func()),
		done:     make(chan struct{}),
	}
}

func (s *session) run() {
	defer s.ticker.Stop()
	for {
		select {
		case <-s.done:
			return
		default:
		}

		// Ticks that are already due go before queued calls.
		select {
		case <-s.ticker.Chan():
			s.machine.Tick()
			continue
		default:
		}

		select {
		case <-s.done:
			return
		case <-s.ticker.Chan():
			s.machine.Tick()
		case fn := <-s.events:
			fn()
		}
	}
}

func (s *session) stop() {
	s.stopOnce.Do(func() {
		close(s.done)
	})
}

// do runs fn on the session goroutine and waits for it to return.
func (s *session) do(ctx context.Context, fn func()) error {
	finished := make(chan struct{})
	select {
	case s.events <- func() {
		defer close(finished)
		fn()
	}:
	case <-s.done:
		return viewer.ErrNotOpen
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case <-finished:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// call applies fn to the machine and returns the snapshot taken right after it.
func (s *session) call(ctx context.Context, fn func(m *replay.Machine) error) (replay.Snapshot, error) {
	var (
		snap  replay.Snapshot
		opErr error
	)
	if err := s.do(ctx, func() {
		opErr = fn(s.machine)
		snap = s.machine.Snapshot()
	}); err != nil {
		return replay.Snapshot{}, err
	}
	return snap, opErr
}

// post queues fn without waiting. It is dropped once the session has stopped.
func (s *session) post(fn func()) {
	select {
	case s.events <- fn:
	case <-s.done:
	}
}

// AfterFunc implements replay.Scheduler on top of the session clock.
func (s *session) AfterFunc(d time.Duration, f func()) {
	s.clock.AfterFunc(d, func() {
		s.post(f)
	})
}

var _ replay.Scheduler = (*session)(nil)
