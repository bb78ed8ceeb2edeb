package expiryimpl

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	mock_story "github.com/soccervitae/soccerapp/internal/repositories/story/mocks"
	"github.com/soccervitae/soccerapp/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var start = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func newExpiry(t *testing.T) (*ExpiryImpl, *mock_story.MockRepository, *clockwork.FakeClock) {
	ctrl := gomock.NewController(t)
	repo := mock_story.NewMockRepository(ctrl)
	clock := clockwork.NewFakeClockAt(start)
	return &ExpiryImpl{
		StoryRepo: repo,
		Logger:    logger.NewNop(),
		Clock:     clock,
		TTL:       24 * time.Hour,
		Interval:  time.Hour,
	}, repo, clock
}

func TestSweepUsesTTLCutoff(t *testing.T) {
	e, repo, _ := newExpiry(t)
	repo.EXPECT().DeleteOlderThan(gomock.Any(), start.Add(-24*time.Hour)).Return(int64(7), nil)

	n, err := e.Sweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(7), n)
}

func TestSweepWrapsRepoError(t *testing.T) {
	e, repo, _ := newExpiry(t)
	boom := errors.New("deadlock detected")
	repo.EXPECT().DeleteOlderThan(gomock.Any(), gomock.Any()).Return(int64(0), boom)

	_, err := e.Sweep(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestScheduleRunsImmediately(t *testing.T) {
	e, repo, _ := newExpiry(t)
	e.Clock = clockwork.NewRealClock()
	swept := make(chan struct{}, 1)
	repo.EXPECT().DeleteOlderThan(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, time.Time) (int64, error) {
			select {
			case swept <- struct{}{}:
			default:
			}
			return 0, nil
		}).MinTimes(1)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, e.Schedule(ctx))

	select {
	case <-swept:
	case <-time.After(2 * time.Second):
		t.Fatal("sweep did not run on start")
	}
}
