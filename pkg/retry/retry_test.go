package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/soccervitae/soccerapp/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastConfig(retries uint64) Config {
	return Config{
		MaxRetries:      retries,
		InitialInterval: time.Millisecond,
		MaxInterval:     2 * time.Millisecond,
		Multiplier:      1.5,
	}
}

func TestDoSucceedsAfterFailures(t *testing.T) {
	calls := 0
	err := Do(context.Background(), logger.NewNop(), "ping", func() error {
		calls++
		if calls < 3 {
			return errors.New("connection refused")
		}
		return nil
	}, fastConfig(5))

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestDoGivesUp(t *testing.T) {
	calls := 0
	boom := errors.New("connection refused")
	err := Do(context.Background(), logger.NewNop(), "ping", func() error {
		calls++
		return boom
	}, fastConfig(2))

	require.ErrorIs(t, err, boom)
	assert.Equal(t, 3, calls)
}

func TestDoStopsOnPermanent(t *testing.T) {
	calls := 0
	bad := errors.New("password authentication failed")
	err := Do(context.Background(), logger.NewNop(), "ping", func() error {
		calls++
		return Permanent(bad)
	}, fastConfig(5))

	require.ErrorIs(t, err, bad)
	assert.Equal(t, 1, calls)
}
