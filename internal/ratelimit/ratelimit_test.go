package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAllowBurstThenThrottle(t *testing.T) {
	l := NewInMemoryLimiter(1, time.Hour, 3)

	for i := 0; i < 3; i++ {
		assert.True(t, l.Allow("viewer-1"), "attempt %d", i)
	}
	assert.False(t, l.Allow("viewer-1"))
}

func TestAllowKeysAreIndependent(t *testing.T) {
	l := NewInMemoryLimiter(1, time.Hour, 1)

	assert.True(t, l.Allow("viewer-1"))
	assert.False(t, l.Allow("viewer-1"))
	assert.True(t, l.Allow("viewer-2"))
}
