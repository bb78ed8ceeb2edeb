package replay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextPosition(t *testing.T) {
	gs := fixture(3, 1, 2)

	tests := []struct {
		name string
		at   Position
		want Step
	}{
		{"within group", Position{0, 0}, Step{StepWithinGroup, Position{0, 1}}},
		{"last of group crosses", Position{0, 2}, Step{StepCrossGroup, Position{1, 0}}},
		{"single story group crosses", Position{1, 0}, Step{StepCrossGroup, Position{2, 0}}},
		{"last of last group closes", Position{2, 1}, Step{Kind: StepClose}},
		{"invalid position closes", Position{5, 0}, Step{Kind: StepClose}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextPosition(gs, tt.at))
		})
	}
}

func TestPrevPosition(t *testing.T) {
	gs := fixture(3, 2)

	tests := []struct {
		name string
		at   Position
		want Step
	}{
		{"within group", Position{1, 1}, Step{StepWithinGroup, Position{1, 0}}},
		{"first of group lands on first of previous", Position{1, 0}, Step{StepCrossGroup, Position{0, 0}}},
		{"origin stays", Position{0, 0}, Step{StepStay, Position{0, 0}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PrevPosition(gs, tt.at))
		})
	}
}

func TestAfterDeletionCurrentStory(t *testing.T) {
	t.Run("middle story keeps index", func(t *testing.T) {
		rest, step := AfterDeletion(fixture(3), Position{0, 1}, Position{0, 1})
		assert.Equal(t, Step{StepWithinGroup, Position{0, 1}}, step)
		require.Len(t, rest[0].Stories, 2)
		assert.Equal(t, "a-2", rest[0].Stories[1].ID)
	})

	t.Run("last story steps back", func(t *testing.T) {
		rest, step := AfterDeletion(fixture(3), Position{0, 2}, Position{0, 2})
		assert.Equal(t, Step{StepWithinGroup, Position{0, 1}}, step)
		assert.Equal(t, "a-1", rest[0].Stories[1].ID)
	})

	t.Run("only story moves to next group", func(t *testing.T) {
		rest, step := AfterDeletion(fixture(2, 1, 3), Position{1, 0}, Position{1, 0})
		assert.Equal(t, Step{StepCrossGroup, Position{1, 0}}, step)
		require.Len(t, rest, 2)
		assert.Equal(t, "c", rest[1].AuthorID)
	})

	t.Run("only story of last group moves to previous group", func(t *testing.T) {
		rest, step := AfterDeletion(fixture(2, 1), Position{1, 0}, Position{1, 0})
		assert.Equal(t, Step{StepCrossGroup, Position{0, 0}}, step)
		require.Len(t, rest, 1)
		assert.Equal(t, "a", rest[0].AuthorID)
	})

	t.Run("only story anywhere closes", func(t *testing.T) {
		rest, step := AfterDeletion(fixture(1), Position{0, 0}, Position{0, 0})
		assert.Equal(t, StepClose, step.Kind)
		assert.Empty(t, rest)
	})
}

func TestAfterDeletionOtherStory(t *testing.T) {
	t.Run("earlier story in same group shifts index", func(t *testing.T) {
		_, step := AfterDeletion(fixture(3), Position{0, 0}, Position{0, 2})
		assert.Equal(t, Step{StepStay, Position{0, 1}}, step)
	})

	t.Run("later story in same group keeps index", func(t *testing.T) {
		_, step := AfterDeletion(fixture(3), Position{0, 2}, Position{0, 1})
		assert.Equal(t, Step{StepStay, Position{0, 1}}, step)
	})

	t.Run("emptied earlier group shifts group index", func(t *testing.T) {
		_, step := AfterDeletion(fixture(1, 2), Position{0, 0}, Position{1, 1})
		assert.Equal(t, Step{StepStay, Position{0, 1}}, step)
	})

	t.Run("unknown position changes nothing", func(t *testing.T) {
		gs := fixture(2)
		rest, step := AfterDeletion(gs, Position{3, 0}, Position{0, 1})
		assert.Equal(t, Step{StepStay, Position{0, 1}}, step)
		assert.Equal(t, gs, rest)
	})
}

func TestAfterDeletionDoesNotMutateInput(t *testing.T) {
	gs := fixture(3)
	_, _ = AfterDeletion(gs, Position{0, 0}, Position{0, 0})
	assert.Equal(t, "a-0", gs[0].Stories[0].ID)
	assert.Len(t, gs[0].Stories, 3)
}
