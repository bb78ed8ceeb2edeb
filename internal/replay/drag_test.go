package replay

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecide(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name        string
		translation float64
		velocity    float64
		want        Dismissal
	}{
		{"far release closes", 150, 0, DismissClose},
		{"short release springs back", 40, 0, DismissSpringBack},
		{"exactly at threshold springs back", 100, 0, DismissSpringBack},
		{"fast flick closes", 20, 800, DismissClose},
		{"slow short drag springs back", 20, 200, DismissSpringBack},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decide(tt.translation, tt.velocity, cfg))
		})
	}
}

func TestDragClampsUpward(t *testing.T) {
	cfg := DefaultConfig()
	var d Drag
	d.Begin()
	d.Move(-80)

	assert.Zero(t, d.Translation())
	assert.Zero(t, d.VisualOffset(cfg))
	assert.Equal(t, 1.0, d.Opacity(cfg))
	assert.Equal(t, 1.0, d.Scale(cfg))
}

func TestDragIsElasticAndBounded(t *testing.T) {
	cfg := DefaultConfig()
	var d Drag
	d.Begin()

	d.Move(200)
	offset := d.VisualOffset(cfg)
	assert.Less(t, offset, 200.0)
	assert.Greater(t, offset, 0.0)

	d.Move(400)
	assert.Greater(t, d.VisualOffset(cfg), offset)

	d.Move(1e9)
	assert.LessOrEqual(t, d.VisualOffset(cfg), cfg.DragMaxOffset)
	assert.GreaterOrEqual(t, d.Opacity(cfg), 0.5)
	assert.GreaterOrEqual(t, d.Scale(cfg), 0.85)
}

func TestDragIgnoresMoveWithoutBegin(t *testing.T) {
	var d Drag
	d.Move(120)
	assert.False(t, d.Active())
	assert.Zero(t, d.Translation())
}
