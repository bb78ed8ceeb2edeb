package replay

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitialTransform(t *testing.T) {
	viewport := Size{Width: 400, Height: 800}
	origin := Rect{X: 20, Y: 100, Width: 80, Height: 80}

	got := InitialTransform(origin, viewport)

	assert.InDelta(t, -140, got.TranslateX, 1e-9)
	assert.InDelta(t, -260, got.TranslateY, 1e-9)
	assert.InDelta(t, 0.2, got.ScaleX, 1e-9)
	assert.InDelta(t, 0.1, got.ScaleY, 1e-9)
}

func TestInitialTransformDegenerate(t *testing.T) {
	assert.Equal(t, IdentityTransform(), InitialTransform(Rect{}, Size{Width: 400, Height: 800}))
	assert.Equal(t, IdentityTransform(), InitialTransform(Rect{Width: 10, Height: 10}, Size{}))
}

func TestInitialTransformFullScreenOriginIsIdentity(t *testing.T) {
	got := InitialTransform(Rect{Width: 400, Height: 800}, Size{Width: 400, Height: 800})
	assert.Equal(t, IdentityTransform(), got)
}
