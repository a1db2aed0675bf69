package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectOverlaps(t *testing.T) {
	base := Rect{X: 1, Y: 1, W: 2, H: 2}

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{name: "identical", other: Rect{X: 1, Y: 1, W: 2, H: 2}, want: true},
		{name: "partial overlap", other: Rect{X: 2, Y: 2, W: 2, H: 2}, want: true},
		{name: "contained", other: Rect{X: 1.5, Y: 1.5, W: 0.5, H: 0.5}, want: true},
		{name: "touching edges", other: Rect{X: 3, Y: 1, W: 1, H: 1}, want: false},
		{name: "separate", other: Rect{X: 5, Y: 5, W: 1, H: 1}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Overlaps(tt.other))
			assert.Equal(t, tt.want, tt.other.Overlaps(base))
		})
	}
}

func TestRectIntersection(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 2, H: 2}
	b := Rect{X: 1, Y: 1.5, W: 2, H: 2}

	ov := a.Intersection(b)

	assert.InDelta(t, 1.0, ov.X, 1e-9)
	assert.InDelta(t, 1.5, ov.Y, 1e-9)
	assert.InDelta(t, 1.0, ov.W, 1e-9)
	assert.InDelta(t, 0.5, ov.H, 1e-9)
	assert.InDelta(t, 0.5, ov.Area(), 1e-9)
}

func TestBodyRecomputeBBox(t *testing.T) {
	body := Body{W: 0.4, H: 0.6}
	body.RecomputeBBox(Position{X: 2, Y: 3})

	assert.InDelta(t, 1.8, body.BBox.X, 1e-9)
	assert.InDelta(t, 2.7, body.BBox.Y, 1e-9)
	assert.InDelta(t, 0.4, body.BBox.W, 1e-9)
	assert.InDelta(t, 0.6, body.BBox.H, 1e-9)
	assert.InDelta(t, 2.0, body.BBox.CenterX(), 1e-9)
	assert.InDelta(t, 3.0, body.BBox.CenterY(), 1e-9)
}

func TestBodyResetTick(t *testing.T) {
	body := Body{OnTerrain: true, Contacts: []EntityID{1, 2}}

	body.ResetTick()

	assert.False(t, body.OnTerrain)
	assert.Len(t, body.Contacts, 0)
	// The backing array is kept for reuse.
	assert.Equal(t, 2, cap(body.Contacts))
}

func TestAnimationSetClip(t *testing.T) {
	anim := Animation{Clips: [][]int{{0}, {1, 2}}, Active: 0, Cursor: 1, Elapsed: 0.5}

	anim.SetClip(1)
	assert.Equal(t, 1, anim.Active)
	assert.Equal(t, 0, anim.Cursor)
	assert.Equal(t, 0.0, anim.Elapsed)

	// Re-selecting the active clip must not rewind it.
	anim.Cursor = 1
	anim.Elapsed = 0.1
	anim.SetClip(1)
	assert.Equal(t, 1, anim.Cursor)
	assert.Equal(t, 0.1, anim.Elapsed)
}

func TestStateIDString(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "wander", StateWander.String())
	assert.Equal(t, "chase", StateChase.String())
	assert.Equal(t, "attack-windup", StateAttackWindup.String())
	assert.Equal(t, "attack", StateAttack.String())
	assert.Equal(t, "none", StateNone.String())
}
