package system

import "github.com/younwookim/rg/internal/ecs"

// Clip indices shared by all animated templates. A template's clip list may
// be shorter; SetClip on a missing clip is clamped by the update below.
const (
	ClipIdle = iota
	ClipMove
	ClipTelegraph
)

// setClip switches an entity's active animation clip, clamping the index to
// the clips the entity actually has. Entities without an Animation component
// are left alone.
func setClip(w *ecs.World, id ecs.EntityID, clip int) {
	anim, ok := w.Anim[id]
	if !ok {
		return
	}
	if clip >= len(anim.Clips) {
		clip = 0
	}
	anim.SetClip(clip)
	w.Anim[id] = anim
}

// AnimationSystem advances frame cursors and writes the resulting global
// frame index into each entity's Sprite.
type AnimationSystem struct{}

// NewAnimationSystem creates an animation system.
func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

// Update steps every animation by dt. Each clip wraps independently.
func (s *AnimationSystem) Update(w *ecs.World, dt float64) {
	for id, anim := range w.Anim {
		if len(anim.Clips) == 0 {
			continue
		}
		if anim.Active < 0 || anim.Active >= len(anim.Clips) {
			anim.Active = 0
		}
		clip := anim.Clips[anim.Active]
		if len(clip) == 0 {
			continue
		}

		anim.Elapsed += dt
		if anim.Delay > 0 {
			for anim.Elapsed >= anim.Delay {
				anim.Elapsed -= anim.Delay
				anim.Cursor++
				if anim.Cursor >= len(clip) {
					anim.Cursor = 0
				}
			}
		}
		if anim.Cursor >= len(clip) {
			anim.Cursor = 0
		}
		w.Anim[id] = anim

		if sprite, ok := w.Sprite[id]; ok {
			sprite.Frame = clip[anim.Cursor]
			w.Sprite[id] = sprite
		}
	}
}
