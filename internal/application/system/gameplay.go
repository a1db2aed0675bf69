package system

import (
	"sort"

	"github.com/younwookim/rg/internal/ecs"
)

// HazardSystem applies contact damage. Damage goes to the first contact
// only; a hazard that touched several bodies in one tick still hits once.
type HazardSystem struct {
	ids []ecs.EntityID
}

// NewHazardSystem creates a hazard system.
func NewHazardSystem() *HazardSystem {
	return &HazardSystem{}
}

// Update resolves every hazard's contacts from this physics tick.
func (s *HazardSystem) Update(w *ecs.World) {
	s.ids = s.ids[:0]
	for id := range w.Hazard {
		s.ids = append(s.ids, id)
	}
	sort.Slice(s.ids, func(i, j int) bool { return s.ids[i] < s.ids[j] })

	for _, id := range s.ids {
		hz := w.Hazard[id]
		body, ok := w.Body[id]
		if !ok {
			continue
		}

		hit := len(body.Contacts) > 0
		if hit {
			first := body.Contacts[0]
			if m, ok := w.Mortal[first]; ok {
				m.HP -= hz.Damage
				w.Mortal[first] = m
			}
			// A contact without a Mortal component still counts as the
			// hazard's one shot.
		}

		if hz.OneShot && (hit || body.OnTerrain) {
			w.Despawn(id)
		}
	}
}

// MortalitySystem despawns dead entities, leaving a death effect behind.
// It runs after HazardSystem so a lethal hit kills on the same frame.
type MortalitySystem struct {
	// EffectTemplate is spawned at the victim's last position. Empty
	// disables the effect.
	EffectTemplate string

	ids []ecs.EntityID
}

// NewMortalitySystem creates a mortality system.
func NewMortalitySystem(effectTemplate string) *MortalitySystem {
	return &MortalitySystem{EffectTemplate: effectTemplate}
}

// Update removes every entity at or below zero hit points.
func (s *MortalitySystem) Update(w *ecs.World) {
	s.ids = s.ids[:0]
	for id, m := range w.Mortal {
		if m.HP <= 0 {
			s.ids = append(s.ids, id)
		}
	}
	sort.Slice(s.ids, func(i, j int) bool { return s.ids[i] < s.ids[j] })

	for _, id := range s.ids {
		pos := w.Position[id]
		w.Despawn(id)
		if s.EffectTemplate != "" {
			w.Spawn(s.EffectTemplate, pos.X, pos.Y, pos.Facing)
		}
	}
}

// TTLSystem counts entities down and despawns them at zero.
type TTLSystem struct {
	expired []ecs.EntityID
}

// NewTTLSystem creates a TTL system.
func NewTTLSystem() *TTLSystem {
	return &TTLSystem{}
}

// Update decrements every TimeToLive by dt.
func (s *TTLSystem) Update(w *ecs.World, dt float64) {
	s.expired = s.expired[:0]
	for id, ttl := range w.TTL {
		ttl.Remaining -= dt
		if ttl.Remaining <= 0 {
			s.expired = append(s.expired, id)
			continue
		}
		w.TTL[id] = ttl
	}
	for _, id := range s.expired {
		w.Despawn(id)
	}
}
