package system

import (
	"math"
	"sort"

	"github.com/younwookim/rg/internal/domain/level"
	"github.com/younwookim/rg/internal/ecs"
)

// PhysicsSystem integrates bodies, resolves tile and entity collisions and
// fills each body's per-tick contact list. The spatial hash is rebuilt from
// scratch every tick.
type PhysicsSystem struct {
	grid   *level.Grid
	groups *ecs.GroupTable
	hash   *ecs.SpatialHash

	// Scratch buffers reused across ticks.
	ids       []ecs.EntityID
	neighbors []ecs.EntityID
	checked   map[uint64]struct{}
	overlaps  []tileOverlap
}

type tileOverlap struct {
	tile ecs.Rect
	area float64
}

// NewPhysicsSystem creates a physics system for one level's grid.
func NewPhysicsSystem(grid *level.Grid, groups *ecs.GroupTable) *PhysicsSystem {
	return &PhysicsSystem{
		grid:    grid,
		groups:  groups,
		hash:    ecs.NewSpatialHash(float64(grid.W), float64(grid.H)),
		checked: make(map[uint64]struct{}),
	}
}

// Update runs one physics tick: move and resolve every body against the map,
// rebuild the spatial hash, then detect and resolve body-vs-body pairs.
func (s *PhysicsSystem) Update(w *ecs.World, dt float64) {
	s.hash.Clear()

	// Map iteration order is randomized; sort ids so runs are reproducible.
	s.ids = s.ids[:0]
	for id := range w.Body {
		s.ids = append(s.ids, id)
	}
	sort.Slice(s.ids, func(i, j int) bool { return s.ids[i] < s.ids[j] })

	for _, id := range s.ids {
		body := w.Body[id]
		pos := w.Position[id]

		body.ResetTick()
		pos.X += body.VX * dt
		pos.Y += body.VY * dt
		body.RecomputeBBox(pos)

		s.clampToMap(&pos, &body)
		s.resolveTiles(&pos, &body)

		s.hash.Insert(id, body.BBox)
		w.Position[id] = pos
		w.Body[id] = body
	}

	s.resolvePairs(w)
}

// clampToMap keeps the bbox inside the map. A clamped axis reflects velocity
// by the body's bounce and counts as a terrain touch.
func (s *PhysicsSystem) clampToMap(pos *ecs.Position, body *ecs.Body) {
	mapW := float64(s.grid.W)
	mapH := float64(s.grid.H)

	if body.BBox.X < 0 {
		pos.X = body.W / 2
		body.VX = -body.VX * body.Bounce
		body.OnTerrain = true
	} else if body.BBox.X+body.W > mapW {
		pos.X = mapW - body.W/2
		body.VX = -body.VX * body.Bounce
		body.OnTerrain = true
	}
	if body.BBox.Y < 0 {
		pos.Y = body.H / 2
		body.VY = -body.VY * body.Bounce
		body.OnTerrain = true
	} else if body.BBox.Y+body.H > mapH {
		pos.Y = mapH - body.H/2
		body.VY = -body.VY * body.Bounce
		body.OnTerrain = true
	}
	body.RecomputeBBox(*pos)
}

// resolveTiles pushes the body out of every wall tile its bbox overlaps.
// Largest penetration is resolved first so a body straddling a tile corner
// doesn't oscillate between two shallow fixes.
func (s *PhysicsSystem) resolveTiles(pos *ecs.Position, body *ecs.Body) {
	s.overlaps = s.overlaps[:0]

	x0 := int(math.Floor(body.BBox.X))
	y0 := int(math.Floor(body.BBox.Y))
	x1 := int(math.Floor(body.BBox.X + body.BBox.W))
	y1 := int(math.Floor(body.BBox.Y + body.BBox.H))

	for ty := y0; ty <= y1; ty++ {
		for tx := x0; tx <= x1; tx++ {
			code, ok := s.grid.At(tx, ty)
			if !ok || code == level.TileEmpty {
				// Off-map tiles are skipped, never treated as walls.
				continue
			}
			tile := ecs.Rect{X: float64(tx), Y: float64(ty), W: 1, H: 1}
			if !body.BBox.Overlaps(tile) {
				continue
			}
			ov := body.BBox.Intersection(tile)
			s.overlaps = append(s.overlaps, tileOverlap{tile: tile, area: ov.Area()})
		}
	}
	if len(s.overlaps) == 0 {
		return
	}

	body.OnTerrain = true
	sort.SliceStable(s.overlaps, func(i, j int) bool {
		return s.overlaps[i].area > s.overlaps[j].area
	})

	for _, to := range s.overlaps {
		// Earlier pushes may already have separated us from this tile.
		if !body.BBox.Overlaps(to.tile) {
			continue
		}
		ov := body.BBox.Intersection(to.tile)
		if ov.W < ov.H {
			dir := pushSign(body.BBox.CenterX() - ov.CenterX())
			pos.X += dir * ov.W
			body.VX = -body.VX * body.Bounce
		} else {
			dir := pushSign(body.BBox.CenterY() - ov.CenterY())
			pos.Y += dir * ov.H
			body.VY = -body.VY * body.Bounce
		}
		body.RecomputeBBox(*pos)
	}
}

// pairKey builds an order-independent key for an entity pair. The shift is
// the K >= id-range multiplier, so distinct pairs never collide.
func pairKey(a, b ecs.EntityID) uint64 {
	if a > b {
		a, b = b, a
	}
	return uint64(a)<<32 | uint64(b)
}

// resolvePairs runs broad phase + narrow phase over all moved bodies.
func (s *PhysicsSystem) resolvePairs(w *ecs.World) {
	for k := range s.checked {
		delete(s.checked, k)
	}

	for _, id := range s.ids {
		body, ok := w.Body[id]
		if !ok {
			continue
		}
		s.neighbors = s.hash.QueryNeighbors(body.BBox, s.neighbors[:0])
		for _, other := range s.neighbors {
			if other == id {
				continue
			}
			key := pairKey(id, other)
			if _, seen := s.checked[key]; seen {
				continue
			}
			s.checked[key] = struct{}{}
			s.evaluatePair(w, id, other)
		}
	}
}

// evaluatePair records contacts for a candidate pair and, when neither side
// is a trigger, separates the two bodies.
func (s *PhysicsSystem) evaluatePair(w *ecs.World, a, b ecs.EntityID) {
	bodyA, okA := w.Body[a]
	bodyB, okB := w.Body[b]
	if !okA || !okB {
		return
	}
	if !s.groups.Collidable(bodyA.Group, bodyB.Group) {
		return
	}
	if !bodyA.BBox.Overlaps(bodyB.BBox) {
		return
	}

	// Contacts are recorded even for triggers; gameplay systems use them
	// for hit detection without any push-back.
	bodyA.Contacts = append(bodyA.Contacts, b)
	bodyB.Contacts = append(bodyB.Contacts, a)

	if bodyA.Trigger || bodyB.Trigger {
		w.Body[a] = bodyA
		w.Body[b] = bodyB
		return
	}

	posA := w.Position[a]
	posB := w.Position[b]
	ov := bodyA.BBox.Intersection(bodyB.BBox)

	// Equal-mass split: each body takes half the penetration on the
	// smaller-extent axis. No momentum transfer, velocity just reflects
	// by each body's own bounce.
	if ov.W < ov.H {
		half := ov.W / 2
		posA.X += pushSign(bodyA.BBox.CenterX()-ov.CenterX()) * half
		posB.X += pushSign(bodyB.BBox.CenterX()-ov.CenterX()) * half
		bodyA.VX = -bodyA.VX * bodyA.Bounce
		bodyB.VX = -bodyB.VX * bodyB.Bounce
	} else {
		half := ov.H / 2
		posA.Y += pushSign(bodyA.BBox.CenterY()-ov.CenterY()) * half
		posB.Y += pushSign(bodyB.BBox.CenterY()-ov.CenterY()) * half
		bodyA.VY = -bodyA.VY * bodyA.Bounce
		bodyB.VY = -bodyB.VY * bodyB.Bounce
	}

	bodyA.RecomputeBBox(posA)
	bodyB.RecomputeBBox(posB)

	w.Position[a] = posA
	w.Position[b] = posB
	w.Body[a] = bodyA
	w.Body[b] = bodyB
}

// pushSign maps a center delta to a push direction, defaulting right/down
// when the centers coincide exactly.
func pushSign(delta float64) float64 {
	if delta < 0 {
		return -1
	}
	return 1
}
