package ecs

// EntityID is a unique identifier for an entity (never recycled)
type EntityID uint64

// World holds all component maps and the next entity ID
type World struct {
	nextID EntityID

	// Components
	Position map[EntityID]Position
	Body     map[EntityID]Body
	Mortal   map[EntityID]Mortal
	Hazard   map[EntityID]Hazard
	Sprite   map[EntityID]Sprite
	Anim     map[EntityID]Animation
	TTL      map[EntityID]TimeToLive
	Behavior map[EntityID]Behavior

	// Spawn templates
	Templates *TemplateRegistry

	// Singleton references
	PlayerID EntityID
}

// NewWorld creates a new empty world
func NewWorld() *World {
	return &World{
		nextID:    1, // 0 is "nil"
		Position:  make(map[EntityID]Position),
		Body:      make(map[EntityID]Body),
		Mortal:    make(map[EntityID]Mortal),
		Hazard:    make(map[EntityID]Hazard),
		Sprite:    make(map[EntityID]Sprite),
		Anim:      make(map[EntityID]Animation),
		TTL:       make(map[EntityID]TimeToLive),
		Behavior:  make(map[EntityID]Behavior),
		Templates: NewTemplateRegistry(),
	}
}

// NewEntity returns a new unique entity ID
func (w *World) NewEntity() EntityID {
	id := w.nextID
	w.nextID++
	return id
}

// Despawn removes all components for an entity.
// The id is never handed out again.
func (w *World) Despawn(id EntityID) {
	delete(w.Position, id)
	delete(w.Body, id)
	delete(w.Mortal, id)
	delete(w.Hazard, id)
	delete(w.Sprite, id)
	delete(w.Anim, id)
	delete(w.TTL, id)
	delete(w.Behavior, id)
	if w.PlayerID == id {
		w.PlayerID = 0
	}
}

// Exists checks if an entity has a Position component
func (w *World) Exists(id EntityID) bool {
	_, ok := w.Position[id]
	return ok
}

// Spawn creates an entity from a named template and places it at the given
// position. The position override is applied unconditionally, so spawning at
// literal (0,0,0) lands exactly there. Returns 0 for an unknown template.
func (w *World) Spawn(template string, x, y, facing float64) EntityID {
	factories, ok := w.Templates.Lookup(template)
	if !ok {
		return 0
	}

	id := w.NewEntity()
	for _, build := range factories {
		build(w, id)
	}

	pos := w.Position[id]
	pos.X = x
	pos.Y = y
	pos.Facing = facing
	w.Position[id] = pos

	if body, ok := w.Body[id]; ok {
		body.RecomputeBBox(pos)
		w.Body[id] = body
	}
	return id
}

// Count returns the number of live entities.
func (w *World) Count() int {
	return len(w.Position)
}
