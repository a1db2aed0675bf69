package ecs

// Rect is an axis-aligned box in tile units (X,Y is the top-left corner).
type Rect struct {
	X, Y, W, H float64
}

// Overlaps reports whether two rects intersect.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X && r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

// Intersection returns the overlap rect of two rects.
// Only meaningful when Overlaps is true.
func (r Rect) Intersection(o Rect) Rect {
	x := maxFloat(r.X, o.X)
	y := maxFloat(r.Y, o.Y)
	x2 := minFloat(r.X+r.W, o.X+o.W)
	y2 := minFloat(r.Y+r.H, o.Y+o.H)
	return Rect{X: x, Y: y, W: x2 - x, H: y2 - y}
}

// Area returns the rect's area.
func (r Rect) Area() float64 { return r.W * r.H }

// CenterX returns the horizontal center.
func (r Rect) CenterX() float64 { return r.X + r.W/2 }

// CenterY returns the vertical center.
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Position is an entity's world position in tile units plus facing in radians.
type Position struct {
	X, Y   float64
	Facing float64
}

// GroupID tags a Body with a collision class.
type GroupID int

const (
	GroupNone GroupID = iota
	GroupPlayer
	GroupEnemy
	GroupPlayerShot
	GroupEnemyShot
	GroupPickup
)

// Body is the physics component: box size, velocity, bounce and the
// per-tick collision results (BBox, OnTerrain, Contacts).
type Body struct {
	W, H   float64
	VX, VY float64
	// Bounce scales the reflected velocity on collision: 0 stops, 1 reflects.
	Bounce  float64
	Group   GroupID
	Trigger bool

	// Derived per tick. BBox is recomputed from Position after every
	// position mutation, before any collision code reads it.
	BBox      Rect
	OnTerrain bool
	Contacts  []EntityID
}

// RecomputeBBox derives the bounding box from a center position.
func (b *Body) RecomputeBBox(pos Position) {
	b.BBox = Rect{X: pos.X - b.W/2, Y: pos.Y - b.H/2, W: b.W, H: b.H}
}

// ResetTick clears the per-tick collision results.
func (b *Body) ResetTick() {
	b.OnTerrain = false
	b.Contacts = b.Contacts[:0]
}

// Mortal holds current hit points.
type Mortal struct {
	HP int
}

// Hazard deals contact damage. A one-shot hazard despawns after its first
// effective contact or terrain hit.
type Hazard struct {
	Damage  int
	OneShot bool
}

// Sprite indexes a frame in the shared texture strip.
type Sprite struct {
	Frame int
}

// Animation selects and advances a clip of texture-strip frames.
type Animation struct {
	Clips   [][]int
	Active  int
	Cursor  int
	Delay   float64
	Elapsed float64
}

// SetClip switches the active clip and rewinds the cursor.
func (a *Animation) SetClip(clip int) {
	if clip == a.Active {
		return
	}
	a.Active = clip
	a.Cursor = 0
	a.Elapsed = 0
}

// TimeToLive despawns the entity when Remaining reaches zero.
type TimeToLive struct {
	Remaining float64
}

// StateID tags a behavior state variant. States carry no data of their own;
// per-entity state lives in the Behavior component.
type StateID int

const (
	StateNone StateID = iota
	StateIdle
	StateWander
	StateChase
	StateAttackWindup
	StateAttack
)

func (s StateID) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateWander:
		return "wander"
	case StateChase:
		return "chase"
	case StateAttackWindup:
		return "attack-windup"
	case StateAttack:
		return "attack"
	default:
		return "none"
	}
}

// Behavior runs a named state-machine model. Target is a weak reference
// resolved through the store on demand.
type Behavior struct {
	Model   string
	State   StateID
	Elapsed float64
	Target  EntityID
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
