package ecs

// GroupTable declares which collision-group pairs may interact. The table is
// symmetric: Allow(a,b) implies Collidable(b,a).
type GroupTable struct {
	pairs map[[2]GroupID]struct{}
}

// NewGroupTable creates an empty table (nothing collides).
func NewGroupTable() *GroupTable {
	return &GroupTable{pairs: make(map[[2]GroupID]struct{})}
}

func orderPair(a, b GroupID) [2]GroupID {
	if a > b {
		a, b = b, a
	}
	return [2]GroupID{a, b}
}

// Allow marks an unordered group pair as collidable.
func (t *GroupTable) Allow(a, b GroupID) {
	t.pairs[orderPair(a, b)] = struct{}{}
}

// Collidable reports whether the unordered group pair may interact.
func (t *GroupTable) Collidable(a, b GroupID) bool {
	_, ok := t.pairs[orderPair(a, b)]
	return ok
}
