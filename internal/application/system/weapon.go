package system

import (
	"math"

	"github.com/younwookim/rg/internal/ecs"
)

// AttackAction fires weapons on behalf of input: it spawns the weapon's
// projectile template in front of the shooter and points its body velocity
// along the shooter's facing. Cooldowns are tracked per shooter.
type AttackAction struct {
	weapons   *ecs.WeaponRegistry
	cooldowns map[ecs.EntityID]float64
}

// NewAttackAction creates an attack action over a weapon registry.
func NewAttackAction(weapons *ecs.WeaponRegistry) *AttackAction {
	return &AttackAction{
		weapons:   weapons,
		cooldowns: make(map[ecs.EntityID]float64),
	}
}

// Update ticks down cooldowns.
func (a *AttackAction) Update(dt float64) {
	for id, cd := range a.cooldowns {
		cd -= dt
		if cd <= 0 {
			delete(a.cooldowns, id)
			continue
		}
		a.cooldowns[id] = cd
	}
}

// Ready reports whether the shooter is off cooldown.
func (a *AttackAction) Ready(shooter ecs.EntityID) bool {
	_, cooling := a.cooldowns[shooter]
	return !cooling
}

// Fire spawns the weapon's projectile for the shooter. Returns false when on
// cooldown, the weapon is unknown, or the shooter has no position.
func (a *AttackAction) Fire(w *ecs.World, shooter ecs.EntityID, weaponKey string) bool {
	if !a.Ready(shooter) {
		return false
	}
	wpn, ok := a.weapons.Lookup(weaponKey)
	if !ok {
		return false
	}
	pos, ok := w.Position[shooter]
	if !ok {
		return false
	}

	dirX := math.Cos(pos.Facing)
	dirY := math.Sin(pos.Facing)
	id := w.Spawn(wpn.Projectile, pos.X+dirX*wpn.SpawnOffset, pos.Y+dirY*wpn.SpawnOffset, pos.Facing)
	if id == 0 {
		return false
	}

	if body, ok := w.Body[id]; ok {
		body.VX = dirX * wpn.Speed
		body.VY = dirY * wpn.Speed
		w.Body[id] = body
	}

	a.cooldowns[shooter] = wpn.Cooldown
	return true
}
