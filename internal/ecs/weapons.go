package ecs

// Weapon describes an input-driven attack: which projectile template to
// spawn, how far in front of the shooter, how fast, and the refire delay.
type Weapon struct {
	Projectile  string
	SpawnOffset float64
	Speed       float64
	Cooldown    float64
}

// WeaponRegistry maps weapon keys to definitions.
type WeaponRegistry struct {
	weapons map[string]Weapon
}

// NewWeaponRegistry creates an empty registry.
func NewWeaponRegistry() *WeaponRegistry {
	return &WeaponRegistry{weapons: make(map[string]Weapon)}
}

// Register binds a weapon key, replacing any previous binding.
func (r *WeaponRegistry) Register(key string, w Weapon) {
	r.weapons[key] = w
}

// Lookup returns a weapon by key.
func (r *WeaponRegistry) Lookup(key string) (Weapon, bool) {
	w, ok := r.weapons[key]
	return w, ok
}
