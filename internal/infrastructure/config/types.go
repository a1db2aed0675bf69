package config

// EntitiesConfig is the parsed entities.yaml: spawn templates plus the
// collision-group pair table.
type EntitiesConfig struct {
	Templates  map[string]TemplateConfig `yaml:"templates"`
	Collidable [][2]string               `yaml:"collidable"`
}

// TemplateConfig lists the component records one template installs.
// Absent sections mean the component is not attached.
type TemplateConfig struct {
	Body     *BodyConfig     `yaml:"body"`
	Mortal   *MortalConfig   `yaml:"mortal"`
	Hazard   *HazardConfig   `yaml:"hazard"`
	Sprite   *SpriteConfig   `yaml:"sprite"`
	Anim     *AnimConfig     `yaml:"animation"`
	TTL      *TTLConfig      `yaml:"ttl"`
	Behavior *BehaviorConfig `yaml:"behavior"`
}

// BodyConfig configures a physics body. Group is a symbolic name
// ("player", "enemy", "player_shot", "enemy_shot", "pickup").
type BodyConfig struct {
	W       float64 `yaml:"w"`
	H       float64 `yaml:"h"`
	Bounce  float64 `yaml:"bounce"`
	Group   string  `yaml:"group"`
	Trigger bool    `yaml:"trigger"`
}

// MortalConfig configures hit points.
type MortalConfig struct {
	HP int `yaml:"hp"`
}

// HazardConfig configures contact damage.
type HazardConfig struct {
	Damage  int  `yaml:"damage"`
	OneShot bool `yaml:"one_shot"`
}

// SpriteConfig configures the initial texture-strip frame.
type SpriteConfig struct {
	Frame int `yaml:"frame"`
}

// AnimConfig configures animation clips (frame indices into the strip).
type AnimConfig struct {
	Clips [][]int `yaml:"clips"`
	Delay float64 `yaml:"delay"`
}

// TTLConfig configures a lifetime in seconds.
type TTLConfig struct {
	Seconds float64 `yaml:"seconds"`
}

// BehaviorConfig binds a behavior model key.
type BehaviorConfig struct {
	Model string `yaml:"model"`
}

// WeaponsConfig is the parsed weapons.yaml.
type WeaponsConfig struct {
	Weapons map[string]WeaponConfig `yaml:"weapons"`
}

// WeaponConfig configures one weapon definition.
type WeaponConfig struct {
	Projectile  string  `yaml:"projectile"`
	SpawnOffset float64 `yaml:"spawn_offset"`
	Speed       float64 `yaml:"speed"`
	Cooldown    float64 `yaml:"cooldown"`
}
