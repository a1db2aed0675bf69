// Package game wires the simulation systems into the fixed per-frame
// pipeline: intents, behavior, physics, hazards, mortality, ttl, animation,
// camera sync, then the two render passes. System order is the only
// synchronization there is; a system must not rely on an entity it just
// despawned staying visible to a later stage.
package game

import (
	"math"
	"math/rand"

	"github.com/younwookim/rg/internal/application/system"
	"github.com/younwookim/rg/internal/domain/level"
	"github.com/younwookim/rg/internal/ecs"
	"github.com/younwookim/rg/internal/infrastructure/config"
	"github.com/younwookim/rg/internal/render"
)

// MaxTickDelta is the frame-skip threshold. A frame whose measured delta
// exceeds it (a backgrounded window, a debugger pause) is dropped whole
// instead of applying one huge catch-up step.
const MaxTickDelta = 0.2

const (
	mapWidth     = 24
	mapHeight    = 24
	wallVariants = 3

	playerSpeed = 3.0
	turnSpeed   = 2.6

	introDuration = 2.5

	screenWidth  = 320
	screenHeight = 200

	enemiesPerLevel = 6
	deathTemplate   = "death_burst"
	playerWeapon    = "bolt"
)

// Intent is one frame of player input, produced by the front-end's key
// polling. Move is in the player's local frame: Forward along facing,
// Strafe to the right of it.
type Intent struct {
	Forward float64
	Strafe  float64
	Turn    float64
	Fire    bool
}

// Session is one run of the simulation: a world, its level grid and the
// system pipeline, stepped once per animation frame.
type Session struct {
	World  *ecs.World
	Grid   *level.Grid
	Camera *render.Camera

	physics   *system.PhysicsSystem
	behavior  *system.BehaviorSystem
	hazards   *system.HazardSystem
	mortality *system.MortalitySystem
	ttl       *system.TTLSystem
	anim      *system.AnimationSystem
	attack    *system.AttackAction
	renderer  *render.Renderer

	groups     *ecs.GroupTable
	generators *level.GeneratorRegistry
	rng        *rand.Rand

	levelNum int
	intro    float64
	ticks    uint64
}

// New builds a session from loaded config. The seed drives map choice,
// enemy placement and wander headings; two sessions with the same seed and
// the same intent stream stay in lockstep.
func New(cfg *config.GameConfig, seed int64) (*Session, error) {
	templates, err := config.BuildTemplates(cfg.Entities)
	if err != nil {
		return nil, err
	}
	groups, err := config.BuildGroupTable(cfg.Entities)
	if err != nil {
		return nil, err
	}
	weapons := config.BuildWeapons(cfg.Weapons)

	rng := rand.New(rand.NewSource(seed))

	s := &Session{
		Camera:     render.NewCamera(0, 0, 0),
		hazards:    system.NewHazardSystem(),
		mortality:  system.NewMortalitySystem(deathTemplate),
		ttl:        system.NewTTLSystem(),
		anim:       system.NewAnimationSystem(),
		attack:     system.NewAttackAction(weapons),
		behavior:   system.NewBehaviorSystem(rng),
		groups:     groups,
		generators: level.DefaultGenerators(),
		rng:        rng,
	}
	system.RegisterDefaultModels(s.behavior)

	s.renderer = render.NewRenderer(screenWidth, screenHeight,
		render.DefaultWallStrip(), render.DefaultFaceStrip())

	s.World = ecs.NewWorld()
	s.World.Templates = templates
	s.startLevel()
	return s, nil
}

// startLevel builds a fresh grid and populates it. The previous grid (and
// physics state hanging off it) is discarded wholesale.
func (s *Session) startLevel() {
	s.levelNum++
	gen := s.generators.Pick(s.rng)
	s.Grid = level.Build(gen, mapWidth, mapHeight, wallVariants)
	s.physics = system.NewPhysicsSystem(s.Grid, s.groups)
	s.intro = introDuration

	cx := float64(mapWidth) / 2
	cy := float64(mapHeight) / 2
	player := s.World.Spawn("player", cx, cy, 0)
	s.World.PlayerID = player

	s.spawnEnemies(player)
	s.syncCamera(0)
}

// spawnEnemies scatters enemies over open tiles, all tracking the player.
func (s *Session) spawnEnemies(target ecs.EntityID) {
	placed := 0
	for attempts := 0; attempts < 200 && placed < enemiesPerLevel; attempts++ {
		tx := 1 + s.rng.Intn(s.Grid.W-2)
		ty := 1 + s.rng.Intn(s.Grid.H-2)
		if s.Grid.Solid(tx, ty) {
			continue
		}
		x := float64(tx) + 0.5
		y := float64(ty) + 0.5
		if math.Hypot(x-float64(mapWidth)/2, y-float64(mapHeight)/2) < 4 {
			// Not on top of the player.
			continue
		}
		template := "grunt"
		if placed%3 == 2 {
			template = "lurker"
		}
		id := s.World.Spawn(template, x, y, 0)
		if id == 0 {
			continue
		}
		bhv := s.World.Behavior[id]
		bhv.Target = target
		s.World.Behavior[id] = bhv
		placed++
	}
}

// Tick advances the whole pipeline by one frame. Oversized deltas are
// skipped entirely; see MaxTickDelta.
func (s *Session) Tick(in Intent, dt float64) {
	if dt > MaxTickDelta {
		return
	}
	s.ticks++

	s.applyIntent(in, dt)
	s.behavior.Update(s.World, dt)
	s.physics.Update(s.World, dt)
	s.hazards.Update(s.World)
	s.mortality.Update(s.World)
	s.ttl.Update(s.World, dt)
	s.anim.Update(s.World, dt)
	s.syncCamera(dt)

	s.renderer.RenderWalls(s.Grid, s.Camera)
	s.renderer.RenderSprites(s.World, s.Camera, s.World.PlayerID)
}

// applyIntent turns the frame's input into player facing, velocity and
// weapon fire.
func (s *Session) applyIntent(in Intent, dt float64) {
	s.attack.Update(dt)

	id := s.World.PlayerID
	if id == 0 {
		return
	}
	pos, ok := s.World.Position[id]
	if !ok {
		return
	}

	pos.Facing += in.Turn * turnSpeed * dt
	s.World.Position[id] = pos

	dirX := math.Cos(pos.Facing)
	dirY := math.Sin(pos.Facing)
	if body, ok := s.World.Body[id]; ok {
		body.VX = (dirX*in.Forward - dirY*in.Strafe) * playerSpeed
		body.VY = (dirY*in.Forward + dirX*in.Strafe) * playerSpeed
		s.World.Body[id] = body
	}

	if in.Fire {
		s.attack.Fire(s.World, id, playerWeapon)
	}
}

// syncCamera runs the intro sweep while it lasts, then rides the player.
func (s *Session) syncCamera(dt float64) {
	if s.intro > 0 {
		s.intro -= dt
		t := 1 - s.intro/introDuration
		angle := t * 2 * math.Pi
		cx := float64(mapWidth) / 2
		cy := float64(mapHeight) / 2
		s.Camera.MoveTo(cx+math.Cos(angle)*2, cy+math.Sin(angle)*2)
		s.Camera.SetAngle(angle + math.Pi/2)
		return
	}

	pos, ok := s.World.Position[s.World.PlayerID]
	if !ok {
		return
	}
	s.Camera.MoveTo(pos.X, pos.Y)
	s.Camera.SetAngle(pos.Facing)
}

// Frame exposes the renderer's RGBA pixel buffer for the front-end to blit.
func (s *Session) Frame() []byte {
	return s.renderer.Pix
}

// FrameSize returns the renderer's pixel dimensions.
func (s *Session) FrameSize() (int, int) {
	return s.renderer.W, s.renderer.H
}

// PlayerAlive reports whether the controlled entity still exists.
func (s *Session) PlayerAlive() bool {
	return s.World.PlayerID != 0
}

// EnemiesLeft counts live entities with behavior (everything AI-driven).
func (s *Session) EnemiesLeft() int {
	return len(s.World.Behavior)
}

// Level returns the 1-based level number.
func (s *Session) Level() int {
	return s.levelNum
}

// NextLevel discards the current grid and starts the next one. The world's
// surviving player is carried over by respawning from the template; entity
// ids keep counting up, never reused.
func (s *Session) NextLevel() {
	for id := range s.World.Position {
		s.World.Despawn(id)
	}
	s.startLevel()
}

// Ticks returns how many frames the session has simulated (skipped frames
// excluded).
func (s *Session) Ticks() uint64 {
	return s.ticks
}
