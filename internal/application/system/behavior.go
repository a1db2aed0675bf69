package system

import (
	"math"
	"math/rand"
	"sort"

	"github.com/younwookim/rg/internal/ecs"
)

// Predicate is a conditional transition edge, evaluated against live world
// state each tick.
type Predicate func(w *ecs.World, id ecs.EntityID) bool

// Rule is one transition edge. Either After (timed) or When (conditional) is
// set. Rule order in a model encodes priority: the first matching rule wins
// and at most one transition fires per tick.
type Rule struct {
	From  ecs.StateID
	To    ecs.StateID
	After float64
	When  Predicate
}

// Model is a behavior state machine plus its tuning. States are tagged
// variants; their hooks are switch arms in the behavior system, so two
// entities running the same model never alias state.
type Model struct {
	Initial ecs.StateID
	Rules   []Rule

	WanderSpeed float64
	ChaseSpeed  float64

	// Attack spawns this template as a short-lived trigger in front of
	// the actor.
	AttackTemplate string
	AttackReach    float64
}

// BehaviorSystem drives every Behavior component through its model.
type BehaviorSystem struct {
	models map[string]*Model
	rng    *rand.Rand

	// Trace observes state hook execution; tests install it, production
	// leaves it nil.
	Trace func(id ecs.EntityID, phase string, state ecs.StateID)

	ids []ecs.EntityID
}

// NewBehaviorSystem creates a behavior system with a seeded RNG for wander
// headings.
func NewBehaviorSystem(rng *rand.Rand) *BehaviorSystem {
	return &BehaviorSystem{
		models: make(map[string]*Model),
		rng:    rng,
	}
}

// RegisterModel binds a model key, replacing any previous binding.
func (s *BehaviorSystem) RegisterModel(key string, m *Model) {
	s.models[key] = m
}

// Model returns a registered model.
func (s *BehaviorSystem) Model(key string) (*Model, bool) {
	m, ok := s.models[key]
	return m, ok
}

// Update ticks every behavior: enter the initial state if needed, accumulate
// elapsed time, fire at most the first matching transition, then run the
// current state's update hook.
func (s *BehaviorSystem) Update(w *ecs.World, dt float64) {
	s.ids = s.ids[:0]
	for id := range w.Behavior {
		s.ids = append(s.ids, id)
	}
	sort.Slice(s.ids, func(i, j int) bool { return s.ids[i] < s.ids[j] })

	for _, id := range s.ids {
		bhv, ok := w.Behavior[id]
		if !ok {
			// Despawned by an earlier entity's hook this tick.
			continue
		}
		model, ok := s.models[bhv.Model]
		if !ok {
			continue
		}

		if bhv.State == ecs.StateNone {
			bhv.State = model.Initial
			bhv.Elapsed = 0
			s.onEnter(w, id, &bhv, model)
		}
		bhv.Elapsed += dt

		for _, rule := range model.Rules {
			if rule.From != bhv.State {
				continue
			}
			fired := false
			if rule.When != nil {
				fired = rule.When(w, id)
			} else {
				fired = bhv.Elapsed >= rule.After
			}
			if !fired {
				continue
			}
			s.onExit(w, id, &bhv)
			bhv.State = rule.To
			bhv.Elapsed = 0
			s.onEnter(w, id, &bhv, model)
			break
		}

		s.onUpdate(w, id, &bhv, model)
		w.Behavior[id] = bhv
	}
}

func (s *BehaviorSystem) trace(id ecs.EntityID, phase string, state ecs.StateID) {
	if s.Trace != nil {
		s.Trace(id, phase, state)
	}
}

func (s *BehaviorSystem) onEnter(w *ecs.World, id ecs.EntityID, bhv *ecs.Behavior, model *Model) {
	s.trace(id, "enter", bhv.State)
	switch bhv.State {
	case ecs.StateIdle:
		halt(w, id)
		setClip(w, id, ClipIdle)

	case ecs.StateWander:
		heading := s.rng.Float64() * 2 * math.Pi
		setHeading(w, id, heading, model.WanderSpeed)
		setClip(w, id, ClipMove)

	case ecs.StateChase:
		setClip(w, id, ClipMove)

	case ecs.StateAttackWindup:
		halt(w, id)
		setClip(w, id, ClipTelegraph)

	case ecs.StateAttack:
		s.spawnAttack(w, id, model)
		setClip(w, id, ClipIdle)
	}
}

func (s *BehaviorSystem) onUpdate(w *ecs.World, id ecs.EntityID, bhv *ecs.Behavior, model *Model) {
	s.trace(id, "update", bhv.State)
	switch bhv.State {
	case ecs.StateChase:
		target, ok := w.Position[bhv.Target]
		if !ok {
			halt(w, id)
			return
		}
		pos := w.Position[id]
		heading := math.Atan2(target.Y-pos.Y, target.X-pos.X)
		setHeading(w, id, heading, model.ChaseSpeed)
	}
}

func (s *BehaviorSystem) onExit(w *ecs.World, id ecs.EntityID, bhv *ecs.Behavior) {
	s.trace(id, "exit", bhv.State)
	switch bhv.State {
	case ecs.StateWander, ecs.StateChase:
		halt(w, id)
	}
}

// spawnAttack places the model's attack template one reach-length in front
// of the actor, inheriting the actor's facing and target tagging.
func (s *BehaviorSystem) spawnAttack(w *ecs.World, id ecs.EntityID, model *Model) {
	if model.AttackTemplate == "" {
		return
	}
	pos, ok := w.Position[id]
	if !ok {
		return
	}
	x := pos.X + math.Cos(pos.Facing)*model.AttackReach
	y := pos.Y + math.Sin(pos.Facing)*model.AttackReach
	w.Spawn(model.AttackTemplate, x, y, pos.Facing)
}

// halt zeroes the entity's velocity.
func halt(w *ecs.World, id ecs.EntityID) {
	body, ok := w.Body[id]
	if !ok {
		return
	}
	body.VX = 0
	body.VY = 0
	w.Body[id] = body
}

// setHeading faces the entity along heading and moves at constant speed.
func setHeading(w *ecs.World, id ecs.EntityID, heading, speed float64) {
	pos, ok := w.Position[id]
	if ok {
		pos.Facing = heading
		w.Position[id] = pos
	}
	body, ok := w.Body[id]
	if !ok {
		return
	}
	body.VX = math.Cos(heading) * speed
	body.VY = math.Sin(heading) * speed
	w.Body[id] = body
}

// targetDistance returns the distance to the behavior's tracked target, or
// +Inf when the target no longer exists so distance edges never fire for a
// vanished target.
func targetDistance(w *ecs.World, id ecs.EntityID) float64 {
	bhv, ok := w.Behavior[id]
	if !ok {
		return math.Inf(1)
	}
	target, ok := w.Position[bhv.Target]
	if !ok {
		return math.Inf(1)
	}
	pos, ok := w.Position[id]
	if !ok {
		return math.Inf(1)
	}
	return math.Hypot(target.X-pos.X, target.Y-pos.Y)
}

// TargetWithin builds a predicate firing when the tracked target is closer
// than dist.
func TargetWithin(dist float64) Predicate {
	return func(w *ecs.World, id ecs.EntityID) bool {
		return targetDistance(w, id) < dist
	}
}

// TargetBeyond builds a predicate firing when the tracked target is farther
// than dist. Never fires for a vanished target.
func TargetBeyond(dist float64) Predicate {
	return func(w *ecs.World, id ecs.EntityID) bool {
		d := targetDistance(w, id)
		return !math.IsInf(d, 1) && d > dist
	}
}

// RegisterDefaultModels installs the shipped behavior models.
func RegisterDefaultModels(s *BehaviorSystem) {
	// Grunt: wanders until the target comes close, chases, telegraphs,
	// then swings a short-lived melee trigger.
	s.RegisterModel("grunt", &Model{
		Initial:        ecs.StateIdle,
		WanderSpeed:    1.2,
		ChaseSpeed:     2.0,
		AttackTemplate: "melee_swing",
		AttackReach:    0.6,
		Rules: []Rule{
			{From: ecs.StateIdle, After: 1.0, To: ecs.StateWander},
			{From: ecs.StateWander, When: TargetWithin(4.0), To: ecs.StateChase},
			{From: ecs.StateWander, After: 3.0, To: ecs.StateWander},
			{From: ecs.StateChase, When: TargetWithin(1.1), To: ecs.StateAttackWindup},
			{From: ecs.StateChase, When: TargetBeyond(6.0), To: ecs.StateWander},
			{From: ecs.StateAttackWindup, After: 0.4, To: ecs.StateAttack},
			{From: ecs.StateAttack, After: 0.25, To: ecs.StateChase},
		},
	})

	// Lurker: stands still and snaps at anything that wanders into reach.
	s.RegisterModel("lurker", &Model{
		Initial:        ecs.StateIdle,
		AttackTemplate: "melee_swing",
		AttackReach:    0.6,
		Rules: []Rule{
			{From: ecs.StateIdle, When: TargetWithin(1.5), To: ecs.StateAttackWindup},
			{From: ecs.StateAttackWindup, After: 0.3, To: ecs.StateAttack},
			{From: ecs.StateAttack, After: 0.5, To: ecs.StateIdle},
		},
	})
}
