package ecs

// ComponentFactory installs one freshly built component record on an entity.
// Templates are lists of factories so every spawn gets its own owned records,
// never a shared reference into the template.
type ComponentFactory func(w *World, id EntityID)

// TemplateRegistry maps template keys to component factory lists.
type TemplateRegistry struct {
	templates map[string][]ComponentFactory
}

// NewTemplateRegistry creates an empty registry.
func NewTemplateRegistry() *TemplateRegistry {
	return &TemplateRegistry{templates: make(map[string][]ComponentFactory)}
}

// Register binds a template key to its factories, replacing any previous binding.
func (r *TemplateRegistry) Register(key string, factories ...ComponentFactory) {
	r.templates[key] = factories
}

// Lookup returns the factories for a key.
func (r *TemplateRegistry) Lookup(key string) ([]ComponentFactory, bool) {
	f, ok := r.templates[key]
	return f, ok
}

// Keys returns the registered template keys (order unspecified).
func (r *TemplateRegistry) Keys() []string {
	keys := make([]string, 0, len(r.templates))
	for k := range r.templates {
		keys = append(keys, k)
	}
	return keys
}

// WithPosition returns a factory for a Position record.
// Spawn overwrites X/Y/Facing afterward; the record still has to exist
// so bodies always have a valid position.
func WithPosition() ComponentFactory {
	return func(w *World, id EntityID) {
		w.Position[id] = Position{}
	}
}

// WithBody returns a factory for a Body record.
func WithBody(b Body) ComponentFactory {
	return func(w *World, id EntityID) {
		b.Contacts = nil
		w.Body[id] = b
	}
}

// WithMortal returns a factory for a Mortal record.
func WithMortal(hp int) ComponentFactory {
	return func(w *World, id EntityID) {
		w.Mortal[id] = Mortal{HP: hp}
	}
}

// WithHazard returns a factory for a Hazard record.
func WithHazard(damage int, oneShot bool) ComponentFactory {
	return func(w *World, id EntityID) {
		w.Hazard[id] = Hazard{Damage: damage, OneShot: oneShot}
	}
}

// WithSprite returns a factory for a Sprite record.
func WithSprite(frame int) ComponentFactory {
	return func(w *World, id EntityID) {
		w.Sprite[id] = Sprite{Frame: frame}
	}
}

// WithAnimation returns a factory for an Animation record.
// Clips are copied so entities never share frame slices.
func WithAnimation(clips [][]int, delay float64) ComponentFactory {
	return func(w *World, id EntityID) {
		owned := make([][]int, len(clips))
		for i, c := range clips {
			owned[i] = append([]int(nil), c...)
		}
		w.Anim[id] = Animation{Clips: owned, Delay: delay}
	}
}

// WithTTL returns a factory for a TimeToLive record.
func WithTTL(seconds float64) ComponentFactory {
	return func(w *World, id EntityID) {
		w.TTL[id] = TimeToLive{Remaining: seconds}
	}
}

// WithBehavior returns a factory for a Behavior record bound to a model key.
func WithBehavior(model string) ComponentFactory {
	return func(w *World, id EntityID) {
		w.Behavior[id] = Behavior{Model: model}
	}
}
