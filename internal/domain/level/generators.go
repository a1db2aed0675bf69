package level

import "math/rand"

// GeneratorRegistry holds named generators; a level picks one at random.
type GeneratorRegistry struct {
	names []string
	gens  map[string]Generator
}

// NewGeneratorRegistry creates an empty registry.
func NewGeneratorRegistry() *GeneratorRegistry {
	return &GeneratorRegistry{gens: make(map[string]Generator)}
}

// Register adds a named generator. Registration order is preserved for Pick.
func (r *GeneratorRegistry) Register(name string, gen Generator) {
	if _, dup := r.gens[name]; !dup {
		r.names = append(r.names, name)
	}
	r.gens[name] = gen
}

// Lookup returns a generator by name.
func (r *GeneratorRegistry) Lookup(name string) (Generator, bool) {
	g, ok := r.gens[name]
	return g, ok
}

// Pick returns a random registered generator.
func (r *GeneratorRegistry) Pick(rng *rand.Rand) Generator {
	if len(r.names) == 0 {
		return Bordered
	}
	return r.gens[r.names[rng.Intn(len(r.names))]]
}

// Bordered walls the outer ring only. The degenerate fallback map.
func Bordered(x, y, width, height int) bool {
	return x == 0 || y == 0 || x == width-1 || y == height-1
}

// Scatter walls the border plus a deterministic sprinkle of pillars.
// Pure in (x,y,width,height) so rebuilding the same level gives the same map.
func Scatter(x, y, width, height int) bool {
	if Bordered(x, y, width, height) {
		return true
	}
	// Keep the middle open so spawns always have room.
	cx, cy := width/2, height/2
	if absInt(x-cx) <= 2 && absInt(y-cy) <= 2 {
		return false
	}
	h := uint32(x*374761393 + y*668265263)
	h = (h ^ (h >> 13)) * 1274126177
	return h%7 == 0
}

// Lattice walls the border and a grid of pillars every third tile, leaving
// corridors between them.
func Lattice(x, y, width, height int) bool {
	if Bordered(x, y, width, height) {
		return true
	}
	cx, cy := width/2, height/2
	if absInt(x-cx) <= 1 && absInt(y-cy) <= 1 {
		return false
	}
	return x%3 == 0 && y%3 == 0
}

// DefaultGenerators returns the registry the game ships with.
func DefaultGenerators() *GeneratorRegistry {
	r := NewGeneratorRegistry()
	r.Register("scatter", Scatter)
	r.Register("lattice", Lattice)
	r.Register("bordered", Bordered)
	return r
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
