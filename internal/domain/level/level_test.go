package level

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	g := Build(Bordered, 8, 6, 3)

	require.Equal(t, 8, g.W)
	require.Equal(t, 6, g.H)

	// Border is walled, center is open.
	assert.True(t, g.Solid(0, 0))
	assert.True(t, g.Solid(7, 5))
	assert.True(t, g.Solid(3, 0))
	assert.False(t, g.Solid(3, 3))

	// Variant codes stay in [1, variants].
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			code, ok := g.At(x, y)
			require.True(t, ok)
			assert.LessOrEqual(t, code, 3)
			assert.GreaterOrEqual(t, code, 0)
		}
	}
}

func TestAtOffMap(t *testing.T) {
	g := Build(Bordered, 8, 8, 1)

	tests := []struct {
		name string
		x, y int
	}{
		{name: "left", x: -1, y: 4},
		{name: "right", x: 8, y: 4},
		{name: "above", x: 4, y: -1},
		{name: "below", x: 4, y: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, ok := g.At(tt.x, tt.y)
			assert.False(t, ok, "off-map lookup must be reported")
			assert.Equal(t, 0, code)
			assert.False(t, g.Solid(tt.x, tt.y), "off-map is not solid")
		})
	}
}

func TestSet(t *testing.T) {
	g := Build(Bordered, 8, 8, 1)

	g.Set(3, 3, 2)
	code, ok := g.At(3, 3)
	require.True(t, ok)
	assert.Equal(t, 2, code)
	assert.True(t, g.Solid(3, 3))

	// Off-map writes are dropped.
	g.Set(-1, 3, 2)
	g.Set(3, 99, 2)
}

func TestGeneratorsPure(t *testing.T) {
	gens := map[string]Generator{
		"bordered": Bordered,
		"scatter":  Scatter,
		"lattice":  Lattice,
	}

	for name, gen := range gens {
		t.Run(name, func(t *testing.T) {
			a := Build(gen, 24, 24, 3)
			b := Build(gen, 24, 24, 3)
			for y := 0; y < 24; y++ {
				for x := 0; x < 24; x++ {
					ca, _ := a.At(x, y)
					cb, _ := b.At(x, y)
					require.Equal(t, ca, cb, "generator must be pure at (%d,%d)", x, y)
				}
			}

			// Every generator walls the border.
			for x := 0; x < 24; x++ {
				assert.True(t, a.Solid(x, 0))
				assert.True(t, a.Solid(x, 23))
			}
		})
	}
}

func TestSpawnAreaStaysOpen(t *testing.T) {
	// The player spawns at the map center; every shipped generator has to
	// leave room there.
	for name, gen := range map[string]Generator{
		"bordered": Bordered,
		"scatter":  Scatter,
		"lattice":  Lattice,
	} {
		t.Run(name, func(t *testing.T) {
			g := Build(gen, 24, 24, 1)
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					assert.False(t, g.Solid(12+dx, 12+dy), "spawn area at (%d,%d) must stay open", 12+dx, 12+dy)
				}
			}
		})
	}
}

func TestGeneratorRegistry(t *testing.T) {
	reg := DefaultGenerators()

	for _, name := range []string{"scatter", "lattice", "bordered"} {
		_, ok := reg.Lookup(name)
		assert.True(t, ok, "default registry should carry %q", name)
	}

	// Pick is driven entirely by the rng, so same seed means same choice.
	a := reg.Pick(rand.New(rand.NewSource(7)))
	b := reg.Pick(rand.New(rand.NewSource(7)))
	ga := Build(a, 16, 16, 1)
	gb := Build(b, 16, 16, 1)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			ca, _ := ga.At(x, y)
			cb, _ := gb.At(x, y)
			require.Equal(t, ca, cb)
		}
	}
}

func TestEmptyRegistryFallsBack(t *testing.T) {
	reg := NewGeneratorRegistry()

	gen := reg.Pick(rand.New(rand.NewSource(1)))
	require.NotNil(t, gen)
	g := Build(gen, 8, 8, 1)
	assert.True(t, g.Solid(0, 0))
	assert.False(t, g.Solid(4, 4))
}
