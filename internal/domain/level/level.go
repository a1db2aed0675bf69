// Package level owns the per-level tile grid and the map generators that
// fill it. A grid is built once at level start and discarded wholesale on
// transition; nothing mutates it in between.
package level

// Tile codes. 0 is open floor, anything above is a wall variant that picks
// the wall texture frame.
const (
	TileEmpty = 0
)

// Generator is the map generator contract: a pure predicate deciding whether
// the tile at (x,y) of a width*height grid is a wall.
type Generator func(x, y, width, height int) bool

// Grid is an immutable-per-level 2D tile grid.
type Grid struct {
	W, H  int
	tiles []int
}

// Build fills a new grid from a generator. Wall variant ids cycle by
// position so adjacent walls don't all share one texture.
func Build(gen Generator, w, h, variants int) *Grid {
	if variants < 1 {
		variants = 1
	}
	g := &Grid{W: w, H: h, tiles: make([]int, w*h)}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if gen(x, y, w, h) {
				g.tiles[y*w+x] = 1 + (x*7+y*13)%variants
			}
		}
	}
	return g
}

// At returns the tile code at (x,y) and whether the coordinate is on the map.
// Off-map lookups are reported, never faked as walls; callers decide.
func (g *Grid) At(x, y int) (int, bool) {
	if x < 0 || y < 0 || x >= g.W || y >= g.H {
		return 0, false
	}
	return g.tiles[y*g.W+x], true
}

// Solid reports whether (x,y) is a wall tile. Off-map is not solid.
func (g *Grid) Solid(x, y int) bool {
	code, ok := g.At(x, y)
	return ok && code != TileEmpty
}

// Set writes a tile code. Only generators and tests use this; the grid is
// frozen once the level starts.
func (g *Grid) Set(x, y, code int) {
	if x < 0 || y < 0 || x >= g.W || y >= g.H {
		return
	}
	g.tiles[y*g.W+x] = code
}
