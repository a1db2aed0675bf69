package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/rg/internal/domain/level"
)

func borderedGrid() *level.Grid {
	return level.Build(level.Bordered, 24, 24, 1)
}

func TestRaycast_AxisAligned(t *testing.T) {
	grid := borderedGrid()

	t.Run("east", func(t *testing.T) {
		hit := Raycast(grid, 12.5, 12.5, 1, 0)
		assert.InDelta(t, 10.5, hit.Dist, 1e-9)
		assert.Equal(t, 0, hit.Side)
		assert.Equal(t, 1, hit.Tile)
		assert.InDelta(t, 0.5, hit.WallX, 1e-9)
	})

	t.Run("west", func(t *testing.T) {
		hit := Raycast(grid, 12.5, 12.5, -1, 0)
		assert.InDelta(t, 11.5, hit.Dist, 1e-9)
		assert.Equal(t, 0, hit.Side)
	})

	t.Run("south", func(t *testing.T) {
		hit := Raycast(grid, 12.5, 12.5, 0, 1)
		assert.InDelta(t, 10.5, hit.Dist, 1e-9)
		assert.Equal(t, 1, hit.Side)
	})

	t.Run("north", func(t *testing.T) {
		hit := Raycast(grid, 12.5, 12.5, 0, -1)
		assert.InDelta(t, 11.5, hit.Dist, 1e-9)
		assert.Equal(t, 1, hit.Side)
	})
}

func TestRaycast_InteriorWall(t *testing.T) {
	grid := borderedGrid()
	grid.Set(14, 12, 2)

	hit := Raycast(grid, 12.5, 12.5, 1, 0)

	assert.InDelta(t, 1.5, hit.Dist, 1e-9)
	assert.Equal(t, 2, hit.Tile, "reports the wall code that was hit")
	assert.Equal(t, 0, hit.Side)
}

func TestRaycast_Deterministic(t *testing.T) {
	grid := borderedGrid()
	grid.Set(17, 9, 3)

	first := Raycast(grid, 12.5, 12.5, 0.83, -0.56)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Raycast(grid, 12.5, 12.5, 0.83, -0.56))
	}
}

func TestRaycast_LeavingMapTerminates(t *testing.T) {
	open := level.Build(func(x, y, w, h int) bool { return false }, 8, 8, 1)

	hit := Raycast(open, 4, 4, 1, 0.3)

	assert.Equal(t, 1, hit.Tile, "off-map counts as a wall")
	assert.Greater(t, hit.Dist, 0.0)
}

func TestRaycast_DiagonalPerpendicularDistance(t *testing.T) {
	grid := borderedGrid()

	// A diagonal ray still reports the perpendicular distance, which for a
	// hit on the east wall is the x gap over the x direction component.
	hit := Raycast(grid, 12.5, 12.5, 1, 0.2)

	require.Equal(t, 0, hit.Side)
	assert.InDelta(t, 10.5, hit.Dist, 1e-9)
}

func TestRenderWalls(t *testing.T) {
	grid := borderedGrid()
	grid.Set(14, 12, 1)

	r := NewRenderer(64, 48,
		ProceduralStrip(wallColors()),
		ProceduralStrip(faceColors()))
	cam := NewCamera(12.5, 12.5, 0)

	r.RenderWalls(grid, cam)

	// Every column recorded a positive wall distance.
	for x := 0; x < r.W; x++ {
		require.Greater(t, r.Depth(x), 0.0, "column %d", x)
	}

	// The center column looks straight at the pillar.
	assert.InDelta(t, 1.5, r.Depth(r.W/2), 1e-9)

	// Center pixel shows the wall texture, not the clear color.
	cr, cg, cb := pixelAt(r, r.W/2, r.H/2)
	wall := wallColors()[0]
	assert.Equal(t, wall.R, cr)
	assert.Equal(t, wall.G, cg)
	assert.Equal(t, wall.B, cb)
}

func TestRenderWalls_SideShading(t *testing.T) {
	grid := borderedGrid()
	r := NewRenderer(64, 48,
		ProceduralStrip(wallColors()),
		ProceduralStrip(faceColors()))

	// Looking along +Y hits a Y-stepped face, which is drawn darkened.
	r.RenderWalls(grid, NewCamera(12.5, 12.5, 1.5707963267948966))
	cr, _, _ := pixelAt(r, r.W/2, r.H/2)
	wall := wallColors()[0]
	assert.Equal(t, wall.R/2, cr)
}

func TestRendererBufferShape(t *testing.T) {
	r := NewRenderer(320, 200,
		ProceduralStrip(wallColors()),
		ProceduralStrip(faceColors()))

	assert.Equal(t, 320, r.W)
	assert.Equal(t, 200, r.H)
	assert.Len(t, r.Pix, 320*200*4)
}
