package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/rg/internal/domain/level"
	"github.com/younwookim/rg/internal/ecs"
)

func wallColors() []color.RGBA {
	return []color.RGBA{{R: 40, G: 40, B: 200, A: 255}}
}

func faceColors() []color.RGBA {
	return []color.RGBA{{R: 200, G: 40, B: 40, A: 255}}
}

func pixelAt(r *Renderer, x, y int) (byte, byte, byte) {
	i := (y*r.W + x) * 4
	return r.Pix[i], r.Pix[i+1], r.Pix[i+2]
}

func newSpriteScene() (*Renderer, *level.Grid, *Camera, *ecs.World) {
	grid := level.Build(level.Bordered, 24, 24, 1)
	r := NewRenderer(64, 48,
		ProceduralStrip(wallColors()),
		ProceduralStrip(faceColors()))
	cam := NewCamera(12.5, 12.5, 0)
	w := ecs.NewWorld()
	return r, grid, cam, w
}

func addSprite(w *ecs.World, x, y float64, frame int) ecs.EntityID {
	id := w.NewEntity()
	w.Position[id] = ecs.Position{X: x, Y: y}
	w.Sprite[id] = ecs.Sprite{Frame: frame}
	return id
}

func TestRenderSprites_Visible(t *testing.T) {
	r, grid, cam, w := newSpriteScene()
	addSprite(w, 13.5, 12.5, 0)

	r.RenderWalls(grid, cam)
	r.RenderSprites(w, cam, 0)

	cr, cg, cb := pixelAt(r, r.W/2, r.H/2)
	face := faceColors()[0]
	assert.Equal(t, face.R, cr)
	assert.Equal(t, face.G, cg)
	assert.Equal(t, face.B, cb)
}

func TestRenderSprites_OccludedByWall(t *testing.T) {
	r, grid, cam, w := newSpriteScene()
	grid.Set(14, 12, 1)

	// Sprite sits one tile behind the pillar.
	addSprite(w, 15.5, 12.5, 0)

	r.RenderWalls(grid, cam)
	r.RenderSprites(w, cam, 0)

	cr, cg, cb := pixelAt(r, r.W/2, r.H/2)
	wall := wallColors()[0]
	assert.Equal(t, wall.R, cr, "wall in front wins the depth test")
	assert.Equal(t, wall.G, cg)
	assert.Equal(t, wall.B, cb)
}

func TestRenderSprites_BehindCamera(t *testing.T) {
	r, grid, cam, w := newSpriteScene()
	addSprite(w, 11.0, 12.5, 0)

	r.RenderWalls(grid, cam)
	before := append([]byte(nil), r.Pix...)

	r.RenderSprites(w, cam, 0)

	assert.Equal(t, before, r.Pix, "sprites behind the camera draw nothing")
}

func TestRenderSprites_SkipsCameraEntity(t *testing.T) {
	r, grid, cam, w := newSpriteScene()
	self := addSprite(w, 13.5, 12.5, 0)

	r.RenderWalls(grid, cam)
	before := append([]byte(nil), r.Pix...)

	r.RenderSprites(w, cam, self)

	assert.Equal(t, before, r.Pix)
}

func TestRenderSprites_NearerPaintsOverFarther(t *testing.T) {
	grid := level.Build(level.Bordered, 24, 24, 1)
	r := NewRenderer(64, 48,
		ProceduralStrip(wallColors()),
		ProceduralStrip([]color.RGBA{
			{R: 200, G: 40, B: 40, A: 255},
			{R: 40, G: 200, B: 40, A: 255},
		}))
	cam := NewCamera(12.5, 12.5, 0)
	w := ecs.NewWorld()

	addSprite(w, 15.5, 12.5, 0)
	near := addSprite(w, 13.5, 12.5, 1)
	require.NotEqual(t, ecs.EntityID(0), near)

	r.RenderWalls(grid, cam)
	r.RenderSprites(w, cam, 0)

	cr, cg, _ := pixelAt(r, r.W/2, r.H/2)
	assert.Equal(t, byte(40), cr)
	assert.Equal(t, byte(200), cg, "nearer sprite drawn last")
}

func TestRenderSprites_TransparentTexels(t *testing.T) {
	grid := level.Build(level.Bordered, 24, 24, 1)
	r := NewRenderer(64, 48,
		ProceduralStrip(wallColors()),
		ProceduralStrip([]color.RGBA{{R: 200, G: 40, B: 40, A: 0}}))
	cam := NewCamera(12.5, 12.5, 0)
	w := ecs.NewWorld()
	addSprite(w, 13.5, 12.5, 0)

	r.RenderWalls(grid, cam)
	before := append([]byte(nil), r.Pix...)

	r.RenderSprites(w, cam, 0)

	assert.Equal(t, before, r.Pix, "alpha below the cutoff is skipped")
}
