// Package render is the pseudo-3D view: a DDA raycaster draws one textured
// wall column per screen column into an RGBA pixel buffer, then sprites are
// billboarded back-to-front against the wall pass's depth buffer. The buffer
// is uploaded to the screen by the front-end; nothing here touches the GPU,
// so the whole pass runs headless in tests.
package render

import (
	"math"

	"github.com/younwookim/rg/internal/domain/level"
)

// RayHit is the result of casting one ray through the tile grid.
type RayHit struct {
	// Dist is the perpendicular wall distance (projected onto the camera
	// forward axis), which avoids the fisheye effect.
	Dist float64
	// Side is 0 for an X-stepped (north/south facing) hit, 1 for Y-stepped.
	Side int
	// Tile is the wall code that was hit. Leaving the map reports 1.
	Tile int
	// WallX is the fractional hit position along the wall, for texturing.
	WallX float64
}

// Raycast runs the DDA grid traversal from (px,py) along (dirX,dirY) until a
// wall tile is hit or the ray leaves the map. Leaving the map counts as a
// wall hit so traversal always terminates. Pure function of its arguments.
func Raycast(grid *level.Grid, px, py, dirX, dirY float64) RayHit {
	mapX := int(math.Floor(px))
	mapY := int(math.Floor(py))

	// Distance along the ray between successive x (resp. y) grid lines.
	// The sqrt form never divides by the zero component of an axis-aligned
	// ray; the other axis's delta just comes out infinite.
	deltaX := math.Sqrt(1 + (dirY/dirX)*(dirY/dirX))
	deltaY := math.Sqrt(1 + (dirX/dirY)*(dirX/dirY))

	var stepX, stepY int
	var sideX, sideY float64
	if dirX < 0 {
		stepX = -1
		sideX = (px - float64(mapX)) * deltaX
	} else {
		stepX = 1
		sideX = (float64(mapX) + 1 - px) * deltaX
	}
	if dirY < 0 {
		stepY = -1
		sideY = (py - float64(mapY)) * deltaY
	} else {
		stepY = 1
		sideY = (float64(mapY) + 1 - py) * deltaY
	}

	side := 0
	tile := 0
	for {
		if sideX < sideY {
			sideX += deltaX
			mapX += stepX
			side = 0
		} else {
			sideY += deltaY
			mapY += stepY
			side = 1
		}

		code, ok := grid.At(mapX, mapY)
		if !ok {
			// Off the map: implicit wall, guarantees termination.
			tile = 1
			break
		}
		if code != level.TileEmpty {
			tile = code
			break
		}
	}

	var dist, wallX float64
	if side == 0 {
		dist = (float64(mapX) - px + (1-float64(stepX))/2) / dirX
		wallX = py + dist*dirY
	} else {
		dist = (float64(mapY) - py + (1-float64(stepY))/2) / dirY
		wallX = px + dist*dirX
	}
	wallX -= math.Floor(wallX)

	// Keep texture orientation consistent across the four wall faces.
	if side == 0 && dirX > 0 {
		wallX = 1 - wallX
	}
	if side == 1 && dirY < 0 {
		wallX = 1 - wallX
	}

	return RayHit{Dist: dist, Side: side, Tile: tile, WallX: wallX}
}

// Renderer owns the pixel buffer, the per-column depth buffer and the shared
// texture strip.
type Renderer struct {
	W, H  int
	Pix   []byte // RGBA, uploaded by the front-end after both passes
	depth []float64
	walls *Strip
	faces *Strip

	sprites []spriteEntry
}

// NewRenderer creates a renderer for a fixed screen size. walls textures the
// wall pass (frame = tile code - 1), faces textures the sprite pass (frame =
// Sprite.Frame).
func NewRenderer(w, h int, walls, faces *Strip) *Renderer {
	return &Renderer{
		W:     w,
		H:     h,
		Pix:   make([]byte, w*h*4),
		depth: make([]float64, w),
		walls: walls,
		faces: faces,
	}
}

// Depth returns the wall distance recorded for a screen column.
func (r *Renderer) Depth(x int) float64 {
	return r.depth[x]
}

func (r *Renderer) set(x, y int, cr, cg, cb byte) {
	i := (y*r.W + x) * 4
	r.Pix[i] = cr
	r.Pix[i+1] = cg
	r.Pix[i+2] = cb
	r.Pix[i+3] = 255
}

// clear paints the ceiling and floor halves.
func (r *Renderer) clear() {
	half := r.H / 2
	for y := 0; y < r.H; y++ {
		var cr, cg, cb byte = 28, 28, 40
		if y >= half {
			cr, cg, cb = 52, 48, 42
		}
		for x := 0; x < r.W; x++ {
			r.set(x, y, cr, cg, cb)
		}
	}
}

// RenderWalls casts one ray per screen column, draws the textured wall slice
// and records the perpendicular distance in the depth buffer.
func (r *Renderer) RenderWalls(grid *level.Grid, cam *Camera) {
	r.clear()

	for x := 0; x < r.W; x++ {
		// Camera-space offset in [-1,1] across the screen.
		u := 2*float64(x)/float64(r.W) - 1
		rayDirX := cam.DirX + cam.PlaneX*u
		rayDirY := cam.DirY + cam.PlaneY*u

		hit := Raycast(grid, cam.X, cam.Y, rayDirX, rayDirY)
		r.depth[x] = hit.Dist

		lineHeight := r.H
		if hit.Dist > 0 {
			lineHeight = int(float64(r.H) / hit.Dist)
		}
		drawStart := r.H/2 - lineHeight/2
		drawEnd := r.H/2 + lineHeight/2
		y0 := drawStart
		if y0 < 0 {
			y0 = 0
		}
		y1 := drawEnd
		if y1 > r.H {
			y1 = r.H
		}

		frame := hit.Tile - 1
		texX := int(hit.WallX * TextureSize)

		for y := y0; y < y1; y++ {
			texY := (y - drawStart) * TextureSize / lineHeight
			cr, cg, cb, _ := r.walls.At(frame, texX, texY)
			if hit.Side == 1 {
				// Two-tone lighting: Y-stepped faces are darkened.
				cr, cg, cb = cr/2, cg/2, cb/2
			}
			r.set(x, y, cr, cg, cb)
		}
	}
}
