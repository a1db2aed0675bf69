package render

import (
	"sort"

	"github.com/younwookim/rg/internal/ecs"
)

type spriteEntry struct {
	x, y   float64
	frame  int
	distSq float64
}

// RenderSprites billboards every entity with a Sprite component, drawn
// back-to-front and depth-tested per column against the wall pass. The
// entity the camera rides (skip) is not drawn; you don't see yourself in
// first person.
func (r *Renderer) RenderSprites(w *ecs.World, cam *Camera, skip ecs.EntityID) {
	r.sprites = r.sprites[:0]
	for id, sprite := range w.Sprite {
		if id == skip {
			continue
		}
		pos, ok := w.Position[id]
		if !ok {
			continue
		}
		dx := pos.X - cam.X
		dy := pos.Y - cam.Y
		r.sprites = append(r.sprites, spriteEntry{
			x:      pos.X,
			y:      pos.Y,
			frame:  sprite.Frame,
			distSq: dx*dx + dy*dy,
		})
	}

	// Farthest first, so nearer sprites paint over them.
	sort.Slice(r.sprites, func(i, j int) bool {
		return r.sprites[i].distSq > r.sprites[j].distSq
	})

	// Inverse of the 2x2 camera basis [plane dir], for transforming world
	// deltas into camera space.
	invDet := 1.0 / (cam.PlaneX*cam.DirY - cam.DirX*cam.PlaneY)

	for _, sp := range r.sprites {
		relX := sp.x - cam.X
		relY := sp.y - cam.Y

		tx := invDet * (cam.DirY*relX - cam.DirX*relY)
		ty := invDet * (-cam.PlaneY*relX + cam.PlaneX*relY)
		if ty <= 0 {
			// Behind the camera.
			continue
		}

		screenX := int(float64(r.W) / 2 * (1 + tx/ty))

		// 1/ty scaling matches the wall projection exactly, so sprites
		// and geometry shrink at the same rate.
		spriteH := int(float64(r.H) / ty)
		if spriteH <= 0 {
			continue
		}
		spriteW := spriteH

		drawStartY := r.H/2 - spriteH/2
		y0 := drawStartY
		if y0 < 0 {
			y0 = 0
		}
		y1 := r.H/2 + spriteH/2
		if y1 > r.H {
			y1 = r.H
		}

		startX := screenX - spriteW/2
		for stripe := startX; stripe < startX+spriteW; stripe++ {
			if stripe < 0 || stripe >= r.W {
				continue
			}
			if ty >= r.depth[stripe] {
				// Wall in front of this column.
				continue
			}
			texX := (stripe - startX) * TextureSize / spriteW
			for y := y0; y < y1; y++ {
				texY := (y - drawStartY) * TextureSize / spriteH
				cr, cg, cb, ca := r.faces.At(sp.frame, texX, texY)
				if ca < 128 {
					continue
				}
				r.set(stripe, y, cr, cg, cb)
			}
		}
	}
}
