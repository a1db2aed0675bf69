package ecs

import "math"

// SpatialCellSize is the hash cell edge in tile units. It is larger than any
// body the templates spawn, so a query touches at most 4 buckets in the
// common case.
const SpatialCellSize = 2.0

// SpatialHash is the broad-phase bucket grid. It lives for one physics tick:
// cleared, refilled from every body's bbox, then queried. Buckets are kept
// between ticks and truncated instead of reallocated.
type SpatialHash struct {
	cellSize float64
	cols     int
	rows     int
	buckets  [][]EntityID
}

// NewSpatialHash creates a hash covering a world of the given size in tile units.
func NewSpatialHash(worldW, worldH float64) *SpatialHash {
	cols := int(math.Ceil(worldW / SpatialCellSize))
	rows := int(math.Ceil(worldH / SpatialCellSize))
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return &SpatialHash{
		cellSize: SpatialCellSize,
		cols:     cols,
		rows:     rows,
		buckets:  make([][]EntityID, cols*rows),
	}
}

// Clear truncates every bucket, keeping its backing array.
func (h *SpatialHash) Clear() {
	for i := range h.buckets {
		h.buckets[i] = h.buckets[i][:0]
	}
}

// bucketRange computes the inclusive bucket index range a bbox spans.
func (h *SpatialHash) bucketRange(bbox Rect) (x0, y0, x1, y1 int) {
	x0 = int(math.Floor(bbox.X / h.cellSize))
	y0 = int(math.Floor(bbox.Y / h.cellSize))
	x1 = int(math.Floor((bbox.X + bbox.W) / h.cellSize))
	y1 = int(math.Floor((bbox.Y + bbox.H) / h.cellSize))
	return
}

// Insert adds an entity to every bucket its bbox spans. Buckets outside the
// grid are skipped, not indexed.
func (h *SpatialHash) Insert(id EntityID, bbox Rect) {
	x0, y0, x1, y1 := h.bucketRange(bbox)
	for by := y0; by <= y1; by++ {
		if by < 0 || by >= h.rows {
			continue
		}
		for bx := x0; bx <= x1; bx++ {
			if bx < 0 || bx >= h.cols {
				continue
			}
			idx := by*h.cols + bx
			h.buckets[idx] = append(h.buckets[idx], id)
		}
	}
}

// QueryNeighbors appends to out every entity whose bucket range intersects the
// bbox's. The result may contain duplicates and the querying entity itself;
// the caller dedupes pairs.
func (h *SpatialHash) QueryNeighbors(bbox Rect, out []EntityID) []EntityID {
	x0, y0, x1, y1 := h.bucketRange(bbox)
	for by := y0; by <= y1; by++ {
		if by < 0 || by >= h.rows {
			continue
		}
		for bx := x0; bx <= x1; bx++ {
			if bx < 0 || bx >= h.cols {
				continue
			}
			out = append(out, h.buckets[by*h.cols+bx]...)
		}
	}
	return out
}
