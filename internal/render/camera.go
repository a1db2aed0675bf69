package render

import "math"

// PlaneLength scales the camera plane vector; it fixes the field of view at
// roughly 66 degrees.
const PlaneLength = 0.66

// Camera is the renderer's view of the world: a position, a facing unit
// vector and the perpendicular plane vector. Whoever tracks the controlled
// entity (or runs the intro sweep) writes it; the renderer only reads.
type Camera struct {
	X, Y           float64
	DirX, DirY     float64
	PlaneX, PlaneY float64
}

// NewCamera creates a camera at the given position facing along angle.
func NewCamera(x, y, angle float64) *Camera {
	c := &Camera{X: x, Y: y}
	c.SetAngle(angle)
	return c
}

// SetAngle points the camera along angle (radians) and rebuilds the plane
// vector perpendicular to it.
func (c *Camera) SetAngle(angle float64) {
	c.DirX = math.Cos(angle)
	c.DirY = math.Sin(angle)
	c.PlaneX = -c.DirY * PlaneLength
	c.PlaneY = c.DirX * PlaneLength
}

// MoveTo places the camera without changing its facing.
func (c *Camera) MoveTo(x, y float64) {
	c.X = x
	c.Y = y
}
