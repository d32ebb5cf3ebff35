package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Camera is a perspective camera aimed at a fixed target.
type Camera struct {
	Position mgl64.Vec3
	Target   mgl64.Vec3
	Up       mgl64.Vec3

	Fov    float64 // vertical, degrees
	Aspect float64
	Near   float64
	Far    float64

	view mgl64.Mat4
}

// NewCamera returns a camera at pos looking at the origin.
func NewCamera(pos mgl64.Vec3, fov, aspect, near, far float64) *Camera {
	c := &Camera{
		Position: pos,
		Up:       mgl64.Vec3{0, 1, 0},
		Fov:      fov,
		Aspect:   aspect,
		Near:     near,
		Far:      far,
	}
	c.LookAt(mgl64.Vec3{})
	return c
}

// LookAt re-aims the camera at target from its current position.
func (c *Camera) LookAt(target mgl64.Vec3) {
	c.Target = target
	c.view = mgl64.LookAtV(c.Position, c.Target, c.Up)
}

// View returns the view matrix computed by the last LookAt.
func (c *Camera) View() mgl64.Mat4 {
	return c.view
}

// Projection returns the perspective projection matrix.
func (c *Camera) Projection() mgl64.Mat4 {
	return mgl64.Perspective(mgl64.DegToRad(c.Fov), c.Aspect, c.Near, c.Far)
}

// Projector maps world positions to screen pixels for one frame.
type Projector struct {
	viewProj      mgl64.Mat4
	width, height float64
	focal         float64
	near          float64
}

// Projector captures the camera's current matrices for a width x height target.
func (c *Camera) Projector(width, height int) Projector {
	return Projector{
		viewProj: c.Projection().Mul4(c.view),
		width:    float64(width),
		height:   float64(height),
		focal:    float64(height) / 2 / math.Tan(mgl64.DegToRad(c.Fov)/2),
		near:     c.Near,
	}
}

// Project returns the screen position of p and its clip-space w (view depth).
// ok is false when p lies behind the near plane.
func (p Projector) Project(world mgl64.Vec3) (x, y, depth float64, ok bool) {
	clip := p.viewProj.Mul4x1(world.Vec4(1))
	w := clip.W()
	if w < p.near {
		return 0, 0, 0, false
	}
	ndcX := clip.X() / w
	ndcY := clip.Y() / w
	x = (ndcX + 1) / 2 * p.width
	y = (1 - ndcY) / 2 * p.height
	return x, y, w, true
}

// PixelSize converts a world-space size at the given depth into pixels.
func (p Projector) PixelSize(size, depth float64) float64 {
	if depth <= 0 {
		return 0
	}
	return size * p.focal / depth
}
