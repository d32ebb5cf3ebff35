// Package scene builds the static content of the visualizer: two
// counter-winding particle spirals, a wireframe sphere and a group of
// octahedra, viewed through a perspective camera.
package scene

import (
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/iburimskiy/spiral-visualizer/internal/config"
)

// Scene is the full object graph the animation driver mutates.
type Scene struct {
	Camera  *Camera
	Spirals []*Spiral
	Sphere  *Sphere
	Octas   *Group
}

// Build constructs the scene from cfg. Particle attributes are drawn from a
// generator seeded with cfg.Seed so layouts are reproducible.
func Build(cfg config.Config) *Scene {
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))

	return &Scene{
		Camera: NewCamera(
			mgl64.Vec3{config.RestX, 0, config.RestZ},
			config.FieldOfView, cfg.Aspect(), config.NearPlane, config.FarPlane,
		),
		Spirals: []*Spiral{
			newSpiral(rng, cfg.Particles, config.SpiralMaxPhi, config.SpiralSize, config.SpiralTurn, false),
			newSpiral(rng, cfg.Particles, config.SpiralMaxPhi, config.SpiralSize, config.SpiralTurn, true),
		},
		Sphere: newSphere(config.SphereRadius, cfg.SphereSegments),
		Octas:  newOctahedra(config.OctahedronRadius),
	}
}
