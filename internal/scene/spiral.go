package scene

import (
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
)

// SpiralPalette holds the CSS colours particles are drawn from.
var SpiralPalette = []color.RGBA{
	{R: 255, G: 192, B: 203, A: 255}, // pink
	{R: 0, G: 128, B: 0, A: 255},     // green
	{R: 0, G: 255, B: 255, A: 255},   // cyan
	{R: 245, G: 222, B: 179, A: 255}, // wheat
	{R: 255, G: 0, B: 0, A: 255},     // red
}

// Particle is the per-instance attribute set of one spiral point.
type Particle struct {
	Phi    float64
	Random float64
	Scale  float64
	Color  color.RGBA
}

// Spiral is an instanced particle system laid out along a spiral arm.
type Spiral struct {
	Object
	Material  *SpiralMaterial
	Reverse   bool
	Particles []Particle
}

func newSpiral(rng *rand.Rand, count int, maxPhi, size, turn float64, reverse bool) *Spiral {
	s := &Spiral{
		Object:    newObject(),
		Material:  &SpiralMaterial{Size: size},
		Reverse:   reverse,
		Particles: make([]Particle, count),
	}
	s.RotateY(turn)
	for i := range s.Particles {
		s.Particles[i] = Particle{
			Color:  SpiralPalette[rng.IntN(len(SpiralPalette))],
			Phi:    rng.Float64() * maxPhi,
			Random: rng.Float64(),
			Scale:  rng.Float64(),
		}
	}
	return s
}

// Position evaluates the particle's local position at the material's current time.
// The forward arm winds outward counter-clockwise, the reverse arm clockwise.
func (s *Spiral) Position(p Particle) mgl64.Vec3 {
	t := s.Material.Time
	dir := 1.0
	if s.Reverse {
		dir = -1
	}
	r := 0.12 * math.Sqrt(p.Phi)
	theta := dir * (p.Phi + t*(0.6+p.Random))
	y := 0.25*math.Sin(p.Phi*0.05+t*2)*(p.Random-0.5) + 0.05*math.Sin(t+p.Phi)
	return mgl64.Vec3{r * math.Cos(theta), y, r * math.Sin(theta)}
}

// Size returns the world-space size of a particle.
func (s *Spiral) Size(p Particle) float64 {
	return s.Material.Size * (0.5 + p.Scale)
}
