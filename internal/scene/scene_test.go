package scene

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/iburimskiy/spiral-visualizer/internal/config"
)

func testConfig() config.Config {
	return config.Config{
		Seed:           7,
		Particles:      50,
		SphereSegments: 8,
		Width:          800,
		Height:         400,
	}
}

func TestBuild(t *testing.T) {
	s := Build(testConfig())

	if len(s.Spirals) != 2 {
		t.Fatalf("expected 2 spirals, got %d", len(s.Spirals))
	}
	if s.Spirals[0].Reverse || !s.Spirals[1].Reverse {
		t.Error("expected one forward and one reverse spiral")
	}
	for i, sp := range s.Spirals {
		if len(sp.Particles) != 50 {
			t.Errorf("spiral %d: %d particles, want 50", i, len(sp.Particles))
		}
		if sp.Material.Size != config.SpiralSize {
			t.Errorf("spiral %d: size %f, want %f", i, sp.Material.Size, config.SpiralSize)
		}
		if sp.Rotation.Y() != config.SpiralTurn {
			t.Errorf("spiral %d: rotation.y %f, want %f", i, sp.Rotation.Y(), config.SpiralTurn)
		}
		for _, p := range sp.Particles {
			if p.Phi < 0 || p.Phi >= config.SpiralMaxPhi {
				t.Fatalf("phi %f out of range", p.Phi)
			}
		}
	}
	if len(s.Octas.Children) != 5 {
		t.Errorf("expected 5 octahedra, got %d", len(s.Octas.Children))
	}
	if s.Sphere.Radius != config.SphereRadius {
		t.Errorf("sphere radius %f, want %f", s.Sphere.Radius, config.SphereRadius)
	}
	if s.Camera.Position != (mgl64.Vec3{0, 0, 4.5}) {
		t.Errorf("camera starts at %v, want (0, 0, 4.5)", s.Camera.Position)
	}
}

func TestBuildIsReproducible(t *testing.T) {
	a := Build(testConfig())
	b := Build(testConfig())

	for i := range a.Spirals[0].Particles {
		if a.Spirals[0].Particles[i] != b.Spirals[0].Particles[i] {
			t.Fatalf("particle %d differs between builds with the same seed", i)
		}
	}
}

func TestEdgeCounts(t *testing.T) {
	if n := len(octahedronEdges(0.2)); n != 12 {
		t.Errorf("octahedron has %d edges, want 12", n)
	}
	// segments meridian edges per ring, plus segments parallels per non-pole ring
	if n := len(sphereEdges(6, 8)); n != 8*8+7*8 {
		t.Errorf("sphere has %d edges, want %d", n, 8*8+7*8)
	}
	for _, e := range sphereEdges(6, 8) {
		if math.Abs(e.A.Len()-6) > 1e-9 || math.Abs(e.B.Len()-6) > 1e-9 {
			t.Fatalf("sphere edge %v not on radius 6", e)
		}
	}
}

func TestProjectOriginToCenter(t *testing.T) {
	cam := NewCamera(mgl64.Vec3{0, 0, 4.5}, 85, 2, 0.1, 100)
	p := cam.Projector(800, 400)

	x, y, depth, ok := p.Project(mgl64.Vec3{})
	if !ok {
		t.Fatal("origin should be visible")
	}
	if math.Abs(x-400) > 1e-6 || math.Abs(y-200) > 1e-6 {
		t.Errorf("origin projected to (%f, %f), want (400, 200)", x, y)
	}
	if math.Abs(depth-4.5) > 1e-6 {
		t.Errorf("depth = %f, want 4.5", depth)
	}
}

func TestProjectBehindCamera(t *testing.T) {
	cam := NewCamera(mgl64.Vec3{0, 0, 4.5}, 85, 2, 0.1, 100)
	p := cam.Projector(800, 400)

	if _, _, _, ok := p.Project(mgl64.Vec3{0, 0, 10}); ok {
		t.Error("point behind the camera should not project")
	}
}

func TestProjectUpIsUp(t *testing.T) {
	cam := NewCamera(mgl64.Vec3{0, 0, 4.5}, 85, 2, 0.1, 100)
	p := cam.Projector(800, 400)

	_, y, _, _ := p.Project(mgl64.Vec3{0, 1, 0})
	if y >= 200 {
		t.Errorf("point above origin projected to y=%f, want above center", y)
	}
}

func TestPixelSizeShrinksWithDepth(t *testing.T) {
	cam := NewCamera(mgl64.Vec3{0, 0, 4.5}, 85, 2, 0.1, 100)
	p := cam.Projector(800, 400)

	near := p.PixelSize(0.1, 1)
	far := p.PixelSize(0.1, 10)
	if near <= far {
		t.Errorf("near size %f should exceed far size %f", near, far)
	}
	if p.PixelSize(0.1, 0) != 0 {
		t.Error("zero depth should give zero size")
	}
}

func TestObjectMatrix(t *testing.T) {
	o := newObject()
	o.Position = mgl64.Vec3{1, 2, 3}
	o.Scale = mgl64.Vec3{2, 2, 2}
	o.RotateY(math.Pi / 2)

	got := o.Matrix().Mul4x1(mgl64.Vec4{1, 0, 0, 1}).Vec3()
	want := mgl64.Vec3{1, 2, 1} // x axis rotated onto -z, scaled by 2, then translated
	if !got.ApproxEqualThreshold(want, 1e-9) {
		t.Errorf("transformed point = %v, want %v", got, want)
	}
}

func TestUniforms(t *testing.T) {
	sm := &SpiralMaterial{Time: 1.5, Size: 0.045}
	u := sm.Uniforms()
	if u[UniformTime] != float32(1.5) {
		t.Errorf("Time = %v, want 1.5", u[UniformTime])
	}
	if u[UniformSize] != float32(0.045) {
		t.Errorf("Size = %v, want 0.045", u[UniformSize])
	}

	wm := &WireMaterial{Time: 2}
	if len(wm.Uniforms()) != 1 {
		t.Errorf("wire material exposes %d uniforms, want 1", len(wm.Uniforms()))
	}
}

func TestSpiralArmsWindOpposite(t *testing.T) {
	s := Build(testConfig())
	p := Particle{Phi: 1, Random: 0.5, Scale: 0.5}

	fwd := s.Spirals[0].Position(p)
	rev := s.Spirals[1].Position(p)
	if math.Abs(fwd.Z()+rev.Z()) > 1e-9 {
		t.Errorf("arms not mirrored: %v vs %v", fwd, rev)
	}
	if s.Spirals[0].Size(p) != config.SpiralSize {
		t.Errorf("size = %f, want %f", s.Spirals[0].Size(p), config.SpiralSize)
	}
}
