package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Edge is a line segment between two local-space points.
type Edge struct {
	A, B mgl64.Vec3
}

// Sphere is the wireframe sphere enclosing the scene.
type Sphere struct {
	Object
	Material *WireMaterial
	Radius   float64
	Segments int
	edges    []Edge
}

func newSphere(radius float64, segments int) *Sphere {
	s := &Sphere{
		Object:   newObject(),
		Material: &WireMaterial{},
		Radius:   radius,
		Segments: segments,
	}
	s.edges = sphereEdges(radius, segments)
	return s
}

// Edges returns the wireframe edges with the material's breathing applied.
func (s *Sphere) Edges() []Edge {
	k := 1 + 0.03*math.Sin(s.Material.Time*2)
	out := make([]Edge, len(s.edges))
	for i, e := range s.edges {
		out[i] = Edge{A: e.A.Mul(k), B: e.B.Mul(k)}
	}
	return out
}

// Glow is the wire brightness in [0.15, 0.45] driven by the material time.
func (s *Sphere) Glow() float64 {
	return 0.3 + 0.15*math.Sin(s.Material.Time*3)
}

// sphereEdges builds a UV sphere wireframe with segments rings and segments meridians.
func sphereEdges(radius float64, segments int) []Edge {
	point := func(ring, seg int) mgl64.Vec3 {
		theta := math.Pi * float64(ring) / float64(segments)
		phi := 2 * math.Pi * float64(seg) / float64(segments)
		return mgl64.Vec3{
			radius * math.Sin(theta) * math.Cos(phi),
			radius * math.Cos(theta),
			radius * math.Sin(theta) * math.Sin(phi),
		}
	}

	edges := make([]Edge, 0, 2*segments*segments)
	for ring := 0; ring < segments; ring++ {
		for seg := 0; seg < segments; seg++ {
			// meridian
			edges = append(edges, Edge{A: point(ring, seg), B: point(ring+1, seg)})
			// parallel, skipping the degenerate pole ring
			if ring > 0 {
				edges = append(edges, Edge{A: point(ring, seg), B: point(ring, seg+1)})
			}
		}
	}
	return edges
}
