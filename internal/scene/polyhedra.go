package scene

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	red    = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	tomato = color.RGBA{R: 255, G: 99, B: 71, A: 255}
)

// Polyhedron is a wireframe octahedron.
type Polyhedron struct {
	Object
	Color color.RGBA
	edges []Edge
}

// Edges returns the local-space wireframe.
func (p *Polyhedron) Edges() []Edge {
	return p.edges
}

// Group is a transform node owning polyhedra.
type Group struct {
	Object
	Children []*Polyhedron
}

type octaSpec struct {
	color    color.RGBA
	position mgl64.Vec3
	scale    mgl64.Vec3
}

var octaLayout = []octaSpec{
	{color: red, scale: mgl64.Vec3{1, 1.4, 1}},
	{color: tomato, position: mgl64.Vec3{0, 0.85, 0}, scale: mgl64.Vec3{0.5, 0.7, 0.5}},
	{color: red, position: mgl64.Vec3{1, -0.75, 0}, scale: mgl64.Vec3{0.5, 0.7, 0.5}},
	{color: tomato, position: mgl64.Vec3{-0.75, -1.75, 0}, scale: mgl64.Vec3{1, 1.2, 1}},
	{color: red, position: mgl64.Vec3{0.5, -1.2, 0.5}, scale: mgl64.Vec3{0.25, 0.37, 0.25}},
}

func newOctahedra(radius float64) *Group {
	g := &Group{Object: newObject()}
	edges := octahedronEdges(radius)
	for _, spec := range octaLayout {
		p := &Polyhedron{
			Object: newObject(),
			Color:  spec.color,
			edges:  edges,
		}
		p.Position = spec.position
		p.Scale = spec.scale
		g.Children = append(g.Children, p)
	}
	return g
}

func octahedronEdges(r float64) []Edge {
	top := mgl64.Vec3{0, r, 0}
	bottom := mgl64.Vec3{0, -r, 0}
	ring := []mgl64.Vec3{{r, 0, 0}, {0, 0, r}, {-r, 0, 0}, {0, 0, -r}}

	edges := make([]Edge, 0, 12)
	for i, v := range ring {
		next := ring[(i+1)%len(ring)]
		edges = append(edges,
			Edge{A: v, B: next},
			Edge{A: top, B: v},
			Edge{A: bottom, B: v},
		)
	}
	return edges
}
