package scene

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Object is a node transform: translation, Euler rotation (radians) and scale.
type Object struct {
	Position mgl64.Vec3
	Rotation mgl64.Vec3
	Scale    mgl64.Vec3
}

func newObject() Object {
	return Object{Scale: mgl64.Vec3{1, 1, 1}}
}

// Matrix returns the local model matrix. Rotation order is Y * X * Z.
func (o *Object) Matrix() mgl64.Mat4 {
	r := mgl64.HomogRotate3DY(o.Rotation.Y()).
		Mul4(mgl64.HomogRotate3DX(o.Rotation.X())).
		Mul4(mgl64.HomogRotate3DZ(o.Rotation.Z()))
	return mgl64.Translate3D(o.Position.X(), o.Position.Y(), o.Position.Z()).
		Mul4(r).
		Mul4(mgl64.Scale3D(o.Scale.X(), o.Scale.Y(), o.Scale.Z()))
}

// RotateY adds d radians to the Y rotation.
func (o *Object) RotateY(d float64) {
	o.Rotation[1] += d
}
