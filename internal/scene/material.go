package scene

// Uniform names shared with shader programs. Kage only binds exported names.
const (
	UniformTime = "Time"
	UniformSize = "Size"
)

// SpiralMaterial carries the uniforms of a spiral particle system.
type SpiralMaterial struct {
	Time float64
	Size float64
}

// Uniforms returns the shader-facing uniform set.
func (m *SpiralMaterial) Uniforms() map[string]any {
	return map[string]any{
		UniformTime: float32(m.Time),
		UniformSize: float32(m.Size),
	}
}

// WireMaterial carries the uniforms of the background wireframe sphere.
type WireMaterial struct {
	Time float64
}

// Uniforms returns the shader-facing uniform set.
func (m *WireMaterial) Uniforms() map[string]any {
	return map[string]any{
		UniformTime: float32(m.Time),
	}
}
