package driver

import (
	"math"

	"github.com/iburimskiy/spiral-visualizer/internal/config"
)

// TimeState tracks frame timing and the playback clock. Elapsed values are
// seconds since the driver started; Delta is milliseconds.
type TimeState struct {
	Elapsed  float64
	Previous float64
	Delta    float64

	SessionStart float64
	CarryOver    float64
	Playback     float64

	Frequency float64
}

// advance records elapsed and computes the clamped frame delta.
func (t *TimeState) advance(elapsed float64, mode config.DeltaMode) float64 {
	t.Elapsed = elapsed
	t.Delta = FrameDelta(t.Previous, elapsed, mode)
	return t.Delta
}

// FrameDelta returns the millisecond delta between two frames, never more than
// MaxDeltaMillis. In reference mode the difference is previous minus current.
func FrameDelta(previous, elapsed float64, mode config.DeltaMode) float64 {
	raw := (previous - elapsed) * 1000
	if mode == config.DeltaForward {
		raw = -raw
	}
	return math.Min(config.MaxDeltaMillis, raw)
}

// AngleState accumulates the camera path angles while audio plays.
type AngleState struct {
	X float64
	Z float64
}

func (a *AngleState) advance(delta float64) {
	a.X += delta * config.AngleRateX
	a.Z += delta * config.AngleRateZ
}

func (a *AngleState) reset() {
	a.X, a.Z = 0, 0
}

// CompressAmplitude squares a raw amplitude sample to widen its dynamic range.
func CompressAmplitude(raw float64) float64 {
	return raw * raw / config.AmplitudeDivisor
}

// CameraPath returns the camera x and z for the given angles. z stays within
// [-RadiusC, RadiusC].
func CameraPath(angle AngleState) (x, z float64) {
	x = math.Sin(angle.X) * config.RadiusA
	z = math.Cos(angle.Z) * config.RadiusC
	z = math.Max(-config.RadiusC, math.Min(config.RadiusC, z))
	return x, z
}

// SpiralAdvance is the per-frame spiral uniform increment.
func SpiralAdvance(delta, frequency, amplitude float64) float64 {
	return delta * frequency * (1 + amplitude*config.AmplitudeBoost)
}

// PolyhedronSpin is the per-frame rotation increment of each octahedron.
// A zero amplitude falls back to the base rate.
func PolyhedronSpin(delta, amplitude float64) float64 {
	if amplitude == 0 {
		return config.PolyhedronRate * delta
	}
	return config.PolyhedronRate * delta * amplitude / 5
}
