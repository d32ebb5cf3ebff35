package audio

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
)

// Analyser reduces a window of samples to byte-scaled frequency magnitudes,
// following the Web Audio AnalyserNode: Blackman window, magnitude smoothing
// over time, decibel conversion and mapping of [minDB, maxDB] onto [0, 255].
type Analyser struct {
	size      int
	smoothing float64
	minDB     float64
	maxDB     float64

	fft     *fourier.FFT
	window  []float64
	input   []float64
	coeffs  []complex128
	smooth  []float64
	samples []float64
}

// NewAnalyser returns an analyser over windows of size samples (a power of two).
func NewAnalyser(size int, smoothing, minDB, maxDB float64) *Analyser {
	a := &Analyser{
		size:      size,
		smoothing: smoothing,
		minDB:     minDB,
		maxDB:     maxDB,
		fft:       fourier.NewFFT(size),
		window:    blackman(size),
		input:     make([]float64, size),
		smooth:    make([]float64, size/2),
	}
	return a
}

// Size is the analysis window length in samples.
func (a *Analyser) Size() int { return a.size }

// Bins is the number of frequency bins produced.
func (a *Analyser) Bins() int { return a.size / 2 }

// Frequencies writes byte-scaled magnitudes for the given window into dst.
// samples shorter than Size are zero-padded at the front.
func (a *Analyser) Frequencies(dst []float64, samples []float64) []float64 {
	offset := a.size - len(samples)
	for i := range a.input {
		var s float64
		if j := i - offset; j >= 0 && j < len(samples) {
			s = samples[j]
		}
		a.input[i] = s * a.window[i]
	}
	a.coeffs = a.fft.Coefficients(a.coeffs, a.input)

	bins := a.Bins()
	if cap(dst) < bins {
		dst = make([]float64, bins)
	}
	dst = dst[:bins]
	for k := 0; k < bins; k++ {
		mag := cmplx.Abs(a.coeffs[k]) / float64(a.size)
		a.smooth[k] = a.smoothing*a.smooth[k] + (1-a.smoothing)*mag
		dst[k] = a.scale(a.smooth[k])
	}
	return dst
}

// Average returns the mean byte-scaled magnitude over all bins.
func (a *Analyser) Average(samples []float64) float64 {
	a.samples = a.Frequencies(a.samples, samples)
	var sum float64
	for _, v := range a.samples {
		sum += v
	}
	return sum / float64(len(a.samples))
}

// Reset clears the smoothing history.
func (a *Analyser) Reset() {
	for i := range a.smooth {
		a.smooth[i] = 0
	}
}

func (a *Analyser) scale(mag float64) float64 {
	if mag <= 0 {
		return 0
	}
	db := 20 * math.Log10(mag)
	v := 255 * (db - a.minDB) / (a.maxDB - a.minDB)
	return math.Max(0, math.Min(255, v))
}

func blackman(n int) []float64 {
	const alpha = 0.16
	a0 := 0.5 * (1 - alpha)
	a1 := 0.5
	a2 := 0.5 * alpha
	w := make([]float64, n)
	for i := range w {
		x := float64(i) / float64(n)
		w[i] = a0 - a1*math.Cos(2*math.Pi*x) + a2*math.Cos(4*math.Pi*x)
	}
	return w
}
