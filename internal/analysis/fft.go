// Package analysis provides read-only frequency-domain diagnostics
// over a recorded kinetic-energy time series. It never touches the
// simulator directly; this is strictly a post-hoc analysis of already
// recorded run data.
package analysis

import (
	"math"
	"math/cmplx"
)

// FFT is a recursive radix-2 Cooley-Tukey transform, unchanged from
// the teacher's hand-rolled implementation: data length must be a
// power of two.
func FFT(data []float64) []complex128 {
	n := len(data)
	if n <= 1 {
		result := make([]complex128, n)
		for i := range data {
			result[i] = complex(data[i], 0)
		}
		return result
	}

	if n%2 != 0 {
		panic("fft requires power of 2 length")
	}

	even := make([]float64, n/2)
	odd := make([]float64, n/2)
	for i := 0; i < n/2; i++ {
		even[i] = data[2*i]
		odd[i] = data[2*i+1]
	}

	feven := FFT(even)
	fodd := FFT(odd)

	result := make([]complex128, n)
	for k := 0; k < n/2; k++ {
		w := cmplx.Exp(complex(0, -2*math.Pi*float64(k)/float64(n)))
		result[k] = feven[k] + w*fodd[k]
		result[k+n/2] = feven[k] - w*fodd[k]
	}
	return result
}

func PowerSpectrum(data []float64) []float64 {
	fft := FFT(data)
	ps := make([]float64, len(fft)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(fft[i])
	}
	return ps
}

// SloshFrequency pads a kinetic-energy series to the next power of two
// and returns the dominant non-DC frequency in Hz, given the sampling
// dt used to record the series. Intended for scene 1 (slide_wall)
// runs, where the moving wall periodically excites the fluid.
func SloshFrequency(energy []float64, dt float64) float64 {
	if len(energy) < 4 {
		return 0
	}
	n := 1
	for n < len(energy) {
		n *= 2
	}
	padded := make([]float64, n)
	copy(padded, energy)

	ps := PowerSpectrum(padded)
	if len(ps) < 2 {
		return 0
	}

	maxPower, maxIdx := 0.0, 1
	for i := 1; i < len(ps); i++ {
		if ps[i] > maxPower {
			maxPower = ps[i]
			maxIdx = i
		}
	}

	duration := float64(n) * dt
	return float64(maxIdx) / duration
}
