package analysis

import (
	"math"
	"math/cmplx"

	"github.com/san-kum/loopgen/internal/loop"
	"github.com/san-kum/loopgen/internal/oscil"
)

// FFT computes the discrete Fourier transform of data. Length must be a
// power of two; use PowerSpectrum for arbitrary-length series.
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

// PowerSpectrum removes the mean, zero-pads to the next power of two and
// returns the magnitude of the positive-frequency bins.
func PowerSpectrum(data []float64) []float64 {
	n := len(data)
	if n == 0 {
		return nil
	}

	mean := 0.0
	for _, v := range data {
		mean += v
	}
	mean /= float64(n)

	padded := make([]float64, nextPow2(n))
	for i, v := range data {
		padded[i] = v - mean
	}

	fft := FFT(padded)
	ps := make([]float64, len(fft)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(fft[i])
	}
	return ps
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p *= 2
	}
	return p
}

// SampleErrors returns the wrapped tracking error at each sample of a
// result, the raw material for spectral and convergence checks.
func SampleErrors(res loop.Result) []float64 {
	errs := make([]float64, len(res.Samples))
	for i, f := range res.Samples {
		phi := res.Params.RefPhase + res.Params.RefVelocity*f.T
		errs[i] = oscil.WrapPi(f.Angle - phi)
	}
	return errs
}

// MeanSampleError is the mean absolute wrapped error over the sampled
// period; zero means the oscillator locked exactly onto the reference.
func MeanSampleError(res loop.Result) float64 {
	errs := SampleErrors(res)
	if len(errs) == 0 {
		return 0
	}
	total := 0.0
	for _, e := range errs {
		total += math.Abs(e)
	}
	return total / float64(len(errs))
}

// DominantBin returns the index of the strongest positive-frequency bin of
// the sample-error spectrum, skipping DC.
func DominantBin(ps []float64) int {
	best, bestVal := 0, 0.0
	for i := 1; i < len(ps); i++ {
		if ps[i] > bestVal {
			best, bestVal = i, ps[i]
		}
	}
	return best
}
