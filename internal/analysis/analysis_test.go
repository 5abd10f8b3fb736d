package analysis

import (
	"math"
	"testing"

	"github.com/san-kum/loopgen/internal/loop"
)

func TestFFTPureTone(t *testing.T) {
	const n = 64
	const cycles = 5

	data := make([]float64, n)
	for i := range data {
		data[i] = math.Sin(2 * math.Pi * cycles * float64(i) / n)
	}

	ps := PowerSpectrum(data)

	if DominantBin(ps) != cycles {
		t.Errorf("expected peak at bin %d, got %d", cycles, DominantBin(ps))
	}

	// Pure tone of amplitude 1 over n samples peaks at n/2.
	if math.Abs(ps[cycles]-n/2) > 1e-9 {
		t.Errorf("expected magnitude %d, got %f", n/2, ps[cycles])
	}
}

func TestPowerSpectrumPadsOddLength(t *testing.T) {
	data := make([]float64, 60)
	for i := range data {
		data[i] = math.Sin(2 * math.Pi * 3 * float64(i) / 60)
	}

	ps := PowerSpectrum(data)
	if len(ps) != 32 {
		t.Errorf("expected 64-point FFT half-spectrum, got %d bins", len(ps))
	}
}

func TestPowerSpectrumEmpty(t *testing.T) {
	if ps := PowerSpectrum(nil); ps != nil {
		t.Errorf("expected nil for empty input, got %v", ps)
	}
}

func TestMeanSampleErrorLockedLoop(t *testing.T) {
	in := loop.Input{
		Duration:      1.0,
		FrameCount:    32,
		Radius:        10,
		Loops:         1,
		Inertia:       1.0,
		Stiffness:     4 * math.Pi * math.Pi,
		Fluidity:      1.0,
		WarmupPeriods: 10,
	}
	res := loop.NewGenerator().Generate(in)

	// Locked tracking leaves only the discretization lead of about w0·dt.
	if err := MeanSampleError(res); err > 0.05 {
		t.Errorf("expected near-zero mean error for locked loop, got %f", err)
	}
}

func TestWarmupResidualDecays(t *testing.T) {
	in := loop.DefaultInput()
	in.WarmupPeriods = 6

	if r := WarmupResidual(in); r > 1e-4 {
		t.Errorf("residual should be negligible after 6 warm-up periods, got %e", r)
	}

	if !Converged(in, 1e-4) {
		t.Error("expected convergence at 6 warm-up periods")
	}
}

func TestSampleErrorsLength(t *testing.T) {
	in := loop.DefaultInput()
	in.FrameCount = 24
	res := loop.NewGenerator().Generate(in)

	if errs := SampleErrors(res); len(errs) != 24 {
		t.Errorf("expected 24 errors, got %d", len(errs))
	}
}
