package analysis

import (
	"math"

	"github.com/san-kum/loopgen/internal/loop"
)

// WarmupResidual generates the loop twice, once with the requested warm-up
// and once with double, and returns how far the first sample's angle moved.
// A small residual means the transient has decayed and the sampled period
// is the steady-state limit cycle.
func WarmupResidual(in loop.Input) float64 {
	a := loop.NewGenerator().Generate(in)

	doubled := in
	doubled.WarmupPeriods = in.WarmupPeriods * 2
	if doubled.WarmupPeriods == 0 {
		doubled.WarmupPeriods = 1
	}
	b := loop.NewGenerator().Generate(doubled)

	return math.Abs(a.Samples[0].Angle - b.Samples[0].Angle)
}

// Converged reports whether the warm-up residual is within tol.
func Converged(in loop.Input, tol float64) bool {
	return WarmupResidual(in) <= tol
}
