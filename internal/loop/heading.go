package loop

import (
	"math"

	"github.com/san-kum/loopgen/internal/oscil"
)

// headingTracker is a second-order system chasing the travel tangent
// (angle + π/2). Higher inertia lowers its natural frequency, so heavy
// objects turn into corners late and the lag reads as weight.
type headingTracker struct {
	psi  float64
	psiD float64
	wn   float64
	zeta float64
}

func newHeadingTracker(in Input, p oscil.Params, dt float64) *headingTracker {
	w0 := math.Abs(p.RefVelocity)
	wn := oscil.Clamp(2*w0/(1+in.Inertia), 0.15*w0, 4*w0)
	// Keep wn·dt inside the integrator's stable region.
	wn = math.Min(wn, 1/dt)
	return &headingTracker{
		wn:   wn,
		zeta: oscil.DampingRatio(in.Fluidity),
	}
}

func (h *headingTracker) reset(angle, velocity float64) {
	h.psi = angle + math.Pi/2
	h.psiD = velocity
}

func (h *headingTracker) step(s oscil.State, dt float64) {
	target := s.Angle + math.Pi/2
	acc := h.wn*h.wn*(target-h.psi) + 2*h.zeta*h.wn*(s.Velocity-h.psiD)
	h.psiD += acc * dt
	h.psi += h.psiD * dt
}
