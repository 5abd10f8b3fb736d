package oscil

import "math"

// Epsilon floors divisors and square-root arguments so degenerate inputs
// produce bounded output instead of NaN/Inf.
const Epsilon = 1e-9

// State is the instantaneous condition of the oscillator.
type State struct {
	Angle    float64 // radians
	Velocity float64 // radians/sec
	Time     float64 // seconds since phase start
}

// Params are the physical coefficients of one generation run. They are
// immutable for the duration of the run.
type Params struct {
	Inertia     float64 // I > 0 (floored internally)
	Stiffness   float64 // k > 0 (floored internally)
	Damping     float64 // c >= 0
	RefVelocity float64 // w0, reference angular velocity
	RefPhase    float64 // phase of the reference at Time = 0
	Softness    float64 // velocity-dependent stiffness reduction, >= 0
}

// Observer receives the state after every integration step.
type Observer interface {
	OnStep(s State, p Params)
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// WrapPi wraps an angle to [-π, π]. Keeping the tracking error wrapped
// prevents torque sign flips from multi-turn unwrapped error.
func WrapPi(a float64) float64 {
	a = math.Mod(a+math.Pi, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}
