package oscil

import "math"

// Damping ratio range covered by the fluidity knob. ζ < 1 is underdamped
// (bouncy), ζ > 1 overdamped (syrupy).
const (
	MinDampingRatio = 0.1
	MaxDampingRatio = 2.0
)

// DampingForFluidity converts a normalized fluidity in [0,1] into a physical
// damping coefficient. The ratio is interpolated linearly over
// [MinDampingRatio, MaxDampingRatio] and scaled by critical damping
// 2·sqrt(k·I), so the knob feels the same regardless of stiffness and
// inertia magnitude.
//
// Inputs are floored/clamped rather than rejected; the result is always
// finite and non-negative for finite inputs.
func DampingForFluidity(stiffness, inertia, fluidity float64) float64 {
	fluidity = Clamp(fluidity, 0, 1)
	zeta := MinDampingRatio + (MaxDampingRatio-MinDampingRatio)*fluidity
	critical := 2 * math.Sqrt(math.Max(stiffness, Epsilon)*math.Max(inertia, Epsilon))
	return zeta * critical
}

// DampingRatio reports the ζ a fluidity value maps to, without the critical
// damping scale. Exposed for display layers.
func DampingRatio(fluidity float64) float64 {
	return MinDampingRatio + (MaxDampingRatio-MinDampingRatio)*Clamp(fluidity, 0, 1)
}
