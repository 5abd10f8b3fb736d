package oscil

import "math"

// Oscillator integrates a torsional spring-damper tracking a rotating
// reference. It owns its State; callers mutate it only through Step and
// Reset.
type Oscillator struct {
	state     State
	params    Params
	observers []Observer
}

func New(p Params) *Oscillator {
	return &Oscillator{params: p}
}

func (o *Oscillator) State() State   { return o.state }
func (o *Oscillator) Params() Params { return o.params }

// AddObserver registers a per-step hook (metrics, live views).
func (o *Oscillator) AddObserver(obs Observer) {
	o.observers = append(o.observers, obs)
}

// Reset replaces angle and velocity and zeroes elapsed time. Used between
// the warm-up and sampling phases so the sampling window's phase origin is
// independent of warm-up duration.
func (o *Oscillator) Reset(angle, velocity float64) {
	o.state = State{Angle: angle, Velocity: velocity}
}

// Step advances the state by dt using semi-implicit (symplectic) Euler.
//
// The velocity update uses the acceleration at the current state, and the
// angle update uses the already-updated velocity. That ordering is what
// keeps the scheme stable at step sizes where explicit Euler diverges.
func (o *Oscillator) Step(dt float64) State {
	p := o.params
	s := &o.state

	s.Time += dt
	phi := p.RefPhase + p.RefVelocity*s.Time

	err := WrapPi(s.Angle - phi)
	relVel := s.Velocity - p.RefVelocity

	// The faster the oscillator slips relative to the reference, the more
	// compliant the spring becomes.
	kEff := p.Stiffness / (1 + p.Softness*math.Abs(relVel))

	torque := -kEff*err - p.Damping*relVel
	acc := torque / math.Max(p.Inertia, Epsilon)

	s.Velocity += acc * dt
	s.Angle += s.Velocity * dt

	for _, obs := range o.observers {
		obs.OnStep(*s, p)
	}
	return *s
}
