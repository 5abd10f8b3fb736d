package loop

import (
	"math"

	"github.com/san-kum/loopgen/internal/oscil"
)

const (
	// Integration never runs coarser than 240 Hz, and each output frame is
	// resolved by at least stepsPerFrame integration steps.
	maxStepRate   = 240.0
	stepsPerFrame = 8

	timeTol = 1e-9
)

// Resolve clamps an Input into its valid range and derives the physical
// parameters for the run. It never fails; see the package doc on degenerate
// inputs.
func Resolve(in Input) (Input, oscil.Params) {
	if in.Duration <= 0 {
		in.Duration = 1e-6
	}
	if in.FrameCount < 3 {
		in.FrameCount = 3
	}
	if in.Loops < 1 {
		in.Loops = 1
	}
	in.Inertia = math.Max(in.Inertia, oscil.Epsilon)
	in.Stiffness = math.Max(in.Stiffness, oscil.Epsilon)
	in.Fluidity = oscil.Clamp(in.Fluidity, 0, 1)
	in.Softness = oscil.Clamp(in.Softness, 0, 1)
	in.WarmupPeriods = math.Max(in.WarmupPeriods, 0)

	w0 := 2 * math.Pi * float64(in.Loops) / in.Duration
	p := oscil.Params{
		Inertia:     in.Inertia,
		Stiffness:   in.Stiffness,
		Damping:     oscil.DampingForFluidity(in.Stiffness, in.Inertia, in.Fluidity),
		RefVelocity: w0,
		RefPhase:    in.Phase0,
		Softness:    in.Softness,
	}
	return in, p
}

// Generator produces seamless loops. A zero-value Generator is usable;
// observers attach to every oscillator it creates.
type Generator struct {
	observers []oscil.Observer
}

func NewGenerator() *Generator { return &Generator{} }

func (g *Generator) AddObserver(o oscil.Observer) {
	g.observers = append(g.observers, o)
}

// Generate runs warm-up and sampling and assembles the frame list. It is
// synchronous and runs to completion; the step count is bounded by
// (warmupPeriods+1)·duration/dt.
func (g *Generator) Generate(in Input) Result {
	in, params := Resolve(in)

	osc := oscil.New(params)
	for _, o := range g.observers {
		osc.AddObserver(o)
	}

	dt := math.Min(1.0/maxStepRate, in.Duration/float64(in.FrameCount*stepsPerFrame))

	heading := newHeadingTracker(in, params, dt)
	heading.reset(in.Phase0, 0)

	// Warm-up: let transients from the initial conditions decay so the
	// sampled period reflects the steady-state limit cycle. The final
	// partial step is capped at the remaining warm-up time.
	osc.Reset(in.Phase0, 0)
	warmup := in.Duration * in.WarmupPeriods
	for osc.State().Time < warmup-timeTol {
		step := math.Min(dt, warmup-osc.State().Time)
		osc.Step(step)
		heading.step(osc.State(), step)
	}

	// Keep angle/velocity but restart the clock, so the sampling window's
	// phase origin is independent of how long the warm-up ran.
	s := osc.State()
	osc.Reset(s.Angle, s.Velocity)

	samples := make([]Frame, 0, in.FrameCount)
	for i := 0; i < in.FrameCount; i++ {
		target := float64(i) / float64(in.FrameCount) * in.Duration
		for osc.State().Time < target-timeTol {
			step := math.Min(dt, target-osc.State().Time)
			osc.Step(step)
			heading.step(osc.State(), step)
		}
		// The frame carries the canonical evenly spaced timestamp, not the
		// accumulated integrator time.
		samples = append(samples, makeFrame(i, target, osc.State(), heading.psi, in, params))
	}

	// Seam closure: the final frame copies the first sample verbatim, so
	// the loop boundary matches exactly no matter what the integrator
	// drifted by over the period.
	closing := samples[0]
	closing.Index = in.FrameCount
	closing.T = in.Duration

	loopFrames := make([]Frame, 0, in.FrameCount+1)
	loopFrames = append(loopFrames, samples...)
	loopFrames = append(loopFrames, closing)

	return Result{
		Samples:    samples,
		LoopFrames: loopFrames,
		Params:     params,
		Period:     in.Duration,
	}
}

// makeFrame projects the oscillator's own angle (not the reference phase)
// onto the circle, so elastic lag and overshoot stay visible in the path.
func makeFrame(index int, t float64, s oscil.State, psi float64, in Input, p oscil.Params) Frame {
	v := math.Abs(in.Radius * s.Velocity)
	vMean := math.Abs(in.Radius*p.RefVelocity) + 1e-8
	normSpeed := oscil.Clamp((v-vMean)/vMean, -1, 1)
	stretch := oscil.Clamp(0.6*in.Softness*normSpeed, -0.9, 1.5)
	scaleT := oscil.Clamp(1+stretch, 0.4, 2.5)

	return Frame{
		Index:        index,
		T:            t,
		Angle:        s.Angle,
		X:            in.CenterX + in.Radius*math.Cos(s.Angle),
		Y:            in.CenterY + in.Radius*math.Sin(s.Angle),
		Orientation:  psi,
		ScaleTangent: scaleT,
		ScaleNormal:  oscil.Clamp(1/scaleT, 0.4, 2.5),
	}
}
