package loop

import "github.com/san-kum/loopgen/internal/oscil"

// Defaults mirror the values the CLI and HTTP layers expose.
const (
	DefaultDuration  = 2.0
	DefaultFrames    = 60
	DefaultRadius    = 100.0
	DefaultInertia   = 1.0
	DefaultStiffness = 20.0
	DefaultFluidity  = 0.5
	DefaultSoftness  = 0.2
	DefaultWarmup    = 3.0
)

// Input is the caller-supplied description of one loop. All numeric fields
// are SI-like units (seconds, radians, length units). Out-of-range values
// are clamped by Resolve, never rejected.
type Input struct {
	Duration      float64 // period length in seconds, floored to 1e-6
	FrameCount    int     // samples per period, floored to 3
	Radius        float64 // path radius
	CenterX       float64
	CenterY       float64
	Phase0        float64 // initial reference phase in radians
	Loops         int     // reference turns per period, floored to 1
	Inertia       float64 // floored to 1e-9
	Stiffness     float64 // floored to 1e-9
	Fluidity      float64 // clamped to [0,1]
	Softness      float64 // clamped to [0,1]
	WarmupPeriods float64 // clamped to >= 0
}

// DefaultInput returns an Input with the stock parameters.
func DefaultInput() Input {
	return Input{
		Duration:      DefaultDuration,
		FrameCount:    DefaultFrames,
		Radius:        DefaultRadius,
		Loops:         1,
		Inertia:       DefaultInertia,
		Stiffness:     DefaultStiffness,
		Fluidity:      DefaultFluidity,
		Softness:      DefaultSoftness,
		WarmupPeriods: DefaultWarmup,
	}
}

// Frame is one sample of the loop. Immutable once recorded.
type Frame struct {
	Index        int     `json:"index"`
	T            float64 `json:"t"` // seconds since period start
	Angle        float64 `json:"theta"`
	X            float64 `json:"x"`
	Y            float64 `json:"y"`
	Orientation  float64 `json:"orientation"`  // heading chasing the tangent
	ScaleTangent float64 `json:"scaleTangent"` // squash & stretch along travel
	ScaleNormal  float64 `json:"scaleNormal"`
}

// Result is one generated loop.
//
// LoopFrames holds Samples plus a closing frame at T = Period whose angle
// and position are copied verbatim from Samples[0], so
// LoopFrames[len-1] == LoopFrames[0] at the seam exactly.
type Result struct {
	Samples    []Frame
	LoopFrames []Frame
	Params     oscil.Params
	Period     float64
}
