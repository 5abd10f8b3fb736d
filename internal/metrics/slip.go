package metrics

import (
	"math"

	"github.com/san-kum/loopgen/internal/oscil"
)

// PeakSlip reports the maximum relative angular velocity seen during a run.
// Large slip means the softening term was doing real work.
type PeakSlip struct {
	name string
	max  float64
}

func NewPeakSlip() *PeakSlip {
	return &PeakSlip{name: "peak_slip"}
}

func (m *PeakSlip) Name() string { return m.name }

func (m *PeakSlip) OnStep(s oscil.State, p oscil.Params) {
	slip := math.Abs(s.Velocity - p.RefVelocity)
	if slip > m.max {
		m.max = slip
	}
}

func (m *PeakSlip) Value() float64 { return m.max }

func (m *PeakSlip) Reset() { m.max = 0 }
