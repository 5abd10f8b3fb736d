package metrics

import (
	"math"

	"github.com/san-kum/loopgen/internal/oscil"
)

// SettleTime reports the last step time at which the wrapped tracking error
// exceeded the threshold. Time resets between warm-up and sampling, so the
// value is relative to the current phase.
type SettleTime struct {
	name      string
	threshold float64
	last      float64
}

func NewSettleTime(threshold float64) *SettleTime {
	return &SettleTime{name: "settle_time", threshold: threshold}
}

func (m *SettleTime) Name() string { return m.name }

func (m *SettleTime) OnStep(s oscil.State, p oscil.Params) {
	phi := p.RefPhase + p.RefVelocity*s.Time
	if math.Abs(oscil.WrapPi(s.Angle-phi)) > m.threshold {
		m.last = s.Time
	}
}

func (m *SettleTime) Value() float64 { return m.last }

func (m *SettleTime) Reset() { m.last = 0 }
