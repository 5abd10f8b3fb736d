package metrics

import (
	"math"

	"github.com/san-kum/loopgen/internal/oscil"
)

// Metric accumulates a scalar over integration steps. Metrics attach to a
// Generator as step observers.
type Metric interface {
	oscil.Observer
	Name() string
	Value() float64
	Reset()
}

// TrackingError reports the mean absolute wrapped error between the
// oscillator angle and the reference phase.
type TrackingError struct {
	name    string
	total   float64
	samples int
}

func NewTrackingError() *TrackingError {
	return &TrackingError{name: "tracking_error"}
}

func (m *TrackingError) Name() string { return m.name }

func (m *TrackingError) OnStep(s oscil.State, p oscil.Params) {
	phi := p.RefPhase + p.RefVelocity*s.Time
	m.total += math.Abs(oscil.WrapPi(s.Angle - phi))
	m.samples++
}

func (m *TrackingError) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.total / float64(m.samples)
}

func (m *TrackingError) Reset() {
	m.total = 0
	m.samples = 0
}
