// Package oscil provides the torsional spring-damper primitives that drive
// loop generation.
//
// The model is a single rotational degree of freedom tracking a uniformly
// rotating reference phase:
//
//   - [State]: angle, angular velocity and elapsed time
//   - [Params]: inertia, stiffness, damping, reference velocity, softness
//   - [Oscillator]: advances the state with a semi-implicit Euler step
//   - [DampingForFluidity]: maps a normalized 0..1 "fluidity" knob onto a
//     physical damping coefficient scaled by critical damping
//
// # Determinism
//
// Stepping is a pure function of (state, dt, params). Two oscillators fed
// identical inputs produce bit-identical trajectories, which is what makes
// seamless loop extraction possible downstream.
package oscil
