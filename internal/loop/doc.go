// Package loop turns oscillator dynamics into seamless animation loops.
//
// A [Generator] drives an [oscil.Oscillator] through a warm-up phase so
// transients from the initial conditions decay, then samples exactly one
// steady-state reference period into evenly spaced frames and appends a
// closing frame copied from the first sample. The closing copy makes the
// seam exact regardless of residual integration drift.
//
// Generation is a total function: degenerate inputs are floored or clamped,
// never rejected, so every call produces a displayable result.
package loop
