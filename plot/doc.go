// Package plot implements the integer pixel plotters that convert
// continuous cut geometry (lines, quadratic and cubic Béziers) into
// device-accurate step sequences.
//
// All plotters here are pure and deterministic: same inputs always produce
// the same output sequence, no I/O, no allocation beyond a small per-call
// buffer. Degenerate inputs (zero-length segments, coincident control
// points) never error; they simply yield a short or single-point sequence.
//
// The quadratic and cubic plotters follow Alois Zingl's "The Beauty of
// Bresenham's Algorithm": curves are split at horizontal/vertical gradient
// sign changes into monotone arcs, each stepped by second- (quadratic) or
// fifth-order (cubic) forward differences.
package plot
