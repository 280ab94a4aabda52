// Package geom provides the scalar geometry primitives shared by the
// cut-planning core: a 2-D Point with the arithmetic and sampling helpers
// the planner and containment analyzer need, and a 3x3 affine Matrix used
// to carry scene coordinates into device space.
//
// Design goals, in the same spirit as lvlath's own numeric packages:
//
//   - Deterministic: no hidden global state, no time- or RNG-based behavior.
//   - Allocation-conscious: value receivers where cheap, slices preallocated
//     by callers.
//   - Defensive but silent: degenerate geometry (zero-length segments,
//     singular matrices) never panics; callers get a well-defined zero
//     value or an explicit ok/error signal.
package geom
