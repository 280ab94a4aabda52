// Package travel implements the cut-ordering optimizer: nearest-neighbor
// greedy construction tiered by candidate count, spatial-grid and k-d tree
// acceleration for larger datasets, 2-opt local-search refinement, the
// inner-first/grouped-inner candidate policy, loop-chain expansion,
// hatch/skip extraction, and the cross-op merge predicate.
//
// The optimizer never permanently suppresses a scalar cut: every exported
// entry point that consumes a CutGroup returns every one of its unburned
// descendants once per remaining pass, in some order, even under a stalled or
// degenerate candidate policy. Regression tests enforce the flattened
// count invariant directly.
package travel
