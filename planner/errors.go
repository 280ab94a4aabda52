package planner

import "errors"

// Sentinel errors. Impossible-configuration guards are the only
// errors the planner raises; every other degeneracy is absorbed locally
// (empty iterators, skipped merges, clamped loop counts).
var (
	// ErrNoPlacementResolved names the case of placement ops that yield
	// no usable device-space matrix. Preprocess does not return it: it
	// takes already-resolved placement matrices and substitutes the
	// identity when the list is empty.
	ErrNoPlacementResolved = errors.New("planner: no placement resolved to a device matrix")

	// ErrNilOperation is returned by Copy if asked to copy a nil root.
	ErrNilOperation = errors.New("planner: nil operation")
)
