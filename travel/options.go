package travel

import "errors"

// Sentinel errors. Kept minimal and sentinel-only, matching house style:
// validation failures are signaled, never panicked.
var (
	// ErrEmptyCandidates names the empty-input condition. No function in
	// this package returns it: Optimize and OptimizeJob return an empty
	// sequence for empty input.
	ErrEmptyCandidates = errors.New("travel: no candidates to optimize")
)

// Default dataset-size thresholds for the optimizer tiers.
const (
	// SimpleGreedyMax is the nominal bound of the simple greedy tier.
	// selectNext does not read it: below ImprovedGreedyMax the simple and
	// improved tiers share one linear scan, and the continuation
	// preference applies on every tier.
	SimpleGreedyMax = 50

	// ImprovedGreedyMax is the candidate count at which the spatial tier
	// takes over from the linear greedy scan.
	ImprovedGreedyMax = 100

	// SpatialMax is the candidate count at which selection falls back from
	// the spatial-grid (optionally k-d tree accelerated) tier to the legacy
	// linear NN scan.
	SpatialMax = 500

	// DefaultTwoOptMaxPasses bounds 2-opt refinement passes.
	DefaultTwoOptMaxPasses = 50

	// DefaultTwoOptEps is the minimal strictly-better improvement 2-opt
	// requires to accept a move.
	DefaultTwoOptEps = 1e-10

	// DefaultKDTreeMinN is the candidate count at which the spatial tier
	// additionally builds a k-d tree rather than relying on grid buckets
	// alone.
	DefaultKDTreeMinN = 150

	// DefaultGridCellSize sizes the spatial partition's buckets; tuned to
	// roughly the average nearest-neighbor spacing of a typical job, so
	// most queries only need to inspect one or two neighboring cells.
	DefaultGridCellSize = 50.0
)

// Options configures every tier of the optimizer. Zero value is not
// meaningful; use DefaultOptions() and override fields as needed.
type Options struct {
	// ReduceTravel gates the whole NN/spatial travel optimizer.
	ReduceTravel bool
	// NearestNeighbor enables greedy NN construction.
	NearestNeighbor bool
	// TwoOpt enables the 2-opt refinement pass. Disallowed together with
	// InnerFirst; callers must not set both.
	TwoOpt bool
	// InnerFirst constrains candidate selection to respect the
	// containment DAG (never burn an outer before its inner contents).
	InnerFirst bool
	// CompleteSubpaths gates the complete_path candidate-generator policy
	// of the candidate generator: an open subgroup whose original op is not
	// "op cut"/"op engrave" contributes only its first and last scalar
	// cut as candidates, rather than every scalar in between, reducing
	// direction changes on engrave-like passes. The unconditional
	// travel-continuation preference (selectNext in
	// greedy.go) is a distinct mechanism and is not gated by this flag.
	CompleteSubpaths bool
	// GroupedInner treats each top-level piece's full inner-then-outer
	// chain as a unit, rather than interleaving inners across pieces.
	GroupedInner bool
	// HatchOptimize extracts skip-marked groups and optimizes them
	// separately, appended after the non-skip candidates.
	HatchOptimize bool
	// MergeOps allows cutcodes from different ops to merge.
	MergeOps bool
	// MergePasses allows cutcodes at different pass indices to merge.
	MergePasses bool

	SimpleGreedyMax   int
	ImprovedGreedyMax int
	SpatialMax        int

	TwoOptMaxPasses int
	TwoOptEps       float64

	KDTreeMinN   int
	GridCellSize float64
}

// DefaultOptions returns an Options with every optimization enabled and
// the default tier thresholds.
func DefaultOptions() Options {
	return Options{
		ReduceTravel:     true,
		NearestNeighbor:  true,
		TwoOpt:           false, // mutually exclusive with InnerFirst by default
		InnerFirst:       true,
		CompleteSubpaths: true,
		GroupedInner:     true,
		HatchOptimize:    true,
		MergeOps:         false,
		MergePasses:      false,

		SimpleGreedyMax:   SimpleGreedyMax,
		ImprovedGreedyMax: ImprovedGreedyMax,
		SpatialMax:        SpatialMax,

		TwoOptMaxPasses: DefaultTwoOptMaxPasses,
		TwoOptEps:       DefaultTwoOptEps,

		KDTreeMinN:   DefaultKDTreeMinN,
		GridCellSize: DefaultGridCellSize,
	}
}
