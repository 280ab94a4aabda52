package planner

import "github.com/katalvlaran/lasercore/travel"

// Options gathers the planner's configuration knobs in a
// "struct + DefaultOptions()" shape. Travel is the subset
// forwarded verbatim to package travel; the remaining fields are
// planner-only (preprocess, blob, and merge behavior).
type Options struct {
	// ReduceDetails gates the geometry-simplification pass in Preprocess.
	ReduceDetails bool
	// ReduceTolerance is the simplification tolerance, in scene units.
	ReduceTolerance float64

	// InnerTolerance is the slack (device units) the containment test
	// allows when deciding A-inside-B; see contain's tolerance convention
	// (positive loosens the outer boundary).
	InnerTolerance float64

	// ClosedDistance is the largest gap between a subpath's first and
	// last point still treated as a closed loop eligible for containment
	// analysis and inner-first ordering.
	ClosedDistance int

	// JogMinimum and RapidBetween are jog hints for the downstream
	// device. No planner stage reads them or copies them onto the
	// produced CutCode.
	JogMinimum   int
	RapidBetween bool

	// RasterOptimisation gates raster bucketing (package raster) before
	// op expansion in Preprocess.
	RasterOptimisation bool
	// RasterOptMargin is the bbox-expansion margin raster.Bucket uses.
	RasterOptMargin float64

	// EffectCombine is a hint forwarded to upstream effect combination;
	// the planner does not act on it directly.
	EffectCombine bool

	// RemoveOverlap and ReduceDirections are reserved no-op placeholders,
	// present so callers can set them without a compile error once a
	// future stage implements them; Preprocess/Blob ignore both today.
	RemoveOverlap    bool
	ReduceDirections bool

	// Travel is forwarded to every travel.Optimize/OptimizeJob call the
	// Preopt-enqueued thunks make.
	Travel travel.Options
}

// DefaultOptions returns the planner defaults: detail reduction, raster
// bucketing and effect combination off, a closed distance of 15, and
// travel.DefaultOptions() for the optimizer.
func DefaultOptions() Options {
	return Options{
		ReduceDetails:   false,
		ReduceTolerance: 0.1,

		InnerTolerance: 0,
		ClosedDistance: 15,

		JogMinimum:   0,
		RapidBetween: true,

		RasterOptimisation: false,
		RasterOptMargin:    10,

		EffectCombine: false,

		Travel: travel.DefaultOptions(),
	}
}
