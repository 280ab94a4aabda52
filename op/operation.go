package op

import (
	"github.com/katalvlaran/lasercore/cutcode"
	"github.com/katalvlaran/lasercore/geom"
)

// Well-known operation type strings. "place ..." and similar families
// are open-ended, so Type stays a plain string rather than a Go enum.
const (
	TypeCut     = "op cut"
	TypeEngrave = "op engrave"
	TypeRaster  = "op raster"
	TypeImage   = "op image"
	TypeDots    = "op dots"

	TypeUtilConsole = "util console"
	TypeUtilWait    = "util wait"
	TypeUtilHome    = "util home"
)

// Coolant selects the coolant state an op requests.
type Coolant int

const (
	CoolantOff Coolant = iota
	CoolantOn
	CoolantAuto
)

// PreprocessFunc runs an op's placements/geometry/word-list substitution
// hook. diag receives human-readable progress messages for the planner's
// diagnostic channel.
type PreprocessFunc func(o *Operation, deviceMatrix geom.Matrix, diag func(string))

// AsCutObjectsFunc lowers an op's geometry into scalar cuts, given the
// maximum gap still treated as a closed path and the pass count to stamp
// onto each produced cut.
type AsCutObjectsFunc func(o *Operation, closedDistance int, passes int) []cutcode.CutObject

// Operation is one node of the ops tree the planner's copy stage clones
// and preprocesses. Loops is a whole-op repetition distinct from Passes
// on the same op: the planner's ops-first Blob lowers an op into
// EffectiveLoops() consecutive CutCodes, and passes-first Blob does not
// repeat an op for its loops. No planner stage calls travel.ExpandLoops,
// and the optimizer does not keep an op's loop CutCodes together.
type Operation struct {
	Type     string
	Loops    int
	Passes   int
	Output   bool
	Coolant  Coolant
	Settings *cutcode.Settings
	Children []*Operation

	// Geometry is the node's flattened polyline in scene units, populated
	// by the upstream element layer for nodes that carry vector artwork
	// directly; nil for container and util ops. The planner's preprocess
	// stage may simplify it in place, and AsCutObjects hooks typically
	// lower from it.
	Geometry []geom.Point

	Preprocess   PreprocessFunc
	AsCutObjects AsCutObjectsFunc
}

// NewOperation constructs an Operation with Loops and Passes defaulted to
// 1 and Output true, matching the common case of a single-pass, spooled
// cut op.
func NewOperation(opType string) *Operation {
	return &Operation{Type: opType, Loops: 1, Passes: 1, Output: true}
}

// IsUtil reports whether this op is one of the "util ..." housekeeping
// types the merge predicate (package travel) never merges across.
func (o *Operation) IsUtil() bool {
	return len(o.Type) >= 5 && o.Type[:5] == "util "
}

// EffectiveLoops normalizes a non-positive or otherwise invalid Loops
// value to 1 rather than rejecting the op outright. Go's static typing
// already forbids non-integer loop counts; only the non-positive case
// can occur here.
func (o *Operation) EffectiveLoops() int {
	if o.Loops < 1 {
		return 1
	}
	return o.Loops
}

// Copy returns a clone of o and its children, sharing Settings by pointer
// (settings identity matters to the merge predicate) but owning
// independent Children and Geometry slices so the planner's copy and
// preprocess stages can mutate the clone without touching the caller's
// tree.
func (o *Operation) Copy() *Operation {
	clone := *o
	clone.Children = make([]*Operation, len(o.Children))
	for i, c := range o.Children {
		clone.Children[i] = c.Copy()
	}
	if o.Geometry != nil {
		clone.Geometry = make([]geom.Point, len(o.Geometry))
		copy(clone.Geometry, o.Geometry)
	}
	return &clone
}
