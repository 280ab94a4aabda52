package planner

import (
	"github.com/katalvlaran/lasercore/cutcode"
	"github.com/katalvlaran/lasercore/geom"
	"github.com/katalvlaran/lasercore/op"
)

// ConsoleOp is a spoolable console command with no geometry of its own —
// coolant toggles, util-wait, util-home, and similar housekeeping the
// blob stage passes through rather than lowering into cutcode.
type ConsoleOp struct {
	Command string
}

// PlanItem is one element of CutPlan.Plan. Exactly one field is set: Op
// for an operation not lowered into cutcode (every op before Blob runs,
// and ops with no AsCutObjects hook after it), Cut for a blobbed CutCode,
// and Console for a console command (Preprocess already emits the coolant
// toggles, Blob adds the util ops).
// A tagged struct (rather than an interface) keeps the zero value useful
// and lets Blob switch on which field is populated without a type
// assertion.
type PlanItem struct {
	Op      *op.Operation
	Cut     *cutcode.CutCode
	Console *ConsoleOp
}

func opItem(o *op.Operation) PlanItem { return PlanItem{Op: o} }
func cutItem(c *cutcode.CutCode) PlanItem { return PlanItem{Cut: c} }
func consoleItem(cmd string) PlanItem { return PlanItem{Console: &ConsoleOp{Command: cmd}} }

// Placement is one device-space matrix a placement op resolves to; a
// single operation tree may be preprocessed once per placement (e.g. an
// array-copy job burns the same artwork at several device offsets).
type Placement struct {
	Matrix geom.Matrix
}

// Thunk is one unit of deferred work queued on CutPlan.Commands or
// SpoolCommands. It may itself enqueue further thunks onto plan's queues;
// the drain loop (runQueue) absorbs those in the same pass. Name
// identifies which optimizer stage this is (e.g. "optimize_travel",
// "optimize_cuts") so a caller — or a test asserting the priority
// hierarchy — can inspect a still-queued Commands
// slice without running it.
type Thunk struct {
	Name string
	Run  func(plan *CutPlan) error
}
