// Package planner implements CutPlan, the pipeline that turns a tree of
// operations (package op) into an ordered sequence of spoolable CutCode,
// ConsoleOp, and other plan items ready for the device spooler.
//
// The pipeline runs through named stages — Copy, Preprocess, Blob, Merge,
// Preopt, Execute, Final — each a public method on CutPlan with no I/O of
// its own. Preopt inspects the configured Options and enqueues optimizer
// thunks onto Commands; Execute (validate/execute in one step) drains that
// queue, so the thunk closures decide which optimizer runs, not CutPlan
// itself. Final drains SpoolCommands the same way immediately before
// handoff to the device spooler.
package planner
