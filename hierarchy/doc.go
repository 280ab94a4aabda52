// Package hierarchy organizes containment-analyzed groups into explicit
// nesting levels — level 0 the outermost groups, level 1 the groups one
// outer contains, and so on — and returns those levels innermost first
// (GetProcessingOrder), as an alternative to the travel optimizer's
// per-pick inner-first eligibility check (package travel).
//
// The package only builds the levels. It does not order cuts or run
// travel optimization itself, and nothing in this module feeds the levels
// to the travel optimizer one at a time, so no stage here restricts
// travel moves to a single level.
package hierarchy
