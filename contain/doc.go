// Package contain implements the scan-beam / vector-monotonizer
// containment analyzer: deciding whether one closed CutGroup lies wholly
// inside another, and building the inside/contains DAG the travel
// optimizer's inner-first ordering depends on.
//
// The analyzer never raises an uncertain result: ambiguous or degenerate
// input simply returns false, the conservative answer.
package contain
