package planner

import (
	"github.com/katalvlaran/lasercore/geom"
	"github.com/katalvlaran/lasercore/op"
	"github.com/katalvlaran/lasercore/wordlist"
)

// CutPlan owns the mutable pipeline buffer and drives it through the
// pipeline stages in order. The zero value is not ready to use;
// construct with NewCutPlan.
type CutPlan struct {
	Name string

	Options Options

	Plan          []PlanItem
	Commands      []Thunk
	SpoolCommands []Thunk

	previousBounds geom.BBox
	Outline        []geom.Point

	WordList *wordlist.WordList

	// Diag receives human-readable progress messages for the host's
	// "optimize" diagnostic channel. A nil Diag silently drops
	// messages; callers that want them wired up assign a func before
	// calling any stage.
	Diag func(message string)

	roots []*op.Operation
}

// NewCutPlan constructs an empty CutPlan over roots (the operation trees
// to copy from) with the given Options.
func NewCutPlan(name string, roots []*op.Operation, opts Options) *CutPlan {
	return &CutPlan{
		Name:     name,
		Options:  opts,
		WordList: wordlist.New(),
		roots:    roots,
	}
}

func (p *CutPlan) log(msg string) {
	if p.Diag != nil {
		p.Diag(msg)
	}
}

// Clear empties Plan, Commands, and SpoolCommands, ready for a fresh job
// over the same CutPlan: cutcode is destroyed between jobs, the planner
// itself is reusable.
func (p *CutPlan) Clear() {
	p.Plan = nil
	p.Commands = nil
	p.SpoolCommands = nil
	p.previousBounds = geom.EmptyBBox()
	p.Outline = nil
}

// Copy populates Plan with one PlanItem per selected root operation, deep
// copied so later stages never mutate the caller's tree. selected, when
// non-nil, restricts the copy to that subset ("copy-selected" mode); a
// nil selected copies every root.
func (p *CutPlan) Copy(selected []*op.Operation) error {
	roots := p.roots
	if selected != nil {
		roots = selected
	}
	p.Plan = make([]PlanItem, 0, len(roots))
	for _, root := range roots {
		if root == nil {
			return ErrNilOperation
		}
		p.Plan = append(p.Plan, opItem(root.Copy()))
	}
	return nil
}

// Execute drains Commands until empty, absorbing any thunk appended by a
// thunk it has already run in the same call: newly appended commands
// are absorbed in the same drain.
func (p *CutPlan) Execute() error {
	return p.runQueue(func() []Thunk { return p.Commands }, func(q []Thunk) { p.Commands = q })
}

// Final drains SpoolCommands the same way, immediately before handoff to
// the spooler.
func (p *CutPlan) Final() error {
	return p.runQueue(func() []Thunk { return p.SpoolCommands }, func(q []Thunk) { p.SpoolCommands = q })
}

func (p *CutPlan) runQueue(get func() []Thunk, set func([]Thunk)) error {
	for {
		q := get()
		if len(q) == 0 {
			return nil
		}
		next := q[0]
		set(q[1:])
		if err := next.Run(p); err != nil {
			return err
		}
	}
}

// opItems returns every PlanItem in Plan that still carries an
// un-blobbed Operation, in order.
func (p *CutPlan) opItems() []*op.Operation {
	out := make([]*op.Operation, 0, len(p.Plan))
	for _, item := range p.Plan {
		if item.Op != nil {
			out = append(out, item.Op)
		}
	}
	return out
}
