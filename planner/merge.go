package planner

import (
	"github.com/katalvlaran/lasercore/cutcode"
	"github.com/katalvlaran/lasercore/travel"
)

// cutcodeAccumulator wraps the CutCode currently absorbing merges so
// Merge's loop doesn't need to special-case "first item since flush".
type cutcodeAccumulator struct {
	cc *cutcode.CutCode
}

func (a *cutcodeAccumulator) absorb(next *cutcode.CutCode) {
	if next.Constrained {
		a.cc.Constrained = true
	}
	for _, child := range next.Children {
		a.cc.Append(child)
	}
}

// Merge walks Plan in order and concatenates
// adjacent CutCode items whenever travel.ShouldMerge allows it. A
// console or still-unblobbed op item breaks the run — merging never
// bridges across housekeeping or irregular content, matching
// ShouldMerge's own non-util-op requirement one level up.
func (p *CutPlan) Merge() error {
	out := make([]PlanItem, 0, len(p.Plan))
	var acc *cutcodeAccumulator

	flush := func() {
		if acc != nil {
			out = append(out, cutItem(acc.cc))
			acc = nil
		}
	}

	for _, item := range p.Plan {
		if item.Cut == nil {
			flush()
			out = append(out, item)
			continue
		}
		if acc == nil {
			acc = &cutcodeAccumulator{cc: item.Cut}
			continue
		}
		if travel.ShouldMerge(acc.cc, item.Cut, p.Options.Travel) {
			acc.absorb(item.Cut)
			continue
		}
		flush()
		acc = &cutcodeAccumulator{cc: item.Cut}
	}
	flush()

	p.Plan = out
	return nil
}
