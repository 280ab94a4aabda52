package planner

import (
	"github.com/katalvlaran/lasercore/cutcode"
	"github.com/katalvlaran/lasercore/op"
)

// Blob lowers every op currently in Plan into CutCode. Util ops pass
// through as ConsoleOp items; ops with no
// AsCutObjects hook ("irregulars") pass through untouched. Everything
// else is grouped by the merge-ops/merge-passes configuration:
//
//   - merge-ops && !merge-passes ("passes first"): the outer loop is the
//     pass index, the inner loop is ops; each op contributes at most one
//     CutCode per pass it still has remaining, stamped with that pass as
//     its PassIndex.
//   - otherwise ("ops first"): each op contributes EffectiveLoops()
//     consecutive CutCodes, each carrying the op's full Passes.
func (p *CutPlan) Blob() {
	items := p.opItems()
	passesFirst := p.Options.Travel.MergeOps && !p.Options.Travel.MergePasses

	if passesFirst {
		p.Plan = p.blobPassesFirst(items)
	} else {
		p.Plan = p.blobOpsFirst(items)
	}
}

func (p *CutPlan) blobOpsFirst(items []*op.Operation) []PlanItem {
	out := make([]PlanItem, 0, len(items))
	for _, o := range items {
		switch {
		case o.IsUtil():
			out = append(out, consoleItem(o.Type))
		case o.AsCutObjects == nil:
			out = append(out, opItem(o))
		default:
			for l, n := 0, o.EffectiveLoops(); l < n; l++ {
				out = append(out, cutItem(p.blobOne(o, o.Passes, -1)))
			}
		}
	}
	return out
}

func (p *CutPlan) blobPassesFirst(items []*op.Operation) []PlanItem {
	maxPasses := 0
	for _, o := range items {
		if o.Passes > maxPasses {
			maxPasses = o.Passes
		}
	}

	out := make([]PlanItem, 0, len(items)*maxPasses)
	for passIdx := 0; passIdx < maxPasses; passIdx++ {
		for _, o := range items {
			switch {
			case o.IsUtil():
				if passIdx == 0 {
					out = append(out, consoleItem(o.Type))
				}
			case o.AsCutObjects == nil:
				if passIdx == 0 {
					out = append(out, opItem(o))
				}
			case o.Passes > passIdx:
				out = append(out, cutItem(p.blobOne(o, 1, passIdx)))
			}
		}
	}
	return out
}

// blobOne lowers one op's geometry into a single CutCode. forceIdx, when
// >= 0, stamps PassIndex to that value (passes-first mode); otherwise
// PassIndex stays at its -1 default (ops-first mode has no single pass
// index to stamp, since the CutCode carries every pass at once).
func (p *CutPlan) blobOne(o *op.Operation, passes, forceIdx int) *cutcode.CutCode {
	cc := cutcode.NewCutCode(passes)
	cc.SetOriginalOp(o.Type)
	cc.SetSettings(o.Settings)
	cc.Output = o.Output
	cc.Constrained = o.Type == op.TypeCut && p.Options.Travel.InnerFirst
	if forceIdx >= 0 {
		cc.SetPassIndex(forceIdx)
	}

	for _, obj := range o.AsCutObjects(o, p.Options.ClosedDistance, passes) {
		cc.Append(obj)
	}

	// A cutcode whose children loop back to their starting point (within
	// the closed-distance gap) is a closed path, eligible to act as an
	// outer container during inner-first identification.
	if len(cc.Children) > 0 {
		gap := cc.CutGroup.Start().Distance(cc.CutGroup.End())
		if gap <= float64(p.Options.ClosedDistance) {
			cc.SetClosed(true)
		}
	}
	return cc
}

// cutItems returns every CutCode currently in Plan, in order.
func (p *CutPlan) cutItems() []*cutcode.CutCode {
	out := make([]*cutcode.CutCode, 0, len(p.Plan))
	for _, item := range p.Plan {
		if item.Cut != nil {
			out = append(out, item.Cut)
		}
	}
	return out
}

func (p *CutPlan) replaceCutItems(cuts []*cutcode.CutCode) {
	out := make([]PlanItem, 0, len(p.Plan))
	idx := 0
	for _, item := range p.Plan {
		if item.Cut == nil {
			out = append(out, item)
			continue
		}
		if idx < len(cuts) {
			out = append(out, cutItem(cuts[idx]))
			idx++
		}
	}
	for ; idx < len(cuts); idx++ {
		out = append(out, cutItem(cuts[idx]))
	}
	p.Plan = out
}
