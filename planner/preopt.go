package planner

import (
	"github.com/katalvlaran/lasercore/contain"
	"github.com/katalvlaran/lasercore/cutcode"
	"github.com/katalvlaran/lasercore/geom"
	"github.com/katalvlaran/lasercore/travel"
)

// Preopt inspects Options.Travel and enqueues the optimizer thunk(s)
// this job needs. An empty cutcode plan enqueues nothing. Priority:
// reduce-travel +
// nearest-neighbor wins over inner-first if both are set (scenario 6),
// inner-first alone wins over the critical basic-sequencing fallback, and
// merge_cutcode is always enqueued last regardless of which branch ran.
func (p *CutPlan) Preopt() error {
	if len(p.cutItems()) == 0 {
		return nil
	}

	t := p.Options.Travel
	switch {
	case t.ReduceTravel && t.NearestNeighbor:
		p.Commands = append(p.Commands, Thunk{Name: "optimize_travel", Run: optimizeTravelThunk})
		if t.TwoOpt && !t.InnerFirst {
			p.Commands = append(p.Commands, Thunk{Name: "optimize_travel_2opt", Run: optimizeTravel2optThunk})
		}
	case t.InnerFirst:
		p.Commands = append(p.Commands, Thunk{Name: "optimize_cuts", Run: optimizeCutsThunk})
	default:
		// Critical fallback: guarantees burns_done
		// advances even with every optimization flag off, preventing the
		// historical infinite-loop bug.
		p.Commands = append(p.Commands, Thunk{Name: "basic_cutcode_sequencing", Run: basicCutcodeSequencingThunk})
	}
	p.Commands = append(p.Commands, Thunk{Name: "merge_cutcode", Run: mergeCutcodeThunk})
	return nil
}

func toGroups(ccs []*cutcode.CutCode) []*cutcode.CutGroup {
	out := make([]*cutcode.CutGroup, len(ccs))
	for i, cc := range ccs {
		out[i] = &cc.CutGroup
	}
	return out
}

func wrapOrdered(cuts []cutcode.CutObject) *cutcode.CutCode {
	cc := cutcode.NewCutCode(1)
	cc.Output = true
	for _, c := range cuts {
		cc.Append(c)
	}
	return cc
}

// startPosition is the optimizer's seed position: context.start if one
// has been recorded (StartOverride on the first CutCode), otherwise the
// origin.
func (p *CutPlan) startPosition() geom.Point {
	ccs := p.cutItems()
	if len(ccs) > 0 && ccs[0].StartOverride != nil {
		return *ccs[0].StartOverride
	}
	return geom.Point{}
}

func optimizeTravelThunk(p *CutPlan) error {
	ccs := p.cutItems()
	if len(ccs) == 0 {
		return nil
	}
	ordered := travel.OptimizeJob(toGroups(ccs), p.startPosition(), p.Options.Travel)
	p.replaceCutItems([]*cutcode.CutCode{wrapOrdered(ordered)})
	p.log("optimize_travel: ordered cuts via nearest-neighbor")
	return nil
}

func optimizeTravel2optThunk(p *CutPlan) error {
	ccs := p.cutItems()
	if len(ccs) == 0 {
		return nil
	}
	seq := ccs[0].Flat()
	refined := travel.TwoOpt(seq, p.Options.Travel)
	p.replaceCutItems([]*cutcode.CutCode{wrapOrdered(refined)})
	p.log("optimize_travel_2opt: refined travel order")
	return nil
}

func optimizeCutsThunk(p *CutPlan) error {
	ccs := p.cutItems()
	if len(ccs) == 0 {
		return nil
	}
	groups := toGroups(ccs)
	contain.InnerFirstIdent(groups, p.Options.InnerTolerance)

	opts := p.Options.Travel
	opts.InnerFirst = true
	ordered := travel.OptimizeJob(groups, p.startPosition(), opts)
	p.replaceCutItems([]*cutcode.CutCode{wrapOrdered(ordered)})
	p.log("optimize_cuts: ordered cuts honoring inner-first containment")
	return nil
}

// basicCutcodeSequencingThunk is the critical no-optimization fallback:
// it burns every remaining scalar exactly once, in existing plan order,
// marking each fully burned. Without some thunk advancing burns_done, a
// plan with every optimizer flag disabled would never complete.
func basicCutcodeSequencingThunk(p *CutPlan) error {
	ccs := p.cutItems()
	if len(ccs) == 0 {
		return nil
	}
	out := make([]cutcode.CutObject, 0)
	for _, cc := range ccs {
		for _, c := range cc.Flat() {
			c.SetBurnsDone(c.Passes())
			out = append(out, c)
		}
	}
	p.replaceCutItems([]*cutcode.CutCode{wrapOrdered(out)})
	p.log("basic_cutcode_sequencing: advanced burns_done with no reordering")
	return nil
}

func mergeCutcodeThunk(p *CutPlan) error { return p.Merge() }
