package travel

import (
	"github.com/katalvlaran/lasercore/cutcode"
	"github.com/katalvlaran/lasercore/geom"
)

// Optimize runs the core greedy loop over groups starting from start,
// advancing each selected cut's burns-done counter as it is placed in the
// output order (this is the planning-time pass that decides order; the
// real hardware burn later replays exactly this sequence). It terminates
// when no candidate remains, which candidatesFor guarantees happens only
// once every unburned scalar has been yielded at least once.
//
// When opts.GroupedInner is set, groups are first partitioned into pieces
// (an outer and everything it Contains, transitively, share one piece)
// and the loop sticks to the current piece — via restrict
// — until it has nothing left to offer, rather than interleaving cuts from
// unrelated pieces. With it off, every group is its own singleton piece and
// no such stickiness applies.
//
// When opts.TwoOpt is set (never combined with opts.InnerFirst), the
// resulting sequence gets one additional 2-opt refinement pass.
func Optimize(groups []*cutcode.CutGroup, start geom.Point, opts Options) []cutcode.CutObject {
	out := make([]cutcode.CutObject, 0)
	pos := start
	var last cutcode.CutObject
	var currentPiece *piece

	var parts []*piece
	if opts.GroupedInner {
		parts = partitionPieces(groups)
	} else {
		parts = singletonPieces(groups)
	}

	for {
		cands := candidatesFor(parts, opts.InnerFirst, opts.GroupedInner, opts.CompleteSubpaths)
		if len(cands) == 0 {
			break
		}

		var restrict []int
		if opts.GroupedInner && currentPiece != nil {
			for i, c := range cands {
				if c.piece == currentPiece {
					restrict = append(restrict, i)
				}
			}
		}

		idx, reversed, ok := selectNext(pos, last, cands, opts, restrict)
		if !ok {
			break
		}
		chosen := cands[idx]
		if reversed {
			chosen.obj.Reverse()
		}
		out = append(out, chosen.obj)
		chosen.obj.SetBurnsDone(chosen.obj.BurnsDone() + 1)
		pos = chosen.obj.End()
		last = chosen.obj
		currentPiece = chosen.piece
	}

	if opts.TwoOpt && !opts.InnerFirst {
		out = TwoOpt(out, opts)
	}
	return out
}

// OptimizeJob is the top-level entry point a planner stage calls: it
// applies hatch/skip extraction before optimizing, so
// non-skip groups are ordered first and skip groups are optimized
// separately and appended, and it is always safe to call regardless of
// opts.HatchOptimize (a no-op split when disabled).
func OptimizeJob(groups []*cutcode.CutGroup, start geom.Point, opts Options) []cutcode.CutObject {
	if !opts.HatchOptimize {
		return Optimize(groups, start, opts)
	}

	nonSkip, skip := ExtractSkipGroups(groups)
	out := Optimize(nonSkip, start, opts)

	if len(skip) == 0 {
		return out
	}
	pos := start
	if len(out) > 0 {
		pos = out[len(out)-1].End()
	}
	out = append(out, Optimize(skip, pos, opts)...)
	return out
}
