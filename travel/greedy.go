package travel

import (
	"github.com/katalvlaran/lasercore/cutcode"
	"github.com/katalvlaran/lasercore/geom"
)

// selectNext picks the candidate index (and whether it must be entered
// reversed) the optimizer should burn next from pos, dispatching the
// closest-point search to the tier appropriate for len(cands):
//
//	< ImprovedGreedyMax        linear scan (simple and improved greedy)
//	< SpatialMax               grid partition, k-d tree once large enough
//	>= SpatialMax              legacy linear scan (tree rebuild churn at
//	                           this size outweighs its benefit)
//
// The continuation-preference check runs unconditionally, on every tier
// — all tiers share this core loop — and it is a distinct mechanism from
// opts.CompleteSubpaths, which instead gates the candidate generator's
// complete_path policy (see travel/candidate.go). Continuation consults
// last's own subpath linkage first: if the last-emitted cut's Next (or,
// entering reversed, Previous) is still a live candidate within
// continuationGap of pos, that neighbor wins outright, preserving path
// continuity on nearly-closed subpaths. Exact-coincidence matching over
// the remaining pool runs after, then the distance search.
//
// restrictTo, when non-empty, further narrows the search to candidates
// at those indices — used by the grouped-inner sticky-piece policy to
// keep scanning the current piece before considering any other.
func selectNext(pos geom.Point, last cutcode.CutObject, cands []candidateCut, opts Options, restrictTo []int) (int, bool, bool) {
	pool := cands
	restrictIdx := restrictTo
	if len(restrictTo) > 0 {
		pool = make([]candidateCut, len(restrictTo))
		for i, idx := range restrictTo {
			pool[i] = cands[idx]
		}
	}

	if last != nil {
		if next := last.Next(); next != nil && !next.IsBurned() {
			if i := indexOfCandidate(pool, next); i >= 0 && pos.Distance(next.Start()) <= continuationGap {
				return resolveIndex(i, restrictIdx), false, true
			}
		}
		if prev := last.Previous(); prev != nil && !prev.IsBurned() && prev.Reversible() {
			if i := indexOfCandidate(pool, prev); i >= 0 && pos.Distance(prev.End()) <= continuationGap {
				return resolveIndex(i, restrictIdx), true, true
			}
		}
	}

	for i, c := range pool {
		if pos.Distance(c.obj.Start()) <= continuationTol {
			return resolveIndex(i, restrictIdx), false, true
		}
		if c.obj.Reversible() && pos.Distance(c.obj.End()) <= continuationTol {
			return resolveIndex(i, restrictIdx), true, true
		}
	}

	n := len(pool)
	if n == 0 {
		return 0, false, false
	}

	if n >= opts.ImprovedGreedyMax && n < opts.SpatialMax {
		if n >= opts.KDTreeMinN {
			idx := newKDIndex(pool)
			if i, _, ok := idx.nearestIndex(pos); ok {
				ep, _ := nearestAtExactIndex(pos, pool, i)
				return resolveIndex(i, restrictIdx), ep.reverse, true
			}
		}
		g := newGrid(pool, opts.GridCellSize)
		if i, _, ok := g.nearestIndex(pos, pool); ok {
			ep, _ := nearestAtExactIndex(pos, pool, i)
			return resolveIndex(i, restrictIdx), ep.reverse, true
		}
	}

	// Simple/improved greedy below ImprovedGreedyMax, legacy scan at and
	// above SpatialMax, and the fallback when a spatial structure came up
	// empty: all the same linear endpoint scan.
	ep, ok := nearestEndpoint(pos, pool)
	if !ok {
		return 0, false, false
	}
	return resolveIndex(ep.index, restrictIdx), ep.reverse, true
}

func resolveIndex(poolIdx int, restrictTo []int) int {
	if len(restrictTo) == 0 {
		return poolIdx
	}
	return restrictTo[poolIdx]
}

// indexOfCandidate locates obj in pool by identity, or -1 when obj is not
// currently a candidate (already burned out of the pool, or outside the
// piece restriction).
func indexOfCandidate(pool []candidateCut, obj cutcode.CutObject) int {
	for i, c := range pool {
		if c.obj == obj {
			return i
		}
	}
	return -1
}

// nearestAtExactIndex re-derives whether entering candidate i requires a
// reversed approach, since the spatial/kdtree tiers only compare against
// each candidate's Start().
func nearestAtExactIndex(pos geom.Point, pool []candidateCut, i int) (endpoint, bool) {
	c := pool[i]
	if !c.obj.Reversible() {
		return endpoint{c.obj.Start(), false, i}, true
	}
	if pos.Distance(c.obj.End()) < pos.Distance(c.obj.Start()) {
		return endpoint{c.obj.End(), true, i}, true
	}
	return endpoint{c.obj.Start(), false, i}, true
}
