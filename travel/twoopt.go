package travel

import "github.com/katalvlaran/lasercore/cutcode"

// TwoOpt refines an already-ordered sequence of scalar cuts by repeatedly
// reversing a contiguous segment whenever doing so shortens total travel,
// adapted from the teacher's symmetric 2-opt (tsp/two_opt.go) to operate
// directly on CutObject endpoints instead of a precomputed distance
// matrix — the sequence here is an open path, not a closed tour, and its
// length (bounded by the tiers that feed it) makes an O(n²) distance
// matrix unnecessary.
//
// Reversing segment [i..k] removes edges (i-1,i) and (k,k+1) and adds
// (i-1,k) and (i,k+1); the segment's internal member order is reversed
// and every member's Reverse() is called so its Start/End still matches
// its new traversal direction.
//
// Aborts immediately on fewer than 4 elements, and stops after the first
// full pass with no accepted move or after opts.TwoOptMaxPasses passes,
// whichever comes first.
func TwoOpt(seq []cutcode.CutObject, opts Options) []cutcode.CutObject {
	n := len(seq)
	if n < 4 {
		return seq
	}
	cur := make([]cutcode.CutObject, n)
	copy(cur, seq)

	maxPasses := opts.TwoOptMaxPasses
	if maxPasses <= 0 {
		maxPasses = DefaultTwoOptMaxPasses
	}
	eps := opts.TwoOptEps
	if eps <= 0 {
		eps = DefaultTwoOptEps
	}

	for pass := 0; pass < maxPasses; pass++ {
		improved := false
		for i := 1; i < n-1; i++ {
			for k := i + 1; k < n; k++ {
				a, b, c := cur[i-1], cur[i], cur[k]

				oldCost := a.End().Distance(b.Start())
				newCost := a.End().Distance(c.End())
				hasTail := k+1 < n
				if hasTail {
					d := cur[k+1]
					oldCost += c.End().Distance(d.Start())
					newCost += b.Start().Distance(d.Start())
				}

				if delta := newCost - oldCost; delta < -eps {
					reverseSegment(cur, i, k)
					improved = true
				}
			}
		}
		if !improved {
			break
		}
	}
	return cur
}

// reverseSegment reverses cur[i..k] inclusive, both the slice order and
// each member's own traversal direction.
func reverseSegment(cur []cutcode.CutObject, i, k int) {
	for lo, hi := i, k; lo < hi; lo, hi = lo+1, hi-1 {
		cur[lo], cur[hi] = cur[hi], cur[lo]
	}
	for idx := i; idx <= k; idx++ {
		cur[idx].Reverse()
	}
}

// TotalTravel sums the gap distance between consecutive cuts in seq (the
// non-cutting rapid moves the optimizer is trying to minimize).
func TotalTravel(seq []cutcode.CutObject) float64 {
	total := 0.0
	for i := 1; i < len(seq); i++ {
		total += seq[i-1].End().Distance(seq[i].Start())
	}
	return total
}
