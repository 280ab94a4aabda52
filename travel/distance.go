package travel

import "github.com/katalvlaran/lasercore/geom"

// continuationTol is how close a candidate's start must be to the current
// position to count as "continuing" the open subpath rather than jumping.
const continuationTol = 1e-6

// continuationGap is the largest jump, in device units, still treated as
// continuing the last-emitted cut's own subpath via its Previous/Next
// linkage rather than starting a fresh nearest-neighbor search (roughly
// 1/20 inch on a 1000-units-per-inch device).
const continuationGap = 50.0

// endpoint describes one side a candidate cut could be entered from: its
// point, whether entering there requires reversing the cut first, and the
// candidate's index in the slice being scanned.
type endpoint struct {
	point   geom.Point
	reverse bool
	index   int
}

// nearestEndpoint scans candidates for the endpoint closest to from,
// considering both Start() and End() (the latter only when the candidate
// is reversible). Chebyshev distance lower-bounds the Euclidean distance
// and lets the scan skip the exact computation once a candidate cannot
// possibly beat the current best.
func nearestEndpoint(from geom.Point, cands []candidateCut) (endpoint, bool) {
	bestDist := -1.0
	var best endpoint
	found := false

	for i, c := range cands {
		if from.Chebyshev(c.obj.Start()) <= bestDist || !found {
			if d := from.Distance(c.obj.Start()); !found || d < bestDist {
				bestDist, best, found = d, endpoint{c.obj.Start(), false, i}, true
			}
		}
		if c.obj.Reversible() {
			if from.Chebyshev(c.obj.End()) <= bestDist || !found {
				if d := from.Distance(c.obj.End()); !found || d < bestDist {
					bestDist, best, found = d, endpoint{c.obj.End(), true, i}, true
				}
			}
		}
	}
	return best, found
}
