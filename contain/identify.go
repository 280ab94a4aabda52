package contain

import (
	"github.com/katalvlaran/lasercore/cutcode"
	"github.com/katalvlaran/lasercore/geom"
)

const (
	outerSamples = 1001
	innerSamples = 101
)

// candidate bundles a CutGroup with the polygon approximation used to test
// it, computed once per InnerFirstIdent call rather than per pairwise test.
type candidate struct {
	group *cutcode.CutGroup
	bbox  geom.BBox
	poly  []geom.Point // dense outer approximation, built lazily
	mono  *Monotonizer // built lazily, only if this group is ever tested as an outer
}

func (c *candidate) outerPoly() []geom.Point {
	if c.poly == nil {
		c.poly = flattenGroupPoints(c.group, outerSamples)
	}
	return c.poly
}

// monotonizer lazily builds (and caches) the scan-beam structure used when
// c is tested as an outer shape. tolerance inflates the polygon radially
// from its centroid before building the structure, so a positive
// tolerance loosens the outer boundary and a negative one tightens it,
// matching isInside's bbox convention. Callers within a single
// InnerFirstIdent pass always supply the same tolerance, so caching
// across repeated inner tests against the same outer is safe.
func (c *candidate) monotonizer(tolerance float64) *Monotonizer {
	if c.mono == nil {
		c.mono = NewMonotonizer(inflatePoly(c.outerPoly(), tolerance))
	}
	return c.mono
}

// flattenGroupPoints samples n points evenly across every scalar cut in the
// group's depth-first flattening, approximating the group's closed boundary
// as a dense polygon suitable for scanline testing.
func flattenGroupPoints(g *cutcode.CutGroup, n int) []geom.Point {
	flat := g.Flat()
	if len(flat) == 0 {
		return nil
	}
	if n < len(flat) {
		n = len(flat)
	}
	perSeg := n / len(flat)
	if perSeg < 1 {
		perSeg = 1
	}

	out := make([]geom.Point, 0, n)
	for _, c := range flat {
		for i := 0; i < perSeg; i++ {
			t := float64(i) / float64(perSeg)
			out = append(out, c.Point(t))
		}
	}
	return out
}

// groupBBox unions the bounding box of every point in the group's dense
// outer approximation; callers only need this for the pre-reject test, so
// a modest sample count (outerSamples) is enough to bound it tightly.
func groupBBox(g *cutcode.CutGroup) geom.BBox {
	box := geom.EmptyBBox()
	for _, p := range flattenGroupPoints(g, outerSamples) {
		box = box.UnionPoint(p)
	}
	return box
}

// isInside decides whether inner lies wholly inside outer by sampling
// innerSamples points along inner's boundary and scanline-testing every
// one against outer's dense polygon. All samples must test inside; a
// single miss returns false.
//
// tolerance is the configured inner-tolerance slack: outer's bbox (and
// the polygon itself, via a uniform point-wise expansion along its
// centroid rays) is loosened by tolerance before the pre-reject and
// scanline tests. Positive tolerance loosens the outer, making
// containment easier to satisfy; negative tolerance tightens it, making
// containment strictly harder.
//
// A group never contains itself, and a bbox pre-reject skips the
// expensive sampling pass outright. When the tolerance-expanded outer box
// equals the inner box exactly, the pair is rejected as a sibling/overlap
// case unless both boxes collapse to a single point.
func isInside(outer, inner *candidate, tolerance float64) bool {
	if outer.group == inner.group {
		return false
	}
	outerBBox := outer.bbox.Expand(tolerance)
	if !outerBBox.Contains(inner.bbox) {
		return false
	}
	if outerBBox.Equal(inner.bbox) {
		// Equal boxes are only a valid nesting when the boxes are exactly
		// degenerate to a point shared by both; otherwise treat as a
		// sibling/overlap case, not containment.
		if outerBBox.MaxX != outerBBox.MinX || outerBBox.MaxY != outerBBox.MinY {
			return false
		}
	}

	mono := outer.monotonizer(tolerance)
	samples := SampleUniform(inner.outerPoly(), innerSamples)
	for _, p := range samples {
		if !mono.IsPointInside(p) {
			return false
		}
	}
	return true
}

// InnerFirstIdent computes the containment DAG across every top-level
// CutGroup in groups: for each ordered pair (outer, inner) with outer
// strictly containing inner, outer.Contains gets inner appended and
// inner.Inside gets outer appended, and inner.Constrained is set.
//
// tolerance (planner.Options.InnerTolerance) is the slack, in device
// units, applied to the outer shape's acceptance region (both its bbox
// pre-reject and its scanline polygon) before testing containment.
// Positive tolerance loosens the outer (more pairs qualify); negative
// tolerance tightens it (fewer pairs qualify).
//
// Existing containment state on every group is cleared first, so this is
// safe to call repeatedly as groups are burned and removed from
// consideration (the caller re-slices groups to just the remaining ones).
func InnerFirstIdent(groups []*cutcode.CutGroup, tolerance float64) {
	for _, g := range groups {
		g.Clear()
	}

	cands := make([]*candidate, 0, len(groups))
	for _, g := range groups {
		cands = append(cands, &candidate{group: g, bbox: groupBBox(g)})
	}

	for i, outer := range cands {
		if !outer.group.Closed() {
			continue // a non-closed group is never an outer container
		}
		for j, inner := range cands {
			if i == j {
				continue
			}
			if isInside(outer, inner, tolerance) {
				outer.group.Contains = append(outer.group.Contains, inner.group)
				inner.group.Inside = append(inner.group.Inside, outer.group)
				inner.group.Constrained = true
			}
		}
	}
}
