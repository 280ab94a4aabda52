package contain

import (
	"testing"

	"github.com/katalvlaran/lasercore/cutcode"
	"github.com/katalvlaran/lasercore/geom"
	"github.com/stretchr/testify/require"
)

func square(cx, cy, half float64) *cutcode.CutGroup {
	g := cutcode.NewCutGroup(1)
	pts := []geom.Point{
		geom.Pt(cx-half, cy-half),
		geom.Pt(cx+half, cy-half),
		geom.Pt(cx+half, cy+half),
		geom.Pt(cx-half, cy+half),
	}
	for i := range pts {
		g.Append(cutcode.NewLineCut(pts[i], pts[(i+1)%len(pts)], 1))
	}
	g.SetClosed(true)
	return g
}

func TestMonotonizerPointInsideSquare(t *testing.T) {
	poly := []geom.Point{geom.Pt(0, 0), geom.Pt(10, 0), geom.Pt(10, 10), geom.Pt(0, 10)}
	m := NewMonotonizer(poly)

	require.True(t, m.IsPointInside(geom.Pt(5, 5)))
	require.False(t, m.IsPointInside(geom.Pt(15, 5)))
	require.False(t, m.IsPointInside(geom.Pt(-1, 5)))
}

func TestMonotonizerCachesRepeatedY(t *testing.T) {
	poly := []geom.Point{geom.Pt(0, 0), geom.Pt(10, 0), geom.Pt(10, 10), geom.Pt(0, 10)}
	m := NewMonotonizer(poly)

	require.True(t, m.IsPointInside(geom.Pt(5, 5)))
	require.True(t, m.IsPointInside(geom.Pt(6, 5))) // same y, cache hit path
}

func TestSampleUniformCoversClosedLoop(t *testing.T) {
	poly := []geom.Point{geom.Pt(0, 0), geom.Pt(10, 0), geom.Pt(10, 10), geom.Pt(0, 10)}
	samples := SampleUniform(poly, 40)
	require.Len(t, samples, 40)
	for _, p := range samples {
		require.GreaterOrEqual(t, p.X, 0.0)
		require.LessOrEqual(t, p.X, 10.0)
	}
}

func TestInnerFirstIdentNestedSquares(t *testing.T) {
	outer := square(0, 0, 10)
	inner := square(0, 0, 2)
	sibling := square(50, 50, 2)

	groups := []*cutcode.CutGroup{outer, inner, sibling}
	InnerFirstIdent(groups, 0)

	require.Len(t, outer.Contains, 1)
	require.Same(t, inner, outer.Contains[0])
	require.Len(t, inner.Inside, 1)
	require.Same(t, outer, inner.Inside[0])
	require.True(t, inner.Constrained)

	require.Empty(t, sibling.Inside)
	require.Empty(t, sibling.Contains)
	require.False(t, sibling.Constrained)
}

func TestInnerFirstIdentNoSelfContainment(t *testing.T) {
	solo := square(0, 0, 5)
	InnerFirstIdent([]*cutcode.CutGroup{solo}, 0)
	require.Empty(t, solo.Contains)
	require.Empty(t, solo.Inside)
}

func TestInnerFirstIdentClearsStaleState(t *testing.T) {
	outer := square(0, 0, 10)
	inner := square(0, 0, 2)
	InnerFirstIdent([]*cutcode.CutGroup{outer, inner}, 0)
	require.NotEmpty(t, outer.Contains)

	// Re-run with only the formerly-inner group present: stale containment
	// from the previous pass must not survive.
	InnerFirstIdent([]*cutcode.CutGroup{inner}, 0)
	require.Empty(t, inner.Inside)
	require.False(t, inner.Constrained)
}

func TestOpenGroupIsNeverAnOuterContainer(t *testing.T) {
	outer := square(0, 0, 10)
	outer.SetClosed(false)
	inner := square(0, 0, 2)
	InnerFirstIdent([]*cutcode.CutGroup{outer, inner}, 0)
	require.Empty(t, outer.Contains)
	require.Empty(t, inner.Inside)
}

func TestIdenticalBBoxDistinctGroupsDoNotNest(t *testing.T) {
	a := square(0, 0, 5)
	b := square(0, 0, 5)
	InnerFirstIdent([]*cutcode.CutGroup{a, b}, 0)
	require.Empty(t, a.Contains)
	require.Empty(t, b.Contains)
}

// TestInnerFirstIdentToleranceSensitivity pins the tolerance-sign
// convention: a tightly-nested outer (margin of exactly 1 unit on every
// side) is detected at tolerance 0, but a negative tolerance shrinks the
// outer's acceptance region below the inner's extent and the pair is no
// longer reported as containment.
func TestInnerFirstIdentToleranceSensitivity(t *testing.T) {
	g1 := []*cutcode.CutGroup{square(0, 0, 6), square(0, 0, 5)} // margin of exactly 1 unit
	InnerFirstIdent(g1, 0)
	require.Len(t, g1[0].Contains, 1, "zero tolerance must detect the strictly-containing outer")

	g2 := []*cutcode.CutGroup{square(0, 0, 6), square(0, 0, 5)}
	InnerFirstIdent(g2, -2)
	require.Empty(t, g2[0].Contains, "negative tolerance must shrink the outer below the inner's extent")
}
