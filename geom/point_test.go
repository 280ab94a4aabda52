package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPointArithmetic(t *testing.T) {
	p := Pt(1, 2)
	q := Pt(3, 4)

	require.Equal(t, Pt(4, 6), p.Add(q))
	require.Equal(t, Pt(-2, -2), p.Sub(q))
	require.Equal(t, Pt(2, 4), p.Scale(2))
	require.InDelta(t, 5.0, p.Distance(Pt(4, 6)), 1e-9)
}

func TestPointLerp(t *testing.T) {
	p := Pt(0, 0)
	q := Pt(10, 10)
	require.Equal(t, Pt(5, 5), p.Lerp(q, 0.5))
	require.Equal(t, p, p.Lerp(q, 0))
	require.Equal(t, q, p.Lerp(q, 1))
}

func TestConvexHullSquareWithInteriorPoints(t *testing.T) {
	pts := []Point{
		{0, 0}, {10, 0}, {10, 10}, {0, 10},
		{5, 5}, {2, 2}, {8, 8}, // interior, must be excluded
	}
	hull := ConvexHull(pts)
	require.Len(t, hull, 4)
	for _, p := range hull {
		require.True(t, p == Pt(0, 0) || p == Pt(10, 0) || p == Pt(10, 10) || p == Pt(0, 10))
	}
}

func TestConvexHullDegenerate(t *testing.T) {
	require.Len(t, ConvexHull(nil), 0)
	require.Len(t, ConvexHull([]Point{{1, 1}}), 1)
	require.Len(t, ConvexHull([]Point{{1, 1}, {2, 2}}), 2)
}

func TestBBoxUnionAndContains(t *testing.T) {
	outer := BBox{MinX: 0, MinY: 0, MaxX: 100, MaxY: 100}
	inner := BBox{MinX: 20, MinY: 20, MaxX: 80, MaxY: 80}
	require.True(t, outer.Contains(inner))
	require.False(t, inner.Contains(outer))

	b := EmptyBBox()
	b = b.UnionPoint(Pt(1, 2))
	b = b.UnionPoint(Pt(-1, 5))
	require.Equal(t, BBox{MinX: -1, MinY: 2, MaxX: 1, MaxY: 5}, b)
}

func TestBBoxExpandNegativeCanInvert(t *testing.T) {
	b := BBox{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}
	shrunk := b.Expand(-20)
	require.Greater(t, shrunk.MinX, shrunk.MaxX) // degenerate: contains nothing
	require.False(t, shrunk.Contains(BBox{MinX: 4, MinY: 4, MaxX: 5, MaxY: 5}))
}

func TestChebyshevLowerBoundsEuclidean(t *testing.T) {
	p := Pt(0, 0)
	q := Pt(3, 4)
	require.LessOrEqual(t, p.Chebyshev(q), p.Distance(q)+1e-9)
	require.InDelta(t, 4.0, p.Chebyshev(q), 1e-9)
}

func TestPointRound(t *testing.T) {
	p := Pt(1.4, 1.6)
	r := p.Round()
	require.Equal(t, Pt(1, 2), r)
}

func TestPolarAngleRoundTrip(t *testing.T) {
	origin := Pt(0, 0)
	target := origin.Polar(math.Pi/4, 10)
	require.InDelta(t, math.Pi/4, origin.Angle(target), 1e-9)
	require.InDelta(t, 10.0, origin.Distance(target), 1e-9)
}
