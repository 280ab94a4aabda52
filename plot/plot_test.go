package plot

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLineDegeneratePoint(t *testing.T) {
	steps := Line(5, 5, 5, 5)
	require.Len(t, steps, 1)
	require.Equal(t, Step{X: 5, Y: 5, On: true}, steps[0])
}

func TestLineEndpointsMatch(t *testing.T) {
	steps := Line(0, 0, 10, 4)
	require.NotEmpty(t, steps)
	require.Equal(t, Step{0, 0, true}, steps[0])
	require.Equal(t, Step{10, 4, true}, steps[len(steps)-1])
}

func TestLineDeterministic(t *testing.T) {
	a := Line(0, 0, 17, -9)
	b := Line(0, 0, 17, -9)
	require.Equal(t, a, b)
}

func TestLineAllFourOctants(t *testing.T) {
	cases := [][4]int{
		{0, 0, 10, 3}, {0, 0, -10, 3}, {0, 0, 10, -3}, {0, 0, -10, -3},
		{0, 0, 3, 10}, {0, 0, -3, 10}, {0, 0, 3, -10}, {0, 0, -3, -10},
	}
	for _, c := range cases {
		steps := Line(c[0], c[1], c[2], c[3])
		require.NotEmpty(t, steps)
		require.Equal(t, c[2], steps[len(steps)-1].X)
		require.Equal(t, c[3], steps[len(steps)-1].Y)
	}
}

func TestQuadBezierEndpoints(t *testing.T) {
	steps := QuadBezier(0, 0, 50, 100, 100, 0)
	require.NotEmpty(t, steps)
	require.Equal(t, 0, steps[0].X)
	require.Equal(t, 0, steps[0].Y)
	last := steps[len(steps)-1]
	require.Equal(t, 100, last.X)
	require.Equal(t, 0, last.Y)
}

func TestQuadBezierDegenerateToLine(t *testing.T) {
	// Control point on the chord: curve should reduce to (roughly) a line.
	steps := QuadBezier(0, 0, 5, 0, 10, 0)
	require.NotEmpty(t, steps)
	for _, s := range steps {
		require.Equal(t, 0, s.Y)
	}
}

// TestQuadBezierSegSwappedLegEmitsInPathOrder pins the begin-with-the-
// longer-part case: when the segment walk starts from the far endpoint,
// the buffered pixels must still come out start-to-end.
func TestQuadBezierSegSwappedLegEmitsInPathOrder(t *testing.T) {
	steps := quadBezierSeg(-6, -6, -6, -5, -5, -4)
	require.Equal(t, []Step{
		{X: -6, Y: -6, On: true},
		{X: -6, Y: -5, On: true},
		{X: -5, Y: -4, On: true},
	}, steps)
}

func TestQuadBezierDeterministic(t *testing.T) {
	a := QuadBezier(0, 0, 30, 60, 90, 10)
	b := QuadBezier(0, 0, 30, 60, 90, 10)
	require.Equal(t, a, b)
}

func TestCubicBezierEndpoints(t *testing.T) {
	steps := CubicBezier(0, 0, 30, 90, 70, -90, 100, 0)
	require.NotEmpty(t, steps)
	require.Equal(t, 0, steps[0].X)
	require.Equal(t, 0, steps[0].Y)
	last := steps[len(steps)-1]
	require.Equal(t, 100, last.X)
	require.Equal(t, 0, last.Y)
}

func TestCubicBezierStraightLine(t *testing.T) {
	steps := CubicBezier(0, 0, 3, 0, 6, 0, 9, 0)
	for _, s := range steps {
		require.Equal(t, 0, s.Y)
	}
	require.Equal(t, 9, steps[len(steps)-1].X)
}

// TestCubicBezierStraightLineMatchesBresenham pins the Zingl stepper's
// output for a collinear control-point curve against a hand-traced
// derivation of plot_cubic_bezier_seg (ZinglPlotter.py): both axis
// coefficients (xa,ya) collapse to zero, so the curve reduces to the
// quadratic case and then to a plain Bresenham line from (0,0) to (9,0) —
// exactly plot.Line's own output, which is the strongest local check
// available without a second language runtime to diff against.
func TestCubicBezierStraightLineMatchesBresenham(t *testing.T) {
	got := CubicBezier(0, 0, 3, 0, 6, 0, 9, 0)
	want := Line(0, 0, 9, 0)
	require.Equal(t, want, got)
}

// TestCubicBezierSegDegeneratesToQuad confirms cubicBezierSeg's xa==0 &&
// ya==0 branch (the original's "quadratic Bezier" shortcut) delegates to
// quadBezierSeg rather than running the full two-leg stepper, for any
// curve whose cubic coefficients vanish identically.
func TestCubicBezierSegDegeneratesToQuad(t *testing.T) {
	got := cubicBezierSeg(0, 0, 3, 0, 6, 0, 9, 0)
	want := quadBezierSeg(0, 0, int(math.Floor((3*3-0+1)/2)), 0, 9, 0)
	require.Equal(t, want, got)
}

func TestCubicBezierDeterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	x1, y1 := rng.Intn(200)-100, rng.Intn(200)-100
	x2, y2 := rng.Intn(200)-100, rng.Intn(200)-100
	a := CubicBezier(0, 0, x1, y1, x2, y2, 150, 40)
	b := CubicBezier(0, 0, x1, y1, x2, y2, 150, 40)
	require.Equal(t, a, b)
}

func TestCubicBezierSCurveNoPanic(t *testing.T) {
	// S-curve: forces multiple monotone breakpoints on both axes.
	require.NotPanics(t, func() {
		steps := CubicBezier(0, 0, 100, 100, -100, 100, 0, 200)
		require.NotEmpty(t, steps)
	})
}
