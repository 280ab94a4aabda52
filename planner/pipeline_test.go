package planner

import (
	"testing"

	"github.com/katalvlaran/lasercore/cutcode"
	"github.com/katalvlaran/lasercore/geom"
	"github.com/katalvlaran/lasercore/op"
	"github.com/stretchr/testify/require"
)

func squareOp(cx, cy, half float64) *op.Operation {
	o := op.NewOperation(op.TypeCut)
	o.AsCutObjects = func(o *op.Operation, closedDistance, passes int) []cutcode.CutObject {
		pts := []geom.Point{
			geom.Pt(cx-half, cy-half),
			geom.Pt(cx+half, cy-half),
			geom.Pt(cx+half, cy+half),
			geom.Pt(cx-half, cy+half),
		}
		out := make([]cutcode.CutObject, 0, 4)
		for i := range pts {
			out = append(out, cutcode.NewLineCut(pts[i], pts[(i+1)%len(pts)], passes))
		}
		return out
	}
	return o
}

// TestFullPipelineTwoPiecesOrdersByTravelDistance runs every pipeline
// stage over two disjoint pieces with nearest-neighbor travel enabled,
// covering the two-piece travel case: starting at the
// origin, the nearer piece must be visited first.
func TestFullPipelineTwoPiecesOrdersByTravelDistance(t *testing.T) {
	near := squareOp(0, 0, 2)
	far := squareOp(100, 100, 2)

	opts := DefaultOptions()
	opts.Travel.InnerFirst = false
	opts.Travel.HatchOptimize = false
	p := NewCutPlan("job", []*op.Operation{far, near}, opts)

	require.NoError(t, p.Copy(nil))
	require.NoError(t, p.Preprocess(nil, geom.BBox{MinX: -200, MinY: -200, MaxX: 200, MaxY: 200}))
	p.Blob()
	require.NoError(t, p.Preopt())
	require.NoError(t, p.Execute())

	ccs := p.cutItems()
	require.Len(t, ccs, 1)
	first := ccs[0].Flat()[0]
	require.InDelta(t, 2.0, first.Start().Distance(geom.Pt(0, 0)), 6.0)
}

// TestFullPipelineNestedSquaresBurnsInnerBeforeOuter runs nested squares
// end to end: inner-first must hold even after
// the full copy/preprocess/blob/preopt/execute sequence, not just when
// calling the optimizer stage directly.
func TestFullPipelineNestedSquaresBurnsInnerBeforeOuter(t *testing.T) {
	outer := squareOp(0, 0, 10)
	inner := squareOp(0, 0, 2)

	opts := DefaultOptions()
	opts.Travel.ReduceTravel = false
	opts.Travel.InnerFirst = true
	opts.Travel.HatchOptimize = false
	p := NewCutPlan("job", []*op.Operation{outer, inner}, opts)

	require.NoError(t, p.Copy(nil))
	require.NoError(t, p.Preprocess(nil, geom.BBox{MinX: -20, MinY: -20, MaxX: 20, MaxY: 20}))
	p.Blob()
	require.NoError(t, p.Preopt())
	require.NoError(t, p.Execute())

	ccs := p.cutItems()
	require.Len(t, ccs, 1)
	out := ccs[0].Flat()

	innerLast, outerFirst := -1, -1
	for i, c := range out {
		small := c.Start().Distance(geom.Pt(0, 0)) < 5
		if small {
			innerLast = i
		} else if outerFirst == -1 {
			outerFirst = i
		}
	}
	require.GreaterOrEqual(t, innerLast, 0)
	require.GreaterOrEqual(t, outerFirst, 0)
	require.Less(t, innerLast, outerFirst)
}

// TestFullPipelineNoOptimizationFlagsStillCompletes is the critical
// regression guard for the basic-sequencing fallback: with every optimizer
// flag off, the plan must still reduce to fully-burned cutcode rather
// than stalling.
func TestFullPipelineNoOptimizationFlagsStillCompletes(t *testing.T) {
	a := squareOp(0, 0, 2)

	opts := DefaultOptions()
	opts.Travel.ReduceTravel = false
	opts.Travel.NearestNeighbor = false
	opts.Travel.InnerFirst = false
	opts.Travel.TwoOpt = false
	p := NewCutPlan("job", []*op.Operation{a}, opts)

	require.NoError(t, p.Copy(nil))
	require.NoError(t, p.Preprocess(nil, geom.BBox{MinX: -5, MinY: -5, MaxX: 5, MaxY: 5}))
	p.Blob()
	require.NoError(t, p.Preopt())
	require.NoError(t, p.Execute())

	for _, cc := range p.cutItems() {
		for _, c := range cc.Flat() {
			require.True(t, c.IsBurned())
		}
	}
}
