package planner

import (
	"testing"

	"github.com/katalvlaran/lasercore/cutcode"
	"github.com/katalvlaran/lasercore/geom"
	"github.com/katalvlaran/lasercore/op"
	"github.com/stretchr/testify/require"
)

func TestPreprocessDefaultsToSingleIdentityPlacement(t *testing.T) {
	root := lineOp(1)
	p := NewCutPlan("job", []*op.Operation{root}, DefaultOptions())
	require.NoError(t, p.Copy(nil))

	require.NoError(t, p.Preprocess(nil, geom.BBox{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1}))
	require.Len(t, p.Plan, 1)
	require.NotNil(t, p.Plan[0].Op)
}

func TestPreprocessEmitsOneCloneParPlacement(t *testing.T) {
	root := lineOp(1)
	p := NewCutPlan("job", []*op.Operation{root}, DefaultOptions())
	require.NoError(t, p.Copy(nil))

	placements := []Placement{{Matrix: geom.Identity()}, {Matrix: geom.Translate(5, 0)}, {Matrix: geom.Translate(10, 0)}}
	require.NoError(t, p.Preprocess(placements, geom.BBox{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1}))
	require.Len(t, p.Plan, 3)
}

func TestPreprocessBracketsCoolantDeclaringOps(t *testing.T) {
	root := lineOp(1)
	root.Coolant = op.CoolantOn
	p := NewCutPlan("job", []*op.Operation{root}, DefaultOptions())
	require.NoError(t, p.Copy(nil))

	require.NoError(t, p.Preprocess(nil, geom.BBox{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1}))
	require.Len(t, p.Plan, 3)
	require.Equal(t, "coolant_on", p.Plan[0].Console.Command)
	require.NotNil(t, p.Plan[1].Op)
	require.Equal(t, "coolant_off", p.Plan[2].Console.Command)
}

func TestPreprocessSimplifiesDescendantGeometry(t *testing.T) {
	child := op.NewOperation(op.TypeEngrave)
	child.Geometry = []geom.Point{
		geom.Pt(0, 0), geom.Pt(5, 0.01), geom.Pt(10, 0), geom.Pt(10, 10),
	}
	root := op.NewOperation(op.TypeCut)
	root.Children = []*op.Operation{child}

	opts := DefaultOptions()
	opts.ReduceDetails = true
	opts.ReduceTolerance = 0.1
	p := NewCutPlan("job", []*op.Operation{root}, opts)
	require.NoError(t, p.Copy(nil))
	require.NoError(t, p.Preprocess(nil, geom.BBox{MinX: 0, MinY: 0, MaxX: 20, MaxY: 20}))

	got := p.Plan[0].Op.Children[0].Geometry
	require.Equal(t, []geom.Point{
		geom.Pt(0, 0), geom.Pt(10, 0), geom.Pt(10, 10),
	}, got)
	// The caller's tree keeps the full-detail polyline.
	require.Len(t, child.Geometry, 4)
}

func TestPreprocessLeavesGeometryAloneWhenReduceDetailsOff(t *testing.T) {
	child := op.NewOperation(op.TypeEngrave)
	child.Geometry = []geom.Point{
		geom.Pt(0, 0), geom.Pt(5, 0.01), geom.Pt(10, 0), geom.Pt(10, 10),
	}
	root := op.NewOperation(op.TypeCut)
	root.Children = []*op.Operation{child}

	p := NewCutPlan("job", []*op.Operation{root}, DefaultOptions())
	require.NoError(t, p.Copy(nil))
	require.NoError(t, p.Preprocess(nil, geom.BBox{MinX: 0, MinY: 0, MaxX: 20, MaxY: 20}))

	require.Len(t, p.Plan[0].Op.Children[0].Geometry, 4)
}

func TestPreprocessInvokesOwnAndDescendantHooks(t *testing.T) {
	var rootSeen, childSeen geom.Matrix
	child := lineOp(1)
	child.Preprocess = func(o *op.Operation, m geom.Matrix, diag func(string)) { childSeen = m }

	root := lineOp(1)
	root.Children = []*op.Operation{child}
	root.Preprocess = func(o *op.Operation, m geom.Matrix, diag func(string)) { rootSeen = m }

	p := NewCutPlan("job", []*op.Operation{root}, DefaultOptions())
	require.NoError(t, p.Copy(nil))

	matrix := geom.Translate(3, 4)
	require.NoError(t, p.Preprocess([]Placement{{Matrix: matrix}}, geom.BBox{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1}))
	require.Equal(t, matrix, rootSeen)
	require.Equal(t, matrix, childSeen)
}

func TestPreprocessAdvancesWordlistOncePerPlacement(t *testing.T) {
	var seen []string
	root := lineOp(1)
	root.Preprocess = func(o *op.Operation, m geom.Matrix, diag func(string)) {}
	root.AsCutObjects = func(o *op.Operation, closedDistance, passes int) []cutcode.CutObject {
		return []cutcode.CutObject{cutcode.NewLineCut(geom.Pt(0, 0), geom.Pt(1, 0), passes)}
	}

	p := NewCutPlan("job", []*op.Operation{root}, DefaultOptions())
	release := p.WordList.Push(map[string][]string{"name": {"A", "B"}})
	defer release()
	require.NoError(t, p.Copy(nil))

	placements := []Placement{{Matrix: geom.Identity()}, {Matrix: geom.Identity()}}
	require.NoError(t, p.Preprocess(placements, geom.BBox{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1}))

	seen = append(seen, p.WordList.Substitute("{name}"))
	require.Equal(t, []string{"A"}, seen)
}
