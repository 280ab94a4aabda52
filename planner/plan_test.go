package planner

import (
	"testing"

	"github.com/katalvlaran/lasercore/cutcode"
	"github.com/katalvlaran/lasercore/geom"
	"github.com/katalvlaran/lasercore/op"
	"github.com/stretchr/testify/require"
)

func lineOp(passes int) *op.Operation {
	o := op.NewOperation(op.TypeCut)
	o.Passes = passes
	o.AsCutObjects = func(o *op.Operation, closedDistance, passes int) []cutcode.CutObject {
		return []cutcode.CutObject{
			cutcode.NewLineCut(geom.Pt(0, 0), geom.Pt(10, 0), passes),
			cutcode.NewLineCut(geom.Pt(10, 0), geom.Pt(10, 10), passes),
		}
	}
	return o
}

func TestCopyDeepCopiesSelectedRoots(t *testing.T) {
	root := lineOp(1)
	p := NewCutPlan("job", []*op.Operation{root}, DefaultOptions())

	require.NoError(t, p.Copy(nil))
	require.Len(t, p.Plan, 1)
	require.NotSame(t, root, p.Plan[0].Op)
	require.Equal(t, root.Type, p.Plan[0].Op.Type)

	// Mutating the clone must not reach the caller's tree.
	p.Plan[0].Op.Passes = 99
	require.Equal(t, 1, root.Passes)
}

func TestCopyRejectsNilOperation(t *testing.T) {
	p := NewCutPlan("job", nil, DefaultOptions())
	err := p.Copy([]*op.Operation{nil})
	require.ErrorIs(t, err, ErrNilOperation)
}

func TestCopySelectedRestrictsToSubset(t *testing.T) {
	a, b := lineOp(1), lineOp(1)
	p := NewCutPlan("job", []*op.Operation{a, b}, DefaultOptions())

	require.NoError(t, p.Copy([]*op.Operation{b}))
	require.Len(t, p.Plan, 1)
	require.Equal(t, b.Type, p.Plan[0].Op.Type)
}

func TestClearEmptiesAllQueues(t *testing.T) {
	p := NewCutPlan("job", nil, DefaultOptions())
	p.Plan = []PlanItem{consoleItem("coolant_on")}
	p.Commands = []Thunk{{Name: "x", Run: func(*CutPlan) error { return nil }}}
	p.SpoolCommands = p.Commands

	p.Clear()
	require.Empty(t, p.Plan)
	require.Empty(t, p.Commands)
	require.Empty(t, p.SpoolCommands)
}

func TestExecuteAbsorbsThunksEnqueuedMidDrain(t *testing.T) {
	p := NewCutPlan("job", nil, DefaultOptions())
	var order []string

	first := Thunk{Name: "first", Run: func(plan *CutPlan) error {
		order = append(order, "first")
		plan.Commands = append(plan.Commands, Thunk{Name: "second", Run: func(plan *CutPlan) error {
			order = append(order, "second")
			return nil
		}})
		return nil
	}}
	p.Commands = []Thunk{first}

	require.NoError(t, p.Execute())
	require.Equal(t, []string{"first", "second"}, order)
	require.Empty(t, p.Commands)
}

func TestFinalDrainsSpoolCommandsIndependently(t *testing.T) {
	p := NewCutPlan("job", nil, DefaultOptions())
	ran := false
	p.SpoolCommands = []Thunk{{Name: "spool", Run: func(*CutPlan) error {
		ran = true
		return nil
	}}}

	require.NoError(t, p.Final())
	require.True(t, ran)
	require.Empty(t, p.SpoolCommands)
}

func TestDiagReceivesLogMessages(t *testing.T) {
	p := NewCutPlan("job", nil, DefaultOptions())
	var got []string
	p.Diag = func(msg string) { got = append(got, msg) }

	p.log("hello")
	require.Equal(t, []string{"hello"}, got)
}
