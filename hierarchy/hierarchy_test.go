package hierarchy

import (
	"testing"

	"github.com/katalvlaran/lasercore/cutcode"
	"github.com/stretchr/testify/require"
)

func TestBuildHierarchyLevels(t *testing.T) {
	outer := cutcode.NewCutGroup(1)
	mid := cutcode.NewCutGroup(1)
	inner := cutcode.NewCutGroup(1)

	mid.Inside = []*cutcode.CutGroup{outer}
	inner.Inside = []*cutcode.CutGroup{mid}
	outer.Contains = []*cutcode.CutGroup{mid}
	mid.Contains = []*cutcode.CutGroup{inner}

	hc := BuildHierarchy([]*cutcode.CutGroup{outer, mid, inner})
	require.Equal(t, 3, hc.LevelCount())

	order := hc.GetProcessingOrder()
	require.Len(t, order, 3)
	require.Equal(t, []*cutcode.CutGroup{inner}, order[0])
	require.Equal(t, []*cutcode.CutGroup{mid}, order[1])
	require.Equal(t, []*cutcode.CutGroup{outer}, order[2])
}

func TestBuildHierarchyFlatGroupsAllLevelZero(t *testing.T) {
	a := cutcode.NewCutGroup(1)
	b := cutcode.NewCutGroup(1)
	hc := BuildHierarchy([]*cutcode.CutGroup{a, b})
	require.Equal(t, 1, hc.LevelCount())
	require.ElementsMatch(t, []*cutcode.CutGroup{a, b}, hc.GetProcessingOrder()[0])
}
