package planner

import (
	"testing"

	"github.com/katalvlaran/lasercore/geom"
	"github.com/stretchr/testify/require"
)

func TestComputeBoundsUnionsEveryPlacement(t *testing.T) {
	viewport := geom.BBox{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}
	placements := []Placement{
		{Matrix: geom.Identity()},
		{Matrix: geom.Translate(20, 0)},
	}

	bounds, outline := computeBounds(placements, viewport)
	require.Equal(t, 0.0, bounds.MinX)
	require.Equal(t, 30.0, bounds.MaxX)
	require.Equal(t, 10.0, bounds.MaxY)
	require.Len(t, outline, 4)
}

func TestBoundsReflectsMostRecentPreprocess(t *testing.T) {
	p := NewCutPlan("job", nil, DefaultOptions())
	viewport := geom.BBox{MinX: 0, MinY: 0, MaxX: 5, MaxY: 5}

	require.NoError(t, p.Preprocess(nil, viewport))
	got := p.Bounds()
	require.Equal(t, 0.0, got.MinX)
	require.Equal(t, 5.0, got.MaxX)
}
