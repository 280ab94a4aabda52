package geom

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatrixIdentityApply(t *testing.T) {
	m := Identity()
	p := Pt(3, 4)
	require.Equal(t, p, m.Apply(p))
}

func TestMatrixInverseRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	m := Identity()
	m.PostTranslate(10, -5).PostRotate(0.7).PostScale(2, 3)

	inv, err := m.Inverse()
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		p := Pt(rng.Float64()*200-100, rng.Float64()*200-100)
		transformed := m.Apply(p)
		back := inv.Apply(transformed)
		require.InDelta(t, p.X, back.X, 1e-9)
		require.InDelta(t, p.Y, back.Y, 1e-9)
	}
}

func TestMatrixSingularInverseFails(t *testing.T) {
	m := Scale(0, 1)
	_, err := m.Inverse()
	require.ErrorIs(t, err, ErrSingularMatrix)
}

func TestMatrixPreVsPostCat(t *testing.T) {
	// PostTranslate applies translation in the pre-existing local frame;
	// PreTranslate applies it in the outer/world frame.
	scale := Scale(2, 2)
	post := scale
	post.PostTranslate(1, 0)
	require.Equal(t, Pt(4, 0), post.Apply(Pt(1, 0))) // (1+1)*2 = 4

	pre := scale
	pre.PreTranslate(1, 0)
	require.Equal(t, Pt(3, 0), pre.Apply(Pt(1, 0))) // 1*2 + 1 = 3
}

func TestMatrixRotateQuarterTurn(t *testing.T) {
	m := Rotate(math.Pi / 2)
	p := m.Apply(Pt(1, 0))
	require.InDelta(t, 0, p.X, 1e-9)
	require.InDelta(t, 1, p.Y, 1e-9)
}

func TestMatrixEqual(t *testing.T) {
	require.True(t, Identity().Equal(Identity()))
	require.False(t, Identity().Equal(Scale(2, 2)))
	require.True(t, Identity().IsIdentity())
}
