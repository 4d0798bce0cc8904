package nn_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gudeh/dgl/backend"
	"github.com/gudeh/dgl/dense"
	"github.com/gudeh/dgl/nn"
	"github.com/gudeh/dgl/propagate"
	"github.com/gudeh/dgl/sparse"
)

// identityLinear loads W = I and zero bias so a layer's output isolates the
// diffusion step.
func identityLinear(t *testing.T, l *nn.Linear, n int) {
	t.Helper()
	w := l.Weight()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := 0.0
			if i == j {
				v = 1
			}
			require.NoError(t, w.Set(i, j, v))
		}
	}
}

// TestGraphConv_IdentityProjection verifies X' = L·X when W = I, against the
// hand-computed operator of a 2-node graph.
func TestGraphConv_IdentityProjection(t *testing.T) {
	conv, err := nn.NewGraphConv(1, 1, backend.Sequential())
	require.NoError(t, err)
	identityLinear(t, conv.Linear(), 1)

	adj, err := sparse.NewCOO(2, 2, []int{0, 1}, []int{1, 0})
	require.NoError(t, err)
	x, err := dense.FromSlice(2, 1, []float64{2, 4})
	require.NoError(t, err)

	y, err := conv.Forward(adj, x)
	require.NoError(t, err)
	// L of A+I with degrees [2,2] averages each node with its neighbor.
	require.InDeltaSlice(t, []float64{3, 3}, y.Data(), 1e-12)
}

// TestHypergraphConv_Shapes verifies output shape and operator reuse across
// forward passes on a static incidence.
func TestHypergraphConv_Shapes(t *testing.T) {
	conv, err := nn.NewHypergraphConv(3, 4, backend.Sequential(), nn.WithSeed(5))
	require.NoError(t, err)

	inc, err := sparse.NewCOO(4, 2,
		[]int{0, 1, 1, 2, 3},
		[]int{0, 0, 1, 1, 1})
	require.NoError(t, err)
	x, err := dense.FromSlice(4, 3, []float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
		1, 1, 1,
	})
	require.NoError(t, err)

	first, err := conv.Forward(inc, x)
	require.NoError(t, err)
	require.Equal(t, 4, first.Rows())
	require.Equal(t, 4, first.Cols())

	// A second epoch over the same static relation is identical.
	second, err := conv.Forward(inc, x)
	require.NoError(t, err)
	require.Equal(t, first.Data(), second.Data())

	for _, v := range first.Data() {
		require.False(t, math.IsNaN(v) || math.IsInf(v, 0))
	}
}

// TestHypergraphConv_OperatorOptions verifies builder options reach the
// operator: an isolated node fails strict mode and passes permissive mode.
func TestHypergraphConv_OperatorOptions(t *testing.T) {
	inc, err := sparse.NewCOO(3, 1, []int{0, 1}, []int{0, 0})
	require.NoError(t, err)
	x, err := dense.FromSlice(3, 2, []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)

	strict, err := nn.NewHypergraphConv(2, 2, backend.Sequential())
	require.NoError(t, err)
	_, err = strict.Forward(inc, x)
	require.ErrorIs(t, err, propagate.ErrIsolatedVertex)

	lax, err := nn.NewHypergraphConv(2, 2, backend.Sequential(),
		nn.WithOperatorOptions(propagate.WithAllowIsolated()))
	require.NoError(t, err)
	_, err = lax.Forward(inc, x)
	require.NoError(t, err)
}

// TestConv_NilInputs verifies the nil guards.
func TestConv_NilInputs(t *testing.T) {
	gconv, err := nn.NewGraphConv(2, 2, backend.Sequential())
	require.NoError(t, err)
	_, err = gconv.Forward(nil, nil)
	require.ErrorIs(t, err, nn.ErrNilInput)

	hconv, err := nn.NewHypergraphConv(2, 2, backend.Sequential())
	require.NoError(t, err)
	_, err = hconv.Forward(nil, nil)
	require.ErrorIs(t, err, nn.ErrNilInput)
}
