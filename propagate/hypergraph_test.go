package propagate_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gudeh/dgl/propagate"
	"github.com/gudeh/dgl/sparse"
)

const tol = 1e-9

// fixtureIncidence is an 11-node, 5-hyperedge incidence relation used as the
// reference scenario throughout this package's tests.
func fixtureIncidence(t *testing.T, opts ...sparse.Option) *sparse.COO {
	t.Helper()
	rows := []int{0, 1, 2, 2, 2, 2, 3, 4, 5, 5, 5, 5, 6, 7, 7, 8, 8, 9, 9, 10}
	cols := []int{0, 0, 0, 1, 3, 4, 2, 1, 0, 2, 3, 4, 2, 1, 3, 1, 3, 2, 4, 4}
	h, err := sparse.NewCOO(11, 5, rows, cols, opts...)
	require.NoError(t, err)

	return h
}

// requireSymmetric asserts L[i,j] == L[j,i] within tolerance.
func requireSymmetric(t *testing.T, l *sparse.CSR) {
	t.Helper()
	require.Equal(t, l.Rows(), l.Cols())
	for i := 0; i < l.Rows(); i++ {
		for j := i + 1; j < l.Cols(); j++ {
			vij, err := l.At(i, j)
			require.NoError(t, err)
			vji, err := l.At(j, i)
			require.NoError(t, err)
			require.InDelta(t, vij, vji, tol, "asymmetry at (%d,%d)", i, j)
		}
	}
}

// TestFixture_Degrees pins the exact degree sums of the reference incidence:
// node degrees count incident hyperedges per node, hyperedge degrees count
// member nodes per hyperedge.
func TestFixture_Degrees(t *testing.T) {
	h := fixtureIncidence(t)

	wantNode := []float64{1, 1, 4, 1, 1, 4, 1, 2, 2, 2, 1}
	wantEdge := []float64{4, 4, 4, 4, 4}
	require.Equal(t, wantNode, h.RowSums())
	require.Equal(t, wantEdge, h.ColSums())
}

// TestHypergraph_FixtureOperator verifies the operator built from the
// reference incidence: symmetric, finite, rows of Dv^(1/2)-weighted sums
// consistent with a stochastic diffusion.
func TestHypergraph_FixtureOperator(t *testing.T) {
	h := fixtureIncidence(t)

	l, err := propagate.Hypergraph(h)
	require.NoError(t, err)
	require.Equal(t, 11, l.Rows())
	require.Equal(t, 11, l.Cols())

	requireSymmetric(t, l)

	// All entries finite and non-negative for a 0/1 incidence.
	for i := 0; i < l.Rows(); i++ {
		_, vals, err := l.Row(i)
		require.NoError(t, err)
		for _, v := range vals {
			require.False(t, math.IsNaN(v) || math.IsInf(v, 0))
			require.GreaterOrEqual(t, v, 0.0)
		}
	}

	// Dv^(-1/2)·H·W·De^(-1)·Hᵀ·Dv^(-1/2) applied to sqrt(dv) reproduces
	// sqrt(dv): the degree vector is the operator's stationary direction.
	dv := h.RowSums()
	for i := 0; i < l.Rows(); i++ {
		cols, vals, err := l.Row(i)
		require.NoError(t, err)
		sum := 0.0
		for p, j := range cols {
			sum += vals[p] * math.Sqrt(dv[j])
		}
		require.InDelta(t, math.Sqrt(dv[i]), sum, tol, "row %d", i)
	}
}

// TestHypergraph_WeightedMatchesManual verifies the weighted contract on a
// tiny incidence against hand-computed values.
func TestHypergraph_WeightedMatchesManual(t *testing.T) {
	// H (3 nodes × 2 hyperedges): e0={0,1}, e1={1,2}; weights w=[2, 8].
	h, err := sparse.NewCOO(3, 2, []int{0, 1, 1, 2}, []int{0, 0, 1, 1})
	require.NoError(t, err)

	l, err := propagate.Hypergraph(h, propagate.WithEdgeWeights([]float64{2, 8}))
	require.NoError(t, err)

	// dv = [2, 10, 8]; de = [2, 2].
	// L[0,0] = (1/√2)·(2/2)·(1/√2) = 1/2
	// L[0,1] = (1/√2)·(2/2)·(1/√10) = 1/√20
	// L[1,1] = (1/√10)·(2/2 + 8/2)·(1/√10) = 5/10 = 1/2
	// L[2,1] = (1/√8)·(8/2)·(1/√10) = 4/√80
	v, _ := l.At(0, 0)
	require.InDelta(t, 0.5, v, tol)
	v, _ = l.At(0, 1)
	require.InDelta(t, 1/math.Sqrt(20), v, tol)
	v, _ = l.At(1, 1)
	require.InDelta(t, 0.5, v, tol)
	v, _ = l.At(2, 1)
	require.InDelta(t, 4/math.Sqrt(80), v, tol)
	// Nodes 0 and 2 share no hyperedge: no coupling.
	v, _ = l.At(0, 2)
	require.Equal(t, 0.0, v)

	requireSymmetric(t, l)
}

// TestHypergraph_Errors verifies the sentinel surface.
func TestHypergraph_Errors(t *testing.T) {
	_, err := propagate.Hypergraph(nil)
	require.ErrorIs(t, err, propagate.ErrNilRelation)

	h, err := sparse.NewCOO(3, 2, []int{0, 1, 1, 2}, []int{0, 0, 1, 1})
	require.NoError(t, err)

	_, err = propagate.Hypergraph(h, propagate.WithEdgeWeights([]float64{1}))
	require.ErrorIs(t, err, propagate.ErrWeightLength)
	_, err = propagate.Hypergraph(h, propagate.WithEdgeWeights([]float64{1, -2}))
	require.ErrorIs(t, err, propagate.ErrBadWeight)
	_, err = propagate.Hypergraph(h, propagate.WithEdgeWeights([]float64{1, math.NaN()}))
	require.ErrorIs(t, err, propagate.ErrBadWeight)

	// Node 2 incident to nothing.
	iso, err := sparse.NewCOO(3, 1, []int{0, 1}, []int{0, 0})
	require.NoError(t, err)
	_, err = propagate.Hypergraph(iso)
	require.ErrorIs(t, err, propagate.ErrIsolatedVertex)

	// Hyperedge 1 has no members.
	empty, err := sparse.NewCOO(2, 2, []int{0, 1}, []int{0, 0})
	require.NoError(t, err)
	_, err = propagate.Hypergraph(empty)
	require.ErrorIs(t, err, propagate.ErrEmptyHyperedge)
}

// TestHypergraph_AllowIsolated verifies the opt-out: construction succeeds,
// the isolated node's operator row is simply empty, and connected rows stay
// finite.
func TestHypergraph_AllowIsolated(t *testing.T) {
	iso, err := sparse.NewCOO(3, 1, []int{0, 1}, []int{0, 0})
	require.NoError(t, err)

	l, err := propagate.Hypergraph(iso, propagate.WithAllowIsolated())
	require.NoError(t, err)
	require.Equal(t, 3, l.Rows())

	// The isolated node's row carries no entries; connected rows are finite.
	cols, _, err := l.Row(2)
	require.NoError(t, err)
	require.Empty(t, cols)
	v, err := l.At(0, 1)
	require.NoError(t, err)
	require.False(t, math.IsNaN(v))
}
