package sparse_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gudeh/dgl/backend"
	"github.com/gudeh/dgl/dense"
	"github.com/gudeh/dgl/sparse"
)

// TestMulDense_Known checks a hand-computed sparse-dense product.
func TestMulDense_Known(t *testing.T) {
	// m = [[1 0 2], [0 3 0]]
	m := mustCOO(t, 2, 3,
		[]int{0, 0, 1},
		[]int{0, 2, 1},
		sparse.WithValues([]float64{1, 2, 3})).ToCSR()
	x, err := dense.FromSlice(3, 2, []float64{
		1, 2,
		3, 4,
		5, 6,
	})
	require.NoError(t, err)

	got, err := m.MulDense(x, backend.Sequential())
	require.NoError(t, err)
	require.Equal(t, []float64{11, 14, 9, 12}, got.Data())
}

// TestMulDense_ParallelMatchesSequential verifies chunked dispatch changes
// nothing about the result.
func TestMulDense_ParallelMatchesSequential(t *testing.T) {
	// Deterministic pseudo-random-ish pattern without a generator dependency.
	const n, k = 64, 7
	var ri, ci []int
	var vals []float64
	for i := 0; i < n; i++ {
		for j := i % 3; j < n; j += 5 + i%4 {
			ri = append(ri, i)
			ci = append(ci, j)
			vals = append(vals, float64((i*31+j*17)%13)-6)
		}
	}
	m := mustCOO(t, n, n, ri, ci, sparse.WithValues(vals)).ToCSR()

	xData := make([]float64, n*k)
	for i := range xData {
		xData[i] = float64((i*7)%11) - 5
	}
	x, err := dense.FromSlice(n, k, xData)
	require.NoError(t, err)

	seq, err := m.MulDense(x, backend.Sequential())
	require.NoError(t, err)
	par, err := m.MulDense(x, backend.Config{Workers: 8})
	require.NoError(t, err)
	require.Equal(t, seq.Data(), par.Data())
}

// TestMulDense_DimensionMismatch verifies the conformability guard.
func TestMulDense_DimensionMismatch(t *testing.T) {
	m := mustCOO(t, 2, 3, []int{0}, []int{0}).ToCSR()
	x, err := dense.New(2, 2)
	require.NoError(t, err)
	_, err = m.MulDense(x, backend.Sequential())
	require.ErrorIs(t, err, sparse.ErrDimensionMismatch)
}

// TestMulCSR_Known checks SpGEMM against a dense reference on small inputs.
func TestMulCSR_Known(t *testing.T) {
	// a = [[1 2], [0 3]], b = [[4 0 5], [0 6 0]]
	a := mustCOO(t, 2, 2,
		[]int{0, 0, 1},
		[]int{0, 1, 1},
		sparse.WithValues([]float64{1, 2, 3})).ToCSR()
	b := mustCOO(t, 2, 3,
		[]int{0, 0, 1},
		[]int{0, 2, 1},
		sparse.WithValues([]float64{4, 5, 6})).ToCSR()

	got, err := a.MulCSR(b)
	require.NoError(t, err)
	require.Equal(t, 2, got.Rows())
	require.Equal(t, 3, got.Cols())

	want := [][]float64{
		{4, 12, 5},
		{0, 18, 0},
	}
	for i := range want {
		for j := range want[i] {
			v, err := got.At(i, j)
			require.NoError(t, err)
			require.InDelta(t, want[i][j], v, 1e-12, "at (%d,%d)", i, j)
		}
	}

	_, err = b.MulCSR(a)
	require.ErrorIs(t, err, sparse.ErrDimensionMismatch)
}

// TestMulCSR_RowOrderInvariant verifies output rows obey the ascending-column
// CSR invariant even when products touch columns out of order.
func TestMulCSR_RowOrderInvariant(t *testing.T) {
	a := mustCOO(t, 1, 3, []int{0, 0, 0}, []int{0, 1, 2}).ToCSR()
	b := mustCOO(t, 3, 4,
		[]int{0, 1, 2, 2},
		[]int{3, 1, 0, 2}).ToCSR()

	got, err := a.MulCSR(b)
	require.NoError(t, err)
	cols, vals, err := got.Row(0)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3}, cols)
	require.Equal(t, []float64{1, 1, 1, 1}, vals)
}

// TestScaleRowsCols verifies diagonal scaling from both sides.
func TestScaleRowsCols(t *testing.T) {
	m := mustCOO(t, 2, 3,
		[]int{0, 0, 1},
		[]int{0, 2, 1},
		sparse.WithValues([]float64{1, 2, 3})).ToCSR()

	r, err := m.ScaleRows([]float64{2, 10})
	require.NoError(t, err)
	v, _ := r.At(0, 2)
	require.Equal(t, 4.0, v)
	v, _ = r.At(1, 1)
	require.Equal(t, 30.0, v)

	c, err := m.ScaleCols([]float64{1, 0.5, 3})
	require.NoError(t, err)
	v, _ = c.At(0, 2)
	require.Equal(t, 6.0, v)
	v, _ = c.At(1, 1)
	require.Equal(t, 1.5, v)

	_, err = m.ScaleRows([]float64{1})
	require.ErrorIs(t, err, sparse.ErrLengthMismatch)
	_, err = m.ScaleCols([]float64{1, 2})
	require.ErrorIs(t, err, sparse.ErrLengthMismatch)

	s := m.Scale(-1)
	v, _ = s.At(1, 1)
	require.Equal(t, -3.0, v)
}
