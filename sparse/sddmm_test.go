package sparse_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gudeh/dgl/dense"
	"github.com/gudeh/dgl/sparse"
)

// TestSDDMM_Known verifies dot products restricted to the pattern support.
func TestSDDMM_Known(t *testing.T) {
	// Pattern over 2×3: entries at (0,0), (0,2), (1,1).
	pattern := mustCOO(t, 2, 3, []int{0, 0, 1}, []int{0, 2, 1}).ToCSR()

	a, err := dense.FromSlice(2, 2, []float64{
		1, 2,
		3, 4,
	})
	require.NoError(t, err)
	b, err := dense.FromSlice(3, 2, []float64{
		5, 6,
		7, 8,
		9, 10,
	})
	require.NoError(t, err)

	got, err := sparse.SDDMM(pattern, a, b)
	require.NoError(t, err)
	require.Equal(t, pattern.NNZ(), got.NNZ(), "support must match the pattern exactly")

	v, _ := got.At(0, 0)
	require.Equal(t, 17.0, v) // 1·5 + 2·6
	v, _ = got.At(0, 2)
	require.Equal(t, 29.0, v) // 1·9 + 2·10
	v, _ = got.At(1, 1)
	require.Equal(t, 53.0, v) // 3·7 + 4·8

	// Outside the support nothing was computed.
	v, _ = got.At(1, 0)
	require.Equal(t, 0.0, v)
}

// TestSDDMM_Shapes verifies conformability checks for all three operands.
func TestSDDMM_Shapes(t *testing.T) {
	pattern := mustCOO(t, 2, 3, []int{0}, []int{0}).ToCSR()
	d22, _ := dense.New(2, 2)
	d32, _ := dense.New(3, 2)
	d33, _ := dense.New(3, 3)

	_, err := sparse.SDDMM(pattern, d32, d32) // a rows != pattern rows
	require.ErrorIs(t, err, sparse.ErrDimensionMismatch)
	_, err = sparse.SDDMM(pattern, d22, d22) // b rows != pattern cols
	require.ErrorIs(t, err, sparse.ErrDimensionMismatch)
	_, err = sparse.SDDMM(pattern, d22, d33) // feature dims differ
	require.ErrorIs(t, err, sparse.ErrDimensionMismatch)
	_, err = sparse.SDDMM(nil, d22, d32)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)
}
