package dense_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gudeh/dgl/dense"
)

// TestNew_Errors verifies shape validation on construction.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		r, c int
	}{
		{"ZeroRows", 0, 3},
		{"ZeroCols", 3, 0},
		{"Negative", -1, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := dense.New(tc.r, tc.c)
			if !errors.Is(err, dense.ErrBadShape) {
				t.Errorf("New(%d,%d) error = %v; want ErrBadShape", tc.r, tc.c, err)
			}
		})
	}
}

// TestFromSlice_LengthMismatch verifies the data-length guard.
func TestFromSlice_LengthMismatch(t *testing.T) {
	_, err := dense.FromSlice(2, 2, []float64{1, 2, 3})
	require.ErrorIs(t, err, dense.ErrLengthMismatch)
}

// TestAtSet_Bounds exercises indexed access and its error surface.
func TestAtSet_Bounds(t *testing.T) {
	m, err := dense.New(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 4.5))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 4.5, v)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, dense.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, 3, 1), dense.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, 0, math.NaN()), dense.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(1)), dense.ErrNaNInf)
}

// TestRow_SharedStorage verifies Row views alias the backing buffer.
func TestRow_SharedStorage(t *testing.T) {
	m, err := dense.FromSlice(2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, err)

	row, err := m.Row(1)
	require.NoError(t, err)
	row[0] = 9

	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 9.0, v)

	_, err = m.Row(5)
	require.ErrorIs(t, err, dense.ErrOutOfRange)
}

// TestClone_Independent verifies deep-copy semantics.
func TestClone_Independent(t *testing.T) {
	m, err := dense.FromSlice(1, 2, []float64{1, 2})
	require.NoError(t, err)
	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 7))

	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v, "clone mutation must not leak into the original")
}

// TestEye verifies identity construction.
func TestEye(t *testing.T) {
	m, err := dense.Eye(3)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			if i == j {
				require.Equal(t, 1.0, v)
			} else {
				require.Equal(t, 0.0, v)
			}
		}
	}
}
