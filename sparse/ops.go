// SPDX-License-Identifier: MIT

// Package sparse — multiplication and scaling kernels.
//
// Deterministic loop orders throughout: row-major over the left operand,
// ascending column position within a row. MulDense optionally parallelizes
// over disjoint row blocks (outputs never overlap, so no locking).

package sparse

import (
	"fmt"

	"github.com/gudeh/dgl/backend"
	"github.com/gudeh/dgl/dense"
)

// Operation tags for unified error wrapping (no magic strings).
const (
	opMulDense  = "MulDense"
	opMulCSR    = "MulCSR"
	opScaleRows = "ScaleRows"
	opScaleCols = "ScaleCols"
)

// MulDense computes m·x where x is dense: the sparse-dense product that
// applies one round of feature diffusion. Shapes: (r×c)·(c×k) → r×k.
//
// Row blocks are dispatched through cfg; with backend.Sequential() the
// result is bitwise reproducible. Returns ErrDimensionMismatch on shape
// conflict. O(nnz·k) time.
func (m *CSR) MulDense(x *dense.Matrix, cfg backend.Config) (*dense.Matrix, error) {
	if m == nil || x == nil {
		return nil, fmt.Errorf("%s: %w", opMulDense, ErrNilMatrix)
	}
	if m.cols != x.Rows() {
		return nil, fmt.Errorf("%s: (%dx%d)·(%dx%d): %w", opMulDense, m.rows, m.cols, x.Rows(), x.Cols(), ErrDimensionMismatch)
	}
	k := x.Cols()
	out, err := dense.New(m.rows, k)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opMulDense, err)
	}

	xData := x.Data()
	oData := out.Data()
	backend.ForEachChunk(cfg, m.rows, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			oRow := oData[i*k : (i+1)*k]
			for p := m.rowPtr[i]; p < m.rowPtr[i+1]; p++ {
				v := m.val[p]
				xRow := xData[m.colIdx[p]*k : (m.colIdx[p]+1)*k]
				for j := 0; j < k; j++ {
					oRow[j] += v * xRow[j]
				}
			}
		}
	})

	return out, nil
}

// MulCSR computes the sparse-sparse product m·b (SpGEMM) using Gustavson's
// row-by-row scheme with a dense accumulator per output row.
// Shapes: (r×c)·(c×k) → r×k. Returns ErrDimensionMismatch on shape conflict.
//
// Numerically-zero fill-in is kept: the output support is the structural
// product support, which downstream symmetry/support checks rely on.
func (m *CSR) MulCSR(b *CSR) (*CSR, error) {
	if m == nil || b == nil {
		return nil, fmt.Errorf("%s: %w", opMulCSR, ErrNilMatrix)
	}
	if m.cols != b.rows {
		return nil, fmt.Errorf("%s: (%dx%d)·(%dx%d): %w", opMulCSR, m.rows, m.cols, b.rows, b.cols, ErrDimensionMismatch)
	}

	rowPtr := make([]int, m.rows+1)
	colIdx := make([]int, 0, len(m.val))
	val := make([]float64, 0, len(m.val))

	acc := make([]float64, b.cols)   // dense accumulator, reset per row
	marked := make([]int, 0, b.cols) // touched columns of the current row

	for i := 0; i < m.rows; i++ {
		marked = marked[:0]
		for p := m.rowPtr[i]; p < m.rowPtr[i+1]; p++ {
			av := m.val[p]
			brow := m.colIdx[p]
			for q := b.rowPtr[brow]; q < b.rowPtr[brow+1]; q++ {
				c := b.colIdx[q]
				if acc[c] == 0 && !containsMark(marked, c) {
					marked = append(marked, c)
				}
				acc[c] += av * b.val[q]
			}
		}
		// Emit in ascending column order to preserve the CSR invariant.
		insertionSortInts(marked)
		for _, c := range marked {
			colIdx = append(colIdx, c)
			val = append(val, acc[c])
			acc[c] = 0
		}
		rowPtr[i+1] = len(colIdx)
	}

	return &CSR{rows: m.rows, cols: b.cols, rowPtr: rowPtr, colIdx: colIdx, val: val}, nil
}

// ScaleRows returns diag(d)·m — row i multiplied by d[i].
// Returns ErrLengthMismatch when len(d) != Rows(). Values in d are applied
// as-is; non-finite factors propagate (the permissive isolated-vertex mode
// in package propagate depends on this).
func (m *CSR) ScaleRows(d []float64) (*CSR, error) {
	if m == nil {
		return nil, fmt.Errorf("%s: %w", opScaleRows, ErrNilMatrix)
	}
	if len(d) != m.rows {
		return nil, fmt.Errorf("%s: %d factors for %d rows: %w", opScaleRows, len(d), m.rows, ErrLengthMismatch)
	}
	out := m.Clone()
	for i := 0; i < m.rows; i++ {
		for p := out.rowPtr[i]; p < out.rowPtr[i+1]; p++ {
			out.val[p] *= d[i]
		}
	}

	return out, nil
}

// ScaleCols returns m·diag(d) — column j multiplied by d[j].
// Returns ErrLengthMismatch when len(d) != Cols().
func (m *CSR) ScaleCols(d []float64) (*CSR, error) {
	if m == nil {
		return nil, fmt.Errorf("%s: %w", opScaleCols, ErrNilMatrix)
	}
	if len(d) != m.cols {
		return nil, fmt.Errorf("%s: %d factors for %d cols: %w", opScaleCols, len(d), m.cols, ErrLengthMismatch)
	}
	out := m.Clone()
	for p, c := range out.colIdx {
		out.val[p] *= d[c]
	}

	return out, nil
}

// Scale returns s·m with the same support.
func (m *CSR) Scale(s float64) *CSR {
	out := m.Clone()
	for p := range out.val {
		out.val[p] *= s
	}

	return out
}

// containsMark reports whether c was already recorded for the current row.
// Linear scan: rows touched per product step are short in graph workloads,
// and acc[c] == 0 filters almost every call before it happens.
func containsMark(marked []int, c int) bool {
	for _, m := range marked {
		if m == c {
			return true
		}
	}

	return false
}

// insertionSortInts sorts a short slice in place. Output rows in SpGEMM are
// small (bounded by neighborhood sizes), where insertion sort beats the
// allocation overhead of sort.Ints.
func insertionSortInts(a []int) {
	for i := 1; i < len(a); i++ {
		for j := i; j > 0 && a[j] < a[j-1]; j-- {
			a[j], a[j-1] = a[j-1], a[j]
		}
	}
}
