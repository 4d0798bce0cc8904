// SPDX-License-Identifier: MIT

// Package sparse — sampled dense-dense matrix multiply.

package sparse

import (
	"fmt"

	"github.com/gudeh/dgl/dense"
)

const opSDDMM = "SDDMM"

// SDDMM computes a dense product restricted to a sparse output pattern:
// for every stored coordinate (i, j) of pattern, out[i,j] = ⟨a[i,:], b[j,:]⟩.
// Coordinates outside the pattern are never computed — this is what makes
// attention over a graph's edge set O(E·d) instead of O(N²·d).
//
// Shapes: pattern r×c, a r×d, b c×d (b holds one d-vector per pattern
// column, so no transpose is materialized). The pattern's stored values are
// ignored; only its support matters. Returns a CSR with the pattern's exact
// support. Errors: ErrNilMatrix, ErrDimensionMismatch.
func SDDMM(pattern *CSR, a, b *dense.Matrix) (*CSR, error) {
	if pattern == nil || a == nil || b == nil {
		return nil, fmt.Errorf("%s: %w", opSDDMM, ErrNilMatrix)
	}
	if a.Rows() != pattern.rows || b.Rows() != pattern.cols || a.Cols() != b.Cols() {
		return nil, fmt.Errorf("%s: pattern %dx%d, a %dx%d, b %dx%d: %w",
			opSDDMM, pattern.rows, pattern.cols, a.Rows(), a.Cols(), b.Rows(), b.Cols(), ErrDimensionMismatch)
	}

	d := a.Cols()
	aData := a.Data()
	bData := b.Data()
	out := pattern.Clone()
	for i := 0; i < out.rows; i++ {
		aRow := aData[i*d : (i+1)*d]
		for p := out.rowPtr[i]; p < out.rowPtr[i+1]; p++ {
			bRow := bData[out.colIdx[p]*d : (out.colIdx[p]+1)*d]
			dot := 0.0
			for t := 0; t < d; t++ {
				dot += aRow[t] * bRow[t]
			}
			out.val[p] = dot
		}
	}

	return out, nil
}
