// SPDX-License-Identifier: MIT

// Package sparse — compressed-sparse-row storage.
//
// CSR keeps one index array per dimension of traversal: rowPtr[i]..rowPtr[i+1]
// brackets the entries of row i, colIdx/val hold their columns and values in
// ascending column order with no duplicate coordinates. Every kernel in this
// package relies on those two invariants.

package sparse

import (
	"fmt"
	"sort"
)

// CSR is a sparse matrix in compressed-sparse-row format.
// Invariants: len(rowPtr) == rows+1; rowPtr non-decreasing;
// columns strictly increasing within each row; no duplicate coordinates.
type CSR struct {
	rows, cols int
	rowPtr     []int
	colIdx     []int
	val        []float64
}

// Rows returns the row count. O(1).
func (m *CSR) Rows() int { return m.rows }

// Cols returns the column count. O(1).
func (m *CSR) Cols() int { return m.cols }

// NNZ returns the number of stored entries. O(1).
func (m *CSR) NNZ() int { return len(m.val) }

// At returns the value at (i, j); absent coordinates read as 0.
// Returns ErrOutOfRange for invalid indices. O(log nnz(row)) via binary search.
func (m *CSR) At(i, j int) (float64, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return 0, fmt.Errorf("CSR.At(%d,%d): %w", i, j, ErrOutOfRange)
	}
	lo, hi := m.rowPtr[i], m.rowPtr[i+1]
	pos := lo + sort.SearchInts(m.colIdx[lo:hi], j)
	if pos < hi && m.colIdx[pos] == j {
		return m.val[pos], nil
	}

	return 0, nil
}

// Row exposes row i as shared (cols, vals) slices in ascending column order.
// Callers must not mutate them. Returns ErrOutOfRange for an invalid row.
func (m *CSR) Row(i int) (cols []int, vals []float64, err error) {
	if i < 0 || i >= m.rows {
		return nil, nil, fmt.Errorf("CSR.Row(%d): %w", i, ErrOutOfRange)
	}
	lo, hi := m.rowPtr[i], m.rowPtr[i+1]

	return m.colIdx[lo:hi], m.val[lo:hi], nil
}

// RowSums returns the weighted row sums (degree vector over rows).
func (m *CSR) RowSums() []float64 {
	sums := make([]float64, m.rows)
	for i := 0; i < m.rows; i++ {
		for p := m.rowPtr[i]; p < m.rowPtr[i+1]; p++ {
			sums[i] += m.val[p]
		}
	}

	return sums
}

// ColSums returns the weighted column sums (degree vector over columns).
func (m *CSR) ColSums() []float64 {
	sums := make([]float64, m.cols)
	for p, c := range m.colIdx {
		sums[c] += m.val[p]
	}

	return sums
}

// Clone returns a deep copy, independent of the original. O(nnz).
func (m *CSR) Clone() *CSR {
	out := &CSR{
		rows:   m.rows,
		cols:   m.cols,
		rowPtr: make([]int, len(m.rowPtr)),
		colIdx: make([]int, len(m.colIdx)),
		val:    make([]float64, len(m.val)),
	}
	copy(out.rowPtr, m.rowPtr)
	copy(out.colIdx, m.colIdx)
	copy(out.val, m.val)

	return out
}

// Transpose returns mᵀ in CSR form via a counting pass over columns. O(nnz + cols).
func (m *CSR) Transpose() *CSR {
	nnz := len(m.val)
	rowPtr := make([]int, m.cols+1)
	for _, c := range m.colIdx {
		rowPtr[c+1]++
	}
	for j := 0; j < m.cols; j++ {
		rowPtr[j+1] += rowPtr[j]
	}

	colIdx := make([]int, nnz)
	val := make([]float64, nnz)
	next := make([]int, m.cols)
	copy(next, rowPtr[:m.cols])
	// Scanning rows in ascending order keeps transposed columns sorted.
	for i := 0; i < m.rows; i++ {
		for p := m.rowPtr[i]; p < m.rowPtr[i+1]; p++ {
			c := m.colIdx[p]
			colIdx[next[c]] = i
			val[next[c]] = m.val[p]
			next[c]++
		}
	}

	return &CSR{rows: m.cols, cols: m.rows, rowPtr: rowPtr, colIdx: colIdx, val: val}
}

// sortRowsAndMerge restores the CSR invariants after a raw row-bucketing
// pass: sorts each row by column and folds duplicate coordinates by summing
// their values, compacting storage in place.
func (m *CSR) sortRowsAndMerge() {
	write := 0
	newPtr := make([]int, m.rows+1)
	for i := 0; i < m.rows; i++ {
		lo, hi := m.rowPtr[i], m.rowPtr[i+1]
		if hi > lo {
			row := rowView{cols: m.colIdx[lo:hi], vals: m.val[lo:hi]}
			sort.Sort(row)
			for p := lo; p < hi; p++ {
				if write > newPtr[i] && m.colIdx[write-1] == m.colIdx[p] {
					m.val[write-1] += m.val[p] // duplicate coordinate: sum
					continue
				}
				m.colIdx[write] = m.colIdx[p]
				m.val[write] = m.val[p]
				write++
			}
		}
		newPtr[i+1] = write
	}
	m.rowPtr = newPtr
	m.colIdx = m.colIdx[:write]
	m.val = m.val[:write]
}

// rowView sorts one row's (cols, vals) pair in tandem by column.
type rowView struct {
	cols []int
	vals []float64
}

func (r rowView) Len() int           { return len(r.cols) }
func (r rowView) Less(i, j int) bool { return r.cols[i] < r.cols[j] }
func (r rowView) Swap(i, j int) {
	r.cols[i], r.cols[j] = r.cols[j], r.cols[i]
	r.vals[i], r.vals[j] = r.vals[j], r.vals[i]
}
