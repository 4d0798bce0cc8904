// SPDX-License-Identifier: MIT

// Package sparse — coordinate-format construction.
//
// COO is the ingestion format: a dataset's edge list or incidence pairs drop
// straight into NewCOO. The struct is immutable once built (input slices are
// copied, accessors hand out copies), mirroring the lifecycle of a relation
// that is rebuilt per graph and never mutated in place.

package sparse

import (
	"fmt"
	"math"
)

// defaultEntryValue is the weight assigned to every entry when no explicit
// values are supplied: the relation is then a 0/1 structural matrix.
const defaultEntryValue = 1.0

// Option mutates COO construction settings. Constructors panic only on
// programmer errors (none currently); data errors surface from NewCOO.
type Option func(*cooOptions)

// cooOptions carries resolved construction settings.
type cooOptions struct {
	values []float64 // per-entry weights; nil ⇒ uniform defaultEntryValue
}

// WithValues attaches an explicit per-entry value vector. Its length must
// equal the number of index pairs; all values must be finite.
func WithValues(values []float64) Option {
	return func(o *cooOptions) { o.values = values }
}

// COO is a sparse matrix in coordinate format: shape plus parallel
// (row, col, value) slices. Entries keep insertion order; duplicates are
// legal and are summed when converting to CSR.
type COO struct {
	rows, cols int
	rowIdx     []int
	colIdx     []int
	val        []float64
}

// NewCOO validates and copies an index-pair relation into a COO matrix.
//
// Stage 1 (Validate): shape positive; index slices same length; every index
// in range; explicit values (if any) same length and finite.
// Stage 2 (Copy): clone all slices so the caller cannot mutate the relation.
//
// Errors: ErrBadShape, ErrLengthMismatch, ErrOutOfRange, ErrNaNInf.
// Complexity: O(nnz) time and space.
func NewCOO(rows, cols int, rowIdx, colIdx []int, opts ...Option) (*COO, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewCOO(%d,%d): %w", rows, cols, ErrBadShape)
	}
	if len(rowIdx) != len(colIdx) {
		return nil, fmt.Errorf("NewCOO: %d row indices vs %d col indices: %w", len(rowIdx), len(colIdx), ErrLengthMismatch)
	}

	var o cooOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.values != nil && len(o.values) != len(rowIdx) {
		return nil, fmt.Errorf("NewCOO: %d values vs %d entries: %w", len(o.values), len(rowIdx), ErrLengthMismatch)
	}

	nnz := len(rowIdx)
	ri := make([]int, nnz)
	ci := make([]int, nnz)
	vv := make([]float64, nnz)
	for k := 0; k < nnz; k++ {
		r, c := rowIdx[k], colIdx[k]
		if r < 0 || r >= rows || c < 0 || c >= cols {
			return nil, fmt.Errorf("NewCOO: entry %d at (%d,%d): %w", k, r, c, ErrOutOfRange)
		}
		v := defaultEntryValue
		if o.values != nil {
			v = o.values[k]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("NewCOO: entry %d value %g: %w", k, v, ErrNaNInf)
			}
		}
		ri[k], ci[k], vv[k] = r, c, v
	}

	return &COO{rows: rows, cols: cols, rowIdx: ri, colIdx: ci, val: vv}, nil
}

// Rows returns the row count. O(1).
func (m *COO) Rows() int { return m.rows }

// Cols returns the column count. O(1).
func (m *COO) Cols() int { return m.cols }

// NNZ returns the number of stored entries (duplicates counted). O(1).
func (m *COO) NNZ() int { return len(m.val) }

// Entry returns the k-th stored entry in insertion order.
// Returns ErrOutOfRange when k is not in [0, NNZ()).
func (m *COO) Entry(k int) (row, col int, val float64, err error) {
	if k < 0 || k >= len(m.val) {
		return 0, 0, 0, fmt.Errorf("COO.Entry(%d): %w", k, ErrOutOfRange)
	}

	return m.rowIdx[k], m.colIdx[k], m.val[k], nil
}

// RowSums returns the weighted row sums — the degree vector over rows.
// For a 0/1 incidence matrix this is the per-node incidence count.
func (m *COO) RowSums() []float64 {
	sums := make([]float64, m.rows)
	for k, r := range m.rowIdx {
		sums[r] += m.val[k]
	}

	return sums
}

// ColSums returns the weighted column sums — the degree vector over columns.
func (m *COO) ColSums() []float64 {
	sums := make([]float64, m.cols)
	for k, c := range m.colIdx {
		sums[c] += m.val[k]
	}

	return sums
}

// ToCSR compresses the relation: entries are bucketed by row via counting
// sort, ordered by column inside each row, and duplicate coordinates summed.
// The receiver is unchanged. O(nnz + rows + Σ row sort) time.
func (m *COO) ToCSR() *CSR {
	nnz := len(m.val)

	// Counting sort by row: rowPtr[i+1] first holds the count of row i.
	rowPtr := make([]int, m.rows+1)
	for _, r := range m.rowIdx {
		rowPtr[r+1]++
	}
	for i := 0; i < m.rows; i++ {
		rowPtr[i+1] += rowPtr[i]
	}

	colIdx := make([]int, nnz)
	val := make([]float64, nnz)
	next := make([]int, m.rows)
	copy(next, rowPtr[:m.rows])
	for k := 0; k < nnz; k++ {
		r := m.rowIdx[k]
		colIdx[next[r]] = m.colIdx[k]
		val[next[r]] = m.val[k]
		next[r]++
	}

	c := &CSR{rows: m.rows, cols: m.cols, rowPtr: rowPtr, colIdx: colIdx, val: val}
	c.sortRowsAndMerge()

	return c
}
