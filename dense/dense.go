// SPDX-License-Identifier: MIT

// Package dense — row-major storage and safe accessors.
//
// Purpose:
//   - Provide a cache-friendly flat buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors, never panic.
//   - Expose shared-storage views (Row, Data) for hot kernels that have already
//     validated shapes.

package dense

import (
	"fmt"
	"math"
)

// Method tags used in contextual error wrapping (no magic strings).
const (
	ctxAt  = "At"
	ctxSet = "Set"
	ctxRow = "Row"
)

// Matrix is a concrete row-major float64 matrix.
//   - rows, cols hold the shape (both >= 1 after construction).
//   - data is a flat buffer of length rows*cols (offset = i*cols + j).
type Matrix struct {
	rows, cols int
	data       []float64
}

// New allocates a zero-initialized rows×cols matrix.
// Returns ErrBadShape when either dimension is non-positive.
func New(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("New(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return &Matrix{rows: rows, cols: cols, data: make([]float64, rows*cols)}, nil
}

// FromSlice builds a rows×cols matrix copying the given row-major data.
// Returns ErrBadShape on non-positive dimensions and ErrLengthMismatch when
// len(data) != rows*cols. The input slice is not retained.
func FromSlice(rows, cols int, data []float64) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("FromSlice(%d,%d): %w", rows, cols, ErrBadShape)
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("FromSlice: len=%d want %d: %w", len(data), rows*cols, ErrLengthMismatch)
	}
	buf := make([]float64, len(data))
	copy(buf, data)

	return &Matrix{rows: rows, cols: cols, data: buf}, nil
}

// Eye returns the n×n identity matrix.
func Eye(n int) (*Matrix, error) {
	m, err := New(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// Rows returns the number of rows. O(1).
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns. O(1).
func (m *Matrix) Cols() int { return m.cols }

// At retrieves the element at (i, j).
// Returns ErrOutOfRange when the index is outside the matrix.
func (m *Matrix) At(i, j int) (float64, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return 0, denseErrorf(ctxAt, i, j, ErrOutOfRange)
	}

	return m.data[i*m.cols+j], nil
}

// Set assigns v at (i, j).
// Returns ErrOutOfRange on invalid indices and ErrNaNInf for non-finite v.
func (m *Matrix) Set(i, j int, v float64) error {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return denseErrorf(ctxSet, i, j, ErrOutOfRange)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return denseErrorf(ctxSet, i, j, ErrNaNInf)
	}
	m.data[i*m.cols+j] = v

	return nil
}

// Row returns row i as a shared-storage slice: mutations reflect in the
// matrix. Intended for kernels that validated bounds already.
// Returns ErrOutOfRange when i is invalid.
func (m *Matrix) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.rows {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}

	return m.data[i*m.cols : (i+1)*m.cols], nil
}

// Data returns the underlying row-major buffer (shared, not a copy).
// Length is always Rows()*Cols(); offset of (i,j) is i*Cols()+j.
func (m *Matrix) Data() []float64 { return m.data }

// Clone returns a deep copy, independent of the original. O(rows*cols).
func (m *Matrix) Clone() *Matrix {
	buf := make([]float64, len(m.data))
	copy(buf, m.data)

	return &Matrix{rows: m.rows, cols: m.cols, data: buf}
}

// denseErrorf wraps a sentinel with method context and coordinates,
// preserving errors.Is matching via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}
