// SPDX-License-Identifier: MIT

// Package dense — linear-algebra kernels over Matrix.
//
// All kernels validate operands fail-fast, allocate a fresh result, and keep
// deterministic loop orders (i→k→j for MatMul, flat scans elsewhere).

package dense

import "fmt"

// Operation tags for unified error wrapping (no magic strings).
const (
	opMatMul     = "MatMul"
	opAdd        = "Add"
	opScale      = "Scale"
	opTranspose  = "Transpose"
	opSubCols    = "SubCols"
	opConcatCols = "ConcatCols"
)

// MatMul returns a·b.
// Shapes: (r×k)·(k×c) → r×c; returns ErrDimensionMismatch otherwise.
// Loop order i→k→j streams b row-wise for cache friendliness.
func MatMul(a, b *Matrix) (*Matrix, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("%s: %w", opMatMul, ErrNilMatrix)
	}
	if a.cols != b.rows {
		return nil, fmt.Errorf("%s: (%dx%d)·(%dx%d): %w", opMatMul, a.rows, a.cols, b.rows, b.cols, ErrDimensionMismatch)
	}
	out := &Matrix{rows: a.rows, cols: b.cols, data: make([]float64, a.rows*b.cols)}
	for i := 0; i < a.rows; i++ {
		aRow := a.data[i*a.cols : (i+1)*a.cols]
		oRow := out.data[i*b.cols : (i+1)*b.cols]
		for k := 0; k < a.cols; k++ {
			av := aRow[k]
			if av == 0 {
				continue // skip structural zeros cheaply
			}
			bRow := b.data[k*b.cols : (k+1)*b.cols]
			for j := 0; j < b.cols; j++ {
				oRow[j] += av * bRow[j]
			}
		}
	}

	return out, nil
}

// Add returns a+b for identically-shaped operands.
func Add(a, b *Matrix) (*Matrix, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("%s: %w", opAdd, ErrNilMatrix)
	}
	if a.rows != b.rows || a.cols != b.cols {
		return nil, fmt.Errorf("%s: (%dx%d)+(%dx%d): %w", opAdd, a.rows, a.cols, b.rows, b.cols, ErrDimensionMismatch)
	}
	out := a.Clone()
	for i := range out.data {
		out.data[i] += b.data[i]
	}

	return out, nil
}

// Scale returns s·a.
func Scale(a *Matrix, s float64) (*Matrix, error) {
	if a == nil {
		return nil, fmt.Errorf("%s: %w", opScale, ErrNilMatrix)
	}
	out := a.Clone()
	for i := range out.data {
		out.data[i] *= s
	}

	return out, nil
}

// Transpose returns aᵀ as a fresh matrix (copy, not a strided view).
func Transpose(a *Matrix) (*Matrix, error) {
	if a == nil {
		return nil, fmt.Errorf("%s: %w", opTranspose, ErrNilMatrix)
	}
	out := &Matrix{rows: a.cols, cols: a.rows, data: make([]float64, len(a.data))}
	for i := 0; i < a.rows; i++ {
		for j := 0; j < a.cols; j++ {
			out.data[j*a.rows+i] = a.data[i*a.cols+j]
		}
	}

	return out, nil
}

// SubCols materializes columns [lo, hi) as an independent rows×(hi-lo) matrix.
// Returns ErrOutOfRange when the window is invalid or empty.
func SubCols(a *Matrix, lo, hi int) (*Matrix, error) {
	if a == nil {
		return nil, fmt.Errorf("%s: %w", opSubCols, ErrNilMatrix)
	}
	if lo < 0 || hi > a.cols || lo >= hi {
		return nil, fmt.Errorf("%s[%d:%d): %w", opSubCols, lo, hi, ErrOutOfRange)
	}
	width := hi - lo
	out := &Matrix{rows: a.rows, cols: width, data: make([]float64, a.rows*width)}
	for i := 0; i < a.rows; i++ {
		copy(out.data[i*width:(i+1)*width], a.data[i*a.cols+lo:i*a.cols+hi])
	}

	return out, nil
}

// ConcatCols joins matrices with equal row counts side by side, in argument
// order. Returns ErrNilMatrix for an empty argument list or nil member and
// ErrDimensionMismatch when row counts differ.
func ConcatCols(ms ...*Matrix) (*Matrix, error) {
	if len(ms) == 0 {
		return nil, fmt.Errorf("%s: %w", opConcatCols, ErrNilMatrix)
	}
	rows, width := 0, 0
	for _, m := range ms {
		if m == nil {
			return nil, fmt.Errorf("%s: %w", opConcatCols, ErrNilMatrix)
		}
		if rows == 0 {
			rows = m.rows
		} else if m.rows != rows {
			return nil, fmt.Errorf("%s: rows %d vs %d: %w", opConcatCols, rows, m.rows, ErrDimensionMismatch)
		}
		width += m.cols
	}
	out := &Matrix{rows: rows, cols: width, data: make([]float64, rows*width)}
	for i := 0; i < rows; i++ {
		off := 0
		for _, m := range ms {
			copy(out.data[i*width+off:i*width+off+m.cols], m.data[i*m.cols:(i+1)*m.cols])
			off += m.cols
		}
	}

	return out, nil
}
