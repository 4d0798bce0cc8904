// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set. Algorithms MUST return these sentinels
// (wrapped with operation context where coordinates help) and tests MUST
// check them via errors.Is. No public function panics on user input.

package sparse

import "errors"

var (
	// ErrBadShape is returned when requested dimensions are invalid (r<=0 or c<=0).
	ErrBadShape = errors.New("sparse: invalid shape")

	// ErrOutOfRange indicates an entry index outside [0,rows)×[0,cols).
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes,
	// e.g. MulDense where m.Cols != x.Rows.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrLengthMismatch indicates parallel slices of differing lengths
	// (row/col index slices, or a value/scaling vector of the wrong length).
	ErrLengthMismatch = errors.New("sparse: slice length mismatch")

	// ErrNaNInf signals a NaN or ±Inf value rejected at ingestion.
	ErrNaNInf = errors.New("sparse: NaN or Inf encountered")

	// ErrNilMatrix indicates a nil receiver or argument.
	ErrNilMatrix = errors.New("sparse: nil matrix")
)
