// SPDX-License-Identifier: MIT
// Package dense: sentinel error set. All public functions return these
// sentinels (possibly wrapped with operation context via %w) and tests match
// them with errors.Is. Panics are reserved for programmer errors; none of the
// public surface panics on user input.

package dense

import "errors"

var (
	// ErrBadShape is returned when requested dimensions are invalid (r<=0 or c<=0).
	ErrBadShape = errors.New("dense: invalid shape")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	ErrOutOfRange = errors.New("dense: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes,
	// e.g. Add with different shapes, or MatMul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("dense: dimension mismatch")

	// ErrLengthMismatch indicates a flat data slice whose length disagrees
	// with rows*cols.
	ErrLengthMismatch = errors.New("dense: data length mismatch")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("dense: NaN or Inf encountered")

	// ErrNilMatrix indicates a nil *Matrix receiver or argument.
	ErrNilMatrix = errors.New("dense: nil matrix")
)
