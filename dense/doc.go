// Package dense provides a row-major float64 matrix carrying explicit shape
// metadata, with bounds-checked accessors and strict fail-fast linear algebra.
//
// What:
//
//   - Matrix: contiguous row-major storage with the index formula i*cols + j.
//   - Constructors: New (zeroed), FromSlice (adopting validation), Eye.
//   - Accessors: At/Set return errors instead of panicking; Row and Data
//     expose shared storage for hot kernels.
//   - Ops: MatMul, Add, Scale, Transpose, SubCols, ConcatCols — all validate
//     shapes up front and allocate fresh results; operands are never mutated.
//
// Why:
//
//   - Duck-typed tensor shapes defer mismatch failures to deep inside a
//     framework. Here every matrix knows its shape and every operation checks
//     conformability first, reporting ErrDimensionMismatch as a distinct error
//     kind rather than a generic runtime fault.
//
// Errors:
//
//   - ErrBadShape: requested dimensions are non-positive.
//   - ErrOutOfRange: an index is outside [0,rows)×[0,cols).
//   - ErrDimensionMismatch: operand shapes are not conformable.
//   - ErrLengthMismatch: a data slice disagrees with rows*cols.
//   - ErrNaNInf: a non-finite value was rejected by Set.
//
// Complexity:
//
//   - At/Set: O(1). MatMul: O(r·k·c). Add/Scale/Transpose: O(r·c).
package dense
