// Package sparse implements coordinate (COO) and compressed-sparse-row (CSR)
// matrices together with the kernels graph message passing is built from.
//
// What:
//
//   - COO: an immutable relation over rows×cols — parallel (row, col, value)
//     slices, value defaulting to 1 per entry. This is the incidence or
//     adjacency relation a dataset supplies.
//   - CSR: compressed rows for fast row iteration; built from COO by sorting
//     entries and summing duplicates.
//   - Degree vectors: RowSums/ColSums (weighted row and column sums).
//   - Diagonal scaling: ScaleRows/ScaleCols compute diag(d)·M and M·diag(d).
//   - Kernels:
//     MulDense   — sparse×dense product (SpMM), optionally parallel over
//     row blocks via a backend.Config;
//     MulCSR     — sparse×sparse product (SpGEMM, Gustavson's row scheme);
//     Transpose  — CSC-style flip in O(nnz);
//     SDDMM      — sampled dense-dense matmul: dot products of dense row
//     pairs restricted to an existing sparsity pattern;
//     RowSoftmax — softmax over each row's stored entries only.
//
// Why:
//
//   - One message-passing layer is a handful of sparse products. Keeping the
//     kernels small, deterministic, and strictly validated makes the operators
//     built on top of them (package propagate) trivial to audit.
//
// Errors:
//
//   - ErrBadShape, ErrOutOfRange, ErrDimensionMismatch, ErrLengthMismatch,
//     ErrNaNInf — see errors.go. All matched via errors.Is.
//
// Complexity:
//
//   - ToCSR: O(nnz + rows). MulDense: O(nnz·k). MulCSR: O(Σ flops) with an
//     O(cols) dense accumulator per row. SDDMM: O(nnz·k). RowSoftmax: O(nnz).
//
// See package propagate for the normalized operators assembled from these.
package sparse
