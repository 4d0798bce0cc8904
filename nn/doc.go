// Package nn provides forward-only neural layers for graph feature
// diffusion: each layer computes X' = L · (X · W) where L is a propagation
// operator from package propagate and W a learned dense projection.
//
// What:
//
//   - Linear: dense projection with optional bias, Glorot-uniform
//     initialization under a caller-supplied seed (deterministic).
//   - HypergraphConv: one hypergraph convolution layer; builds the
//     normalized operator from an incidence relation and caches it by
//     relation fingerprint, so a static graph pays construction once.
//   - GraphConv: the plain-graph (GCN) counterpart over an adjacency
//     relation.
//   - TransformerConv: multi-head sparse-masked attention — per-head Q/K/V
//     projections, propagate.Attention over the graph's edge pattern, head
//     concatenation, output projection.
//   - Activations: ReLU, ELU, and a dense row Softmax for readout.
//
// Why:
//
//   - The propagation operator is the decision-bearing logic; the layers are
//     thin, auditable compositions of it with dense projections. They carry
//     weights but no gradients: training, optimizers, and autodiff belong to
//     a differentiable-tensor runtime and are out of scope for this library.
//
// Errors:
//
//   - ErrHeadDivision: output width not divisible by the head count.
//   - ErrNilInput: nil feature matrix or relation.
//   - Shape conflicts surface as dense.ErrDimensionMismatch or
//     sparse.ErrDimensionMismatch from the underlying kernels.
package nn
