// Package dgl provides the numeric building blocks of graph deep learning:
// sparse matrices, normalized propagation operators, sparse-masked attention,
// and forward-only neural layers that diffuse node features across graph
// structure.
//
// 🚀 What is dgl?
//
//	A deterministic, CPU-native library that brings together:
//		• dense/     — typed row-major matrices with explicit shape metadata
//		• sparse/    — COO/CSR storage, SpMM, SpGEMM, SDDMM, sparse softmax
//		• propagate/ — symmetrically-normalized hypergraph & graph operators,
//		               sparse-masked attention, and a fingerprint-keyed cache
//		• nn/        — Linear, HypergraphConv, GraphConv, TransformerConv
//		• backend/   — explicit compute configuration (workers, vector lanes)
//		• graphgen/  — seeded synthetic relations for tests and examples
//
// ✨ Why choose dgl?
//
//   - Explicit over ambient – no global backend state, no env-var switches;
//     compute policy is a backend.Config you pass in
//   - Fail fast – sentinel errors for shape mismatches and isolated vertices
//     instead of silently propagating NaN/Inf
//   - Deterministic – fixed loop orders, seeded generators, stable results
//   - Pure Go – no cgo, no accelerator toolkits required
//
// Out of scope by design: automatic differentiation, optimizers and training
// loops, GPU placement, dataset download/caching, and metric computation.
// The layers in nn/ are forward/inference modules; gradients are a concern
// for a differentiable-tensor runtime, not this library.
package dgl
