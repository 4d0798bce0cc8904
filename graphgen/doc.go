// Package graphgen produces small synthetic relations for examples, tests,
// and benchmarks.
//
// What:
//
//   - Cycle(n) — the n-vertex ring C_n as a symmetric adjacency relation.
//   - Star(n) — vertex 0 connected to every other vertex, symmetric.
//   - CompleteBipartite(n, m) — the dense n×m incidence: every node belongs
//     to every hyperedge.
//   - RandomBipartite(n, m, p, seed) — Bernoulli(p) incidence sampling.
//   - RandomSparse(n, p, seed) — Erdős–Rényi G(n,p), undirected, no
//     self-loops.
//
// Why:
//
// Propagation operators and layers are exercised against topologies, not
// datasets. The generators here are deterministic for a fixed seed: trial
// order is fixed (row-major, i<j for undirected pairs), so the same call
// always yields the same relation.
//
// Errors:
//
//   - ErrTooFewVertices — a size parameter is below the constructor's minimum.
//   - ErrBadProbability — p lies outside [0,1].
//
// All constructors return *sparse.COO with unit entry values; feed the result
// to propagate.Hypergraph, propagate.GCN, or a layer's Forward directly.
package graphgen
