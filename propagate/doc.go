// Package propagate builds the sparse linear operators that diffuse node
// features across one layer of message passing.
//
// What:
//
//   - Hypergraph(H, opts...) — given a node↔hyperedge incidence relation H
//     (n×m) and optional hyperedge weights w (default uniform 1), returns
//
//     L = Dv^(-1/2) · H · diag(w) · De^(-1) · Hᵀ · Dv^(-1/2)
//
//     where dv[i] = Σ_j H[i,j]·w[j] and de[j] = Σ_i H[i,j].
//
//   - GCN(A, opts...) — given a pairwise adjacency relation A (n×n), adds
//     self-loops before degree computation and returns
//
//     L = D^(-1/2) · (A+I) · D^(-1/2).
//
//   - Attention(pattern, Q, K, V, opts...) — the data-dependent variant:
//     instead of a fixed normalized operator, per-edge weights are a scaled
//     dot-product of learned query/key rows computed only on the pattern's
//     support (SDDMM), normalized by a softmax over each row's stored
//     entries, then used to aggregate value rows. Recomputed every call.
//
//   - Cache / Fingerprint — a static graph builds its operator once and
//     reuses it across epochs; per-graph batched training rebuilds per
//     relation. Fingerprints are xxhash digests of shape, indices, values.
//
// Guarantees:
//
//   - Both fixed operators are symmetric by construction (the same scaling
//     diagonal pre- and post-multiplies) and carry the support of the
//     underlying relation (plus self-loop diagonal in the GCN form).
//   - Entries are finite whenever every row and column has degree ≥ 1.
//
// Degree-zero policy:
//
//   - An isolated node or empty hyperedge makes the scaling factor
//     non-finite. By default both builders reject such inputs with
//     ErrIsolatedVertex / ErrEmptyHyperedge. WithAllowIsolated() disables
//     the check, letting non-finite values propagate for callers that want
//     the raw numerical behavior.
//
// Errors:
//
//   - ErrNilRelation, ErrNotSquare, ErrIsolatedVertex, ErrEmptyHyperedge,
//     ErrWeightLength, ErrBadWeight — see types.go.
//
// Complexity:
//
//   - Hypergraph: O(flops of H·Hᵀ) time, dominated by SpGEMM.
//   - GCN: O(nnz) time. Attention: O(E·d) time.
package propagate
