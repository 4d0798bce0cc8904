// SPDX-License-Identifier: MIT

// Package propagate — hypergraph operator construction.

package propagate

import (
	"fmt"
	"math"

	"github.com/gudeh/dgl/sparse"
)

const methodHypergraph = "Hypergraph"

// Hypergraph builds the symmetrically-normalized hypergraph propagation
// operator from a node↔hyperedge incidence relation H (rows = nodes,
// columns = hyperedges):
//
//	L = Dv^(-1/2) · H · diag(w) · De^(-1) · Hᵀ · Dv^(-1/2)
//
// Stage 1 (Validate): non-nil relation; weight vector length m, finite,
// non-negative.
// Stage 2 (Degrees): dv[i] = Σ_j H[i,j]·w[j]; de[j] = Σ_i H[i,j]; reject
// zero degrees unless WithAllowIsolated().
// Stage 3 (Assemble): scale columns of H by w/de, multiply by Hᵀ (SpGEMM),
// then pre- and post-multiply by the same Dv^(-1/2) diagonal — symmetry is
// structural, not incidental.
//
// Errors: ErrNilRelation, ErrWeightLength, ErrBadWeight, ErrIsolatedVertex,
// ErrEmptyHyperedge. Complexity: dominated by the SpGEMM step.
func Hypergraph(incidence *sparse.COO, opts ...Option) (*sparse.CSR, error) {
	if incidence == nil {
		return nil, fmt.Errorf("%s: %w", methodHypergraph, ErrNilRelation)
	}
	o := gatherOptions(opts)

	m := incidence.Cols()
	w := o.edgeWeights
	if w == nil {
		w = make([]float64, m)
		for j := range w {
			w[j] = unitWeight
		}
	} else {
		if len(w) != m {
			return nil, fmt.Errorf("%s: %d weights for %d hyperedges: %w", methodHypergraph, len(w), m, ErrWeightLength)
		}
		for j, wj := range w {
			if math.IsNaN(wj) || math.IsInf(wj, 0) || wj < 0 {
				return nil, fmt.Errorf("%s: weight[%d]=%g: %w", methodHypergraph, j, wj, ErrBadWeight)
			}
		}
	}

	h := incidence.ToCSR()

	// Hyperedge degrees: unweighted column sums of H.
	de := h.ColSums()
	// Node degrees: weighted row sums, dv = (H·diag(w)) row sums.
	hw, err := h.ScaleCols(w)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodHypergraph, err)
	}
	dv := hw.RowSums()

	if !o.allowIsolated {
		for j, d := range de {
			if d == 0 {
				return nil, fmt.Errorf("%s: hyperedge %d: %w", methodHypergraph, j, ErrEmptyHyperedge)
			}
		}
		for i, d := range dv {
			if d == 0 {
				return nil, fmt.Errorf("%s: vertex %d: %w", methodHypergraph, i, ErrIsolatedVertex)
			}
		}
	}

	// H · diag(w) · De^(-1): fold both diagonals into one column scaling.
	wde := make([]float64, m)
	for j := range wde {
		wde[j] = w[j] / de[j] // de[j]==0 only under WithAllowIsolated
	}
	scaled, err := h.ScaleCols(wde)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodHypergraph, err)
	}

	// (H · diag(w) · De^(-1)) · Hᵀ — node-by-node support.
	s, err := scaled.MulCSR(h.Transpose())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodHypergraph, err)
	}

	// Symmetric normalization by the node degrees.
	dvInvSqrt := make([]float64, len(dv))
	for i, d := range dv {
		dvInvSqrt[i] = 1 / math.Sqrt(d)
	}

	return scaleSymmetric(s, dvInvSqrt)
}

// scaleSymmetric computes diag(d)·m·diag(d), the shared final step of both
// fixed operators.
func scaleSymmetric(m *sparse.CSR, d []float64) (*sparse.CSR, error) {
	out, err := m.ScaleRows(d)
	if err != nil {
		return nil, err
	}

	return out.ScaleCols(d)
}
