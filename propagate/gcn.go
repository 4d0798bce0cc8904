// SPDX-License-Identifier: MIT

// Package propagate — plain-graph (GCN) operator construction.

package propagate

import (
	"fmt"
	"math"

	"github.com/gudeh/dgl/sparse"
)

const methodGCN = "GCN"

// GCN builds the symmetrically-normalized propagation operator for a
// pairwise adjacency relation A (n×n):
//
//	L = D^(-1/2) · (A+I) · D^(-1/2)
//
// Self-loops are added before degree computation (D is the row sum of A+I);
// WithoutSelfLoops() skips the augmentation. A diagonal entry already present
// in A sums with the added self-loop, standard COO duplicate semantics.
//
// The support of L equals support(A) ∪ diagonal (or exactly support(A) under
// WithoutSelfLoops). Symmetric input yields a symmetric operator.
//
// Errors: ErrNilRelation, ErrNotSquare, ErrIsolatedVertex.
// Complexity: O(nnz + n).
func GCN(adjacency *sparse.COO, opts ...Option) (*sparse.CSR, error) {
	if adjacency == nil {
		return nil, fmt.Errorf("%s: %w", methodGCN, ErrNilRelation)
	}
	if adjacency.Rows() != adjacency.Cols() {
		return nil, fmt.Errorf("%s: %dx%d: %w", methodGCN, adjacency.Rows(), adjacency.Cols(), ErrNotSquare)
	}
	o := gatherOptions(opts)

	n := adjacency.Rows()
	nnz := adjacency.NNZ()

	// Re-expand the relation, appending the identity when self-loops are on.
	extra := 0
	if o.selfLoops {
		extra = n
	}
	ri := make([]int, 0, nnz+extra)
	ci := make([]int, 0, nnz+extra)
	vv := make([]float64, 0, nnz+extra)
	for k := 0; k < nnz; k++ {
		r, c, v, err := adjacency.Entry(k)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodGCN, err)
		}
		ri = append(ri, r)
		ci = append(ci, c)
		vv = append(vv, v)
	}
	if o.selfLoops {
		for i := 0; i < n; i++ {
			ri = append(ri, i)
			ci = append(ci, i)
			vv = append(vv, selfLoopWeight)
		}
	}
	aug, err := sparse.NewCOO(n, n, ri, ci, sparse.WithValues(vv))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodGCN, err)
	}
	a := aug.ToCSR()

	deg := a.RowSums()
	if !o.allowIsolated {
		for i, d := range deg {
			if d == 0 {
				return nil, fmt.Errorf("%s: vertex %d: %w", methodGCN, i, ErrIsolatedVertex)
			}
		}
	}

	dInvSqrt := make([]float64, n)
	for i, d := range deg {
		dInvSqrt[i] = 1 / math.Sqrt(d) // +Inf only under WithAllowIsolated
	}

	return scaleSymmetric(a, dInvSqrt)
}
