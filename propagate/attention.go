// SPDX-License-Identifier: MIT

// Package propagate — sparse-masked attention.

package propagate

import (
	"fmt"
	"math"

	"github.com/gudeh/dgl/dense"
	"github.com/gudeh/dgl/sparse"
)

const methodAttention = "Attention"

// Attention computes one pass of graph-masked scaled dot-product attention.
// Where the fixed operators bake degrees into a static L, here the
// "propagation weight" between i and j is data-dependent and recomputed on
// every call:
//
//	score[i,j] = ⟨q[i,:], k[j,:]⟩ · scale   for (i,j) in pattern only
//	weight     = RowSoftmax(score)           normalized over row support
//	out        = weight · v                  sparse-weighted aggregation
//
// The sparsity pattern is exactly the input graph's edge set — attention is
// never computed for disconnected pairs. scale defaults to 1/√d with d the
// query width; override with WithScale. The per-edge weight matrix is
// returned alongside the aggregation so callers can inspect or reuse it.
//
// Shapes: pattern r×c, q r×d, k c×d, v c×dv → out r×dv.
// Errors: ErrNilRelation, ErrDimensionMismatch.
// Complexity: O(E·d + E·dv) time — linear in edges, not node pairs.
func Attention(pattern *sparse.CSR, q, k, v *dense.Matrix, opts ...Option) (*dense.Matrix, *sparse.CSR, error) {
	if pattern == nil {
		return nil, nil, fmt.Errorf("%s: %w", methodAttention, ErrNilRelation)
	}
	if q == nil || k == nil || v == nil {
		return nil, nil, fmt.Errorf("%s: %w", methodAttention, ErrNilRelation)
	}
	if q.Rows() != pattern.Rows() || k.Rows() != pattern.Cols() || v.Rows() != pattern.Cols() || q.Cols() != k.Cols() {
		return nil, nil, fmt.Errorf("%s: pattern %dx%d, q %dx%d, k %dx%d, v %dx%d: %w",
			methodAttention, pattern.Rows(), pattern.Cols(),
			q.Rows(), q.Cols(), k.Rows(), k.Cols(), v.Rows(), v.Cols(), ErrDimensionMismatch)
	}
	o := gatherOptions(opts)

	scale := o.scale
	if scale == 0 {
		scale = 1 / math.Sqrt(float64(q.Cols()))
	}

	scores, err := sparse.SDDMM(pattern, q, k)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", methodAttention, err)
	}
	weights, err := sparse.RowSoftmax(scores.Scale(scale))
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", methodAttention, err)
	}
	out, err := weights.MulDense(v, o.cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", methodAttention, err)
	}

	return out, weights, nil
}
