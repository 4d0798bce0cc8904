// SPDX-License-Identifier: MIT

// Package nn — multi-head sparse-masked attention layer.

package nn

import (
	"fmt"
	"math"

	"github.com/gudeh/dgl/backend"
	"github.com/gudeh/dgl/dense"
	"github.com/gudeh/dgl/propagate"
	"github.com/gudeh/dgl/sparse"
)

// Seed offsets keep the four projections decorrelated under one layer seed.
const (
	seedOffsetQuery = iota
	seedOffsetKey
	seedOffsetValue
	seedOffsetOut
)

// TransformerConv is one graph-transformer layer: the propagation weight
// between connected nodes is a per-head masked scaled dot-product recomputed
// every forward pass, replacing the static normalized operator with a
// data-dependent one. Attention is restricted to the graph's edge set.
type TransformerConv struct {
	heads   int
	headDim int
	query   *Linear
	key     *Linear
	value   *Linear
	proj    *Linear
	cfg     backend.Config
}

// NewTransformerConv builds an in→out layer with the given head count.
// out must divide evenly into heads (ErrHeadDivision otherwise).
func NewTransformerConv(in, out, heads int, cfg backend.Config, opts ...Option) (*TransformerConv, error) {
	if in <= 0 || out <= 0 || heads <= 0 {
		return nil, fmt.Errorf("NewTransformerConv(%d,%d,heads=%d): %w", in, out, heads, ErrBadDims)
	}
	if out%heads != 0 {
		return nil, fmt.Errorf("NewTransformerConv: out=%d heads=%d: %w", out, heads, ErrHeadDivision)
	}
	o := gatherOptions(opts)

	// Q/K/V follow the usual convention of bias-free projections.
	mk := func(offset int64, width int, bias bool) (*Linear, error) {
		lopts := []Option{WithSeed(o.seed + offset)}
		if !bias {
			lopts = append(lopts, WithoutBias())
		}
		return NewLinear(in, width, lopts...)
	}
	q, err := mk(seedOffsetQuery, out, false)
	if err != nil {
		return nil, fmt.Errorf("NewTransformerConv: %w", err)
	}
	k, err := mk(seedOffsetKey, out, false)
	if err != nil {
		return nil, fmt.Errorf("NewTransformerConv: %w", err)
	}
	v, err := mk(seedOffsetValue, out, false)
	if err != nil {
		return nil, fmt.Errorf("NewTransformerConv: %w", err)
	}
	proj, err := NewLinear(out, out, WithSeed(o.seed+seedOffsetOut))
	if err != nil {
		return nil, fmt.Errorf("NewTransformerConv: %w", err)
	}

	return &TransformerConv{
		heads:   heads,
		headDim: out / heads,
		query:   q,
		key:     k,
		value:   v,
		proj:    proj,
		cfg:     cfg,
	}, nil
}

// Heads returns the attention head count. O(1).
func (c *TransformerConv) Heads() int { return c.heads }

// Forward runs masked multi-head attention over the pattern's edge set:
// per-head column slices of the Q/K/V projections attend through
// propagate.Attention, head outputs concatenate, and the result is projected.
// pattern must be square with one row per node of x.
func (c *TransformerConv) Forward(pattern *sparse.CSR, x *dense.Matrix) (*dense.Matrix, error) {
	if pattern == nil || x == nil {
		return nil, fmt.Errorf("TransformerConv.Forward: %w", ErrNilInput)
	}
	q, err := c.query.Forward(x)
	if err != nil {
		return nil, fmt.Errorf("TransformerConv.Forward: %w", err)
	}
	k, err := c.key.Forward(x)
	if err != nil {
		return nil, fmt.Errorf("TransformerConv.Forward: %w", err)
	}
	v, err := c.value.Forward(x)
	if err != nil {
		return nil, fmt.Errorf("TransformerConv.Forward: %w", err)
	}

	scale := 1 / math.Sqrt(float64(c.headDim))
	headOut := make([]*dense.Matrix, c.heads)
	for h := 0; h < c.heads; h++ {
		lo, hi := h*c.headDim, (h+1)*c.headDim
		qh, err := dense.SubCols(q, lo, hi)
		if err != nil {
			return nil, fmt.Errorf("TransformerConv.Forward: head %d: %w", h, err)
		}
		kh, err := dense.SubCols(k, lo, hi)
		if err != nil {
			return nil, fmt.Errorf("TransformerConv.Forward: head %d: %w", h, err)
		}
		vh, err := dense.SubCols(v, lo, hi)
		if err != nil {
			return nil, fmt.Errorf("TransformerConv.Forward: head %d: %w", h, err)
		}
		out, _, err := propagate.Attention(pattern, qh, kh, vh,
			propagate.WithScale(scale), propagate.WithBackend(c.cfg))
		if err != nil {
			return nil, fmt.Errorf("TransformerConv.Forward: head %d: %w", h, err)
		}
		headOut[h] = out
	}

	merged, err := dense.ConcatCols(headOut...)
	if err != nil {
		return nil, fmt.Errorf("TransformerConv.Forward: %w", err)
	}
	final, err := c.proj.Forward(merged)
	if err != nil {
		return nil, fmt.Errorf("TransformerConv.Forward: %w", err)
	}

	return final, nil
}
