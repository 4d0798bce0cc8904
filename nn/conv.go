// SPDX-License-Identifier: MIT

// Package nn — convolution layers over fixed propagation operators.
//
// Both layers compute X' = L·(X·W). L depends only on the relation, so it is
// built through a fingerprint-keyed cache: single-graph training touches the
// builder once, per-graph batches rebuild per distinct relation.

package nn

import (
	"fmt"

	"github.com/gudeh/dgl/backend"
	"github.com/gudeh/dgl/dense"
	"github.com/gudeh/dgl/propagate"
	"github.com/gudeh/dgl/sparse"
)

// HypergraphConv is one hypergraph convolution layer: features are projected,
// then diffused through the normalized hypergraph operator of the incidence
// relation supplied at forward time.
type HypergraphConv struct {
	lin   *Linear
	cache *propagate.Cache
	cfg   backend.Config
	extra []propagate.Option
}

// NewHypergraphConv builds an in→out hypergraph convolution.
// cfg governs the sparse-dense diffusion step.
func NewHypergraphConv(in, out int, cfg backend.Config, opts ...Option) (*HypergraphConv, error) {
	o := gatherOptions(opts)
	lin, err := NewLinear(in, out, opts...)
	if err != nil {
		return nil, fmt.Errorf("NewHypergraphConv: %w", err)
	}

	return &HypergraphConv{lin: lin, cache: propagate.NewCache(), cfg: cfg, extra: o.operator}, nil
}

// Forward computes L·(x·W) for the given incidence relation.
// The operator is cached per relation fingerprint.
func (c *HypergraphConv) Forward(incidence *sparse.COO, x *dense.Matrix) (*dense.Matrix, error) {
	if incidence == nil || x == nil {
		return nil, fmt.Errorf("HypergraphConv.Forward: %w", ErrNilInput)
	}
	l, err := c.cache.GetOrBuild(propagate.Fingerprint(incidence), func() (*sparse.CSR, error) {
		return propagate.Hypergraph(incidence, c.extra...)
	})
	if err != nil {
		return nil, fmt.Errorf("HypergraphConv.Forward: %w", err)
	}
	h, err := c.lin.Forward(x)
	if err != nil {
		return nil, fmt.Errorf("HypergraphConv.Forward: %w", err)
	}
	out, err := l.MulDense(h, c.cfg)
	if err != nil {
		return nil, fmt.Errorf("HypergraphConv.Forward: %w", err)
	}

	return out, nil
}

// Linear exposes the layer's projection for weight loading.
func (c *HypergraphConv) Linear() *Linear { return c.lin }

// GraphConv is one plain-graph convolution layer over the symmetrically
// normalized A+I operator.
type GraphConv struct {
	lin   *Linear
	cache *propagate.Cache
	cfg   backend.Config
	extra []propagate.Option
}

// NewGraphConv builds an in→out graph convolution.
func NewGraphConv(in, out int, cfg backend.Config, opts ...Option) (*GraphConv, error) {
	o := gatherOptions(opts)
	lin, err := NewLinear(in, out, opts...)
	if err != nil {
		return nil, fmt.Errorf("NewGraphConv: %w", err)
	}

	return &GraphConv{lin: lin, cache: propagate.NewCache(), cfg: cfg, extra: o.operator}, nil
}

// Forward computes L·(x·W) for the given adjacency relation.
func (c *GraphConv) Forward(adjacency *sparse.COO, x *dense.Matrix) (*dense.Matrix, error) {
	if adjacency == nil || x == nil {
		return nil, fmt.Errorf("GraphConv.Forward: %w", ErrNilInput)
	}
	l, err := c.cache.GetOrBuild(propagate.Fingerprint(adjacency), func() (*sparse.CSR, error) {
		return propagate.GCN(adjacency, c.extra...)
	})
	if err != nil {
		return nil, fmt.Errorf("GraphConv.Forward: %w", err)
	}
	h, err := c.lin.Forward(x)
	if err != nil {
		return nil, fmt.Errorf("GraphConv.Forward: %w", err)
	}
	out, err := l.MulDense(h, c.cfg)
	if err != nil {
		return nil, fmt.Errorf("GraphConv.Forward: %w", err)
	}

	return out, nil
}

// Linear exposes the layer's projection for weight loading.
func (c *GraphConv) Linear() *Linear { return c.lin }
