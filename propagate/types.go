// SPDX-License-Identifier: MIT
// Package propagate: sentinel errors, functional options, and documented
// defaults. Option constructors panic only on nonsensical parameters
// (programmer error); data problems surface from the builders as sentinels.

package propagate

import (
	"errors"
	"math"

	"github.com/gudeh/dgl/backend"
)

// Sentinel errors for operator construction.
var (
	// ErrNilRelation indicates a nil incidence/adjacency relation or pattern.
	ErrNilRelation = errors.New("propagate: nil relation")

	// ErrNotSquare indicates a pairwise adjacency relation that is not n×n.
	ErrNotSquare = errors.New("propagate: adjacency must be square")

	// ErrIsolatedVertex indicates a node with degree zero; its scaling factor
	// would be non-finite. Disable the check with WithAllowIsolated().
	ErrIsolatedVertex = errors.New("propagate: vertex with zero degree")

	// ErrEmptyHyperedge indicates a hyperedge no node is incident to.
	ErrEmptyHyperedge = errors.New("propagate: hyperedge with zero degree")

	// ErrWeightLength indicates an edge-weight vector whose length differs
	// from the number of hyperedges (incidence columns).
	ErrWeightLength = errors.New("propagate: weight vector length mismatch")

	// ErrBadWeight indicates a NaN, ±Inf, or negative hyperedge weight.
	ErrBadWeight = errors.New("propagate: invalid edge weight")

	// ErrDimensionMismatch indicates attention operands that do not conform
	// to the pattern (query/key/value row counts or feature widths).
	ErrDimensionMismatch = errors.New("propagate: dimension mismatch")
)

// Defaults — single source of truth for zero-value behavior.
const (
	// DefaultAllowIsolated keeps the strict degree≥1 precondition enforced.
	DefaultAllowIsolated = false

	// DefaultSelfLoops adds I to the adjacency before degree computation,
	// the standard GCN augmentation.
	DefaultSelfLoops = true

	// selfLoopWeight is the value of each added diagonal entry.
	selfLoopWeight = 1.0

	// unitWeight is the hyperedge weight used when none are supplied.
	unitWeight = 1.0
)

const panicScaleInvalid = "propagate: WithScale: scale must be finite and > 0"

// Option mutates operator construction settings.
type Option func(*options)

// options stores the effective configuration after applying setters.
type options struct {
	edgeWeights   []float64      // hyperedge weights; nil ⇒ uniform unitWeight
	allowIsolated bool           // skip zero-degree rejection
	selfLoops     bool           // GCN: add I before degrees
	scale         float64        // attention: score multiplier; 0 ⇒ 1/√d
	cfg           backend.Config // compute policy for dense aggregation
}

// defaultOptions returns the documented defaults.
func defaultOptions() options {
	return options{
		allowIsolated: DefaultAllowIsolated,
		selfLoops:     DefaultSelfLoops,
		cfg:           backend.Sequential(),
	}
}

// WithEdgeWeights attaches a hyperedge weight vector (one weight per
// incidence column). Consumed by Hypergraph; ignored elsewhere.
func WithEdgeWeights(w []float64) Option {
	return func(o *options) { o.edgeWeights = w }
}

// WithAllowIsolated disables zero-degree rejection. Non-finite scaling
// factors then propagate into the operator, matching the raw numerical
// behavior of dividing by a zero degree.
func WithAllowIsolated() Option {
	return func(o *options) { o.allowIsolated = true }
}

// WithoutSelfLoops skips the A+I augmentation in GCN. The degree is then the
// plain row sum of A, and the operator support equals A's support exactly.
func WithoutSelfLoops() Option {
	return func(o *options) { o.selfLoops = false }
}

// WithScale overrides the attention score multiplier (default 1/√d where d
// is the query width). Panics on non-positive or non-finite values.
func WithScale(s float64) Option {
	if s <= 0 || math.IsNaN(s) || math.IsInf(s, 0) {
		panic(panicScaleInvalid)
	}

	return func(o *options) { o.scale = s }
}

// WithBackend sets the compute policy used for the dense aggregation step of
// Attention. Default is backend.Sequential().
func WithBackend(cfg backend.Config) Option {
	return func(o *options) { o.cfg = cfg }
}

// gatherOptions resolves the effective configuration.
func gatherOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
