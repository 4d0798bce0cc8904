// SPDX-License-Identifier: MIT
// Package nn: sentinel errors, layer options, and documented defaults.

package nn

import (
	"errors"

	"github.com/gudeh/dgl/propagate"
)

// Sentinel errors for layer construction and forward passes.
var (
	// ErrHeadDivision indicates an output width not divisible by the number
	// of attention heads.
	ErrHeadDivision = errors.New("nn: output width not divisible by heads")

	// ErrBadDims indicates a non-positive input/output width or head count.
	ErrBadDims = errors.New("nn: dimensions must be > 0")

	// ErrNilInput indicates a nil feature matrix or relation.
	ErrNilInput = errors.New("nn: nil input")
)

// DefaultSeed initializes weights when no seed is supplied. Any fixed seed
// keeps construction deterministic; expose your own for experiment sweeps.
const DefaultSeed int64 = 1

// Option mutates layer construction settings.
type Option func(*options)

// options stores the effective layer configuration.
type options struct {
	seed     int64
	bias     bool
	operator []propagate.Option // forwarded to the operator builder
}

func defaultLayerOptions() options {
	return options{seed: DefaultSeed, bias: true}
}

// WithSeed sets the weight-initialization seed.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

// WithoutBias disables the additive bias of the layer's projection.
func WithoutBias() Option {
	return func(o *options) { o.bias = false }
}

// WithOperatorOptions forwards builder options (edge weights, self-loop or
// isolated-vertex policy) to the propagation-operator construction done by
// convolution layers.
func WithOperatorOptions(opts ...propagate.Option) Option {
	return func(o *options) { o.operator = opts }
}

// gatherOptions resolves the effective configuration.
func gatherOptions(opts []Option) options {
	o := defaultLayerOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
