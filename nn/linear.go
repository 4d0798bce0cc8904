// SPDX-License-Identifier: MIT

// Package nn — dense projection layer.

package nn

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/gudeh/dgl/dense"
)

// glorotGain is the numerator of the Glorot-uniform limit sqrt(6/(in+out)).
const glorotGain = 6.0

// Linear is a dense projection y = x·W (+ b). Weights are Glorot-uniform
// initialized from the layer seed; the zero bias is the conventional start.
type Linear struct {
	in, out int
	weight  *dense.Matrix // in×out
	bias    []float64     // nil when constructed WithoutBias
}

// NewLinear builds an in→out projection.
// Returns ErrBadDims for non-positive widths.
func NewLinear(in, out int, opts ...Option) (*Linear, error) {
	if in <= 0 || out <= 0 {
		return nil, fmt.Errorf("NewLinear(%d,%d): %w", in, out, ErrBadDims)
	}
	o := gatherOptions(opts)

	w, err := glorotUniform(in, out, o.seed)
	if err != nil {
		return nil, fmt.Errorf("NewLinear: %w", err)
	}
	l := &Linear{in: in, out: out, weight: w}
	if o.bias {
		l.bias = make([]float64, out)
	}

	return l, nil
}

// In returns the input width. O(1).
func (l *Linear) In() int { return l.in }

// Out returns the output width. O(1).
func (l *Linear) Out() int { return l.out }

// Weight exposes the in×out weight matrix (shared storage) so callers can
// load pretrained parameters.
func (l *Linear) Weight() *dense.Matrix { return l.weight }

// Bias exposes the bias vector (shared; nil when the layer has none).
func (l *Linear) Bias() []float64 { return l.bias }

// Forward computes x·W (+ bias broadcast over rows).
// Shapes: (n×in) → (n×out); dense.ErrDimensionMismatch on conflict.
func (l *Linear) Forward(x *dense.Matrix) (*dense.Matrix, error) {
	if x == nil {
		return nil, fmt.Errorf("Linear.Forward: %w", ErrNilInput)
	}
	y, err := dense.MatMul(x, l.weight)
	if err != nil {
		return nil, fmt.Errorf("Linear.Forward: %w", err)
	}
	if l.bias != nil {
		data := y.Data()
		for i := 0; i < y.Rows(); i++ {
			row := data[i*l.out : (i+1)*l.out]
			for j := range row {
				row[j] += l.bias[j]
			}
		}
	}

	return y, nil
}

// glorotUniform draws an in×out matrix from U(-limit, limit) with
// limit = sqrt(6/(in+out)), scaled to the average of fan-in and fan-out so
// forward variance stays level across layers. Deterministic per seed.
func glorotUniform(in, out int, seed int64) (*dense.Matrix, error) {
	limit := math.Sqrt(glorotGain / float64(in+out))
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, in*out)
	for i := range data {
		data[i] = (2*rng.Float64() - 1) * limit
	}

	return dense.FromSlice(in, out, data)
}
