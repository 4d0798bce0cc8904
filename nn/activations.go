// SPDX-License-Identifier: MIT

// Package nn — elementwise activations and dense readout softmax.

package nn

import (
	"math"

	"github.com/gudeh/dgl/dense"
)

// ReLU returns max(0, v) elementwise as a fresh matrix. Nil in, nil out.
func ReLU(m *dense.Matrix) *dense.Matrix {
	if m == nil {
		return nil
	}
	out := m.Clone()
	data := out.Data()
	for i, v := range data {
		if v < 0 {
			data[i] = 0
		}
	}

	return out
}

// ELU returns v for v ≥ 0 and α·(e^v − 1) otherwise, elementwise.
// Alpha defaults are the caller's concern; the conventional value is 1.
func ELU(m *dense.Matrix, alpha float64) *dense.Matrix {
	if m == nil {
		return nil
	}
	out := m.Clone()
	data := out.Data()
	for i, v := range data {
		if v < 0 {
			data[i] = alpha * (math.Exp(v) - 1)
		}
	}

	return out
}

// Softmax normalizes each dense row with a numerically-stable softmax —
// the readout step turning per-class scores into probabilities.
func Softmax(m *dense.Matrix) *dense.Matrix {
	if m == nil {
		return nil
	}
	out := m.Clone()
	data := out.Data()
	cols := out.Cols()
	for i := 0; i < out.Rows(); i++ {
		row := data[i*cols : (i+1)*cols]
		maxv := math.Inf(-1)
		for _, v := range row {
			if v > maxv {
				maxv = v
			}
		}
		sum := 0.0
		for j, v := range row {
			row[j] = math.Exp(v - maxv)
			sum += row[j]
		}
		for j := range row {
			row[j] /= sum
		}
	}

	return out
}
