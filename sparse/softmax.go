// SPDX-License-Identifier: MIT

// Package sparse — softmax over stored entries.

package sparse

import (
	"fmt"
	"math"
)

const opRowSoftmax = "RowSoftmax"

// RowSoftmax normalizes each row's stored entries with a numerically-stable
// softmax (max-subtracted exponentials). Absent coordinates stay absent:
// normalization runs only over a row's support, never over all columns —
// the "sparse softmax" of masked attention.
//
// A row with a single stored entry always normalizes to exactly 1.0.
// Empty rows are left empty. Returns a fresh CSR with identical support.
func RowSoftmax(m *CSR) (*CSR, error) {
	if m == nil {
		return nil, fmt.Errorf("%s: %w", opRowSoftmax, ErrNilMatrix)
	}
	out := m.Clone()
	for i := 0; i < out.rows; i++ {
		lo, hi := out.rowPtr[i], out.rowPtr[i+1]
		if lo == hi {
			continue // empty row: nothing to normalize
		}

		maxv := math.Inf(-1)
		for p := lo; p < hi; p++ {
			if out.val[p] > maxv {
				maxv = out.val[p]
			}
		}
		sum := 0.0
		for p := lo; p < hi; p++ {
			out.val[p] = math.Exp(out.val[p] - maxv)
			sum += out.val[p]
		}
		for p := lo; p < hi; p++ {
			out.val[p] /= sum
		}
	}

	return out, nil
}
