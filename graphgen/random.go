// SPDX-License-Identifier: MIT

// Package graphgen — seeded stochastic constructors.
//
// Determinism:
//   - Each generator owns a rand.Rand built from the caller's seed; nothing
//     reads the global source.
//   - Trial order is fixed (row-major; i<j for undirected pairs), so a fixed
//     seed always reproduces the same relation, entry for entry.

package graphgen

import (
	"fmt"
	"math/rand"

	"github.com/gudeh/dgl/sparse"
)

const (
	methodRandomBipartite = "RandomBipartite"
	methodRandomSparse    = "RandomSparse"

	minRandomVertices = 1
	probMin           = 0.0
	probMax           = 1.0
)

// checkProbability validates p ∈ [0,1] for the given constructor tag.
func checkProbability(method string, p float64) error {
	if p < probMin || p > probMax || p != p {
		return fmt.Errorf("%s: p=%v not in [%g,%g]: %w",
			method, p, probMin, probMax, ErrBadProbability)
	}

	return nil
}

// RandomBipartite samples an n×m incidence relation where each (node,
// hyperedge) membership is included independently with probability p.
//
// Trials run row-major. Requires n ≥ 1, m ≥ 1, p ∈ [0,1].
//
// Complexity: O(n·m) Bernoulli trials.
func RandomBipartite(n, m int, p float64, seed int64) (*sparse.COO, error) {
	if n < minRandomVertices || m < minRandomVertices {
		return nil, fmt.Errorf("%s: n=%d, m=%d < min=%d: %w",
			methodRandomBipartite, n, m, minRandomVertices, ErrTooFewVertices)
	}
	if err := checkProbability(methodRandomBipartite, p); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(seed))
	var ri, ci []int
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			if rng.Float64() < p {
				ri = append(ri, i)
				ci = append(ci, j)
			}
		}
	}

	return sparse.NewCOO(n, m, ri, ci)
}

// RandomSparse samples an Erdős–Rényi graph G(n,p): each unordered pair
// {i,j} with i<j is an edge independently with probability p. No self-loops.
// Both directions of every sampled edge are emitted, so the relation is
// symmetric.
//
// Requires n ≥ 1, p ∈ [0,1].
//
// Complexity: O(n²) Bernoulli trials.
func RandomSparse(n int, p float64, seed int64) (*sparse.COO, error) {
	if n < minRandomVertices {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w",
			methodRandomSparse, n, minRandomVertices, ErrTooFewVertices)
	}
	if err := checkProbability(methodRandomSparse, p); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(seed))
	var ri, ci []int
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				ri = append(ri, i, j)
				ci = append(ci, j, i)
			}
		}
	}

	return sparse.NewCOO(n, n, ri, ci)
}
