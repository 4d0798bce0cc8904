// SPDX-License-Identifier: MIT

// Package graphgen — fixed-topology constructors.
//
// Contract (shared):
//   - Entries are emitted in a stable, documented order, so two calls with
//     equal parameters produce COOs with identical entry sequences.
//   - Adjacency constructors emit both directions of every undirected edge;
//     the resulting relation is symmetric by construction.
//   - Only sentinel errors are returned; no panics.

package graphgen

import (
	"fmt"

	"github.com/gudeh/dgl/sparse"
)

const (
	methodCycle             = "Cycle"
	methodStar              = "Star"
	methodCompleteBipartite = "CompleteBipartite"

	minCycleVertices     = 3
	minStarVertices      = 2
	minBipartiteVertices = 1
)

// Cycle returns the symmetric adjacency relation of the n-vertex ring C_n.
//
// Edges are emitted in ascending i as the pair (i, (i+1) mod n) followed by
// its reverse. Requires n ≥ 3.
//
// Complexity: O(n) time and space (2n entries).
func Cycle(n int) (*sparse.COO, error) {
	if n < minCycleVertices {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w",
			methodCycle, n, minCycleVertices, ErrTooFewVertices)
	}

	ri := make([]int, 0, 2*n)
	ci := make([]int, 0, 2*n)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		ri = append(ri, i, j)
		ci = append(ci, j, i)
	}

	return sparse.NewCOO(n, n, ri, ci)
}

// Star returns the symmetric adjacency relation of the n-vertex star S_n:
// vertex 0 is the hub, vertices 1..n-1 are leaves.
//
// Edges are emitted in ascending leaf index as (0, leaf) followed by its
// reverse. Requires n ≥ 2.
//
// Complexity: O(n) time and space (2(n-1) entries).
func Star(n int) (*sparse.COO, error) {
	if n < minStarVertices {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w",
			methodStar, n, minStarVertices, ErrTooFewVertices)
	}

	ri := make([]int, 0, 2*(n-1))
	ci := make([]int, 0, 2*(n-1))
	for leaf := 1; leaf < n; leaf++ {
		ri = append(ri, 0, leaf)
		ci = append(ci, leaf, 0)
	}

	return sparse.NewCOO(n, n, ri, ci)
}

// CompleteBipartite returns the dense n×m incidence relation: every one of
// the n nodes is a member of every one of the m hyperedges.
//
// Entries are emitted row-major. Requires n ≥ 1 and m ≥ 1.
//
// Complexity: O(n·m) time and space.
func CompleteBipartite(n, m int) (*sparse.COO, error) {
	if n < minBipartiteVertices || m < minBipartiteVertices {
		return nil, fmt.Errorf("%s: n=%d, m=%d < min=%d: %w",
			methodCompleteBipartite, n, m, minBipartiteVertices, ErrTooFewVertices)
	}

	ri := make([]int, 0, n*m)
	ci := make([]int, 0, n*m)
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			ri = append(ri, i)
			ci = append(ci, j)
		}
	}

	return sparse.NewCOO(n, m, ri, ci)
}
