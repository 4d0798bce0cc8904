// SPDX-License-Identifier: MIT

// Package graphgen — sentinel errors.
//
// Error policy:
//   - Only package-level sentinels are exposed; callers branch with errors.Is.
//   - Constructors attach context via fmt.Errorf("%s: ...: %w", method, Err).
//   - Generators never panic at runtime.

package graphgen

import "errors"

// ErrTooFewVertices indicates a size parameter (n, m) is smaller than the
// minimum the requested topology needs.
var ErrTooFewVertices = errors.New("graphgen: parameter too small")

// ErrBadProbability indicates an edge probability outside the closed
// interval [0,1].
var ErrBadProbability = errors.New("graphgen: probability out of range")
