// SPDX-License-Identifier: MIT

// Package propagate — operator caching for static graphs.
//
// In single-graph node classification the relation never changes between
// epochs, so the operator is built once and reused; batched per-graph
// training rebuilds per relation. The cache key is a content fingerprint of
// the relation, so two structurally identical relations share one entry.

package propagate

import (
	"encoding/binary"
	"math"
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/gudeh/dgl/sparse"
)

// wordSize is the byte width of one encoded integer/float in Fingerprint.
const wordSize = 8

// Fingerprint digests a relation's shape, coordinates, and values with
// xxhash. Entry order matters: the digest identifies the relation as
// supplied, not its canonical form. O(nnz) time.
func Fingerprint(relation *sparse.COO) uint64 {
	if relation == nil {
		return 0
	}
	h := xxhash.New()
	var buf [wordSize]byte

	writeInt := func(v int) {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		_, _ = h.Write(buf[:]) // xxhash.Write never fails
	}
	writeFloat := func(v float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		_, _ = h.Write(buf[:])
	}

	writeInt(relation.Rows())
	writeInt(relation.Cols())
	writeInt(relation.NNZ())
	for k := 0; k < relation.NNZ(); k++ {
		r, c, v, _ := relation.Entry(k) // k is always in range here
		writeInt(r)
		writeInt(c)
		writeFloat(v)
	}

	return h.Sum64()
}

// Cache stores built operators keyed by relation fingerprint. Safe for
// concurrent use; reads take a shared lock.
type Cache struct {
	mu      sync.RWMutex
	entries map[uint64]*sparse.CSR
}

// NewCache returns an empty operator cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[uint64]*sparse.CSR)}
}

// Get returns the cached operator for key, if present.
func (c *Cache) Get(key uint64) (*sparse.CSR, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	op, ok := c.entries[key]

	return op, ok
}

// Put stores an operator under key, replacing any previous entry.
func (c *Cache) Put(key uint64, op *sparse.CSR) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = op
}

// GetOrBuild returns the cached operator for key, building and storing it on
// a miss. Concurrent misses may build more than once; the last write wins —
// builds are deterministic, so every winner is identical.
func (c *Cache) GetOrBuild(key uint64, build func() (*sparse.CSR, error)) (*sparse.CSR, error) {
	if op, ok := c.Get(key); ok {
		return op, nil
	}
	op, err := build()
	if err != nil {
		return nil, err
	}
	c.Put(key, op)

	return op, nil
}

// Len reports the number of cached operators.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}
