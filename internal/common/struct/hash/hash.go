// Released under an MIT license. See LICENSE.

// Package hash provides mlisp's name to value mapping type.
package hash

import (
	"github.com/michaelmacinnis/mlisp/internal/common/interface/cell"
)

// T (hash) maps names to values. Names are kept in insertion order so that
// walking a hash is deterministic.
type T struct {
	keys []string
	m    map[string]cell.I
}

type hash = T

// New creates a new hash.
func New() *hash {
	return &hash{m: map[string]cell.I{}}
}

// Copy creates a new hash with a copy of every value.
func (h *hash) Copy() *hash {
	if h == nil {
		return nil
	}

	fresh := &hash{
		keys: make([]string, len(h.keys)),
		m:    make(map[string]cell.I, len(h.m)),
	}

	copy(fresh.keys, h.keys)

	for k, v := range h.m {
		fresh.m[k] = v.Copy()
	}

	return fresh
}

// Each calls f for every name and value in h, in insertion order,
// until f returns false.
func (h *hash) Each(f func(k string, v cell.I) bool) {
	if h == nil {
		return
	}

	for _, k := range h.keys {
		if !f(k, h.m[k]) {
			return
		}
	}
}

// Get retrieves the value associated with the name k in the hash h.
func (h *hash) Get(k string) cell.I {
	if h == nil {
		return nil
	}

	return h.m[k]
}

// Set associates the name k with the cell v in the hash h.
func (h *hash) Set(k string, v cell.I) {
	if _, ok := h.m[k]; !ok {
		h.keys = append(h.keys, k)
	}

	h.m[k] = v
}
