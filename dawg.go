// dawg.go
//
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf

// This file implements the Directed Acyclic Word Graph (DAWG)
// which encodes the dictionary of valid words as a packed array
// of fixed-width edges.

/*

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.

*/

package skrafl

import (
	"sync"

	"github.com/hashicorp/golang-lru/simplelru"
)

// Alphabet is the fixed 26-letter Scrabble alphabet. The DAWG, the
// Rack and CrossChecks all index letters by this alphabet; there is
// no support for per-locale alphabets (see DESIGN.md).
const Alphabet = "abcdefghijklmnopqrstuvwxyz"

// BlankLetter is the rune used on the rack and in board text to
// denote the blank wildcard tile.
const BlankLetter = '_'

// noTarget is the sentinel "no target" value for an Edge: all 32 bits
// set, computed with bitwise NOT rather than XOR so it is unambiguous.
const noTarget uint32 = ^uint32(0)

// NodeIdx identifies a Dawg node by the array index of its first edge.
// The root node is always index 0.
type NodeIdx uint32

// Edge is one outgoing transition of a Dawg node: a letter, two flag
// bits, and a target node index (or noTarget).
type Edge struct {
	Letter         byte
	WordTerminator bool
	NodeTerminator bool
	Target         uint32
}

// HasTarget reports whether the edge leads to another node.
func (e Edge) HasTarget() bool {
	return e.Target != noTarget
}

// decodeEdge unpacks one little-endian 64-bit word into an Edge, with
// the following bit layout:
//
//	bits 0-7   letter (ASCII 'a'..'z')
//	bit  8     word-terminator
//	bit  16    node-terminator
//	bits 32-63 target node index (all-ones = none)
func decodeEdge(word uint64) Edge {
	return Edge{
		Letter:         byte(word),
		WordTerminator: word&(1<<8) != 0,
		NodeTerminator: word&(1<<16) != 0,
		Target:         uint32(word >> 32),
	}
}

// Dawg is an immutable, packed directed acyclic word graph. It is
// safe for concurrent read access once loaded; nothing in this
// package mutates edges after load.
type Dawg struct {
	edges []Edge

	// crossCache memoises NewCrossChecks results, keyed by the
	// preceding/following strings; many anchors on a
	// realistic board share the same local context.
	crossMux   sync.Mutex
	crossCache *simplelru.LRU
}

// NewDawg wraps a pre-decoded edge slice in a Dawg. Callers normally
// obtain edges via LoadDawg rather than calling this directly.
func NewDawg(edges []Edge) *Dawg {
	lru, _ := simplelru.NewLRU(4096, nil)
	return &Dawg{edges: edges, crossCache: lru}
}

// Root returns the node index of the Dawg's root.
func (dawg *Dawg) Root() NodeIdx {
	return 0
}

// NumEdges returns the total number of edges in the packed array.
func (dawg *Dawg) NumEdges() int {
	return len(dawg.edges)
}

// edgeBlock returns the edges belonging to the node starting at
// offset, i.e. the contiguous run up to and including the first edge
// with NodeTerminator set.
func (dawg *Dawg) edgeBlock(offset uint32) []Edge {
	edges := dawg.edges
	if offset == noTarget || int(offset) >= len(edges) {
		// The dead-end sentinel node: no edge ever targets it on
		// purpose, but the generator synthesises it for a node whose
		// last-walked edge had no target. It has no children.
		return nil
	}
	for i := offset; int(i) < len(edges); i++ {
		if edges[i].NodeTerminator {
			return edges[offset : i+1]
		}
	}
	return edges[offset:]
}

// LeavingEdge scans the edge block at node for an edge whose letter
// is ch, stopping at the first node-terminator. Returns the edge and
// true if found.
func (dawg *Dawg) LeavingEdge(node NodeIdx, ch byte) (Edge, bool) {
	for _, e := range dawg.edgeBlock(uint32(node)) {
		if e.Letter == ch {
			return e, true
		}
	}
	return Edge{}, false
}

// Walk sequentially follows letters starting from node, returning the
// final edge traversed. An empty letters argument with no prior edge
// returns (Edge{}, false); callers needing "walk nothing, stay at
// root" semantics should special-case the empty string themselves
// (see computeCrossChecks).
func (dawg *Dawg) Walk(node NodeIdx, letters string) (Edge, bool) {
	var last Edge
	found := false
	for i := 0; i < len(letters); i++ {
		e, ok := dawg.LeavingEdge(node, letters[i])
		if !ok {
			return Edge{}, false
		}
		last = e
		found = true
		if !e.HasTarget() {
			// No further edges possible; only acceptable if this was
			// the last letter.
			if i == len(letters)-1 {
				return last, true
			}
			return Edge{}, false
		}
		node = NodeIdx(e.Target)
	}
	return last, found
}

// ForEachChildEdge invokes f on every edge in node's edge block.
func (dawg *Dawg) ForEachChildEdge(node NodeIdx, f func(Edge)) {
	for _, e := range dawg.edgeBlock(uint32(node)) {
		f(e)
	}
}

// Contains reports whether word is a complete word in the dictionary.
func (dawg *Dawg) Contains(word string) bool {
	if word == "" {
		return false
	}
	e, ok := dawg.Walk(dawg.Root(), word)
	return ok && e.WordTerminator
}

// Find is an alias for Contains kept for symmetry with the rest of
// the package's DAWG query vocabulary.
func (dawg *Dawg) Find(word string) bool {
	return dawg.Contains(word)
}
