// dictionary_io.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

// This file implements loading of the packed-edge binary dictionary
// format: a stream of little-endian uint64 words, one per edge, index
// 0 being the root node's first edge.

package skrafl

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// LoadDawg reads a packed-edge dictionary image from r and returns
// the resulting Dawg. It returns ErrMalformedDictionary if the byte
// count is not a multiple of 8 or if any edge's target index is not
// less than the number of edges.
func LoadDawg(r io.Reader) (*Dawg, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("skrafl: reading dictionary: %w", err)
	}
	if len(data)%8 != 0 {
		return nil, fmt.Errorf("%w: length %d is not a multiple of 8", ErrMalformedDictionary, len(data))
	}
	numEdges := len(data) / 8
	edges := make([]Edge, numEdges)
	for i := 0; i < numEdges; i++ {
		word := binary.LittleEndian.Uint64(data[i*8 : i*8+8])
		edges[i] = decodeEdge(word)
	}
	for i, e := range edges {
		if e.HasTarget() && int(e.Target) >= numEdges {
			return nil, fmt.Errorf("%w: edge %d targets out-of-range index %d", ErrMalformedDictionary, i, e.Target)
		}
	}
	return NewDawg(edges), nil
}

// LoadDawgFile opens path and loads a Dawg from it.
func LoadDawgFile(path string) (*Dawg, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("skrafl: opening dictionary %q: %w", path, err)
	}
	defer f.Close()
	return LoadDawg(f)
}
