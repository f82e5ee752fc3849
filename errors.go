// errors.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

// This file declares the sentinel error values returned at the
// construction boundaries of the package. GeneratePlays itself never
// returns an error: a play that cannot be formed is simply absent from
// its result.

package skrafl

import "errors"

var (
	// ErrInvalidBoardContent is returned when a textual board contains
	// a character other than 'a'..'z', the blank marker or a space.
	ErrInvalidBoardContent = errors.New("skrafl: invalid board content")

	// ErrInvalidRack is returned when a rack string contains a
	// character other than 'a'..'z' or the blank marker.
	ErrInvalidRack = errors.New("skrafl: invalid rack content")

	// ErrMalformedDictionary is returned when a dictionary image's
	// size is not a multiple of 8, or when an edge's target index
	// falls outside the edge array.
	ErrMalformedDictionary = errors.New("skrafl: malformed dictionary image")
)
