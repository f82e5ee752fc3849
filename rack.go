// rack.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

// This file implements the Rack: a multiset of 26 letters plus the
// blank wildcard.

package skrafl

import "fmt"

// NLetters is the number of distinct letters in the alphabet.
const NLetters = 26

// BlankIndex is the rack-count slot reserved for blank tiles.
const BlankIndex = NLetters

// NTiles is the number of counted slots in a Rack (26 letters + blank).
const NTiles = NLetters + 1

// Rack is a multiset of available tiles, counted per letter with one
// extra slot for blanks.
type Rack struct {
	counts [NTiles]int
}

func letterIndex(ch rune) (int, bool) {
	if ch == BlankLetter {
		return BlankIndex, true
	}
	if ch >= 'a' && ch <= 'z' {
		return int(ch - 'a'), true
	}
	return 0, false
}

// NewRack builds a Rack from a string of lowercase letters and blank
// markers ('_'). It returns ErrInvalidRack if the string contains any
// other character.
func NewRack(contents string) (*Rack, error) {
	rack := &Rack{}
	for _, ch := range contents {
		idx, ok := letterIndex(ch)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidRack, ch)
		}
		rack.counts[idx]++
	}
	return rack, nil
}

// Clone returns an independent copy of the Rack, for use as the
// per-call working copy the generator mutates and restores.
func (rack *Rack) Clone() *Rack {
	clone := *rack
	return &clone
}

// Count returns the number of tiles available for ch (a letter or the
// blank marker).
func (rack *Rack) Count(ch rune) int {
	idx, ok := letterIndex(ch)
	if !ok {
		return 0
	}
	return rack.counts[idx]
}

// Len returns the total number of tiles on the rack.
func (rack *Rack) Len() int {
	n := 0
	for _, c := range rack.counts {
		n += c
	}
	return n
}

// Take removes one tile able to represent letter ch from the rack,
// preferring a specific letter tile over a blank. It reports which
// kind of tile was consumed: fromBlank is true if a blank had to
// stand in. ok is false (and the rack is left unmodified) if neither
// a specific letter nor a blank is available.
func (rack *Rack) Take(ch rune) (fromBlank bool, ok bool) {
	idx, valid := letterIndex(ch)
	if !valid {
		return false, false
	}
	if rack.counts[idx] > 0 {
		rack.counts[idx]--
		return false, true
	}
	if rack.counts[BlankIndex] > 0 {
		rack.counts[BlankIndex]--
		return true, true
	}
	return false, false
}

// PutBack returns a previously-taken tile to the rack. fromBlank must
// match the value returned by the corresponding Take call.
func (rack *Rack) PutBack(ch rune, fromBlank bool) {
	if fromBlank {
		rack.counts[BlankIndex]++
		return
	}
	idx, ok := letterIndex(ch)
	if !ok {
		return
	}
	rack.counts[idx]++
}

// String renders the rack's contents as a letter/blank string in
// alphabet order followed by any blanks, mainly for logging and
// tests.
func (rack *Rack) String() string {
	var out []byte
	for i := 0; i < NLetters; i++ {
		for n := 0; n < rack.counts[i]; n++ {
			out = append(out, Alphabet[i])
		}
	}
	for n := 0; n < rack.counts[BlankIndex]; n++ {
		out = append(out, byte(BlankLetter))
	}
	return string(out)
}
