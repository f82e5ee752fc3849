// movegen.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson

// This file implements the anchor-based two-phase play generator and
// the GeneratePlays/GeneratePlaysConcurrent facades: a per-row/column
// scan that extends left from an anchor square building a forced
// prefix, then extends right trying every rack tile the DAWG and the
// cross-checks allow.
//
// If the tiles already on the board to the left of an anchor don't
// form a walkable DAWG prefix, the anchor is abandoned outright rather
// than falling back to the DAWG root and silently discarding the
// unwalkable prefix.

package skrafl

import "sort"

// generator holds the mutable state of one in-progress aisle scan:
// the rack being drawn from, the partial word built up so far, and
// the plays found.
type generator struct {
	dawg        *Dawg
	aisle       []CheckedAisleSquare
	anchorIndex int
	horizontal  bool
	rack        *Rack
	partial     []rune
	blanks      []bool
	plays       []ScoredPlay
}

// initialLimit returns how many further tiles may be placed to the
// left of anchor: the run of empty, non-anchor squares immediately to
// its left.
func initialLimit(aisle []CheckedAisleSquare, anchor int) int {
	for limit := 0; limit < anchor; limit++ {
		sq := aisle[anchor-(limit+1)]
		if sq.Tile != nil || sq.IsAnchor {
			return limit
		}
	}
	return anchor
}

// leftPartStartIndex returns the index of the first square of the
// contiguous run of occupied squares immediately left of anchor, or
// anchor itself if the square just left of it is empty or off-board.
func leftPartStartIndex(aisle []CheckedAisleSquare, anchor int) int {
	for i := anchor - 1; i >= 0; i-- {
		if aisle[i].Tile == nil {
			return i + 1
		}
	}
	return 0
}

// generateFromAnchor runs the two-phase generator rooted at one
// anchor square of one aisle, returning every play it finds.
func generateFromAnchor(dawg *Dawg, aisle []CheckedAisleSquare, anchor int, rack *Rack, horizontal bool) []ScoredPlay {
	start := leftPartStartIndex(aisle, anchor)

	node := dawg.Root()
	partial := make([]rune, 0, BoardSize)
	blanks := make([]bool, 0, BoardSize)
	for i := start; i < anchor; i++ {
		tile := aisle[i].Tile
		edge, found := dawg.LeavingEdge(node, byte(tile.Letter))
		if !found {
			// The tiles already on the board left of the anchor are
			// not a DAWG prefix of any word: abandon this anchor.
			return nil
		}
		partial = append(partial, tile.Letter)
		blanks = append(blanks, false)
		if edge.HasTarget() {
			node = NodeIdx(edge.Target)
		} else {
			node = NodeIdx(noTarget)
		}
	}

	g := &generator{
		dawg:        dawg,
		aisle:       aisle,
		anchorIndex: anchor,
		horizontal:  horizontal,
		rack:        rack,
		partial:     partial,
		blanks:      blanks,
	}
	g.extendLeft(node, initialLimit(aisle, anchor))
	return g.plays
}

// extendLeft explores every way to prepend up to limit further tiles
// to node's partial word before handing off to extendRight at the
// anchor. It does not consult cross-checks: only tiles placed at or
// past the anchor (via extendRight) are cross-checked.
func (g *generator) extendLeft(node NodeIdx, limit int) {
	g.extendRight(node, g.anchorIndex)
	if limit <= 0 {
		return
	}
	g.dawg.ForEachChildEdge(node, func(edge Edge) {
		if !edge.HasTarget() {
			return
		}
		ch := rune(edge.Letter)
		fromBlank, ok := g.rack.Take(ch)
		if !ok {
			return
		}
		g.partial = append(g.partial, ch)
		g.blanks = append(g.blanks, fromBlank)
		g.extendLeft(NodeIdx(edge.Target), limit-1)
		g.partial = g.partial[:len(g.partial)-1]
		g.blanks = g.blanks[:len(g.blanks)-1]
		g.rack.PutBack(ch, fromBlank)
	})
}

// extendRight advances the walk one square to the right of (or at)
// nextIndex, either following the tile already there or trying every
// rack tile the cross-checks allow on an empty square.
func (g *generator) extendRight(node NodeIdx, nextIndex int) {
	if nextIndex >= BoardSize {
		return
	}
	sq := g.aisle[nextIndex]
	if sq.Tile != nil {
		edge, found := g.dawg.LeavingEdge(node, byte(sq.Tile.Letter))
		if !found {
			return
		}
		g.extendUsingEdge(edge, nextIndex, false, false)
		return
	}
	g.dawg.ForEachChildEdge(node, func(edge Edge) {
		ch := rune(edge.Letter)
		if sq.CrossChecks != nil && !sq.CrossChecks.Allows(ch) {
			return
		}
		fromBlank, ok := g.rack.Take(ch)
		if !ok {
			return
		}
		g.extendUsingEdge(edge, nextIndex, true, fromBlank)
		g.rack.PutBack(ch, fromBlank)
	})
}

// extendUsingEdge pushes edge's letter onto the partial word, checks
// whether a play can be emitted here, and if edge leads further,
// recurses to the next square.
func (g *generator) extendUsingEdge(edge Edge, placementIndex int, newlyPlaced, fromBlank bool) {
	g.partial = append(g.partial, rune(edge.Letter))
	g.blanks = append(g.blanks, newlyPlaced && fromBlank)

	g.checkAddPlay(edge, placementIndex+1)
	if edge.HasTarget() {
		g.extendRight(NodeIdx(edge.Target), placementIndex+1)
	}

	g.partial = g.partial[:len(g.partial)-1]
	g.blanks = g.blanks[:len(g.blanks)-1]
}

// checkAddPlay emits a play if the word built so far is complete,
// covers the anchor, and does not run into an already-occupied square
// just past its end.
func (g *generator) checkAddPlay(edge Edge, nextSquareIndex int) {
	if nextSquareIndex < BoardSize && g.aisle[nextSquareIndex].Tile != nil {
		return
	}
	if nextSquareIndex < g.anchorIndex+1 {
		return
	}
	if !edge.WordTerminator {
		return
	}

	startIndex := nextSquareIndex - len(g.partial)
	word := string(g.partial)
	tiles := append([]bool(nil), g.blanks...)
	score := ScorePlay(g.aisle, startIndex, word, tiles)

	direction := Horizontal
	if !g.horizontal {
		direction = Vertical
	}
	start := g.aisle[startIndex]
	g.plays = append(g.plays, ScoredPlay{
		StartRow:  start.Row,
		StartCol:  start.Col,
		Direction: direction,
		Word:      word,
		Score:     score,
	})
}

// generateAisle runs the generator over every anchor of one row
// (horizontal=true) or column (horizontal=false).
func generateAisle(dawg *Dawg, cb *CheckedBoard, index int, horizontal bool, rack *Rack) []ScoredPlay {
	aisle := cb.Aisle(index, horizontal)
	var plays []ScoredPlay
	for anchor := 0; anchor < BoardSize; anchor++ {
		if !aisle[anchor].IsAnchor {
			continue
		}
		plays = append(plays, generateFromAnchor(dawg, aisle, anchor, rack, horizontal)...)
	}
	return plays
}

// finalizePlays sorts plays by descending score (stable, so equal
// scores keep generation order) and truncates to the best k.
// k <= 0 means "no limit".
func finalizePlays(plays []ScoredPlay, k int) []ScoredPlay {
	sort.SliceStable(plays, func(i, j int) bool {
		return plays[i].Score > plays[j].Score
	})
	if k > 0 && len(plays) > k {
		plays = plays[:k]
	}
	return plays
}

// GeneratePlays computes every legal placement of rack onto board and
// returns the k highest-scoring ones, highest first. It is the
// sequential facade: one rack clone is shared, mutated and restored,
// across all 30 aisle scans.
func GeneratePlays(dawg *Dawg, board *Board, rack *Rack, k int) []ScoredPlay {
	cb := board.ToCheckedBoard(dawg)
	working := rack.Clone()

	var plays []ScoredPlay
	for i := 0; i < BoardSize; i++ {
		plays = append(plays, generateAisle(dawg, cb, i, true, working)...)
	}
	for i := 0; i < BoardSize; i++ {
		plays = append(plays, generateAisle(dawg, cb, i, false, working)...)
	}
	return finalizePlays(plays, k)
}

// GeneratePlaysConcurrent is the parallel variant of GeneratePlays:
// one goroutine per row and per column, each with its own rack clone,
// feeding a single buffered channel.
func GeneratePlaysConcurrent(dawg *Dawg, board *Board, rack *Rack, k int) []ScoredPlay {
	cb := board.ToCheckedBoard(dawg)
	results := make(chan []ScoredPlay, BoardSize*2)

	scan := func(index int, horizontal bool) {
		results <- generateAisle(dawg, cb, index, horizontal, rack.Clone())
	}
	for i := 0; i < BoardSize; i++ {
		go scan(i, true)
	}
	for i := 0; i < BoardSize; i++ {
		go scan(i, false)
	}

	var plays []ScoredPlay
	for i := 0; i < BoardSize*2; i++ {
		plays = append(plays, <-results...)
	}
	return finalizePlays(plays, k)
}
