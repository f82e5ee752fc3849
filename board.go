// board.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson

// This file implements the Board, its Squares, the derived
// CheckedBoard, and the axis-indexed helpers the generator consumes:
// the per-row/column arrays of squares, cross-checks and anchor
// flags, with the premium layout computed from a closed-form formula
// rather than a tabulated grid.

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
	"fmt"
	"strings"
)

// BoardSize is the fixed side length of the board (see DESIGN.md for
// the 15x15 vs 10x10 open question resolution).
const BoardSize = 15

// RackSize is the number of tiles a full rack holds, used only to
// detect a bingo play.
const RackSize = 7

// CenterRow and CenterCol mark the single anchor square on an empty
// board.
const (
	CenterRow = BoardSize / 2
	CenterCol = BoardSize / 2
)

// PlacedTile is a letter placed on the board, plus whether it was
// played from a blank (and therefore scores zero).
type PlacedTile struct {
	Letter    rune
	FromBlank bool
}

// Board is a sparse 15x15 grid of PlacedTile.
type Board struct {
	squares  [BoardSize][BoardSize]*PlacedTile
	NumTiles int
}

// NewBoard returns an empty Board.
func NewBoard() *Board {
	return &Board{}
}

// Sq returns the tile at (row, col), or nil if the square is empty or
// out of bounds.
func (b *Board) Sq(row, col int) *PlacedTile {
	if row < 0 || row >= BoardSize || col < 0 || col >= BoardSize {
		return nil
	}
	return b.squares[row][col]
}

// PlaceTile places tile at (row, col). It returns false if the
// coordinate is out of bounds or already occupied.
func (b *Board) PlaceTile(row, col int, tile PlacedTile) bool {
	if row < 0 || row >= BoardSize || col < 0 || col >= BoardSize {
		return false
	}
	if b.squares[row][col] != nil {
		return false
	}
	b.squares[row][col] = &tile
	b.NumTiles++
	return true
}

// String renders the board with a letter per occupied square ('_' for
// a tile played from a blank) and a space for each empty one.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			sb.WriteByte(b.glyphAt(row, col, false))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Display renders the board like String, but shows the premium-square
// glyph on empty squares instead of a blank space.
func (b *Board) Display() string {
	var sb strings.Builder
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			sb.WriteByte(b.glyphAt(row, col, true))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (b *Board) glyphAt(row, col int, showPremium bool) byte {
	t := b.squares[row][col]
	if t != nil {
		if t.FromBlank {
			return byte(BlankLetter)
		}
		return byte(t.Letter)
	}
	if showPremium {
		return PremiumAt(row, col).Glyph()
	}
	return ' '
}

// run scans outward from (row, col) in the direction (dRow, dCol),
// stopping at the board edge or the first empty square, and returns
// the letters found (in reading order) plus their non-blank point sum.
func (b *Board) run(row, col, dRow, dCol int) (letters string, sum int) {
	var sb strings.Builder
	row += dRow
	col += dCol
	for {
		t := b.Sq(row, col)
		if t == nil {
			break
		}
		sb.WriteRune(t.Letter)
		if !t.FromBlank {
			sum += LetterValue(t.Letter)
		}
		row += dRow
		col += dCol
	}
	letters = sb.String()
	if dRow < 0 || dCol < 0 {
		letters = reverseString(letters)
	}
	return
}

func reverseString(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}

// CheckedSquare is the per-square annotation produced by
// Board.ToCheckedBoard: the occupying tile (if any), the cross-checks
// implied by horizontal neighbours and by vertical neighbours, and
// whether the square is an anchor.
type CheckedSquare struct {
	Tile                  *PlacedTile
	HorizontalCrossChecks *CrossChecks // from left/right neighbours; used when playing vertically
	VerticalCrossChecks   *CrossChecks // from above/below neighbours; used when playing horizontally
	IsAnchor              bool
}

// CheckedBoard is the board annotated for a single generation call.
type CheckedBoard struct {
	squares [BoardSize][BoardSize]CheckedSquare
}

// CheckedAisleSquare is one square of a row or column, as seen by the
// generator walking that aisle: it carries only the cross-checks
// relevant to a play running along the aisle, per
// CheckedSquare.aisleView.
type CheckedAisleSquare struct {
	Row, Col    int
	Tile        *PlacedTile
	CrossChecks *CrossChecks
	IsAnchor    bool
}

func (cs *CheckedSquare) aisleView(row, col int, horizontal bool) CheckedAisleSquare {
	var cc *CrossChecks
	if horizontal {
		cc = cs.VerticalCrossChecks
	} else {
		cc = cs.HorizontalCrossChecks
	}
	return CheckedAisleSquare{Row: row, Col: col, Tile: cs.Tile, CrossChecks: cc, IsAnchor: cs.IsAnchor}
}

// ToCheckedBoard builds a CheckedBoard from b, using dawg to resolve
// the cross-checks of every empty square.
func (b *Board) ToCheckedBoard(dawg *Dawg) *CheckedBoard {
	cb := &CheckedBoard{}
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			sq := &cb.squares[row][col]
			tile := b.Sq(row, col)
			sq.Tile = tile
			if tile != nil {
				continue
			}

			above, aboveSum := b.run(row, col, -1, 0)
			below, belowSum := b.run(row, col, 1, 0)
			if above != "" || below != "" {
				cc := NewCrossChecks(dawg, above, below)
				cc.CrossSum = aboveSum + belowSum
				sq.VerticalCrossChecks = &cc
			}

			left, leftSum := b.run(row, col, 0, -1)
			right, rightSum := b.run(row, col, 0, 1)
			if left != "" || right != "" {
				cc := NewCrossChecks(dawg, left, right)
				cc.CrossSum = leftSum + rightSum
				sq.HorizontalCrossChecks = &cc
			}

			if b.NumTiles == 0 {
				sq.IsAnchor = row == CenterRow && col == CenterCol
			} else {
				sq.IsAnchor = b.hasOccupiedNeighbor(row, col)
			}
		}
	}
	return cb
}

func (b *Board) hasOccupiedNeighbor(row, col int) bool {
	return b.Sq(row-1, col) != nil || b.Sq(row+1, col) != nil ||
		b.Sq(row, col-1) != nil || b.Sq(row, col+1) != nil
}

// Aisle returns the squares of row index (horizontal=true) or column
// index (horizontal=false) as the generator sees them.
func (cb *CheckedBoard) Aisle(index int, horizontal bool) []CheckedAisleSquare {
	out := make([]CheckedAisleSquare, BoardSize)
	for i := 0; i < BoardSize; i++ {
		var row, col int
		if horizontal {
			row, col = index, i
		} else {
			row, col = i, index
		}
		out[i] = cb.squares[row][col].aisleView(row, col, horizontal)
	}
	return out
}

func init() {
	// Guard against accidental drift of the board size constant, which
	// every premium-square and anchor calculation assumes.
	if BoardSize%2 == 0 {
		panic(fmt.Sprintf("BoardSize must be odd so there is a single centre square, got %d", BoardSize))
	}
}
