// boardtext.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson

// This file implements ParseBoard, the inverse of Board.String, and
// BoardFromPlays, a convenience constructor that lays a batch of
// plays onto a fresh board.

package skrafl

import (
	"fmt"
	"strings"
)

// ParseBoard reads the 15-line, 15-character-per-line textual board
// form: a lowercase letter for a tile, '_' for a tile played from a
// blank, and ' ' for an empty square. Any other rune, or a line count
// or length other than BoardSize, is ErrInvalidBoardContent.
func ParseBoard(text string) (*Board, error) {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) != BoardSize {
		return nil, fmt.Errorf("%w: expected %d rows, got %d", ErrInvalidBoardContent, BoardSize, len(lines))
	}
	board := NewBoard()
	for row, line := range lines {
		runes := []rune(line)
		if len(runes) != BoardSize {
			return nil, fmt.Errorf("%w: row %d has %d columns, expected %d", ErrInvalidBoardContent, row, len(runes), BoardSize)
		}
		for col, ch := range runes {
			switch {
			case ch == ' ':
				continue
			case ch == BlankLetter:
				board.PlaceTile(row, col, PlacedTile{Letter: BlankLetter, FromBlank: true})
			case ch >= 'a' && ch <= 'z':
				board.PlaceTile(row, col, PlacedTile{Letter: ch})
			default:
				return nil, fmt.Errorf("%w: row %d col %d has invalid character %q", ErrInvalidBoardContent, row, col, ch)
			}
		}
	}
	return board, nil
}

// BoardFromPlays builds a Board by applying plays to an empty board in
// order, one letter per square starting at each play's StartRow/
// StartCol and stepping along its Direction. It does not validate
// that the plays are mutually consistent or legal; it exists for
// building test fixtures and CLI seed boards.
func BoardFromPlays(plays []ScoredPlay) *Board {
	board := NewBoard()
	for _, play := range plays {
		row, col := play.StartRow, play.StartCol
		for _, ch := range play.Word {
			board.PlaceTile(row, col, PlacedTile{Letter: ch})
			if play.Direction == Horizontal {
				col++
			} else {
				row++
			}
		}
	}
	return board
}
