// board_test.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

package skrafl

import "testing"

func TestBoardDisplayEmptyBoard(t *testing.T) {
	want := "" +
		"6  2       2  6\n" +
		" 4   3   3   4 \n" +
		"  4   2 2   4  \n" +
		"2  4   2   4  2\n" +
		"    4     4    \n" +
		" 3   3   3   3 \n" +
		"  2   2 2   2  \n" +
		"   2   4   2   \n" +
		"  2   2 2   2  \n" +
		" 3   3   3   3 \n" +
		"    4     4    \n" +
		"2  4   2   4  2\n" +
		"  4   2 2   4  \n" +
		" 4   3   3   4 \n" +
		"6  2       2  6\n"
	got := NewBoard().Display()
	if got != want {
		t.Errorf("empty board Display() =\n%q\nwant\n%q", got, want)
	}
}

func TestBoardStringCentreTile(t *testing.T) {
	board := NewBoard()
	board.PlaceTile(CenterRow, CenterCol, PlacedTile{Letter: 'a'})
	got := board.String()
	runes := []rune(got)
	// Row CenterRow is (BoardSize+1)*CenterRow rune offset into the
	// string (one newline per row); CenterCol indexes into that row.
	idx := CenterRow*(BoardSize+1) + CenterCol
	if runes[idx] != 'a' {
		t.Errorf("String() has %q at the centre square, want 'a'", runes[idx])
	}
}

func TestParseBoardPlacesTiles(t *testing.T) {
	text := "" +
		"               \n" +
		"               \n" +
		"               \n" +
		"               \n" +
		"               \n" +
		"               \n" +
		"               \n" +
		"      hello    \n" +
		"               \n" +
		"               \n" +
		"               \n" +
		"               \n" +
		"               \n" +
		"               \n" +
		"               \n"
	board, err := ParseBoard(text)
	if err != nil {
		t.Fatalf("ParseBoard: %v", err)
	}
	if sq := board.Sq(CenterRow, 6); sq == nil || sq.Letter != 'h' {
		t.Errorf("Sq(7,6) = %+v, want 'h'", sq)
	}
	if sq := board.Sq(CenterRow, 10); sq == nil || sq.Letter != 'o' {
		t.Errorf("Sq(7,10) = %+v, want 'o'", sq)
	}
	if board.NumTiles != 5 {
		t.Errorf("NumTiles = %d, want 5", board.NumTiles)
	}
}

func TestParseBoardRejectsBadShape(t *testing.T) {
	if _, err := ParseBoard("too short"); err == nil {
		t.Errorf("ParseBoard should reject a string with the wrong number of rows")
	}

	shortRow := "   \n"
	fullRow := "               \n" // 15 spaces
	text := shortRow
	for i := 0; i < BoardSize-1; i++ {
		text += fullRow
	}
	if _, err := ParseBoard(text); err == nil {
		t.Errorf("ParseBoard should reject a row of the wrong width")
	}
}

func TestParseBoardRejectsBadChar(t *testing.T) {
	row := ""
	for i := 0; i < BoardSize; i++ {
		row += " "
	}
	lines := make([]string, BoardSize)
	for i := range lines {
		lines[i] = row
	}
	lines[CenterRow] = "      9        "
	text := ""
	for _, l := range lines {
		text += l + "\n"
	}
	if _, err := ParseBoard(text); err == nil {
		t.Errorf("ParseBoard should reject a digit character")
	}
}

func TestBoardFromPlays(t *testing.T) {
	plays := []ScoredPlay{
		{StartRow: CenterRow, StartCol: CenterCol, Direction: Horizontal, Word: "cafe", Score: 10},
	}
	board := BoardFromPlays(plays)
	if sq := board.Sq(CenterRow, CenterCol); sq == nil || sq.Letter != 'c' {
		t.Errorf("Sq(centre) = %+v, want 'c'", sq)
	}
	if sq := board.Sq(CenterRow, CenterCol+3); sq == nil || sq.Letter != 'e' {
		t.Errorf("Sq(centre+3) = %+v, want 'e'", sq)
	}
	if board.NumTiles != 4 {
		t.Errorf("NumTiles = %d, want 4", board.NumTiles)
	}
}
