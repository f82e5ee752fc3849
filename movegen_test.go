// movegen_test.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

package skrafl

import "testing"

// TestGeneratePlaysEmptyBoardSingleTile hand-traces the only possible
// play on an empty board with a one-tile rack against newTestDawg's
// {"a","an","at","ant"} vocabulary: placing "a" through the centre
// anchor, once along each axis, each worth 2 points (1 for the letter,
// doubled by the centre's double-word premium).
func TestGeneratePlaysEmptyBoardSingleTile(t *testing.T) {
	dawg := newTestDawg()
	board := NewBoard()
	rack, _ := NewRack("a")

	plays := GeneratePlays(dawg, board, rack, 0)
	if len(plays) != 2 {
		t.Fatalf("GeneratePlays returned %d plays, want 2: %+v", len(plays), plays)
	}
	for _, p := range plays {
		if p.Word != "a" || p.Score != 2 || p.StartRow != CenterRow || p.StartCol != CenterCol {
			t.Errorf("play = %+v, want word \"a\" score 2 at the centre", p)
		}
	}
	if plays[0].Direction != Horizontal || plays[1].Direction != Vertical {
		t.Errorf("plays = %+v, want Horizontal before Vertical", plays)
	}
}

// TestGeneratePlaysExtendsExistingTile places 'a' at the centre and
// hands the generator a rack with only 'n', which can only form "an"
// by hooking onto the existing 'a' -- once through the horizontal
// anchor to its right, once through the vertical anchor below it.
func TestGeneratePlaysExtendsExistingTile(t *testing.T) {
	dawg := newTestDawg()
	board := NewBoard()
	board.PlaceTile(CenterRow, CenterCol, PlacedTile{Letter: 'a'})
	rack, _ := NewRack("n")

	plays := GeneratePlays(dawg, board, rack, 0)
	if len(plays) != 2 {
		t.Fatalf("GeneratePlays returned %d plays, want 2: %+v", len(plays), plays)
	}
	for _, p := range plays {
		if p.Word != "an" || p.Score != 2 || p.StartRow != CenterRow || p.StartCol != CenterCol {
			t.Errorf("play = %+v, want word \"an\" score 2 starting at the centre", p)
		}
	}
	if plays[0].Direction != Horizontal || plays[1].Direction != Vertical {
		t.Errorf("plays = %+v, want Horizontal before Vertical", plays)
	}
}

// TestGenerateFromAnchorAbandonsUnwalkablePrefix places a tile that is
// not a valid DAWG prefix immediately left of an anchor; the forced
// left-part walk must fail and the anchor must be abandoned entirely.
func TestGenerateFromAnchorAbandonsUnwalkablePrefix(t *testing.T) {
	dawg := newTestDawg()
	board := NewBoard()
	board.PlaceTile(CenterRow, CenterCol-1, PlacedTile{Letter: 'x'})
	rack, _ := NewRack("a")

	cb := board.ToCheckedBoard(dawg)
	aisle := cb.Aisle(CenterRow, true)
	if plays := generateFromAnchor(dawg, aisle, CenterCol, rack, true); plays != nil {
		t.Errorf("generateFromAnchor with an unwalkable forced prefix = %+v, want nil", plays)
	}
}

func TestInitialLimitStopsAtOccupiedOrAnchor(t *testing.T) {
	dawg := newTestDawg()
	board := NewBoard()
	board.PlaceTile(CenterRow, CenterCol-3, PlacedTile{Letter: 'a'})
	cb := board.ToCheckedBoard(dawg)
	aisle := cb.Aisle(CenterRow, true)

	// The square at CenterCol-3 is occupied, which makes CenterCol-2 an
	// anchor, so a walk left from CenterCol may place only one further
	// tile (CenterCol-1) before reaching that anchor.
	if got := initialLimit(aisle, CenterCol); got != 1 {
		t.Errorf("initialLimit = %d, want 1", got)
	}
}

func TestLeftPartStartIndexFindsOccupiedRun(t *testing.T) {
	board := NewBoard()
	board.PlaceTile(CenterRow, CenterCol-1, PlacedTile{Letter: 'a'})
	board.PlaceTile(CenterRow, CenterCol-2, PlacedTile{Letter: 'n'})
	cb := board.ToCheckedBoard(NewDawg(nil))
	aisle := cb.Aisle(CenterRow, true)

	if got := leftPartStartIndex(aisle, CenterCol); got != CenterCol-2 {
		t.Errorf("leftPartStartIndex = %d, want %d", got, CenterCol-2)
	}
}

func TestFinalizePlaysSortsDescendingAndTruncates(t *testing.T) {
	plays := []ScoredPlay{
		{Word: "a", Score: 2},
		{Word: "b", Score: 10},
		{Word: "c", Score: 6},
	}
	got := finalizePlays(plays, 2)
	if len(got) != 2 || got[0].Score != 10 || got[1].Score != 6 {
		t.Errorf("finalizePlays = %+v, want [{b 10} {c 6}]", got)
	}
}
