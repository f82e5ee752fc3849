// scoring.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

// This file implements letter values, premium-square modifiers and
// the placement scorer.

package skrafl

// BingoBonus is the extra score awarded for a play that uses all
// seven rack tiles.
const BingoBonus = 50

var letterValues = map[rune]int{
	'a': 1, 'e': 1, 'i': 1, 'l': 1, 'n': 1, 'o': 1, 'r': 1, 's': 1, 't': 1, 'u': 1,
	'd': 2, 'g': 2,
	'b': 3, 'c': 3, 'm': 3, 'p': 3,
	'f': 4, 'h': 4, 'v': 4, 'w': 4, 'y': 4,
	'k': 5,
	'j': 8, 'x': 8,
	'q': 10, 'z': 10,
}

// LetterValue returns the nominal point value of ch. The blank tile
// is worth zero by definition, and is never looked up via this
// function directly -- callers that track PlacedTile.FromBlank should
// skip the lookup and use 0 instead.
func LetterValue(ch rune) int {
	return letterValues[ch]
}

// Premium describes the multipliers that apply to a single board
// square.
type Premium struct {
	LetterMultiplier int
	WordMultiplier   int
}

var (
	plainPremium = Premium{1, 1}
	dlPremium    = Premium{2, 1}
	tlPremium    = Premium{3, 1}
	dwPremium    = Premium{1, 2}
	twPremium    = Premium{1, 3}
)

// PremiumAt computes the premium-square modifier for (row, col) on the
// standard 15x15 board directly from the distance to the centre
// square, rather than from a tabulated layout.
func PremiumAt(row, col int) Premium {
	x := abs(7 - row)
	y := abs(7 - col)
	switch {
	case x == y:
		switch x {
		case 1:
			return dlPremium
		case 2:
			return tlPremium
		case 7:
			return twPremium
		default:
			return dwPremium
		}
	case x%7 == 0 || y%7 == 0:
		switch (x + y) % 7 {
		case 4:
			return dlPremium
		case 7:
			return twPremium
		default:
			return plainPremium
		}
	case abs(x-y) == 4:
		switch (x + y) % 7 {
		case 1:
			return tlPremium
		case 6:
			return dlPremium
		default:
			return plainPremium
		}
	default:
		return plainPremium
	}
}

// Glyph renders the premium as a single character: space for plain,
// '2'/'3' for double/triple letter, '4'/'6' for double/triple word.
func (p Premium) Glyph() byte {
	switch {
	case p.WordMultiplier == 3:
		return '6'
	case p.WordMultiplier == 2:
		return '4'
	case p.LetterMultiplier == 3:
		return '3'
	case p.LetterMultiplier == 2:
		return '2'
	default:
		return ' '
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// ScorePlay computes the total score of placing word along one axis
// of the CheckedBoard starting at startIndex.
// tiles carries, for each character of word, whether that character
// came from the rack as a blank (the corresponding board square must
// be empty in that case). already-occupied squares are never premium
// and never treated as newly placed for the bingo count.
func ScorePlay(aisle []CheckedAisleSquare, startIndex int, word string, tiles []bool) int {
	primaryWordScore := 0
	primaryWordMultiplier := 1
	total := 0
	tilesPlaced := 0

	runes := []rune(word)
	for i, ch := range runes {
		sq := aisle[startIndex+i]
		var premium Premium
		newlyPlaced := sq.Tile == nil
		if newlyPlaced {
			premium = PremiumAt(sq.Row, sq.Col)
			tilesPlaced++
		} else {
			premium = plainPremium
		}

		isBlank := tiles[i]
		if !newlyPlaced {
			isBlank = sq.Tile.FromBlank
		}
		letterValue := 0
		if !isBlank {
			letterValue = LetterValue(ch)
		}
		letterScore := premium.LetterMultiplier * letterValue
		primaryWordScore += letterScore
		primaryWordMultiplier *= premium.WordMultiplier

		if newlyPlaced && sq.CrossChecks != nil {
			total += (sq.CrossChecks.CrossSum + letterScore) * premium.WordMultiplier
		}
	}
	total += primaryWordScore * primaryWordMultiplier
	if tilesPlaced == RackSize {
		total += BingoBonus
	}
	return total
}
