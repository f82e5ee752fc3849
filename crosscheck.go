// crosscheck.go
// Copyright (C) 2023 Vilhjálmur Þorsteinsson / Miðeind ehf.

// This file implements CrossChecks construction: for an empty square
// flanked by a prefix and a suffix of placed letters, which rack
// letters could legally fill it.

package skrafl

// CrossChecks is a per-square, per-axis record of which letters would
// complete a legal cross-word through the square, and the point sum
// of the existing perpendicular tiles.
type CrossChecks struct {
	// Allowed has bit i set iff Alphabet[i] is a legal letter here.
	Allowed uint32
	// CrossSum is the point value of the perpendicular neighbours.
	CrossSum int
}

// Letters renders Allowed as a string of the letters it permits, in
// alphabet order. It exists mainly to make tests readable.
func (cc CrossChecks) Letters() string {
	var out []byte
	for i := 0; i < NLetters; i++ {
		if cc.Allowed&(1<<uint(i)) != 0 {
			out = append(out, Alphabet[i])
		}
	}
	return string(out)
}

// Allows reports whether ch may be placed through this square. A
// blank placed here is allowed if any letter is.
func (cc CrossChecks) Allows(ch rune) bool {
	if ch == BlankLetter {
		return cc.Allowed != 0
	}
	idx, ok := letterIndex(ch)
	if !ok || idx >= NLetters {
		return false
	}
	return cc.Allowed&(1<<uint(idx)) != 0
}

// NewCrossChecks computes the CrossChecks for a square given the
// contiguous run of letters immediately preceding it and the run
// immediately following it along one axis (either may be empty, but
// ordinarily at least one is non-empty -- a square with neither is
// simply never given a CrossChecks at all; see Board.ToCheckedBoard).
//
// Results are cached: many anchors on a realistic board share the
// same local (preceding, following) context.
func NewCrossChecks(dawg *Dawg, preceding, following string) CrossChecks {
	key := preceding + "\x00" + following
	dawg.crossMux.Lock()
	if cached, ok := dawg.crossCache.Get(key); ok {
		dawg.crossMux.Unlock()
		return cached.(CrossChecks)
	}
	dawg.crossMux.Unlock()

	cc := computeCrossChecks(dawg, preceding, following)

	dawg.crossMux.Lock()
	dawg.crossCache.Add(key, cc)
	dawg.crossMux.Unlock()
	return cc
}

func computeCrossChecks(dawg *Dawg, preceding, following string) CrossChecks {
	cc := CrossChecks{CrossSum: crossSum(preceding) + crossSum(following)}

	startNode := dawg.Root()
	hasChildren := true
	if preceding != "" {
		e, ok := dawg.Walk(dawg.Root(), preceding)
		if !ok {
			// preceding is not a prefix of any word: no letter can
			// complete a legal cross-word here.
			return cc
		}
		if !e.HasTarget() {
			// preceding is itself a complete branch with no further
			// edges; nothing can extend it.
			return cc
		}
		startNode = NodeIdx(e.Target)
		hasChildren = true
	}
	if !hasChildren {
		return cc
	}

	dawg.ForEachChildEdge(startNode, func(edge Edge) {
		idx, ok := letterIndex(rune(edge.Letter))
		if !ok || idx >= NLetters {
			return
		}
		if following == "" {
			if edge.WordTerminator {
				cc.Allowed |= 1 << uint(idx)
			}
			return
		}
		if !edge.HasTarget() {
			return
		}
		e2, ok2 := dawg.Walk(NodeIdx(edge.Target), following)
		if ok2 && e2.WordTerminator {
			cc.Allowed |= 1 << uint(idx)
		}
	})
	return cc
}

func crossSum(letters string) int {
	sum := 0
	for _, ch := range letters {
		sum += LetterValue(ch)
	}
	return sum
}
