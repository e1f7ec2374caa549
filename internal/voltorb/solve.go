package voltorb

// Solution is the outcome of one full solve: the number of boards
// consistent with the clues and revealed cells, and the posterior for
// every unrevealed square. Boards == 0 means the current state is
// contradictory.
type Solution struct {
	Boards     int                 `json:"boards"`
	Posteriors map[Coord]Posterior `json:"-"`
}

// Solve runs the whole pipeline once: per-row pattern enumeration,
// board assembly under the column constraints, then posterior
// aggregation. It is stateless; every call starts from scratch with
// just the clues and the revealed snapshot.
func Solve(clues Clues, revealed Grid) Solution {
	var patterns [Size][]Pattern
	for r := range Size {
		patterns[r] = rowPatterns(r, clues.Rows[r], revealed)
		if len(patterns[r]) == 0 {
			return Solution{Posteriors: map[Coord]Posterior{}}
		}
	}
	boards := assembleBoards(clues, patterns, revealed)
	post, n := Posteriors(boards, revealed)
	return Solution{Boards: n, Posteriors: post}
}

// Recommend picks the safest unrevealed square under this solution.
func (s Solution) Recommend() (Coord, Posterior, bool) {
	return Recommend(s.Posteriors)
}

// Cleared reports whether every remaining multiplier has been found:
// no unrevealed square can hold a 2 or a 3 in any surviving board,
// which is the winning condition of the game.
func (s Solution) Cleared() bool {
	if s.Boards == 0 {
		return false
	}
	for _, p := range s.Posteriors {
		if p.P[Two] > 0 || p.P[Three] > 0 {
			return false
		}
	}
	return true
}
