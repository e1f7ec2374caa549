package voltorb

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Board is one complete assignment consistent with every row and column
// constraint and every revealed cell. Same layout as Grid but with no
// Unknown cells.
type Board [Size * Size]Cell

func (b Board) At(r, c int) Cell {
	return b[r*Size+c]
}

// boardSearch carries the mutable state of one backtracking run: the
// working grid, per-column accumulators and the boards collected so
// far. Each parallel branch owns its own copy, so no locking is needed.
type boardSearch struct {
	clues    Clues
	patterns [Size][]Pattern
	revealed Grid

	grid     Grid
	colSum   [Size]int
	colBombs [Size]int
	out      []Board
}

func newBoardSearch(clues Clues, patterns [Size][]Pattern, revealed Grid) *boardSearch {
	s := &boardSearch{
		clues:    clues,
		patterns: patterns,
		revealed: revealed,
		grid:     revealed,
	}
	for c := range Size {
		for r := range Size {
			switch v := revealed.At(r, c); {
			case v == Bomb:
				s.colBombs[c]++
			case v > Bomb:
				s.colSum[c] += int(v)
			}
		}
	}
	return s
}

// run fills rows r..Size-1 and collects every fully consistent board.
// Placements are undone exactly on the way out, so the searcher is back
// in its pre-call state when run returns.
func (s *boardSearch) run(r int) {
	if r == Size {
		for c := range Size {
			if s.colSum[c] != s.clues.Cols[c].Sum ||
				s.colBombs[c] != s.clues.Cols[c].Bombs {
				return
			}
		}
		s.out = append(s.out, Board(s.grid))
		return
	}

	for _, p := range s.patterns[r] {
		var incrSum, incrBombs [Size]int
		ok := true
		for c := range Size {
			v := p[c]
			prev := s.grid.At(r, c)
			if prev != Unknown && prev != v {
				// rowPatterns already honors revealed cells; this only
				// trips on inconsistent caller input.
				ok = false
				break
			}
			if v == Bomb {
				incrBombs[c] = 1
			} else {
				incrSum[c] = int(v)
			}
			switch {
			case prev == Bomb:
				incrBombs[c]--
			case prev > Bomb:
				incrSum[c] -= int(prev)
			}
		}
		if !ok {
			continue
		}

		for c := range Size {
			s.grid.Set(r, c, p[c])
			s.colSum[c] += incrSum[c]
			s.colBombs[c] += incrBombs[c]
		}

		for c := range Size {
			cellsLeft := 0
			for rr := r + 1; rr < Size; rr++ {
				if s.grid.At(rr, c) == Unknown {
					cellsLeft++
				}
			}
			lo, hi, feasible := lineBounds(
				s.clues.Cols[c], s.colSum[c], s.colBombs[c], cellsLeft,
			)
			if !feasible || s.clues.Cols[c].Sum < lo || s.clues.Cols[c].Sum > hi {
				ok = false
				break
			}
		}

		if ok {
			s.run(r + 1)
		}

		for c := range Size {
			s.colSum[c] -= incrSum[c]
			s.colBombs[c] -= incrBombs[c]
			s.grid.Set(r, c, s.revealed.At(r, c))
		}
	}
}

// assembleBoards combines per-row candidate patterns into every board
// that also satisfies the column constraints. The search fans out over
// the first row's candidates, one independent searcher per candidate,
// since branches share nothing once the small fixed-size state is
// copied.
func assembleBoards(clues Clues, patterns [Size][]Pattern, revealed Grid) []Board {
	for r := range Size {
		if len(patterns[r]) == 0 {
			return nil
		}
	}

	first := patterns[0]
	branches := make([][]Board, len(first))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, p := range first {
		g.Go(func() error {
			s := newBoardSearch(clues, patterns, revealed)
			s.patterns[0] = []Pattern{p}
			s.run(0)
			branches[i] = s.out
			return nil
		})
	}
	// Branches never fail; Wait only joins them.
	_ = g.Wait()

	var boards []Board
	for _, bs := range branches {
		boards = append(boards, bs...)
	}
	return boards
}
