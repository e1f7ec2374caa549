package voltorb

import (
	"errors"
	"fmt"
)

var (
	ErrSumMismatch  = errors.New("row sums and column sums disagree")
	ErrBombMismatch = errors.New("row bomb counts and column bomb counts disagree")
)

// LineConstraint is the printed hint next to one row or column: the sum
// of its non-bomb values and the number of bombs it contains.
type LineConstraint struct {
	Sum   int `json:"sum"`
	Bombs int `json:"bombs"`
}

// feasible reports whether the constraint can be met at all by a line
// of Size cells: bomb count within the line, and the sum reachable with
// the remaining non-bomb cells each worth 1..3.
func (lc LineConstraint) feasible() bool {
	if lc.Bombs < 0 || lc.Bombs > Size {
		return false
	}
	nonBomb := Size - lc.Bombs
	return nonBomb*1 <= lc.Sum && lc.Sum <= nonBomb*3
}

// Clues is the full hint set of one puzzle: one constraint per row and
// per column. Set once per game and never mutated.
type Clues struct {
	Rows [Size]LineConstraint `json:"rows"`
	Cols [Size]LineConstraint `json:"cols"`
}

// Check cross-validates the clues before any solving is attempted:
// aggregate totals must agree between rows and columns, and every line
// must be individually satisfiable. A nil result does not guarantee a
// solution exists, only that the clues are not self-evidently wrong.
func (cl Clues) Check() error {
	var rowSum, colSum, rowBombs, colBombs int
	for i := range Size {
		rowSum += cl.Rows[i].Sum
		colSum += cl.Cols[i].Sum
		rowBombs += cl.Rows[i].Bombs
		colBombs += cl.Cols[i].Bombs
	}
	if rowSum != colSum {
		return fmt.Errorf("%w: %d vs %d", ErrSumMismatch, rowSum, colSum)
	}
	if rowBombs != colBombs {
		return fmt.Errorf("%w: %d vs %d", ErrBombMismatch, rowBombs, colBombs)
	}
	for i := range Size {
		if !cl.Rows[i].feasible() {
			return fmt.Errorf("row %d: sum %d unreachable with %d bombs",
				i, cl.Rows[i].Sum, cl.Rows[i].Bombs)
		}
		if !cl.Cols[i].feasible() {
			return fmt.Errorf("col %d: sum %d unreachable with %d bombs",
				i, cl.Cols[i].Sum, cl.Cols[i].Bombs)
		}
	}
	return nil
}
