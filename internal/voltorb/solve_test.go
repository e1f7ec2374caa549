package voltorb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cluesFor derives the exact clue set of a concrete board.
func cluesFor(b Board) Clues {
	var clues Clues
	for r := range Size {
		for c := range Size {
			v := b.At(r, c)
			if v == Bomb {
				clues.Rows[r].Bombs++
				clues.Cols[c].Bombs++
			} else {
				clues.Rows[r].Sum += int(v)
				clues.Cols[c].Sum += int(v)
			}
		}
	}
	return clues
}

func boardSatisfies(t *testing.T, b Board, clues Clues, revealed Grid) {
	t.Helper()
	assert.Equal(t, clues, cluesFor(b))
	for r := range Size {
		for c := range Size {
			if v := revealed.At(r, c); v != Unknown {
				assert.Equal(t, v, b.At(r, c),
					"board disagrees with revealed cell (%d, %d)", r, c)
			}
		}
	}
}

func TestSolveUniqueBoard(t *testing.T) {
	tests := []struct {
		name string
		fill Cell
	}{
		{name: "all threes", fill: Three},
		{name: "all bombs", fill: Bomb},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var board Board
			for i := range board {
				board[i] = test.fill
			}
			sol := Solve(cluesFor(board), NewGrid())
			require.Equal(t, 1, sol.Boards)
			require.Len(t, sol.Posteriors, Size*Size)
			for _, p := range sol.Posteriors {
				assert.Equal(t, 1.0, p.P[test.fill])
			}
		})
	}
}

// One bomb per row and per column, every other square worth 1: the
// boards are exactly the 5x5 permutation matrices, so their count and
// every posterior are known in closed form.
func permutationClues() Clues {
	var clues Clues
	for i := range Size {
		clues.Rows[i] = LineConstraint{Sum: 4, Bombs: 1}
		clues.Cols[i] = LineConstraint{Sum: 4, Bombs: 1}
	}
	return clues
}

func TestSolvePermutationPuzzle(t *testing.T) {
	sol := Solve(permutationClues(), NewGrid())
	require.Equal(t, 120, sol.Boards)
	require.Len(t, sol.Posteriors, Size*Size)

	for rc, p := range sol.Posteriors {
		assert.Equal(t, 120, p.Total)
		assert.InDelta(t, 0.2, p.BombChance(), 1e-12, "cell %v", rc)
		assert.InDelta(t, 0.8, p.P[One], 1e-12, "cell %v", rc)
		assert.InDelta(t, 0.8, p.EV, 1e-12, "cell %v", rc)
	}

	// Every cell ties, so the recommendation falls back to row-major
	// order.
	rc, _, ok := sol.Recommend()
	require.True(t, ok)
	assert.Equal(t, Coord{0, 0}, rc)
}

func TestSolveExactness(t *testing.T) {
	source := Board{
		Two, One, Bomb, Three, One,
		One, One, One, Bomb, Two,
		Bomb, Two, Three, One, One,
		One, Bomb, One, Two, Three,
		Three, One, Two, One, Bomb,
	}
	clues := cluesFor(source)
	require.NoError(t, clues.Check())

	revealed := NewGrid()
	sol := Solve(clues, revealed)
	require.Greater(t, sol.Boards, 0)

	patterns := [Size][]Pattern{}
	for r := range Size {
		patterns[r] = rowPatterns(r, clues.Rows[r], revealed)
	}
	boards := assembleBoards(clues, patterns, revealed)
	require.Len(t, boards, sol.Boards)

	found := false
	for _, b := range boards {
		boardSatisfies(t, b, clues, revealed)
		if b == source {
			found = true
		}
	}
	assert.True(t, found, "source board missing from solution set")
}

func TestSolveNormalization(t *testing.T) {
	sol := Solve(cluesFor(Board{
		Two, One, Bomb, Three, One,
		One, One, One, Bomb, Two,
		Bomb, Two, Three, One, One,
		One, Bomb, One, Two, Three,
		Three, One, Two, One, Bomb,
	}), NewGrid())
	require.Greater(t, sol.Boards, 0)

	for rc, p := range sol.Posteriors {
		total := p.P[Bomb] + p.P[One] + p.P[Two] + p.P[Three]
		assert.InDelta(t, 1.0, total, 1e-9, "cell %v", rc)
	}
}

func TestSolveMonotonicShrinkage(t *testing.T) {
	clues := permutationClues()

	sol := Solve(clues, NewGrid())
	require.Equal(t, 120, sol.Boards)

	revealed := NewGrid()
	revealed.Set(0, 0, Bomb)
	smaller := Solve(clues, revealed)
	assert.Equal(t, 24, smaller.Boards)

	revealed.Set(1, 1, Bomb)
	evenSmaller := Solve(clues, revealed)
	assert.Equal(t, 6, evenSmaller.Boards)
	assert.LessOrEqual(t, evenSmaller.Boards, smaller.Boards)

	for rc := range smaller.Posteriors {
		assert.NotEqual(t, Coord{0, 0}, rc, "revealed cell must not get a posterior")
	}
}

func TestSolveNoSolution(t *testing.T) {
	// Row totals and column totals disagree; no board can exist.
	var clues Clues
	for i := range Size {
		clues.Rows[i] = LineConstraint{Sum: 5, Bombs: 0}
		clues.Cols[i] = LineConstraint{Sum: 6, Bombs: 0}
	}

	sol := Solve(clues, NewGrid())
	assert.Equal(t, 0, sol.Boards)
	assert.Empty(t, sol.Posteriors)
	assert.False(t, sol.Cleared())

	_, _, ok := sol.Recommend()
	assert.False(t, ok)
}

func TestSolveEmptyRowPropagates(t *testing.T) {
	// Row 0 cannot be satisfied once a bomb is revealed against a
	// zero-bomb clue; the empty pattern set must flow through to an
	// empty solution without any assembly work.
	var clues Clues
	for i := range Size {
		clues.Rows[i] = LineConstraint{Sum: 5, Bombs: 0}
		clues.Cols[i] = LineConstraint{Sum: 5, Bombs: 0}
	}
	revealed := NewGrid()
	revealed.Set(0, 4, Bomb)

	sol := Solve(clues, revealed)
	assert.Equal(t, 0, sol.Boards)
	assert.Empty(t, sol.Posteriors)
	_, _, ok := Recommend(sol.Posteriors)
	assert.False(t, ok)
}
