package voltorb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func patternStats(p Pattern) (sum, bombs int) {
	for _, v := range p {
		if v == Bomb {
			bombs++
		} else {
			sum += int(v)
		}
	}
	return sum, bombs
}

func TestRowPatternsForced(t *testing.T) {
	tests := []struct {
		name string
		clue LineConstraint
		want Pattern
	}{
		{
			name: "all bombs",
			clue: LineConstraint{Sum: 0, Bombs: 5},
			want: Pattern{Bomb, Bomb, Bomb, Bomb, Bomb},
		},
		{
			name: "all threes",
			clue: LineConstraint{Sum: 15, Bombs: 0},
			want: Pattern{Three, Three, Three, Three, Three},
		},
		{
			name: "all ones",
			clue: LineConstraint{Sum: 5, Bombs: 0},
			want: Pattern{One, One, One, One, One},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := rowPatterns(0, test.clue, NewGrid())
			require.Len(t, got, 1)
			assert.Equal(t, test.want, got[0])
		})
	}
}

func TestRowPatternsExhaustive(t *testing.T) {
	clue := LineConstraint{Sum: 8, Bombs: 2}
	patterns := rowPatterns(2, clue, NewGrid())
	require.NotEmpty(t, patterns)

	seen := make(map[Pattern]bool)
	for _, p := range patterns {
		sum, bombs := patternStats(p)
		assert.Equal(t, clue.Sum, sum)
		assert.Equal(t, clue.Bombs, bombs)
		assert.False(t, seen[p], "pattern %v produced twice", p)
		seen[p] = true
	}
}

func TestRowPatternsHonorRevealed(t *testing.T) {
	revealed := NewGrid()
	revealed.Set(1, 0, Three)
	revealed.Set(1, 3, Bomb)

	patterns := rowPatterns(1, LineConstraint{Sum: 7, Bombs: 2}, revealed)
	require.NotEmpty(t, patterns)
	for _, p := range patterns {
		assert.Equal(t, Three, p[0])
		assert.Equal(t, Bomb, p[3])
		sum, bombs := patternStats(p)
		assert.Equal(t, 7, sum)
		assert.Equal(t, 2, bombs)
	}
}

func TestRowPatternsContradiction(t *testing.T) {
	t.Run("revealed bomb over quota", func(t *testing.T) {
		revealed := NewGrid()
		revealed.Set(0, 2, Bomb)
		patterns := rowPatterns(0, LineConstraint{Sum: 8, Bombs: 0}, revealed)
		assert.Empty(t, patterns)
	})

	t.Run("sum unreachable", func(t *testing.T) {
		patterns := rowPatterns(0, LineConstraint{Sum: 14, Bombs: 1}, NewGrid())
		assert.Empty(t, patterns)
	})
}
