package voltorb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineBounds(t *testing.T) {
	tests := []struct {
		name         string
		target       LineConstraint
		partialSum   int
		partialBombs int
		cellsLeft    int
		lo           int
		hi           int
		ok           bool
	}{
		{
			name:      "untouched line",
			target:    LineConstraint{Sum: 7, Bombs: 2},
			cellsLeft: 5,
			lo:        3,
			hi:        9,
			ok:        true,
		},
		{
			name:         "bombs already placed",
			target:       LineConstraint{Sum: 7, Bombs: 2},
			partialSum:   4,
			partialBombs: 2,
			cellsLeft:    2,
			lo:           6,
			hi:           10,
			ok:           true,
		},
		{
			name:         "bomb quota blown",
			target:       LineConstraint{Sum: 7, Bombs: 1},
			partialBombs: 2,
			cellsLeft:    3,
			ok:           false,
		},
		{
			name:         "bomb quota unfillable",
			target:       LineConstraint{Sum: 4, Bombs: 3},
			partialBombs: 1,
			cellsLeft:    1,
			ok:           false,
		},
		{
			name:         "line complete",
			target:       LineConstraint{Sum: 6, Bombs: 1},
			partialSum:   6,
			partialBombs: 1,
			cellsLeft:    0,
			lo:           6,
			hi:           6,
			ok:           true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			lo, hi, ok := lineBounds(
				test.target, test.partialSum, test.partialBombs, test.cellsLeft,
			)
			assert.Equal(t, test.ok, ok)
			if test.ok {
				assert.Equal(t, test.lo, lo)
				assert.Equal(t, test.hi, hi)
			}
		})
	}
}
