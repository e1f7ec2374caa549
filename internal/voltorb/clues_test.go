package voltorb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCluesCheck(t *testing.T) {
	valid := func() Clues {
		var clues Clues
		for i := range Size {
			clues.Rows[i] = LineConstraint{Sum: 6, Bombs: 1}
			clues.Cols[i] = LineConstraint{Sum: 6, Bombs: 1}
		}
		return clues
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, valid().Check())
	})

	t.Run("sum totals disagree", func(t *testing.T) {
		clues := valid()
		clues.Cols[4].Sum++
		assert.ErrorIs(t, clues.Check(), ErrSumMismatch)
	})

	t.Run("bomb totals disagree", func(t *testing.T) {
		clues := valid()
		clues.Rows[0].Bombs++
		clues.Rows[0].Sum-- // keep sum totals balanced
		clues.Cols[0].Sum--
		assert.ErrorIs(t, clues.Check(), ErrBombMismatch)
	})

	t.Run("bomb count out of range", func(t *testing.T) {
		clues := valid()
		clues.Rows[2] = LineConstraint{Sum: 0, Bombs: 6}
		clues.Cols[2] = LineConstraint{Sum: 0, Bombs: 6}
		assert.Error(t, clues.Check())
	})

	t.Run("sum unreachable for line", func(t *testing.T) {
		clues := valid()
		// 1 bomb leaves 4 cells worth at most 12
		clues.Rows[3] = LineConstraint{Sum: 13, Bombs: 1}
		clues.Cols[3] = LineConstraint{Sum: 13, Bombs: 1}
		assert.Error(t, clues.Check())
	})
}
