package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katkov/voltorb-server/internal/voltorb"
)

func testGame(t *testing.T) *voltorb.GameState {
	t.Helper()
	var clues voltorb.Clues
	for i := range voltorb.Size {
		clues.Rows[i] = voltorb.LineConstraint{Sum: 4, Bombs: 1}
		clues.Cols[i] = voltorb.LineConstraint{Sum: 4, Bombs: 1}
	}
	game, err := voltorb.NewGame(clues)
	require.NoError(t, err)
	return game
}

func TestExecuteCommandReveal(t *testing.T) {
	game := testGame(t)

	sol, err := executeCommand(game, "reveal 1 2 1")
	require.NoError(t, err)
	assert.Greater(t, sol.Boards, 0)
	assert.Equal(t, voltorb.One, game.Revealed.At(1, 2))
	assert.Equal(t, 1, game.Reveals)
}

func TestExecuteCommandForfeit(t *testing.T) {
	game := testGame(t)

	_, err := executeCommand(game, "forfeit")
	require.NoError(t, err)
	assert.True(t, game.Dead)
}

func TestExecuteCommandRejectsGarbage(t *testing.T) {
	game := testGame(t)

	for _, command := range []string{
		"",
		"explode",
		"reveal",
		"reveal 1 2",
		"reveal one two three",
		"reveal 9 9 1",
	} {
		_, err := executeCommand(game, command)
		assert.Error(t, err, "command %q must be rejected", command)
	}
	assert.Equal(t, 0, game.Reveals)
}
