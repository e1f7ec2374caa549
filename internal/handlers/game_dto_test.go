package handlers

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katkov/voltorb-server/internal/voltorb"
)

func TestParseCreateGameDTO(t *testing.T) {
	query, err := url.ParseQuery(
		"row_sums=4&row_sums=4&row_sums=4&row_sums=4&row_sums=4" +
			"&row_bombs=1&row_bombs=1&row_bombs=1&row_bombs=1&row_bombs=1" +
			"&col_sums=4&col_sums=4&col_sums=4&col_sums=4&col_sums=4" +
			"&col_bombs=1&col_bombs=1&col_bombs=1&col_bombs=1&col_bombs=1",
	)
	require.NoError(t, err)

	dto, err := ParseCreateGameDTO(query)
	require.NoError(t, err)

	clues, err := dto.Clues()
	require.NoError(t, err)
	for i := range voltorb.Size {
		assert.Equal(t, voltorb.LineConstraint{Sum: 4, Bombs: 1}, clues.Rows[i])
		assert.Equal(t, voltorb.LineConstraint{Sum: 4, Bombs: 1}, clues.Cols[i])
	}
	require.NoError(t, clues.Check())
}

func TestParseCreateGameDTOWrongArity(t *testing.T) {
	query, err := url.ParseQuery(
		"row_sums=4&row_bombs=1&col_sums=4&col_bombs=1",
	)
	require.NoError(t, err)

	dto, err := ParseCreateGameDTO(query)
	require.NoError(t, err)

	_, err = dto.Clues()
	assert.Error(t, err)
}

func TestParseCreateGameDTOMissingKeys(t *testing.T) {
	query, err := url.ParseQuery("row_sums=4")
	require.NoError(t, err)

	_, err = ParseCreateGameDTO(query)
	assert.Error(t, err)
}

func TestParseRevealDTO(t *testing.T) {
	query, err := url.ParseQuery("row=2&col=3&value=0")
	require.NoError(t, err)

	dto, err := ParseRevealDTO(query)
	require.NoError(t, err)
	assert.Equal(t, RevealDTO{Row: 2, Col: 3, Value: 0}, dto)
}

func TestNewSolutionDTO(t *testing.T) {
	var clues voltorb.Clues
	for i := range voltorb.Size {
		clues.Rows[i] = voltorb.LineConstraint{Sum: 4, Bombs: 1}
		clues.Cols[i] = voltorb.LineConstraint{Sum: 4, Bombs: 1}
	}
	sol := voltorb.Solve(clues, voltorb.NewGrid())
	require.Greater(t, sol.Boards, 0)

	dto := NewSolutionDTO(sol)
	assert.Equal(t, sol.Boards, dto.Boards)
	assert.Len(t, dto.Cells, voltorb.Size*voltorb.Size)
	require.NotNil(t, dto.Recommended)
	assert.Equal(t, voltorb.Coord{R: 0, C: 0}, dto.Recommended.Coord)

	// Cells come out in row-major order for stable responses.
	for i := 1; i < len(dto.Cells); i++ {
		assert.True(t, dto.Cells[i-1].Coord.Before(dto.Cells[i].Coord))
	}
}
