package handlers

import (
	"fmt"
	"strconv"

	"github.com/gorilla/schema"

	"github.com/katkov/voltorb-server/internal/repository"
	"github.com/katkov/voltorb-server/internal/voltorb"
)

// CreateGameDTO carries the printed clues of a fresh puzzle, five
// values per line, as repeated query keys.
type CreateGameDTO struct {
	RowSums  []int `schema:"row_sums,required"`
	RowBombs []int `schema:"row_bombs,required"`
	ColSums  []int `schema:"col_sums,required"`
	ColBombs []int `schema:"col_bombs,required"`
}

func ParseCreateGameDTO(src map[string][]string) (CreateGameDTO, error) {
	var dto CreateGameDTO
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	err := dec.Decode(&dto, src)
	return dto, err
}

func (dto CreateGameDTO) Clues() (voltorb.Clues, error) {
	var clues voltorb.Clues
	for _, line := range []struct {
		name   string
		values []int
	}{
		{"row_sums", dto.RowSums},
		{"row_bombs", dto.RowBombs},
		{"col_sums", dto.ColSums},
		{"col_bombs", dto.ColBombs},
	} {
		if len(line.values) != voltorb.Size {
			return clues, fmt.Errorf(
				"%s must hold %d values, got %d",
				line.name, voltorb.Size, len(line.values),
			)
		}
	}
	for i := range voltorb.Size {
		clues.Rows[i] = voltorb.LineConstraint{
			Sum:   dto.RowSums[i],
			Bombs: dto.RowBombs[i],
		}
		clues.Cols[i] = voltorb.LineConstraint{
			Sum:   dto.ColSums[i],
			Bombs: dto.ColBombs[i],
		}
	}
	return clues, nil
}

type RevealDTO struct {
	Row   int `schema:"row,required"`
	Col   int `schema:"col,required"`
	Value int `schema:"value,required"`
}

func ParseRevealDTO(src map[string][]string) (RevealDTO, error) {
	var dto RevealDTO
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	err := dec.Decode(&dto, src)
	return dto, err
}

type CellPosteriorDTO struct {
	voltorb.Coord
	voltorb.Posterior
}

type SolutionDTO struct {
	Boards      int                `json:"boards"`
	Cells       []CellPosteriorDTO `json:"cells"`
	Recommended *CellPosteriorDTO  `json:"recommended,omitempty"`
}

func NewSolutionDTO(sol voltorb.Solution) *SolutionDTO {
	dto := &SolutionDTO{
		Boards: sol.Boards,
		Cells:  make([]CellPosteriorDTO, 0, len(sol.Posteriors)),
	}
	for r := range voltorb.Size {
		for c := range voltorb.Size {
			if p, ok := sol.Posteriors[voltorb.Coord{R: r, C: c}]; ok {
				dto.Cells = append(dto.Cells, CellPosteriorDTO{
					Coord:     voltorb.Coord{R: r, C: c},
					Posterior: p,
				})
			}
		}
	}
	if rc, p, ok := sol.Recommend(); ok {
		dto.Recommended = &CellPosteriorDTO{Coord: rc, Posterior: p}
	}
	return dto
}

type GameSessionDTO struct {
	GameSessionId string        `json:"game_session_id"`
	Clues         voltorb.Clues `json:"clues"`
	Grid          voltorb.Grid  `json:"grid"`
	Reveals       int           `json:"reveals"`
	Dead          bool          `json:"dead"`
	Won           bool          `json:"won"`
	StartedAt     int64         `json:"started_at"`
	EndedAt       *int64        `json:"ended_at,omitempty"`
	Solution      *SolutionDTO  `json:"solution,omitempty"`
}

func NewGameSessionDTO(
	session *repository.GameSession,
	game *voltorb.GameState,
	sol *voltorb.Solution,
) *GameSessionDTO {
	dto := &GameSessionDTO{
		GameSessionId: strconv.FormatInt(session.GameSessionId, 10),
		Clues:         game.Clues,
		Grid:          game.Revealed,
		Reveals:       game.Reveals,
		Dead:          game.Dead,
		Won:           game.Won,
		StartedAt:     session.StartedAt.Time.UnixMilli(),
	}
	if session.EndedAt.Valid {
		e := session.EndedAt.Time.UnixMilli()
		dto.EndedAt = &e
	}
	if sol != nil {
		dto.Solution = NewSolutionDTO(*sol)
	}
	return dto
}
