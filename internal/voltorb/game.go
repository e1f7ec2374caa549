package voltorb

import (
	"bytes"
	"encoding/gob"
	"errors"
	"fmt"
)

var (
	ErrNoSolution   = errors.New("clues admit no board")
	ErrGameOver     = errors.New("game is already over")
	ErrCellRevealed = errors.New("cell is already revealed")
)

// GameState is one assisted play-through: the immutable clues, the
// monotonically growing revealed grid and the terminal flags. It holds
// no solver state; every query re-solves from the current snapshot.
type GameState struct {
	Clues
	Revealed  Grid
	Reveals   int
	Dead, Won bool
}

// NewGame validates the clues and confirms at least one board exists
// before any squares are flipped.
func NewGame(clues Clues) (*GameState, error) {
	if err := clues.Check(); err != nil {
		return nil, err
	}
	state := &GameState{
		Clues:    clues,
		Revealed: NewGrid(),
	}
	if sol := state.Solve(); sol.Boards == 0 {
		return nil, ErrNoSolution
	}
	return state, nil
}

func DecodeGameState(buf []byte) (*GameState, error) {
	var game GameState
	err := gob.NewDecoder(bytes.NewBuffer(buf)).Decode(&game)
	if err != nil {
		return nil, err
	}
	return &game, nil
}

func (g GameState) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	err := gob.NewEncoder(&buf).Encode(g)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Solve recomputes the posterior picture for the current snapshot.
func (g GameState) Solve() Solution {
	return Solve(g.Clues, g.Revealed)
}

// Reveal records the true value of a flipped square and re-solves.
// Flipping a bomb loses the game; a solve in which no 2s or 3s remain
// hidden wins it.
func (g *GameState) Reveal(r, c int, v Cell) (Solution, error) {
	if g.Dead || g.Won {
		return Solution{}, ErrGameOver
	}
	if !ValidCoord(r, c) {
		return Solution{}, fmt.Errorf("coordinate (%d, %d) out of range", r, c)
	}
	if !v.Valid() {
		return Solution{}, fmt.Errorf("cell value %d out of range", v)
	}
	if g.Revealed.At(r, c) != Unknown {
		return Solution{}, ErrCellRevealed
	}

	g.Revealed.Set(r, c, v)
	g.Reveals++

	sol := g.Solve()
	if v == Bomb {
		g.Dead = true
	} else if sol.Cleared() {
		g.Won = true
	}
	return sol, nil
}

// Forfeit ends a running game as lost.
func (g *GameState) Forfeit() {
	if !(g.Dead || g.Won) {
		g.Dead = true
	}
}

// Over reports whether the game reached a terminal state.
func (g GameState) Over() bool {
	return g.Dead || g.Won
}
