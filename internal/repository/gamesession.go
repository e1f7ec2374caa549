package repository

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/katkov/voltorb-server/internal/voltorb"
)

type GameSession struct {
	GameSessionId int64
	PlayerId      *int64
	Reveals       int32
	Dead          bool
	Won           bool
	State         []byte
	StartedAt     pgtype.Timestamptz
	EndedAt       pgtype.Timestamptz
	CreatedAt     pgtype.Timestamptz
	UpdatedAt     pgtype.Timestamptz
}

// GameState decodes the gob blob back into a playable game.
func (s GameSession) GameState() (*voltorb.GameState, error) {
	return voltorb.DecodeGameState(s.State)
}

func (q Queries) CreateGameSession(
	ctx context.Context, state *voltorb.GameState, playerId *int64,
) (*GameSession, error) {
	b, err := state.Bytes()
	if err != nil {
		return nil, err
	}

	args := pgx.NamedArgs{
		"reveals": state.Reveals,
		"dead":    state.Dead,
		"won":     state.Won,
		"state":   b,
	}
	if playerId != nil {
		args["player_id"] = *playerId
	}

	rows, _ := q.db.Query(
		ctx,
		`INSERT INTO game_session (player_id, reveals, dead, won, state)
		VALUES (@player_id, @reveals, @dead, @won, @state)
		RETURNING *;`,
		args,
	)
	return pgx.CollectExactlyOneRow(
		rows, pgx.RowToAddrOfStructByName[GameSession],
	)
}

func (q Queries) FetchGameSession(
	ctx context.Context, gameSessionId int64,
) (*GameSession, error) {
	rows, _ := q.db.Query(
		ctx,
		"SELECT * FROM game_session WHERE game_session_id = $1",
		gameSessionId,
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[GameSession])
}

type UpdateGameSessionParams struct {
	Reveals *int
	Dead    *bool
	Won     *bool
	EndedAt *time.Time
	State   *[]byte
}

func (p UpdateGameSessionParams) SetClause() (string, map[string]any) {
	parts := make([]string, 0)
	args := make(map[string]any)

	if p.Reveals != nil {
		parts = append(parts, "reveals = @reveals")
		args["reveals"] = *p.Reveals
	}
	if p.Dead != nil {
		parts = append(parts, "dead = @dead")
		args["dead"] = *p.Dead
	}
	if p.Won != nil {
		parts = append(parts, "won = @won")
		args["won"] = *p.Won
	}
	if p.EndedAt != nil {
		parts = append(parts, "ended_at = @ended_at")
		args["ended_at"] = *p.EndedAt
	}
	if p.State != nil {
		parts = append(parts, "state = @state")
		args["state"] = *p.State
	}

	return strings.Join(parts, ", "), args
}

func (q Queries) UpdateGameSession(
	ctx context.Context, gameSessionId int64, params UpdateGameSessionParams,
) (*GameSession, error) {
	setClause, args := params.SetClause()
	args["game_session_id"] = gameSessionId
	rows, _ := q.db.Query(
		ctx,
		"UPDATE game_session SET "+setClause+
			" WHERE game_session_id = @game_session_id RETURNING *",
		pgx.NamedArgs(args),
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[GameSession])
}

// SaveGameState is the common post-move update: state blob, counters
// and terminal flags in one statement, stamping ended_at when the game
// just finished.
func (q Queries) SaveGameState(
	ctx context.Context, gameSessionId int64, state *voltorb.GameState,
) (*GameSession, error) {
	b, err := state.Bytes()
	if err != nil {
		return nil, err
	}
	params := UpdateGameSessionParams{
		Reveals: &state.Reveals,
		Dead:    &state.Dead,
		Won:     &state.Won,
		State:   &b,
	}
	if state.Over() {
		now := time.Now().UTC()
		params.EndedAt = &now
	}
	return q.UpdateGameSession(ctx, gameSessionId, params)
}
