package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// Highscore is one leaderboard row: a won session ranked by how fast
// the board was cleared and how few flips it took.
type Highscore struct {
	GameSessionId int64   `json:"game_session_id"`
	Username      *string `json:"username"`
	Reveals       int32   `json:"reveals"`
	PlaytimeMs    float64 `json:"playtime_ms"`
}

type HighscoreFilter struct {
	Username *string
}

func (q Queries) GetHighscores(
	ctx context.Context, filter HighscoreFilter,
) ([]Highscore, error) {
	query := `
	SELECT
		game_session_id,
		username,
		reveals,
		(
			extract('epoch' from ended_at) -
			extract('epoch' from started_at)
		) * 1000 playtime_ms
	FROM game_session
		LEFT OUTER JOIN player USING (player_id)
	WHERE
		won = true
		AND dead = false
		AND ended_at IS NOT NULL
	`

	args := pgx.NamedArgs{}
	if filter.Username != nil {
		query += " AND username = @username"
		args["username"] = *filter.Username
	}

	query += " ORDER BY playtime_ms, reveals;"

	rows, err := q.db.Query(ctx, query, args)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[Highscore])
}
