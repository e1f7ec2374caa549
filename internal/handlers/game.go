package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/katkov/voltorb-server/internal/config"
	"github.com/katkov/voltorb-server/internal/middleware"
	"github.com/katkov/voltorb-server/internal/repository"
	"github.com/katkov/voltorb-server/internal/voltorb"
)

type GameHandler struct {
	logger *slog.Logger
	repo   *repository.Queries
	ws     *config.WebSocket
}

func NewGameHandler(
	logger *slog.Logger,
	db *pgxpool.Pool,
	ws *config.WebSocket,
) *GameHandler {
	return &GameHandler{
		logger: logger,
		repo:   repository.New(db),
		ws:     ws,
	}
}

func (g GameHandler) NewGame(w http.ResponseWriter, r *http.Request) {
	dto, err := ParseCreateGameDTO(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}

	clues, err := dto.Clues()
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}

	game, err := voltorb.NewGame(clues)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}

	var playerId *int64
	if claims, ok := middleware.PlayerClaims(r.Context()); ok {
		playerId = &claims.PlayerId
	}

	session, err := g.repo.CreateGameSession(r.Context(), game, playerId)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to create game session", "error", err)
		return
	}

	sol := game.Solve()
	sendJSONOrLog(w, g.logger, NewGameSessionDTO(session, game, &sol))
}

// fetchGame loads a session and decodes its game state, writing the
// appropriate status on failure. The caller must stop when game is nil.
func (g GameHandler) fetchGame(
	w http.ResponseWriter, r *http.Request,
) (*repository.GameSession, *voltorb.GameState) {
	sessionId, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return nil, nil
	}

	session, err := g.repo.FetchGameSession(r.Context(), sessionId)
	if errors.Is(err, pgx.ErrNoRows) {
		w.WriteHeader(http.StatusNotFound)
		return nil, nil
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("could not fetch session from db", "error", err)
		return nil, nil
	}

	game, err := session.GameState()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("db returned invalid game_session.state", "error", err)
		return nil, nil
	}

	return session, game
}

func (g GameHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	session, game := g.fetchGame(w, r)
	if game == nil {
		return
	}
	sol := game.Solve()
	sendJSONOrLog(w, g.logger, NewGameSessionDTO(session, game, &sol))
}

func (g GameHandler) Reveal(w http.ResponseWriter, r *http.Request) {
	dto, err := ParseRevealDTO(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}

	session, game := g.fetchGame(w, r)
	if game == nil {
		return
	}

	sol, err := game.Reveal(dto.Row, dto.Col, voltorb.Cell(dto.Value))
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, voltorb.ErrGameOver) ||
			errors.Is(err, voltorb.ErrCellRevealed) {
			status = http.StatusConflict
		}
		w.WriteHeader(status)
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}

	session, err = g.repo.SaveGameState(r.Context(), session.GameSessionId, game)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to update session in db", "error", err)
		return
	}

	sendJSONOrLog(w, g.logger, NewGameSessionDTO(session, game, &sol))
}

func (g GameHandler) Forfeit(w http.ResponseWriter, r *http.Request) {
	session, game := g.fetchGame(w, r)
	if game == nil {
		return
	}

	game.Forfeit()

	session, err := g.repo.SaveGameState(r.Context(), session.GameSessionId, game)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to update session in db", "error", err)
		return
	}

	sendJSONOrLog(w, g.logger, NewGameSessionDTO(session, game, nil))
}

func (g GameHandler) Solution(w http.ResponseWriter, r *http.Request) {
	_, game := g.fetchGame(w, r)
	if game == nil {
		return
	}
	sendJSONOrLog(w, g.logger, NewSolutionDTO(game.Solve()))
}
