package handlers

import (
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/katkov/voltorb-server/internal/repository"
)

type Highscores struct {
	logger *slog.Logger
	repo   *repository.Queries
}

func NewHighscores(logger *slog.Logger, db *pgxpool.Pool) *Highscores {
	return &Highscores{
		logger: logger,
		repo:   repository.New(db),
	}
}

func (h Highscores) Get(w http.ResponseWriter, r *http.Request) {
	var filter repository.HighscoreFilter
	if username := r.URL.Query().Get("username"); username != "" {
		filter.Username = &username
	}

	highscores, err := h.repo.GetHighscores(r.Context(), filter)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.Error("unable to fetch highscores", "error", err)
		return
	}

	sendJSONOrLog(w, h.logger, highscores)
}
