package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gridbox/tictactoe-rooms/internal/repository"
)

const leaderboardLimit = 10

type statsRepo interface {
	TopWinners(ctx context.Context, limit int64) ([]repository.WinnerStat, error)
	GamesPlayed(ctx context.Context) (int64, error)
}

type Handlers interface {
	PingHandler(w http.ResponseWriter, r *http.Request)
	LeaderboardHandler(w http.ResponseWriter, r *http.Request)
}

type LeaderboardResponse struct {
	GamesPlayed int64                   `json:"gamesPlayed"`
	Winners     []repository.WinnerStat `json:"winners"`
}

type handlers struct {
	logger *slog.Logger
	stats  statsRepo // nil when stats are disabled
}

func NewHandlers(logger *slog.Logger, stats statsRepo) Handlers {
	return &handlers{
		logger: logger,
		stats:  stats,
	}
}

func (that *handlers) PingHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

// LeaderboardHandler serves the aggregate win counts. With stats disabled
// it degrades to an empty board instead of an error.
func (that *handlers) LeaderboardHandler(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "LeaderboardHandler")

	response := LeaderboardResponse{Winners: []repository.WinnerStat{}}

	if that.stats != nil {
		winners, err := that.stats.TopWinners(r.Context(), leaderboardLimit)
		if err != nil {
			log.Error("failed to read leaderboard", "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		games, err := that.stats.GamesPlayed(r.Context())
		if err != nil {
			log.Error("failed to read games counter", "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		response.Winners = winners
		response.GamesPlayed = games
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to encode response", "error", err)
	}
}
