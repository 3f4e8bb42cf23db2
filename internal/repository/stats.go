package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/gridbox/tictactoe-rooms/internal/entity"
)

const (
	winsKey  = "stats:wins"
	gamesKey = "stats:games"
)

// WinnerStat is one leaderboard row: a display name and its win count.
type WinnerStat struct {
	Name string `json:"name"`
	Wins int64  `json:"wins"`
}

type StatsRepository interface {
	RecordResult(ctx context.Context, winnerName, winnerSymbol string) error
	TopWinners(ctx context.Context, limit int64) ([]WinnerStat, error)
	GamesPlayed(ctx context.Context) (int64, error)
}

type dbStats struct {
	client *redis.Client
}

func NewStatsRepository(client *redis.Client) StatsRepository {
	return &dbStats{
		client: client,
	}
}

// RecordResult bumps the games-played counter and, unless the game was a
// draw, the winner's leaderboard score.
func (that *dbStats) RecordResult(ctx context.Context, winnerName, winnerSymbol string) error {
	if err := that.client.Incr(ctx, gamesKey).Err(); err != nil {
		return fmt.Errorf("failed to increment games counter: %w", err)
	}

	if winnerSymbol == entity.WinnerDraw {
		return nil
	}

	if err := that.client.ZIncrBy(ctx, winsKey, 1, winnerName).Err(); err != nil {
		return fmt.Errorf("failed to increment wins for %s: %w", winnerName, err)
	}

	return nil
}

func (that *dbStats) TopWinners(ctx context.Context, limit int64) ([]WinnerStat, error) {
	entries, err := that.client.ZRevRangeWithScores(ctx, winsKey, 0, limit-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read leaderboard: %w", err)
	}

	winners := make([]WinnerStat, 0, len(entries))
	for _, entry := range entries {
		name, ok := entry.Member.(string)
		if !ok {
			continue
		}

		winners = append(winners, WinnerStat{Name: name, Wins: int64(entry.Score)})
	}

	return winners, nil
}

func (that *dbStats) GamesPlayed(ctx context.Context) (int64, error) {
	games, err := that.client.Get(ctx, gamesKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return 0, fmt.Errorf("failed to read games counter: %w", err)
	}

	return games, nil
}
