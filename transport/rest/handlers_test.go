package rest

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandlers(t *testing.T) Handlers {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewHandlers(logger, nil)
}

func TestPingHandler(t *testing.T) {
	// Given: the health handler
	handlers := newTestHandlers(t)
	recorder := httptest.NewRecorder()

	// When: pinging
	handlers.PingHandler(recorder, httptest.NewRequest(http.MethodGet, "/ping", nil))

	// Then: the server answers pong
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "pong", recorder.Body.String())
}

func TestLeaderboardHandler_StatsDisabled(t *testing.T) {
	// Given: stats are disabled (nil repository)
	handlers := newTestHandlers(t)
	recorder := httptest.NewRecorder()

	// When: requesting the leaderboard
	handlers.LeaderboardHandler(recorder, httptest.NewRequest(http.MethodGet, "/leaderboard", nil))

	// Then: it degrades to an empty board
	require.Equal(t, http.StatusOK, recorder.Code)

	var response LeaderboardResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Empty(t, response.Winners)
	assert.Zero(t, response.GamesPlayed)
}
