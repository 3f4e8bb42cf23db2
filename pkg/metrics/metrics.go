package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	ActiveRooms = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "tictactoe_active_rooms",
		Help: "Number of rooms currently registered.",
	})

	ConnectedClients = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "tictactoe_connected_clients",
		Help: "Number of open websocket connections.",
	})

	MovesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tictactoe_moves_total",
		Help: "Accepted moves across all rooms.",
	})

	GamesFinished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tictactoe_games_finished_total",
		Help: "Finished games by outcome.",
	}, []string{"outcome"})
)

// Handler exposes Prometheus metrics at /metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}
