package websocket

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/gridbox/tictactoe-rooms/internal/entity"
	"github.com/gridbox/tictactoe-rooms/pkg/metrics"
)

type roomManager interface {
	CreateRoom(ctx context.Context, connectionID, displayName string, soloMode bool) (*entity.Room, error)
	JoinRoom(ctx context.Context, connectionID, roomCode, displayName string) (*entity.Room, error)
	MakeMove(ctx context.Context, connectionID, roomCode string, cell int, symbol string) error
	ResetGame(ctx context.Context, roomCode string) error
	LeaveRoom(ctx context.Context, connectionID, roomCode string) error
	HandleDisconnect(ctx context.Context, connectionID string)
}

type Server struct {
	logger   *slog.Logger
	rooms    roomManager
	registry *Registry
	upgrader websocket.Upgrader

	handlers map[string]func(ctx context.Context, connectionID string, payload json.RawMessage) error
}

func New(logger *slog.Logger, rooms roomManager, registry *Registry) *Server {
	server := &Server{
		logger:   logger,
		rooms:    rooms,
		registry: registry,
		upgrader: websocket.Upgrader{
			// Browser clients come from arbitrary origins; rooms are
			// guarded by their codes, not by the Origin header.
			CheckOrigin: func(*http.Request) bool { return true },
		},

		handlers: make(map[string]func(context.Context, string, json.RawMessage) error),
	}

	server.handlers["createRoom"] = server.handleCreateRoom
	server.handlers["joinRoom"] = server.handleJoinRoom
	server.handlers["makeMove"] = server.handleMakeMove
	server.handlers["resetGame"] = server.handleResetGame
	server.handlers["leaveRoom"] = server.handleLeaveRoom

	return server
}

// Start - starts WebSocket server.
func (that *Server) Start(ctx context.Context, port string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		that.serveWS(ctx, w, r)
	})

	srv := &http.Server{
		Addr:        ":" + port,
		Handler:     mux,
		ReadTimeout: 10 * time.Second,
		IdleTimeout: 30 * time.Second,
	}

	go func() {
		<-ctx.Done()
		_ = srv.Close()
	}()

	if err := srv.ListenAndServe(); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// serveWS upgrades one connection and pumps its messages until it closes.
func (that *Server) serveWS(ctx context.Context, writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "serveWS")

	ws, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	connectionID := uuid.NewString()
	that.registry.Add(connectionID, ws)
	metrics.ConnectedClients.Inc()

	log.Info("WebSocket connection established", "connectionID", connectionID)

	defer func() {
		that.registry.Remove(connectionID)
		that.rooms.HandleDisconnect(ctx, connectionID)
		metrics.ConnectedClients.Dec()

		if err = ws.Close(); err != nil {
			log.Debug("failed to close connection", "connectionID", connectionID, "error", err)
		}

		log.Info("WebSocket connection closed", "connectionID", connectionID)
	}()

	that.handleMessages(ctx, connectionID, ws)
}

// handleMessages - processes messages from the client.
func (that *Server) handleMessages(ctx context.Context, connectionID string, ws *websocket.Conn) {
	log := that.logger.With("method", "handleMessages", "connectionID", connectionID)

	for {
		_, reqBody, err := ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Error("error reading message", "error", err)
			}
			return
		}

		var message Message
		if err = json.Unmarshal(reqBody, &message); err != nil {
			log.Error("failed to unmarshal message", "error", err)
			continue
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Error("unknown action", "action", message.Action)
			continue
		}

		if err = handler(ctx, connectionID, message.Payload); err != nil {
			// Invalid requests are dropped without a reply on purpose:
			// they are either defensive checks or inherently racy.
			log.Debug("request dropped", "action", message.Action, "error", err)
		}
	}
}
