package websocket

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const writeTimeout = 10 * time.Second

// conn serializes writes: gorilla allows one concurrent writer per socket.
type conn struct {
	mu sync.Mutex
	ws *websocket.Conn
}

// Registry maps connection IDs to live sockets and is the notifier
// capability injected into the room registry.
type Registry struct {
	logger *slog.Logger

	mu          sync.RWMutex
	connections map[string]*conn
}

func NewRegistry(logger *slog.Logger) *Registry {
	return &Registry{
		logger:      logger,
		connections: make(map[string]*conn),
	}
}

func (that *Registry) Add(connectionID string, ws *websocket.Conn) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.connections[connectionID] = &conn{ws: ws}
}

func (that *Registry) Remove(connectionID string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	delete(that.connections, connectionID)
}

// SendTo delivers one event to one connection. A vanished connection is
// not an error: the disconnect path cleans the room up on its own.
func (that *Registry) SendTo(connectionID, event string, payload any) {
	log := that.logger.With("method", "SendTo")

	that.mu.RLock()
	connection, ok := that.connections[connectionID]
	that.mu.RUnlock()

	if !ok {
		log.Debug("connection not found", "connectionID", connectionID, "event", event)
		return
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		log.Error("failed to marshal payload", "event", event, "error", err)
		return
	}

	message := Message{
		Action:  event,
		Payload: raw,
	}

	connection.mu.Lock()
	defer connection.mu.Unlock()

	if err = connection.ws.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		log.Error("failed to set write deadline", "connectionID", connectionID, "error", err)
		return
	}

	if err = connection.ws.WriteJSON(message); err != nil {
		log.Error("failed to send event", "connectionID", connectionID, "event", event, "error", err)
	}
}
