package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gridbox/tictactoe-rooms/internal/apperror"
	"github.com/gridbox/tictactoe-rooms/internal/entity"
	"github.com/gridbox/tictactoe-rooms/internal/pkg"
	"github.com/gridbox/tictactoe-rooms/internal/tictactoe"
	"github.com/gridbox/tictactoe-rooms/pkg/metrics"
)

const codeGenerationAttempts = 10

var errNoFreshCode = errors.New("no fresh room code after retries")

// notifier delivers one event to one connection; room broadcast is a loop
// over the room's real players, so transport stays out of the registry.
type notifier interface {
	SendTo(connectionID, event string, payload any)
}

type statsRepo interface {
	RecordResult(ctx context.Context, winnerName, winnerSymbol string) error
}

// managedRoom pairs a room with the mutex that serializes every mutating
// operation against it. Different rooms proceed in parallel.
type managedRoom struct {
	mu   sync.Mutex
	room *entity.Room
}

// RoomManager owns the code->room mapping and the full room lifecycle.
type RoomManager struct {
	logger     *slog.Logger
	notifier   notifier
	stats      statsRepo // optional, nil when stats are disabled
	startDelay time.Duration

	mu    sync.RWMutex
	rooms map[string]*managedRoom
}

func NewRoomManager(logger *slog.Logger, notifier notifier, stats statsRepo, startDelay time.Duration) *RoomManager {
	return &RoomManager{
		logger:     logger,
		notifier:   notifier,
		stats:      stats,
		startDelay: startDelay,
		rooms:      make(map[string]*managedRoom),
	}
}

// CreateRoom registers a fresh room with the caller as player X. In solo
// mode a synthetic bot takes slot O and the game starts immediately.
func (that *RoomManager) CreateRoom(ctx context.Context, connectionID, displayName string, soloMode bool) (*entity.Room, error) {
	log := that.logger.With("method", "CreateRoom")

	managed, err := that.registerRoom()
	if err != nil {
		return nil, fmt.Errorf("failed to register room: %w", err)
	}

	managed.mu.Lock()
	defer managed.mu.Unlock()

	room := managed.room
	room.SoloMode = soloMode
	room.AddPlayer(&entity.Player{
		ConnectionID: connectionID,
		Name:         displayName,
		Symbol:       entity.PlayerX,
	})

	if soloMode {
		room.AddPlayer(entity.NewBotPlayer())
		room.Status = entity.StatusPlaying
	}

	that.notifier.SendTo(connectionID, EventRoomCreated, RoomCreatedPayload{RoomCode: room.Code, SoloMode: soloMode})
	that.broadcast(room, EventPlayerJoined, PlayerJoinedPayload{PlayerCount: len(room.Players)})

	// No second real connection to synchronize with, so solo rooms skip
	// the start delay.
	if soloMode {
		that.sendGameStart(room)
	}

	log.Info("room created", "roomCode", room.Code, "player", displayName, "soloMode", soloMode)

	return room, nil
}

// JoinRoom adds a second player and, once the room is full, schedules the
// gameStart broadcast.
func (that *RoomManager) JoinRoom(ctx context.Context, connectionID, roomCode, displayName string) (*entity.Room, error) {
	log := that.logger.With("method", "JoinRoom", "roomCode", roomCode)

	managed := that.lookupRoom(roomCode)
	if managed == nil {
		that.notifier.SendTo(connectionID, EventRoomNotFound, EmptyPayload{})
		return nil, apperror.ErrRoomNotFound
	}

	managed.mu.Lock()
	defer managed.mu.Unlock()

	room := managed.room
	if room.IsFull() {
		that.notifier.SendTo(connectionID, EventRoomFull, EmptyPayload{})
		return nil, apperror.ErrRoomFull
	}

	room.AddPlayer(&entity.Player{
		ConnectionID: connectionID,
		Name:         displayName,
		Symbol:       room.FreeSymbol(),
	})

	that.notifier.SendTo(connectionID, EventRoomJoined, RoomJoinedPayload{RoomCode: room.Code})
	that.broadcast(room, EventPlayerJoined, PlayerJoinedPayload{PlayerCount: len(room.Players)})

	if room.IsFull() {
		room.Status = entity.StatusPlaying
		that.scheduleGameStart(managed)
	}

	log.Info("player joined room", "player", displayName)

	return room, nil
}

// MakeMove applies one validated move. Every rejection is silent on the
// wire: the returned error is only for transport-side debug logging.
func (that *RoomManager) MakeMove(ctx context.Context, connectionID, roomCode string, cell int, symbol string) error {
	managed := that.lookupRoom(roomCode)
	if managed == nil {
		return apperror.ErrRoomNotFound
	}

	managed.mu.Lock()
	defer managed.mu.Unlock()

	room := managed.room
	if !room.IsPlaying() {
		return apperror.ErrGameNotActive
	}

	if !tictactoe.ValidCell(cell) {
		return apperror.ErrInvalidCell
	}

	player := room.PlayerByConnection(connectionID)
	if player == nil {
		return apperror.ErrNotYourSymbol
	}

	// The symbol is bound to the connection at join time. Solo rooms are
	// the exception: the one real connection drives both symbols.
	if !room.SoloMode && player.Symbol != symbol {
		return apperror.ErrNotYourSymbol
	}

	if room.Turn != symbol {
		return apperror.ErrNotYourTurn
	}

	if room.Board[cell] != entity.EmptyCell {
		return apperror.ErrCellOccupied
	}

	room.Board[cell] = symbol
	metrics.MovesTotal.Inc()

	winner := tictactoe.Evaluate(room.Board)
	if winner == "" {
		room.Turn = tictactoe.OpposingSymbol(symbol)
		that.broadcast(room, EventMoveMade, MoveMadePayload{Board: room.Board, CurrentTurn: room.Turn})

		return nil
	}

	room.Status = entity.StatusFinished
	if winner != entity.WinnerDraw {
		room.Scores[winner]++
	}

	metrics.GamesFinished.WithLabelValues(winner).Inc()
	that.broadcast(room, EventGameOver, GameOverPayload{Board: room.Board, Winner: winner, Scores: room.Scores})
	that.recordResult(ctx, room, winner)

	return nil
}

// ResetGame clears the board for a rematch. Scores survive every reset and
// are only dropped with the room itself.
func (that *RoomManager) ResetGame(ctx context.Context, roomCode string) error {
	managed := that.lookupRoom(roomCode)
	if managed == nil {
		return apperror.ErrRoomNotFound
	}

	managed.mu.Lock()
	defer managed.mu.Unlock()

	room := managed.room
	room.ResetBoard()
	if room.IsFull() {
		room.Status = entity.StatusPlaying
	}

	that.broadcast(room, EventGameReset, EmptyPayload{})
	that.sendGameStart(room)

	return nil
}

// LeaveRoom removes the departing player from the given room.
func (that *RoomManager) LeaveRoom(ctx context.Context, connectionID, roomCode string) error {
	managed := that.lookupRoom(roomCode)
	if managed == nil {
		return apperror.ErrRoomNotFound
	}

	that.removeFromRoom(managed, connectionID)

	return nil
}

// HandleDisconnect scans every room for the vanished connection; a
// disconnecting socket is not pre-associated with a room.
func (that *RoomManager) HandleDisconnect(ctx context.Context, connectionID string) {
	that.mu.RLock()
	managedRooms := make([]*managedRoom, 0, len(that.rooms))
	for _, managed := range that.rooms {
		managedRooms = append(managedRooms, managed)
	}
	that.mu.RUnlock()

	for _, managed := range managedRooms {
		that.removeFromRoom(managed, connectionID)
	}
}

// Room looks a room up by code without mutating anything.
func (that *RoomManager) Room(roomCode string) (*entity.Room, bool) {
	managed := that.lookupRoom(roomCode)
	if managed == nil {
		return nil, false
	}

	return managed.room, true
}

func (that *RoomManager) registerRoom() (*managedRoom, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	for i := 0; i < codeGenerationAttempts; i++ {
		code := pkg.GenerateRoomCode()
		if code == "" {
			continue
		}

		if _, exists := that.rooms[code]; exists {
			continue
		}

		managed := &managedRoom{room: entity.NewRoom(code)}
		that.rooms[code] = managed
		metrics.ActiveRooms.Inc()

		return managed, nil
	}

	return nil, errNoFreshCode
}

func (that *RoomManager) lookupRoom(roomCode string) *managedRoom {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return that.rooms[roomCode]
}

func (that *RoomManager) destroyRoom(roomCode string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, exists := that.rooms[roomCode]; !exists {
		return
	}

	delete(that.rooms, roomCode)
	metrics.ActiveRooms.Dec()
}

// removeFromRoom applies the departure rules shared by leave and
// disconnect: destroy rooms with no real players left, otherwise notify
// the survivor and fall back to the waiting state.
func (that *RoomManager) removeFromRoom(managed *managedRoom, connectionID string) {
	log := that.logger.With("method", "removeFromRoom")

	managed.mu.Lock()
	defer managed.mu.Unlock()

	room := managed.room
	if !room.RemovePlayer(connectionID) {
		return
	}

	realPlayers := 0
	for _, player := range room.Players {
		if !player.IsBot() {
			realPlayers++
		}
	}

	if realPlayers == 0 {
		that.destroyRoom(room.Code)
		log.Info("room destroyed", "roomCode", room.Code)

		return
	}

	that.broadcast(room, EventPlayerLeft, EmptyPayload{})

	if room.IsPlaying() {
		room.ResetBoard()
		room.Status = entity.StatusWaiting
	}

	log.Info("player left room", "roomCode", room.Code)
}

// scheduleGameStart defers the broadcast so both clients can finish their
// UI transition. The timer holds no lock; the callback re-checks that the
// room is still playing before it fires the event.
func (that *RoomManager) scheduleGameStart(managed *managedRoom) {
	if that.startDelay <= 0 {
		that.sendGameStart(managed.room)
		return
	}

	time.AfterFunc(that.startDelay, func() {
		managed.mu.Lock()
		defer managed.mu.Unlock()

		if !managed.room.IsPlaying() {
			return
		}

		that.sendGameStart(managed.room)
	})
}

// sendGameStart addresses each real player individually so everyone learns
// its own symbol and seat index. Callers hold the room lock.
func (that *RoomManager) sendGameStart(room *entity.Room) {
	for i, player := range room.Players {
		if player.IsBot() {
			continue
		}

		that.notifier.SendTo(player.ConnectionID, EventGameStart, GameStartPayload{
			Players:         room.Players,
			CurrentTurn:     room.Turn,
			YourSymbol:      player.Symbol,
			YourPlayerIndex: i,
			Scores:          room.Scores,
			SoloMode:        room.SoloMode,
		})
	}
}

func (that *RoomManager) broadcast(room *entity.Room, event string, payload any) {
	for _, player := range room.Players {
		if player.IsBot() {
			continue
		}

		that.notifier.SendTo(player.ConnectionID, event, payload)
	}
}

// recordResult feeds the optional leaderboard. Failures never affect the
// game outcome.
func (that *RoomManager) recordResult(ctx context.Context, room *entity.Room, winner string) {
	if that.stats == nil {
		return
	}

	var winnerName string
	for _, player := range room.Players {
		if player.Symbol == winner {
			winnerName = player.Name
			break
		}
	}

	if err := that.stats.RecordResult(ctx, winnerName, winner); err != nil {
		that.logger.Error("failed to record game result", "roomCode", room.Code, "error", err)
	}
}
