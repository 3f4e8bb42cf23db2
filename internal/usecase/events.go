package usecase

import "github.com/gridbox/tictactoe-rooms/internal/entity"

// Server-to-client event names. Client intents arrive under the same
// action/payload envelope and are dispatched by the transport.
const (
	EventRoomCreated  = "roomCreated"
	EventRoomJoined   = "roomJoined"
	EventRoomNotFound = "roomNotFound"
	EventRoomFull     = "roomFull"
	EventPlayerJoined = "playerJoined"
	EventGameStart    = "gameStart"
	EventMoveMade     = "moveMade"
	EventGameOver     = "gameOver"
	EventGameReset    = "gameReset"
	EventPlayerLeft   = "playerLeft"
)

type RoomCreatedPayload struct {
	RoomCode string `json:"roomCode"`
	SoloMode bool   `json:"soloMode"`
}

type RoomJoinedPayload struct {
	RoomCode string `json:"roomCode"`
}

type PlayerJoinedPayload struct {
	PlayerCount int `json:"playerCount"`
}

// GameStartPayload is addressed per recipient: each player learns its own
// symbol and index alongside the shared room state.
type GameStartPayload struct {
	Players         []*entity.Player `json:"players"`
	CurrentTurn     string           `json:"currentTurn"`
	YourSymbol      string           `json:"yourSymbol"`
	YourPlayerIndex int              `json:"yourPlayerIndex"`
	Scores          map[string]int   `json:"scores"`
	SoloMode        bool             `json:"soloMode"`
}

type MoveMadePayload struct {
	Board       [9]string `json:"board"`
	CurrentTurn string    `json:"currentTurn"`
}

type GameOverPayload struct {
	Board  [9]string      `json:"board"`
	Winner string         `json:"winner"`
	Scores map[string]int `json:"scores"`
}

type EmptyPayload struct{}
