package websocket

import "encoding/json"

// Message is the wire envelope in both directions: an action name plus a
// JSON payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type CreateRoomRequest struct {
	DisplayName string `json:"displayName"`
	SoloMode    bool   `json:"soloMode"`
}

type JoinRoomRequest struct {
	RoomCode    string `json:"roomCode"`
	DisplayName string `json:"displayName"`
}

type MakeMoveRequest struct {
	RoomCode      string `json:"roomCode"`
	CellIndex     int    `json:"cellIndex"`
	ClaimedSymbol string `json:"claimedSymbol"`
}

type ResetGameRequest struct {
	RoomCode string `json:"roomCode"`
}

type LeaveRoomRequest struct {
	RoomCode string `json:"roomCode"`
}
