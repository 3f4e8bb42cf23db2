package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

var errDisplayNameRequired = errors.New("display name is required")

func (that *Server) handleCreateRoom(ctx context.Context, connectionID string, payload json.RawMessage) error {
	var req CreateRoomRequest
	if err := json.Unmarshal(payload, &req); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	if req.DisplayName == "" {
		return errDisplayNameRequired
	}

	if _, err := that.rooms.CreateRoom(ctx, connectionID, req.DisplayName, req.SoloMode); err != nil {
		return fmt.Errorf("failed to create room: %w", err)
	}

	return nil
}

func (that *Server) handleJoinRoom(ctx context.Context, connectionID string, payload json.RawMessage) error {
	var req JoinRoomRequest
	if err := json.Unmarshal(payload, &req); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	if req.DisplayName == "" {
		return errDisplayNameRequired
	}

	if _, err := that.rooms.JoinRoom(ctx, connectionID, req.RoomCode, req.DisplayName); err != nil {
		return fmt.Errorf("failed to join room %s: %w", req.RoomCode, err)
	}

	return nil
}

func (that *Server) handleMakeMove(ctx context.Context, connectionID string, payload json.RawMessage) error {
	var req MakeMoveRequest
	if err := json.Unmarshal(payload, &req); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	if err := that.rooms.MakeMove(ctx, connectionID, req.RoomCode, req.CellIndex, req.ClaimedSymbol); err != nil {
		return fmt.Errorf("move rejected in room %s: %w", req.RoomCode, err)
	}

	return nil
}

func (that *Server) handleResetGame(ctx context.Context, _ string, payload json.RawMessage) error {
	var req ResetGameRequest
	if err := json.Unmarshal(payload, &req); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	if err := that.rooms.ResetGame(ctx, req.RoomCode); err != nil {
		return fmt.Errorf("failed to reset room %s: %w", req.RoomCode, err)
	}

	return nil
}

func (that *Server) handleLeaveRoom(ctx context.Context, connectionID string, payload json.RawMessage) error {
	var req LeaveRoomRequest
	if err := json.Unmarshal(payload, &req); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	if err := that.rooms.LeaveRoom(ctx, connectionID, req.RoomCode); err != nil {
		return fmt.Errorf("failed to leave room %s: %w", req.RoomCode, err)
	}

	return nil
}
