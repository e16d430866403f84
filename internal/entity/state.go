package entity

import (
	"github.com/speedyfrrrrrr/tictactoe-backend/internal/tictactoe"
)

// PlayerState is one entry of the room-state snapshot. IsCurrentPlayer
// flags the entry whose mark is on turn.
type PlayerState struct {
	Name            string `json:"name"`
	Symbol          string `json:"symbol"`
	IsCurrentPlayer bool   `json:"isCurrentPlayer"`
}

// RoomState is the canonical snapshot broadcast to a room after any
// state-affecting event.
type RoomState struct {
	Board         []string      `json:"board"`
	CurrentPlayer string        `json:"currentPlayer"`
	Status        string        `json:"status"`
	Winner        string        `json:"winner"`
	Players       []PlayerState `json:"players"`
	IsDraw        bool          `json:"isDraw"`
}

// RoomSummary is the lobby-listing projection. It never carries board content.
type RoomSummary struct {
	ID          string `json:"id"`
	IsPublic    bool   `json:"isPublic"`
	PlayerCount int    `json:"playerCount"`
	Status      string `json:"status"`
}

// State - builds a fresh snapshot of the room; nothing is cached.
func (that *Room) State() RoomState {
	board := make([]string, len(that.Board))
	copy(board, that.Board[:])

	players := make([]PlayerState, 0, len(that.Players))
	for _, slot := range that.Players {
		players = append(players, PlayerState{
			Name:            slot.Name,
			Symbol:          slot.Mark,
			IsCurrentPlayer: slot.Mark == that.Turn,
		})
	}

	return RoomState{
		Board:         board,
		CurrentPlayer: that.Turn,
		Status:        that.Status,
		Winner:        that.Winner,
		Players:       players,
		IsDraw:        tictactoe.IsDraw(that.Board, that.Moves),
	}
}

// Summary - projects the room for lobby listings.
func (that *Room) Summary() RoomSummary {
	return RoomSummary{
		ID:          that.ID,
		IsPublic:    that.Public,
		PlayerCount: len(that.Players),
		Status:      that.Status,
	}
}
