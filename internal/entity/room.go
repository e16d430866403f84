package entity

import (
	"github.com/speedyfrrrrrr/tictactoe-backend/internal/tictactoe"
)

const (
	StatusWaiting  = "waiting"
	StatusPlaying  = "playing"
	StatusFinished = "finished"

	roomCapacity = 2
)

// PlayerSlot is a room-side player entry. It references the session-side
// Player record by connection id only; the record is owned by the player
// registry and may be deleted independently.
type PlayerSlot struct {
	ConnID string
	Name   string
	Mark   string
}

// Room owns one game's full state: board, turn, status and the ordered
// player list. The list order never changes except by removal.
type Room struct {
	ID      string
	Public  bool
	Board   tictactoe.Board
	Turn    string
	Winner  string
	Status  string
	Moves   int
	Players []*PlayerSlot
}

func NewRoom(id string, public bool) *Room {
	return &Room{
		ID:     id,
		Public: public,
		Turn:   tictactoe.PlayerX,
		Status: StatusWaiting,
	}
}

// AddPlayer - appends a player and assigns a mark by current list length:
// X to the first entry, O to the second. Returns false on a full room.
// The room starts playing the instant the second player is added.
func (that *Room) AddPlayer(connID, name string) bool {
	if len(that.Players) >= roomCapacity {
		return false
	}

	mark := tictactoe.PlayerX
	if len(that.Players) == 1 {
		mark = tictactoe.PlayerO
	}

	that.Players = append(that.Players, &PlayerSlot{ConnID: connID, Name: name, Mark: mark})

	if len(that.Players) == roomCapacity {
		that.Status = StatusPlaying
	}

	return true
}

// RemovePlayer - removes the entry bound to connID. An emptied room is fully
// reset back to waiting. A room left with a single player keeps its board,
// status and move count untouched so the seat can be reclaimed.
func (that *Room) RemovePlayer(connID string) {
	for i, slot := range that.Players {
		if slot.ConnID == connID {
			that.Players = append(that.Players[:i], that.Players[i+1:]...)
			break
		}
	}

	if len(that.Players) == 0 {
		that.Reset()
	}
}

// MakeMove - applies the move of the player bound to connID. Returns false
// without mutating the board when the room is not playing, the cell is
// occupied, the caller holds no seat, or it is not the caller's turn.
// Callers use the result to decide whether to broadcast.
func (that *Room) MakeMove(connID string, cell int) bool {
	if that.Status != StatusPlaying {
		return false
	}

	slot := that.PlayerByConnID(connID)
	if slot == nil || slot.Mark != that.Turn {
		return false
	}

	if err := tictactoe.ApplyMove(&that.Board, cell, slot.Mark); err != nil {
		return false
	}

	that.Moves++

	if winner := tictactoe.CheckWinner(that.Board); winner != tictactoe.EmptyCell {
		that.Winner = winner
		that.Status = StatusFinished
		return true
	}

	if that.Moves == tictactoe.BoardSize {
		that.Status = StatusFinished
		return true
	}

	that.Turn = tictactoe.ToggleMark(that.Turn)

	return true
}

// Reset - clears the board, hands the first turn back to X and resumes
// playing when both seats are taken, otherwise returns to waiting.
func (that *Room) Reset() {
	that.Board = tictactoe.Board{}
	that.Turn = tictactoe.PlayerX
	that.Winner = ""
	that.Moves = 0

	if len(that.Players) == roomCapacity {
		that.Status = StatusPlaying
	} else {
		that.Status = StatusWaiting
	}
}

func (that *Room) PlayerByConnID(connID string) *PlayerSlot {
	for _, slot := range that.Players {
		if slot.ConnID == connID {
			return slot
		}
	}
	return nil
}

func (that *Room) IsFull() bool {
	return len(that.Players) >= roomCapacity
}

func (that *Room) IsEmpty() bool {
	return len(that.Players) == 0
}

func (that *Room) IsWaiting() bool {
	return that.Status == StatusWaiting
}

func (that *Room) IsPlaying() bool {
	return that.Status == StatusPlaying
}

func (that *Room) IsFinished() bool {
	return that.Status == StatusFinished
}
