package apperror

import "errors"

// The first three error texts are sent verbatim to the acting client in an
// "error" event, so their wording is part of the wire contract.
var (
	ErrRoomNotFound   = errors.New("Room not found")
	ErrRoomFull       = errors.New("Room is full")
	ErrGameInProgress = errors.New("Game already in progress")

	ErrRoomNotPlaying = errors.New("game is not in progress")
	ErrNotYourTurn    = errors.New("it's not your turn")
	ErrCellOccupied   = errors.New("cell is already occupied")
	ErrInvalidCell    = errors.New("invalid cell index")
	ErrPlayerNotFound = errors.New("player not found")
)
