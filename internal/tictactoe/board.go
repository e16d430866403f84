package tictactoe

import (
	"fmt"

	"github.com/speedyfrrrrrr/tictactoe-backend/internal/apperror"
)

const (
	PlayerX = "X"
	PlayerO = "O"

	EmptyCell = ""

	// BoardSize is the number of cells on the grid.
	BoardSize = 9
)

// WinCombos lists every winning triple: 3 rows, 3 columns, 2 diagonals.
var WinCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board is the fixed 9-cell grid; a cell holds EmptyCell, PlayerX or PlayerO.
type Board [BoardSize]string

// ApplyMove - writes mark into cell. The board is left untouched when the
// index is out of range or the cell is already occupied.
func ApplyMove(board *Board, cell int, mark string) error {
	if cell < 0 || cell >= BoardSize {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if board[cell] != EmptyCell {
		return apperror.ErrCellOccupied
	}

	board[cell] = mark

	return nil
}

// CheckWinner - returns the mark occupying all three cells of any winning
// triple, or EmptyCell when no triple is fully matched.
func CheckWinner(board Board) string {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != EmptyCell && a == b && b == c {
			return a
		}
	}

	return EmptyCell
}

// IsDraw - reports whether the game ended with a full board and no winner.
func IsDraw(board Board, moves int) bool {
	return moves == BoardSize && CheckWinner(board) == EmptyCell
}

// ToggleMark - returns the opposing mark.
func ToggleMark(mark string) string {
	if mark == PlayerX {
		return PlayerO
	}
	return PlayerX
}
