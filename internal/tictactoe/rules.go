package tictactoe

import "github.com/gridbox/tictactoe-rooms/internal/entity"

// WinCombos enumerates the 8 winning lines: rows, columns, diagonals.
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

// Evaluate returns the winning symbol when a line is complete,
// entity.WinnerDraw when the board is full with no winner, and an
// empty string while the game continues.
func Evaluate(board [9]string) string {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != entity.EmptyCell && a == b && b == c {
			return a
		}
	}

	for _, cell := range board {
		if cell == entity.EmptyCell {
			return ""
		}
	}

	return entity.WinnerDraw
}

// OpposingSymbol flips X to O and anything else to X.
func OpposingSymbol(symbol string) string {
	if symbol == entity.PlayerX {
		return entity.PlayerO
	}

	return entity.PlayerX
}

// ValidCell reports whether the index addresses one of the 9 board cells.
func ValidCell(cell int) bool {
	return cell >= 0 && cell < 9
}
