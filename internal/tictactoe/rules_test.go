package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gridbox/tictactoe-rooms/internal/entity"
)

func TestEvaluate_WinningLines(t *testing.T) {
	tests := []struct {
		name  string
		board [9]string
	}{
		{name: "top row", board: [9]string{"X", "X", "X", "", "", "", "", "", ""}},
		{name: "middle row", board: [9]string{"", "", "", "X", "X", "X", "", "", ""}},
		{name: "bottom row", board: [9]string{"", "", "", "", "", "", "X", "X", "X"}},
		{name: "left column", board: [9]string{"X", "", "", "X", "", "", "X", "", ""}},
		{name: "middle column", board: [9]string{"", "X", "", "", "X", "", "", "X", ""}},
		{name: "right column", board: [9]string{"", "", "X", "", "", "X", "", "", "X"}},
		{name: "main diagonal", board: [9]string{"X", "", "", "", "X", "", "", "", "X"}},
		{name: "anti diagonal", board: [9]string{"", "", "X", "", "X", "", "X", "", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given: a board where X completed the line
			// When: evaluating the board
			winner := Evaluate(tt.board)

			// Then: X is the winner
			assert.Equal(t, entity.PlayerX, winner)
		})
	}
}

func TestEvaluate_OWins(t *testing.T) {
	// Given: a board where O holds the middle column
	board := [9]string{"X", "O", "X", "", "O", "X", "", "O", ""}

	// When: evaluating the board
	winner := Evaluate(board)

	// Then: O is the winner
	assert.Equal(t, entity.PlayerO, winner)
}

func TestEvaluate_Draw(t *testing.T) {
	// Given: a full board with no completed line
	board := [9]string{
		"X", "O", "X",
		"X", "O", "O",
		"O", "X", "X",
	}

	// When: evaluating the board
	winner := Evaluate(board)

	// Then: the game is a draw
	assert.Equal(t, entity.WinnerDraw, winner)
}

func TestEvaluate_GameContinues(t *testing.T) {
	t.Run("empty board", func(t *testing.T) {
		// Given: an untouched board
		board := [9]string{}

		// When: evaluating the board
		winner := Evaluate(board)

		// Then: there is no result yet
		assert.Empty(t, winner)
	})

	t.Run("partially filled board without a line", func(t *testing.T) {
		// Given: a board mid-game with no completed line
		board := [9]string{"X", "O", "", "", "X", "", "", "", "O"}

		// When: evaluating the board
		winner := Evaluate(board)

		// Then: there is no result yet
		assert.Empty(t, winner)
	})
}

func TestOpposingSymbol(t *testing.T) {
	assert.Equal(t, entity.PlayerO, OpposingSymbol(entity.PlayerX))
	assert.Equal(t, entity.PlayerX, OpposingSymbol(entity.PlayerO))
}

func TestValidCell(t *testing.T) {
	assert.True(t, ValidCell(0))
	assert.True(t, ValidCell(8))
	assert.False(t, ValidCell(-1))
	assert.False(t, ValidCell(9))
}
