package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-webapp/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-webapp/internal/entity"
)

// WinCombos is scanned in this fixed order: rows, columns, diagonals.
// A single move can satisfy at most one combo, so the order only fixes
// which triple gets reported.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// MakeTurn - places the current turn's mark in cell and advances the round.
// A move into an occupied cell or a finished round is rejected and leaves the
// game untouched; a cell index outside the board is a caller bug.
func MakeTurn(game *entity.Game, cell int) error {
	if cell < 0 || cell >= len(game.Board) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if game.IsFinished() {
		return apperror.ErrGameFinished
	}

	if game.Board[cell] != entity.EmptyCell {
		return apperror.ErrCellOccupied
	}

	game.Board[cell] = game.Turn
	updateGameStatus(game)

	return nil
}

// NewRound - clears the board for the next round. The scoreboard stays.
func NewRound(game *entity.Game) {
	game.Board = [9]string{}
	game.Turn = entity.PlayerX
	game.Status = entity.StatusOngoing
	game.Winner = entity.EmptyCell
	game.WinLine = nil
}

// ResetScores - clears the board and zeroes the scoreboard.
func ResetScores(game *entity.Game) {
	NewRound(game)
	game.Score = entity.Score{}
}

// updateGameStatus - concludes the round or passes the turn after a move.
func updateGameStatus(game *entity.Game) {
	winner, line := checkGameStatus(game.Board)
	switch winner {
	case entity.PlayerX:
		game.Winner = winner
		game.WinLine = line
		game.Status = entity.StatusFinished
		game.Turn = entity.EmptyCell
		game.Score.X++
	case entity.PlayerO:
		game.Winner = winner
		game.WinLine = line
		game.Status = entity.StatusFinished
		game.Turn = entity.EmptyCell
		game.Score.O++
	case entity.PlayerTie:
		game.Winner = winner
		game.Status = entity.StatusFinished
		game.Turn = entity.EmptyCell
		game.Score.Draws++
	default:
		game.Turn = toggleMark(game.Turn)
	}
}

func toggleMark(currentMark string) string {
	if currentMark == entity.PlayerX {
		return entity.PlayerO
	}
	return entity.PlayerX
}

// checkGameStatus - returns the winning mark and its triple, PlayerTie on a
// full board without a winner, or an empty mark while the round continues.
func checkGameStatus(board [9]string) (string, []int) {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != entity.EmptyCell && a == b && b == c {
			return a, []int{combo[0], combo[1], combo[2]}
		}
	}

	for _, cell := range board {
		if cell == entity.EmptyCell {
			return "", nil
		}
	}

	return entity.PlayerTie, nil
}
