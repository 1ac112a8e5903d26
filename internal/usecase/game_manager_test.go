package usecase

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/rocketscienceinc/tictactoe-webapp/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-webapp/internal/entity"
	"github.com/rocketscienceinc/tictactoe-webapp/internal/repository"
	"github.com/rocketscienceinc/tictactoe-webapp/internal/repository/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) *GameManager {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	gameRepo := repository.NewGameRepository(storage.NewMemoryStorage())

	return NewGameManager(logger, gameRepo)
}

func TestGameManager_GetOrCreateGame(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates a new game when id is empty", func(t *testing.T) {
		// Given: a manager with an empty store
		manager := newTestManager(t)

		// When: GetOrCreateGame is called without an id
		game, err := manager.GetOrCreateGame(ctx, "")

		// Then: a fresh game is created and persisted
		require.NoError(t, err)
		assert.NotEmpty(t, game.ID)
		assert.Equal(t, entity.PlayerX, game.Turn)
		assert.Equal(t, entity.StatusOngoing, game.Status)

		stored, err := manager.gameRepo.GetByID(ctx, game.ID)
		require.NoError(t, err)
		assert.Equal(t, game, stored)
	})

	t.Run("Creates a new game for an unknown id", func(t *testing.T) {
		// Given: a manager with an empty store and a stale session id
		manager := newTestManager(t)

		// When: GetOrCreateGame is called with an id the store never saw
		game, err := manager.GetOrCreateGame(ctx, "stale-session")

		// Then: a fresh game with a new id is created
		require.NoError(t, err)
		assert.NotEmpty(t, game.ID)
		assert.NotEqual(t, "stale-session", game.ID)
	})

	t.Run("Returns the existing game", func(t *testing.T) {
		// Given: a created game
		manager := newTestManager(t)
		created, err := manager.GetOrCreateGame(ctx, "")
		require.NoError(t, err)

		// When: GetOrCreateGame is called again with its id
		game, err := manager.GetOrCreateGame(ctx, created.ID)

		// Then: the same game comes back
		require.NoError(t, err)
		assert.Equal(t, created, game)
	})
}

func TestGameManager_MakeTurn(t *testing.T) {
	ctx := context.Background()

	t.Run("Applies and persists a move", func(t *testing.T) {
		// Given: a created game
		manager := newTestManager(t)
		created, err := manager.GetOrCreateGame(ctx, "")
		require.NoError(t, err)

		// When: a move is made
		game, err := manager.MakeTurn(ctx, created.ID, 4)

		// Then: the move is applied and persisted
		require.NoError(t, err)
		assert.Equal(t, entity.PlayerX, game.Board[4])
		assert.Equal(t, entity.PlayerO, game.Turn)

		stored, err := manager.gameRepo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, game, stored)
	})

	t.Run("Rejected move is not persisted", func(t *testing.T) {
		// Given: a game with cell 4 taken
		manager := newTestManager(t)
		created, err := manager.GetOrCreateGame(ctx, "")
		require.NoError(t, err)
		_, err = manager.MakeTurn(ctx, created.ID, 4)
		require.NoError(t, err)

		// When: the same cell is targeted again
		_, err = manager.MakeTurn(ctx, created.ID, 4)

		// Then: the rejection surfaces and the stored state is unchanged
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.True(t, apperror.IsRejectedMove(err))

		stored, err := manager.gameRepo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.PlayerX, stored.Board[4])
		assert.Equal(t, entity.PlayerO, stored.Turn)
	})

	t.Run("Returns ErrGameNotFound for unknown game", func(t *testing.T) {
		// Given: a manager with an empty store
		manager := newTestManager(t)

		// When: a move targets a game that does not exist
		_, err := manager.MakeTurn(ctx, "missing", 0)

		// Then: the repository error surfaces
		require.ErrorIs(t, err, repository.ErrGameNotFound)
	})

	t.Run("Winning move updates the persisted score", func(t *testing.T) {
		// Given: a created game
		manager := newTestManager(t)
		created, err := manager.GetOrCreateGame(ctx, "")
		require.NoError(t, err)

		// When: X plays out a top-row win
		var game *entity.Game
		for _, cell := range []int{0, 3, 1, 4, 2} {
			game, err = manager.MakeTurn(ctx, created.ID, cell)
			require.NoError(t, err)
		}

		// Then: the win and the score are persisted
		assert.Equal(t, entity.PlayerX, game.Winner)
		assert.Equal(t, []int{0, 1, 2}, game.WinLine)

		stored, err := manager.gameRepo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.Score{X: 1}, stored.Score)
	})
}

func TestGameManager_StartNewRound(t *testing.T) {
	ctx := context.Background()

	// Given: a finished round that X won
	manager := newTestManager(t)
	created, err := manager.GetOrCreateGame(ctx, "")
	require.NoError(t, err)
	for _, cell := range []int{0, 3, 1, 4, 2} {
		_, err = manager.MakeTurn(ctx, created.ID, cell)
		require.NoError(t, err)
	}

	// When: a new round starts
	game, err := manager.StartNewRound(ctx, created.ID)

	// Then: the board is clean and the score survives, also in the store
	require.NoError(t, err)
	assert.Equal(t, [9]string{}, game.Board)
	assert.Equal(t, entity.PlayerX, game.Turn)
	assert.Equal(t, entity.Score{X: 1}, game.Score)

	stored, err := manager.gameRepo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, game, stored)
}

func TestGameManager_ResetScores(t *testing.T) {
	ctx := context.Background()

	// Given: a scoreboard with a win on it
	manager := newTestManager(t)
	created, err := manager.GetOrCreateGame(ctx, "")
	require.NoError(t, err)
	for _, cell := range []int{0, 3, 1, 4, 2} {
		_, err = manager.MakeTurn(ctx, created.ID, cell)
		require.NoError(t, err)
	}

	// When: the scores are reset
	game, err := manager.ResetScores(ctx, created.ID)

	// Then: the board and all counters are back to zero, also in the store
	require.NoError(t, err)
	assert.Equal(t, [9]string{}, game.Board)
	assert.Equal(t, entity.Score{}, game.Score)

	stored, err := manager.gameRepo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.Score{}, stored.Score)
}
