package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-webapp/internal/entity"
	"github.com/rocketscienceinc/tictactoe-webapp/internal/repository"
	"github.com/rocketscienceinc/tictactoe-webapp/internal/tictactoe"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

// GameManager owns one game per browser session and persists it through the
// repository after every accepted mutation. Rejected moves persist nothing.
type GameManager struct {
	logger   *slog.Logger
	gameRepo gameRepo
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo) *GameManager {
	return &GameManager{
		logger:   logger.With("component", "game_manager"),
		gameRepo: gameRepo,
	}
}

// GetOrCreateGame - returns the session's game, creating a fresh one when the
// id is empty or unknown (the store is volatile, ids may outlive it).
func (that *GameManager) GetOrCreateGame(ctx context.Context, id string) (*entity.Game, error) {
	if id == "" {
		return that.createGame(ctx)
	}

	game, err := that.gameRepo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrGameNotFound) {
		return that.createGame(ctx)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	return game, nil
}

// MakeTurn - applies a move for the session's game. A rejected move is
// returned as-is so the transport can tell it apart from a hard failure.
func (that *GameManager) MakeTurn(ctx context.Context, gameID string, cell int) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	if err = tictactoe.MakeTurn(game, cell); err != nil {
		return nil, fmt.Errorf("failed to make turn: %w", err)
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	if game.IsFinished() {
		that.logger.Info("round finished", "game_id", game.ID, "winner", game.Winner)
	}

	return game, nil
}

// StartNewRound - clears the board and keeps the scoreboard.
func (that *GameManager) StartNewRound(ctx context.Context, gameID string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	tictactoe.NewRound(game)

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	return game, nil
}

// ResetScores - clears the board and zeroes the scoreboard.
func (that *GameManager) ResetScores(ctx context.Context, gameID string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	tictactoe.ResetScores(game)

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	that.logger.Info("scores reset", "game_id", game.ID)

	return game, nil
}

func (that *GameManager) createGame(ctx context.Context) (*entity.Game, error) {
	game := entity.NewGame(uuid.NewString())

	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Info("new game created", "game_id", game.ID)

	return game, nil
}
