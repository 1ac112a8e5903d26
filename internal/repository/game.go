package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-webapp/internal/entity"
	"github.com/rocketscienceinc/tictactoe-webapp/internal/repository/storage"
)

var ErrGameNotFound = errors.New("game not found")

type GameRepository interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type memGame struct {
	store *storage.MemoryStorage
}

func NewGameRepository(store *storage.MemoryStorage) GameRepository {
	return &memGame{
		store: store,
	}
}

func (that *memGame) CreateOrUpdate(_ context.Context, game *entity.Game) error {
	gameJSON, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	gameKey := "game:" + game.ID
	that.store.Set(gameKey, gameJSON)

	return nil
}

func (that *memGame) GetByID(_ context.Context, id string) (*entity.Game, error) {
	gameKey := "game:" + id

	response, ok := that.store.Get(gameKey)
	if !ok {
		return nil, fmt.Errorf("%w: id %s", ErrGameNotFound, id)
	}

	var existingGame entity.Game
	if err := json.Unmarshal(response, &existingGame); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &existingGame, nil
}

func (that *memGame) DeleteByID(_ context.Context, id string) error {
	gameKey := "game:" + id
	that.store.Delete(gameKey)

	return nil
}
