package web

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rocketscienceinc/tictactoe-webapp/internal/entity"
)

type gameUseCase interface {
	GetOrCreateGame(ctx context.Context, id string) (*entity.Game, error)
	MakeTurn(ctx context.Context, gameID string, cell int) (*entity.Game, error)
	StartNewRound(ctx context.Context, gameID string) (*entity.Game, error)
	ResetScores(ctx context.Context, gameID string) (*entity.Game, error)
}

type Server struct {
	logger *slog.Logger
	uGame  gameUseCase
	tpl    *templates
}

func New(logger *slog.Logger, uGame gameUseCase) *Server {
	return &Server{
		logger: logger.With("component", "web"),
		uGame:  uGame,
		tpl:    loadTemplates(),
	}
}

// Routes - wires all endpoints and returns the router.
func (that *Server) Routes() http.Handler {
	router := chi.NewRouter()

	router.Get("/", that.handleIndex)
	router.Post("/move", that.handleMove)
	router.Post("/new-round", that.handleNewRound)
	router.Post("/reset-scores", that.handleResetScores)
	router.Post("/theme", that.handleThemeToggle)
	router.Get("/ping", that.handlePing)

	return router
}

// Start - starts the HTTP server and shuts it down when ctx is canceled.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.Routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shut down server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
