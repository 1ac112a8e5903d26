package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-webapp/internal/config"
	"github.com/rocketscienceinc/tictactoe-webapp/internal/repository"
	"github.com/rocketscienceinc/tictactoe-webapp/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-webapp/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-webapp/transport/web"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	memoryStorage := storage.NewMemoryStorage()
	defer func() {
		if err := memoryStorage.Close(); err != nil {
			log.Error("could not close storage", "error", err)
		}
	}()

	gameRepo := repository.NewGameRepository(memoryStorage)
	gameUseCase := usecase.NewGameManager(logger, gameRepo)

	webErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		webServer := web.New(logger, gameUseCase)
		if webErr := webServer.Start(ctx, conf.HTTPPort); webErr != nil {
			log.Error("HTTP server error", "error", webErr)
			webErrCh <- webErr
		}
	}()

	select {
	case err := <-webErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
