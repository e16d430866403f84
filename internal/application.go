package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/speedyfrrrrrr/tictactoe-backend/internal/config"
	"github.com/speedyfrrrrrr/tictactoe-backend/internal/repository"
	"github.com/speedyfrrrrrr/tictactoe-backend/internal/usecase"
	"github.com/speedyfrrrrrr/tictactoe-backend/transport/rest"
	"github.com/speedyfrrrrrr/tictactoe-backend/transport/websocket"
)

const shutdownTimeout = 5 * time.Second

// RunApp - wires the registries, the game manager and the transports, and
// runs the HTTP server until a signal or a fatal server error.
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

	roomRepo := repository.NewRoomRepository()
	playerRepo := repository.NewPlayerRepository()

	hub := websocket.NewHub(logger)
	gameManager := usecase.NewGameManager(logger, roomRepo, playerRepo, hub)
	wsServer := websocket.New(logger, hub, gameManager, conf.Origins())

	mux := http.NewServeMux()
	mux.Handle("/ws", wsServer)
	rest.Register(mux, logger, gameManager)

	srv := &http.Server{
		Addr:              ":" + conf.Port,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("Starting server", "port", conf.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down server: %w", err)
		}

		return nil
	}
}
