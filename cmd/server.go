package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"petconnect/internal/wire"
	"petconnect/pkg/database"
	"petconnect/pkg/utils"

	"go.uber.org/zap"
)

// Run boots the whole server: config, logger, database, wiring, and
// blocks until SIGINT or SIGTERM triggers a graceful shutdown.
func Run() error {
	config, err := utils.LoadConfig()
	if err != nil {
		return err
	}

	log, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		return err
	}
	defer log.Sync()

	db, err := database.InitDB(config.Database)
	if err != nil {
		log.Error("Failed to connect to database", zap.Error(err))
		return err
	}
	defer db.Close()

	wiring := wire.New(db, config, log)

	server := &http.Server{
		Addr:         ":" + config.App.Port,
		Handler:      wiring.Router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("Server starting",
			zap.String("app", config.App.Name),
			zap.String("port", config.App.Port),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		log.Info("Shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Forced shutdown", zap.Error(err))
		return err
	}

	log.Info("Server stopped")
	return nil
}
