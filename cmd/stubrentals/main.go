// Command stubrentals serves the in-memory marketplace stub with a small
// seeded data set. Intended for local development against the client.
package main

import (
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/simplerentals/rentals-go/config"
	"github.com/simplerentals/rentals-go/internal/stub"
	"github.com/simplerentals/rentals-go/util/logging"
)

const allowConnectionsAfterShutdown = 1 * time.Second

func main() {
	logging.Setup()

	cfg := config.New()
	a := stub.New(cfg)

	for _, user := range a.Store.Seed() {
		token, err := stub.AccessToken(user.ID, cfg.JwtSecret)
		if err != nil {
			slog.Error("failed to mint token for seeded account", "email", user.Email, "error", err)
			os.Exit(1)
		}
		slog.Info("seeded account", "email", user.Email, "user_id", user.ID, "token", token)
	}

	go func() {
		slog.Info("stub server running", "port", cfg.Port)
		if err := a.Serve(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server exited", "error", err)
			os.Exit(1)
		}
	}()

	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	<-stopChan

	slog.Info("request to shutdown server, draining", "wait", allowConnectionsAfterShutdown)
	waitTimer := time.NewTimer(allowConnectionsAfterShutdown)
	<-waitTimer.C

	if err := a.Shutdown(); err != nil {
		slog.Error("shutdown failed", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
