package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lms_backend/internal/server"
	"lms_backend/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger.Init()

	srv, closeDeps := server.NewServer()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, os.Interrupt, syscall.SIGTERM)

	err := serve(srv, stopCh, shutdownTimeout)
	closeDeps()
	if err != nil {
		logger.Error("http server error", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}

// serve blocks until a stop signal arrives or the listener fails, whichever
// comes first.
func serve(srv *http.Server, stop <-chan os.Signal, timeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-stop:
	case err := <-errCh:
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return err
	}
	return nil
}
