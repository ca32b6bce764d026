package monitor

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ychalier/ircbot/internal/logger"
)

// Status is the payload served by the /status endpoint.
type Status struct {
	State    string   `json:"state"`
	Nick     string   `json:"nick"`
	Channels []string `json:"channels"`
	Version  string   `json:"version"`
}

// StatusFunc supplies the current bot status. It is called once per
// /status request.
type StatusFunc func() Status

// NewMux returns the HTTP handler with all monitor routes.
func NewMux(status StatusFunc) http.Handler {
	mux := http.NewServeMux()

	mux.Handle("/metrics", promhttp.Handler())

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	mux.HandleFunc("/status", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(status()); err != nil {
			logger.Error("Failed to encode status response", "error", err)
		}
	})

	return mux
}

// Start serves the monitor endpoints on addr until ctx is canceled.
// It blocks, so callers normally run it in its own goroutine.
func Start(ctx context.Context, addr string, status StatusFunc) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      NewMux(status),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Monitor server shutdown failed", "error", err)
		}
	}()

	logger.Info("Monitor server listening", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
