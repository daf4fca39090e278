package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync/atomic"
	"time"
)

// healthState is what /health reports while watching.
type healthState struct {
	renders atomic.Int64
	failed  atomic.Int64
}

func (h *healthState) record(r *Report) {
	h.renders.Add(1)
	h.failed.Store(int64(len(r.Failed)))
}

// healthHandler answers OK together with the counters of the last render.
func (a *App) healthHandler(w http.ResponseWriter, r *http.Request) {
	a.logger.Debug("Health check endpoint hit.", "remote_addr", r.RemoteAddr, "path", r.URL.Path)
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "OK renders=%d failed=%d\n", a.health.renders.Load(), a.health.failed.Load())
}

// startHealthcheckServer listens on addr and serves /health until ctx is
// done. It returns the bound address.
func (a *App) startHealthcheckServer(ctx context.Context, addr string) (string, error) {
	a.logger.Debug("Configuring health check server.")
	mux := http.NewServeMux()
	mux.HandleFunc("/health", a.healthHandler)

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return "", fmt.Errorf("failed to start health check server: %w", err)
	}
	server := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		a.logger.Info("🩺 Health check server starting", "address", fmt.Sprintf("http://%s/health", ln.Addr()))
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error("Health check server failed unexpectedly", "error", err)
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		a.logger.Info("🩺 Shutting down health check server...")
		if err := server.Shutdown(shutdownCtx); err != nil {
			a.logger.Error("Health check server shutdown failed", "error", err)
		}
	}()

	return ln.Addr().String(), nil
}
