package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/zeinix-zz/leptos/pkg/middleware"
	"github.com/zeinix-zz/leptos/pkg/server"
)

func serveCmd() *cobra.Command {
	var (
		addr    string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the demo route tree over HTTP",
		Long: `Serve dispatches the demo route tree on the given address.

Besides the page routes themselves, the server exposes:

  /ws        live navigation socket (JSON path resolution)
  /metrics   Prometheus metrics`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(addr, verbose)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "Listen address")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}

func runServe(addr string, verbose bool) error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	routes := demoRoutes()

	handler := server.NewHandler(routes, server.WithLogger(logger))
	handler.Use(
		middleware.Prometheus(),
		middleware.OpenTelemetry(middleware.WithIncludeParams(true)),
	)

	socket := server.NewNavigationSocket(routes, server.WithLogger(logger))
	socket.OnResult = middleware.RecordNavigation
	socket.OnError = middleware.RecordSocketError

	mux := chi.NewRouter()
	mux.Use(chimw.Recoverer)
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/ws", socket)
	mux.NotFound(handler.ServeHTTP)

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("serving route tree", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
