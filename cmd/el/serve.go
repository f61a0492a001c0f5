package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/vango-dev/el/pkg/htmlhttp"
	"github.com/vango-dev/el/pkg/markup"
	"github.com/vango-dev/el/pkg/render"
)

// newDemoRouter serves the demo page at /, the feature list at /list and
// the render metrics at /metrics.
func newDemoRouter(title string, logger *slog.Logger, reg *prometheus.Registry) chi.Router {
	metrics := htmlhttp.NewMetrics(htmlhttp.WithRegistry(reg))
	opts := []htmlhttp.Option{
		htmlhttp.WithLogger(logger),
		htmlhttp.WithMetrics(metrics),
	}

	r := chi.NewRouter()
	htmlhttp.Mount(r, "/", func(*http.Request) (render.Document, error) {
		return demoPage(title).Document(), nil
	}, opts...)
	htmlhttp.MountFragment(r, "/list", func(*http.Request) (markup.Content, error) {
		return demoList(), nil
	}, opts...)
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	return r
}

func serveCmd() *cobra.Command {
	var (
		addr  string
		title string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the demo page over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))

			srv := &http.Server{
				Addr:              addr,
				Handler:           newDemoRouter(title, logger, prometheus.NewRegistry()),
				ReadHeaderTimeout: 5 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				logger.Info("listening", "addr", addr)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
			}

			logger.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "127.0.0.1:8080", "Listen address")
	cmd.Flags().StringVarP(&title, "title", "t", "el demo", "Page title")

	return cmd
}
