// Package metrics exposes Prometheus collectors and the health endpoint.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	chi "github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

var (
	CommandsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "apod_bot_commands_total",
		Help: "Commands handled, by command name.",
	}, []string{"command"})

	APIRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "apod_bot_api_requests_total",
		Help: "APOD API fetches, by outcome.",
	}, []string{"outcome"})

	PageTransitionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "apod_bot_page_transitions_total",
		Help: "Navigation page transitions, by outcome.",
	}, []string{"outcome"})

	ActiveSessions = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "apod_bot_active_sessions",
		Help: "Navigation sessions currently accepting input.",
	})
)

// MustRegister registers all collectors with the given registerer.
func MustRegister(registerer prometheus.Registerer) {
	registerer.MustRegister(
		CommandsTotal,
		APIRequestsTotal,
		PageTransitionsTotal,
		ActiveSessions,
	)
}

// ObserveFetch records the outcome of one APOD API fetch.
func ObserveFetch(err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	APIRequestsTotal.WithLabelValues(outcome).Inc()
}

// StartServer serves /metrics and /healthz on addr until ctx is done.
func StartServer(ctx context.Context, logger zerolog.Logger, addr string) {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("metrics: graceful shutdown failed")
		}
	}()

	go func() {
		logger.Info().Str("addr", addr).Msg("metrics: server started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("metrics: server stopped")
		}
	}()
}
