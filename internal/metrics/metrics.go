// Package metrics exposes Prometheus instrumentation for the wake supervisor.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// readHeaderTimeout bounds header reads on the metrics listener.
const readHeaderTimeout = 5 * time.Second

// Metrics bundles the supervisor counters on a dedicated registry.
type Metrics struct {
	// registry serves the metrics endpoint.
	registry *prometheus.Registry

	// TokensConstructed counts alarm tokens constructed, by alarm type.
	TokensConstructed *prometheus.CounterVec
	// WakesReported counts recorded wake-ups, by alarm type.
	WakesReported *prometheus.CounterVec
	// CycleResets counts wake-cycle resets.
	CycleResets prometheus.Counter
}

// New creates the supervisor metrics on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		TokensConstructed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ulpwake",
			Name:      "tokens_constructed_total",
			Help:      "Number of alarm tokens constructed, by alarm type.",
		}, []string{"type"}),
		WakesReported: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ulpwake",
			Name:      "wakes_reported_total",
			Help:      "Number of recorded wake-ups, by alarm type.",
		}, []string{"type"}),
		CycleResets: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ulpwake",
			Name:      "cycle_resets_total",
			Help:      "Number of wake-cycle resets.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		m.TokensConstructed,
		m.WakesReported,
		m.CycleResets,
	)

	return m
}

// Handler returns the HTTP handler serving the registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until ctx is canceled.
func (m *Metrics) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())

	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), readHeaderTimeout)
		defer cancel()

		_ = server.Shutdown(shutdownCtx)
	}()

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
