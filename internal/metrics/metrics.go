// Package metrics exposes Prometheus counters for tracker actions and gateway calls
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	apperr "github.com/KirkDiggler/aegis-tracker/internal/errors"
)

// Gateways
const (
	GatewayGitHub    = "github"
	GatewayAssistant = "assistant"
	GatewayDND5E     = "dnd5e"
)

var (
	actionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "aegis",
			Name:      "actions_total",
			Help:      "Total number of tracker actions by operation and result.",
		},
		[]string{"action", "result"},
	)
	gatewayRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "aegis",
			Name:      "gateway_requests_total",
			Help:      "Total number of calls to external gateways by status.",
		},
		[]string{"gateway", "status"},
	)
	gatewayRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "aegis",
			Name:      "gateway_request_duration_seconds",
			Help:      "Histogram of external gateway call durations.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"gateway"},
	)
)

// Result turns an operation error into a metric label
func Result(err error) string {
	switch {
	case err == nil:
		return "ok"
	case apperr.IsRefused(err):
		return "refused"
	case apperr.IsInvalidArgument(err):
		return "invalid"
	case apperr.IsNotFound(err):
		return "not_found"
	case apperr.IsUnavailable(err):
		return "unavailable"
	case apperr.IsDecode(err):
		return "decode"
	default:
		return "error"
	}
}

// ObserveAction counts one tracker action
func ObserveAction(action string, err error) {
	actionsTotal.WithLabelValues(action, Result(err)).Inc()
}

// ObserveGateway counts one gateway call and records how long it took
func ObserveGateway(gateway string, started time.Time, err error) {
	gatewayRequestsTotal.WithLabelValues(gateway, Result(err)).Inc()
	gatewayRequestDuration.WithLabelValues(gateway).Observe(time.Since(started).Seconds())
}

// NewHandler serves /metrics and /health
func NewHandler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status": "ok"}`))
	})
	return mux
}

// Serve runs the metrics server on addr until ctx is cancelled
func Serve(ctx context.Context, addr string, logger *zap.Logger) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           NewHandler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	logger.Info("Starting metrics server", zap.String("addr", addr))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
