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
)

var (
	LoadCycles = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "waymap",
		Name:      "load_cycles_total",
		Help:      "Completed load cycles by outcome (ready, empty, failed)",
	}, []string{"outcome"})

	PointsAccepted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "waymap",
		Name:      "points_accepted_total",
		Help:      "Points accepted into a collection",
	})

	RecordsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "waymap",
		Name:      "records_rejected_total",
		Help:      "Input records rejected during validation",
	}, []string{"reason"})

	FetchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "waymap",
		Name:      "fetch_duration_seconds",
		Help:      "Duration of source retrieval",
		Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
	})
)

// Serve exposes /metrics on addr until ctx is cancelled.
func Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	zap.L().Info("metrics listener started", zap.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
