package tmpstorage

import (
	"context"
	"sync"
	"time"

	"github.com/buildbarn/bb-storage/pkg/clock"
	"github.com/buildbarn/bb-storage/pkg/util"
	"github.com/prometheus/client_golang/prometheus"

	"google.golang.org/grpc/status"
)

var (
	providerPrometheusMetrics sync.Once

	providerAllocations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "buildbarn",
			Subsystem: "tmpstorage",
			Name:      "allocations_total",
			Help:      "Number of requests for temporary storage, by outcome.",
		},
		[]string{"result", "grpc_code"})
	providerAllocationsRequestedSizeBytes = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "buildbarn",
			Subsystem: "tmpstorage",
			Name:      "allocations_requested_size_bytes",
			Help:      "Size of requests for temporary storage, in bytes.",
			Buckets:   prometheus.ExponentialBuckets(1.0, 2.0, 41),
		},
		[]string{"result"})
	providerCleanups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "buildbarn",
			Subsystem: "tmpstorage",
			Name:      "cleanups_total",
			Help:      "Number of times temporary storage was cleaned up, by kind and outcome.",
		},
		[]string{"kind", "result", "grpc_code"})
	providerDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "buildbarn",
			Subsystem: "tmpstorage",
			Name:      "operation_duration_seconds",
			Help:      "Amount of time spent per operation on temporary storage, in seconds.",
			Buckets:   util.DecimalExponentialBuckets(-3, 6, 2),
		},
		[]string{"operation"})
)

type metricsProvider struct {
	base  Provider
	clock clock.Clock
}

// NewMetricsProvider creates a decorator for Provider that exposes
// Prometheus metrics on the number of allocations that are admitted
// and rejected, and on the number of cleanups performed.
func NewMetricsProvider(base Provider, clock clock.Clock) Provider {
	providerPrometheusMetrics.Do(func() {
		prometheus.MustRegister(providerAllocations)
		prometheus.MustRegister(providerAllocationsRequestedSizeBytes)
		prometheus.MustRegister(providerCleanups)
		prometheus.MustRegister(providerDurationSeconds)
	})

	return &metricsProvider{
		base:  base,
		clock: clock,
	}
}

func (p *metricsProvider) observeDuration(operation string, start time.Time) {
	providerDurationSeconds.WithLabelValues(operation).Observe(p.clock.Now().Sub(start).Seconds())
}

func (p *metricsProvider) TryGetLocalTmpStorage(ctx context.Context, identifier string, requestedSizeBytes int64) (string, bool, error) {
	defer p.observeDuration("TryGetLocalTmpStorage", p.clock.Now())

	path, admitted, err := p.base.TryGetLocalTmpStorage(ctx, identifier, requestedSizeBytes)
	var result string
	switch {
	case err != nil:
		result = "Failed"
	case admitted:
		result = "Admitted"
	default:
		result = "Rejected"
	}
	providerAllocations.WithLabelValues(result, status.Code(err).String()).Inc()
	if requestedSizeBytes >= 0 {
		providerAllocationsRequestedSizeBytes.WithLabelValues(result).Observe(float64(requestedSizeBytes))
	}
	return path, admitted, err
}

func (p *metricsProvider) CleanupLocalTmpStorage(ctx context.Context, identifier string) error {
	defer p.observeDuration("CleanupLocalTmpStorage", p.clock.Now())

	err := p.base.CleanupLocalTmpStorage(ctx, identifier)
	observeCleanup("Allocation", err)
	return err
}

func (p *metricsProvider) CleanupLocalTmpStorageInCaseOfUncleanShutdown(ctx context.Context) error {
	defer p.observeDuration("CleanupLocalTmpStorageInCaseOfUncleanShutdown", p.clock.Now())

	err := p.base.CleanupLocalTmpStorageInCaseOfUncleanShutdown(ctx)
	observeCleanup("UncleanShutdown", err)
	return err
}

func observeCleanup(kind string, err error) {
	result := "Success"
	if err != nil {
		result = "Failure"
	}
	providerCleanups.WithLabelValues(kind, result, status.Code(err).String()).Inc()
}
