package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	batchesCommitted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "walletd_batches_committed_total",
		Help: "Total number of batches committed",
	})

	batchesRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "walletd_batches_rejected_total",
			Help: "Total number of batches rejected by reason",
		},
		[]string{"reason"},
	)

	recordsWritten = promauto.NewCounter(prometheus.CounterOpts{
		Name: "walletd_records_written_total",
		Help: "Total number of records written by committed batches",
	})

	batchSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "walletd_batch_size",
		Help:    "Number of records per submitted batch",
		Buckets: []float64{1, 2, 5, 10, 50, 100, 1000, 10000},
	})

	batchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "walletd_batch_duration_seconds",
		Help:    "Duration of batch reconciliation",
		Buckets: prometheus.DefBuckets,
	})
)

// ObserveBatchCommitted records a successfully committed batch.
func ObserveBatchCommitted(size int, duration time.Duration) {
	batchesCommitted.Inc()
	recordsWritten.Add(float64(size))
	batchSize.Observe(float64(size))
	batchDuration.Observe(duration.Seconds())
}

// ObserveBatchRejected records a rejected batch by reason.
func ObserveBatchRejected(reason string) {
	batchesRejected.WithLabelValues(reason).Inc()
}
