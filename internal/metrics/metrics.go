package metrics

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"github.com/thirdweb-dev/ethereum-etl/internal/progress"
)

// Worker Metrics
var (
	ExportedBlocks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "worker_exported_blocks_total",
		Help: "The total number of blocks fetched, mapped and written",
	})

	ExportedTransactions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "worker_exported_transactions_total",
		Help: "The total number of transactions written",
	})

	SkippedBlocks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "worker_skipped_blocks_total",
		Help: "The number of blocks skipped because the provider response could not be mapped",
	})

	FailedFetches = promauto.NewCounter(prometheus.CounterOpts{
		Name: "worker_failed_fetches_total",
		Help: "The number of block fetches that failed",
	})

	FailedSinkWrites = promauto.NewCounter(prometheus.CounterOpts{
		Name: "worker_failed_sink_writes_total",
		Help: "The number of blocks whose rows could not be written",
	})
)

// Export Job Metrics
var (
	LastExportedBatchEndBlock = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "export_last_batch_end_block",
		Help: "The last block number of the most recently completed batch",
	})

	ExportProgressPercent = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "export_progress_percent",
		Help: "The last progress threshold reported for the running export",
	})

	ExportProcessedBlocks = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "export_processed_blocks",
		Help: "The number of blocks the running export has processed so far",
	})
)

// Operation Duration Metrics
var (
	BatchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "export_batch_duration_seconds",
		Help:    "Time taken to fetch and write one batch of blocks",
		Buckets: prometheus.DefBuckets,
	})
)

// ProgressObserver mirrors tracker signals into the export gauges.
type ProgressObserver struct{}

func (ProgressObserver) Observe(s progress.Signal) {
	ExportProcessedBlocks.Set(float64(s.Processed))
	switch s.Kind {
	case progress.SignalStarted:
		ExportProgressPercent.Set(0)
	case progress.SignalProgress:
		if s.HasTotal {
			ExportProgressPercent.Set(float64(s.Percent))
		}
	case progress.SignalFinished:
		if s.HasTotal {
			ExportProgressPercent.Set(100)
		}
	}
}

// StartServer serves /metrics on the given port until the process exits.
func StartServer(port int) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	addr := fmt.Sprintf(":%d", port)
	go func() {
		log.Info().Str("addr", addr).Msg("Starting metrics server")
		if err := http.ListenAndServe(addr, mux); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("Metrics server stopped")
		}
	}()
}
