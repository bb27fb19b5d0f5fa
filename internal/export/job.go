package export

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/thirdweb-dev/ethereum-etl/internal/common"
	"github.com/thirdweb-dev/ethereum-etl/internal/exporter"
	"github.com/thirdweb-dev/ethereum-etl/internal/metrics"
	"github.com/thirdweb-dev/ethereum-etl/internal/progress"
	"github.com/thirdweb-dev/ethereum-etl/internal/rpc"
	"github.com/thirdweb-dev/ethereum-etl/internal/worker"
)

// DEFAULT_BATCH_SIZE is the batch size used when none is configured.
const DEFAULT_BATCH_SIZE uint64 = 100

var ErrInvalidBatchSize = errors.New("batch size must be at least 1")
var ErrInvalidMaxWorkers = errors.New("max workers must be at least 1")

type Config struct {
	StartBlock uint64
	EndBlock   uint64
	BatchSize  uint64
	MaxWorkers int
}

// Stats is the cumulative outcome of a run, including a run that stopped on
// an error.
type Stats struct {
	BlocksProcessed       uint64
	TransactionsProcessed uint64
	SkippedBlocks         uint64
	FailedWrites          uint64
	Elapsed               time.Duration
}

// ExportBlocksJob exports a closed range of blocks batch by batch. Every
// block of a batch has finished, including its writes, before the next batch
// starts.
type ExportBlocksJob struct {
	blockRange common.BlockRange
	batchSize  uint64
	worker     *worker.Worker
	tracker    *progress.Tracker
}

func NewExportBlocksJob(rpc rpc.IRPCClient, sink exporter.IRowSink, observer progress.Observer, cfg Config) (*ExportBlocksJob, error) {
	if cfg.BatchSize < 1 {
		return nil, ErrInvalidBatchSize
	}
	if cfg.MaxWorkers < 1 {
		return nil, ErrInvalidMaxWorkers
	}
	blockRange := common.BlockRange{Start: cfg.StartBlock, End: cfg.EndBlock}
	return &ExportBlocksJob{
		blockRange: blockRange,
		batchSize:  cfg.BatchSize,
		worker:     worker.NewWorker(rpc, sink, cfg.MaxWorkers),
		tracker:    progress.NewTracker(observer, progress.WithTotal(blockRange.Len())),
	}, nil
}

// Run exports the range. The first fetch failure of a batch stops the run
// once that whole batch has drained; rows already written stay written.
// Cancelling ctx stops the run at the next batch boundary.
func (j *ExportBlocksJob) Run(ctx context.Context) (stats Stats, err error) {
	startTime := time.Now()
	j.tracker.Start()
	defer func() {
		stats.Elapsed = time.Since(startTime)
		j.tracker.Finish()
	}()

	for batch := range j.blockRange.Batches(j.batchSize) {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return stats, fmt.Errorf("export interrupted before block %d: %w", batch.Start, ctxErr)
		}
		if err := j.runBatch(ctx, batch, &stats); err != nil {
			return stats, err
		}
	}
	return stats, nil
}

func (j *ExportBlocksJob) runBatch(ctx context.Context, batch common.BlockRange, stats *Stats) error {
	log.Debug().Uint64("batch_start", batch.Start).Uint64("batch_end", batch.End).Msg("Exporting batch")
	batchStart := time.Now()

	// in-flight blocks always run to completion, cancellation is only honoured between batches
	results := j.worker.Run(context.WithoutCancel(ctx), batch.Numbers())
	metrics.BatchDuration.Observe(time.Since(batchStart).Seconds())

	var firstErr error
	var completed uint64
	for _, result := range results {
		if result.Error != nil {
			if firstErr == nil {
				firstErr = result.Error
			}
			continue
		}
		completed++
		switch {
		case result.Skipped:
			stats.SkippedBlocks++
		case result.WriteError != nil:
			stats.FailedWrites++
		default:
			stats.BlocksProcessed++
			stats.TransactionsProcessed += uint64(result.TransactionCount)
		}
	}
	j.tracker.Track(completed)

	if firstErr != nil {
		log.Error().Err(firstErr).Uint64("batch_start", batch.Start).Uint64("batch_end", batch.End).Msg("Batch failed")
		return firstErr
	}
	metrics.LastExportedBatchEndBlock.Set(float64(batch.End))
	return nil
}
