package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/thirdweb-dev/ethereum-etl/internal/common"
	"github.com/thirdweb-dev/ethereum-etl/internal/exporter"
	"github.com/thirdweb-dev/ethereum-etl/internal/metrics"
	"github.com/thirdweb-dev/ethereum-etl/internal/rpc"
	"golang.org/x/sync/semaphore"
)

const DEFAULT_MAX_WORKERS = 5

type Worker struct {
	rpc  rpc.IRPCClient
	sink exporter.IRowSink
	sem  *semaphore.Weighted
}

// BlockResult is the outcome of exporting one block. Error is set only when
// the block could not be fetched; a skipped block or a failed write still
// counts as processed.
type BlockResult struct {
	BlockNumber      uint64
	Error            error
	Skipped          bool
	WriteError       error
	TransactionCount int
}

// Exported reports whether the block and its transactions reached the sink.
func (r BlockResult) Exported() bool {
	return r.Error == nil && !r.Skipped && r.WriteError == nil
}

// NewWorker returns a worker that keeps at most maxWorkers block exports in
// flight. Values below one fall back to DEFAULT_MAX_WORKERS.
func NewWorker(rpc rpc.IRPCClient, sink exporter.IRowSink, maxWorkers int) *Worker {
	if maxWorkers < 1 {
		maxWorkers = DEFAULT_MAX_WORKERS
	}
	return &Worker{
		rpc:  rpc,
		sink: sink,
		sem:  semaphore.NewWeighted(int64(maxWorkers)),
	}
}

// Run exports every block number concurrently and returns once all of them
// have finished, in completion order. A failing block does not stop the
// others.
func (w *Worker) Run(ctx context.Context, blockNumbers []uint64) []BlockResult {
	var wg sync.WaitGroup
	blockCount := len(blockNumbers)
	resultsCh := make(chan BlockResult, blockCount)
	for _, blockNumber := range blockNumbers {
		wg.Add(1)

		go func(bn uint64) {
			defer wg.Done()
			resultsCh <- w.processBlock(ctx, bn)
		}(blockNumber)
	}
	go func() {
		wg.Wait()
		close(resultsCh)
	}()

	results := make([]BlockResult, 0, blockCount)
	for result := range resultsCh {
		results = append(results, result)
	}

	return results
}

func (w *Worker) processBlock(ctx context.Context, blockNumber uint64) BlockResult {
	if err := ctx.Err(); err != nil {
		return BlockResult{BlockNumber: blockNumber, Error: fmt.Errorf("block %d not started: %w", blockNumber, err)}
	}
	if err := w.sem.Acquire(ctx, 1); err != nil {
		return BlockResult{BlockNumber: blockNumber, Error: fmt.Errorf("block %d not started: %w", blockNumber, err)}
	}
	defer w.sem.Release(1)

	log.Debug().Msgf("Processing block %d", blockNumber)
	rawBlock, err := w.rpc.GetBlockWithTransactions(ctx, blockNumber)
	if err != nil {
		metrics.FailedFetches.Inc()
		return BlockResult{BlockNumber: blockNumber, Error: err}
	}

	blockData, err := rpc.SerializeBlock(rawBlock)
	if err != nil {
		var mappingErr *common.MappingError
		if errors.As(err, &mappingErr) {
			log.Warn().Err(err).Uint64("block_number", blockNumber).Msg("Skipping block with incomplete provider response")
			metrics.SkippedBlocks.Inc()
			return BlockResult{BlockNumber: blockNumber, Skipped: true}
		}
		return BlockResult{BlockNumber: blockNumber, Error: err}
	}

	if err := exporter.ExportBlock(w.sink, &blockData); err != nil {
		log.Error().Err(err).Uint64("block_number", blockNumber).Msg("Failed to write block rows")
		metrics.FailedSinkWrites.Inc()
		return BlockResult{BlockNumber: blockNumber, WriteError: err}
	}

	txCount := len(blockData.Transactions)
	metrics.ExportedBlocks.Inc()
	metrics.ExportedTransactions.Add(float64(txCount))
	return BlockResult{BlockNumber: blockNumber, TransactionCount: txCount}
}
