package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	configs "github.com/thirdweb-dev/ethereum-etl/configs"
	"github.com/thirdweb-dev/ethereum-etl/internal/export"
	"github.com/thirdweb-dev/ethereum-etl/internal/exporter"
	customLogger "github.com/thirdweb-dev/ethereum-etl/internal/log"
	"github.com/thirdweb-dev/ethereum-etl/internal/metrics"
	"github.com/thirdweb-dev/ethereum-etl/internal/progress"
	"github.com/thirdweb-dev/ethereum-etl/internal/rpc"
	"github.com/thirdweb-dev/ethereum-etl/internal/worker"
)

var exportCmd = &cobra.Command{
	Use:     "export_blocks_and_transactions",
	Aliases: []string{"export-blocks-and-transactions"},
	Short:   "Export blocks and transactions",
	Long:    "Fetch every block of an inclusive range with its transactions and append them as rows to the blocks and transactions outputs. An output without a path is not written.",
	Args:    cobra.NoArgs,
	RunE:    RunExport,
}

func init() {
	exportCmd.Flags().StringP("provider-uri", "p", "", "The URI of the JSON-RPC node, http or https")
	exportCmd.Flags().Uint64P("start-block", "s", 0, "Start block")
	exportCmd.Flags().Uint64P("end-block", "e", 0, "End block, inclusive (required)")
	exportCmd.Flags().Uint64P("batch-size", "b", export.DEFAULT_BATCH_SIZE, "The number of blocks exported before waiting for all of them to finish")
	exportCmd.Flags().IntP("max-workers", "w", worker.DEFAULT_MAX_WORKERS, "The maximum number of blocks fetched at the same time")
	exportCmd.Flags().String("blocks-output", "", "The output file for blocks. If not provided blocks will not be exported")
	exportCmd.Flags().String("transactions-output", "", "The output file for transactions. If not provided transactions will not be exported")
	exportCmd.Flags().String("format", "csv", "Output format, csv or parquet")
	viper.BindPFlag("rpc.url", exportCmd.Flags().Lookup("provider-uri"))
	viper.BindPFlag("export.startBlock", exportCmd.Flags().Lookup("start-block"))
	viper.BindPFlag("export.batchSize", exportCmd.Flags().Lookup("batch-size"))
	viper.BindPFlag("export.maxWorkers", exportCmd.Flags().Lookup("max-workers"))
	viper.BindPFlag("export.blocksOutput", exportCmd.Flags().Lookup("blocks-output"))
	viper.BindPFlag("export.transactionsOutput", exportCmd.Flags().Lookup("transactions-output"))
	viper.BindPFlag("export.format", exportCmd.Flags().Lookup("format"))
}

// bindEndBlock forwards --end-block only when it was given, so that a missing
// end block is reported instead of defaulting to zero.
func bindEndBlock() {
	flag := exportCmd.Flags().Lookup("end-block")
	if flag != nil && flag.Changed {
		viper.Set("export.endBlock", flag.Value.String())
	}
}

func RunExport(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	cfg := configs.Cfg
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			log.Info().Msg("Received shutdown signal, stopping after the current batch")
			cancel()
		case <-ctx.Done():
		}
	}()

	if cfg.Metrics.Enabled {
		metrics.StartServer(cfg.Metrics.Port)
	}

	rpcClient, err := rpc.Initialize(ctx, cfg.RPC.URL)
	if err != nil {
		return err
	}
	defer rpcClient.Close()

	sink, err := exporter.NewRowSink(exporter.SinkConfig{
		BlocksOutput:       cfg.Export.BlocksOutput,
		TransactionsOutput: cfg.Export.TransactionsOutput,
		Format:             exporter.Format(cfg.Export.Format),
	})
	if err != nil {
		return err
	}

	observer := progress.MultiObserver{
		progress.NewLogObserver(customLogger.NewLogger("progress")),
		metrics.ProgressObserver{},
	}
	job, err := export.NewExportBlocksJob(rpcClient, sink, observer, export.Config{
		StartBlock: cfg.Export.StartBlock,
		EndBlock:   *cfg.Export.EndBlock,
		BatchSize:  cfg.Export.BatchSize,
		MaxWorkers: cfg.Export.MaxWorkers,
	})
	if err != nil {
		sink.Close()
		return err
	}

	stats, runErr := job.Run(ctx)
	closeErr := sink.Close()

	log.Info().
		Uint64("blocks", stats.BlocksProcessed).
		Uint64("transactions", stats.TransactionsProcessed).
		Uint64("skipped_blocks", stats.SkippedBlocks).
		Uint64("failed_writes", stats.FailedWrites).
		Dur("elapsed", stats.Elapsed).
		Msg("Export finished")

	if err := errors.Join(runErr, closeErr); err != nil {
		return err
	}

	if cfg.S3Enabled() {
		uploader, err := exporter.NewS3Uploader(ctx, exporter.S3Config{
			Bucket:          cfg.S3.Bucket,
			Region:          cfg.S3.Region,
			Prefix:          cfg.S3.Prefix,
			Endpoint:        cfg.S3.Endpoint,
			AccessKeyID:     cfg.S3.AccessKeyID,
			SecretAccessKey: cfg.S3.SecretAccessKey,
		})
		if err != nil {
			return err
		}
		if err := uploader.UploadFiles(ctx, sink.Paths()); err != nil {
			return err
		}
	}
	return nil
}
