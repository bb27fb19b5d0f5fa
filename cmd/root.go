package cmd

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	configs "github.com/thirdweb-dev/ethereum-etl/configs"
	"github.com/thirdweb-dev/ethereum-etl/internal/env"
	customLogger "github.com/thirdweb-dev/ethereum-etl/internal/log"
)

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   "ethereumetl",
		Short: "Export Ethereum blocks and transactions",
		Long:  "ethereumetl fetches blocks with their transactions from a JSON-RPC node and writes them as CSV or Parquet rows",
	}
)

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./configs/config.yml)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level to use for the application")
	rootCmd.PersistentFlags().Bool("log-prettify", false, "Whether to prettify the log output")
	rootCmd.PersistentFlags().Bool("metrics-enabled", false, "Serve prometheus metrics while exporting")
	rootCmd.PersistentFlags().Int("metrics-port", 2112, "Port of the metrics server")
	rootCmd.PersistentFlags().String("s3-bucket", "", "Upload output files to this S3 bucket after the export")
	rootCmd.PersistentFlags().String("s3-region", "", "Region of the S3 bucket")
	rootCmd.PersistentFlags().String("s3-prefix", "", "Key prefix of uploaded files")
	rootCmd.PersistentFlags().String("s3-endpoint", "", "Custom S3 compatible endpoint")
	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log.prettify", rootCmd.PersistentFlags().Lookup("log-prettify"))
	viper.BindPFlag("metrics.enabled", rootCmd.PersistentFlags().Lookup("metrics-enabled"))
	viper.BindPFlag("metrics.port", rootCmd.PersistentFlags().Lookup("metrics-port"))
	viper.BindPFlag("s3.bucket", rootCmd.PersistentFlags().Lookup("s3-bucket"))
	viper.BindPFlag("s3.region", rootCmd.PersistentFlags().Lookup("s3-region"))
	viper.BindPFlag("s3.prefix", rootCmd.PersistentFlags().Lookup("s3-prefix"))
	viper.BindPFlag("s3.endpoint", rootCmd.PersistentFlags().Lookup("s3-endpoint"))
	rootCmd.AddCommand(exportCmd)
}

func initConfig() {
	env.Load()
	bindEndBlock()
	if err := configs.LoadConfig(cfgFile); err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	customLogger.InitLogger()
}
