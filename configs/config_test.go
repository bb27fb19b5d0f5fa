package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thirdweb-dev/ethereum-etl/internal/export"
	"github.com/thirdweb-dev/ethereum-etl/internal/worker"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func resetConfig(t *testing.T) {
	t.Helper()
	viper.Reset()
	Cfg = Config{}
	t.Cleanup(func() {
		viper.Reset()
		Cfg = Config{}
	})
}

func TestLoadConfigFromFile(t *testing.T) {
	resetConfig(t)
	path := writeConfig(t, `
rpc:
  url: https://eth.example.org
export:
  startBlock: 100
  endBlock: 104
  blocksOutput: blocks.csv
log:
  level: debug
`)

	require.NoError(t, LoadConfig(path))

	assert.Equal(t, "https://eth.example.org", Cfg.RPC.URL)
	assert.Equal(t, uint64(100), Cfg.Export.StartBlock)
	require.NotNil(t, Cfg.Export.EndBlock)
	assert.Equal(t, uint64(104), *Cfg.Export.EndBlock)
	assert.Equal(t, export.DEFAULT_BATCH_SIZE, Cfg.Export.BatchSize)
	assert.Equal(t, 5, Cfg.Export.MaxWorkers)
	assert.Equal(t, "csv", Cfg.Export.Format)
	assert.Equal(t, "blocks.csv", Cfg.Export.BlocksOutput)
	assert.Empty(t, Cfg.Export.TransactionsOutput)
	assert.Equal(t, 2112, Cfg.Metrics.Port)
	assert.Equal(t, "debug", Cfg.Log.Level)
	assert.False(t, Cfg.S3Enabled())
	assert.NoError(t, Cfg.Validate())
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	resetConfig(t)
	path := writeConfig(t, `
export:
  batchSize: 10
`)
	t.Setenv("RPC_URL", "http://localhost:8545")
	t.Setenv("EXPORT_BATCHSIZE", "25")
	t.Setenv("EXPORT_ENDBLOCK", "0")
	t.Setenv("S3_BUCKET", "exports")

	require.NoError(t, LoadConfig(path))

	assert.Equal(t, "http://localhost:8545", Cfg.RPC.URL)
	assert.Equal(t, uint64(25), Cfg.Export.BatchSize)
	require.NotNil(t, Cfg.Export.EndBlock)
	assert.Zero(t, *Cfg.Export.EndBlock)
	assert.True(t, Cfg.S3Enabled())
	assert.Equal(t, "info", Cfg.Log.Level, "progress and stats lines are logged at info")
	assert.Equal(t, worker.DEFAULT_MAX_WORKERS, Cfg.Export.MaxWorkers)
	assert.NoError(t, Cfg.Validate())
}

func TestLoadConfigMissingFile(t *testing.T) {
	resetConfig(t)
	err := LoadConfig(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	endBlock := uint64(10)
	valid := func() Config {
		return Config{
			RPC:     RPCConfig{URL: "https://eth.example.org"},
			Export:  ExportConfig{EndBlock: &endBlock, BatchSize: 100, MaxWorkers: 5, Format: "csv"},
			Metrics: MetricsConfig{Port: 2112},
		}
	}

	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{name: "missing rpc url", mutate: func(c *Config) { c.RPC.URL = "" }, field: "Config.RPC.URL"},
		{name: "missing end block", mutate: func(c *Config) { c.Export.EndBlock = nil }, field: "Config.Export.EndBlock"},
		{name: "zero batch size", mutate: func(c *Config) { c.Export.BatchSize = 0 }, field: "Config.Export.BatchSize"},
		{name: "zero max workers", mutate: func(c *Config) { c.Export.MaxWorkers = 0 }, field: "Config.Export.MaxWorkers"},
		{name: "unknown format", mutate: func(c *Config) { c.Export.Format = "json" }, field: "Config.Export.Format"},
		{name: "bad s3 endpoint", mutate: func(c *Config) { c.S3.Endpoint = "not a url" }, field: "Config.S3.Endpoint"},
	}

	cfg := valid()
	require.NoError(t, cfg.Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			assert.ErrorIs(t, err, ErrValidationFailed)
			assert.ErrorContains(t, err, tt.field)
		})
	}
}
