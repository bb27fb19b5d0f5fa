package config

import (
	"errors"
	"fmt"
	"strings"

	gvalidator "github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"github.com/thirdweb-dev/ethereum-etl/internal/export"
	"github.com/thirdweb-dev/ethereum-etl/internal/worker"
)

type RPCConfig struct {
	URL string `mapstructure:"url" validate:"required,url"`
}

type ExportConfig struct {
	StartBlock uint64 `mapstructure:"startBlock"`
	// EndBlock is inclusive. It has no default, a run must always name it.
	EndBlock           *uint64 `mapstructure:"endBlock" validate:"required"`
	BatchSize          uint64  `mapstructure:"batchSize" validate:"min=1"`
	MaxWorkers         int     `mapstructure:"maxWorkers" validate:"min=1"`
	BlocksOutput       string  `mapstructure:"blocksOutput"`
	TransactionsOutput string  `mapstructure:"transactionsOutput"`
	Format             string  `mapstructure:"format" validate:"oneof=csv parquet"`
}

type LogConfig struct {
	Level    string `mapstructure:"level"`
	Prettify bool   `mapstructure:"prettify"`
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Port    int  `mapstructure:"port" validate:"omitempty,min=1,max=65535"`
}

type S3Config struct {
	Bucket          string `mapstructure:"bucket"`
	Region          string `mapstructure:"region"`
	Prefix          string `mapstructure:"prefix"`
	Endpoint        string `mapstructure:"endpoint" validate:"omitempty,url"`
	AccessKeyID     string `mapstructure:"accessKeyId"`
	SecretAccessKey string `mapstructure:"secretAccessKey"`
}

type Config struct {
	RPC     RPCConfig     `mapstructure:"rpc"`
	Export  ExportConfig  `mapstructure:"export"`
	Log     LogConfig     `mapstructure:"log"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	S3      S3Config      `mapstructure:"s3"`
}

var Cfg Config

// ErrValidationFailed is the first error of the chain returned by Validate.
var ErrValidationFailed = errors.New("config validation failed")

var validate = gvalidator.New(gvalidator.WithRequiredStructEnabled())

func setDefaults() {
	viper.SetDefault("export.startBlock", 0)
	viper.SetDefault("export.batchSize", export.DEFAULT_BATCH_SIZE)
	viper.SetDefault("export.maxWorkers", worker.DEFAULT_MAX_WORKERS)
	viper.SetDefault("export.format", "csv")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("metrics.port", 2112)
}

// LoadConfig reads cfgFile, or ./configs/config.yml and an optional secrets
// file next to it when cfgFile is empty. Environment variables override file
// values.
func LoadConfig(cfgFile string) error {
	setDefaults()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("error reading config file, %s", err)
		}
	} else {
		viper.SetConfigName("config")
		viper.AddConfigPath("./configs")

		if err := viper.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return fmt.Errorf("error reading config file, %s", err)
			}
		} else {
			viper.SetConfigName("secrets")
			if err := viper.MergeInConfig(); err != nil {
				var notFound viper.ConfigFileNotFoundError
				if !errors.As(err, &notFound) {
					return fmt.Errorf("error loading secrets file: %v", err)
				}
			}
		}
	}

	// sets e.g. RPC_URL to rpc.url
	replacer := strings.NewReplacer(".", "_")
	viper.SetEnvKeyReplacer(replacer)

	viper.AutomaticEnv()
	for _, key := range []string{"rpc.url", "export.endBlock", "export.blocksOutput", "export.transactionsOutput", "s3.bucket"} {
		if err := viper.BindEnv(key); err != nil {
			return fmt.Errorf("error binding env for %s: %v", key, err)
		}
	}

	err := viper.Unmarshal(&Cfg)
	if err != nil {
		return fmt.Errorf("error unmarshalling config: %v", err)
	}

	return nil
}

// Validate checks the struct tags of the config and joins one error per
// failing field after ErrValidationFailed.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidationFailed}
	for _, validationErr := range validationErrors {
		errs = append(errs, fmt.Errorf("'%s': value '%v' does not meet the requirements for the '%s' validation",
			validationErr.Namespace(),
			validationErr.Value(),
			validationErr.Tag(),
		))
	}
	return errors.Join(errs...)
}

// S3Enabled reports whether outputs should be uploaded after the run.
func (c *Config) S3Enabled() bool {
	return c.S3.Bucket != ""
}
