package log

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
	config "github.com/thirdweb-dev/ethereum-etl/configs"
)

// InitLogger overrides the zerolog global logger and level from config.Cfg.
func InitLogger() {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	zerolog.SetGlobalLevel(ParseLevel(config.Cfg.Log.Level))
	log.Logger = NewLogger("default")
}

// NewLogger returns a stderr logger tagged with the component name.
func NewLogger(name string) zerolog.Logger {
	return New(os.Stderr, config.Cfg.Log, name)
}

func New(w io.Writer, cfg config.LogConfig, name string) zerolog.Logger {
	if cfg.Prettify {
		w = zerolog.ConsoleWriter{Out: w}
	}
	return zerolog.New(w).With().Timestamp().Str("component", name).Caller().Logger()
}

// ParseLevel falls back to warn for empty or unknown levels.
func ParseLevel(level string) zerolog.Level {
	if lvl, err := zerolog.ParseLevel(level); err == nil && lvl != zerolog.NoLevel {
		return lvl
	}
	return zerolog.WarnLevel
}
