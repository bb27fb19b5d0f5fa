package progress

import (
	"github.com/rs/zerolog"
)

// LogObserver writes signals to the given logger.
type LogObserver struct {
	logger zerolog.Logger
}

func NewLogObserver(logger zerolog.Logger) *LogObserver {
	return &LogObserver{logger: logger}
}

func (o *LogObserver) Observe(s Signal) {
	switch s.Kind {
	case SignalStarted:
		event := o.logger.Info()
		if s.HasTotal {
			event = event.Uint64("total", s.Total)
		}
		event.Msg("Started work")
	case SignalProgress:
		event := o.logger.Info().Uint64("processed", s.Processed)
		if s.HasTotal {
			event.Uint64("percent", s.Percent).Msgf("%d items processed. Progress is %d%%", s.Processed, s.Percent)
			return
		}
		event.Msgf("%d items processed", s.Processed)
	case SignalFinished:
		o.logger.Info().
			Uint64("processed", s.Processed).
			Dur("elapsed", s.Elapsed).
			Msgf("Finished work. Total items processed: %d. Took %s", s.Processed, s.Elapsed)
	}
}
