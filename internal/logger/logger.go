package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init configures the global zerolog logger.
// Format "json" is meant for production runs, anything else gets the console writer.
func Init(level, format string) {
	initWithWriter(level, format, os.Stderr)
}

func initWithWriter(level, format string, out io.Writer) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	var w io.Writer = out
	if format != "json" {
		w = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
		}
	}

	log.Logger = zerolog.New(w).With().
		Timestamp().
		Logger().
		Level(lvl)
}

// ForJob returns a child logger tagged with the normalizer job name
func ForJob(job string) zerolog.Logger {
	return log.Logger.With().Str("job", job).Logger()
}

// ForRun returns a child logger tagged with job name and run id
func ForRun(job, runID string) zerolog.Logger {
	return log.Logger.With().Str("job", job).Str("run_id", runID).Logger()
}
