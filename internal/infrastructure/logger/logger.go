package logger

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"therapist-server/services/therapy-api/internal/config"
)

// New constructs the service logger from level and format configuration.
// Unknown levels or formats fall back to info level console output.
func New(cfg *config.Config) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	var log zerolog.Logger
	switch strings.ToLower(cfg.LogFormat) {
	case "json":
		log = zerolog.New(os.Stdout).With().Timestamp().Logger()
	default:
		consoleWriter := zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		}
		log = zerolog.New(consoleWriter).With().Timestamp().Logger()
	}

	zerolog.SetGlobalLevel(lvl)

	return log.Level(lvl).With().Str("service", cfg.ServiceName).Logger()
}
