package config

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger builds the process logger. Level comes from LOG_LEVEL,
// defaulting to info when unset or unparseable.
func NewLogger() zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	levelStr, _ := GetSecret("LOG_LEVEL")
	level, err := zerolog.ParseLevel(strings.ToLower(levelStr))
	if err != nil || levelStr == "" {
		level = zerolog.InfoLevel
	}

	return zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()
}
