// Package logger owns the process-wide zerolog logger.
package logger

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

const timeFormat = "2006-01-02T15:04:05.000Z07:00"

var (
	once sync.Once
	log  zerolog.Logger
)

func configure() {
	zerolog.TimeFieldFormat = timeFormat

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: timeFormat,
	}

	log = zerolog.New(output).With().Timestamp().Logger()
}

// Configure sets the global level and returns the logger. The first call
// to Configure or Get builds the logger; later calls only change the level.
func Configure(level zerolog.Level) *zerolog.Logger {
	once.Do(configure)
	zerolog.SetGlobalLevel(level)
	return &log
}

func Get() *zerolog.Logger {
	once.Do(configure)
	return &log
}

// ParseLevel accepts zerolog level names. An empty name means info.
func ParseLevel(name string) (zerolog.Level, error) {
	if name == "" {
		return zerolog.InfoLevel, nil
	}
	return zerolog.ParseLevel(name)
}
