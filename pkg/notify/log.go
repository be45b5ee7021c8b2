package notify

import (
	"github.com/rs/zerolog"

	"elevator-fsm/pkg/elev"
)

// Log writes one structured entry per event.
type Log struct {
	log   *zerolog.Logger
	level zerolog.Level
}

func NewLog(log *zerolog.Logger, level zerolog.Level) *Log {
	return &Log{log: log, level: level}
}

func (l *Log) Notify(e elev.Event) {
	l.log.WithLevel(l.level).
		Stringer("event", e.Kind).
		Int("floor", e.Floor).
		Str("request", e.Request.String()).
		Msg("elevator event")
}
