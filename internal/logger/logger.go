package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"anchira/internal/domain"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Logger interface {
	Log() *zerolog.Event
	Fatal() *zerolog.Event
	Err(err error) *zerolog.Event
	Error() *zerolog.Event
	Warn() *zerolog.Event
	Info() *zerolog.Event
	Trace() *zerolog.Event
	Debug() *zerolog.Event
	With() zerolog.Context
	SetLogLevel(level string)
}

type DefaultLogger struct {
	log     zerolog.Logger
	level   zerolog.Level
	writers []io.Writer
}

func New(cfg *domain.Config) Logger {
	l := &DefaultLogger{
		writers: make([]io.Writer, 0),
		level:   zerolog.DebugLevel,
	}

	l.SetLogLevel(cfg.LogLevel)

	if cfg.LogPath != "" {
		l.writers = append(l.writers, &lumberjack.Logger{
			Filename:   cfg.LogPath,
			MaxSize:    cfg.LogMaxSize,
			MaxBackups: cfg.LogMaxBackups,
		})
	} else {
		l.writers = append(l.writers, zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		})
	}

	l.buildLogger()

	return l
}

func (l *DefaultLogger) buildLogger() {
	l.log = zerolog.New(zerolog.MultiLevelWriter(l.writers...)).
		Level(l.level).
		With().
		Timestamp().
		Logger()
}

func (l *DefaultLogger) SetLogLevel(level string) {
	switch strings.ToUpper(level) {
	case "TRACE":
		l.level = zerolog.TraceLevel
	case "DEBUG":
		l.level = zerolog.DebugLevel
	case "INFO":
		l.level = zerolog.InfoLevel
	case "WARN":
		l.level = zerolog.WarnLevel
	case "ERROR":
		l.level = zerolog.ErrorLevel
	default:
		l.level = zerolog.DebugLevel
	}

	l.log = l.log.Level(l.level)
}

func (l *DefaultLogger) Log() *zerolog.Event {
	return l.log.Log().Timestamp()
}

func (l *DefaultLogger) Fatal() *zerolog.Event {
	return l.log.Fatal().Timestamp()
}

func (l *DefaultLogger) Err(err error) *zerolog.Event {
	return l.log.Err(err).Timestamp()
}

func (l *DefaultLogger) Error() *zerolog.Event {
	return l.log.Error().Timestamp()
}

func (l *DefaultLogger) Warn() *zerolog.Event {
	return l.log.Warn().Timestamp()
}

func (l *DefaultLogger) Info() *zerolog.Event {
	return l.log.Info().Timestamp()
}

func (l *DefaultLogger) Trace() *zerolog.Event {
	return l.log.Trace().Timestamp()
}

func (l *DefaultLogger) Debug() *zerolog.Event {
	return l.log.Debug().Timestamp()
}

func (l *DefaultLogger) With() zerolog.Context {
	return l.log.With()
}
