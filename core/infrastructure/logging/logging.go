package logging

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"
)

// Log level constants
const (
	LogLevelError = 1
	LogLevelWarn  = 2
	LogLevelInfo  = 3
	LogLevelDebug = 4
)

var (
	globalLogLevel = LogLevelInfo
	logLevelMutex  sync.RWMutex
)

// Logger is the tagged logging interface used across the gateway
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
	Error(msg string, err error)
}

// SetLogLevel sets the global log level
func SetLogLevel(level int) {
	logLevelMutex.Lock()
	defer logLevelMutex.Unlock()
	if level >= LogLevelError && level <= LogLevelDebug {
		globalLogLevel = level
		zerolog.SetGlobalLevel(convertLogLevel(level))
	}
}

// GetLogLevel returns the current global log level
func GetLogLevel() int {
	logLevelMutex.RLock()
	defer logLevelMutex.RUnlock()
	return globalLogLevel
}

// ParseLevel converts a textual level ("debug", "info", "warn", "error")
// to the numeric level, defaulting to info.
func ParseLevel(s string) int {
	switch s {
	case "error":
		return LogLevelError
	case "warn", "warning":
		return LogLevelWarn
	case "debug":
		return LogLevelDebug
	default:
		return LogLevelInfo
	}
}

// ZerologLogger implements Logger using zerolog
type ZerologLogger struct {
	tag    string
	logger zerolog.Logger
}

// New creates a new logger instance with a tag
func New(tag string) Logger {
	logger := log.Logger.With().Str("tag", tag).Logger()

	// Pretty console output when attached to a terminal
	if isInteractive() {
		var output io.Writer = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "2006-01-02T15:04:05.000Z"}
		logger = zerolog.New(output).With().Str("tag", tag).Timestamp().Logger()
	}

	return &ZerologLogger{
		tag:    tag,
		logger: logger,
	}
}

func isInteractive() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func convertLogLevel(level int) zerolog.Level {
	switch level {
	case LogLevelError:
		return zerolog.ErrorLevel
	case LogLevelWarn:
		return zerolog.WarnLevel
	case LogLevelDebug:
		return zerolog.DebugLevel
	default:
		return zerolog.InfoLevel
	}
}

// Debugf logs a debug message
func (l *ZerologLogger) Debugf(format string, args ...any) {
	l.logger.Debug().Msgf(format, args...)
}

// Infof logs an info message
func (l *ZerologLogger) Infof(format string, args ...any) {
	l.logger.Info().Msgf(format, args...)
}

// Warnf logs a warning message
func (l *ZerologLogger) Warnf(format string, args ...any) {
	l.logger.Warn().Msgf(format, args...)
}

// Errorf logs an error message
func (l *ZerologLogger) Errorf(format string, args ...any) {
	l.logger.Error().Msgf(format, args...)
}

// Error logs a message together with an error value
func (l *ZerologLogger) Error(msg string, err error) {
	l.logger.Error().Err(err).Msg(msg)
}
