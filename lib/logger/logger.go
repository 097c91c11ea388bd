package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu  sync.RWMutex
	log = zerolog.New(os.Stderr).Level(zerolog.InfoLevel).With().Timestamp().Logger()
)

func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	log = log.Output(w)
}

// SetLevel accepts the zerolog level names ("debug", "info", "warn", ...).
func SetLevel(level string) error {
	l, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	mu.Lock()
	defer mu.Unlock()
	log = log.Level(l)
	return nil
}

func current() *zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	l := log
	return &l
}

func Debug(v ...any) {
	current().Debug().Msg(fmt.Sprint(v...))
}

func Debugf(format string, v ...any) {
	current().Debug().Msgf(format, v...)
}

func Info(v ...any) {
	current().Info().Msg(fmt.Sprint(v...))
}

func Infof(format string, v ...any) {
	current().Info().Msgf(format, v...)
}

func Warn(v ...any) {
	current().Warn().Msg(fmt.Sprint(v...))
}

func Warnf(format string, v ...any) {
	current().Warn().Msgf(format, v...)
}

func Error(v ...any) {
	current().Error().Msg(fmt.Sprint(v...))
}

func Errorf(format string, v ...any) {
	current().Error().Msgf(format, v...)
}

func Fatal(v ...any) {
	current().Fatal().Msg(fmt.Sprint(v...))
}
