// Package log wraps go-logging with the small leveled surface the
// renderer needs: named module loggers and a global verbosity switch.
package log

import (
	"os"

	"github.com/op/go-logging"
)

type Level logging.Level

const (
	Debug Level = iota
	Info
	Error
)

var backend logging.LeveledBackend

// Logger is the per-module logging surface
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})

	Info(v ...interface{})
	Infof(format string, v ...interface{})

	Error(v ...interface{})
	Errorf(format string, v ...interface{})
}

// New returns a logger tagged with the given module name
func New(name string) Logger {
	return logging.MustGetLogger(name)
}

// SetLevel sets the verbosity for all modules
func SetLevel(level Level) {
	switch level {
	case Debug:
		backend.SetLevel(logging.DEBUG, "")
	case Error:
		backend.SetLevel(logging.ERROR, "")
	default:
		backend.SetLevel(logging.INFO, "")
	}
}

func init() {
	format := logging.MustStringFormatter(
		`%{color}%{time:15:04:05.000} %{module} %{level:.4s}%{color:reset} %{message}`,
	)
	out := logging.NewBackendFormatter(logging.NewLogBackend(os.Stderr, "", 0), format)
	backend = logging.AddModuleLevel(out)
	backend.SetLevel(logging.INFO, "")
	logging.SetBackend(backend)
}
