// Package logger configures leveled, colored console logging.
package logger

import (
	"io"

	"github.com/op/go-logging"
)

var format = logging.MustStringFormatter(
	`%{color}%{time:15:04:05.000} %{shortfunc} ▶ %{level:.4s}%{color:reset} %{message}`,
)

// DefaultLogger returns a logger for module writing to out at the given
// level.
func DefaultLogger(out io.Writer, level logging.Level, module string) *logging.Logger {
	log := logging.MustGetLogger(module)

	backend := logging.NewLogBackend(out, "", 0)
	backendFormatter := logging.NewBackendFormatter(backend, format)
	backendLeveled := logging.AddModuleLevel(backendFormatter)
	backendLeveled.SetLevel(level, module)
	logging.SetBackend(backendLeveled)

	return log
}
