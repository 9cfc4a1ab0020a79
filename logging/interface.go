package logging

import (
	"context"
	"io"
	"log/slog"
	"runtime"
	"time"

	"github.com/runningwild/glop/glog"
)

// The whole tool logs through one leveled logger. Renders are one-shot and
// single-threaded so there is no need for per-subsystem loggers.
var defaultLogger glog.Logger

func init() {
	defaultLogger = glog.New(&glog.Opts{
		Level: slog.LevelInfo,
	})
}

func DefaultLogger() glog.Logger {
	return defaultLogger
}

// Emits through the default logger's handler but attributes the record to the
// caller of the package-level helpers.
func doLog(lvl slog.Level, msg string, args ...interface{}) {
	if !defaultLogger.Enabled(context.Background(), lvl) {
		return
	}
	var pcs [1]uintptr
	runtime.Callers(3, pcs[:]) // skip [Callers, <helper>, doLog]
	r := slog.NewRecord(time.Now(), lvl, msg, pcs[0])
	r.Add(args...)
	defaultLogger.Handler().Handle(context.Background(), r)
}

func Trace(msg string, args ...interface{}) {
	doLog(glog.LevelTrace, msg, args...)
}

func Debug(msg string, args ...interface{}) {
	doLog(slog.LevelDebug, msg, args...)
}

func Info(msg string, args ...interface{}) {
	doLog(slog.LevelInfo, msg, args...)
}

func Warn(msg string, args ...interface{}) {
	doLog(slog.LevelWarn, msg, args...)
}

func Error(msg string, args ...interface{}) {
	doLog(slog.LevelError, msg, args...)
}

// Changes the default logger's verbosity. A function that undoes the change
// is returned.
func SetLogLevel(lvl slog.Level) func() {
	oldLogger := defaultLogger
	defaultLogger = glog.Relevel(defaultLogger, lvl)
	return func() {
		defaultLogger = oldLogger
	}
}

// Call this to redirect all logging output to the given io.Writer. A cleanup
// function that undoes the redirect is returned.
func Redirect(newOut io.Writer) func() {
	oldLogger := defaultLogger
	defaultLogger = glog.WithRedirect(oldLogger, newOut)
	return func() {
		defaultLogger = oldLogger
	}
}
