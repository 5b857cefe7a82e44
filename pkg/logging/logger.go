// Package logging provides a simple, leveled logging facility. Logging is
// disabled by default and can be enabled by setting the
// EXECUTABILITY_LOG_LEVEL environment variable to a valid level name (e.g.
// "debug" or "trace").
package logging

import (
	"fmt"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// rootLevel is the process-wide log level, sourced once at startup from the
// EXECUTABILITY_LOG_LEVEL environment variable. An unset or invalid value
// disables logging.
var rootLevel Level

func init() {
	// Determine the root log level.
	rootLevel, _ = NameToLevel(os.Getenv("EXECUTABILITY_LOG_LEVEL"))

	// Disable colorization if standard error (the destination for the
	// standard logger) is not a terminal. The color package only performs this
	// detection for standard output.
	if !isatty.IsTerminal(os.Stderr.Fd()) && !isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		color.NoColor = true
	}
}

// Logger is the main logger type. It has the novel property that it still
// functions if nil, but it doesn't log anything. It is designed to use the
// standard logger provided by the log package, so it respects any flags set
// for that logger. It is safe for concurrent usage.
type Logger struct {
	// prefix is any prefix specified for the logger.
	prefix string
}

// RootLogger is the root logger from which all other loggers derive.
var RootLogger = &Logger{}

// Sublogger creates a new sublogger with the specified name.
func (l *Logger) Sublogger(name string) *Logger {
	// If the logger is nil, then the sublogger will be as well.
	if l == nil {
		return nil
	}

	// Compute the new prefix.
	prefix := name
	if l.prefix != "" {
		prefix = l.prefix + "." + name
	}

	// Create the new logger.
	return &Logger{
		prefix: prefix,
	}
}

// output is the internal logging method.
func (l *Logger) output(calldepth int, line string) {
	// Add a prefix if necessary.
	if l.prefix != "" {
		line = fmt.Sprintf("[%s] %s", l.prefix, line)
	}

	// Log.
	log.Output(calldepth, line)
}

// Info logs information with semantics equivalent to fmt.Print, but only if
// the info level is enabled (otherwise it's a no-op).
func (l *Logger) Info(v ...interface{}) {
	if l != nil && rootLevel >= LevelInfo {
		l.output(3, fmt.Sprint(v...))
	}
}

// Infof logs information with semantics equivalent to fmt.Printf, but only if
// the info level is enabled (otherwise it's a no-op).
func (l *Logger) Infof(format string, v ...interface{}) {
	if l != nil && rootLevel >= LevelInfo {
		l.output(3, fmt.Sprintf(format, v...))
	}
}

// Debug logs information with semantics equivalent to fmt.Print, but only if
// the debug level is enabled (otherwise it's a no-op).
func (l *Logger) Debug(v ...interface{}) {
	if l != nil && rootLevel >= LevelDebug {
		l.output(3, fmt.Sprint(v...))
	}
}

// Debugf logs information with semantics equivalent to fmt.Printf, but only if
// the debug level is enabled (otherwise it's a no-op).
func (l *Logger) Debugf(format string, v ...interface{}) {
	if l != nil && rootLevel >= LevelDebug {
		l.output(3, fmt.Sprintf(format, v...))
	}
}

// Trace logs information with semantics equivalent to fmt.Print, but only if
// the trace level is enabled (otherwise it's a no-op).
func (l *Logger) Trace(v ...interface{}) {
	if l != nil && rootLevel >= LevelTrace {
		l.output(3, fmt.Sprint(v...))
	}
}

// Tracef logs information with semantics equivalent to fmt.Printf, but only
// if the trace level is enabled (otherwise it's a no-op).
func (l *Logger) Tracef(format string, v ...interface{}) {
	if l != nil && rootLevel >= LevelTrace {
		l.output(3, fmt.Sprintf(format, v...))
	}
}

// Warn logs error information with a warning prefix and yellow color.
func (l *Logger) Warn(err error) {
	if l != nil && rootLevel >= LevelWarn {
		l.output(3, color.YellowString("Warning: %v", err))
	}
}

// Error logs error information with an error prefix and red color.
func (l *Logger) Error(err error) {
	if l != nil && rootLevel >= LevelError {
		l.output(3, color.RedString("Error: %v", err))
	}
}
