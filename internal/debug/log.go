package debug

import (
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/log"
)

// EnvVar names the file debug output is appended to.
const EnvVar = "BOXRECT_DEBUG"

var (
	once   sync.Once
	logger *log.Logger
)

// Log writes a formatted debug line if BOXRECT_DEBUG is set.
func Log(format string, args ...any) {
	once.Do(open)
	if logger == nil {
		return
	}
	logger.Debugf(format, args...)
}

func open() {
	path := os.Getenv(EnvVar)
	if path == "" {
		return
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	logger = newLogger(f)
}

// newLogger creates a debug-level logger with millisecond timestamps.
func newLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           log.DebugLevel,
		Prefix:          "boxrect",
	})
}
