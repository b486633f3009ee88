package config

import (
	"io"

	"github.com/phuslu/log"
)

// NewLogger builds the application logger. Output goes to w (stderr in the
// CLI) so that results on stdout stay machine readable.
func NewLogger(cfg LoggingConfig, w io.Writer) *log.Logger {
	logger := &log.Logger{
		Level:      log.ParseLevel(cfg.Level),
		TimeFormat: "15:04:05",
	}

	if cfg.Format == "json" {
		logger.TimeFormat = ""
		logger.Writer = &log.IOWriter{Writer: w}
	} else {
		logger.Writer = &log.ConsoleWriter{
			Writer:         w,
			ColorOutput:    false,
			EndWithMessage: true,
		}
	}
	return logger
}
