package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

func registerLoggingFlags(cmd *cobra.Command, o *options) {
	cmd.PersistentFlags().StringVar(&o.logLevel, "loglevel", "info", "set the log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&o.logFormat, "logformat", "text", "set the log format (text, json)")
}

func newLogger(w io.Writer, logLevel, format string) (*slog.Logger, error) {
	level, err := parseLevel(logLevel)
	if err != nil {
		return nil, err
	}

	var handler slog.Handler
	switch format {
	case "json":
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: level,
		})
	case "text":
		handler = slog.NewTextHandler(w, &slog.HandlerOptions{
			Level: level,
		})
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	return slog.New(handler), nil
}

func parseLevel(logLevel string) (slog.Level, error) {
	switch logLevel {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelWarn, fmt.Errorf("invalid log level: %s", logLevel)
	}
}
