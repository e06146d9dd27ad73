package usecase

import (
	"fmt"
	"strings"
)

// RuntimeConfigFromFile converts TOML config into runtime config.
func RuntimeConfigFromFile(cfg ConfigFile) (*Config, error) {
	sink := strings.ToLower(strings.TrimSpace(cfg.Logger.Sink))
	switch sink {
	case "":
		sink = LogSinkConsole
	case LogSinkConsole, LogSinkDiscard:
	default:
		return nil, fmt.Errorf("logger.sink %q is not supported (want console or discard): %w", cfg.Logger.Sink, ErrUsage)
	}

	level := strings.ToLower(strings.TrimSpace(cfg.Logging.Level))
	switch level {
	case "":
		level = "info"
	case "debug", "info", "warn", "warning", "error":
	default:
		return nil, fmt.Errorf("logging.level %q is not supported: %w", cfg.Logging.Level, ErrUsage)
	}

	return &Config{
		EmailPrefix: cfg.Notifier.EmailPrefix,
		SMSPrefix:   cfg.Notifier.SMSPrefix,
		LogSink:     sink,
		LogPrefix:   cfg.Logger.Prefix,
		LogLevel:    level,
	}, nil
}
