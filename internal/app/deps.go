package app

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/arumata/solidnotify/internal/adapters/console"
	"github.com/arumata/solidnotify/internal/adapters/metrics"
	"github.com/arumata/solidnotify/internal/adapters/noop"
	"github.com/arumata/solidnotify/internal/adapters/notification"
	"github.com/arumata/solidnotify/internal/usecase"
)

// NewDependencies builds the notifier for channel and the configured log sink,
// both writing to out and counted by rec.
func NewDependencies(
	channel usecase.Channel,
	cfg *usecase.Config,
	out io.Writer,
	rec *metrics.Recorder,
	logger *slog.Logger,
) (*usecase.Dependencies, error) {
	if logger == nil {
		panic("dependencies require logger")
	}
	if cfg == nil || out == nil {
		return nil, fmt.Errorf("config and output are required: %w", usecase.ErrCritical)
	}

	notifier, err := notification.New(channel, out, notification.Prefixes{
		Email: cfg.EmailPrefix,
		SMS:   cfg.SMSPrefix,
	}, logger)
	if err != nil {
		return nil, err
	}

	var sink usecase.LoggerPort
	switch cfg.LogSink {
	case usecase.LogSinkConsole, "":
		sink = console.New(out, cfg.LogPrefix)
	case usecase.LogSinkDiscard:
		sink = noop.NewLogger()
	default:
		return nil, fmt.Errorf("unknown log sink %q: %w", cfg.LogSink, usecase.ErrUsage)
	}

	logger.Debug("Dependencies built", "channel", channel.String(), "sink", cfg.LogSink)
	return &usecase.Dependencies{
		Notifier: metrics.NewNotifier(notifier, channel, rec),
		Logger:   metrics.NewLogger(sink, cfg.LogSink, rec),
	}, nil
}

// NewFactory returns a DependenciesFactory bound to cfg, out and rec.
func NewFactory(cfg *usecase.Config, out io.Writer, rec *metrics.Recorder, logger *slog.Logger) usecase.DependenciesFactory {
	return func(channel usecase.Channel) (*usecase.Dependencies, error) {
		return NewDependencies(channel, cfg, out, rec, logger)
	}
}
