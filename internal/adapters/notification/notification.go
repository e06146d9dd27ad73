// Package notification implements NotifierPort for the console-backed channels.
package notification

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/arumata/solidnotify/internal/usecase"
)

// Prefixes holds the line prefix of each channel.
type Prefixes struct {
	Email string
	SMS   string
}

// New returns the notifier for channel writing to w.
func New(channel usecase.Channel, w io.Writer, prefixes Prefixes, logger *slog.Logger) (usecase.NotifierPort, error) {
	if w == nil {
		panic("notifier requires writer")
	}
	if logger == nil {
		logger = slog.Default()
	}
	switch channel {
	case usecase.ChannelEmail:
		return NewEmail(w, prefixes.Email, logger), nil
	case usecase.ChannelSMS:
		return NewSMS(w, prefixes.SMS, logger), nil
	default:
		return nil, fmt.Errorf("no notifier for channel %q: %w", channel, usecase.ErrUsage)
	}
}

// emit writes one prefixed line for channel.
func emit(ctx context.Context, w io.Writer, channel usecase.Channel, prefix, message string, logger *slog.Logger) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s send canceled: %w", channel, usecase.ErrInterrupted)
	}
	if _, err := io.WriteString(w, prefix+message+"\n"); err != nil {
		logger.DebugContext(ctx, "notification write failed", slog.String("channel", channel.String()), slog.Any("err", err))
		return fmt.Errorf("%s: %w: %w", channel, usecase.ErrDelivery, err)
	}
	return nil
}
