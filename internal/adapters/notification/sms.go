package notification

import (
	"context"
	"io"
	"log/slog"

	"github.com/arumata/solidnotify/internal/usecase"
)

// SMSNotifier prints messages tagged as SMS.
type SMSNotifier struct {
	w      io.Writer
	prefix string
	logger *slog.Logger
}

// NewSMS creates an SMS notifier.
func NewSMS(w io.Writer, prefix string, logger *slog.Logger) *SMSNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &SMSNotifier{w: w, prefix: prefix, logger: logger}
}

// Send writes "<prefix><message>" as one line.
func (n *SMSNotifier) Send(ctx context.Context, message string) error {
	return emit(ctx, n.w, usecase.ChannelSMS, n.prefix, message, n.logger)
}
