package notification

import (
	"context"
	"io"
	"log/slog"

	"github.com/arumata/solidnotify/internal/usecase"
)

// EmailNotifier prints messages tagged as email.
type EmailNotifier struct {
	w      io.Writer
	prefix string
	logger *slog.Logger
}

// NewEmail creates an email notifier.
func NewEmail(w io.Writer, prefix string, logger *slog.Logger) *EmailNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &EmailNotifier{w: w, prefix: prefix, logger: logger}
}

// Send writes "<prefix><message>" as one line.
func (n *EmailNotifier) Send(ctx context.Context, message string) error {
	return emit(ctx, n.w, usecase.ChannelEmail, n.prefix, message, n.logger)
}
