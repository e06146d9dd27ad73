// Package noop provides port implementations that do nothing.
package noop

import (
	"context"

	"github.com/arumata/solidnotify/internal/usecase"
)

// Notifier accepts every message and sends nothing.
type Notifier struct{}

// NewNotifier creates a no-op notifier.
func NewNotifier() *Notifier {
	return &Notifier{}
}

// Send does nothing and returns nil.
func (n *Notifier) Send(ctx context.Context, message string) error {
	return nil
}

// Logger accepts every entry and records nothing.
type Logger struct{}

// NewLogger creates a no-op logger.
func NewLogger() *Logger {
	return &Logger{}
}

// Log does nothing and returns nil.
func (l *Logger) Log(ctx context.Context, info string) error {
	return nil
}

var (
	_ usecase.NotifierPort = (*Notifier)(nil)
	_ usecase.LoggerPort   = (*Logger)(nil)
)
