package metrics

import (
	"context"

	"github.com/arumata/solidnotify/internal/usecase"
)

// Notifier forwards to another notifier and counts the outcome.
type Notifier struct {
	next    usecase.NotifierPort
	channel string
	rec     *Recorder
}

// NewNotifier wraps next.
func NewNotifier(next usecase.NotifierPort, channel usecase.Channel, rec *Recorder) *Notifier {
	if next == nil {
		panic("metrics notifier requires next notifier")
	}
	return &Notifier{next: next, channel: channel.String(), rec: rec}
}

// Send forwards message and returns the wrapped notifier's error unchanged.
func (n *Notifier) Send(ctx context.Context, message string) error {
	err := n.next.Send(ctx, message)
	n.rec.RecordSend(n.channel, err)
	return err
}

// Logger forwards to another logger and counts the outcome.
type Logger struct {
	next usecase.LoggerPort
	sink string
	rec  *Recorder
}

// NewLogger wraps next.
func NewLogger(next usecase.LoggerPort, sink string, rec *Recorder) *Logger {
	if next == nil {
		panic("metrics logger requires next logger")
	}
	return &Logger{next: next, sink: sink, rec: rec}
}

// Log forwards info and returns the wrapped logger's error unchanged.
func (l *Logger) Log(ctx context.Context, info string) error {
	err := l.next.Log(ctx, info)
	l.rec.RecordLog(l.sink, err)
	return err
}

var (
	_ usecase.NotifierPort = (*Notifier)(nil)
	_ usecase.LoggerPort   = (*Logger)(nil)
)
