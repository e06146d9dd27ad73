// Package console implements LoggerPort by printing to a writer.
package console

import (
	"context"
	"fmt"
	"io"

	"github.com/arumata/solidnotify/internal/usecase"
)

// Logger prints each entry as one prefixed line.
type Logger struct {
	w      io.Writer
	prefix string
}

// New creates a console logger.
func New(w io.Writer, prefix string) *Logger {
	if w == nil {
		panic("console logger requires writer")
	}
	return &Logger{w: w, prefix: prefix}
}

// Log writes "<prefix><info>".
func (l *Logger) Log(ctx context.Context, info string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("log canceled: %w", usecase.ErrInterrupted)
	}
	if _, err := io.WriteString(l.w, l.prefix+info+"\n"); err != nil {
		return fmt.Errorf("write log entry: %w: %w", usecase.ErrCritical, err)
	}
	return nil
}

var _ usecase.LoggerPort = (*Logger)(nil)
