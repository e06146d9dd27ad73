package console

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/arumata/solidnotify/internal/usecase"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestLog_WritesPrefixedLine(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "Logging: ")

	if err := l.Log(context.Background(), "Notification sent to John"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := buf.String(), "Logging: Notification sent to John\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestLog_WriteFailure(t *testing.T) {
	l := New(failingWriter{}, "Logging: ")
	if err := l.Log(context.Background(), "x"); !errors.Is(err, usecase.ErrCritical) {
		t.Fatalf("expected ErrCritical, got %v", err)
	}
}

func TestLog_ContextCanceled(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "Logging: ")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := l.Log(ctx, "x"); !errors.Is(err, usecase.ErrInterrupted) {
		t.Fatalf("expected ErrInterrupted, got %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected nothing written, got %q", buf.String())
	}
}

func TestNew_NilWriterPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	New(nil, "")
}
