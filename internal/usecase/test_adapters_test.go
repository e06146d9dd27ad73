package usecase

import (
	"context"
	"io"
	"log/slog"
)

type call struct {
	port string
	arg  string
}

// journal records port calls across fakes so tests can assert ordering.
type journal struct {
	calls []call
}

func (j *journal) record(port, arg string) {
	j.calls = append(j.calls, call{port: port, arg: arg})
}

func (j *journal) args(port string) []string {
	var out []string
	for _, c := range j.calls {
		if c.port == port {
			out = append(out, c.arg)
		}
	}
	return out
}

type testNotifier struct {
	j    *journal
	name string
	err  error
}

func newTestNotifier(j *journal, name string) *testNotifier {
	return &testNotifier{j: j, name: name}
}

func (n *testNotifier) Send(ctx context.Context, message string) error {
	_ = ctx
	n.j.record(n.name, message)
	return n.err
}

type testLogger struct {
	j   *journal
	err error
}

func newTestLogger(j *journal) *testLogger {
	return &testLogger{j: j}
}

func (l *testLogger) Log(ctx context.Context, info string) error {
	_ = ctx
	l.j.record("log", info)
	return l.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
