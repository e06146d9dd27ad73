// Package loghandler renders slog records as short single lines for a terminal.
package loghandler

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
)

const (
	ansiReset = "\033[0m"
	ansiDim   = "\033[2m"
)

// Options configures the Handler.
type Options struct {
	Level    slog.Leveler
	UseColor bool
}

type levelStyle struct {
	label string
	color string
}

var (
	styleDebug = levelStyle{"DBG", "\033[36m"}
	styleInfo  = levelStyle{"INF", "\033[32m"}
	styleWarn  = levelStyle{"WRN", "\033[33m"}
	styleError = levelStyle{"ERR", "\033[1;31m"}
)

func styleFor(level slog.Level) levelStyle {
	switch {
	case level >= slog.LevelError:
		return styleError
	case level >= slog.LevelWarn:
		return styleWarn
	case level >= slog.LevelInfo:
		return styleInfo
	default:
		return styleDebug
	}
}

// Handler writes "HH:MM:SS LVL message key=value ..." lines.
type Handler struct {
	mu     *sync.Mutex
	w      io.Writer
	level  slog.Leveler
	color  bool
	prefix string // rendered WithAttrs output
	group  string // dotted group path for record attrs
}

// NewHandler creates a new Handler writing to w.
func NewHandler(w io.Writer, opts *Options) *Handler {
	h := &Handler{mu: &sync.Mutex{}, w: w, level: slog.LevelInfo}
	if opts != nil {
		if opts.Level != nil {
			h.level = opts.Level
		}
		h.color = opts.UseColor
	}
	return h
}

// Enabled reports whether the handler handles records at the given level.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and writes the log record.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var sb strings.Builder

	hh, mm, ss := r.Time.Clock()
	h.paint(&sb, ansiDim, func() {
		sb.WriteString(pad2(hh) + ":" + pad2(mm) + ":" + pad2(ss))
	})
	sb.WriteByte(' ')
	st := styleFor(r.Level)
	h.paint(&sb, st.color, func() { sb.WriteString(st.label) })
	if r.Message != "" {
		sb.WriteByte(' ')
		sb.WriteString(r.Message)
	}
	sb.WriteString(h.prefix)
	r.Attrs(func(a slog.Attr) bool {
		h.appendAttr(&sb, h.group, a)
		return true
	})
	sb.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, sb.String())
	return err
}

// WithAttrs returns a new Handler with the given attributes rendered up front.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	var sb strings.Builder
	sb.WriteString(h.prefix)
	for _, a := range attrs {
		h.appendAttr(&sb, h.group, a)
	}
	h2 := *h
	h2.prefix = sb.String()
	return &h2
}

// WithGroup returns a new Handler qualifying later attribute keys with name.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	h2 := *h
	h2.group = h.group + name + "."
	return &h2
}

func (h *Handler) paint(sb *strings.Builder, color string, body func()) {
	if h.color {
		sb.WriteString(color)
	}
	body()
	if h.color {
		sb.WriteString(ansiReset)
	}
}

func (h *Handler) appendAttr(sb *strings.Builder, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		inner := group
		if a.Key != "" {
			inner = group + a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			h.appendAttr(sb, inner, ga)
		}
		return
	}
	sb.WriteByte(' ')
	h.paint(sb, ansiDim, func() {
		sb.WriteString(group + a.Key + "=" + quoteIfNeeded(valueString(a.Value)))
	})
}

func valueString(v slog.Value) string {
	if v.Kind() == slog.KindAny {
		if err, ok := v.Any().(error); ok {
			return err.Error()
		}
	}
	return v.String()
}

func quoteIfNeeded(s string) string {
	if s == "" {
		return `""`
	}
	for _, c := range s {
		if c <= ' ' || c == '"' || c == '\\' || c == '=' {
			return strconv.Quote(s)
		}
	}
	return s
}

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

var _ slog.Handler = (*Handler)(nil)
