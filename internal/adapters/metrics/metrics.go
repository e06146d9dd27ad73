// Package metrics counts notifier and logger outcomes with Prometheus counters.
package metrics

import (
	"context"
	"log/slog"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder holds the counters of one process run.
type Recorder struct {
	NotificationsSent    *prometheus.CounterVec
	NotificationFailures *prometheus.CounterVec
	LogEntries           *prometheus.CounterVec
	LogFailures          *prometheus.CounterVec

	registry *prometheus.Registry
}

// NewRecorder creates a Recorder with its own registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		NotificationsSent: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "solidnotify_notifications_sent_total",
			Help: "Total number of notifications emitted, by channel",
		}, []string{"channel"}),
		NotificationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "solidnotify_notification_failures_total",
			Help: "Total number of notifications that could not be emitted, by channel",
		}, []string{"channel"}),
		LogEntries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "solidnotify_log_entries_total",
			Help: "Total number of notification log entries recorded, by sink",
		}, []string{"sink"}),
		LogFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "solidnotify_log_failures_total",
			Help: "Total number of notification log entries that could not be recorded, by sink",
		}, []string{"sink"}),
	}

	r.registry = prometheus.NewRegistry()
	r.registry.MustRegister(
		r.NotificationsSent,
		r.NotificationFailures,
		r.LogEntries,
		r.LogFailures,
	)
	return r
}

// Registry exposes the registry the counters live in.
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.registry
}

// RecordSend counts one notifier call.
func (r *Recorder) RecordSend(channel string, err error) {
	if r == nil {
		return
	}
	if err != nil {
		r.NotificationFailures.WithLabelValues(channel).Inc()
		return
	}
	r.NotificationsSent.WithLabelValues(channel).Inc()
}

// RecordLog counts one logger call.
func (r *Recorder) RecordLog(sink string, err error) {
	if r == nil {
		return
	}
	if err != nil {
		r.LogFailures.WithLabelValues(sink).Inc()
		return
	}
	r.LogEntries.WithLabelValues(sink).Inc()
}

// Report writes every gathered counter to logger at debug level.
func (r *Recorder) Report(ctx context.Context, logger *slog.Logger) error {
	if r == nil || logger == nil {
		return nil
	}
	families, err := r.registry.Gather()
	if err != nil {
		logger.WarnContext(ctx, "Cannot gather metrics", "error", err)
		return err
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			labels := make([]string, 0, len(m.GetLabel()))
			for _, lp := range m.GetLabel() {
				labels = append(labels, lp.GetName()+"="+lp.GetValue())
			}
			logger.DebugContext(ctx, "metric",
				"name", mf.GetName(),
				"labels", strings.Join(labels, ","),
				"value", m.GetCounter().GetValue(),
			)
		}
	}
	return nil
}
