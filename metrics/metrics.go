package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

type PromMetrics struct {
	Registry *prometheus.Registry

	DaemonCalls    *prometheus.CounterVec
	DaemonDuration *prometheus.HistogramVec
}

func InitPromMetrics() *PromMetrics {
	reg := prometheus.NewRegistry()

	// labels
	var (
		callLabels     = []string{"command", "outcome"}
		durationLabels = []string{"command"}
	)

	m := &PromMetrics{
		Registry: reg,
		DaemonCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "osmocli_daemon_calls_total",
			Help: "The number of daemon invocations",
		}, callLabels),
		DaemonDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "osmocli_daemon_call_duration_seconds",
			Help:    "How long daemon invocations took",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 10),
		}, durationLabels),
	}

	reg.MustRegister(m.DaemonCalls, m.DaemonDuration)

	return m
}

// ObserveDaemonCall records one daemon invocation. A nil receiver is a no-op.
func (m *PromMetrics) ObserveDaemonCall(command string, took time.Duration, err error) {
	if m == nil {
		return
	}
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeFailure
	}
	m.DaemonCalls.WithLabelValues(command, outcome).Inc()
	m.DaemonDuration.WithLabelValues(command).Observe(took.Seconds())
}

// WriteTextfile writes the metrics in the node exporter textfile format.
func (m *PromMetrics) WriteTextfile(path string) error {
	if m == nil || path == "" {
		return nil
	}
	return prometheus.WriteToTextfile(path, m.Registry)
}
