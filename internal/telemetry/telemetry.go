// Package telemetry records data check activity as Prometheus metrics and
// exports them in the node exporter textfile format.
package telemetry

import (
	"fmt"
	"time"

	"github.com/evalml/evalml/internal/datachecks"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Dataset results reported by ObserveDataset.
const (
	ResultPassed = "passed"
	ResultFailed = "failed"
	ResultError  = "error"
)

// Recorder implements datachecks.Observer on a private registry. It is safe
// for concurrent use.
type Recorder struct {
	registry *prometheus.Registry

	messages *prometheus.CounterVec
	duration *prometheus.HistogramVec
	datasets *prometheus.CounterVec
}

var _ datachecks.Observer = (*Recorder)(nil)

// NewRecorder creates a Recorder with its own registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Recorder{
		registry: reg,
		messages: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "evalml_data_check_messages_total",
			Help: "Data check messages by check and message type",
		}, []string{"check", "type"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "evalml_data_check_duration_seconds",
			Help:    "Data check run time in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10), // 0.1ms to ~26s
		}, []string{"check"}),
		datasets: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "evalml_datasets_checked_total",
			Help: "Datasets validated by result",
		}, []string{"result"}),
	}
}

// ObserveCheck counts a check's messages by type and records its duration.
func (r *Recorder) ObserveCheck(checkName string, messages []datachecks.Message, elapsed time.Duration) {
	// touch both series so a clean run still exports zeros
	warnings := r.messages.WithLabelValues(checkName, string(datachecks.MessageTypeWarning))
	errs := r.messages.WithLabelValues(checkName, string(datachecks.MessageTypeError))
	for _, m := range messages {
		if m.Type == datachecks.MessageTypeError {
			errs.Inc()
		} else {
			warnings.Inc()
		}
	}
	r.duration.WithLabelValues(checkName).Observe(elapsed.Seconds())
}

// ObserveDataset counts one validated dataset under result.
func (r *Recorder) ObserveDataset(result string) {
	r.datasets.WithLabelValues(result).Inc()
}

// Gatherer exposes the registry, mostly for tests.
func (r *Recorder) Gatherer() prometheus.Gatherer { return r.registry }

// WriteTextfile atomically writes all metrics to path.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("writing metrics textfile: %w", err)
	}
	return nil
}
