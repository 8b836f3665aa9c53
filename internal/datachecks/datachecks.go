// Package datachecks validates a dataset and its target before modeling. Each
// DataCheck inspects the data and reports warnings or errors; DataChecks runs
// an ordered list of them and concatenates their findings.
package datachecks

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/evalml/evalml/internal/dataset"
)

//go:generate go run go.uber.org/mock/mockgen -source=datachecks.go -destination=mock_datachecks_test.go -package=datachecks

// DataCheck is a single validation rule over features X and target y.
type DataCheck interface {
	// Name identifies the check in the messages it emits.
	Name() string

	// Validate returns the check's findings in emission order. An error means
	// the check itself could not run.
	Validate(X *dataset.Frame, y *dataset.Column) ([]Message, error)
}

// Observer receives the outcome of every check run by DataChecks.
type Observer interface {
	ObserveCheck(checkName string, messages []Message, elapsed time.Duration)
}

// DataChecks runs checks sequentially in configured order.
type DataChecks struct {
	checks   []DataCheck
	logger   *slog.Logger
	observer Observer
}

// Option configures DataChecks.
type Option func(*DataChecks)

// WithLogger sets the logger used for per-check debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(d *DataChecks) { d.logger = logger }
}

// WithObserver registers an observer notified after each check.
func WithObserver(o Observer) Option {
	return func(d *DataChecks) { d.observer = o }
}

// New creates an aggregator over checks. The slice is copied.
func New(checks []DataCheck, opts ...Option) *DataChecks {
	d := &DataChecks{checks: append([]DataCheck(nil), checks...)}
	for _, opt := range opts {
		opt(d)
	}
	if d.logger == nil {
		// noop logger by default
		d.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return d
}

// Checks returns the configured checks in order.
func (d *DataChecks) Checks() []DataCheck {
	return append([]DataCheck(nil), d.checks...)
}

// Validate runs every check and returns their messages concatenated in check
// order, each check's messages in the order it produced them. The first check
// that fails aborts the pass.
func (d *DataChecks) Validate(X *dataset.Frame, y *dataset.Column) (Messages, error) {
	messages := Messages{}
	for _, c := range d.checks {
		start := time.Now()
		found, err := c.Validate(X, y)
		elapsed := time.Since(start)
		if err != nil {
			d.logger.Error("data check failed", "check", c.Name(), "error", err.Error())
			return nil, fmt.Errorf("data check %s: %w", c.Name(), err)
		}

		d.logger.Debug("data check completed",
			"check", c.Name(),
			"messages", len(found),
			"duration_ms", elapsed.Milliseconds())
		if d.observer != nil {
			d.observer.ObserveCheck(c.Name(), found, elapsed)
		}
		messages = append(messages, found...)
	}
	return messages, nil
}

// EmptyDataChecks returns an aggregator with no checks; it always reports
// nothing.
func EmptyDataChecks(opts ...Option) *DataChecks {
	return New(nil, opts...)
}

// DefaultDataChecks returns the standard pre-modeling checks with default
// thresholds: highly null columns, ID-like columns, label leakage and invalid
// target values, in that order.
func DefaultDataChecks(opts ...Option) *DataChecks {
	return New([]DataCheck{
		&HighlyNullDataCheck{pctNullThreshold: DefaultPctNullThreshold},
		&IDColumnsDataCheck{idThreshold: DefaultIDThreshold},
		&LabelLeakageDataCheck{pctCorrThreshold: DefaultPctCorrThreshold},
		&InvalidTargetDataCheck{},
	}, opts...)
}

var (
	errNoFeatures = errors.New("features are required")
	errNoTarget   = errors.New("target is required")
)

func checkThreshold(name string, v float64) error {
	if v < 0 || v > 1 {
		return fmt.Errorf("%s must be a float between 0 and 1, inclusive", name)
	}
	return nil
}
