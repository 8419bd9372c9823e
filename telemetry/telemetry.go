// Package telemetry records calculation failures and data-quality problems
// detected while computing the dashboard, and summarises them in a health
// report.
//
// A Telemetry value is an explicit context object: create one per session (or
// per request) and pass it to the code that needs it. It is safe for
// concurrent use.
package telemetry

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// DefaultCapacity is the number of errors kept before the oldest are dropped.
const DefaultCapacity = 1000

// ErrorType classifies a CalculationError.
type ErrorType string

const (
	NaNDetected       ErrorType = "NaN_DETECTED"
	InvalidInput      ErrorType = "INVALID_INPUT"
	CalculationFailed ErrorType = "CALCULATION_ERROR"
	DataCorruption    ErrorType = "DATA_CORRUPTION"
)

// Severity drives the log level only, never the control flow.
type Severity string

const (
	Low      Severity = "LOW"
	Medium   Severity = "MEDIUM"
	High     Severity = "HIGH"
	Critical Severity = "CRITICAL"
)

// level maps a severity to its logrus level.
func (s Severity) level() logrus.Level {
	switch s {
	case Critical, High:
		return logrus.ErrorLevel
	case Medium:
		return logrus.WarnLevel
	default:
		return logrus.InfoLevel
	}
}

// CalculationError is a single telemetry record.
type CalculationError struct {
	ID        string         `json:"id"`
	Timestamp time.Time      `json:"timestamp"`
	Type      ErrorType      `json:"type"`
	Source    string         `json:"source"`
	Operation string         `json:"operation"`
	Inputs    map[string]any `json:"inputs,omitempty"`
	Severity  Severity       `json:"severity"`
	Message   string         `json:"message"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// Telemetry holds a bounded buffer of CalculationError and the operation
// counters used to score the calculation health.
type Telemetry struct {
	mu         sync.Mutex
	errors     []CalculationError
	capacity   int
	operations int
	successes  int

	log *logrus.Logger
	now func() time.Time
}

// Option configures a Telemetry.
type Option func(*Telemetry)

// WithLogger routes records to l instead of a silent logger.
func WithLogger(l *logrus.Logger) Option { return func(t *Telemetry) { t.log = l } }

// WithClock replaces the wall clock, used to timestamp records and window reports.
func WithClock(now func() time.Time) Option { return func(t *Telemetry) { t.now = now } }

// WithCapacity sets the buffer capacity (values < 1 are ignored).
func WithCapacity(n int) Option {
	return func(t *Telemetry) {
		if n > 0 {
			t.capacity = n
		}
	}
}

// New creates an empty Telemetry.
func New(opts ...Option) *Telemetry {
	t := &Telemetry{capacity: DefaultCapacity, now: time.Now}
	for _, opt := range opts {
		opt(t)
	}
	if t.log == nil {
		t.log = logrus.New()
		t.log.SetOutput(io.Discard)
	}
	return t
}

// DetectAndLog appends e to the buffer, completing its ID and Timestamp if
// missing, and logs it at the level matching its severity.
func (t *Telemetry) DetectAndLog(e CalculationError) CalculationError {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = t.now()
	}
	if e.Severity == "" {
		e.Severity = Medium
	}

	t.mu.Lock()
	t.errors = append(t.errors, e)
	if over := len(t.errors) - t.capacity; over > 0 {
		t.errors = append(t.errors[:0:0], t.errors[over:]...)
	}
	t.mu.Unlock()

	t.log.WithFields(logrus.Fields{
		"id":        e.ID,
		"type":      e.Type,
		"source":    e.Source,
		"operation": e.Operation,
		"severity":  e.Severity,
	}).Log(e.Severity.level(), e.Message)
	return e
}

// LogError builds a CalculationError, sanitizing inputs, and records it.
func (t *Telemetry) LogError(typ ErrorType, source, operation string, inputs map[string]any, message string, severity Severity, metadata ...map[string]any) CalculationError {
	e := CalculationError{
		Type:      typ,
		Source:    source,
		Operation: operation,
		Inputs:    SanitizeInputs(inputs),
		Severity:  severity,
		Message:   message,
	}
	if len(metadata) > 0 {
		e.Metadata = metadata[0]
	}
	return t.DetectAndLog(e)
}

// Logf is a shorthand for LogError without inputs.
func (t *Telemetry) Logf(typ ErrorType, severity Severity, source, operation, format string, args ...any) {
	t.LogError(typ, source, operation, nil, fmt.Sprintf(format, args...), severity)
}

// Errors returns a copy of the buffered errors, oldest first.
func (t *Telemetry) Errors() []CalculationError {
	t.mu.Lock()
	defer t.mu.Unlock()
	res := make([]CalculationError, len(t.errors))
	copy(res, t.errors)
	return res
}

// Counters returns the number of operations run through Calculate and how many succeeded.
func (t *Telemetry) Counters() (operations, successes int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.operations, t.successes
}

// count records the outcome of one operation.
func (t *Telemetry) count(success bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.operations++
	if success {
		t.successes++
	}
}

// Clear resets the buffer and the counters.
func (t *Telemetry) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.errors = nil
	t.operations, t.successes = 0, 0
}
