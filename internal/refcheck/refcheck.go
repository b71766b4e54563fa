// Package refcheck estimates whether a payment reference looks genuine.
//
// The estimate is advisory: classifier failures degrade to an "invalid,
// confidence 0" verdict and are never returned to callers, so a flaky
// classifier can not block the contribution flow it annotates.
package refcheck

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/Denniskaninu/chama-smart-sync/internal/metrics"
)

const (
	// DefaultMinLength is the shortest reference worth classifying.
	DefaultMinLength = 10

	// DefaultTimeout bounds a single classification.
	DefaultTimeout = 5 * time.Second
)

// ErrClassifierUnavailable marks a classification that failed or timed out.
var ErrClassifierUnavailable = errors.New("reference classifier unavailable")

// Verdict is a classifier's estimate.
type Verdict struct {
	IsValid    bool    `json:"isValid"`
	Confidence float64 `json:"confidence"`
}

// Classifier estimates the validity of one reference.
type Classifier interface {
	Classify(ctx context.Context, ref string) (Verdict, error)
}

// ClassifierFunc adapts a function to Classifier.
type ClassifierFunc func(ctx context.Context, ref string) (Verdict, error)

func (f ClassifierFunc) Classify(ctx context.Context, ref string) (Verdict, error) {
	return f(ctx, ref)
}

// Status is the displayable state of a reference check.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusValid   Status = "valid"
	StatusInvalid Status = "invalid"
)

// Result is the outcome of checking one reference.
type Result struct {
	Ref     string
	Status  Status
	Verdict Verdict

	// Degraded is set when the classifier failed and the fallback verdict
	// was substituted.
	Degraded bool
}

// Option configures a Checker.
type Option func(*Checker)

// WithMinLength sets the minimum reference length.
func WithMinLength(n int) Option {
	return func(c *Checker) { c.minLength = n }
}

// WithTimeout sets the per-call classification timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Checker) { c.timeout = d }
}

// WithLogger sets the logger used for degraded checks.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Checker) { c.logger = logger }
}

// Checker applies the invocation policy around a Classifier.
type Checker struct {
	classifier Classifier
	minLength  int
	timeout    time.Duration
	logger     *slog.Logger
}

// NewChecker wraps classifier.
func NewChecker(classifier Classifier, opts ...Option) *Checker {
	c := &Checker{
		classifier: classifier,
		minLength:  DefaultMinLength,
		timeout:    DefaultTimeout,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// MinLength returns the shortest reference that is classified.
func (c *Checker) MinLength() int {
	return c.minLength
}

// Check classifies ref. References shorter than the minimum length are idle
// and never reach the classifier.
func (c *Checker) Check(ctx context.Context, ref string) Result {
	ref = strings.TrimSpace(ref)
	if len(ref) < c.minLength {
		metrics.ReferenceChecksTotal.WithLabelValues(string(StatusIdle)).Inc()
		return Result{Ref: ref, Status: StatusIdle}
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	verdict, err := c.classifier.Classify(ctx, ref)
	if err == nil && ctx.Err() != nil {
		err = ctx.Err()
	}
	if err != nil {
		c.logger.Warn("reference check degraded",
			"ref", ref,
			"error", errors.Join(ErrClassifierUnavailable, err),
		)
		metrics.ReferenceChecksTotal.WithLabelValues("degraded").Inc()
		return Result{Ref: ref, Status: StatusInvalid, Degraded: true}
	}

	verdict.Confidence = clamp(verdict.Confidence)
	status := StatusInvalid
	if verdict.IsValid {
		status = StatusValid
	}
	metrics.ReferenceChecksTotal.WithLabelValues(string(status)).Inc()
	return Result{Ref: ref, Status: status, Verdict: verdict}
}

func clamp(v float64) float64 {
	switch {
	case math.IsNaN(v) || v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
