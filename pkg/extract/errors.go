package extract

import (
	"context"
	"errors"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/sony/gobreaker"

	"github.com/tuitionlab/assignflow/pkg/models"
)

// Error tags an extraction failure with its taxonomy code so the worker
// can map it straight into the job's error_json.
type Error struct {
	Code string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("extract: %s: %v", e.Code, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Code returns the taxonomy code carried by err, or llm_transient when the
// error is untagged (unknown failures requeue rather than terminate).
func Code(err error) string {
	var ee *Error
	if errors.As(err, &ee) {
		return ee.Code
	}
	return models.ErrLLMTransient
}

// classify maps an upstream call failure onto the taxonomy. Breaker
// rejections are circuit_open, context expiry is timeout, API 429/5xx and
// network errors are transient, every other API error is permanent.
func classify(err error) *Error {
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return &Error{Code: models.ErrCircuitOpen, Err: err}
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return &Error{Code: models.ErrTimeout, Err: err}
	}

	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode == 429 || apiErr.StatusCode >= 500 {
			return &Error{Code: models.ErrLLMTransient, Err: err}
		}
		return &Error{Code: models.ErrLLMPermanent, Err: err}
	}

	// Network-level failures (DNS, reset, TLS) surface as plain errors.
	return &Error{Code: models.ErrLLMTransient, Err: err}
}

// retryable reports whether the tagged failure may be re-attempted within
// the same job execution. Circuit rejections are not retried in-process;
// the worker requeues the whole job instead.
func retryable(e *Error) bool {
	return e.Code == models.ErrLLMTransient
}
