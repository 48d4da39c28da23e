package avatar

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNoImage      = errors.New("no image returned")
	ErrBatchRunning = errors.New("avatar batch already running")
)

type ErrorClass string

const (
	ClassRateLimited    ErrorClass = "rate_limited"
	ClassTransient      ErrorClass = "transient"
	ClassInvalidRequest ErrorClass = "invalid_request"
	ClassUnauthorized   ErrorClass = "unauthorized"
	ClassSafetyBlocked  ErrorClass = "safety_blocked"
	ClassNoImage        ErrorClass = "no_image"
	// ClassUnknown covers errors that did not come from the service. They are not retried.
	ClassUnknown ErrorClass = "unknown"
)

// GenerationError is a classified failure of the image generation service.
type GenerationError struct {
	Class      ErrorClass
	StatusCode int
	Err        error
}

func (e *GenerationError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("image generation %s (http %d): %s", e.Class, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("image generation %s: %s", e.Class, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

func (e *GenerationError) HTTPStatusCode() int {
	if e == nil {
		return 0
	}
	return e.StatusCode
}

// Retryable is true for rate limits and transient server errors only.
func (e *GenerationError) Retryable() bool {
	return isRetryable(e)
}

func classifyStatus(code int) ErrorClass {
	switch {
	case code == http.StatusTooManyRequests:
		return ClassRateLimited
	case code == http.StatusRequestTimeout || code >= 500:
		return ClassTransient
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return ClassUnauthorized
	default:
		return ClassInvalidRequest
	}
}

func ClassOf(err error) ErrorClass {
	var genErr *GenerationError
	if errors.As(err, &genErr) {
		return genErr.Class
	}
	return ClassUnknown
}

func isRetryable(err error) bool {
	class := ClassOf(err)
	return class == ClassRateLimited || class == ClassTransient
}
