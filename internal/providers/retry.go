package providers

import (
	"context"
	"errors"
	"time"
)

type rateLimitError struct{}

func (e *rateLimitError) Error() string { return "rate limited" }

type authError struct {
	message string
}

func (e *authError) Error() string {
	return "authentication error: " + e.message
}

type unavailableError struct {
	endpoint string
	cause    error
}

func (e *unavailableError) Error() string {
	return "backend unavailable at " + e.endpoint + ": " + e.cause.Error()
}

func (e *unavailableError) Unwrap() error { return e.cause }

// IsAuthError checks if an error is an authentication error.
func IsAuthError(err error) bool {
	var ae *authError
	return errors.As(err, &ae)
}

// IsUnavailable checks if an error means the backend could not be reached.
func IsUnavailable(err error) bool {
	var ue *unavailableError
	return errors.As(err, &ue)
}

// retryWithBackoff retries fn only for rate-limit errors, with exponential
// backoff, up to maxRetries additional attempts. Every other failure is
// returned immediately: a lint invocation never retries past this bound.
func retryWithBackoff(ctx context.Context, maxRetries int, fn func() error) error {
	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		lastErr = fn()
		if lastErr == nil {
			return nil
		}

		var rle *rateLimitError
		if !errors.As(lastErr, &rle) {
			return lastErr
		}

		if attempt < maxRetries {
			backoff := time.Duration(1<<uint(attempt)) * time.Second
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}
		}
	}
	return lastErr
}
