// Package backoff is a convenience wrapper for callers that want to retry
// adapter calls. The adapters themselves never retry: retry policy belongs
// to the caller.
package backoff

import (
	"context"

	"github.com/cenkalti/backoff/v4"
)

var MaxRetries uint64 = 11

func RetryGeneral(ctx context.Context, op backoff.Operation) (err error) {
	err = backoff.Retry(op, backoff.WithContext(
		backoff.WithMaxRetries(
			backoff.NewExponentialBackOff(),
			MaxRetries),
		ctx))
	return err
}

// Permanent marks the error as not retryable so RetryGeneral stops
// immediately.
func Permanent(err error) error {
	return backoff.Permanent(err)
}
