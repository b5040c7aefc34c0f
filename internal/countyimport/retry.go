package countyimport

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

// Batch insert retry parameters. Constraint violations are permanent and
// never retried; connectivity blips get a few attempts with exponential
// backoff.
const (
	retryAttempts = 3
	retryBackoff  = 500 * time.Millisecond
)

// isTransient reports whether a storage error is worth retrying. Class 08
// covers connection exceptions; class 23 (integrity violations) and
// class 42 (syntax/access) are permanent.
func isTransient(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return strings.HasPrefix(pgErr.Code, "08") || pgErr.Code == "57P03" // cannot_connect_now
	}
	// Non-postgres errors from the network stack are assumed transient.
	return true
}

// withRetry runs fn with bounded exponential backoff on transient errors.
func withRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	var lastErr error
	backoff := retryBackoff

	for attempt := 0; attempt < retryAttempts; attempt++ {
		lastErr = fn(ctx)
		if lastErr == nil {
			return nil
		}
		if ctx.Err() != nil || !isTransient(lastErr) {
			return lastErr
		}
		if attempt >= retryAttempts-1 {
			break
		}

		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			return lastErr
		}
		backoff *= 2
	}

	return lastErr
}
