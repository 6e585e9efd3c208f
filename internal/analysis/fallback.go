package analysis

import (
	"context"
	"log"
)

// resolveWithFallback runs a primary (usually remote) operation and
// substitutes the guaranteed-succeeding fallback on any failure. Remote
// failures are recoverable by policy: they are logged and absorbed here, never
// surfaced to callers. A nil primary means the remote path is disabled.
func resolveWithFallback[T any](ctx context.Context, name string, primary func(context.Context) (T, error), fallback func() T) T {
	if primary == nil {
		return fallback()
	}

	result, err := primary(ctx)
	if err != nil {
		log.Printf("[analysis] %s: remote path failed, using local fallback: %v", name, err)
		return fallback()
	}
	return result
}
