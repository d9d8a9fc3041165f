package core

import (
	"context"
	"time"
)

// TimeProvider abstracts wall-clock access so the booking engine's "now"
// (advance-horizon and cancellation cutoffs) can be fixed in tests
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) time.Duration
	Sleep(d time.Duration)
	WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc)
}
