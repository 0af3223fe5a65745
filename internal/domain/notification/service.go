package notification

import (
	"context"
)

// Service evaluates attendance exceptions and dispatches notices
type Service interface {
	// Run evaluates every target for the requested date and dispatches
	// a notice per exception-bearing employee. Individual send failures
	// never halt the batch.
	Run(ctx context.Context, req RunRequest) (RunResult, error)

	// Logs lists recent audit rows, newest first
	Logs(ctx context.Context, limit int) (LogsResponse, error)
}
