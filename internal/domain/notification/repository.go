package notification

import (
	"context"
)

// LogRepository is the audit log for dispatch outcomes. Recording is
// fire-and-forget from the dispatcher's perspective; a failed insert
// never rolls back a completed send.
type LogRepository interface {
	Insert(ctx context.Context, log Log) error
	List(ctx context.Context, limit int) ([]Log, error)
}
