package report

import (
	"context"
	"time"
)

// PunchRepository reads raw swipe events from the attendance source.
// The source is strictly read-only; no repository method writes.
type PunchRepository interface {
	// GetPunches returns all punches for a card with
	// from <= timestamp < to, ordered by timestamp ascending
	GetPunches(ctx context.Context, cardNo string, from, to time.Time) ([]PunchEvent, error)

	// GetPunchesInRange returns punches for every card with
	// from <= timestamp < to, ordered by card then timestamp
	GetPunchesInRange(ctx context.Context, from, to time.Time) ([]PunchEvent, error)
}
