package dashboard

import (
	"context"
	"time"
)

// OutcomeStats combines sent/failed counts for a day's dispatch logs
type OutcomeStats struct {
	Sent   int64
	Failed int64
}

// DashboardRepository defines the interface for dashboard data access
type DashboardRepository interface {
	// ListConfiguredCardNos returns the card numbers with a shift config
	ListConfiguredCardNos(ctx context.Context) ([]string, error)

	// GetOutcomeStatsByDay returns sent/failed log counts for a day
	GetOutcomeStatsByDay(ctx context.Context, date time.Time) (*OutcomeStats, error)

	// GetRecentLogs returns the latest dispatch log rows with employee names
	GetRecentLogs(ctx context.Context, limit int) ([]RecentLogItem, error)
}
