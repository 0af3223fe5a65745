package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/oilchem-hr/attendance-backend-go/internal/domain/dashboard"
	domainreport "github.com/oilchem-hr/attendance-backend-go/internal/domain/report"
	"github.com/oilchem-hr/attendance-backend-go/internal/service/report"
	"golang.org/x/sync/errgroup"
)

const recentLogLimit = 10

type DashboardServiceImpl struct {
	cutoffHours int

	dashboard.DashboardRepository
	punchRepo domainreport.PunchRepository
}

func NewDashboardService(
	repo dashboard.DashboardRepository,
	punchRepo domainreport.PunchRepository,
	cutoffHours int,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		cutoffHours:         cutoffHours,
		DashboardRepository: repo,
		punchRepo:           punchRepo,
	}
}

// parseDate parses YYYY-MM-DD format, defaults to today
func parseDate(date string) time.Time {
	now := time.Now()
	fallback := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	if date == "" {
		return fallback
	}

	parsed, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return fallback
	}
	return parsed
}

// GetDashboard returns combined dashboard data using parallel goroutines
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context, date string) (*dashboard.DashboardResponse, error) {
	day := parseDate(date)

	var (
		punchSummary     dashboard.PunchSummaryResponse
		exceptionSummary dashboard.ExceptionSummaryResponse
		recentLogs       []dashboard.RecentLogItem
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		summary, err := s.buildPunchSummary(gCtx, day)
		if err != nil {
			return fmt.Errorf("failed to build punch summary: %w", err)
		}
		punchSummary = summary
		return nil
	})

	g.Go(func() error {
		stats, err := s.GetOutcomeStatsByDay(gCtx, day)
		if err != nil {
			return fmt.Errorf("failed to get outcome stats: %w", err)
		}
		exceptionSummary = dashboard.ExceptionSummaryResponse{
			Sent:   stats.Sent,
			Failed: stats.Failed,
		}
		return nil
	})

	g.Go(func() error {
		logs, err := s.GetRecentLogs(gCtx, recentLogLimit)
		if err != nil {
			return fmt.Errorf("failed to get recent logs: %w", err)
		}
		recentLogs = logs
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	// skipped = configured employees minus logged outcomes
	skipped := punchSummary.TotalEmployees - exceptionSummary.Sent - exceptionSummary.Failed
	if skipped < 0 {
		skipped = 0
	}
	exceptionSummary.Skipped = skipped

	if recentLogs == nil {
		recentLogs = []dashboard.RecentLogItem{}
	}

	return &dashboard.DashboardResponse{
		PunchSummary:     punchSummary,
		ExceptionSummary: exceptionSummary,
		RecentLogs:       recentLogs,
		Date:             day.Format("2006-01-02"),
	}, nil
}

// buildPunchSummary normalizes the day's punches per configured card
// and counts completeness buckets.
func (s *DashboardServiceImpl) buildPunchSummary(ctx context.Context, day time.Time) (dashboard.PunchSummaryResponse, error) {
	cardNos, err := s.ListConfiguredCardNos(ctx)
	if err != nil {
		return dashboard.PunchSummaryResponse{}, err
	}

	windowEnd := day.AddDate(0, 0, 1).Add(time.Duration(s.cutoffHours) * time.Hour)
	punches, err := s.punchRepo.GetPunchesInRange(ctx, day, windowEnd)
	if err != nil {
		return dashboard.PunchSummaryResponse{}, err
	}

	byCard := make(map[string][]domainreport.PunchEvent)
	for _, p := range punches {
		byCard[p.CardNo] = append(byCard[p.CardNo], p)
	}

	summary := dashboard.PunchSummaryResponse{
		TotalEmployees: int64(len(cardNos)),
	}
	for _, cardNo := range cardNos {
		att := report.NormalizeDay(byCard[cardNo], day, s.cutoffHours)
		if att == nil {
			summary.MissingPunch++
			continue
		}
		summary.Punched++
		if att.LastOut != nil {
			summary.Complete++
		} else {
			summary.MissingPunch++
		}
	}

	return summary, nil
}
