package cron

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/oilchem-hr/attendance-backend-go/internal/domain/notification"
)

// dailyRunHour is the local hour when yesterday's exceptions are
// evaluated and dispatched. By then the cross-midnight punch window
// for the previous day has closed for any reasonable cutoff.
const dailyRunHour = 13

type NotificationJobs struct {
	notificationService notification.Service

	mu          sync.Mutex
	lastRunDate string
}

func NewNotificationJobs(notificationService notification.Service) *NotificationJobs {
	return &NotificationJobs{notificationService: notificationService}
}

func (j *NotificationJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("dispatch_daily_notices", 30*time.Minute, j.DispatchDailyNotices)
}

// DispatchDailyNotices runs yesterday's exception evaluation once per
// day, gated on the configured local hour.
func (j *NotificationJobs) DispatchDailyNotices(ctx context.Context) error {
	now := time.Now()
	if now.Hour() < dailyRunHour {
		return nil
	}

	yesterday := now.AddDate(0, 0, -1).Format("2006-01-02")

	j.mu.Lock()
	if j.lastRunDate == yesterday {
		j.mu.Unlock()
		return nil
	}
	j.lastRunDate = yesterday
	j.mu.Unlock()

	slog.Info("Cron: dispatching daily attendance notices", "date", yesterday)

	result, err := j.notificationService.Run(ctx, notification.RunRequest{Date: yesterday})
	if errors.Is(err, notification.ErrMailerNotConfigured) {
		// keep the day marked done; retrying without SMTP is pointless
		slog.Warn("Cron: mailer not configured, skipping daily notices", "date", yesterday)
		return nil
	}
	if err != nil {
		// allow a retry on the next tick
		j.mu.Lock()
		j.lastRunDate = ""
		j.mu.Unlock()
		return err
	}

	slog.Info("Cron: daily notices dispatched",
		"date", result.Date,
		"total", result.TotalTargets,
		"sent", result.SentCount,
		"skipped", result.SkippedCount,
		"failed", result.FailedCount,
	)
	return nil
}
