package notification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/oilchem-hr/attendance-backend-go/internal/domain/employee"
	"github.com/oilchem-hr/attendance-backend-go/internal/domain/notification"
	domainreport "github.com/oilchem-hr/attendance-backend-go/internal/domain/report"
	"github.com/oilchem-hr/attendance-backend-go/internal/domain/settings"
	"github.com/oilchem-hr/attendance-backend-go/internal/pkg/email"
	"github.com/oilchem-hr/attendance-backend-go/internal/pkg/validator"
	"github.com/oilchem-hr/attendance-backend-go/internal/service/report"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const defaultLogLimit = 50
const maxLogLimit = 200

var noticeTitles = map[notification.ExceptionKind]string{
	notification.KindMissingPunch: "Missing Punch",
	notification.KindLate:         "Late Arrival",
	notification.KindEarlyLeave:   "Early Leave",
}

type NotificationServiceImpl struct {
	cutoffHours int
	defaultCC   []string

	punchRepo    domainreport.PunchRepository
	employeeRepo employee.EmployeeRepository
	settingsRepo settings.ShiftConfigRepository
	logRepo      notification.LogRepository
	emailService email.EmailService
}

func NewNotificationService(
	punchRepo domainreport.PunchRepository,
	employeeRepo employee.EmployeeRepository,
	settingsRepo settings.ShiftConfigRepository,
	logRepo notification.LogRepository,
	emailService email.EmailService,
	cutoffHours int,
	defaultCC []string,
) notification.Service {
	return &NotificationServiceImpl{
		cutoffHours:  cutoffHours,
		defaultCC:    defaultCC,
		punchRepo:    punchRepo,
		employeeRepo: employeeRepo,
		settingsRepo: settingsRepo,
		logRepo:      logRepo,
		emailService: emailService,
	}
}

// evaluationTime pins "now" for historical dates so re-running a past
// date yields the same missing-punch verdicts as an on-time run would
// have. The pin sits past both the extended punch window and the
// scheduled shift end; a cutoff shorter than a cross-midnight shift's
// end offset must not suppress an overdue punch-out.
func (s *NotificationServiceImpl) evaluationTime(day time.Time, config settings.ShiftConfig) time.Time {
	now := time.Now()
	windowEnd := day.AddDate(0, 0, 1).Add(time.Duration(s.cutoffHours) * time.Hour)
	if _, end, err := shiftBounds(day, config); err == nil && !end.Before(windowEnd) {
		windowEnd = end.Add(time.Minute)
	}
	if now.After(windowEnd) {
		return windowEnd
	}
	return now
}

// Run implements notification.Service.
func (s *NotificationServiceImpl) Run(ctx context.Context, req notification.RunRequest) (notification.RunResult, error) {
	if err := req.Validate(); err != nil {
		return notification.RunResult{}, err
	}

	day, err := time.ParseInLocation("2006-01-02", req.Date, time.Local)
	if err != nil {
		return notification.RunResult{}, domainreport.ErrInvalidPeriod
	}

	if !s.emailService.Configured() {
		return notification.RunResult{}, notification.ErrMailerNotConfigured
	}

	targets, err := s.resolveTargets(ctx, req.CardNo)
	if err != nil {
		return notification.RunResult{}, err
	}

	// Per-target results land in preallocated slots so goroutines never
	// contend on the slice; counts are merged after the wait.
	results := make([]notification.TargetResult, len(targets))
	var wg sync.WaitGroup
	for i, target := range targets {
		wg.Add(1)
		go func(i int, config settings.ShiftConfig) {
			defer wg.Done()
			results[i] = s.processTarget(ctx, config, day)
		}(i, target)
	}
	wg.Wait()

	run := notification.RunResult{
		Date:         req.Date,
		TotalTargets: len(targets),
		Results:      results,
	}
	for _, r := range results {
		switch r.Status {
		case notification.StatusSent:
			run.SentCount++
		case notification.StatusFailed:
			run.FailedCount++
		default:
			run.SkippedCount++
		}
	}

	slog.Info("notification run finished",
		"date", req.Date,
		"total", run.TotalTargets,
		"sent", run.SentCount,
		"skipped", run.SkippedCount,
		"failed", run.FailedCount,
	)

	return run, nil
}

func (s *NotificationServiceImpl) resolveTargets(ctx context.Context, cardNo *string) ([]settings.ShiftConfig, error) {
	if cardNo == nil {
		targets, err := s.settingsRepo.ListNotificationTargets(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list notification targets: %w", err)
		}
		return targets, nil
	}

	if _, err := s.employeeRepo.GetByCardNo(ctx, *cardNo); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee by card number: %w", err)
	}

	config, err := s.settingsRepo.GetByCardNo(ctx, *cardNo)
	if err != nil {
		return nil, fmt.Errorf("failed to get shift config: %w", err)
	}
	if config == nil {
		fallback := settings.DefaultShiftConfig(*cardNo)
		return []settings.ShiftConfig{fallback}, nil
	}
	return []settings.ShiftConfig{*config}, nil
}

// processTarget evaluates and notifies a single employee. Any failure
// is captured in the returned result; nothing here aborts the batch.
func (s *NotificationServiceImpl) processTarget(ctx context.Context, config settings.ShiftConfig, day time.Time) notification.TargetResult {
	result := notification.TargetResult{
		CardNo:       config.CardNo,
		EmployeeName: s.employeeName(ctx, config),
	}

	windowEnd := day.AddDate(0, 0, 1).Add(time.Duration(s.cutoffHours) * time.Hour)
	punches, err := s.punchRepo.GetPunches(ctx, config.CardNo, day, windowEnd)
	if err != nil {
		return failResult(result, fmt.Errorf("failed to get punches: %w", err))
	}

	att := report.NormalizeDay(punches, day, s.cutoffHours)
	exceptions, err := EvaluateDay(att, config, day, s.evaluationTime(day, config))
	if err != nil {
		return failResult(result, err)
	}

	kind := notification.PickNoticeKind(exceptions)
	if kind == "" {
		result.Status = notification.StatusSkipped
		return result
	}
	result.NoticeType = &kind

	if config.EmployeeEmail == nil || validator.IsEmpty(*config.EmployeeEmail) {
		// undeliverable notices still reach the audit log so HR can
		// chase the missing address
		result.Status = notification.StatusSkipped
		msg := notification.ErrMissingEmail.Error()
		result.Error = &msg
		s.recordLog(ctx, config, day, kind, nil, result)
		return result
	}
	result.ToEmail = config.EmployeeEmail

	detail := ""
	for _, exc := range exceptions {
		if exc.Kind == kind {
			detail = exc.Detail
			break
		}
	}

	cc := s.defaultCC
	if config.NotifyCCOverride != nil {
		cc = mergeCC(s.defaultCC, validator.SplitCSV(*config.NotifyCCOverride))
	}

	sendErr := s.emailService.SendAttendanceNotice(*config.EmployeeEmail, cc, email.NoticeData{
		EmployeeName: result.EmployeeName,
		Date:         day.Format("2006-01-02"),
		NoticeTitle:  noticeTitles[kind],
		Detail:       detail,
		WorkStart:    config.WorkStartTime,
		WorkEnd:      config.WorkEndTime,
	})
	if sendErr != nil {
		result.Status = notification.StatusFailed
		msg := sendErr.Error()
		result.Error = &msg
	} else {
		result.Status = notification.StatusSent
	}

	s.recordLog(ctx, config, day, kind, cc, result)
	return result
}

func (s *NotificationServiceImpl) employeeName(ctx context.Context, config settings.ShiftConfig) string {
	if config.EmployeeNameCache != nil && !validator.IsEmpty(*config.EmployeeNameCache) {
		return *config.EmployeeNameCache
	}
	emp, err := s.employeeRepo.GetByCardNo(ctx, config.CardNo)
	if err != nil {
		return config.CardNo
	}
	return emp.DisplayName()
}

// mergeCC appends the per-employee override recipients to the default
// HR list; an override widens the audience, it never narrows it.
func mergeCC(defaults, override []string) []string {
	merged := make([]string, 0, len(defaults)+len(override))
	seen := make(map[string]bool, len(defaults)+len(override))
	for _, addr := range defaults {
		if addr != "" && !seen[addr] {
			seen[addr] = true
			merged = append(merged, addr)
		}
	}
	for _, addr := range override {
		if addr != "" && !seen[addr] {
			seen[addr] = true
			merged = append(merged, addr)
		}
	}
	return merged
}

func failResult(result notification.TargetResult, err error) notification.TargetResult {
	result.Status = notification.StatusFailed
	msg := err.Error()
	result.Error = &msg
	return result
}

// recordLog persists the outcome for auditing. A failed insert is
// logged and swallowed; the send already happened.
func (s *NotificationServiceImpl) recordLog(ctx context.Context, config settings.ShiftConfig, day time.Time, kind notification.ExceptionKind, cc []string, result notification.TargetResult) {
	logRow := notification.Log{
		ID:     uuid.NewString(),
		CardNo: config.CardNo,
		Date:   day.Format("2006-01-02"),
		Type:   kind,
		SentAt: time.Now(),
		Status: result.Status,
		Error:  result.Error,
	}
	if config.EmployeeEmail != nil {
		logRow.ToEmail = *config.EmployeeEmail
	}
	if len(cc) > 0 {
		logRow.CC = strings.Join(cc, ",")
	}

	if err := s.logRepo.Insert(ctx, logRow); err != nil {
		slog.Error("failed to insert notification log",
			"card_no", config.CardNo,
			"date", logRow.Date,
			"error", err,
		)
	}
}

// Logs implements notification.Service.
func (s *NotificationServiceImpl) Logs(ctx context.Context, limit int) (notification.LogsResponse, error) {
	if limit <= 0 {
		limit = defaultLogLimit
	}
	if limit > maxLogLimit {
		limit = maxLogLimit
	}

	logs, err := s.logRepo.List(ctx, limit)
	if err != nil {
		return notification.LogsResponse{}, fmt.Errorf("failed to list notification logs: %w", err)
	}

	resp := notification.LogsResponse{
		TotalCount: len(logs),
		Items:      make([]notification.LogItem, 0, len(logs)),
	}
	for _, l := range logs {
		resp.Items = append(resp.Items, notification.LogItem{
			ID:      l.ID,
			CardNo:  l.CardNo,
			Date:    l.Date,
			Type:    string(l.Type),
			ToEmail: l.ToEmail,
			CC:      l.CC,
			SentAt:  l.SentAt.Format("2006-01-02 15:04:05"),
			Status:  string(l.Status),
			Error:   l.Error,
		})
	}
	return resp, nil
}
