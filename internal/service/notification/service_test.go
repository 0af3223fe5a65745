package notification

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/oilchem-hr/attendance-backend-go/internal/domain/employee"
	"github.com/oilchem-hr/attendance-backend-go/internal/domain/notification"
	"github.com/oilchem-hr/attendance-backend-go/internal/domain/report"
	"github.com/oilchem-hr/attendance-backend-go/internal/domain/settings"
	"github.com/oilchem-hr/attendance-backend-go/internal/pkg/email"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePunchRepo struct {
	punches []report.PunchEvent
}

func (f *fakePunchRepo) GetPunches(_ context.Context, cardNo string, from, to time.Time) ([]report.PunchEvent, error) {
	var out []report.PunchEvent
	for _, p := range f.punches {
		if p.CardNo != cardNo {
			continue
		}
		if p.Timestamp.Before(from) || !p.Timestamp.Before(to) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (f *fakePunchRepo) GetPunchesInRange(_ context.Context, from, to time.Time) ([]report.PunchEvent, error) {
	var out []report.PunchEvent
	for _, p := range f.punches {
		if p.Timestamp.Before(from) || !p.Timestamp.Before(to) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) GetByCardNo(_ context.Context, cardNo string) (employee.Employee, error) {
	emp, ok := f.employees[cardNo]
	if !ok {
		return employee.Employee{}, pgx.ErrNoRows
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) Search(_ context.Context, _ string) ([]employee.Employee, error) {
	return nil, nil
}

type fakeSettingsRepo struct {
	configs map[string]settings.ShiftConfig
}

func (f *fakeSettingsRepo) GetByCardNo(_ context.Context, cardNo string) (*settings.ShiftConfig, error) {
	config, ok := f.configs[cardNo]
	if !ok {
		return nil, nil
	}
	return &config, nil
}

func (f *fakeSettingsRepo) GetByCardNos(_ context.Context, cardNos []string) (map[string]settings.ShiftConfig, error) {
	out := make(map[string]settings.ShiftConfig)
	for _, cardNo := range cardNos {
		if config, ok := f.configs[cardNo]; ok {
			out[cardNo] = config
		}
	}
	return out, nil
}

func (f *fakeSettingsRepo) Upsert(_ context.Context, config settings.ShiftConfig) (settings.ShiftConfig, error) {
	f.configs[config.CardNo] = config
	return config, nil
}

func (f *fakeSettingsRepo) ListNotificationTargets(_ context.Context) ([]settings.ShiftConfig, error) {
	var out []settings.ShiftConfig
	for _, config := range f.configs {
		if config.NotifyEmployee && config.EmployeeEmail != nil {
			out = append(out, config)
		}
	}
	return out, nil
}

type fakeLogRepo struct {
	mu   sync.Mutex
	rows []notification.Log
}

func (f *fakeLogRepo) Insert(_ context.Context, row notification.Log) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows = append(f.rows, row)
	return nil
}

func (f *fakeLogRepo) List(_ context.Context, limit int) ([]notification.Log, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.rows) > limit {
		return f.rows[:limit], nil
	}
	return f.rows, nil
}

type fakeMailer struct {
	mu           sync.Mutex
	sent         []string
	ccByTo       map[string][]string
	failFor      map[string]error
	unconfigured bool
}

func (f *fakeMailer) Configured() bool { return !f.unconfigured }

func (f *fakeMailer) SendAttendanceNotice(to string, cc []string, _ email.NoticeData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err, ok := f.failFor[to]; ok {
		return err
	}
	f.sent = append(f.sent, to)
	if f.ccByTo == nil {
		f.ccByTo = map[string][]string{}
	}
	f.ccByTo[to] = cc
	return nil
}

func strp(s string) *string { return &s }

func configured(cardNo, emailAddr string) settings.ShiftConfig {
	config := settings.DefaultShiftConfig(cardNo)
	config.LateGraceMinutes = 10
	config.NotifyEmployee = true
	config.EmployeeEmail = strp(emailAddr)
	config.EmployeeNameCache = strp("Employee " + cardNo)
	return config
}

func punchAt(cardNo string, hour, min int) report.PunchEvent {
	return report.PunchEvent{
		CardNo:    cardNo,
		Timestamp: time.Date(2025, 3, 10, hour, min, 0, 0, time.Local),
	}
}

func newTestService(punches []report.PunchEvent, configs map[string]settings.ShiftConfig, mailer *fakeMailer, logs *fakeLogRepo) notification.Service {
	return NewNotificationService(
		&fakePunchRepo{punches: punches},
		&fakeEmployeeRepo{employees: map[string]employee.Employee{
			"1001": {EmpID: "E-1", CardNo: "1001", Name: "Wang Lei"},
			"1002": {EmpID: "E-2", CardNo: "1002", Name: "Li Na"},
			"1003": {EmpID: "E-3", CardNo: "1003", Name: "Zhao Min"},
		}},
		&fakeSettingsRepo{configs: configs},
		logs,
		mailer,
		12,
		[]string{"hr@example.com"},
	)
}

func TestNotificationService_Run_CountsInvariant(t *testing.T) {
	mailer := &fakeMailer{failFor: map[string]error{}}
	logs := &fakeLogRepo{}

	// 1001 on time, 1002 late, 1003 never punched
	punches := []report.PunchEvent{
		punchAt("1001", 8, 55), punchAt("1001", 18, 5),
		punchAt("1002", 9, 30), punchAt("1002", 18, 5),
	}
	configs := map[string]settings.ShiftConfig{
		"1001": configured("1001", "a@example.com"),
		"1002": configured("1002", "b@example.com"),
		"1003": configured("1003", "c@example.com"),
	}

	svc := newTestService(punches, configs, mailer, logs)
	run, err := svc.Run(context.Background(), notification.RunRequest{Date: "2025-03-10"})
	require.NoError(t, err)

	assert.Equal(t, 3, run.TotalTargets)
	assert.Equal(t, run.TotalTargets, run.SentCount+run.SkippedCount+run.FailedCount)
	assert.Equal(t, 2, run.SentCount)
	assert.Equal(t, 1, run.SkippedCount)
	assert.Equal(t, 0, run.FailedCount)
	assert.Len(t, run.Results, 3)
}

func TestNotificationService_Run_PartialFailureIsolated(t *testing.T) {
	mailer := &fakeMailer{failFor: map[string]error{
		"b@example.com": errors.New("mailbox unavailable"),
	}}
	logs := &fakeLogRepo{}

	punches := []report.PunchEvent{
		punchAt("1002", 9, 30), punchAt("1002", 18, 5),
		punchAt("1003", 9, 45), punchAt("1003", 18, 5),
	}
	configs := map[string]settings.ShiftConfig{
		"1002": configured("1002", "b@example.com"),
		"1003": configured("1003", "c@example.com"),
	}

	svc := newTestService(punches, configs, mailer, logs)
	run, err := svc.Run(context.Background(), notification.RunRequest{Date: "2025-03-10"})
	require.NoError(t, err)

	assert.Equal(t, 1, run.FailedCount)
	assert.Equal(t, 1, run.SentCount)
	assert.Equal(t, run.TotalTargets, run.SentCount+run.SkippedCount+run.FailedCount)

	var failed *notification.TargetResult
	for i := range run.Results {
		if run.Results[i].Status == notification.StatusFailed {
			failed = &run.Results[i]
		}
	}
	require.NotNil(t, failed)
	assert.Equal(t, "1002", failed.CardNo)
	require.NotNil(t, failed.Error)
	assert.Contains(t, *failed.Error, "mailbox unavailable")
}

func TestNotificationService_Run_NoTargets(t *testing.T) {
	mailer := &fakeMailer{}
	logs := &fakeLogRepo{}

	svc := newTestService(nil, map[string]settings.ShiftConfig{}, mailer, logs)
	run, err := svc.Run(context.Background(), notification.RunRequest{Date: "2025-03-10"})
	require.NoError(t, err)

	assert.Equal(t, 0, run.TotalTargets)
	assert.Equal(t, 0, run.SentCount+run.SkippedCount+run.FailedCount)
}

func TestNotificationService_Run_SingleCardFallsBackToDefaults(t *testing.T) {
	mailer := &fakeMailer{}
	logs := &fakeLogRepo{}

	// no stored config for 1001; defaults carry no email, so the
	// missing-punch notice is skipped rather than failed
	svc := newTestService(nil, map[string]settings.ShiftConfig{}, mailer, logs)
	run, err := svc.Run(context.Background(), notification.RunRequest{
		Date:   "2025-03-10",
		CardNo: strp("1001"),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, run.TotalTargets)
	assert.Equal(t, 1, run.SkippedCount)
	require.Len(t, run.Results, 1)
	require.NotNil(t, run.Results[0].NoticeType)
	assert.Equal(t, notification.KindMissingPunch, *run.Results[0].NoticeType)
}

func TestNotificationService_Run_CCOverrideExtendsDefaults(t *testing.T) {
	mailer := &fakeMailer{}
	logs := &fakeLogRepo{}

	config := configured("1002", "b@example.com")
	config.NotifyCCOverride = strp("boss@example.com, hr@example.com")

	punches := []report.PunchEvent{
		punchAt("1002", 9, 30), punchAt("1002", 18, 5),
	}

	svc := newTestService(punches, map[string]settings.ShiftConfig{"1002": config}, mailer, logs)
	_, err := svc.Run(context.Background(), notification.RunRequest{Date: "2025-03-10"})
	require.NoError(t, err)

	// the override widens the audience; the HR default list stays, and
	// duplicates collapse
	require.Contains(t, mailer.ccByTo, "b@example.com")
	cc := mailer.ccByTo["b@example.com"]
	assert.Contains(t, cc, "hr@example.com")
	assert.Contains(t, cc, "boss@example.com")
	assert.Len(t, cc, 2)
}

func TestNotificationService_Run_MissingEmailSkipIsAudited(t *testing.T) {
	mailer := &fakeMailer{}
	logs := &fakeLogRepo{}

	config := configured("1002", "b@example.com")
	config.EmployeeEmail = nil

	svc := newTestService(nil, map[string]settings.ShiftConfig{"1002": config}, mailer, logs)
	run, err := svc.Run(context.Background(), notification.RunRequest{
		Date:   "2025-03-10",
		CardNo: strp("1002"),
	})
	require.NoError(t, err)

	assert.Equal(t, 1, run.SkippedCount)
	assert.Empty(t, mailer.sent)

	// the undeliverable notice still leaves an audit trail
	require.Len(t, logs.rows, 1)
	row := logs.rows[0]
	assert.Equal(t, "1002", row.CardNo)
	assert.Equal(t, notification.KindMissingPunch, row.Type)
	assert.Equal(t, notification.StatusSkipped, row.Status)
	assert.Empty(t, row.ToEmail)
	require.NotNil(t, row.Error)
}

func TestNotificationService_Run_ShortCutoffStillFlagsOvernightShift(t *testing.T) {
	mailer := &fakeMailer{}
	logs := &fakeLogRepo{}

	// shift ends 06:00 next day, past the 3 hour punch window; the
	// pinned evaluation clock must still pass the scheduled end
	config := configured("1001", "a@example.com")
	config.WorkStartTime = "22:00"
	config.WorkEndTime = "06:00"

	punches := []report.PunchEvent{punchAt("1001", 22, 5)}

	svc := NewNotificationService(
		&fakePunchRepo{punches: punches},
		&fakeEmployeeRepo{employees: map[string]employee.Employee{
			"1001": {EmpID: "E-1", CardNo: "1001", Name: "Wang Lei"},
		}},
		&fakeSettingsRepo{configs: map[string]settings.ShiftConfig{"1001": config}},
		logs,
		mailer,
		3,
		nil,
	)

	run, err := svc.Run(context.Background(), notification.RunRequest{Date: "2025-03-10"})
	require.NoError(t, err)

	assert.Equal(t, 1, run.SentCount)
	require.Len(t, run.Results, 1)
	require.NotNil(t, run.Results[0].NoticeType)
	assert.Equal(t, notification.KindMissingPunch, *run.Results[0].NoticeType)
}

func TestNotificationService_Run_MailerNotConfigured(t *testing.T) {
	mailer := &fakeMailer{unconfigured: true}
	svc := newTestService(nil, map[string]settings.ShiftConfig{}, mailer, &fakeLogRepo{})

	_, err := svc.Run(context.Background(), notification.RunRequest{Date: "2025-03-10"})
	assert.ErrorIs(t, err, notification.ErrMailerNotConfigured)
}

func TestNotificationService_Run_UnknownCard(t *testing.T) {
	svc := newTestService(nil, map[string]settings.ShiftConfig{}, &fakeMailer{}, &fakeLogRepo{})

	_, err := svc.Run(context.Background(), notification.RunRequest{
		Date:   "2025-03-10",
		CardNo: strp("9999"),
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestNotificationService_Run_WritesAuditLog(t *testing.T) {
	mailer := &fakeMailer{}
	logs := &fakeLogRepo{}

	punches := []report.PunchEvent{
		punchAt("1002", 9, 30), punchAt("1002", 18, 5),
	}
	configs := map[string]settings.ShiftConfig{
		"1002": configured("1002", "b@example.com"),
	}

	svc := newTestService(punches, configs, mailer, logs)
	_, err := svc.Run(context.Background(), notification.RunRequest{Date: "2025-03-10"})
	require.NoError(t, err)

	require.Len(t, logs.rows, 1)
	row := logs.rows[0]
	assert.Equal(t, "1002", row.CardNo)
	assert.Equal(t, notification.KindLate, row.Type)
	assert.Equal(t, notification.StatusSent, row.Status)
	assert.Equal(t, "b@example.com", row.ToEmail)
	assert.Equal(t, "hr@example.com", row.CC)

	resp, err := svc.Logs(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.TotalCount)
	assert.Equal(t, "LATE", resp.Items[0].Type)
}
