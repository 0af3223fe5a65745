package settings

import (
	"context"
	"testing"
	"time"

	"github.com/oilchem-hr/attendance-backend-go/internal/domain/employee"
	"github.com/oilchem-hr/attendance-backend-go/internal/domain/settings"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) GetByCardNo(_ context.Context, cardNo string) (employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.CardNo == cardNo {
			return emp, nil
		}
	}
	return employee.Employee{}, pgx.ErrNoRows
}

func (f *fakeEmployeeRepo) Search(_ context.Context, _ string) ([]employee.Employee, error) {
	return f.employees, nil
}

type fakeConfigRepo struct {
	configs map[string]settings.ShiftConfig
}

func (f *fakeConfigRepo) GetByCardNo(_ context.Context, cardNo string) (*settings.ShiftConfig, error) {
	config, ok := f.configs[cardNo]
	if !ok {
		return nil, nil
	}
	return &config, nil
}

func (f *fakeConfigRepo) GetByCardNos(_ context.Context, cardNos []string) (map[string]settings.ShiftConfig, error) {
	out := make(map[string]settings.ShiftConfig)
	for _, cardNo := range cardNos {
		if config, ok := f.configs[cardNo]; ok {
			out[cardNo] = config
		}
	}
	return out, nil
}

func (f *fakeConfigRepo) Upsert(_ context.Context, config settings.ShiftConfig) (settings.ShiftConfig, error) {
	config.UpdatedAt = time.Now()
	f.configs[config.CardNo] = config
	return config, nil
}

func (f *fakeConfigRepo) ListNotificationTargets(_ context.Context) ([]settings.ShiftConfig, error) {
	return nil, nil
}

func strp(s string) *string { return &s }
func intp(n int) *int       { return &n }
func boolp(b bool) *bool    { return &b }

func newTestService(configs map[string]settings.ShiftConfig) settings.SettingsService {
	return NewSettingsService(
		&fakeEmployeeRepo{employees: []employee.Employee{
			{EmpID: "E-1", CardNo: "1001", Name: "Wang Lei"},
			{EmpID: "E-2", CardNo: "1002", Name: "Li Na"},
		}},
		&fakeConfigRepo{configs: configs},
	)
}

func TestSettingsService_List_MergesDefaults(t *testing.T) {
	stored := settings.DefaultShiftConfig("1001")
	stored.WorkStartTime = "08:00"
	stored.UpdatedAt = time.Now()

	svc := newTestService(map[string]settings.ShiftConfig{"1001": stored})
	resp, err := svc.List(context.Background(), "")
	require.NoError(t, err)

	require.Equal(t, 2, resp.TotalCount)
	assert.Equal(t, "08:00", resp.Items[0].WorkStartTime)
	assert.True(t, resp.Items[0].Saved)

	// unconfigured employee still appears, carrying defaults
	assert.Equal(t, settings.DefaultWorkStartTime, resp.Items[1].WorkStartTime)
	assert.False(t, resp.Items[1].Saved)
	assert.Nil(t, resp.Items[1].UpdatedAt)
}

func TestSettingsService_Get_UnknownCard(t *testing.T) {
	svc := newTestService(map[string]settings.ShiftConfig{})

	_, err := svc.Get(context.Background(), "9999")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestSettingsService_Get_DefaultsWhenUnsaved(t *testing.T) {
	svc := newTestService(map[string]settings.ShiftConfig{})

	resp, err := svc.Get(context.Background(), "1001")
	require.NoError(t, err)

	assert.Equal(t, "Wang Lei", resp.EmployeeName)
	assert.Equal(t, settings.DefaultWorkStartTime, resp.WorkStartTime)
	assert.Equal(t, settings.DefaultWorkEndTime, resp.WorkEndTime)
	assert.False(t, resp.Saved)
	assert.False(t, resp.NotifyEmployee)
}

func TestSettingsService_Save_PartialUpdateKeepsStoredFields(t *testing.T) {
	stored := settings.DefaultShiftConfig("1001")
	stored.WorkStartTime = "08:00"
	stored.LateGraceMinutes = 15
	stored.UpdatedAt = time.Now()
	repo := map[string]settings.ShiftConfig{"1001": stored}

	svc := newTestService(repo)
	resp, err := svc.Save(context.Background(), settings.SaveShiftConfigRequest{
		CardNo:         "1001",
		EmployeeEmail:  strp("wang.lei@example.com"),
		NotifyEmployee: boolp(true),
	})
	require.NoError(t, err)

	// untouched fields survive the partial update
	assert.Equal(t, "08:00", resp.WorkStartTime)
	assert.Equal(t, 15, resp.LateGraceMinutes)

	require.NotNil(t, resp.EmployeeEmail)
	assert.Equal(t, "wang.lei@example.com", *resp.EmployeeEmail)
	assert.True(t, resp.NotifyEmployee)
	assert.True(t, resp.Saved)
	assert.NotNil(t, resp.UpdatedAt)
}

func TestSettingsService_Save_FirstWriteStartsFromDefaults(t *testing.T) {
	svc := newTestService(map[string]settings.ShiftConfig{})

	resp, err := svc.Save(context.Background(), settings.SaveShiftConfigRequest{
		CardNo:           "1002",
		LateGraceMinutes: intp(5),
	})
	require.NoError(t, err)

	assert.Equal(t, settings.DefaultWorkStartTime, resp.WorkStartTime)
	assert.Equal(t, 5, resp.LateGraceMinutes)
	assert.Equal(t, "Li Na", resp.EmployeeName)
	require.NotNil(t, resp.EmpID)
	assert.Equal(t, "E-2", *resp.EmpID)
}

func TestSettingsService_Save_RejectsInvalidClockTime(t *testing.T) {
	svc := newTestService(map[string]settings.ShiftConfig{})

	_, err := svc.Save(context.Background(), settings.SaveShiftConfigRequest{
		CardNo:        "1001",
		WorkStartTime: strp("9am"),
	})
	assert.Error(t, err)
}

func TestSettingsService_Save_RejectsUnknownEmployee(t *testing.T) {
	svc := newTestService(map[string]settings.ShiftConfig{})

	_, err := svc.Save(context.Background(), settings.SaveShiftConfigRequest{CardNo: "9999"})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
