package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/oilchem-hr/attendance-backend-go/internal/domain/employee"
	"github.com/oilchem-hr/attendance-backend-go/internal/domain/settings"
	"github.com/jackc/pgx/v5"
)

type SettingsServiceImpl struct {
	employee.EmployeeRepository
	settings.ShiftConfigRepository
}

func NewSettingsService(
	employeeRepo employee.EmployeeRepository,
	configRepo settings.ShiftConfigRepository,
) settings.SettingsService {
	return &SettingsServiceImpl{
		EmployeeRepository:    employeeRepo,
		ShiftConfigRepository: configRepo,
	}
}

func mapConfigToResponse(config settings.ShiftConfig, employeeName string, saved bool) settings.ShiftConfigResponse {
	resp := settings.ShiftConfigResponse{
		CardNo:            config.CardNo,
		EmpID:             config.EmpID,
		EmployeeName:      employeeName,
		EmployeeEmail:     config.EmployeeEmail,
		WorkStartTime:     config.WorkStartTime,
		WorkEndTime:       config.WorkEndTime,
		LateGraceMinutes:  config.LateGraceMinutes,
		EarlyGraceMinutes: config.EarlyGraceMinutes,
		NotifyEmployee:    config.NotifyEmployee,
		NotifyCCOverride:  config.NotifyCCOverride,
		Saved:             saved,
	}
	if saved {
		updatedAt := config.UpdatedAt.Format("2006-01-02 15:04:05")
		resp.UpdatedAt = &updatedAt
	}
	return resp
}

// List implements settings.SettingsService.
func (s *SettingsServiceImpl) List(ctx context.Context, search string) (settings.ListShiftConfigResponse, error) {
	employees, err := s.EmployeeRepository.Search(ctx, search)
	if err != nil {
		return settings.ListShiftConfigResponse{}, fmt.Errorf("failed to search employees: %w", err)
	}

	cardNos := make([]string, 0, len(employees))
	for _, emp := range employees {
		cardNos = append(cardNos, emp.CardNo)
	}

	stored, err := s.ShiftConfigRepository.GetByCardNos(ctx, cardNos)
	if err != nil {
		return settings.ListShiftConfigResponse{}, fmt.Errorf("failed to get shift configs: %w", err)
	}

	resp := settings.ListShiftConfigResponse{
		Items: make([]settings.ShiftConfigResponse, 0, len(employees)),
	}
	for _, emp := range employees {
		config, saved := stored[emp.CardNo]
		if !saved {
			config = settings.DefaultShiftConfig(emp.CardNo)
		}
		resp.Items = append(resp.Items, mapConfigToResponse(config, emp.DisplayName(), saved))
	}
	resp.TotalCount = len(resp.Items)

	return resp, nil
}

// Get implements settings.SettingsService.
func (s *SettingsServiceImpl) Get(ctx context.Context, cardNo string) (settings.ShiftConfigResponse, error) {
	emp, err := s.EmployeeRepository.GetByCardNo(ctx, cardNo)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return settings.ShiftConfigResponse{}, employee.ErrEmployeeNotFound
		}
		return settings.ShiftConfigResponse{}, fmt.Errorf("failed to get employee by card number: %w", err)
	}

	config, err := s.ShiftConfigRepository.GetByCardNo(ctx, cardNo)
	if err != nil {
		return settings.ShiftConfigResponse{}, fmt.Errorf("failed to get shift config: %w", err)
	}
	if config == nil {
		fallback := settings.DefaultShiftConfig(cardNo)
		return mapConfigToResponse(fallback, emp.DisplayName(), false), nil
	}

	return mapConfigToResponse(*config, emp.DisplayName(), true), nil
}

// Save implements settings.SettingsService.
func (s *SettingsServiceImpl) Save(ctx context.Context, req settings.SaveShiftConfigRequest) (settings.ShiftConfigResponse, error) {
	if err := req.Validate(); err != nil {
		return settings.ShiftConfigResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByCardNo(ctx, req.CardNo)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return settings.ShiftConfigResponse{}, employee.ErrEmployeeNotFound
		}
		return settings.ShiftConfigResponse{}, fmt.Errorf("failed to get employee by card number: %w", err)
	}

	base, err := s.ShiftConfigRepository.GetByCardNo(ctx, req.CardNo)
	if err != nil {
		return settings.ShiftConfigResponse{}, fmt.Errorf("failed to get shift config: %w", err)
	}
	if base == nil {
		fallback := settings.DefaultShiftConfig(req.CardNo)
		base = &fallback
	}

	merged := req.Merge(*base)
	if merged.EmployeeNameCache == nil {
		name := emp.DisplayName()
		merged.EmployeeNameCache = &name
	}
	if merged.EmpID == nil && emp.EmpID != "" {
		merged.EmpID = &emp.EmpID
	}

	persisted, err := s.ShiftConfigRepository.Upsert(ctx, merged)
	if err != nil {
		return settings.ShiftConfigResponse{}, fmt.Errorf("failed to upsert shift config: %w", err)
	}

	return mapConfigToResponse(persisted, emp.DisplayName(), true), nil
}
