package settings

import (
	"strings"

	"github.com/oilchem-hr/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// SHIFT CONFIG DTOs
// ========================================

// SaveShiftConfigRequest carries a partial update; nil fields keep the
// stored (or default) value. Merging happens against the canonical
// default config, never ad hoc per field site.
type SaveShiftConfigRequest struct {
	CardNo            string  `json:"card_no"`
	EmpID             *string `json:"emp_id"`
	EmployeeNameCache *string `json:"employee_name_cache"`
	EmployeeEmail     *string `json:"employee_email"`
	WorkStartTime     *string `json:"work_start_time"`
	WorkEndTime       *string `json:"work_end_time"`
	LateGraceMinutes  *int    `json:"late_grace_minutes"`
	EarlyGraceMinutes *int    `json:"early_grace_minutes"`
	NotifyEmployee    *bool   `json:"notify_employee"`
	NotifyCCOverride  *string `json:"notify_cc_override"`
}

func (r *SaveShiftConfigRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CardNo) {
		errs = append(errs, validator.ValidationError{
			Field:   "card_no",
			Message: "card_no is required",
		})
	}

	if r.WorkStartTime != nil {
		if _, ok := validator.IsValidClockTime(*r.WorkStartTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "work_start_time",
				Message: "work_start_time must be in HH:MM format",
			})
		}
	}

	if r.WorkEndTime != nil {
		if _, ok := validator.IsValidClockTime(*r.WorkEndTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "work_end_time",
				Message: "work_end_time must be in HH:MM format",
			})
		}
	}

	if r.LateGraceMinutes != nil && *r.LateGraceMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "late_grace_minutes",
			Message: "late_grace_minutes must not be negative",
		})
	}

	if r.EarlyGraceMinutes != nil && *r.EarlyGraceMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "early_grace_minutes",
			Message: "early_grace_minutes must not be negative",
		})
	}

	if r.EmployeeEmail != nil && !validator.IsEmpty(*r.EmployeeEmail) {
		if !validator.IsValidEmail(strings.TrimSpace(*r.EmployeeEmail)) {
			errs = append(errs, validator.ValidationError{
				Field:   "employee_email",
				Message: "employee_email must be a valid email address",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Merge applies the request on top of base (a stored row or the
// canonical default config) and returns the resulting config.
func (r *SaveShiftConfigRequest) Merge(base ShiftConfig) ShiftConfig {
	merged := base
	merged.CardNo = strings.TrimSpace(r.CardNo)

	if r.EmpID != nil {
		merged.EmpID = trimmedOrNil(*r.EmpID)
	}
	if r.EmployeeNameCache != nil {
		merged.EmployeeNameCache = trimmedOrNil(*r.EmployeeNameCache)
	}
	if r.EmployeeEmail != nil {
		merged.EmployeeEmail = trimmedOrNil(*r.EmployeeEmail)
	}
	if r.WorkStartTime != nil && !validator.IsEmpty(*r.WorkStartTime) {
		merged.WorkStartTime = strings.TrimSpace(*r.WorkStartTime)
	}
	if r.WorkEndTime != nil && !validator.IsEmpty(*r.WorkEndTime) {
		merged.WorkEndTime = strings.TrimSpace(*r.WorkEndTime)
	}
	if r.LateGraceMinutes != nil {
		merged.LateGraceMinutes = *r.LateGraceMinutes
	}
	if r.EarlyGraceMinutes != nil {
		merged.EarlyGraceMinutes = *r.EarlyGraceMinutes
	}
	if r.NotifyEmployee != nil {
		merged.NotifyEmployee = *r.NotifyEmployee
	}
	if r.NotifyCCOverride != nil {
		merged.NotifyCCOverride = trimmedOrNil(*r.NotifyCCOverride)
	}

	return merged
}

func trimmedOrNil(s string) *string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

type ShiftConfigResponse struct {
	CardNo            string  `json:"card_no"`
	EmpID             *string `json:"emp_id"`
	EmployeeName      string  `json:"employee_name"`
	EmployeeEmail     *string `json:"employee_email"`
	WorkStartTime     string  `json:"work_start_time"`
	WorkEndTime       string  `json:"work_end_time"`
	LateGraceMinutes  int     `json:"late_grace_minutes"`
	EarlyGraceMinutes int     `json:"early_grace_minutes"`
	NotifyEmployee    bool    `json:"notify_employee"`
	NotifyCCOverride  *string `json:"notify_cc_override"`
	UpdatedAt         *string `json:"updated_at"`
	Saved             bool    `json:"saved"`
}

type ListShiftConfigResponse struct {
	TotalCount int                   `json:"total_count"`
	Items      []ShiftConfigResponse `json:"items"`
}
