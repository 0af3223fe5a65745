package report

import (
	"github.com/oilchem-hr/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// REPORT REQUESTS
// ========================================

type DailyReportRequest struct {
	CardNo string `json:"card_no"`
	Date   string `json:"date"` // YYYY-MM-DD
}

func (r *DailyReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CardNo) {
		errs = append(errs, validator.ValidationError{
			Field:   "card_no",
			Message: "card_no is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MonthlyReportRequest struct {
	CardNo string `json:"card_no"`
	Month  string `json:"month"` // YYYY-MM
}

func (r *MonthlyReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CardNo) {
		errs = append(errs, validator.ValidationError{
			Field:   "card_no",
			Message: "card_no is required",
		})
	}

	if _, ok := validator.IsValidMonth(r.Month); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be in YYYY-MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type YearlyReportRequest struct {
	CardNo string `json:"card_no"`
	Year   string `json:"year"` // YYYY
}

func (r *YearlyReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CardNo) {
		errs = append(errs, validator.ValidationError{
			Field:   "card_no",
			Message: "card_no is required",
		})
	}

	if _, ok := validator.IsValidYear(r.Year); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be numeric YYYY between 1900 and 2100",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========================================
// REPORT RESPONSES
// ========================================

// DailyRecord is one row of a report. Presentation fields are filled
// at build time; a row that already carries DurationHHMM keeps it, the
// calculator only recomputes when the string is absent.
type DailyRecord struct {
	Date            string  `json:"date"`
	FirstIn         *string `json:"first_in"`
	LastOut         *string `json:"last_out"`
	DurationMinutes *int    `json:"duration_minutes"`
	DurationHHMM    *string `json:"duration_hhmm"`
	MissingPunch    bool    `json:"missing_punch"`
	Anomalous       bool    `json:"anomalous,omitempty"`
}

type DailyReportResponse struct {
	EmployeeName string  `json:"employee_name"`
	CardNo       string  `json:"card_no"`
	Department   *string `json:"department"`

	DailyRecord
}

type MonthlyReportResponse struct {
	EmployeeName string  `json:"employee_name"`
	CardNo       string  `json:"card_no"`
	Department   *string `json:"department"`
	Month        string  `json:"month"`

	Records []DailyRecord `json:"records"`

	TotalDays             int     `json:"total_days"`
	MissingPunchDays      int     `json:"missing_punch_days"`
	TotalMinutes          int     `json:"total_minutes"`
	TotalDurationHHMM     *string `json:"total_duration_hhmm"`
	TotalDurationReadable *string `json:"total_duration_readable"`
}

type MonthlySummary struct {
	Month                 string  `json:"month"` // YYYY-MM
	WorkedDays            int     `json:"worked_days"`
	MissingPunchDays      int     `json:"missing_punch_days"`
	TotalMinutes          int     `json:"total_minutes"`
	AverageMinutesPerDay  *int    `json:"average_minutes_per_day"`
	AverageDurationHHMM   *string `json:"average_duration_hhmm"`
	TotalDurationHHMM     *string `json:"total_duration_hhmm"`
	TotalDurationReadable *string `json:"total_duration_readable"`
}

type YearlyReportResponse struct {
	EmployeeName string  `json:"employee_name"`
	CardNo       string  `json:"card_no"`
	Department   *string `json:"department"`
	Year         string  `json:"year"`

	Months []MonthlySummary `json:"months"`

	TotalWorkedDays       int     `json:"total_worked_days"`
	MissingPunchDays      int     `json:"missing_punch_days"`
	TotalMinutes          int     `json:"total_minutes"`
	TotalDurationHHMM     *string `json:"total_duration_hhmm"`
	TotalDurationReadable *string `json:"total_duration_readable"`
}
