package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oilchem-hr/attendance-backend-go/internal/domain/employee"
	"github.com/oilchem-hr/attendance-backend-go/internal/domain/report"
	"github.com/jackc/pgx/v5"
)

type ReportServiceImpl struct {
	cutoffHours int
	report.PunchRepository
	employee.EmployeeRepository
}

func NewReportService(
	punchRepo report.PunchRepository,
	employeeRepo employee.EmployeeRepository,
	cutoffHours int,
) report.ReportService {
	return &ReportServiceImpl{
		cutoffHours:        cutoffHours,
		PunchRepository:    punchRepo,
		EmployeeRepository: employeeRepo,
	}
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02 15:04:05")
	return &format
}

func strPtr(s string) *string {
	return &s
}

// fillDurationStrings derives the HH:MM string from minutes, but only
// when no upstream value is already present.
func fillDurationStrings(rec *report.DailyRecord) {
	if rec.DurationHHMM == nil && rec.DurationMinutes != nil {
		rec.DurationHHMM = strPtr(ToHHMM(*rec.DurationMinutes))
	}
}

func buildDailyRecord(day time.Time, att *report.DailyAttendance) report.DailyRecord {
	rec := report.DailyRecord{
		Date:         day.Format("2006-01-02"),
		MissingPunch: true,
	}
	if att == nil {
		return rec
	}
	rec.FirstIn = timePtrToString(att.FirstIn)
	rec.LastOut = timePtrToString(att.LastOut)
	rec.DurationMinutes = att.DurationMinutes
	rec.MissingPunch = att.MissingPunch
	rec.Anomalous = att.Anomalous
	fillDurationStrings(&rec)
	return rec
}

func (s *ReportServiceImpl) getEmployee(ctx context.Context, cardNo string) (employee.Employee, error) {
	emp, err := s.EmployeeRepository.GetByCardNo(ctx, cardNo)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by card number: %w", err)
	}
	return emp, nil
}

// Daily implements report.ReportService.
func (s *ReportServiceImpl) Daily(ctx context.Context, req report.DailyReportRequest) (report.DailyReportResponse, error) {
	if err := req.Validate(); err != nil {
		return report.DailyReportResponse{}, err
	}

	emp, err := s.getEmployee(ctx, req.CardNo)
	if err != nil {
		return report.DailyReportResponse{}, err
	}

	day, err := time.ParseInLocation("2006-01-02", req.Date, time.Local)
	if err != nil {
		return report.DailyReportResponse{}, report.ErrInvalidPeriod
	}

	windowEnd := day.AddDate(0, 0, 1).Add(time.Duration(s.cutoffHours) * time.Hour)
	punches, err := s.PunchRepository.GetPunches(ctx, req.CardNo, day, windowEnd)
	if err != nil {
		return report.DailyReportResponse{}, fmt.Errorf("failed to get punches: %w", err)
	}

	att := NormalizeDay(punches, day, s.cutoffHours)

	return report.DailyReportResponse{
		EmployeeName: emp.DisplayName(),
		CardNo:       emp.CardNo,
		Department:   emp.Department,
		DailyRecord:  buildDailyRecord(day, att),
	}, nil
}

// monthTotals carries the aggregate counters for one month of records
type monthTotals struct {
	workedDays   int
	missingDays  int
	totalMinutes int
}

func (s *ReportServiceImpl) buildMonth(punches []report.PunchEvent, monthStart time.Time) ([]report.DailyRecord, monthTotals) {
	nextMonth := monthStart.AddDate(0, 1, 0)

	var records []report.DailyRecord
	var totals monthTotals
	for day := monthStart; day.Before(nextMonth); day = day.AddDate(0, 0, 1) {
		att := NormalizeDay(punches, day, s.cutoffHours)
		rec := buildDailyRecord(day, att)
		records = append(records, rec)

		if rec.DurationMinutes != nil {
			totals.workedDays++
			totals.totalMinutes += *rec.DurationMinutes
		}
		// days without any punch render as missing but are not counted;
		// the counter tracks one-sided days only
		if att != nil && att.MissingPunch {
			totals.missingDays++
		}
	}
	return records, totals
}

// Monthly implements report.ReportService.
func (s *ReportServiceImpl) Monthly(ctx context.Context, req report.MonthlyReportRequest) (report.MonthlyReportResponse, error) {
	if err := req.Validate(); err != nil {
		return report.MonthlyReportResponse{}, err
	}

	emp, err := s.getEmployee(ctx, req.CardNo)
	if err != nil {
		return report.MonthlyReportResponse{}, err
	}

	monthStart, err := time.ParseInLocation("2006-01", req.Month, time.Local)
	if err != nil {
		return report.MonthlyReportResponse{}, report.ErrInvalidPeriod
	}

	windowEnd := monthStart.AddDate(0, 1, 0).Add(time.Duration(s.cutoffHours) * time.Hour)
	punches, err := s.PunchRepository.GetPunches(ctx, req.CardNo, monthStart, windowEnd)
	if err != nil {
		return report.MonthlyReportResponse{}, fmt.Errorf("failed to get punches: %w", err)
	}

	records, totals := s.buildMonth(punches, monthStart)

	return report.MonthlyReportResponse{
		EmployeeName:          emp.DisplayName(),
		CardNo:                emp.CardNo,
		Department:            emp.Department,
		Month:                 req.Month,
		Records:               records,
		TotalDays:             totals.workedDays,
		MissingPunchDays:      totals.missingDays,
		TotalMinutes:          totals.totalMinutes,
		TotalDurationHHMM:     strPtr(ToHHMM(totals.totalMinutes)),
		TotalDurationReadable: strPtr(ToReadable(totals.totalMinutes)),
	}, nil
}

// Yearly implements report.ReportService.
func (s *ReportServiceImpl) Yearly(ctx context.Context, req report.YearlyReportRequest) (report.YearlyReportResponse, error) {
	if err := req.Validate(); err != nil {
		return report.YearlyReportResponse{}, err
	}

	emp, err := s.getEmployee(ctx, req.CardNo)
	if err != nil {
		return report.YearlyReportResponse{}, err
	}

	yearStart, err := time.ParseInLocation("2006", req.Year, time.Local)
	if err != nil {
		return report.YearlyReportResponse{}, report.ErrInvalidPeriod
	}

	windowEnd := yearStart.AddDate(1, 0, 0).Add(time.Duration(s.cutoffHours) * time.Hour)
	punches, err := s.PunchRepository.GetPunches(ctx, req.CardNo, yearStart, windowEnd)
	if err != nil {
		return report.YearlyReportResponse{}, fmt.Errorf("failed to get punches: %w", err)
	}

	resp := report.YearlyReportResponse{
		EmployeeName: emp.DisplayName(),
		CardNo:       emp.CardNo,
		Department:   emp.Department,
		Year:         req.Year,
	}

	for month := 0; month < 12; month++ {
		monthStart := yearStart.AddDate(0, month, 0)
		_, totals := s.buildMonth(punches, monthStart)

		summary := report.MonthlySummary{
			Month:                 monthStart.Format("2006-01"),
			WorkedDays:            totals.workedDays,
			MissingPunchDays:      totals.missingDays,
			TotalMinutes:          totals.totalMinutes,
			TotalDurationHHMM:     strPtr(ToHHMM(totals.totalMinutes)),
			TotalDurationReadable: strPtr(ToReadable(totals.totalMinutes)),
		}
		if totals.workedDays > 0 {
			avg := totals.totalMinutes / totals.workedDays
			summary.AverageMinutesPerDay = &avg
			summary.AverageDurationHHMM = strPtr(ToHHMM(avg))
		}
		resp.Months = append(resp.Months, summary)

		resp.TotalWorkedDays += totals.workedDays
		resp.MissingPunchDays += totals.missingDays
		resp.TotalMinutes += totals.totalMinutes
	}

	resp.TotalDurationHHMM = strPtr(ToHHMM(resp.TotalMinutes))
	resp.TotalDurationReadable = strPtr(ToReadable(resp.TotalMinutes))

	return resp, nil
}
