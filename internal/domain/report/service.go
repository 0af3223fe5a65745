package report

import (
	"context"
)

// ReportService derives attendance reports from raw punches
type ReportService interface {
	// Daily builds the normalized record for one card and day
	Daily(ctx context.Context, req DailyReportRequest) (DailyReportResponse, error)

	// Monthly builds the per-day breakdown and totals for one month
	Monthly(ctx context.Context, req MonthlyReportRequest) (MonthlyReportResponse, error)

	// Yearly builds the twelve-month rollup and year totals
	Yearly(ctx context.Context, req YearlyReportRequest) (YearlyReportResponse, error)
}

// ExportService renders finished reports to downloadable PDF artifacts.
// Filenames follow OC_Att_{D|M|Y}_{EmployeeName}_{CardNo}_{period}.pdf.
type ExportService interface {
	DailyPDF(ctx context.Context, req DailyReportRequest) (filename string, content []byte, err error)
	MonthlyPDF(ctx context.Context, req MonthlyReportRequest) (filename string, content []byte, err error)
	YearlyPDF(ctx context.Context, req YearlyReportRequest) (filename string, content []byte, err error)
}
