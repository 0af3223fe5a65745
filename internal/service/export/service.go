package export

import (
	"context"
	"fmt"
	"strings"

	"github.com/oilchem-hr/attendance-backend-go/internal/domain/report"
	"github.com/oilchem-hr/attendance-backend-go/internal/pkg/pdf"
)

type ExportServiceImpl struct {
	reportService report.ReportService
	renderer      *pdf.Renderer
}

func NewExportService(reportService report.ReportService, renderer *pdf.Renderer) report.ExportService {
	return &ExportServiceImpl{
		reportService: reportService,
		renderer:      renderer,
	}
}

// exportFilename builds OC_Att_{D|M|Y}_{EmployeeName}_{CardNo}_{period}.pdf.
// The employee name keeps its letters; whitespace becomes underscores so
// the artifact survives Content-Disposition and filesystem round-trips.
func exportFilename(scope, employeeName, cardNo, period string) string {
	name := strings.Join(strings.Fields(employeeName), "_")
	return fmt.Sprintf("OC_Att_%s_%s_%s_%s.pdf", scope, name, cardNo, period)
}

// DailyPDF implements report.ExportService.
func (s *ExportServiceImpl) DailyPDF(ctx context.Context, req report.DailyReportRequest) (string, []byte, error) {
	resp, err := s.reportService.Daily(ctx, req)
	if err != nil {
		return "", nil, err
	}

	content, err := s.renderer.Daily(resp)
	if err != nil {
		return "", nil, err
	}

	return exportFilename("D", resp.EmployeeName, resp.CardNo, resp.Date), content, nil
}

// MonthlyPDF implements report.ExportService.
func (s *ExportServiceImpl) MonthlyPDF(ctx context.Context, req report.MonthlyReportRequest) (string, []byte, error) {
	resp, err := s.reportService.Monthly(ctx, req)
	if err != nil {
		return "", nil, err
	}

	content, err := s.renderer.Monthly(resp)
	if err != nil {
		return "", nil, err
	}

	return exportFilename("M", resp.EmployeeName, resp.CardNo, resp.Month), content, nil
}

// YearlyPDF implements report.ExportService.
func (s *ExportServiceImpl) YearlyPDF(ctx context.Context, req report.YearlyReportRequest) (string, []byte, error) {
	resp, err := s.reportService.Yearly(ctx, req)
	if err != nil {
		return "", nil, err
	}

	content, err := s.renderer.Yearly(resp)
	if err != nil {
		return "", nil, err
	}

	return exportFilename("Y", resp.EmployeeName, resp.CardNo, resp.Year), content, nil
}
