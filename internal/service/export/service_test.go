package export

import (
	"context"
	"testing"

	"github.com/oilchem-hr/attendance-backend-go/internal/domain/report"
	"github.com/oilchem-hr/attendance-backend-go/internal/pkg/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReportService struct{}

func (f *fakeReportService) Daily(_ context.Context, req report.DailyReportRequest) (report.DailyReportResponse, error) {
	return report.DailyReportResponse{
		EmployeeName: "Wang Lei",
		CardNo:       req.CardNo,
		DailyRecord:  report.DailyRecord{Date: req.Date, MissingPunch: true},
	}, nil
}

func (f *fakeReportService) Monthly(_ context.Context, req report.MonthlyReportRequest) (report.MonthlyReportResponse, error) {
	return report.MonthlyReportResponse{
		EmployeeName: "Wang Lei",
		CardNo:       req.CardNo,
		Month:        req.Month,
	}, nil
}

func (f *fakeReportService) Yearly(_ context.Context, req report.YearlyReportRequest) (report.YearlyReportResponse, error) {
	return report.YearlyReportResponse{
		EmployeeName: "Wang Lei",
		CardNo:       req.CardNo,
		Year:         req.Year,
	}, nil
}

func TestExportFilenameContract(t *testing.T) {
	assert.Equal(t, "OC_Att_D_Wang_Lei_1001_2025-03-10.pdf",
		exportFilename("D", "Wang Lei", "1001", "2025-03-10"))
	assert.Equal(t, "OC_Att_M_Wang_Lei_1001_2025-03.pdf",
		exportFilename("M", "Wang Lei", "1001", "2025-03"))
	assert.Equal(t, "OC_Att_Y_Wang_Lei_1001_2025.pdf",
		exportFilename("Y", "Wang Lei", "1001", "2025"))
}

func TestExportService_ProducesPDFBytes(t *testing.T) {
	svc := NewExportService(&fakeReportService{}, pdf.NewRenderer())

	filename, content, err := svc.DailyPDF(context.Background(), report.DailyReportRequest{
		CardNo: "1001",
		Date:   "2025-03-10",
	})
	require.NoError(t, err)

	assert.Equal(t, "OC_Att_D_Wang_Lei_1001_2025-03-10.pdf", filename)
	require.NotEmpty(t, content)
	// PDF magic header
	assert.Equal(t, "%PDF", string(content[:4]))
}

func TestExportService_MonthlyAndYearlyFilenames(t *testing.T) {
	svc := NewExportService(&fakeReportService{}, pdf.NewRenderer())

	filename, _, err := svc.MonthlyPDF(context.Background(), report.MonthlyReportRequest{
		CardNo: "1001",
		Month:  "2025-03",
	})
	require.NoError(t, err)
	assert.Equal(t, "OC_Att_M_Wang_Lei_1001_2025-03.pdf", filename)

	filename, _, err = svc.YearlyPDF(context.Background(), report.YearlyReportRequest{
		CardNo: "1001",
		Year:   "2025",
	})
	require.NoError(t, err)
	assert.Equal(t, "OC_Att_Y_Wang_Lei_1001_2025.pdf", filename)
}
