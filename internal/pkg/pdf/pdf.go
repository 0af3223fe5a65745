package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/oilchem-hr/attendance-backend-go/internal/domain/report"
)

const notAvailable = "N/A"

// Renderer draws attendance reports onto A4 portrait pages
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func newDoc(title string) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, title)
	pdf.Ln(12)

	return pdf
}

func writeHeader(pdf *gofpdf.Fpdf, employeeName, cardNo, period string) {
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(40, 10, fmt.Sprintf("Employee: %s", employeeName))
	pdf.Ln(8)
	pdf.Cell(40, 10, fmt.Sprintf("Card No: %s", cardNo))
	pdf.Ln(8)
	pdf.Cell(40, 10, fmt.Sprintf("Period: %s", period))
	pdf.Ln(12)
}

func output(pdf *gofpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func orNA(s *string) string {
	if s == nil {
		return notAvailable
	}
	return *s
}

func recordRow(pdf *gofpdf.Fpdf, rec report.DailyRecord) {
	status := "OK"
	if rec.Anomalous {
		status = "ANOMALY"
	} else if rec.MissingPunch {
		status = "MISSING"
	}

	pdf.Cell(28, 8, rec.Date)
	pdf.Cell(42, 8, orNA(rec.FirstIn))
	pdf.Cell(42, 8, orNA(rec.LastOut))
	pdf.Cell(28, 8, orNA(rec.DurationHHMM))
	pdf.Cell(28, 8, status)
	pdf.Ln(8)
}

func recordTableHeader(pdf *gofpdf.Fpdf) {
	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(28, 8, "Date")
	pdf.Cell(42, 8, "First In")
	pdf.Cell(42, 8, "Last Out")
	pdf.Cell(28, 8, "Duration")
	pdf.Cell(28, 8, "Status")
	pdf.Ln(9)
	pdf.SetFont("Arial", "", 10)
}

// Daily renders a one-day report
func (r *Renderer) Daily(resp report.DailyReportResponse) ([]byte, error) {
	pdf := newDoc("Daily Attendance Report")
	writeHeader(pdf, resp.EmployeeName, resp.CardNo, resp.Date)

	recordTableHeader(pdf)
	recordRow(pdf, resp.DailyRecord)

	return output(pdf)
}

// Monthly renders the per-day breakdown plus totals
func (r *Renderer) Monthly(resp report.MonthlyReportResponse) ([]byte, error) {
	pdf := newDoc("Monthly Attendance Report")
	writeHeader(pdf, resp.EmployeeName, resp.CardNo, resp.Month)

	recordTableHeader(pdf)
	for _, rec := range resp.Records {
		recordRow(pdf, rec)
	}
	pdf.Ln(6)

	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(70, 8, "Worked Days")
	pdf.SetFont("Arial", "", 11)
	pdf.Cell(70, 8, fmt.Sprintf("%d", resp.TotalDays))
	pdf.Ln(8)
	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(70, 8, "Missing Punch Days")
	pdf.SetFont("Arial", "", 11)
	pdf.Cell(70, 8, fmt.Sprintf("%d", resp.MissingPunchDays))
	pdf.Ln(8)
	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(70, 8, "Total Duration")
	pdf.SetFont("Arial", "", 11)
	pdf.Cell(70, 8, orNA(resp.TotalDurationReadable))
	pdf.Ln(8)

	return output(pdf)
}

// Yearly renders twelve monthly summary rows plus year totals
func (r *Renderer) Yearly(resp report.YearlyReportResponse) ([]byte, error) {
	pdf := newDoc("Yearly Attendance Report")
	writeHeader(pdf, resp.EmployeeName, resp.CardNo, resp.Year)

	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(26, 8, "Month")
	pdf.Cell(32, 8, "Worked Days")
	pdf.Cell(32, 8, "Missing Days")
	pdf.Cell(38, 8, "Total")
	pdf.Cell(38, 8, "Avg / Day")
	pdf.Ln(9)
	pdf.SetFont("Arial", "", 10)

	for _, month := range resp.Months {
		pdf.Cell(26, 8, month.Month)
		pdf.Cell(32, 8, fmt.Sprintf("%d", month.WorkedDays))
		pdf.Cell(32, 8, fmt.Sprintf("%d", month.MissingPunchDays))
		pdf.Cell(38, 8, orNA(month.TotalDurationHHMM))
		pdf.Cell(38, 8, orNA(month.AverageDurationHHMM))
		pdf.Ln(8)
	}
	pdf.Ln(6)

	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(70, 8, "Total Worked Days")
	pdf.SetFont("Arial", "", 11)
	pdf.Cell(70, 8, fmt.Sprintf("%d", resp.TotalWorkedDays))
	pdf.Ln(8)
	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(70, 8, "Total Duration")
	pdf.SetFont("Arial", "", 11)
	pdf.Cell(70, 8, orNA(resp.TotalDurationReadable))
	pdf.Ln(8)

	return output(pdf)
}
