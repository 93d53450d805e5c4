package services

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/destegai/scan-server/models"
)

// ReportService renders scan results and activity logs into
// downloadable PDF documents. It only consumes structured rows; no
// markup ever flows in from the rest of the pipeline.
type ReportService interface {
	ExportScanResults(title string, results []models.ScanResult) ([]byte, error)
	ExportActivityLog(actor string, entries []models.ActivityLogEntry) ([]byte, error)
}

// reportService implements ReportService interface
type reportService struct{}

// NewReportService creates a new report exporter
func NewReportService() ReportService {
	return &reportService{}
}

// ExportScanResults renders a scan result collection as a PDF table
func (s *reportService) ExportScanResults(title string, results []models.ScanResult) ([]byte, error) {
	pdf := newReportPage(title)

	widths := []float64{55, 30, 30, 70}
	writeTableHeader(pdf, widths, []string{"Owner", "Prediction", "Confidence (%)", "Date"})

	for _, result := range results {
		writeTableRow(pdf, widths, []string{
			result.OwnerEmail,
			result.PredictedClass,
			fmt.Sprintf("%.2f", result.Confidence),
			models.FormatDateTime(result.SubmittedAt),
		})
	}

	return render(pdf)
}

// ExportActivityLog renders one actor's audit trail as a PDF table
func (s *reportService) ExportActivityLog(actor string, entries []models.ActivityLogEntry) ([]byte, error) {
	pdf := newReportPage(fmt.Sprintf("DeStegAi Activity Log - %s", actor))

	widths := []float64{130, 55}
	writeTableHeader(pdf, widths, []string{"Activity", "Date"})

	for _, entry := range entries {
		writeTableRow(pdf, widths, []string{
			entry.Activity,
			models.FormatDateTime(entry.OccurredAt),
		})
	}

	return render(pdf)
}

// newReportPage sets up a page with the shared title block
func newReportPage(title string) *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, title)
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 9)
	pdf.Cell(0, 6, fmt.Sprintf("Generated on: %s", time.Now().Format("January 2, 2006")))
	pdf.Ln(10)

	return pdf
}

func writeTableHeader(pdf *fpdf.Fpdf, widths []float64, headers []string) {
	pdf.SetFont("Helvetica", "B", 10)
	for i, header := range headers {
		pdf.CellFormat(widths[i], 7, header, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Helvetica", "", 9)
}

func writeTableRow(pdf *fpdf.Fpdf, widths []float64, cells []string) {
	for i, cell := range cells {
		pdf.CellFormat(widths[i], 6, cell, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)
}

func render(pdf *fpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}
