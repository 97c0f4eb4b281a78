package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/smp-pelanggaran-api/internal/models"
	appErrors "github.com/noah-isme/smp-pelanggaran-api/pkg/errors"
	"github.com/noah-isme/smp-pelanggaran-api/pkg/export"
)

// ExportFormat selects the rendered document type.
type ExportFormat string

const (
	ExportFormatCSV ExportFormat = "csv"
	ExportFormatPDF ExportFormat = "pdf"
)

const (
	colGroup      = "Kelompok"
	colName       = "Nama"
	colGradeBand  = "Rombel"
	colViolations = "Total Pelanggaran"
	colPoints     = "Total Poin"
)

type summaryProvider interface {
	Summary(ctx context.Context, filter models.DashboardFilter) (*models.DashboardSummary, error)
}

type institutionProvider interface {
	Get(ctx context.Context) (*models.InstitutionSettings, error)
}

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(report export.Report) ([]byte, error)
}

// ExportFile is a rendered document ready for download.
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ExportService renders the dashboard summary as CSV or PDF.
type ExportService struct {
	summary     summaryProvider
	institution institutionProvider
	csv         csvRenderer
	pdf         pdfRenderer
	logger      *zap.Logger
	now         func() time.Time
}

// NewExportService constructs an ExportService. institution may be nil.
func NewExportService(summary summaryProvider, institution institutionProvider, logger *zap.Logger, csv csvRenderer, pdf pdfRenderer) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if csv == nil {
		csv = export.NewCSVExporter(export.WithBOM())
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	return &ExportService{
		summary:     summary,
		institution: institution,
		csv:         csv,
		pdf:         pdf,
		logger:      logger,
		now:         time.Now,
	}
}

// ParseExportFormat normalises a format query value. Empty means CSV.
func ParseExportFormat(raw string) (ExportFormat, error) {
	switch ExportFormat(strings.ToLower(strings.TrimSpace(raw))) {
	case "", ExportFormatCSV:
		return ExportFormatCSV, nil
	case ExportFormatPDF:
		return ExportFormatPDF, nil
	}
	return "", appErrors.Validation(nil, "unsupported export format", map[string]string{"format": "format must be csv or pdf"})
}

// Export computes the summary for filter and renders it.
func (s *ExportService) Export(ctx context.Context, filter models.DashboardFilter, format ExportFormat) (*ExportFile, error) {
	summary, err := s.summary.Summary(ctx, filter)
	if err != nil {
		return nil, err
	}

	stamp := s.now().Format("20060102-150405")
	switch format {
	case ExportFormatPDF:
		data, err := s.pdf.Render(s.buildReport(ctx, summary, filter))
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf")
		}
		return &ExportFile{Filename: "rekap-pelanggaran-" + stamp + ".pdf", ContentType: "application/pdf", Data: data}, nil
	case ExportFormatCSV:
		data, err := s.csv.Render(summaryDataset(summary))
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv")
		}
		return &ExportFile{Filename: "rekap-pelanggaran-" + stamp + ".csv", ContentType: "text/csv", Data: data}, nil
	default:
		return nil, appErrors.Validation(nil, "unsupported export format", map[string]string{"format": "format must be csv or pdf"})
	}
}

// summaryDataset flattens both groupings into one table tagged by Kelompok.
func summaryDataset(summary *models.DashboardSummary) export.Dataset {
	rows := make([]map[string]string, 0, len(summary.CategoryTotals)+len(summary.ClassTotals))
	for _, c := range summary.CategoryTotals {
		rows = append(rows, map[string]string{
			colGroup:      "Kategori",
			colName:       string(c.Category),
			colViolations: strconv.Itoa(c.TotalViolations),
			colPoints:     strconv.Itoa(c.TotalPoints),
		})
	}
	for _, c := range summary.ClassTotals {
		rows = append(rows, map[string]string{
			colGroup:      "Kelas",
			colName:       c.ClassName,
			colGradeBand:  string(c.GradeBand),
			colViolations: strconv.Itoa(c.TotalViolations),
			colPoints:     strconv.Itoa(c.TotalPoints),
		})
	}
	return export.Dataset{
		Headers: []string{colGroup, colName, colGradeBand, colViolations, colPoints},
		Rows:    rows,
	}
}

func (s *ExportService) buildReport(ctx context.Context, summary *models.DashboardSummary, filter models.DashboardFilter) export.Report {
	report := export.Report{Title: "Rekap Pelanggaran Siswa"}

	if s.institution != nil {
		settings, err := s.institution.Get(ctx)
		if err != nil {
			s.logger.Warn("institution settings unavailable for export", zap.Error(err))
		} else if settings != nil {
			report.Subtitle = append(report.Subtitle, settings.Name, settings.Address)
		}
	}
	report.Subtitle = append(report.Subtitle, describePeriod(filter))

	categories := export.Dataset{Headers: []string{"Kategori", colViolations, colPoints}}
	for _, c := range summary.CategoryTotals {
		categories.Rows = append(categories.Rows, map[string]string{
			"Kategori":    string(c.Category),
			colViolations: strconv.Itoa(c.TotalViolations),
			colPoints:     strconv.Itoa(c.TotalPoints),
		})
	}

	classes := export.Dataset{Headers: []string{"Kelas", colGradeBand, colViolations, colPoints}}
	for _, c := range summary.ClassTotals {
		classes.Rows = append(classes.Rows, map[string]string{
			"Kelas":       c.ClassName,
			colGradeBand:  string(c.GradeBand),
			colViolations: strconv.Itoa(c.TotalViolations),
			colPoints:     strconv.Itoa(c.TotalPoints),
		})
	}

	report.Sections = []export.Section{
		{Heading: "Per Kategori", Data: categories},
		{Heading: "Per Kelas", Data: classes},
	}
	return report
}

func describePeriod(filter models.DashboardFilter) string {
	switch {
	case filter.StartDate != nil && filter.EndDate != nil:
		return fmt.Sprintf("Periode %s s/d %s", filter.StartDate, filter.EndDate)
	case filter.StartDate != nil:
		return fmt.Sprintf("Periode sejak %s", filter.StartDate)
	case filter.EndDate != nil:
		return fmt.Sprintf("Periode sampai %s", filter.EndDate)
	default:
		return "Semua periode"
	}
}
