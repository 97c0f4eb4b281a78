package service

import (
	"context"
	"encoding/csv"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/smp-pelanggaran-api/internal/models"
	"github.com/noah-isme/smp-pelanggaran-api/pkg/export"
)

type fakeSummaryProvider struct {
	summary *models.DashboardSummary
	err     error
}

func (f fakeSummaryProvider) Summary(ctx context.Context, filter models.DashboardFilter) (*models.DashboardSummary, error) {
	return f.summary, f.err
}

type fakeInstitutionProvider struct {
	settings *models.InstitutionSettings
	err      error
}

func (f fakeInstitutionProvider) Get(ctx context.Context) (*models.InstitutionSettings, error) {
	return f.settings, f.err
}

type capturingPDF struct {
	report export.Report
}

func (c *capturingPDF) Render(report export.Report) ([]byte, error) {
	c.report = report
	return []byte("%PDF"), nil
}

func sampleSummary() *models.DashboardSummary {
	return &models.DashboardSummary{
		CategoryTotals: []models.CategoryTotal{
			{Category: models.CategoryConduct, TotalViolations: 3, TotalPoints: 45},
		},
		ClassTotals: []models.ClassTotal{
			{ClassID: 1, ClassName: "VII A", GradeBand: models.GradeBand7, TotalViolations: 3, TotalPoints: 45},
		},
	}
}

func TestExportServiceCSV(t *testing.T) {
	svc := NewExportService(fakeSummaryProvider{summary: sampleSummary()}, nil, nil, nil, nil)
	svc.now = func() time.Time { return time.Date(2024, 5, 2, 9, 30, 0, 0, time.UTC) }

	file, err := svc.Export(context.Background(), models.DashboardFilter{}, ExportFormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "rekap-pelanggaran-20240502-093000.csv", file.Filename)
	assert.Equal(t, "text/csv", file.ContentType)

	require.True(t, strings.HasPrefix(string(file.Data), "\ufeff"))
	records, err := csv.NewReader(strings.NewReader(strings.TrimPrefix(string(file.Data), "\ufeff"))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"Kelompok", "Nama", "Rombel", "Total Pelanggaran", "Total Poin"}, records[0])
	assert.Equal(t, []string{"Kategori", "Kelakuan", "", "3", "45"}, records[1])
	assert.Equal(t, []string{"Kelas", "VII A", "7", "3", "45"}, records[2])
}

func TestExportServicePDFReport(t *testing.T) {
	pdf := &capturingPDF{}
	institution := fakeInstitutionProvider{settings: &models.InstitutionSettings{Name: "SMP Negeri 1", Address: "Jl. Merdeka"}}
	svc := NewExportService(fakeSummaryProvider{summary: sampleSummary()}, institution, nil, nil, pdf)

	filter := models.DashboardFilter{StartDate: date(t, "2024-01-01"), EndDate: date(t, "2024-06-30")}
	file, err := svc.Export(context.Background(), filter, ExportFormatPDF)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", file.ContentType)
	assert.True(t, strings.HasSuffix(file.Filename, ".pdf"))

	assert.Equal(t, "Rekap Pelanggaran Siswa", pdf.report.Title)
	assert.Equal(t, []string{"SMP Negeri 1", "Jl. Merdeka", "Periode 2024-01-01 s/d 2024-06-30"}, pdf.report.Subtitle)
	require.Len(t, pdf.report.Sections, 2)
	assert.Equal(t, "Per Kategori", pdf.report.Sections[0].Heading)
	assert.Equal(t, "45", pdf.report.Sections[0].Data.Rows[0]["Total Poin"])
	assert.Equal(t, "VII A", pdf.report.Sections[1].Data.Rows[0]["Kelas"])
}

func TestExportServicePDFWithoutInstitution(t *testing.T) {
	pdf := &capturingPDF{}
	institution := fakeInstitutionProvider{err: errors.New("db down")}
	svc := NewExportService(fakeSummaryProvider{summary: sampleSummary()}, institution, nil, nil, pdf)

	_, err := svc.Export(context.Background(), models.DashboardFilter{}, ExportFormatPDF)
	require.NoError(t, err)
	assert.Equal(t, []string{"Semua periode"}, pdf.report.Subtitle)
}

func TestExportServicePropagatesSummaryError(t *testing.T) {
	svc := NewExportService(fakeSummaryProvider{err: errors.New("boom")}, nil, nil, nil, nil)

	_, err := svc.Export(context.Background(), models.DashboardFilter{}, ExportFormatCSV)
	assert.EqualError(t, err, "boom")
}

func TestParseExportFormat(t *testing.T) {
	format, err := ParseExportFormat("")
	require.NoError(t, err)
	assert.Equal(t, ExportFormatCSV, format)

	format, err = ParseExportFormat(" PDF ")
	require.NoError(t, err)
	assert.Equal(t, ExportFormatPDF, format)

	_, err = ParseExportFormat("xlsx")
	requireAppError(t, err, "VALIDATION_ERROR")
}
