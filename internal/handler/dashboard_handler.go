package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/smp-pelanggaran-api/internal/models"
	"github.com/noah-isme/smp-pelanggaran-api/internal/service"
	"github.com/noah-isme/smp-pelanggaran-api/pkg/response"
)

type dashboardService interface {
	Summary(ctx context.Context, filter models.DashboardFilter) (*models.DashboardSummary, error)
}

type exportService interface {
	Export(ctx context.Context, filter models.DashboardFilter, format service.ExportFormat) (*service.ExportFile, error)
}

// DashboardHandler serves the violation summary.
type DashboardHandler struct {
	dashboard dashboardService
	exporter  exportService
}

// NewDashboardHandler constructs the handler.
func NewDashboardHandler(dashboard dashboardService, exporter exportService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, exporter: exporter}
}

// Summary godoc
// @Summary Violation totals per category and per class
// @Tags Dashboard
// @Produce json
// @Param tanggal_awal query string false "Start date (YYYY-MM-DD), inclusive"
// @Param tanggal_akhir query string false "End date (YYYY-MM-DD), inclusive"
// @Param kelas_id query int false "Class ID"
// @Param guru_id query int false "Reporting teacher ID"
// @Param kategori query string false "Violation category"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /dashboard/summary [get]
func (h *DashboardHandler) Summary(c *gin.Context) {
	filter, err := dashboardFilterFromQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	summary, err := h.dashboard.Summary(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, summary)
}

// Export godoc
// @Summary Download the violation summary
// @Tags Dashboard
// @Produce text/csv
// @Produce application/pdf
// @Param format query string false "csv (default) or pdf"
// @Param tanggal_awal query string false "Start date (YYYY-MM-DD), inclusive"
// @Param tanggal_akhir query string false "End date (YYYY-MM-DD), inclusive"
// @Param kelas_id query int false "Class ID"
// @Param guru_id query int false "Reporting teacher ID"
// @Param kategori query string false "Violation category"
// @Success 200 {file} file
// @Failure 400 {object} response.Envelope
// @Router /dashboard/export [get]
func (h *DashboardHandler) Export(c *gin.Context) {
	format, err := service.ParseExportFormat(c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}
	filter, err := dashboardFilterFromQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	file, err := h.exporter.Export(c.Request.Context(), filter, format)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.File(c, file.Filename, file.ContentType, file.Data)
}
