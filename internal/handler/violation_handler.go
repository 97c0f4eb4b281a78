package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/smp-pelanggaran-api/internal/models"
	"github.com/noah-isme/smp-pelanggaran-api/internal/service"
	"github.com/noah-isme/smp-pelanggaran-api/pkg/response"
)

type violationService interface {
	List(ctx context.Context) ([]models.ViolationRecord, error)
	Get(ctx context.Context, id int64) (*models.ViolationRecord, error)
	Create(ctx context.Context, req service.CreateViolationRecordRequest) (*models.ViolationRecord, error)
	Update(ctx context.Context, id int64, req service.UpdateViolationRecordRequest) (*models.ViolationRecord, error)
	Delete(ctx context.Context, id int64) error
}

// ViolationHandler records student violations.
type ViolationHandler struct {
	service violationService
}

// NewViolationHandler constructs a violation handler.
func NewViolationHandler(svc violationService) *ViolationHandler {
	return &ViolationHandler{service: svc}
}

// List godoc
// @Summary List violations, newest first
// @Tags Violations
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /violations [get]
func (h *ViolationHandler) List(c *gin.Context) {
	records, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, records)
}

// Get godoc
// @Summary Get violation
// @Tags Violations
// @Produce json
// @Param id path int true "Violation ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /violations/{id} [get]
func (h *ViolationHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	record, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, record)
}

// Create godoc
// @Summary Record violation
// @Tags Violations
// @Accept json
// @Produce json
// @Param payload body service.CreateViolationRecordRequest true "Violation payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /violations [post]
func (h *ViolationHandler) Create(c *gin.Context) {
	var req service.CreateViolationRecordRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	record, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, record)
}

// Update godoc
// @Summary Update violation
// @Tags Violations
// @Accept json
// @Produce json
// @Param id path int true "Violation ID"
// @Param payload body service.UpdateViolationRecordRequest true "Fields to change"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /violations/{id} [put]
func (h *ViolationHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req service.UpdateViolationRecordRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	record, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, record)
}

// Delete godoc
// @Summary Delete violation
// @Tags Violations
// @Param id path int true "Violation ID"
// @Success 204
// @Router /violations/{id} [delete]
func (h *ViolationHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
