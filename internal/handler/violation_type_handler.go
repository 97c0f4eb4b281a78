package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/smp-pelanggaran-api/internal/models"
	"github.com/noah-isme/smp-pelanggaran-api/internal/service"
	"github.com/noah-isme/smp-pelanggaran-api/pkg/response"
)

type violationTypeService interface {
	List(ctx context.Context) ([]models.ViolationType, error)
	Get(ctx context.Context, id int64) (*models.ViolationType, error)
	Create(ctx context.Context, req service.CreateViolationTypeRequest) (*models.ViolationType, error)
	Update(ctx context.Context, id int64, req service.UpdateViolationTypeRequest) (*models.ViolationType, error)
	Delete(ctx context.Context, id int64) error
}

// ViolationTypeHandler exposes the violation catalogue.
type ViolationTypeHandler struct {
	service violationTypeService
}

// NewViolationTypeHandler constructs a violation type handler.
func NewViolationTypeHandler(svc violationTypeService) *ViolationTypeHandler {
	return &ViolationTypeHandler{service: svc}
}

// List godoc
// @Summary List violation types
// @Tags ViolationTypes
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /violation-types [get]
func (h *ViolationTypeHandler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items)
}

// Get godoc
// @Summary Get violation type
// @Tags ViolationTypes
// @Produce json
// @Param id path int true "Violation type ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /violation-types/{id} [get]
func (h *ViolationTypeHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	item, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, item)
}

// Create godoc
// @Summary Create violation type
// @Tags ViolationTypes
// @Accept json
// @Produce json
// @Param payload body service.CreateViolationTypeRequest true "Violation type payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /violation-types [post]
func (h *ViolationTypeHandler) Create(c *gin.Context) {
	var req service.CreateViolationTypeRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	item, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, item)
}

// Update godoc
// @Summary Update violation type
// @Tags ViolationTypes
// @Accept json
// @Produce json
// @Param id path int true "Violation type ID"
// @Param payload body service.UpdateViolationTypeRequest true "Fields to change"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /violation-types/{id} [put]
func (h *ViolationTypeHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req service.UpdateViolationTypeRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	item, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, item)
}

// Delete godoc
// @Summary Delete violation type and every violation recorded with it
// @Tags ViolationTypes
// @Param id path int true "Violation type ID"
// @Success 204
// @Router /violation-types/{id} [delete]
func (h *ViolationTypeHandler) Delete(c *gin.Context) {
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
