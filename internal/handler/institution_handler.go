package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/smp-pelanggaran-api/internal/models"
	"github.com/noah-isme/smp-pelanggaran-api/internal/service"
	"github.com/noah-isme/smp-pelanggaran-api/pkg/response"
)

type institutionService interface {
	Get(ctx context.Context) (*models.InstitutionSettings, error)
	Update(ctx context.Context, req service.UpdateInstitutionRequest) (*models.InstitutionSettings, error)
}

// InstitutionHandler serves the school profile.
type InstitutionHandler struct {
	service institutionService
}

// NewInstitutionHandler constructs the handler.
func NewInstitutionHandler(svc institutionService) *InstitutionHandler {
	return &InstitutionHandler{service: svc}
}

// Get godoc
// @Summary Get institution settings
// @Description data is null until the settings are saved for the first time.
// @Tags Settings
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /settings/institution [get]
func (h *InstitutionHandler) Get(c *gin.Context) {
	settings, err := h.service.Get(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, settings)
}

// Update godoc
// @Summary Update institution settings
// @Description Creates the settings from defaults on first save. Only supplied fields change.
// @Tags Settings
// @Accept json
// @Produce json
// @Param payload body service.UpdateInstitutionRequest true "Fields to change"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /settings/institution [put]
func (h *InstitutionHandler) Update(c *gin.Context) {
	var req service.UpdateInstitutionRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}
	settings, err := h.service.Update(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, settings)
}
