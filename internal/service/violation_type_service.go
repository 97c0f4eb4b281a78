package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/smp-pelanggaran-api/internal/models"
	appErrors "github.com/noah-isme/smp-pelanggaran-api/pkg/errors"
	"github.com/noah-isme/smp-pelanggaran-api/pkg/validation"
)

type violationTypeRepository interface {
	List(ctx context.Context) ([]models.ViolationType, error)
	FindByID(ctx context.Context, id int64) (*models.ViolationType, error)
	Create(ctx context.Context, item *models.ViolationType) error
	Update(ctx context.Context, item *models.ViolationType) error
	Delete(ctx context.Context, id int64) error
}

// CreateViolationTypeRequest adds a catalogue entry.
type CreateViolationTypeRequest struct {
	Category    models.Category `json:"kategori" validate:"required,enum"`
	Description string          `json:"jenis_pelanggaran" validate:"required"`
	Points      int             `json:"poin" validate:"required,gt=0"`
}

// UpdateViolationTypeRequest modifies only the supplied catalogue fields.
type UpdateViolationTypeRequest struct {
	Category    *models.Category `json:"kategori" validate:"omitnil,enum"`
	Description *string          `json:"jenis_pelanggaran" validate:"omitnil,min=1"`
	Points      *int             `json:"poin" validate:"omitnil,gt=0"`
}

// ViolationTypeService manages the violation catalogue.
type ViolationTypeService struct {
	repo      violationTypeRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewViolationTypeService constructs the service.
func NewViolationTypeService(repo violationTypeRepository, validate *validator.Validate, logger *zap.Logger) *ViolationTypeService {
	if validate == nil {
		validate = validation.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ViolationTypeService{repo: repo, validator: validate, logger: logger}
}

// List returns the catalogue.
func (s *ViolationTypeService) List(ctx context.Context) ([]models.ViolationType, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Storage(err, "failed to list violation types")
	}
	return items, nil
}

// Get returns one catalogue entry.
func (s *ViolationTypeService) Get(ctx context.Context, id int64) (*models.ViolationType, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "violation type", id)
	}
	return item, nil
}

// Create adds a catalogue entry.
func (s *ViolationTypeService) Create(ctx context.Context, req CreateViolationTypeRequest) (*models.ViolationType, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validation.Error(err, "invalid violation type payload")
	}

	item := &models.ViolationType{
		Category:    req.Category,
		Description: req.Description,
		Points:      req.Points,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, writeError(err, "violation type", "create")
	}
	return item, nil
}

// Update applies the supplied fields to a catalogue entry.
func (s *ViolationTypeService) Update(ctx context.Context, id int64, req UpdateViolationTypeRequest) (*models.ViolationType, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validation.Error(err, "invalid violation type payload")
	}

	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "violation type", id)
	}

	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Points != nil {
		item.Points = *req.Points
	}

	if err := s.repo.Update(ctx, item); err != nil {
		return nil, updateError(err, "violation type", id)
	}
	return item, nil
}

// Delete removes a catalogue entry and every violation recorded against it.
func (s *ViolationTypeService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Storage(err, "failed to delete violation type")
	}
	return nil
}
