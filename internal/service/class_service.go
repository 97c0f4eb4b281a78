package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/smp-pelanggaran-api/internal/models"
	appErrors "github.com/noah-isme/smp-pelanggaran-api/pkg/errors"
	"github.com/noah-isme/smp-pelanggaran-api/pkg/validation"
)

type classRepository interface {
	List(ctx context.Context) ([]models.Class, error)
	FindByID(ctx context.Context, id int64) (*models.Class, error)
	Create(ctx context.Context, class *models.Class) error
	Update(ctx context.Context, class *models.Class) error
	Delete(ctx context.Context, id int64) error
}

// CreateClassRequest captures creation payload.
type CreateClassRequest struct {
	Number    int              `json:"nomor" validate:"required,gt=0"`
	GradeBand models.GradeBand `json:"rombel" validate:"required,enum"`
	Name      string           `json:"nama_kelas" validate:"required"`
}

// UpdateClassRequest modifies only the supplied class fields.
type UpdateClassRequest struct {
	Number    *int              `json:"nomor" validate:"omitnil,gt=0"`
	GradeBand *models.GradeBand `json:"rombel" validate:"omitnil,enum"`
	Name      *string           `json:"nama_kelas" validate:"omitnil,min=1"`
}

// ClassService coordinates class operations.
type ClassService struct {
	repo      classRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewClassService constructs ClassService.
func NewClassService(repo classRepository, validate *validator.Validate, logger *zap.Logger) *ClassService {
	if validate == nil {
		validate = validation.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClassService{repo: repo, validator: validate, logger: logger}
}

// List returns every class.
func (s *ClassService) List(ctx context.Context) ([]models.Class, error) {
	classes, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Storage(err, "failed to list classes")
	}
	return classes, nil
}

// Get returns a single class.
func (s *ClassService) Get(ctx context.Context, id int64) (*models.Class, error) {
	class, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "class", id)
	}
	return class, nil
}

// Create adds a new class.
func (s *ClassService) Create(ctx context.Context, req CreateClassRequest) (*models.Class, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validation.Error(err, "invalid class payload")
	}

	class := &models.Class{
		Number:    req.Number,
		GradeBand: req.GradeBand,
		Name:      req.Name,
	}
	if err := s.repo.Create(ctx, class); err != nil {
		return nil, writeError(err, "class", "create")
	}
	s.logger.Info("class created", zap.Int64("class_id", class.ID))
	return class, nil
}

// Update applies the supplied fields to an existing class.
func (s *ClassService) Update(ctx context.Context, id int64, req UpdateClassRequest) (*models.Class, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validation.Error(err, "invalid class payload")
	}

	class, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "class", id)
	}

	if req.Number != nil {
		class.Number = *req.Number
	}
	if req.GradeBand != nil {
		class.GradeBand = *req.GradeBand
	}
	if req.Name != nil {
		class.Name = *req.Name
	}

	if err := s.repo.Update(ctx, class); err != nil {
		return nil, updateError(err, "class", id)
	}
	return class, nil
}

// Delete removes a class with its students and their violations. Missing ids are ignored.
func (s *ClassService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Storage(err, "failed to delete class")
	}
	return nil
}
