package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/smp-pelanggaran-api/internal/models"
	appErrors "github.com/noah-isme/smp-pelanggaran-api/pkg/errors"
	"github.com/noah-isme/smp-pelanggaran-api/pkg/validation"
)

type teacherRepository interface {
	List(ctx context.Context) ([]models.Teacher, error)
	FindByID(ctx context.Context, id int64) (*models.Teacher, error)
	Create(ctx context.Context, teacher *models.Teacher) error
	Update(ctx context.Context, teacher *models.Teacher) error
	Delete(ctx context.Context, id int64) error
}

// CreateTeacherRequest is the payload for creating teachers.
type CreateTeacherRequest struct {
	Number int    `json:"nomor" validate:"required,gt=0"`
	Name   string `json:"nama_guru" validate:"required"`
	NIP    string `json:"nip" validate:"required,max=20"`
}

// UpdateTeacherRequest modifies only the supplied teacher fields.
type UpdateTeacherRequest struct {
	Number *int    `json:"nomor" validate:"omitnil,gt=0"`
	Name   *string `json:"nama_guru" validate:"omitnil,min=1"`
	NIP    *string `json:"nip" validate:"omitnil,min=1,max=20"`
}

// TeacherService contains business logic for teachers.
type TeacherService struct {
	repo      teacherRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewTeacherService constructs a TeacherService.
func NewTeacherService(repo teacherRepository, validate *validator.Validate, logger *zap.Logger) *TeacherService {
	if validate == nil {
		validate = validation.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TeacherService{repo: repo, validator: validate, logger: logger}
}

// List returns every teacher.
func (s *TeacherService) List(ctx context.Context) ([]models.Teacher, error) {
	teachers, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Storage(err, "failed to list teachers")
	}
	return teachers, nil
}

// Get returns a teacher by id.
func (s *TeacherService) Get(ctx context.Context, id int64) (*models.Teacher, error) {
	teacher, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "teacher", id)
	}
	return teacher, nil
}

// Create registers a new teacher.
func (s *TeacherService) Create(ctx context.Context, req CreateTeacherRequest) (*models.Teacher, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validation.Error(err, "invalid teacher payload")
	}

	teacher := &models.Teacher{
		Number: req.Number,
		Name:   req.Name,
		NIP:    req.NIP,
	}
	if err := s.repo.Create(ctx, teacher); err != nil {
		return nil, writeError(err, "teacher", "create")
	}
	return teacher, nil
}

// Update applies the supplied fields to an existing teacher.
func (s *TeacherService) Update(ctx context.Context, id int64, req UpdateTeacherRequest) (*models.Teacher, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validation.Error(err, "invalid teacher payload")
	}

	teacher, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "teacher", id)
	}

	if req.Number != nil {
		teacher.Number = *req.Number
	}
	if req.Name != nil {
		teacher.Name = *req.Name
	}
	if req.NIP != nil {
		teacher.NIP = *req.NIP
	}

	if err := s.repo.Update(ctx, teacher); err != nil {
		return nil, updateError(err, "teacher", id)
	}
	return teacher, nil
}

// Delete removes a teacher and the violations they recorded. Missing ids are ignored.
func (s *TeacherService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Storage(err, "failed to delete teacher")
	}
	return nil
}
