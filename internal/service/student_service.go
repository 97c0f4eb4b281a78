package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/smp-pelanggaran-api/internal/models"
	appErrors "github.com/noah-isme/smp-pelanggaran-api/pkg/errors"
	"github.com/noah-isme/smp-pelanggaran-api/pkg/validation"
)

type studentRepository interface {
	List(ctx context.Context, filter models.StudentFilter) ([]models.Student, error)
	Search(ctx context.Context, term string) ([]models.Student, error)
	FindByID(ctx context.Context, id int64) (*models.Student, error)
	Create(ctx context.Context, student *models.Student) error
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id int64) error
}

// existenceChecker is satisfied by every repository that guards a foreign key.
type existenceChecker interface {
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

// CreateStudentRequest is the payload for creating a student.
type CreateStudentRequest struct {
	Number  int    `json:"nomor" validate:"required,gt=0"`
	Name    string `json:"nama_siswa" validate:"required"`
	NISN    string `json:"nisn" validate:"required,max=20"`
	ClassID int64  `json:"kelas_id" validate:"required,gt=0"`
}

// UpdateStudentRequest modifies only the supplied student fields.
type UpdateStudentRequest struct {
	Number  *int    `json:"nomor" validate:"omitnil,gt=0"`
	Name    *string `json:"nama_siswa" validate:"omitnil,min=1"`
	NISN    *string `json:"nisn" validate:"omitnil,min=1,max=20"`
	ClassID *int64  `json:"kelas_id" validate:"omitnil,gt=0"`
}

// StudentService handles student business logic.
type StudentService struct {
	repo      studentRepository
	classes   existenceChecker
	validator *validator.Validate
	logger    *zap.Logger
}

// NewStudentService constructs a StudentService.
func NewStudentService(repo studentRepository, classes existenceChecker, validate *validator.Validate, logger *zap.Logger) *StudentService {
	if validate == nil {
		validate = validation.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{repo: repo, classes: classes, validator: validate, logger: logger}
}

// List returns students, optionally restricted to one class.
func (s *StudentService) List(ctx context.Context, filter models.StudentFilter) ([]models.Student, error) {
	students, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, appErrors.Storage(err, "failed to list students")
	}
	return students, nil
}

// Search returns students whose name or NISN contains query, ignoring case.
// A blank query matches nobody.
func (s *StudentService) Search(ctx context.Context, query string) ([]models.Student, error) {
	term := strings.TrimSpace(query)
	if term == "" {
		return []models.Student{}, nil
	}
	students, err := s.repo.Search(ctx, term)
	if err != nil {
		return nil, appErrors.Storage(err, "failed to search students")
	}
	return students, nil
}

// Get returns a student by id.
func (s *StudentService) Get(ctx context.Context, id int64) (*models.Student, error) {
	student, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "student", id)
	}
	return student, nil
}

// Create adds a student to an existing class.
func (s *StudentService) Create(ctx context.Context, req CreateStudentRequest) (*models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validation.Error(err, "invalid student payload")
	}
	if err := s.ensureClass(ctx, req.ClassID); err != nil {
		return nil, err
	}

	student := &models.Student{
		Number:  req.Number,
		Name:    req.Name,
		NISN:    req.NISN,
		ClassID: req.ClassID,
	}
	if err := s.repo.Create(ctx, student); err != nil {
		return nil, writeError(err, "student", "create")
	}
	return student, nil
}

// Update applies the supplied fields to an existing student.
func (s *StudentService) Update(ctx context.Context, id int64, req UpdateStudentRequest) (*models.Student, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validation.Error(err, "invalid student payload")
	}

	student, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "student", id)
	}

	if req.ClassID != nil {
		if err := s.ensureClass(ctx, *req.ClassID); err != nil {
			return nil, err
		}
		student.ClassID = *req.ClassID
	}
	if req.Number != nil {
		student.Number = *req.Number
	}
	if req.Name != nil {
		student.Name = *req.Name
	}
	if req.NISN != nil {
		student.NISN = *req.NISN
	}

	if err := s.repo.Update(ctx, student); err != nil {
		return nil, updateError(err, "student", id)
	}
	return student, nil
}

// Delete removes a student and their violations. Missing ids are ignored.
func (s *StudentService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Storage(err, "failed to delete student")
	}
	return nil
}

func (s *StudentService) ensureClass(ctx context.Context, classID int64) error {
	exists, err := s.classes.ExistsByID(ctx, classID)
	if err != nil {
		return appErrors.Storage(err, "failed to check class")
	}
	if !exists {
		return appErrors.NotFound("class", classID)
	}
	return nil
}
