package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/smp-pelanggaran-api/internal/models"
	appErrors "github.com/noah-isme/smp-pelanggaran-api/pkg/errors"
	"github.com/noah-isme/smp-pelanggaran-api/pkg/validation"
)

type violationRecordRepository interface {
	List(ctx context.Context) ([]models.ViolationRecord, error)
	FindByID(ctx context.Context, id int64) (*models.ViolationRecord, error)
	Create(ctx context.Context, record *models.ViolationRecord) error
	Update(ctx context.Context, record *models.ViolationRecord) error
	Delete(ctx context.Context, id int64) error
}

// CreateViolationRecordRequest records a new violation.
type CreateViolationRecordRequest struct {
	Date            *models.Date `json:"tanggal" validate:"required"`
	StudentID       int64        `json:"siswa_id" validate:"required,gt=0"`
	ViolationTypeID int64        `json:"data_pelanggaran_id" validate:"required,gt=0"`
	TeacherID       int64        `json:"guru_id" validate:"required,gt=0"`
	EvidenceFile    *string      `json:"bukti_file"`
}

// UpdateViolationRecordRequest modifies only the supplied violation fields.
type UpdateViolationRecordRequest struct {
	Date            *models.Date          `json:"tanggal"`
	StudentID       *int64                `json:"siswa_id" validate:"omitnil,gt=0"`
	ViolationTypeID *int64                `json:"data_pelanggaran_id" validate:"omitnil,gt=0"`
	TeacherID       *int64                `json:"guru_id" validate:"omitnil,gt=0"`
	EvidenceFile    models.OptionalString `json:"bukti_file"`
}

// ViolationRecordService records student violations.
type ViolationRecordService struct {
	repo      violationRecordRepository
	students  existenceChecker
	types     existenceChecker
	teachers  existenceChecker
	validator *validator.Validate
	logger    *zap.Logger
}

// NewViolationRecordService constructs the service with one existence checker per foreign key.
func NewViolationRecordService(repo violationRecordRepository, students, types, teachers existenceChecker, validate *validator.Validate, logger *zap.Logger) *ViolationRecordService {
	if validate == nil {
		validate = validation.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ViolationRecordService{
		repo:      repo,
		students:  students,
		types:     types,
		teachers:  teachers,
		validator: validate,
		logger:    logger,
	}
}

// List returns violations newest first.
func (s *ViolationRecordService) List(ctx context.Context) ([]models.ViolationRecord, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, appErrors.Storage(err, "failed to list violations")
	}
	return records, nil
}

// Get returns one violation.
func (s *ViolationRecordService) Get(ctx context.Context, id int64) (*models.ViolationRecord, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "violation", id)
	}
	return record, nil
}

// Create validates every reference individually, then records the violation.
func (s *ViolationRecordService) Create(ctx context.Context, req CreateViolationRecordRequest) (*models.ViolationRecord, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validation.Error(err, "invalid violation payload")
	}
	if err := s.ensureExists(ctx, s.students, "student", req.StudentID); err != nil {
		return nil, err
	}
	if err := s.ensureExists(ctx, s.types, "violation type", req.ViolationTypeID); err != nil {
		return nil, err
	}
	if err := s.ensureExists(ctx, s.teachers, "teacher", req.TeacherID); err != nil {
		return nil, err
	}

	record := &models.ViolationRecord{
		Date:            *req.Date,
		StudentID:       req.StudentID,
		ViolationTypeID: req.ViolationTypeID,
		TeacherID:       req.TeacherID,
		EvidenceFile:    req.EvidenceFile,
	}
	if err := s.repo.Create(ctx, record); err != nil {
		return nil, writeError(err, "violation", "create")
	}
	s.logger.Info("violation recorded",
		zap.Int64("violation_id", record.ID),
		zap.Int64("student_id", record.StudentID),
		zap.Int64("teacher_id", record.TeacherID),
	)
	return record, nil
}

// Update applies the supplied fields, re-checking only the references that change.
func (s *ViolationRecordService) Update(ctx context.Context, id int64, req UpdateViolationRecordRequest) (*models.ViolationRecord, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validation.Error(err, "invalid violation payload")
	}

	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "violation", id)
	}

	if req.StudentID != nil {
		if err := s.ensureExists(ctx, s.students, "student", *req.StudentID); err != nil {
			return nil, err
		}
		record.StudentID = *req.StudentID
	}
	if req.ViolationTypeID != nil {
		if err := s.ensureExists(ctx, s.types, "violation type", *req.ViolationTypeID); err != nil {
			return nil, err
		}
		record.ViolationTypeID = *req.ViolationTypeID
	}
	if req.TeacherID != nil {
		if err := s.ensureExists(ctx, s.teachers, "teacher", *req.TeacherID); err != nil {
			return nil, err
		}
		record.TeacherID = *req.TeacherID
	}
	if req.Date != nil && !req.Date.IsZero() {
		record.Date = *req.Date
	}
	req.EvidenceFile.Apply(&record.EvidenceFile)

	if err := s.repo.Update(ctx, record); err != nil {
		return nil, updateError(err, "violation", id)
	}
	return record, nil
}

// Delete removes a violation. Missing ids are ignored.
func (s *ViolationRecordService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Storage(err, "failed to delete violation")
	}
	return nil
}

func (s *ViolationRecordService) ensureExists(ctx context.Context, checker existenceChecker, kind string, id int64) error {
	exists, err := checker.ExistsByID(ctx, id)
	if err != nil {
		return appErrors.Storage(err, "failed to check "+kind)
	}
	if !exists {
		return appErrors.NotFound(kind, id)
	}
	return nil
}
