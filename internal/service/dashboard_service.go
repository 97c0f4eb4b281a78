package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/smp-pelanggaran-api/internal/models"
	appErrors "github.com/noah-isme/smp-pelanggaran-api/pkg/errors"
	"github.com/noah-isme/smp-pelanggaran-api/pkg/validation"
)

type dashboardRepository interface {
	CategoryTotals(ctx context.Context, filter models.DashboardFilter) ([]models.CategoryTotal, error)
	ClassTotals(ctx context.Context, filter models.DashboardFilter) ([]models.ClassTotal, error)
}

// DashboardService computes the violation summary on every call.
type DashboardService struct {
	repo      dashboardRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewDashboardService constructs DashboardService.
func NewDashboardService(repo dashboardRepository, validate *validator.Validate, logger *zap.Logger) *DashboardService {
	if validate == nil {
		validate = validation.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{repo: repo, validator: validate, logger: logger}
}

// Summary returns totals per category and per class for the filtered violations.
// Groups without matching violations are omitted. Any query failure discards
// the whole result.
func (s *DashboardService) Summary(ctx context.Context, filter models.DashboardFilter) (*models.DashboardSummary, error) {
	if err := s.validator.Struct(filter); err != nil {
		return nil, validation.Error(err, "invalid dashboard filter")
	}

	categories, err := s.repo.CategoryTotals(ctx, filter)
	if err != nil {
		s.logger.Error("dashboard category totals failed", zap.Error(err))
		return nil, appErrors.Storage(err, "failed to compute dashboard summary")
	}

	classes, err := s.repo.ClassTotals(ctx, filter)
	if err != nil {
		s.logger.Error("dashboard class totals failed", zap.Error(err))
		return nil, appErrors.Storage(err, "failed to compute dashboard summary")
	}

	if categories == nil {
		categories = []models.CategoryTotal{}
	}
	if classes == nil {
		classes = []models.ClassTotal{}
	}
	return &models.DashboardSummary{CategoryTotals: categories, ClassTotals: classes}, nil
}
