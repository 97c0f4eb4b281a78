package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/smp-pelanggaran-api/internal/models"
	appErrors "github.com/noah-isme/smp-pelanggaran-api/pkg/errors"
	"github.com/noah-isme/smp-pelanggaran-api/pkg/validation"
)

// institutionCacheKey holds the cached settings row.
const institutionCacheKey = "settings:institution"

type institutionRepository interface {
	Find(ctx context.Context) (*models.InstitutionSettings, error)
	GetOrCreate(ctx context.Context, seed models.InstitutionSettings) (*models.InstitutionSettings, bool, error)
	Update(ctx context.Context, settings *models.InstitutionSettings) error
}

// UpdateInstitutionRequest modifies only the supplied settings fields.
// Empty website, email or logo values clear the column.
type UpdateInstitutionRequest struct {
	Name          *string               `json:"nama_instansi"`
	Address       *string               `json:"alamat"`
	PrincipalName *string               `json:"nama_kepala_sekolah"`
	Website       models.OptionalString `json:"website"`
	Email         models.OptionalString `json:"email"`
	Logo          models.OptionalString `json:"logo_sekolah"`
}

// InstitutionService reads and writes the singleton settings row.
type InstitutionService struct {
	repo      institutionRepository
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewInstitutionService constructs the service. cache may be nil.
func NewInstitutionService(repo institutionRepository, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *InstitutionService {
	if validate == nil {
		validate = validation.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InstitutionService{repo: repo, cache: cache, validator: validate, logger: logger}
}

// Get returns the settings or nil when none have been saved yet.
func (s *InstitutionService) Get(ctx context.Context) (*models.InstitutionSettings, error) {
	var cached models.InstitutionSettings
	if s.cache.Get(ctx, institutionCacheKey, &cached) {
		return &cached, nil
	}

	settings, err := s.repo.Find(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, appErrors.Storage(err, "failed to load institution settings")
	}
	s.cache.Set(ctx, institutionCacheKey, settings, 0)
	return settings, nil
}

// Update creates the settings row from defaults plus req when absent, otherwise
// applies req to the existing row.
func (s *InstitutionService) Update(ctx context.Context, req UpdateInstitutionRequest) (*models.InstitutionSettings, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	seed := models.DefaultInstitutionSettings()
	applyInstitutionSeed(&seed, req)

	settings, created, err := s.repo.GetOrCreate(ctx, seed)
	if err != nil {
		return nil, appErrors.Storage(err, "failed to load institution settings")
	}
	if !created {
		applyInstitutionUpdate(settings, req)
		if err := s.repo.Update(ctx, settings); err != nil {
			return nil, appErrors.Storage(err, "failed to update institution settings")
		}
	}

	s.cache.Invalidate(ctx, institutionCacheKey)
	s.logger.Info("institution settings saved", zap.Bool("created", created))
	return settings, nil
}

func (s *InstitutionService) validate(req UpdateInstitutionRequest) error {
	if req.Email.Value == nil || *req.Email.Value == "" {
		return nil
	}
	if err := s.validator.Var(*req.Email.Value, "email"); err != nil {
		return appErrors.Validation(err, "invalid institution settings payload", map[string]string{"email": "email must be a valid email address"})
	}
	return nil
}

// applyInstitutionSeed fills a new row. Blank values keep the defaults.
func applyInstitutionSeed(seed *models.InstitutionSettings, req UpdateInstitutionRequest) {
	if v := trimmed(req.Name); v != "" {
		seed.Name = v
	}
	if v := trimmed(req.Address); v != "" {
		seed.Address = v
	}
	if v := trimmed(req.PrincipalName); v != "" {
		seed.PrincipalName = v
	}
	seed.Website = nullIfEmpty(req.Website.Value)
	seed.Email = nullIfEmpty(req.Email.Value)
	seed.Logo = nullIfEmpty(req.Logo.Value)
}

func applyInstitutionUpdate(settings *models.InstitutionSettings, req UpdateInstitutionRequest) {
	if req.Name != nil {
		settings.Name = *req.Name
	}
	if req.Address != nil {
		settings.Address = *req.Address
	}
	if req.PrincipalName != nil {
		settings.PrincipalName = *req.PrincipalName
	}
	if req.Website.Set {
		settings.Website = nullIfEmpty(req.Website.Value)
	}
	if req.Email.Set {
		settings.Email = nullIfEmpty(req.Email.Value)
	}
	if req.Logo.Set {
		settings.Logo = nullIfEmpty(req.Logo.Value)
	}
}

func trimmed(v *string) string {
	if v == nil {
		return ""
	}
	return strings.TrimSpace(*v)
}

func nullIfEmpty(v *string) *string {
	if v == nil || strings.TrimSpace(*v) == "" {
		return nil
	}
	out := *v
	return &out
}
