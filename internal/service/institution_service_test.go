package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/smp-pelanggaran-api/internal/models"
)

type fakeInstitutionRepo struct {
	row     *models.InstitutionSettings
	finds   int
	updates int
	findErr error
}

func (r *fakeInstitutionRepo) Find(ctx context.Context) (*models.InstitutionSettings, error) {
	r.finds++
	if r.findErr != nil {
		return nil, r.findErr
	}
	if r.row == nil {
		return nil, sql.ErrNoRows
	}
	clone := *r.row
	return &clone, nil
}

func (r *fakeInstitutionRepo) GetOrCreate(ctx context.Context, seed models.InstitutionSettings) (*models.InstitutionSettings, bool, error) {
	if r.row != nil {
		clone := *r.row
		return &clone, false, nil
	}
	seed.ID = 1
	r.row = &seed
	clone := seed
	return &clone, true, nil
}

func (r *fakeInstitutionRepo) Update(ctx context.Context, settings *models.InstitutionSettings) error {
	r.updates++
	clone := *settings
	r.row = &clone
	return nil
}

func optional(v string) models.OptionalString {
	return models.OptionalString{Set: true, Value: &v}
}

func TestInstitutionServiceGetEmpty(t *testing.T) {
	svc := NewInstitutionService(&fakeInstitutionRepo{}, nil, nil, nil)

	settings, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Nil(t, settings)
}

func TestInstitutionServiceGetStorageError(t *testing.T) {
	svc := NewInstitutionService(&fakeInstitutionRepo{findErr: errors.New("boom")}, nil, nil, nil)

	_, err := svc.Get(context.Background())
	requireAppError(t, err, "STORAGE_ERROR")
}

func TestInstitutionServiceUpdateCreatesWithDefaults(t *testing.T) {
	repo := &fakeInstitutionRepo{}
	svc := NewInstitutionService(repo, nil, nil, nil)

	settings, err := svc.Update(context.Background(), UpdateInstitutionRequest{
		Name:    strPtr("SMP Negeri 1"),
		Website: optional(""),
	})
	require.NoError(t, err)
	assert.Equal(t, "SMP Negeri 1", settings.Name)
	assert.Equal(t, models.DefaultInstitutionAddress, settings.Address)
	assert.Equal(t, models.DefaultInstitutionPrincipal, settings.PrincipalName)
	assert.Nil(t, settings.Website)
	assert.Zero(t, repo.updates)
}

func TestInstitutionServiceUpdateExistingRow(t *testing.T) {
	site := "https://smpn1.sch.id"
	repo := &fakeInstitutionRepo{row: &models.InstitutionSettings{ID: 1, Name: "Lama", Address: "Jl. Lama", PrincipalName: "Pak Budi", Website: &site}}
	svc := NewInstitutionService(repo, nil, nil, nil)

	settings, err := svc.Update(context.Background(), UpdateInstitutionRequest{
		Address: strPtr("Jl. Baru 2"),
		Email:   optional("tu@smpn1.sch.id"),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, repo.updates)
	assert.Equal(t, "Lama", settings.Name)
	assert.Equal(t, "Jl. Baru 2", settings.Address)
	require.NotNil(t, settings.Website)
	assert.Equal(t, site, *settings.Website)
	require.NotNil(t, settings.Email)
	assert.Equal(t, "tu@smpn1.sch.id", *settings.Email)

	_, err = svc.Update(context.Background(), UpdateInstitutionRequest{Website: models.OptionalString{Set: true}})
	require.NoError(t, err)
	assert.Nil(t, repo.row.Website)
}

func TestInstitutionServiceUpdateRejectsBadEmail(t *testing.T) {
	repo := &fakeInstitutionRepo{}
	svc := NewInstitutionService(repo, nil, nil, nil)

	_, err := svc.Update(context.Background(), UpdateInstitutionRequest{Email: optional("bukan-email")})
	appErr := requireAppError(t, err, "VALIDATION_ERROR")
	assert.Contains(t, appErr.Details, "email")
	assert.Nil(t, repo.row)
}

func TestInstitutionServiceCaching(t *testing.T) {
	repo := &fakeInstitutionRepo{row: &models.InstitutionSettings{ID: 1, Name: "SMP", Address: "Jl", PrincipalName: "Pak"}}
	cacheRepo := newFakeCacheRepo()
	cache := NewCacheService(cacheRepo, nil, time.Minute, nil, true)
	svc := NewInstitutionService(repo, cache, nil, nil)

	first, err := svc.Get(context.Background())
	require.NoError(t, err)
	second, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first.Name, second.Name)
	assert.Equal(t, 1, repo.finds)

	_, err = svc.Update(context.Background(), UpdateInstitutionRequest{Name: strPtr("SMP Baru")})
	require.NoError(t, err)
	assert.Contains(t, cacheRepo.deleted, institutionCacheKey)

	third, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "SMP Baru", third.Name)
	assert.Equal(t, 2, repo.finds)
}
