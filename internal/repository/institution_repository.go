package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/smp-pelanggaran-api/internal/models"
)

const institutionColumns = "id, nama_instansi, alamat, nama_kepala_sekolah, website, email, logo_sekolah, created_at, updated_at"

// InstitutionRepository stores the singleton institution settings row.
type InstitutionRepository struct {
	db *sqlx.DB
}

// NewInstitutionRepository constructs the repository.
func NewInstitutionRepository(db *sqlx.DB) *InstitutionRepository {
	return &InstitutionRepository{db: db}
}

// Find returns the settings row or sql.ErrNoRows when none exists.
func (r *InstitutionRepository) Find(ctx context.Context) (*models.InstitutionSettings, error) {
	query := fmt.Sprintf("SELECT %s FROM pengaturan_instansi ORDER BY id ASC LIMIT 1", institutionColumns)
	var settings models.InstitutionSettings
	if err := r.db.GetContext(ctx, &settings, query); err != nil {
		return nil, err
	}
	return &settings, nil
}

// GetOrCreate returns the settings row, inserting seed when it is missing.
// created reports whether seed was inserted. The singleton constraint turns a
// concurrent insert into a no-op, after which the existing row is read back.
func (r *InstitutionRepository) GetOrCreate(ctx context.Context, seed models.InstitutionSettings) (settings *models.InstitutionSettings, created bool, err error) {
	settings, err = r.Find(ctx)
	if err == nil {
		return settings, false, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, false, fmt.Errorf("find institution settings: %w", err)
	}

	query := fmt.Sprintf(`INSERT INTO pengaturan_instansi (nama_instansi, alamat, nama_kepala_sekolah, website, email, logo_sekolah)
VALUES ($1, $2, $3, $4, $5, $6) ON CONFLICT (singleton) DO NOTHING RETURNING %s`, institutionColumns)
	var inserted models.InstitutionSettings
	err = r.db.GetContext(ctx, &inserted, query, seed.Name, seed.Address, seed.PrincipalName, seed.Website, seed.Email, seed.Logo)
	if err == nil {
		return &inserted, true, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, false, wrapError("create institution settings", err)
	}
	settings, err = r.Find(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("reload institution settings: %w", err)
	}
	return settings, false, nil
}

// Update rewrites the settings row.
func (r *InstitutionRepository) Update(ctx context.Context, settings *models.InstitutionSettings) error {
	const query = `UPDATE pengaturan_instansi SET nama_instansi = $1, alamat = $2, nama_kepala_sekolah = $3, website = $4, email = $5, logo_sekolah = $6, updated_at = NOW() WHERE id = $7 RETURNING updated_at`
	if err := r.db.GetContext(ctx, &settings.UpdatedAt, query, settings.Name, settings.Address, settings.PrincipalName, settings.Website, settings.Email, settings.Logo, settings.ID); err != nil {
		return wrapError("update institution settings", err)
	}
	return nil
}
