package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/smp-pelanggaran-api/internal/models"
)

const violationTypeColumns = "id, kategori, jenis_pelanggaran, poin, created_at, updated_at"

// ViolationTypeRepository manages the violation catalogue (data_pelanggaran).
type ViolationTypeRepository struct {
	db *sqlx.DB
}

// NewViolationTypeRepository constructs the repository.
func NewViolationTypeRepository(db *sqlx.DB) *ViolationTypeRepository {
	return &ViolationTypeRepository{db: db}
}

// List returns the whole catalogue ordered by id.
func (r *ViolationTypeRepository) List(ctx context.Context) ([]models.ViolationType, error) {
	query := fmt.Sprintf("SELECT %s FROM data_pelanggaran ORDER BY id ASC", violationTypeColumns)
	items := make([]models.ViolationType, 0)
	if err := r.db.SelectContext(ctx, &items, query); err != nil {
		return nil, fmt.Errorf("list violation types: %w", err)
	}
	return items, nil
}

// FindByID fetches a catalogue entry.
func (r *ViolationTypeRepository) FindByID(ctx context.Context, id int64) (*models.ViolationType, error) {
	query := fmt.Sprintf("SELECT %s FROM data_pelanggaran WHERE id = $1", violationTypeColumns)
	var item models.ViolationType
	if err := r.db.GetContext(ctx, &item, query, id); err != nil {
		return nil, err
	}
	return &item, nil
}

// ExistsByID reports whether the catalogue entry exists.
func (r *ViolationTypeRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return existsByID(ctx, r.db, "data_pelanggaran", id)
}

// Create inserts a catalogue entry.
func (r *ViolationTypeRepository) Create(ctx context.Context, item *models.ViolationType) error {
	const query = `INSERT INTO data_pelanggaran (kategori, jenis_pelanggaran, poin) VALUES ($1, $2, $3) RETURNING id, created_at, updated_at`
	row := r.db.QueryRowxContext(ctx, query, item.Category, item.Description, item.Points)
	if err := row.Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt); err != nil {
		return wrapError("create violation type", err)
	}
	return nil
}

// Update rewrites a catalogue entry.
func (r *ViolationTypeRepository) Update(ctx context.Context, item *models.ViolationType) error {
	const query = `UPDATE data_pelanggaran SET kategori = $1, jenis_pelanggaran = $2, poin = $3, updated_at = NOW() WHERE id = $4 RETURNING updated_at`
	if err := r.db.GetContext(ctx, &item.UpdatedAt, query, item.Category, item.Description, item.Points, item.ID); err != nil {
		return wrapError("update violation type", err)
	}
	return nil
}

// Delete removes a catalogue entry and the violations referencing it.
func (r *ViolationTypeRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM data_pelanggaran WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete violation type: %w", err)
	}
	return nil
}
