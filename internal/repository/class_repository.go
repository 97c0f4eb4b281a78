package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/smp-pelanggaran-api/internal/models"
)

const classColumns = "id, nomor, rombel, nama_kelas, created_at, updated_at"

// ClassRepository manages persistence for classes.
type ClassRepository struct {
	db *sqlx.DB
}

// NewClassRepository constructs a new class repository.
func NewClassRepository(db *sqlx.DB) *ClassRepository {
	return &ClassRepository{db: db}
}

// List returns every class ordered by id.
func (r *ClassRepository) List(ctx context.Context) ([]models.Class, error) {
	query := fmt.Sprintf("SELECT %s FROM kelas ORDER BY id ASC", classColumns)
	classes := make([]models.Class, 0)
	if err := r.db.SelectContext(ctx, &classes, query); err != nil {
		return nil, fmt.Errorf("list classes: %w", err)
	}
	return classes, nil
}

// FindByID returns a class record by ID.
func (r *ClassRepository) FindByID(ctx context.Context, id int64) (*models.Class, error) {
	query := fmt.Sprintf("SELECT %s FROM kelas WHERE id = $1", classColumns)
	var class models.Class
	if err := r.db.GetContext(ctx, &class, query, id); err != nil {
		return nil, err
	}
	return &class, nil
}

// ExistsByID reports whether the class exists.
func (r *ClassRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return existsByID(ctx, r.db, "kelas", id)
}

// Create persists a class record and fills generated columns.
func (r *ClassRepository) Create(ctx context.Context, class *models.Class) error {
	const query = `INSERT INTO kelas (nomor, rombel, nama_kelas) VALUES ($1, $2, $3) RETURNING id, created_at, updated_at`
	row := r.db.QueryRowxContext(ctx, query, class.Number, class.GradeBand, class.Name)
	if err := row.Scan(&class.ID, &class.CreatedAt, &class.UpdatedAt); err != nil {
		return wrapError("create class", err)
	}
	return nil
}

// Update writes every mutable column and refreshes updated_at.
func (r *ClassRepository) Update(ctx context.Context, class *models.Class) error {
	const query = `UPDATE kelas SET nomor = $1, rombel = $2, nama_kelas = $3, updated_at = NOW() WHERE id = $4 RETURNING updated_at`
	if err := r.db.GetContext(ctx, &class.UpdatedAt, query, class.Number, class.GradeBand, class.Name, class.ID); err != nil {
		return wrapError("update class", err)
	}
	return nil
}

// Delete removes a class record. Students and their violations cascade.
func (r *ClassRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM kelas WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete class: %w", err)
	}
	return nil
}
