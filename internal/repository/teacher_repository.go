package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/smp-pelanggaran-api/internal/models"
)

const teacherColumns = "id, nomor, nama_guru, nip, created_at, updated_at"

// TeacherRepository handles persistence for teachers.
type TeacherRepository struct {
	db *sqlx.DB
}

// NewTeacherRepository creates a new TeacherRepository.
func NewTeacherRepository(db *sqlx.DB) *TeacherRepository {
	return &TeacherRepository{db: db}
}

// List returns every teacher ordered by id.
func (r *TeacherRepository) List(ctx context.Context) ([]models.Teacher, error) {
	query := fmt.Sprintf("SELECT %s FROM guru ORDER BY id ASC", teacherColumns)
	teachers := make([]models.Teacher, 0)
	if err := r.db.SelectContext(ctx, &teachers, query); err != nil {
		return nil, fmt.Errorf("list teachers: %w", err)
	}
	return teachers, nil
}

// FindByID fetches a teacher by ID.
func (r *TeacherRepository) FindByID(ctx context.Context, id int64) (*models.Teacher, error) {
	query := fmt.Sprintf("SELECT %s FROM guru WHERE id = $1", teacherColumns)
	var teacher models.Teacher
	if err := r.db.GetContext(ctx, &teacher, query, id); err != nil {
		return nil, err
	}
	return &teacher, nil
}

// ExistsByID reports whether the teacher exists.
func (r *TeacherRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return existsByID(ctx, r.db, "guru", id)
}

// Create inserts a new teacher.
func (r *TeacherRepository) Create(ctx context.Context, teacher *models.Teacher) error {
	const query = `INSERT INTO guru (nomor, nama_guru, nip) VALUES ($1, $2, $3) RETURNING id, created_at, updated_at`
	row := r.db.QueryRowxContext(ctx, query, teacher.Number, teacher.Name, teacher.NIP)
	if err := row.Scan(&teacher.ID, &teacher.CreatedAt, &teacher.UpdatedAt); err != nil {
		return wrapError("create teacher", err)
	}
	return nil
}

// Update modifies teacher fields.
func (r *TeacherRepository) Update(ctx context.Context, teacher *models.Teacher) error {
	const query = `UPDATE guru SET nomor = $1, nama_guru = $2, nip = $3, updated_at = NOW() WHERE id = $4 RETURNING updated_at`
	if err := r.db.GetContext(ctx, &teacher.UpdatedAt, query, teacher.Number, teacher.Name, teacher.NIP, teacher.ID); err != nil {
		return wrapError("update teacher", err)
	}
	return nil
}

// Delete removes a teacher and, by cascade, the violations they recorded.
func (r *TeacherRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM guru WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete teacher: %w", err)
	}
	return nil
}
