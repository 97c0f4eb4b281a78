package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/smp-pelanggaran-api/internal/models"
)

const studentColumns = "s.id, s.nomor, s.nama_siswa, s.nisn, s.kelas_id, s.created_at, s.updated_at"

// StudentRepository handles persistence for student records.
type StudentRepository struct {
	db *sqlx.DB
}

// NewStudentRepository constructs a StudentRepository.
func NewStudentRepository(db *sqlx.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// List returns students, optionally restricted to one class.
func (r *StudentRepository) List(ctx context.Context, filter models.StudentFilter) ([]models.Student, error) {
	query := fmt.Sprintf("SELECT %s FROM siswa s", studentColumns)
	var args []interface{}
	if filter.ClassID != nil {
		query += " WHERE s.kelas_id = $1"
		args = append(args, *filter.ClassID)
	}
	query += " ORDER BY s.id ASC"

	students := make([]models.Student, 0)
	if err := r.db.SelectContext(ctx, &students, query, args...); err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	return students, nil
}

// Search matches term as a case-insensitive substring of the name or NISN.
// The caller is responsible for rejecting blank terms.
func (r *StudentRepository) Search(ctx context.Context, term string) ([]models.Student, error) {
	query := fmt.Sprintf(`SELECT %s FROM siswa s INNER JOIN kelas k ON k.id = s.kelas_id WHERE s.nama_siswa ILIKE $1 ESCAPE '\' OR s.nisn ILIKE $1 ESCAPE '\' ORDER BY s.nama_siswa ASC`, studentColumns)
	pattern := "%" + escapeLike(term) + "%"

	students := make([]models.Student, 0)
	if err := r.db.SelectContext(ctx, &students, query, pattern); err != nil {
		return nil, fmt.Errorf("search students: %w", err)
	}
	return students, nil
}

// FindByID fetches a student by ID.
func (r *StudentRepository) FindByID(ctx context.Context, id int64) (*models.Student, error) {
	query := fmt.Sprintf("SELECT %s FROM siswa s WHERE s.id = $1", studentColumns)
	var student models.Student
	if err := r.db.GetContext(ctx, &student, query, id); err != nil {
		return nil, err
	}
	return &student, nil
}

// ExistsByID reports whether the student exists.
func (r *StudentRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return existsByID(ctx, r.db, "siswa", id)
}

// Create inserts a new student record.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	const query = `INSERT INTO siswa (nomor, nama_siswa, nisn, kelas_id) VALUES ($1, $2, $3, $4) RETURNING id, created_at, updated_at`
	row := r.db.QueryRowxContext(ctx, query, student.Number, student.Name, student.NISN, student.ClassID)
	if err := row.Scan(&student.ID, &student.CreatedAt, &student.UpdatedAt); err != nil {
		return wrapError("create student", err)
	}
	return nil
}

// Update modifies an existing student record.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	const query = `UPDATE siswa SET nomor = $1, nama_siswa = $2, nisn = $3, kelas_id = $4, updated_at = NOW() WHERE id = $5 RETURNING updated_at`
	if err := r.db.GetContext(ctx, &student.UpdatedAt, query, student.Number, student.Name, student.NISN, student.ClassID, student.ID); err != nil {
		return wrapError("update student", err)
	}
	return nil
}

// Delete removes a student and, by cascade, their violations.
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM siswa WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete student: %w", err)
	}
	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}
