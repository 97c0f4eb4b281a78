package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/smp-pelanggaran-api/internal/models"
)

const violationRecordColumns = "id, tanggal, siswa_id, data_pelanggaran_id, guru_id, bukti_file, created_at, updated_at"

// ViolationRecordRepository persists recorded violations (pelanggaran_siswa).
type ViolationRecordRepository struct {
	db *sqlx.DB
}

// NewViolationRecordRepository constructs the repository.
func NewViolationRecordRepository(db *sqlx.DB) *ViolationRecordRepository {
	return &ViolationRecordRepository{db: db}
}

// List returns violations newest first.
func (r *ViolationRecordRepository) List(ctx context.Context) ([]models.ViolationRecord, error) {
	query := fmt.Sprintf("SELECT %s FROM pelanggaran_siswa ORDER BY tanggal DESC, id DESC", violationRecordColumns)
	records := make([]models.ViolationRecord, 0)
	if err := r.db.SelectContext(ctx, &records, query); err != nil {
		return nil, fmt.Errorf("list violation records: %w", err)
	}
	return records, nil
}

// FindByID fetches one violation.
func (r *ViolationRecordRepository) FindByID(ctx context.Context, id int64) (*models.ViolationRecord, error) {
	query := fmt.Sprintf("SELECT %s FROM pelanggaran_siswa WHERE id = $1", violationRecordColumns)
	var record models.ViolationRecord
	if err := r.db.GetContext(ctx, &record, query, id); err != nil {
		return nil, err
	}
	return &record, nil
}

// Create inserts a violation.
func (r *ViolationRecordRepository) Create(ctx context.Context, record *models.ViolationRecord) error {
	const query = `INSERT INTO pelanggaran_siswa (tanggal, siswa_id, data_pelanggaran_id, guru_id, bukti_file) VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at, updated_at`
	row := r.db.QueryRowxContext(ctx, query, record.Date, record.StudentID, record.ViolationTypeID, record.TeacherID, record.EvidenceFile)
	if err := row.Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt); err != nil {
		return wrapError("create violation record", err)
	}
	return nil
}

// Update rewrites a violation.
func (r *ViolationRecordRepository) Update(ctx context.Context, record *models.ViolationRecord) error {
	const query = `UPDATE pelanggaran_siswa SET tanggal = $1, siswa_id = $2, data_pelanggaran_id = $3, guru_id = $4, bukti_file = $5, updated_at = NOW() WHERE id = $6 RETURNING updated_at`
	if err := r.db.GetContext(ctx, &record.UpdatedAt, query, record.Date, record.StudentID, record.ViolationTypeID, record.TeacherID, record.EvidenceFile, record.ID); err != nil {
		return wrapError("update violation record", err)
	}
	return nil
}

// Delete removes a violation.
func (r *ViolationRecordRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM pelanggaran_siswa WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete violation record: %w", err)
	}
	return nil
}
