package models

import "time"

// ViolationType is a catalogue entry (data pelanggaran) with its point value.
type ViolationType struct {
	ID          int64      `db:"id" json:"id"`
	Category    Category   `db:"kategori" json:"kategori"`
	Description string     `db:"jenis_pelanggaran" json:"jenis_pelanggaran"`
	Points      int        `db:"poin" json:"poin"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   *time.Time `db:"updated_at" json:"updated_at"`
}

// ViolationRecord is one dated occurrence (pelanggaran siswa).
type ViolationRecord struct {
	ID              int64      `db:"id" json:"id"`
	Date            Date       `db:"tanggal" json:"tanggal"`
	StudentID       int64      `db:"siswa_id" json:"siswa_id"`
	ViolationTypeID int64      `db:"data_pelanggaran_id" json:"data_pelanggaran_id"`
	TeacherID       int64      `db:"guru_id" json:"guru_id"`
	EvidenceFile    *string    `db:"bukti_file" json:"bukti_file"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt       *time.Time `db:"updated_at" json:"updated_at"`
}
