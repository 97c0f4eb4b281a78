package models

import "time"

// Student represents a pupil (siswa) enrolled in exactly one class.
type Student struct {
	ID        int64      `db:"id" json:"id"`
	Number    int        `db:"nomor" json:"nomor"`
	Name      string     `db:"nama_siswa" json:"nama_siswa"`
	NISN      string     `db:"nisn" json:"nisn"`
	ClassID   int64      `db:"kelas_id" json:"kelas_id"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt *time.Time `db:"updated_at" json:"updated_at"`
}

// StudentFilter narrows student listings.
type StudentFilter struct {
	ClassID *int64
}
