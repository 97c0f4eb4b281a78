package models

import "time"

// Class represents a homeroom class (kelas).
type Class struct {
	ID        int64      `db:"id" json:"id"`
	Number    int        `db:"nomor" json:"nomor"`
	GradeBand GradeBand  `db:"rombel" json:"rombel"`
	Name      string     `db:"nama_kelas" json:"nama_kelas"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt *time.Time `db:"updated_at" json:"updated_at"`
}
