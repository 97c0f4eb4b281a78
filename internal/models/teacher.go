package models

import "time"

// Teacher represents a staff member (guru) who records violations.
type Teacher struct {
	ID        int64      `db:"id" json:"id"`
	Number    int        `db:"nomor" json:"nomor"`
	Name      string     `db:"nama_guru" json:"nama_guru"`
	NIP       string     `db:"nip" json:"nip"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt *time.Time `db:"updated_at" json:"updated_at"`
}
