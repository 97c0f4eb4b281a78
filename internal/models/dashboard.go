package models

// DashboardFilter narrows the dashboard aggregates. Nil fields are ignored.
type DashboardFilter struct {
	StartDate *Date     `json:"tanggal_awal,omitempty"`
	EndDate   *Date     `json:"tanggal_akhir,omitempty"`
	ClassID   *int64    `json:"kelas_id,omitempty"`
	TeacherID *int64    `json:"guru_id,omitempty"`
	Category  *Category `json:"kategori,omitempty" validate:"omitnil,enum"`
}

// CategoryTotal aggregates filtered violations for one category.
type CategoryTotal struct {
	Category        Category `db:"kategori" json:"kategori"`
	TotalViolations int      `db:"total_pelanggaran" json:"total_pelanggaran"`
	TotalPoints     int      `db:"total_poin" json:"total_poin"`
}

// ClassTotal aggregates filtered violations for one class.
type ClassTotal struct {
	ClassID         int64     `db:"kelas_id" json:"kelas_id"`
	ClassName       string    `db:"nama_kelas" json:"nama_kelas"`
	GradeBand       GradeBand `db:"rombel" json:"rombel"`
	TotalViolations int       `db:"total_pelanggaran" json:"total_pelanggaran"`
	TotalPoints     int       `db:"total_poin" json:"total_poin"`
}

// DashboardSummary is the payload of the dashboard endpoint.
type DashboardSummary struct {
	CategoryTotals []CategoryTotal `json:"rangkuman_pelanggaran"`
	ClassTotals    []ClassTotal    `json:"pelanggaran_per_kelas"`
}
