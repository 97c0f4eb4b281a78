package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/smp-pelanggaran-api/internal/models"
)

// QueryObserver receives aggregate query timings.
type QueryObserver interface {
	ObserveDBQuery(label string, duration time.Duration)
}

// DashboardRepository computes violation aggregates straight from the source rows.
type DashboardRepository struct {
	db       *sqlx.DB
	observer QueryObserver
}

// NewDashboardRepository constructs the repository. observer may be nil.
func NewDashboardRepository(db *sqlx.DB, observer QueryObserver) *DashboardRepository {
	return &DashboardRepository{db: db, observer: observer}
}

// CategoryTotals counts filtered violations and sums their points per category.
func (r *DashboardRepository) CategoryTotals(ctx context.Context, filter models.DashboardFilter) ([]models.CategoryTotal, error) {
	where, args := dashboardConditions(filter)
	query := `SELECT dp.kategori AS kategori, COUNT(ps.id) AS total_pelanggaran, COALESCE(SUM(dp.poin), 0) AS total_poin
FROM pelanggaran_siswa ps
INNER JOIN data_pelanggaran dp ON dp.id = ps.data_pelanggaran_id
INNER JOIN siswa s ON s.id = ps.siswa_id` + where + `
GROUP BY dp.kategori
ORDER BY dp.kategori`

	totals := make([]models.CategoryTotal, 0)
	start := time.Now()
	err := r.db.SelectContext(ctx, &totals, query, args...)
	r.observe("dashboard_category_totals", start)
	if err != nil {
		return nil, fmt.Errorf("dashboard category totals: %w", err)
	}
	return totals, nil
}

// ClassTotals counts filtered violations and sums their points per class.
func (r *DashboardRepository) ClassTotals(ctx context.Context, filter models.DashboardFilter) ([]models.ClassTotal, error) {
	where, args := dashboardConditions(filter)
	query := `SELECT k.id AS kelas_id, k.nama_kelas AS nama_kelas, k.rombel AS rombel, COUNT(ps.id) AS total_pelanggaran, COALESCE(SUM(dp.poin), 0) AS total_poin
FROM pelanggaran_siswa ps
INNER JOIN siswa s ON s.id = ps.siswa_id
INNER JOIN kelas k ON k.id = s.kelas_id
INNER JOIN data_pelanggaran dp ON dp.id = ps.data_pelanggaran_id` + where + `
GROUP BY k.id, k.nama_kelas, k.rombel
ORDER BY k.id`

	totals := make([]models.ClassTotal, 0)
	start := time.Now()
	err := r.db.SelectContext(ctx, &totals, query, args...)
	r.observe("dashboard_class_totals", start)
	if err != nil {
		return nil, fmt.Errorf("dashboard class totals: %w", err)
	}
	return totals, nil
}

func (r *DashboardRepository) observe(label string, start time.Time) {
	if r.observer != nil {
		r.observer.ObserveDBQuery(label, time.Since(start))
	}
}

// dashboardConditions ANDs every provided filter. Both date bounds are inclusive.
func dashboardConditions(filter models.DashboardFilter) (string, []interface{}) {
	var conditions []string
	var args []interface{}

	if filter.StartDate != nil {
		args = append(args, *filter.StartDate)
		conditions = append(conditions, fmt.Sprintf("ps.tanggal >= $%d", len(args)))
	}
	if filter.EndDate != nil {
		args = append(args, *filter.EndDate)
		conditions = append(conditions, fmt.Sprintf("ps.tanggal <= $%d", len(args)))
	}
	if filter.ClassID != nil {
		args = append(args, *filter.ClassID)
		conditions = append(conditions, fmt.Sprintf("s.kelas_id = $%d", len(args)))
	}
	if filter.TeacherID != nil {
		args = append(args, *filter.TeacherID)
		conditions = append(conditions, fmt.Sprintf("ps.guru_id = $%d", len(args)))
	}
	if filter.Category != nil {
		args = append(args, *filter.Category)
		conditions = append(conditions, fmt.Sprintf("dp.kategori = $%d", len(args)))
	}

	if len(conditions) == 0 {
		return "", nil
	}
	return "\nWHERE " + strings.Join(conditions, " AND "), args
}
