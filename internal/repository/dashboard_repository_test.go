package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/smp-pelanggaran-api/internal/models"
)

type recordingObserver struct {
	labels []string
}

func (o *recordingObserver) ObserveDBQuery(label string, _ time.Duration) {
	o.labels = append(o.labels, label)
}

func TestDashboardConditionsNoFilter(t *testing.T) {
	where, args := dashboardConditions(models.DashboardFilter{})
	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestDashboardConditionsAllFilters(t *testing.T) {
	start := models.NewDate(2024, time.January, 1)
	end := models.NewDate(2024, time.January, 31)
	classID := int64(2)
	teacherID := int64(5)
	category := models.CategoryTidiness

	where, args := dashboardConditions(models.DashboardFilter{
		StartDate: &start,
		EndDate:   &end,
		ClassID:   &classID,
		TeacherID: &teacherID,
		Category:  &category,
	})
	assert.Equal(t, "\nWHERE ps.tanggal >= $1 AND ps.tanggal <= $2 AND s.kelas_id = $3 AND ps.guru_id = $4 AND dp.kategori = $5", where)
	assert.Equal(t, []interface{}{start, end, classID, teacherID, category}, args)
}

func TestDashboardConditionsPartialFilterNumbering(t *testing.T) {
	teacherID := int64(5)
	category := models.CategoryConduct
	where, args := dashboardConditions(models.DashboardFilter{TeacherID: &teacherID, Category: &category})
	assert.Equal(t, "\nWHERE ps.guru_id = $1 AND dp.kategori = $2", where)
	assert.Len(t, args, 2)
}

func TestDashboardRepositoryCategoryTotals(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	observer := &recordingObserver{}
	repo := NewDashboardRepository(db, observer)

	start := models.NewDate(2024, time.January, 1)
	mock.ExpectQuery(`(?s)SELECT dp.kategori AS kategori, COUNT\(ps.id\) AS total_pelanggaran, COALESCE\(SUM\(dp.poin\), 0\) AS total_poin.*WHERE ps.tanggal >= \$1.*GROUP BY dp.kategori`).
		WithArgs("2024-01-01").
		WillReturnRows(sqlmock.NewRows([]string{"kategori", "total_pelanggaran", "total_poin"}).
			AddRow("Kelakuan", 2, 15).
			AddRow("Kerapian", 1, 3))

	totals, err := repo.CategoryTotals(context.Background(), models.DashboardFilter{StartDate: &start})
	require.NoError(t, err)
	require.Len(t, totals, 2)
	assert.Equal(t, models.CategoryTotal{Category: models.CategoryConduct, TotalViolations: 2, TotalPoints: 15}, totals[0])
	assert.Equal(t, []string{"dashboard_category_totals"}, observer.labels)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDashboardRepositoryClassTotals(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewDashboardRepository(db, nil)

	mock.ExpectQuery(`(?s)INNER JOIN kelas k ON k.id = s.kelas_id.*GROUP BY k.id, k.nama_kelas, k.rombel`).
		WillReturnRows(sqlmock.NewRows([]string{"kelas_id", "nama_kelas", "rombel", "total_pelanggaran", "total_poin"}).
			AddRow(1, "7A", "7", 1, 5))

	totals, err := repo.ClassTotals(context.Background(), models.DashboardFilter{})
	require.NoError(t, err)
	require.Len(t, totals, 1)
	assert.Equal(t, models.ClassTotal{ClassID: 1, ClassName: "7A", GradeBand: models.GradeBand7, TotalViolations: 1, TotalPoints: 5}, totals[0])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDashboardRepositoryQueryFailure(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewDashboardRepository(db, nil)

	boom := errors.New("relation does not exist")
	mock.ExpectQuery("GROUP BY k.id").WillReturnError(boom)

	totals, err := repo.ClassTotals(context.Background(), models.DashboardFilter{})
	assert.Nil(t, totals)
	assert.True(t, errors.Is(err, boom))
}
