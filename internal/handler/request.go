package handler

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/smp-pelanggaran-api/internal/models"
	appErrors "github.com/noah-isme/smp-pelanggaran-api/pkg/errors"
	"github.com/noah-isme/smp-pelanggaran-api/pkg/validation"
)

// parseID reads the :id path parameter as a positive integer.
func parseID(c *gin.Context) (int64, error) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, appErrors.Validation(err, "invalid id", map[string]string{"id": "id must be a positive integer"})
	}
	return id, nil
}

// bindJSON decodes the request body into dst.
func bindJSON(c *gin.Context, dst interface{}) error {
	if err := c.ShouldBindJSON(dst); err != nil {
		return validation.Error(err, "invalid payload")
	}
	return nil
}

func queryInt64(c *gin.Context, key string) (*int64, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, appErrors.Validation(err, "invalid query parameter", map[string]string{key: key + " must be an integer"})
	}
	return &v, nil
}

func queryDate(c *gin.Context, key string) (*models.Date, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	d, err := models.ParseDate(raw)
	if err != nil {
		return nil, appErrors.Validation(err, "invalid query parameter", map[string]string{key: key + " must be a date in YYYY-MM-DD format"})
	}
	return &d, nil
}

// dashboardFilterFromQuery reads the optional summary filters. Empty values are ignored.
func dashboardFilterFromQuery(c *gin.Context) (models.DashboardFilter, error) {
	var (
		filter models.DashboardFilter
		err    error
	)
	if filter.StartDate, err = queryDate(c, "tanggal_awal"); err != nil {
		return filter, err
	}
	if filter.EndDate, err = queryDate(c, "tanggal_akhir"); err != nil {
		return filter, err
	}
	if filter.ClassID, err = queryInt64(c, "kelas_id"); err != nil {
		return filter, err
	}
	if filter.TeacherID, err = queryInt64(c, "guru_id"); err != nil {
		return filter, err
	}
	if raw := strings.TrimSpace(c.Query("kategori")); raw != "" {
		category := models.Category(raw)
		filter.Category = &category
	}
	return filter, nil
}
