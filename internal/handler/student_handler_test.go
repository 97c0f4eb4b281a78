package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/smp-pelanggaran-api/internal/models"
	"github.com/noah-isme/smp-pelanggaran-api/internal/service"
)

type fakeStudentSrv struct {
	filter  models.StudentFilter
	query   string
	results []models.Student
}

func (f *fakeStudentSrv) List(ctx context.Context, filter models.StudentFilter) ([]models.Student, error) {
	f.filter = filter
	return f.results, nil
}

func (f *fakeStudentSrv) Search(ctx context.Context, query string) ([]models.Student, error) {
	f.query = query
	return f.results, nil
}

func (f *fakeStudentSrv) Get(ctx context.Context, id int64) (*models.Student, error) {
	return &models.Student{ID: id}, nil
}

func (f *fakeStudentSrv) Create(ctx context.Context, req service.CreateStudentRequest) (*models.Student, error) {
	return &models.Student{ID: 1, Name: req.Name, ClassID: req.ClassID}, nil
}

func (f *fakeStudentSrv) Update(ctx context.Context, id int64, req service.UpdateStudentRequest) (*models.Student, error) {
	return &models.Student{ID: id}, nil
}

func (f *fakeStudentSrv) Delete(ctx context.Context, id int64) error {
	return nil
}

func TestStudentHandlerListByClass(t *testing.T) {
	srv := &fakeStudentSrv{results: []models.Student{{ID: 1, Name: "Budi", ClassID: 2}}}
	handler := NewStudentHandler(srv)
	c, rec := newTestContext(http.MethodGet, "/students?kelas_id=2", nil)

	handler.List(c)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, srv.filter.ClassID)
	assert.Equal(t, int64(2), *srv.filter.ClassID)
}

func TestStudentHandlerListWithoutFilter(t *testing.T) {
	srv := &fakeStudentSrv{}
	handler := NewStudentHandler(srv)
	c, rec := newTestContext(http.MethodGet, "/students", nil)

	handler.List(c)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, srv.filter.ClassID)
}

func TestStudentHandlerListRejectsBadClassID(t *testing.T) {
	handler := NewStudentHandler(&fakeStudentSrv{})
	c, rec := newTestContext(http.MethodGet, "/students?kelas_id=tujuh", nil)

	handler.List(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeEnvelope(t, rec).Error.Details, "kelas_id")
}

func TestStudentHandlerSearch(t *testing.T) {
	srv := &fakeStudentSrv{results: []models.Student{}}
	handler := NewStudentHandler(srv)
	c, rec := newTestContext(http.MethodGet, "/students/search?query=bud", nil)

	handler.Search(c)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "bud", srv.query)
	var students []models.Student
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &students))
	assert.Empty(t, students)
}

func TestStudentHandlerSearchWithoutQuery(t *testing.T) {
	srv := &fakeStudentSrv{results: []models.Student{}}
	handler := NewStudentHandler(srv)
	c, rec := newTestContext(http.MethodGet, "/students/search", nil)

	handler.Search(c)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "", srv.query)
	assert.JSONEq(t, "[]", string(decodeEnvelope(t, rec).Data))
}
