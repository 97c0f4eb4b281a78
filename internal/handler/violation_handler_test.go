package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/smp-pelanggaran-api/internal/models"
	"github.com/noah-isme/smp-pelanggaran-api/internal/service"
	appErrors "github.com/noah-isme/smp-pelanggaran-api/pkg/errors"
)

type fakeViolationSrv struct {
	created   *service.CreateViolationRecordRequest
	updateReq service.UpdateViolationRecordRequest
	createErr error
}

func (f *fakeViolationSrv) List(ctx context.Context) ([]models.ViolationRecord, error) {
	return []models.ViolationRecord{}, nil
}

func (f *fakeViolationSrv) Get(ctx context.Context, id int64) (*models.ViolationRecord, error) {
	return &models.ViolationRecord{ID: id}, nil
}

func (f *fakeViolationSrv) Create(ctx context.Context, req service.CreateViolationRecordRequest) (*models.ViolationRecord, error) {
	f.created = &req
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &models.ViolationRecord{ID: 1, Date: *req.Date, StudentID: req.StudentID}, nil
}

func (f *fakeViolationSrv) Update(ctx context.Context, id int64, req service.UpdateViolationRecordRequest) (*models.ViolationRecord, error) {
	f.updateReq = req
	return &models.ViolationRecord{ID: id}, nil
}

func (f *fakeViolationSrv) Delete(ctx context.Context, id int64) error {
	return nil
}

func TestViolationHandlerCreate(t *testing.T) {
	srv := &fakeViolationSrv{}
	handler := NewViolationHandler(srv)
	c, rec := newTestContext(http.MethodPost, "/violations", `{"tanggal":"2024-03-01","siswa_id":1,"data_pelanggaran_id":2,"guru_id":3}`)

	handler.Create(c)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, srv.created)
	assert.Equal(t, "2024-03-01", srv.created.Date.String())
	assert.Contains(t, rec.Body.String(), `"tanggal":"2024-03-01"`)
}

func TestViolationHandlerCreateBadDate(t *testing.T) {
	srv := &fakeViolationSrv{}
	handler := NewViolationHandler(srv)
	c, rec := newTestContext(http.MethodPost, "/violations", `{"tanggal":"01/03/2024","siswa_id":1,"data_pelanggaran_id":2,"guru_id":3}`)

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, srv.created)
}

func TestViolationHandlerCreateMissingReference(t *testing.T) {
	srv := &fakeViolationSrv{createErr: appErrors.NotFound("teacher", 3)}
	handler := NewViolationHandler(srv)
	c, rec := newTestContext(http.MethodPost, "/violations", `{"tanggal":"2024-03-01","siswa_id":1,"data_pelanggaran_id":2,"guru_id":3}`)

	handler.Create(c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "teacher with id 3 not found", decodeEnvelope(t, rec).Error.Message)
}

func TestViolationHandlerUpdateClearsEvidence(t *testing.T) {
	srv := &fakeViolationSrv{}
	handler := NewViolationHandler(srv)
	c, rec := newTestContext(http.MethodPut, "/violations/5", `{"bukti_file":null}`)
	c.Params = gin.Params{{Key: "id", Value: "5"}}

	handler.Update(c)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, srv.updateReq.EvidenceFile.Set)
	assert.Nil(t, srv.updateReq.EvidenceFile.Value)
	assert.Nil(t, srv.updateReq.StudentID)
}
