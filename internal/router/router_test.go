package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/noah-isme/smp-pelanggaran-api/internal/handler"
	"github.com/noah-isme/smp-pelanggaran-api/internal/models"
	"github.com/noah-isme/smp-pelanggaran-api/internal/service"
	appErrors "github.com/noah-isme/smp-pelanggaran-api/pkg/errors"
	"github.com/noah-isme/smp-pelanggaran-api/pkg/config"
)

type stubTokens struct{}

func (stubTokens) ValidateToken(token string) (*models.JWTClaims, error) {
	switch token {
	case "admin":
		return &models.JWTClaims{UserID: 1, Username: "admin", Role: models.RoleAdministrator}, nil
	case "guru":
		return &models.JWTClaims{UserID: 2, Username: "guru", Role: models.RoleTeacher}, nil
	}
	return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid token")
}

type stubStudents struct{}

func (stubStudents) List(ctx context.Context, filter models.StudentFilter) ([]models.Student, error) {
	return []models.Student{}, nil
}

func (stubStudents) Search(ctx context.Context, query string) ([]models.Student, error) {
	return []models.Student{}, nil
}

func (stubStudents) Get(ctx context.Context, id int64) (*models.Student, error) {
	return &models.Student{ID: id}, nil
}

func (stubStudents) Create(ctx context.Context, req service.CreateStudentRequest) (*models.Student, error) {
	return &models.Student{ID: 1}, nil
}

func (stubStudents) Update(ctx context.Context, id int64, req service.UpdateStudentRequest) (*models.Student, error) {
	return &models.Student{ID: id}, nil
}

func (stubStudents) Delete(ctx context.Context, id int64) error {
	return nil
}

type stubUsers struct{}

func (stubUsers) List(ctx context.Context) ([]models.User, error) { return []models.User{}, nil }

func (stubUsers) Get(ctx context.Context, id int64) (*models.User, error) {
	return &models.User{ID: id}, nil
}

func (stubUsers) Create(ctx context.Context, req service.CreateUserRequest) (*models.User, error) {
	return &models.User{ID: 1}, nil
}

func (stubUsers) Update(ctx context.Context, id int64, req service.UpdateUserRequest) (*models.User, error) {
	return &models.User{ID: id}, nil
}

func (stubUsers) Delete(ctx context.Context, id int64) error { return nil }

func newTestRouter(authEnabled bool) http.Handler {
	cfg := &config.Config{Env: "test", APIPrefix: "/api/v1"}
	cfg.Auth.Enabled = authEnabled

	return New(Deps{Config: cfg, Logger: zap.NewNop(), Tokens: stubTokens{}}, Handlers{
		Health:  handler.NewHealthHandler(nil, nil, nil),
		Student: handler.NewStudentHandler(stubStudents{}),
		User:    handler.NewUserHandler(stubUsers{}),
	})
}

func serve(t *testing.T, h http.Handler, method, path, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouterPublicWhenAuthDisabled(t *testing.T) {
	r := newTestRouter(false)

	assert.Equal(t, http.StatusOK, serve(t, r, http.MethodGet, "/health", "").Code)
	assert.Equal(t, http.StatusOK, serve(t, r, http.MethodGet, "/api/v1/students/search?query=bud", "").Code)
	assert.Equal(t, http.StatusOK, serve(t, r, http.MethodGet, "/api/v1/users", "").Code)
	assert.Equal(t, http.StatusNotFound, serve(t, r, http.MethodGet, "/api/v1/auth/me", "").Code)
}

func TestRouterRequiresTokenWhenAuthEnabled(t *testing.T) {
	r := newTestRouter(true)

	rec := serve(t, r, http.MethodGet, "/api/v1/students", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	assert.Equal(t, http.StatusOK, serve(t, r, http.MethodGet, "/api/v1/students", "guru").Code)
	assert.Equal(t, http.StatusOK, serve(t, r, http.MethodGet, "/health", "").Code)
}

func TestRouterUsersAreAdminOnly(t *testing.T) {
	r := newTestRouter(true)

	assert.Equal(t, http.StatusForbidden, serve(t, r, http.MethodGet, "/api/v1/users", "guru").Code)
	assert.Equal(t, http.StatusOK, serve(t, r, http.MethodGet, "/api/v1/users", "admin").Code)
	assert.Equal(t, http.StatusOK, serve(t, r, http.MethodGet, "/api/v1/auth/me", "guru").Code)
}
