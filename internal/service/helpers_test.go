package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	appErrors "github.com/noah-isme/smp-pelanggaran-api/pkg/errors"
)

func requireAppError(t *testing.T, err error, code string) *appErrors.Error {
	t.Helper()
	require.Error(t, err)
	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr), "expected *errors.Error, got %T", err)
	require.Equal(t, code, appErr.Code)
	return appErr
}

type existsStub struct {
	ids   map[int64]bool
	err   error
	calls []int64
}

func existing(ids ...int64) *existsStub {
	stub := &existsStub{ids: map[int64]bool{}}
	for _, id := range ids {
		stub.ids[id] = true
	}
	return stub
}

func (s *existsStub) ExistsByID(ctx context.Context, id int64) (bool, error) {
	s.calls = append(s.calls, id)
	if s.err != nil {
		return false, s.err
	}
	return s.ids[id], nil
}

func strPtr(v string) *string { return &v }

func intPtr(v int) *int { return &v }

func int64Ptr(v int64) *int64 { return &v }
