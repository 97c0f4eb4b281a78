package repository

import (
	"context"
	"errors"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapErrorTagsConstraintViolations(t *testing.T) {
	unique := wrapError("create user", &pq.Error{Code: "23505", Constraint: "users_username_key"})
	assert.True(t, errors.Is(unique, ErrUniqueViolation))
	assert.False(t, errors.Is(unique, ErrForeignKeyViolation))

	fk := wrapError("create student", &pq.Error{Code: "23503"})
	assert.True(t, errors.Is(fk, ErrForeignKeyViolation))

	plain := wrapError("create class", errors.New("connection reset"))
	assert.False(t, errors.Is(plain, ErrUniqueViolation))
	assert.Contains(t, plain.Error(), "create class: connection reset")
}

func TestExistsByID(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT 1 FROM guru WHERE id = \$1 LIMIT 1`).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))
	mock.ExpectQuery(`SELECT 1 FROM guru WHERE id = \$1 LIMIT 1`).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}))

	exists, err := existsByID(context.Background(), db, "guru", 3)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = existsByID(context.Background(), db, "guru", 4)
	require.NoError(t, err)
	assert.False(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}
