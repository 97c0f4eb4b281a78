package service

import (
	"database/sql"
	"errors"

	"github.com/noah-isme/smp-pelanggaran-api/internal/repository"
	appErrors "github.com/noah-isme/smp-pelanggaran-api/pkg/errors"
)

// lookupError maps a FindByID failure to NOT_FOUND or STORAGE_ERROR.
func lookupError(err error, kind string, id int64) error {
	if errors.Is(err, sql.ErrNoRows) {
		return appErrors.NotFound(kind, id)
	}
	return appErrors.Storage(err, "failed to load "+kind)
}

// updateError maps a failed update; a row removed after it was loaded reports as NOT_FOUND.
func updateError(err error, kind string, id int64) error {
	if errors.Is(err, sql.ErrNoRows) {
		return appErrors.NotFound(kind, id)
	}
	return writeError(err, kind, "update")
}

// writeError maps a failed insert or update. A foreign key that vanished after
// the explicit existence check still reports as NOT_FOUND.
func writeError(err error, kind, op string) error {
	switch {
	case errors.Is(err, repository.ErrUniqueViolation):
		return appErrors.Wrap(err, appErrors.ErrConflict.Code, appErrors.ErrConflict.Status, kind+" already exists")
	case errors.Is(err, repository.ErrForeignKeyViolation):
		return appErrors.Wrap(err, appErrors.ErrNotFound.Code, appErrors.ErrNotFound.Status, "referenced record of "+kind+" no longer exists")
	default:
		return appErrors.Storage(err, "failed to "+op+" "+kind)
	}
}
