// Package pgerrors maps postgres driver errors onto the application error
// taxonomy shared by every repository in the postgres adapter.
package pgerrors

import (
	"errors"

	"marketplace/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Postgres error classes that indicate the storage backend itself is
// unhealthy rather than the statement being wrong.
const (
	classConnectionException   = "08"
	classInsufficientResources = "53"
	classOperatorIntervention  = "57"
	classSystemError           = "58"
)

// Classify maps a driver error to the application error taxonomy:
// connectivity and resource failures become StorageUnavailableError,
// everything else that reached the database becomes PersistenceFailedError.
// Not-found conditions are left to the repositories, which know the entity.
//
// The gorm postgres driver rides on jackc/pgx, so database errors surface
// as *pgconn.PgError; the SQLSTATE class is its code's first two characters.
func Classify(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && len(pgErr.Code) >= 2 {
		switch pgErr.Code[:2] {
		case classConnectionException,
			classInsufficientResources,
			classOperatorIntervention,
			classSystemError:
			return errs.NewStorageUnavailableError(op, err)
		}
	}

	return errs.NewPersistenceFailedError(op, err)
}
