package pgerrors_test

import (
	"errors"
	"fmt"
	"testing"

	"marketplace/internal/adapters/out/postgres/pgerrors"
	"marketplace/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestClassify(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		require.NoError(t, pgerrors.Classify("add order", nil))
	})

	t.Run("record not found passes through", func(t *testing.T) {
		err := pgerrors.Classify("get order by number", gorm.ErrRecordNotFound)
		require.ErrorIs(t, err, gorm.ErrRecordNotFound)
		assert.NotErrorIs(t, err, errs.ErrPersistenceFailed)
	})

	t.Run("connection failure is storage unavailable", func(t *testing.T) {
		driverErr := &pgconn.PgError{Code: "08006", Message: "connection failure"}

		err := pgerrors.Classify("next sequence value", driverErr)

		require.ErrorIs(t, err, errs.ErrStorageUnavailable)
		assert.NotErrorIs(t, err, errs.ErrPersistenceFailed)
	})

	t.Run("unhealthy backend classes are storage unavailable", func(t *testing.T) {
		for _, code := range []string{"08001", "53300", "57P01", "58030"} {
			t.Run(code, func(t *testing.T) {
				err := pgerrors.Classify("add order", &pgconn.PgError{Code: code})
				require.ErrorIs(t, err, errs.ErrStorageUnavailable)
			})
		}
	})

	t.Run("wrapped driver error is still recognized", func(t *testing.T) {
		driverErr := &pgconn.PgError{Code: "57P01", Message: "terminating connection"}
		wrapped := fmt.Errorf("exec failed: %w", driverErr)

		err := pgerrors.Classify("count customers", wrapped)

		require.ErrorIs(t, err, errs.ErrStorageUnavailable)
	})

	t.Run("constraint violation is persistence failed", func(t *testing.T) {
		driverErr := &pgconn.PgError{Code: "23505", Message: "duplicate key value"}

		err := pgerrors.Classify("add order", driverErr)

		require.ErrorIs(t, err, errs.ErrPersistenceFailed)
		assert.NotErrorIs(t, err, errs.ErrStorageUnavailable)
	})

	t.Run("non-driver error is persistence failed", func(t *testing.T) {
		err := pgerrors.Classify("update order", errors.New("broken pipe"))
		require.ErrorIs(t, err, errs.ErrPersistenceFailed)
	})
}
