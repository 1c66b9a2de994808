package database

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/verdante/import-service/internal/store"
)

// PostgreSQL SQLSTATE codes
const (
	sqlStateUniqueViolation    = "23505"
	sqlStateNotNullViolation   = "23502"
	sqlStateCheckViolation     = "23514"
	sqlStateDataExceptionClass = "22"
)

// classify converts a driver error into a store.Error
func classify(err error, what string) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return store.NewError(store.CodeInternal, err, "%s: %v", what, err)
	}

	switch {
	case pgErr.Code == sqlStateUniqueViolation:
		return store.NewError(store.CodeDuplicate, err, "%s already exists (%s)", what, constraintOf(pgErr))
	case pgErr.Code == sqlStateNotNullViolation, pgErr.Code == sqlStateCheckViolation,
		strings.HasPrefix(pgErr.Code, sqlStateDataExceptionClass):
		return store.NewError(store.CodeInvalid, err, "%s rejected: %s", what, pgErr.Message)
	default:
		return store.NewError(store.CodeInternal, err, "%s: %s", what, pgErr.Message)
	}
}

func constraintOf(pgErr *pgconn.PgError) string {
	if pgErr.ConstraintName != "" {
		return pgErr.ConstraintName
	}
	return pgErr.Message
}
