package services

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/kartevonmorgen/openfairdb/pkg"
	"github.com/kartevonmorgen/openfairdb/pkg/constant"
)

// ErrDatabaseItemNotFound is thrown when an item informed was not found.
var ErrDatabaseItemNotFound = errors.New("errDatabaseItemNotFound")

// HandlePGError inspects a postgres error and returns the matching business
// error, or the original error when no mapping applies.
func HandlePGError(err error, entityType string) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	return ValidatePGError(pgErr, entityType)
}

// ValidatePGError validate pgError and return business error.
func ValidatePGError(pgErr *pgconn.PgError, entityType string) error {
	// Unique violations surface as conflicts.
	if pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case "users_pkey":
			return pkg.ValidateBusinessError(constant.ErrUserExists, entityType)
		case "place_revision_pkey":
			return pkg.ValidateBusinessError(constant.ErrInvalidVersion, entityType)
		default:
			return pkg.ValidateBusinessError(constant.ErrEntityAlreadyExists, entityType)
		}
	}

	// Foreign key violations mean the referenced entity is gone.
	if pgErr.Code == "23503" {
		return pkg.ValidateBusinessError(constant.ErrEntityNotFound, entityType)
	}

	return pgErr
}
