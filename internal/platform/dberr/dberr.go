// Copyright (c) 2026 Libroteca. All rights reserved.
// Author: dev@libroteca.app

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
//
// # Classification
//
// PostgreSQL reports constraint violations through SQLSTATE codes on
// [pgconn.PgError]. This package inspects those codes so that storage
// implementations can translate them into the [apperr] taxonomy instead of
// leaking a generic 500 to the client.
package dberr

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/libroteca/api/internal/platform/apperr"
)

var (
	// ErrNotFound is a standard error returned when a queried row doesn't exist.
	ErrNotFound = apperr.NotFound("Resource")
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
//
// Storage code that can attach a better message (e.g. "Email is already
// registered" instead of a generic conflict) should check [IsUniqueViolation]
// or [IsForeignKeyViolation] before falling back to Wrap.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	// 1. Not Found mapping
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	// 2. Constraint violation mapping via SQLSTATE
	if IsUniqueViolation(err) {
		return apperr.Conflict("Resource already exists")
	}
	if IsForeignKeyViolation(err) {
		return apperr.InvalidReference("resource")
	}

	// 3. Unknown query errors become Internal Server Errors
	return apperr.Internal(err)
}

// IsUniqueViolation reports whether err is a PostgreSQL unique-constraint
// violation (SQLSTATE 23505).
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

// IsForeignKeyViolation reports whether err is a PostgreSQL foreign-key
// violation (SQLSTATE 23503).
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation
}
