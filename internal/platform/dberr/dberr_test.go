// Copyright (c) 2026 Libroteca. All rights reserved.
// Author: dev@libroteca.app

package dberr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/libroteca/api/internal/platform/apperr"
	"github.com/libroteca/api/internal/platform/dberr"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   string
		wantStatus int
	}{
		{
			name:       "no_rows_becomes_not_found",
			err:        pgx.ErrNoRows,
			wantCode:   "NOT_FOUND",
			wantStatus: 404,
		},
		{
			name:       "unique_violation_becomes_conflict",
			err:        &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "authors_email_unique"},
			wantCode:   "CONFLICT",
			wantStatus: 409,
		},
		{
			name:       "fk_violation_becomes_invalid_reference",
			err:        &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, ConstraintName: "books_author_fk"},
			wantCode:   "INVALID_REFERENCE",
			wantStatus: 400,
		},
		{
			name:       "unknown_error_becomes_internal",
			err:        errors.New("connection reset"),
			wantCode:   "INTERNAL_ERROR",
			wantStatus: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := dberr.Wrap(tt.err, "test_action")

			require.Error(t, wrapped)
			ae := apperr.As(wrapped)
			require.NotNil(t, ae)
			assert.Equal(t, tt.wantCode, ae.Code)
			assert.Equal(t, tt.wantStatus, ae.HTTPStatus)
		})
	}
}

func TestWrap_Nil(t *testing.T) {
	assert.NoError(t, dberr.Wrap(nil, "noop"))
}

func TestWrap_WrappedPgError(t *testing.T) {
	// The SQLSTATE must be found even when pgx wraps the PgError.
	inner := &pgconn.PgError{Code: pgerrcode.UniqueViolation}
	err := fmt.Errorf("exec failed: %w", inner)

	assert.True(t, dberr.IsUniqueViolation(err))
	assert.False(t, dberr.IsForeignKeyViolation(err))
}
