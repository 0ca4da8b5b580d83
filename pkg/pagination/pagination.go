// Copyright (c) 2026 Libroteca. All rights reserved.
// Author: dev@libroteca.app

// Package pagination provides shared types and helpers for API list endpoints.
//
// # Overview
//
// It standardizes how page-based navigation is requested via query parameters
// and how the resulting metadata is delivered in the API response envelope.
//
// # Strictness
//
// Malformed values are rejected with a validation error rather than silently
// replaced: a request that says "page=abc" is a client bug and should surface
// as one. Only an oversized limit is forgiven, by clamping it to [MaxLimit].
package pagination

import (
	"net/http"
	"strconv"

	"github.com/libroteca/api/internal/platform/apperr"
)

const (
	// DefaultLimit is the number of items per page if not specified.
	DefaultLimit = 10
	// MaxLimit is the upper bound for items per page to prevent system abuse.
	MaxLimit = 50
	// DefaultPage is the starting page (1-indexed).
	DefaultPage = 1
)

// Params holds the parsed page and limit from a request's query string.
type Params struct {
	Page  int
	Limit int
}

// Offset returns the SQL OFFSET value derived from [Page] and [Limit].
func (p Params) Offset() int {
	if p.Page <= 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// Meta is the pagination metadata included in API list responses.
type Meta struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

// NewMeta constructs pagination metadata for a response.
//
// It automatically calculates TotalPages based on the total count and limit,
// and derives the HasNext/HasPrev navigation flags from the current page.
func NewMeta(page, limit, total int) Meta {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}

	return Meta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}

// FromRequest parses "page" and "limit" query parameters from an HTTP request.
//
// # Validation
//
//   - page must be an integer >= 1; anything else is a validation error.
//   - limit must be an integer >= 1; anything else is a validation error.
//   - limit above [MaxLimit] is clamped down to [MaxLimit].
//
// Missing parameters fall back to [DefaultPage] and [DefaultLimit].
func FromRequest(r *http.Request) (Params, error) {
	page, err := parseIntParam(r, "page", DefaultPage)
	if err != nil {
		return Params{}, apperr.ValidationError("Invalid pagination parameters",
			apperr.FieldError{Field: "page", Message: "must be a positive integer"})
	}
	if page < 1 {
		return Params{}, apperr.ValidationError("Invalid pagination parameters",
			apperr.FieldError{Field: "page", Message: "must be greater than or equal to 1"})
	}

	limit, err := parseIntParam(r, "limit", DefaultLimit)
	if err != nil {
		return Params{}, apperr.ValidationError("Invalid pagination parameters",
			apperr.FieldError{Field: "limit", Message: "must be a positive integer"})
	}
	if limit < 1 {
		return Params{}, apperr.ValidationError("Invalid pagination parameters",
			apperr.FieldError{Field: "limit", Message: "must be greater than or equal to 1"})
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	return Params{Page: page, Limit: limit}, nil
}

// parseIntParam parses a single integer query parameter with a fallback default.
func parseIntParam(r *http.Request, key string, defaultVal int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return defaultVal, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}

	return n, nil
}
