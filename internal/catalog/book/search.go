// Copyright (c) 2026 Libroteca. All rights reserved.
// Author: dev@libroteca.app

package book

import (
	"net/http"
	"strings"

	"github.com/libroteca/api/internal/platform/apperr"
	"github.com/libroteca/api/internal/platform/database/schema"
	"github.com/libroteca/api/pkg/pagination"
)

// Sortable fields and orderings exposed by the search endpoint.
const (
	SortByTitle         = "title"
	SortByPublishedYear = "publishedYear"
	SortByCreatedAt     = "createdAt"

	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// SearchParams holds the parsed and validated query of a book search.
type SearchParams struct {
	// Search matches against the title, case insensitive.
	Search string
	// Genre is an exact, case sensitive match.
	Genre string
	// AuthorName matches against the owning author's name, case insensitive.
	AuthorName string
	SortBy     string
	Order      string
	Page       pagination.Params
}

// ParseSearchParams extracts search parameters from the query string.
//
// Parameters are checked in a fixed order (page, limit, sortBy, order) and
// the first failure wins. Unknown sort fields and orderings are rejected, not
// silently defaulted; only absent parameters fall back to defaults.
func ParseSearchParams(request *http.Request) (SearchParams, error) {
	pageParams, err := pagination.FromRequest(request)
	if err != nil {
		return SearchParams{}, err
	}

	query := request.URL.Query()

	sortBy := query.Get("sortBy")
	if sortBy == "" {
		sortBy = SortByCreatedAt
	}
	switch sortBy {
	case SortByTitle, SortByPublishedYear, SortByCreatedAt:
	default:
		return SearchParams{}, apperr.ValidationError("Invalid search parameters",
			apperr.FieldError{Field: "sortBy", Message: "must be one of: title, publishedYear, createdAt"})
	}

	order := query.Get("order")
	if order == "" {
		order = OrderDesc
	}
	switch order {
	case OrderAsc, OrderDesc:
	default:
		return SearchParams{}, apperr.ValidationError("Invalid search parameters",
			apperr.FieldError{Field: "order", Message: "must be one of: asc, desc"})
	}

	return SearchParams{
		Search:     strings.TrimSpace(query.Get("search")),
		Genre:      query.Get("genre"),
		AuthorName: strings.TrimSpace(query.Get("authorName")),
		SortBy:     sortBy,
		Order:      order,
		Page:       pageParams,
	}, nil
}

// SortColumn maps the public sort field name onto its database column.
func (p SearchParams) SortColumn() string {
	switch p.SortBy {
	case SortByTitle:
		return schema.RefBook.Title
	case SortByPublishedYear:
		return schema.RefBook.PublishedYear
	default:
		return schema.RefBook.CreatedAt
	}
}

// OrderDirection returns the SQL sort direction keyword.
func (p SearchParams) OrderDirection() string {
	if p.Order == OrderAsc {
		return "ASC"
	}
	return "DESC"
}
