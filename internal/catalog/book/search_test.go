// Copyright (c) 2026 Libroteca. All rights reserved.
// Author: dev@libroteca.app

package book_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/libroteca/api/internal/catalog/book"
	"github.com/libroteca/api/internal/platform/apperr"
)

/*
TestParseSearchParams covers defaults, clamping, and strict rejection of
malformed query parameters.
*/
func TestParseSearchParams(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		want     book.SearchParams
		errField string
	}{
		{
			name:  "all_defaults",
			query: "",
			want: book.SearchParams{
				SortBy: book.SortByCreatedAt,
				Order:  book.OrderDesc,
			},
		},
		{
			name:  "full_query",
			query: "search=dune&genre=Sci-Fi&authorName=herbert&page=2&limit=20&sortBy=title&order=asc",
			want: book.SearchParams{
				Search:     "dune",
				Genre:      "Sci-Fi",
				AuthorName: "herbert",
				SortBy:     book.SortByTitle,
				Order:      book.OrderAsc,
			},
		},
		{"page_zero", "page=0", book.SearchParams{}, "page"},
		{"page_negative", "page=-1", book.SearchParams{}, "page"},
		{"page_not_numeric", "page=first", book.SearchParams{}, "page"},
		{"limit_zero", "limit=0", book.SearchParams{}, "limit"},
		{"limit_not_numeric", "limit=many", book.SearchParams{}, "limit"},
		{"unknown_sort_field", "sortBy=pages", book.SearchParams{}, "sortBy"},
		{"unknown_order", "order=sideways", book.SearchParams{}, "order"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", "/books/search?"+tt.query, nil)

			params, err := book.ParseSearchParams(request)

			if tt.errField != "" {
				require.Error(t, err)
				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, "VALIDATION_ERROR", ae.Code)
				assert.Equal(t, tt.errField, ae.Details[0].Field)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want.Search, params.Search)
			assert.Equal(t, tt.want.Genre, params.Genre)
			assert.Equal(t, tt.want.AuthorName, params.AuthorName)
			assert.Equal(t, tt.want.SortBy, params.SortBy)
			assert.Equal(t, tt.want.Order, params.Order)
		})
	}
}

/*
TestParseSearchParams_LimitClamp verifies the excessive-limit forgiveness.
*/
func TestParseSearchParams_LimitClamp(t *testing.T) {
	request := httptest.NewRequest("GET", "/books/search?limit=1000", nil)

	params, err := book.ParseSearchParams(request)

	require.NoError(t, err)
	assert.Equal(t, 50, params.Page.Limit)
}

/*
TestParseSearchParams_ValidationOrder ensures the first failing parameter
wins when several are malformed.
*/
func TestParseSearchParams_ValidationOrder(t *testing.T) {
	request := httptest.NewRequest("GET", "/books/search?page=0&limit=0&sortBy=bogus", nil)

	_, err := book.ParseSearchParams(request)

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "page", ae.Details[0].Field)
}

/*
TestSearchParams_SortColumn verifies the field-to-column mapping.
*/
func TestSearchParams_SortColumn(t *testing.T) {
	assert.Equal(t, "title", book.SearchParams{SortBy: book.SortByTitle}.SortColumn())
	assert.Equal(t, "published_year", book.SearchParams{SortBy: book.SortByPublishedYear}.SortColumn())
	assert.Equal(t, "created_at", book.SearchParams{SortBy: book.SortByCreatedAt}.SortColumn())

	assert.Equal(t, "ASC", book.SearchParams{Order: book.OrderAsc}.OrderDirection())
	assert.Equal(t, "DESC", book.SearchParams{Order: book.OrderDesc}.OrderDirection())
}
