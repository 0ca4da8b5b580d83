// Copyright (c) 2026 Libroteca. All rights reserved.
// Author: dev@libroteca.app

package book_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/libroteca/api/internal/catalog/book"
	"github.com/libroteca/api/pkg/uuidv7"
)

func newTestRouter(repo book.Repository) http.Handler {
	service := book.NewService(repo, slog.Default())
	handler := book.NewHandler(service)

	router := chi.NewRouter()
	router.Route("/api/v1/books", handler.RegisterRoutes)
	return router
}

func TestHandler_SearchBooks_Defaults(t *testing.T) {
	router := newTestRouter(newStubRepository())

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("GET", "/api/v1/books/search", nil))

	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Data       []json.RawMessage `json:"data"`
		Pagination struct {
			Page       int  `json:"page"`
			Limit      int  `json:"limit"`
			Total      int  `json:"total"`
			TotalPages int  `json:"totalPages"`
			HasNext    bool `json:"hasNext"`
			HasPrev    bool `json:"hasPrev"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))

	assert.NotNil(t, body.Data) // empty page serializes as [], not null
	assert.Equal(t, 1, body.Pagination.Page)
	assert.Equal(t, 10, body.Pagination.Limit)
	assert.False(t, body.Pagination.HasPrev)
}

func TestHandler_SearchBooks_BadPage(t *testing.T) {
	router := newTestRouter(newStubRepository())

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("GET", "/api/v1/books/search?page=0", nil))

	require.Equal(t, http.StatusBadRequest, recorder.Code)

	var body struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "VALIDATION_ERROR", body.Code)
}

func TestHandler_CreateBook(t *testing.T) {
	repo := newStubRepository()
	router := newTestRouter(repo)

	authorID := uuidv7.New()
	repo.knownAuthors[authorID] = true

	payload := `{"title": "Kindred", "authorId": "` + authorID + `", "pages": 264, "genre": "scifi"}`
	request := httptest.NewRequest("POST", "/api/v1/books", strings.NewReader(payload))
	request.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusCreated, recorder.Code)

	var body struct {
		Data book.Book `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "Kindred", body.Data.Title)
	assert.NotEmpty(t, body.Data.ID)
}

func TestHandler_CreateBook_UnknownAuthor(t *testing.T) {
	router := newTestRouter(newStubRepository())

	payload := `{"title": "Orphaned", "authorId": "` + uuidv7.New() + `"}`
	request := httptest.NewRequest("POST", "/api/v1/books", strings.NewReader(payload))
	request.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusBadRequest, recorder.Code)

	var body struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "INVALID_REFERENCE", body.Code)
}

func TestHandler_GetBook_NotFound(t *testing.T) {
	router := newTestRouter(newStubRepository())

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("GET", "/api/v1/books/"+uuidv7.New(), nil))

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestHandler_DeleteBook_NotFound(t *testing.T) {
	router := newTestRouter(newStubRepository())

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("DELETE", "/api/v1/books/"+uuidv7.New(), nil))

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
