// Copyright (c) 2026 Libroteca. All rights reserved.
// Author: dev@libroteca.app

package author_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/libroteca/api/internal/catalog/author"
	"github.com/libroteca/api/internal/platform/apperr"
	"github.com/libroteca/api/internal/platform/dberr"
	"github.com/libroteca/api/pkg/pointer"
	"github.com/libroteca/api/pkg/uuidv7"
)

// stubRepository is an in-memory Repository for service tests.
type stubRepository struct {
	authors map[string]*author.Author
	books   map[string][]author.Book
}

func newStubRepository() *stubRepository {
	return &stubRepository{
		authors: map[string]*author.Author{},
		books:   map[string][]author.Book{},
	}
}

func (s *stubRepository) ListAuthors(_ context.Context) ([]*author.Author, error) {
	var out []*author.Author
	for _, a := range s.authors {
		out = append(out, a)
	}
	return out, nil
}

func (s *stubRepository) GetAuthor(_ context.Context, id string) (*author.Author, error) {
	a, ok := s.authors[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return a, nil
}

func (s *stubRepository) ListBooks(_ context.Context, authorID string) ([]author.Book, error) {
	if _, ok := s.authors[authorID]; !ok {
		return nil, dberr.ErrNotFound
	}
	return s.books[authorID], nil
}

func (s *stubRepository) CreateAuthor(_ context.Context, a *author.Author) error {
	for _, existing := range s.authors {
		if existing.Email == a.Email {
			return apperr.Conflict("Email is already registered")
		}
	}
	s.authors[a.ID] = a
	return nil
}

func (s *stubRepository) UpdateAuthor(_ context.Context, a *author.Author) error {
	if _, ok := s.authors[a.ID]; !ok {
		return dberr.ErrNotFound
	}
	s.authors[a.ID] = a
	return nil
}

func (s *stubRepository) DeleteAuthor(_ context.Context, id string) error {
	if _, ok := s.authors[id]; !ok {
		return dberr.ErrNotFound
	}
	delete(s.authors, id)
	delete(s.books, id)
	return nil
}

func newTestService(repo author.Repository) *author.Service {
	return author.NewService(repo, slog.Default())
}

func TestService_CreateAuthor(t *testing.T) {
	repo := newStubRepository()
	service := newTestService(repo)

	input := &author.Author{Name: "Octavia Butler", Email: "octavia@example.com"}
	err := service.CreateAuthor(context.Background(), input)

	require.NoError(t, err)
	assert.NotEmpty(t, input.ID)
}

func TestService_CreateAuthor_Validation(t *testing.T) {
	service := newTestService(newStubRepository())

	tests := []struct {
		name  string
		input author.Author
		field string
	}{
		{"missing_name", author.Author{Email: "a@b.com"}, "name"},
		{"missing_email", author.Author{Name: "Someone"}, "email"},
		{"bad_email", author.Author{Name: "Someone", Email: "nope"}, "email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.CreateAuthor(context.Background(), &tt.input)

			require.Error(t, err)
			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "VALIDATION_ERROR", ae.Code)
			assert.Equal(t, tt.field, ae.Details[0].Field)
		})
	}
}

func TestService_CreateAuthor_DuplicateEmail(t *testing.T) {
	repo := newStubRepository()
	service := newTestService(repo)

	first := &author.Author{Name: "First", Email: "shared@example.com"}
	require.NoError(t, service.CreateAuthor(context.Background(), first))

	second := &author.Author{Name: "Second", Email: "shared@example.com"}
	err := service.CreateAuthor(context.Background(), second)

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "CONFLICT", ae.Code)
	assert.Equal(t, 409, ae.HTTPStatus)
}

func TestService_GetAuthor_InvalidID(t *testing.T) {
	service := newTestService(newStubRepository())

	_, err := service.GetAuthor(context.Background(), "not-a-uuid")

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)
}

func TestService_GetStats(t *testing.T) {
	repo := newStubRepository()
	service := newTestService(repo)

	id := uuidv7.New()
	repo.authors[id] = &author.Author{ID: id, Name: "Prolific", Email: "p@example.com"}
	repo.books[id] = []author.Book{
		{Title: "Early Work", PublishedYear: pointer.To(1985), Pages: pointer.To(200), Genre: pointer.To("drama")},
		{Title: "Late Work", PublishedYear: pointer.To(2010), Pages: pointer.To(400), Genre: pointer.To("drama")},
	}

	stats, err := service.GetStats(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalBooks)
	require.NotNil(t, stats.FirstBook)
	assert.Equal(t, "Early Work", stats.FirstBook.Title)
	require.NotNil(t, stats.LatestBook)
	assert.Equal(t, "Late Work", stats.LatestBook.Title)
	assert.Equal(t, 300, stats.AveragePages)
	assert.Equal(t, []string{"drama"}, stats.Genres)
}

func TestService_GetStats_UnknownAuthor(t *testing.T) {
	service := newTestService(newStubRepository())

	_, err := service.GetStats(context.Background(), uuidv7.New())

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, 404, ae.HTTPStatus)
}

func TestService_UpdateAuthor_OverwritesOptionalFields(t *testing.T) {
	repo := newStubRepository()
	service := newTestService(repo)

	created := &author.Author{Name: "Original", Email: "o@example.com", Bio: pointer.To("old bio")}
	require.NoError(t, service.CreateAuthor(context.Background(), created))

	// PUT semantics: fields absent from the replacement become NULL.
	replacement := &author.Author{Name: "Renamed", Email: "o@example.com"}
	updated, err := service.UpdateAuthor(context.Background(), created.ID, replacement)

	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Nil(t, updated.Bio)
}

func TestService_DeleteAuthor_NotFound(t *testing.T) {
	service := newTestService(newStubRepository())

	err := service.DeleteAuthor(context.Background(), uuidv7.New())

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, 404, ae.HTTPStatus)
}
