// Copyright (c) 2026 Libroteca. All rights reserved.
// Author: dev@libroteca.app

package book_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/libroteca/api/internal/catalog/book"
	"github.com/libroteca/api/internal/platform/apperr"
	"github.com/libroteca/api/internal/platform/dberr"
	"github.com/libroteca/api/pkg/pointer"
	"github.com/libroteca/api/pkg/uuidv7"
)

// stubRepository is an in-memory Repository for service tests.
type stubRepository struct {
	books        map[string]*book.Book
	knownAuthors map[string]bool
}

func newStubRepository() *stubRepository {
	return &stubRepository{
		books:        map[string]*book.Book{},
		knownAuthors: map[string]bool{},
	}
}

func (s *stubRepository) SearchBooks(_ context.Context, _ book.SearchParams) ([]*book.Book, int, error) {
	var out []*book.Book
	for _, b := range s.books {
		out = append(out, b)
	}
	return out, len(out), nil
}

func (s *stubRepository) GetBook(_ context.Context, id string) (*book.Book, error) {
	b, ok := s.books[id]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	return b, nil
}

func (s *stubRepository) CreateBook(_ context.Context, b *book.Book) error {
	if !s.knownAuthors[b.AuthorID] {
		return apperr.InvalidReference("author")
	}
	s.books[b.ID] = b
	return nil
}

func (s *stubRepository) UpdateBook(_ context.Context, b *book.Book) error {
	if _, ok := s.books[b.ID]; !ok {
		return dberr.ErrNotFound
	}
	if !s.knownAuthors[b.AuthorID] {
		return apperr.InvalidReference("author")
	}
	s.books[b.ID] = b
	return nil
}

func (s *stubRepository) DeleteBook(_ context.Context, id string) error {
	if _, ok := s.books[id]; !ok {
		return dberr.ErrNotFound
	}
	delete(s.books, id)
	return nil
}

func newTestService(repo book.Repository) *book.Service {
	return book.NewService(repo, slog.Default())
}

func TestService_CreateBook(t *testing.T) {
	repo := newStubRepository()
	service := newTestService(repo)

	authorID := uuidv7.New()
	repo.knownAuthors[authorID] = true

	created, err := service.CreateBook(context.Background(), &book.Book{
		Title:    "Parable of the Sower",
		AuthorID: authorID,
		Pages:    pointer.To(345),
	})

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Parable of the Sower", created.Title)
}

func TestService_CreateBook_Validation(t *testing.T) {
	repo := newStubRepository()
	service := newTestService(repo)

	authorID := uuidv7.New()
	repo.knownAuthors[authorID] = true

	tests := []struct {
		name  string
		input book.Book
		field string
	}{
		{"missing_title", book.Book{AuthorID: authorID}, "title"},
		{"short_title", book.Book{Title: "Go", AuthorID: authorID}, "title"},
		{"missing_author", book.Book{Title: "Orphaned Work"}, "authorId"},
		{"malformed_author_id", book.Book{Title: "Bad Ref", AuthorID: "not-a-uuid"}, "authorId"},
		{"zero_pages", book.Book{Title: "Empty Tome", AuthorID: authorID, Pages: pointer.To(0)}, "pages"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.CreateBook(context.Background(), &tt.input)

			require.Error(t, err)
			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "VALIDATION_ERROR", ae.Code)
			assert.Equal(t, tt.field, ae.Details[0].Field)
		})
	}
}

func TestService_CreateBook_UnknownAuthor(t *testing.T) {
	service := newTestService(newStubRepository())

	// Well-formed UUID, but no such author exists.
	_, err := service.CreateBook(context.Background(), &book.Book{
		Title:    "Homeless Book",
		AuthorID: uuidv7.New(),
	})

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "INVALID_REFERENCE", ae.Code)
	assert.Equal(t, 400, ae.HTTPStatus)
}

func TestService_UpdateBook_OverwritesOptionalFields(t *testing.T) {
	repo := newStubRepository()
	service := newTestService(repo)

	authorID := uuidv7.New()
	repo.knownAuthors[authorID] = true

	created, err := service.CreateBook(context.Background(), &book.Book{
		Title:    "First Edition",
		AuthorID: authorID,
		Genre:    pointer.To("scifi"),
		Pages:    pointer.To(200),
	})
	require.NoError(t, err)

	// PUT semantics: fields absent from the replacement become NULL.
	updated, err := service.UpdateBook(context.Background(), created.ID, &book.Book{
		Title:    "Second Edition",
		AuthorID: authorID,
	})

	require.NoError(t, err)
	assert.Equal(t, "Second Edition", updated.Title)
	assert.Nil(t, updated.Genre)
	assert.Nil(t, updated.Pages)
}

func TestService_GetBook_NotFound(t *testing.T) {
	service := newTestService(newStubRepository())

	_, err := service.GetBook(context.Background(), uuidv7.New())

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, 404, ae.HTTPStatus)
}

func TestService_DeleteBook_NotFound(t *testing.T) {
	service := newTestService(newStubRepository())

	err := service.DeleteBook(context.Background(), uuidv7.New())

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, 404, ae.HTTPStatus)
}
