package book

import (
	"context"
	"log/slog"

	"github.com/libroteca/api/internal/platform/validate"
	"github.com/libroteca/api/pkg/uuidv7"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) SearchBooks(context context.Context, params SearchParams) ([]*Book, int, error) {
	return service.repo.SearchBooks(context, params)
}

func (service *Service) GetBook(context context.Context, id string) (*Book, error) {
	validator := &validate.Validator{}
	if err := validator.UUID(FieldID, id).Err(); err != nil {
		return nil, err
	}

	return service.repo.GetBook(context, id)
}

func (service *Service) CreateBook(context context.Context, book *Book) (*Book, error) {
	if err := validateBook(book); err != nil {
		return nil, err
	}

	book.ID = uuidv7.New()
	if err := service.repo.CreateBook(context, book); err != nil {
		return nil, err
	}

	service.logger.Info("book_created",
		slog.String("book_id", book.ID),
		slog.String("title", book.Title),
	)

	// Re-read to embed the owner summary in the response.
	return service.repo.GetBook(context, book.ID)
}

// UpdateBook replaces every mutable field of the book. Optional fields
// absent from the input are written as NULL.
func (service *Service) UpdateBook(context context.Context, id string, book *Book) (*Book, error) {
	validator := &validate.Validator{}
	if err := validator.UUID(FieldID, id).Err(); err != nil {
		return nil, err
	}

	book.ID = id
	if err := validateBook(book); err != nil {
		return nil, err
	}

	if err := service.repo.UpdateBook(context, book); err != nil {
		return nil, err
	}

	service.logger.Info("book_updated", slog.String("book_id", book.ID))
	return service.repo.GetBook(context, book.ID)
}

func (service *Service) DeleteBook(context context.Context, id string) error {
	validator := &validate.Validator{}
	if err := validator.UUID(FieldID, id).Err(); err != nil {
		return err
	}

	if err := service.repo.DeleteBook(context, id); err != nil {
		return err
	}

	service.logger.Warn("book_deleted", slog.String("book_id", id))
	return nil
}

func validateBook(book *Book) error {
	validator := &validate.Validator{}

	validator.
		Required(FieldTitle, book.Title).
		MinLen(FieldTitle, book.Title, 3).
		MaxLen(FieldTitle, book.Title, 255).
		Required(FieldAuthorID, book.AuthorID).
		UUID(FieldAuthorID, book.AuthorID).
		Min(FieldPages, book.Pages, 1)

	return validator.Err()
}
