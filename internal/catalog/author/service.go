package author

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

func (service *Service) ListAuthors(context context.Context) ([]*Author, error) {
	return service.repo.ListAuthors(context)
}

func (service *Service) GetAuthor(context context.Context, id string) (*Author, error) {
	validator := &validate.Validator{}
	if err := validator.UUID(FieldID, id).Err(); err != nil {
		return nil, err
	}

	return service.repo.GetAuthor(context, id)
}

// GetStats loads the author's books in publication order and reduces them
// to the aggregate statistics.
func (service *Service) GetStats(context context.Context, id string) (*Stats, error) {
	validator := &validate.Validator{}
	if err := validator.UUID(FieldID, id).Err(); err != nil {
		return nil, err
	}

	books, err := service.repo.ListBooks(context, id)
	if err != nil {
		return nil, err
	}

	stats := ComputeStats(books)
	return &stats, nil
}

func (service *Service) CreateAuthor(context context.Context, author *Author) error {
	if err := validateAuthor(author); err != nil {
		return err
	}

	author.ID = uuidv7.New()
	if err := service.repo.CreateAuthor(context, author); err != nil {
		return err
	}

	// A new author owns no books yet.
	author.Books = []Book{}
	author.Count = &Counts{Books: 0}

	service.logger.Info("author_created",
		slog.String("author_id", author.ID),
		slog.String("name", author.Name),
	)
	return nil
}

// UpdateAuthor replaces every mutable field of the author. Optional fields
// absent from the input are written as NULL.
func (service *Service) UpdateAuthor(context context.Context, id string, author *Author) (*Author, error) {
	validator := &validate.Validator{}
	if err := validator.UUID(FieldID, id).Err(); err != nil {
		return nil, err
	}

	author.ID = id
	if err := validateAuthor(author); err != nil {
		return nil, err
	}

	if err := service.repo.UpdateAuthor(context, author); err != nil {
		return nil, err
	}

	service.logger.Info("author_updated", slog.String("author_id", author.ID))

	// Re-read to embed the book list and count in the response.
	return service.repo.GetAuthor(context, author.ID)
}

func (service *Service) DeleteAuthor(context context.Context, id string) error {
	validator := &validate.Validator{}
	if err := validator.UUID(FieldID, id).Err(); err != nil {
		return err
	}

	if err := service.repo.DeleteAuthor(context, id); err != nil {
		return err
	}

	service.logger.Warn("author_deleted", slog.String("author_id", id))
	return nil
}

func validateAuthor(author *Author) error {
	validator := &validate.Validator{}

	validator.
		Required(FieldName, author.Name).
		MaxLen(FieldName, author.Name, 200).
		Required(FieldEmail, author.Email).
		Email(FieldEmail, author.Email)

	return validator.Err()
}
