package author

import "context"

type Repository interface {
	ListAuthors(context context.Context) ([]*Author, error)
	GetAuthor(context context.Context, id string) (*Author, error)
	ListBooks(context context.Context, authorID string) ([]Book, error)
	CreateAuthor(context context.Context, a *Author) error
	UpdateAuthor(context context.Context, a *Author) error
	DeleteAuthor(context context.Context, id string) error
}
