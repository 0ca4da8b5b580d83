package book

import "context"

type Repository interface {
	SearchBooks(context context.Context, params SearchParams) ([]*Book, int, error)
	GetBook(context context.Context, id string) (*Book, error)
	CreateBook(context context.Context, b *Book) error
	UpdateBook(context context.Context, b *Book) error
	DeleteBook(context context.Context, id string) error
}
