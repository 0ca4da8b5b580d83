package author

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/libroteca/api/internal/platform/apperr"
	"github.com/libroteca/api/internal/platform/database/schema"
	"github.com/libroteca/api/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// authorColumns is the SELECT list shared by every author read.
func authorColumns() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s",
		schema.RefAuthor.ID, schema.RefAuthor.Name, schema.RefAuthor.Email, schema.RefAuthor.Bio,
		schema.RefAuthor.Nationality, schema.RefAuthor.BirthYear, schema.RefAuthor.CreatedAt, schema.RefAuthor.UpdatedAt,
	)
}

// bookColumns is the SELECT list for embedded book rows.
func bookColumns() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s",
		schema.RefBook.ID, schema.RefBook.Title, schema.RefBook.Description, schema.RefBook.ISBN,
		schema.RefBook.PublishedYear, schema.RefBook.Genre, schema.RefBook.Pages,
		schema.RefBook.CreatedAt, schema.RefBook.UpdatedAt,
	)
}

func (repository *PostgresRepository) ListAuthors(context context.Context) ([]*Author, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		ORDER BY %s DESC
	`, authorColumns(), schema.RefAuthor.Table, schema.RefAuthor.CreatedAt)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_authors")
	}
	defer rows.Close()

	var authors []*Author
	byID := map[string]*Author{}
	for rows.Next() {
		a := &Author{Books: []Book{}}
		if err := rows.Scan(&a.ID, &a.Name, &a.Email, &a.Bio, &a.Nationality, &a.BirthYear, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_author")
		}
		authors = append(authors, a)
		byID[a.ID] = a
	}

	// Attach every book to its owner in a single pass.
	booksQuery := fmt.Sprintf(`
		SELECT %s, %s
		FROM %s
		ORDER BY %s DESC NULLS LAST
	`, schema.RefBook.AuthorID, bookColumns(), schema.RefBook.Table, schema.RefBook.PublishedYear)

	bookRows, err := repository.db.Query(context, booksQuery)
	if err != nil {
		return nil, dberr.Wrap(err, "list_author_books")
	}
	defer bookRows.Close()

	for bookRows.Next() {
		var ownerID string
		b := Book{}
		if err := bookRows.Scan(&ownerID, &b.ID, &b.Title, &b.Description, &b.ISBN, &b.PublishedYear, &b.Genre, &b.Pages, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_author_book")
		}
		if owner, ok := byID[ownerID]; ok {
			owner.Books = append(owner.Books, b)
		}
	}

	for _, a := range authors {
		a.Count = &Counts{Books: len(a.Books)}
	}

	return authors, nil
}

func (repository *PostgresRepository) GetAuthor(context context.Context, id string) (*Author, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1
	`, authorColumns(), schema.RefAuthor.Table, schema.RefAuthor.ID)

	a := &Author{Books: []Book{}}
	err := repository.db.QueryRow(context, query, id).Scan(
		&a.ID, &a.Name, &a.Email, &a.Bio, &a.Nationality, &a.BirthYear, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_author")
	}

	booksQuery := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s DESC NULLS LAST
	`, bookColumns(), schema.RefBook.Table, schema.RefBook.AuthorID, schema.RefBook.PublishedYear)

	rows, err := repository.db.Query(context, booksQuery, id)
	if err != nil {
		return nil, dberr.Wrap(err, "get_author_books")
	}
	defer rows.Close()

	for rows.Next() {
		b := Book{}
		if err := rows.Scan(&b.ID, &b.Title, &b.Description, &b.ISBN, &b.PublishedYear, &b.Genre, &b.Pages, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_author_book")
		}
		a.Books = append(a.Books, b)
	}

	a.Count = &Counts{Books: len(a.Books)}
	return a, nil
}

func (repository *PostgresRepository) ListBooks(context context.Context, authorID string) ([]Book, error) {
	// Existence check first, so a missing author reads as 404, not an empty list.
	existsQuery := fmt.Sprintf(`SELECT EXISTS(SELECT 1 FROM %s WHERE %s = $1)`,
		schema.RefAuthor.Table, schema.RefAuthor.ID)

	var exists bool
	if err := repository.db.QueryRow(context, existsQuery, authorID).Scan(&exists); err != nil {
		return nil, dberr.Wrap(err, "check_author_exists")
	}
	if !exists {
		return nil, dberr.ErrNotFound
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s ASC NULLS LAST
	`, bookColumns(), schema.RefBook.Table, schema.RefBook.AuthorID, schema.RefBook.PublishedYear)

	rows, err := repository.db.Query(context, query, authorID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_books")
	}
	defer rows.Close()

	books := []Book{}
	for rows.Next() {
		b := Book{}
		if err := rows.Scan(&b.ID, &b.Title, &b.Description, &b.ISBN, &b.PublishedYear, &b.Genre, &b.Pages, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_book")
		}
		books = append(books, b)
	}

	return books, nil
}

func (repository *PostgresRepository) CreateAuthor(context context.Context, a *Author) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.RefAuthor.Table, schema.RefAuthor.ID, schema.RefAuthor.Name, schema.RefAuthor.Email,
		schema.RefAuthor.Bio, schema.RefAuthor.Nationality, schema.RefAuthor.BirthYear,
		schema.RefAuthor.CreatedAt, schema.RefAuthor.UpdatedAt,
		schema.RefAuthor.CreatedAt, schema.RefAuthor.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		a.ID, a.Name, a.Email, a.Bio, a.Nationality, a.BirthYear,
	).Scan(&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if dberr.IsUniqueViolation(err) {
			return apperr.Conflict("Email is already registered")
		}
		return dberr.Wrap(err, "create_author")
	}
	return nil
}

func (repository *PostgresRepository) UpdateAuthor(context context.Context, a *Author) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = NOW()
		WHERE %s = $1
		RETURNING %s, %s
	`,
		schema.RefAuthor.Table,
		schema.RefAuthor.Name, schema.RefAuthor.Email, schema.RefAuthor.Bio,
		schema.RefAuthor.Nationality, schema.RefAuthor.BirthYear, schema.RefAuthor.UpdatedAt,
		schema.RefAuthor.ID,
		schema.RefAuthor.CreatedAt, schema.RefAuthor.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		a.ID, a.Name, a.Email, a.Bio, a.Nationality, a.BirthYear,
	).Scan(&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if dberr.IsUniqueViolation(err) {
			return apperr.Conflict("Email is already registered")
		}
		return dberr.Wrap(err, "update_author")
	}
	return nil
}

func (repository *PostgresRepository) DeleteAuthor(context context.Context, id string) error {
	// Owned books go with the author via ON DELETE CASCADE.
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.RefAuthor.Table, schema.RefAuthor.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_author")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
