package book

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

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

// selectColumns is the SELECT list for book reads with the owner joined in.
func selectColumns() string {
	return fmt.Sprintf(
		"b.%s, b.%s, b.%s, b.%s, b.%s, b.%s, b.%s, b.%s, b.%s, b.%s, a.%s, a.%s, a.%s, a.%s",
		schema.RefBook.ID, schema.RefBook.Title, schema.RefBook.Description, schema.RefBook.ISBN,
		schema.RefBook.PublishedYear, schema.RefBook.Genre, schema.RefBook.Pages, schema.RefBook.AuthorID,
		schema.RefBook.CreatedAt, schema.RefBook.UpdatedAt,
		schema.RefAuthor.ID, schema.RefAuthor.Name, schema.RefAuthor.Email, schema.RefAuthor.Nationality,
	)
}

// fromClause joins books to their owning author.
func fromClause() string {
	return fmt.Sprintf("FROM %s b JOIN %s a ON a.%s = b.%s",
		schema.RefBook.Table, schema.RefAuthor.Table, schema.RefAuthor.ID, schema.RefBook.AuthorID)
}

func scanBook(row interface{ Scan(dest ...any) error }) (*Book, error) {
	b := &Book{Author: &AuthorSummary{}}
	err := row.Scan(
		&b.ID, &b.Title, &b.Description, &b.ISBN, &b.PublishedYear, &b.Genre, &b.Pages, &b.AuthorID,
		&b.CreatedAt, &b.UpdatedAt,
		&b.Author.ID, &b.Author.Name, &b.Author.Email, &b.Author.Nationality,
	)
	return b, err
}

func (repository *PostgresRepository) SearchBooks(context context.Context, params SearchParams) ([]*Book, int, error) {
	conditions := []string{}
	args := []any{}

	if params.Search != "" {
		args = append(args, "%"+params.Search+"%")
		conditions = append(conditions, fmt.Sprintf("b.%s ILIKE $%d", schema.RefBook.Title, len(args)))
	}
	if params.Genre != "" {
		args = append(args, params.Genre)
		conditions = append(conditions, fmt.Sprintf("b.%s = $%d", schema.RefBook.Genre, len(args)))
	}
	if params.AuthorName != "" {
		args = append(args, "%"+params.AuthorName+"%")
		conditions = append(conditions, fmt.Sprintf("a.%s ILIKE $%d", schema.RefAuthor.Name, len(args)))
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := "SELECT count(*) " + fromClause() + whereClause

	pageArgs := slices.Clone(args)
	pageArgs = append(pageArgs, params.Page.Limit, params.Page.Offset())
	pageQuery := fmt.Sprintf("SELECT %s %s%s ORDER BY b.%s %s NULLS LAST LIMIT $%d OFFSET $%d",
		selectColumns(), fromClause(), whereClause,
		params.SortColumn(), params.OrderDirection(),
		len(args)+1, len(args)+2,
	)

	// The count and the page share a predicate but not a result set, so the
	// two round trips run concurrently on separate pool connections.
	group, groupCtx := errgroup.WithContext(context)

	var total int
	group.Go(func() error {
		if err := repository.db.QueryRow(groupCtx, countQuery, args...).Scan(&total); err != nil {
			return dberr.Wrap(err, "count_books")
		}
		return nil
	})

	var books []*Book
	group.Go(func() error {
		rows, err := repository.db.Query(groupCtx, pageQuery, pageArgs...)
		if err != nil {
			return dberr.Wrap(err, "search_books")
		}
		defer rows.Close()

		for rows.Next() {
			b, err := scanBook(rows)
			if err != nil {
				return dberr.Wrap(err, "scan_book")
			}
			books = append(books, b)
		}
		return rows.Err()
	})

	if err := group.Wait(); err != nil {
		return nil, 0, err
	}

	return books, total, nil
}

func (repository *PostgresRepository) GetBook(context context.Context, id string) (*Book, error) {
	query := fmt.Sprintf("SELECT %s %s WHERE b.%s = $1", selectColumns(), fromClause(), schema.RefBook.ID)

	b, err := scanBook(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_book")
	}
	return b, nil
}

func (repository *PostgresRepository) CreateBook(context context.Context, b *Book) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.RefBook.Table, schema.RefBook.ID, schema.RefBook.Title, schema.RefBook.Description,
		schema.RefBook.ISBN, schema.RefBook.PublishedYear, schema.RefBook.Genre, schema.RefBook.Pages,
		schema.RefBook.AuthorID, schema.RefBook.CreatedAt, schema.RefBook.UpdatedAt,
		schema.RefBook.CreatedAt, schema.RefBook.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		b.ID, b.Title, b.Description, b.ISBN, b.PublishedYear, b.Genre, b.Pages, b.AuthorID,
	).Scan(&b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if dberr.IsForeignKeyViolation(err) {
			return apperr.InvalidReference("author")
		}
		return dberr.Wrap(err, "create_book")
	}
	return nil
}

func (repository *PostgresRepository) UpdateBook(context context.Context, b *Book) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = NOW()
		WHERE %s = $1
		RETURNING %s, %s
	`,
		schema.RefBook.Table,
		schema.RefBook.Title, schema.RefBook.Description, schema.RefBook.ISBN,
		schema.RefBook.PublishedYear, schema.RefBook.Genre, schema.RefBook.Pages,
		schema.RefBook.AuthorID, schema.RefBook.UpdatedAt,
		schema.RefBook.ID,
		schema.RefBook.CreatedAt, schema.RefBook.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		b.ID, b.Title, b.Description, b.ISBN, b.PublishedYear, b.Genre, b.Pages, b.AuthorID,
	).Scan(&b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if dberr.IsForeignKeyViolation(err) {
			return apperr.InvalidReference("author")
		}
		return dberr.Wrap(err, "update_book")
	}
	return nil
}

func (repository *PostgresRepository) DeleteBook(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.RefBook.Table, schema.RefBook.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_book")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
