package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ghuser/lendhub/pkg/database"
	bookdomain "github.com/ghuser/lendhub/services/book/domain"
	"github.com/ghuser/lendhub/services/book/domain/models"
)

// BookRepository implements repositories.BookRepository against PostgreSQL.
type BookRepository struct {
	db *database.Database
}

// NewBookRepository returns a BookRepository backed by the given connection pool.
func NewBookRepository(db *database.Database) *BookRepository {
	return &BookRepository{db: db}
}

// Save inserts a new Book and fills in the generated identifier.
func (r *BookRepository) Save(ctx context.Context, book *models.Book) error {
	const query = `INSERT INTO books (title) VALUES ($1) RETURNING id`
	if err := r.db.DB().QueryRowContext(ctx, query, book.Title.String()).Scan(&book.ID); err != nil {
		return fmt.Errorf("insert book: %w", err)
	}
	return nil
}

// GetByID retrieves a Book by ID. Returns ErrBookNotFound if not found.
func (r *BookRepository) GetByID(ctx context.Context, id int64) (*models.Book, error) {
	const query = `SELECT id, title FROM books WHERE id = $1`

	var (
		book  models.Book
		title string
	)
	if err := r.db.DB().QueryRowContext(ctx, query, id).Scan(&book.ID, &title); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, bookdomain.ErrBookNotFound
		}
		return nil, fmt.Errorf("query book: %w", err)
	}
	book.Title = models.BookTitle(title)
	return &book, nil
}

// ListAll retrieves every book ordered by ascending identifier.
func (r *BookRepository) ListAll(ctx context.Context) ([]*models.Book, error) {
	const query = `SELECT id, title FROM books ORDER BY id`

	rows, err := r.db.DB().QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query books: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var books []*models.Book
	for rows.Next() {
		var (
			book  models.Book
			title string
		)
		if err := rows.Scan(&book.ID, &title); err != nil {
			return nil, fmt.Errorf("scan book: %w", err)
		}
		book.Title = models.BookTitle(title)
		books = append(books, &book)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate books: %w", err)
	}
	return books, nil
}

// Delete removes a book by ID. Returns ErrBookNotFound if no row was removed.
func (r *BookRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM books WHERE id = $1`

	res, err := r.db.DB().ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete book: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete book rows affected: %w", err)
	}
	if affected == 0 {
		return bookdomain.ErrBookNotFound
	}
	return nil
}
