package repositories

import (
	"context"

	"github.com/ghuser/lendhub/services/book/domain/models"
)

// BookRepository is the persistence interface for the Book aggregate.
// The domain layer owns this interface; infrastructure implements it.
type BookRepository interface {
	// Save inserts a new Book and assigns its generated identifier.
	Save(ctx context.Context, book *models.Book) error

	// GetByID returns ErrBookNotFound if the book does not exist.
	GetByID(ctx context.Context, id int64) (*models.Book, error)

	// ListAll returns every book ordered by ascending identifier.
	// An empty catalog yields an empty slice, not an error.
	ListAll(ctx context.Context) ([]*models.Book, error)

	// Delete removes a book by ID. Returns ErrBookNotFound if absent.
	Delete(ctx context.Context, id int64) error
}
