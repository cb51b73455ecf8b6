package repositories

import (
	"context"

	"github.com/ghuser/lendhub/services/reader/domain/models"
)

// ReaderRepository is the persistence interface for the Reader aggregate.
// The domain layer owns this interface; infrastructure implements it.
type ReaderRepository interface {
	// Save inserts a new Reader and assigns its generated identifier.
	Save(ctx context.Context, reader *models.Reader) error

	// GetByID returns ErrReaderNotFound if the reader does not exist.
	GetByID(ctx context.Context, id int64) (*models.Reader, error)

	// ListAll returns every reader ordered by ascending identifier.
	// An empty registry yields an empty slice, not an error.
	ListAll(ctx context.Context) ([]*models.Reader, error)

	// Delete removes a reader by ID. Returns ErrReaderNotFound if absent.
	Delete(ctx context.Context, id int64) error
}
