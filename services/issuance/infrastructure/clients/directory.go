package clients

import (
	"context"
	"errors"
	"fmt"

	"github.com/ghuser/lendhub/pkg/discovery"
	"github.com/ghuser/lendhub/pkg/remote"
	issuancedomain "github.com/ghuser/lendhub/services/issuance/domain"
	"github.com/ghuser/lendhub/services/issuance/domain/models"
)

// Directory fetches books and readers from their owning services through the
// discovery-resolved lookup client. It satisfies services.Directory.
type Directory struct {
	remote *remote.Client
}

// NewDirectory returns a Directory using the given lookup client.
func NewDirectory(rc *remote.Client) *Directory {
	return &Directory{remote: rc}
}

// GetBook fetches one book from the catalog service. A remote 404 maps to
// ErrBookNotFound; transport failures pass through as unavailability naming
// the books service.
func (d *Directory) GetBook(ctx context.Context, id int64) (*models.Book, error) {
	var book models.Book
	path := fmt.Sprintf("/book/%d", id)
	if err := d.remote.GetJSON(ctx, discovery.ServiceBooks, path, &book); err != nil {
		if errors.Is(err, remote.ErrNotFound) {
			return nil, fmt.Errorf("%w: id %d", issuancedomain.ErrBookNotFound, id)
		}
		return nil, err
	}
	return &book, nil
}

// GetReader fetches one reader from the registry service. A remote 404 maps
// to ErrReaderNotFound; transport failures pass through as unavailability
// naming the readers service.
func (d *Directory) GetReader(ctx context.Context, id int64) (*models.Reader, error) {
	var reader models.Reader
	path := fmt.Sprintf("/reader/%d", id)
	if err := d.remote.GetJSON(ctx, discovery.ServiceReaders, path, &reader); err != nil {
		if errors.Is(err, remote.ErrNotFound) {
			return nil, fmt.Errorf("%w: id %d", issuancedomain.ErrReaderNotFound, id)
		}
		return nil, err
	}
	return &reader, nil
}
