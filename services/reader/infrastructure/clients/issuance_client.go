package clients

import (
	"context"
	"errors"
	"fmt"

	"github.com/ghuser/lendhub/pkg/discovery"
	"github.com/ghuser/lendhub/pkg/remote"
	readerdomain "github.com/ghuser/lendhub/services/reader/domain"
	"github.com/ghuser/lendhub/services/reader/domain/models"
)

// IssuanceClient fetches loan records from the issuance service through the
// discovery-resolved lookup client. It satisfies services.LoanDirectory.
type IssuanceClient struct {
	remote *remote.Client
}

// NewIssuanceClient returns an IssuanceClient using the given lookup client.
func NewIssuanceClient(rc *remote.Client) *IssuanceClient {
	return &IssuanceClient{remote: rc}
}

// ActiveLoansByReader fetches the reader's open loans from the issuance
// service. A remote 404 means the reader has never borrowed and maps to
// ErrNoLoansForReader; transport failures pass through as unavailability.
func (c *IssuanceClient) ActiveLoansByReader(ctx context.Context, readerID int64) ([]models.Loan, error) {
	var loans []models.Loan
	path := fmt.Sprintf("/issuance/reader/%d", readerID)
	if err := c.remote.GetJSON(ctx, discovery.ServiceIssuance, path, &loans); err != nil {
		if errors.Is(err, remote.ErrNotFound) {
			return nil, fmt.Errorf("%w: reader %d", readerdomain.ErrNoLoansForReader, readerID)
		}
		return nil, err
	}
	return loans, nil
}
