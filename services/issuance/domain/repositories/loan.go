package repositories

import (
	"context"
	"time"

	"github.com/ghuser/lendhub/services/issuance/domain/models"
)

// LoanRepository is the persistence interface for the Loan aggregate.
// The domain layer owns this interface; infrastructure implements it.
//
// The repository serializes individual statements but provides no
// cross-statement locking; callers that need read-then-write atomicity (the
// limit check before Save) must serialize above this interface.
type LoanRepository interface {
	// Save inserts a new open Loan and assigns its generated identifier.
	// No validation is performed here; the orchestration workflow validates
	// the book and reader references before calling Save.
	Save(ctx context.Context, loan *models.Loan) error

	// GetByID returns ErrLoanNotFound if the loan does not exist.
	GetByID(ctx context.Context, id int64) (*models.Loan, error)

	// ListAll returns every loan ordered by ascending identifier.
	// An empty ledger yields an empty slice, not an error.
	ListAll(ctx context.Context) ([]*models.Loan, error)

	// ListActiveByReader returns the reader's open loans (returned-at unset)
	// ordered by ascending identifier.
	ListActiveByReader(ctx context.Context, readerID int64) ([]*models.Loan, error)

	// CountActiveByReader counts the reader's open loans.
	CountActiveByReader(ctx context.Context, readerID int64) (int, error)

	// MarkReturned sets the loan's returned-at timestamp. The write is
	// guarded so a set timestamp is never overwritten: returns
	// ErrAlreadyReturned when it is already set and ErrLoanNotFound when the
	// loan does not exist.
	MarkReturned(ctx context.Context, id int64, at time.Time) error
}
