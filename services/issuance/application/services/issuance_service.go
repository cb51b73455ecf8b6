package services

import (
	"context"
	"fmt"
	"time"

	issuancedomain "github.com/ghuser/lendhub/services/issuance/domain"
	"github.com/ghuser/lendhub/services/issuance/domain/models"
	"github.com/ghuser/lendhub/services/issuance/domain/repositories"
)

// Directory fetches books and readers from their owning services.
// Implemented by infrastructure/clients; faked in tests.
//
// Both methods surface exactly two failure modes: the entity's not-found
// sentinel, or a remote unavailability error naming the unreachable service.
type Directory interface {
	GetBook(ctx context.Context, id int64) (*models.Book, error)
	GetReader(ctx context.Context, id int64) (*models.Reader, error)
}

// LoanDetails is a loan joined with its remotely-fetched book and reader.
type LoanDetails struct {
	Loan   *models.Loan
	Book   *models.Book
	Reader *models.Reader
}

// IssuanceService owns the loan ledger and the cross-service issuance
// workflow: validate the book against the catalog service, validate the
// reader against the registry service, enforce the open-loan limit, and only
// then commit the record. Nothing external is mutated before the commit, so
// a failure at any step needs no compensation.
type IssuanceService struct {
	repo      repositories.LoanRepository
	dir       Directory
	maxActive int
	locks     *readerLocks
}

// NewIssuanceService returns an IssuanceService enforcing at most maxActive
// concurrently open loans per reader.
func NewIssuanceService(repo repositories.LoanRepository, dir Directory, maxActive int) *IssuanceService {
	return &IssuanceService{
		repo:      repo,
		dir:       dir,
		maxActive: maxActive,
		locks:     newReaderLocks(),
	}
}

// Issue runs the issuance workflow for "reader wants book".
//
// Step order is fixed — book existence, reader existence, limit check,
// commit — so callers can tell which precondition failed:
//
//	ErrBookNotFound / ErrReaderNotFound   → the entity does not exist
//	remote.ErrUnavailable                 → the owning service is unreachable
//	ErrLimitExceeded                      → the reader is at the loan limit
//
// The limit check and the insert share a per-reader lock; without it two
// concurrent calls for the same reader could both observe a count below the
// limit and both commit.
func (s *IssuanceService) Issue(ctx context.Context, bookID, readerID int64) (*models.Loan, error) {
	if _, err := s.dir.GetBook(ctx, bookID); err != nil {
		return nil, fmt.Errorf("validate book %d: %w", bookID, err)
	}

	if _, err := s.dir.GetReader(ctx, readerID); err != nil {
		return nil, fmt.Errorf("validate reader %d: %w", readerID, err)
	}

	unlock := s.locks.Lock(readerID)
	defer unlock()

	active, err := s.repo.CountActiveByReader(ctx, readerID)
	if err != nil {
		return nil, fmt.Errorf("count active loans: %w", err)
	}
	if active >= s.maxActive {
		return nil, fmt.Errorf("%w: reader %d already holds %d of %d allowed",
			issuancedomain.ErrLimitExceeded, readerID, active, s.maxActive)
	}

	loan := models.NewLoan(bookID, readerID)
	if err := s.repo.Save(ctx, loan); err != nil {
		return nil, fmt.Errorf("save loan: %w", err)
	}
	return loan, nil
}

// Return closes a loan by setting its returned-at timestamp. The transition
// is one-way: a second Return for the same loan signals ErrAlreadyReturned
// and leaves the original timestamp untouched.
func (s *IssuanceService) Return(ctx context.Context, id int64) (*models.Loan, error) {
	loan, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get loan: %w", err)
	}
	if !loan.Open() {
		return nil, fmt.Errorf("%w: loan %d", issuancedomain.ErrAlreadyReturned, id)
	}

	at := time.Now().UTC()
	if err := s.repo.MarkReturned(ctx, id, at); err != nil {
		return nil, fmt.Errorf("mark returned: %w", err)
	}
	loan.ReturnedAt = &at
	return loan, nil
}

// GetDetails fetches one loan joined with its book and reader. The joins go
// over the network; a reference that went stale since issuance surfaces as
// the entity's not-found error.
func (s *IssuanceService) GetDetails(ctx context.Context, id int64) (*LoanDetails, error) {
	loan, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get loan: %w", err)
	}
	return s.join(ctx, loan)
}

// ListDetails returns every loan joined with book and reader, ordered by
// ascending loan identifier. Returns ErrNoLoans when the ledger is empty.
func (s *IssuanceService) ListDetails(ctx context.Context) ([]*LoanDetails, error) {
	loans, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list loans: %w", err)
	}
	if len(loans) == 0 {
		return nil, issuancedomain.ErrNoLoans
	}

	details := make([]*LoanDetails, len(loans))
	for i, loan := range loans {
		d, err := s.join(ctx, loan)
		if err != nil {
			return nil, err
		}
		details[i] = d
	}
	return details, nil
}

// ListActiveByReader returns the reader's open loans.
// Returns ErrNoLoansForReader when there are none.
func (s *IssuanceService) ListActiveByReader(ctx context.Context, readerID int64) ([]*models.Loan, error) {
	loans, err := s.repo.ListActiveByReader(ctx, readerID)
	if err != nil {
		return nil, fmt.Errorf("list active loans: %w", err)
	}
	if len(loans) == 0 {
		return nil, fmt.Errorf("%w: reader %d", issuancedomain.ErrNoLoansForReader, readerID)
	}
	return loans, nil
}

func (s *IssuanceService) join(ctx context.Context, loan *models.Loan) (*LoanDetails, error) {
	book, err := s.dir.GetBook(ctx, loan.BookID)
	if err != nil {
		return nil, fmt.Errorf("join book %d for loan %d: %w", loan.BookID, loan.ID, err)
	}
	reader, err := s.dir.GetReader(ctx, loan.ReaderID)
	if err != nil {
		return nil, fmt.Errorf("join reader %d for loan %d: %w", loan.ReaderID, loan.ID, err)
	}
	return &LoanDetails{Loan: loan, Book: book, Reader: reader}, nil
}
