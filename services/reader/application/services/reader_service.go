package services

import (
	"context"
	"fmt"

	readerdomain "github.com/ghuser/lendhub/services/reader/domain"
	"github.com/ghuser/lendhub/services/reader/domain/models"
	"github.com/ghuser/lendhub/services/reader/domain/repositories"
)

// LoanDirectory fetches a reader's loans from the remote issuance service.
// Implemented by infrastructure/clients; faked in tests.
type LoanDirectory interface {
	// ActiveLoansByReader returns the reader's open loans.
	// Returns ErrNoLoansForReader when the reader has never borrowed, and a
	// remote unavailability error on transport failure.
	ActiveLoansByReader(ctx context.Context, readerID int64) ([]models.Loan, error)
}

// ReaderService orchestrates registry CRUD plus the loan-history fan-out
// into the issuance service.
type ReaderService struct {
	repo  repositories.ReaderRepository
	loans LoanDirectory
}

// NewReaderService returns a ReaderService wired with the given repository
// and remote loan directory.
func NewReaderService(repo repositories.ReaderRepository, loans LoanDirectory) *ReaderService {
	return &ReaderService{repo: repo, loans: loans}
}

// Create validates and persists a Reader, returning it with its assigned ID.
func (s *ReaderService) Create(ctx context.Context, first, last string) (*models.Reader, error) {
	name, err := models.NewReaderName(first, last)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", readerdomain.ErrInvalidReaderName, err)
	}

	reader := models.NewReader(name)
	if err := s.repo.Save(ctx, reader); err != nil {
		return nil, fmt.Errorf("save reader: %w", err)
	}
	return reader, nil
}

// GetByID retrieves one Reader. Returns ErrReaderNotFound if absent.
func (s *ReaderService) GetByID(ctx context.Context, id int64) (*models.Reader, error) {
	reader, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get reader: %w", err)
	}
	return reader, nil
}

// List returns all readers ordered by ascending identifier.
// Returns ErrNoReaders when the registry is empty.
func (s *ReaderService) List(ctx context.Context) ([]*models.Reader, error) {
	readers, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list readers: %w", err)
	}
	if len(readers) == 0 {
		return nil, readerdomain.ErrNoReaders
	}
	return readers, nil
}

// Delete removes a reader and returns the removed record.
// Returns ErrReaderNotFound if no matching reader exists.
func (s *ReaderService) Delete(ctx context.Context, id int64) (*models.Reader, error) {
	reader, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get reader: %w", err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("delete reader: %w", err)
	}
	return reader, nil
}

// ActiveLoans fans out to the issuance service for the reader's open loans.
// The reader itself is not validated locally; the issuance service answers
// for any reader identifier and reports "never borrowed" as not found.
func (s *ReaderService) ActiveLoans(ctx context.Context, readerID int64) ([]models.Loan, error) {
	loans, err := s.loans.ActiveLoansByReader(ctx, readerID)
	if err != nil {
		return nil, fmt.Errorf("fetch loans for reader %d: %w", readerID, err)
	}
	return loans, nil
}
