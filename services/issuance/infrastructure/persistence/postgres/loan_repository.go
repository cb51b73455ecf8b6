package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	"github.com/ghuser/lendhub/pkg/database"
	"github.com/ghuser/lendhub/pkg/events"
	issuancedomain "github.com/ghuser/lendhub/services/issuance/domain"
	domainevents "github.com/ghuser/lendhub/services/issuance/domain/events"
	"github.com/ghuser/lendhub/services/issuance/domain/models"
)

// LoanRepository implements repositories.LoanRepository against PostgreSQL.
type LoanRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewLoanRepository returns a LoanRepository backed by the given connection
// pool and event bus. The bus is used to publish loan lifecycle events in the
// same transaction as the write.
func NewLoanRepository(db *database.Database, bus *events.EventBus) *LoanRepository {
	return &LoanRepository{db: db, bus: bus}
}

// Save persists a new open Loan, fills in the generated identifier, and
// publishes a LoanIssuedEvent within the same transaction.
func (r *LoanRepository) Save(ctx context.Context, loan *models.Loan) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		const query = `
			INSERT INTO loans (book_id, reader_id, issued_at)
			VALUES ($1, $2, $3)
			RETURNING id
		`
		if err := tx.QueryRowContext(ctx, query, loan.BookID, loan.ReaderID, loan.IssuedAt).
			Scan(&loan.ID); err != nil {
			return fmt.Errorf("insert loan: %w", err)
		}

		if r.bus != nil {
			if err := r.publishIssued(tx, loan); err != nil {
				return fmt.Errorf("publish loan issued: %w", err)
			}
		}
		return nil
	})
}

// GetByID retrieves a Loan by ID. Returns ErrLoanNotFound if not found.
func (r *LoanRepository) GetByID(ctx context.Context, id int64) (*models.Loan, error) {
	const query = `
		SELECT id, book_id, reader_id, issued_at, returned_at
		FROM loans WHERE id = $1
	`
	loan, err := scanLoan(r.db.DB().QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, issuancedomain.ErrLoanNotFound
		}
		return nil, fmt.Errorf("query loan: %w", err)
	}
	return loan, nil
}

// ListAll retrieves every loan ordered by ascending identifier.
func (r *LoanRepository) ListAll(ctx context.Context) ([]*models.Loan, error) {
	const query = `
		SELECT id, book_id, reader_id, issued_at, returned_at
		FROM loans ORDER BY id
	`
	return r.queryLoans(ctx, query)
}

// ListActiveByReader retrieves the reader's open loans ordered by ascending identifier.
func (r *LoanRepository) ListActiveByReader(ctx context.Context, readerID int64) ([]*models.Loan, error) {
	const query = `
		SELECT id, book_id, reader_id, issued_at, returned_at
		FROM loans WHERE reader_id = $1 AND returned_at IS NULL
		ORDER BY id
	`
	return r.queryLoans(ctx, query, readerID)
}

// CountActiveByReader counts the reader's open loans.
func (r *LoanRepository) CountActiveByReader(ctx context.Context, readerID int64) (int, error) {
	const query = `SELECT COUNT(*) FROM loans WHERE reader_id = $1 AND returned_at IS NULL`

	var count int
	if err := r.db.DB().QueryRowContext(ctx, query, readerID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count active loans: %w", err)
	}
	return count, nil
}

// MarkReturned sets the loan's returned-at timestamp and publishes a
// LoanReturnedEvent in the same transaction. The UPDATE is guarded by
// "returned_at IS NULL" so a set timestamp is never overwritten, even if two
// close attempts race past the service-level check.
func (r *LoanRepository) MarkReturned(ctx context.Context, id int64, at time.Time) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		const query = `
			UPDATE loans SET returned_at = $2
			WHERE id = $1 AND returned_at IS NULL
			RETURNING book_id, reader_id
		`
		var bookID, readerID int64
		if err := tx.QueryRowContext(ctx, query, id, at).Scan(&bookID, &readerID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return r.classifyMissedUpdate(ctx, tx, id)
			}
			return fmt.Errorf("update loan: %w", err)
		}

		if r.bus != nil {
			if err := r.publishReturned(tx, id, bookID, readerID, at); err != nil {
				return fmt.Errorf("publish loan returned: %w", err)
			}
		}
		return nil
	})
}

// classifyMissedUpdate distinguishes "loan absent" from "loan already closed"
// after a guarded UPDATE matched no row.
func (r *LoanRepository) classifyMissedUpdate(ctx context.Context, tx *sql.Tx, id int64) error {
	const query = `SELECT EXISTS (SELECT 1 FROM loans WHERE id = $1)`

	var exists bool
	if err := tx.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return fmt.Errorf("check loan exists: %w", err)
	}
	if !exists {
		return issuancedomain.ErrLoanNotFound
	}
	return issuancedomain.ErrAlreadyReturned
}

func (r *LoanRepository) queryLoans(ctx context.Context, query string, args ...any) ([]*models.Loan, error) {
	rows, err := r.db.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query loans: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var loans []*models.Loan
	for rows.Next() {
		loan, err := scanLoan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan loan: %w", err)
		}
		loans = append(loans, loan)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate loans: %w", err)
	}
	return loans, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLoan(row rowScanner) (*models.Loan, error) {
	var (
		loan     models.Loan
		returned sql.NullTime
	)
	if err := row.Scan(&loan.ID, &loan.BookID, &loan.ReaderID, &loan.IssuedAt, &returned); err != nil {
		return nil, err
	}
	if returned.Valid {
		t := returned.Time
		loan.ReturnedAt = &t
	}
	return &loan, nil
}

func (r *LoanRepository) publishIssued(tx *sql.Tx, loan *models.Loan) error {
	event := domainevents.LoanIssuedEvent{
		EventID:    uuid.New(),
		Version:    1,
		LoanID:     loan.ID,
		BookID:     loan.BookID,
		ReaderID:   loan.ReaderID,
		OccurredAt: loan.IssuedAt,
	}
	return r.publish(tx, domainevents.TopicLoanIssued, event, event.EventID)
}

func (r *LoanRepository) publishReturned(tx *sql.Tx, loanID, bookID, readerID int64, at time.Time) error {
	event := domainevents.LoanReturnedEvent{
		EventID:    uuid.New(),
		Version:    1,
		LoanID:     loanID,
		BookID:     bookID,
		ReaderID:   readerID,
		ReturnedAt: at,
	}
	return r.publish(tx, domainevents.TopicLoanReturned, event, event.EventID)
}

func (r *LoanRepository) publish(tx *sql.Tx, topic string, event any, eventID uuid.UUID) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", eventID.String())
	msg.Metadata.Set("event_version", "1")

	p, err := r.bus.NewTxPublisher(tx)
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	return p.Publish(topic, msg)
}
