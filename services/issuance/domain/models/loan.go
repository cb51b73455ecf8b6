package models

import "time"

// Loan records one book being lent to one reader.
//
// BookID and ReaderID are references into remote services; their existence is
// validated only at creation time by the orchestration workflow and may go
// stale afterwards. ReturnedAt is nil while the loan is open and is set
// exactly once on close.
type Loan struct {
	ID         int64      `json:"id"`
	BookID     int64      `json:"book_id"`
	ReaderID   int64      `json:"reader_id"`
	IssuedAt   time.Time  `json:"issued_at"`
	ReturnedAt *time.Time `json:"returned_at,omitempty"`
}

// NewLoan constructs an open Loan pending persistence; ID is zero until saved.
func NewLoan(bookID, readerID int64) *Loan {
	return &Loan{
		BookID:   bookID,
		ReaderID: readerID,
		IssuedAt: time.Now().UTC(),
	}
}

// Open reports whether the loan has not been returned yet.
func (l *Loan) Open() bool {
	return l.ReturnedAt == nil
}
