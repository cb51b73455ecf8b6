package models

import "time"

// Loan mirrors the wire representation of a loan record owned by the issuance
// service. The reader service never persists loans; it only fetches them over
// the network for the loan-history view.
type Loan struct {
	ID         int64      `json:"id"`
	BookID     int64      `json:"book_id"`
	ReaderID   int64      `json:"reader_id"`
	IssuedAt   time.Time  `json:"issued_at"`
	ReturnedAt *time.Time `json:"returned_at,omitempty"`
}
