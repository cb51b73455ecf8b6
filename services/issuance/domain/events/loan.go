package events

import (
	"time"

	"github.com/google/uuid"
)

// Watermill topics published by the loan repository.
const (
	// TopicLoanIssued is published when a new loan is committed.
	TopicLoanIssued = "loan.issued"

	// TopicLoanReturned is published when a loan is closed.
	TopicLoanReturned = "loan.returned"
)

// LoanIssuedEvent is published after a new loan is persisted.
// Consumers subscribe via EventBus.Subscribe(ctx, events.TopicLoanIssued).
type LoanIssuedEvent struct {
	EventID    uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int       `json:"version"`  // Schema version; increment on breaking changes
	LoanID     int64     `json:"loan_id"`
	BookID     int64     `json:"book_id"`
	ReaderID   int64     `json:"reader_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// LoanReturnedEvent is published after a loan's returned-at timestamp is set.
type LoanReturnedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	LoanID     int64     `json:"loan_id"`
	BookID     int64     `json:"book_id"`
	ReaderID   int64     `json:"reader_id"`
	ReturnedAt time.Time `json:"returned_at"`
}
