package models

// Book is the catalog entry eligible for loan.
// The identifier is assigned by the persistence layer on first save and is
// never reused.
type Book struct {
	ID    int64
	Title BookTitle
}

// NewBook constructs a Book pending persistence; ID is zero until saved.
func NewBook(title BookTitle) *Book {
	return &Book{Title: title}
}
