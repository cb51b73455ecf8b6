package models

// Reader is a person eligible to receive loans.
// The identifier is assigned by the persistence layer on first save.
type Reader struct {
	ID   int64
	Name ReaderName
}

// NewReader constructs a Reader pending persistence; ID is zero until saved.
func NewReader(name ReaderName) *Reader {
	return &Reader{Name: name}
}
