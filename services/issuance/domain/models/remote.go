package models

// Book mirrors the wire representation served by the catalog service.
// The issuance service never persists books; it fetches them over the network
// for validation and for the joined loan views.
type Book struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// Reader mirrors the wire representation served by the registry service.
type Reader struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}
