package handlers

import (
	"net/http"

	"github.com/ghuser/lendhub/pkg/errhttp"
	"github.com/ghuser/lendhub/pkg/httpx"
	pkgvalidator "github.com/ghuser/lendhub/pkg/validator"
	appsvcs "github.com/ghuser/lendhub/services/book/application/services"
)

// CreateBookRequest is the request body for POST /book.
type CreateBookRequest struct {
	Title string `json:"title" validate:"required,min=1,max=255"`
}

// BookResponse is the wire representation of a catalog book.
type BookResponse struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// PostBookHandler handles POST /book requests.
type PostBookHandler struct {
	svc *appsvcs.Services
}

// NewPostBookHandler returns a PostBookHandler backed by the given services.
func NewPostBookHandler(svc *appsvcs.Services) *PostBookHandler {
	return &PostBookHandler{svc: svc}
}

// Execute adds a new book to the catalog.
func (h *PostBookHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateBookRequest](w, r)
	if !ok {
		return
	}

	book, err := h.svc.Book.Create(r.Context(), req.Title)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, BookResponse{
		ID:    book.ID,
		Title: book.Title.String(),
	})
}
