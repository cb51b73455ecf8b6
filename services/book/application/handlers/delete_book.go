package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/lendhub/pkg/errhttp"
	"github.com/ghuser/lendhub/pkg/httpx"
	appsvcs "github.com/ghuser/lendhub/services/book/application/services"
)

// DeleteBookHandler handles DELETE /book/{id}.
type DeleteBookHandler struct {
	svc *appsvcs.Services
}

// NewDeleteBookHandler returns a DeleteBookHandler backed by the given services.
func NewDeleteBookHandler(svc *appsvcs.Services) *DeleteBookHandler {
	return &DeleteBookHandler{svc: svc}
}

// Execute removes a book and echoes the removed record; 404 when absent.
func (h *DeleteBookHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid book id")
		return
	}

	book, err := h.svc.Book.Delete(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, BookResponse{
		ID:    book.ID,
		Title: book.Title.String(),
	})
}
