package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/lendhub/pkg/errhttp"
	"github.com/ghuser/lendhub/pkg/httpx"
	appsvcs "github.com/ghuser/lendhub/services/book/application/services"
	"github.com/ghuser/lendhub/services/book/domain/models"
)

// GetBookHandler handles GET /book and GET /book/{id}.
type GetBookHandler struct {
	svc *appsvcs.Services
}

// NewGetBookHandler returns a GetBookHandler backed by the given services.
func NewGetBookHandler(svc *appsvcs.Services) *GetBookHandler {
	return &GetBookHandler{svc: svc}
}

// List returns every book in the catalog; 404 when the catalog is empty.
func (h *GetBookHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.svc.Book.List(r.Context())
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toBookResponses(books))
}

// ByID returns one book; 404 when absent.
func (h *GetBookHandler) ByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid book id")
		return
	}

	book, err := h.svc.Book.GetByID(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, BookResponse{
		ID:    book.ID,
		Title: book.Title.String(),
	})
}

func toBookResponses(books []*models.Book) []BookResponse {
	out := make([]BookResponse, len(books))
	for i, b := range books {
		out[i] = BookResponse{ID: b.ID, Title: b.Title.String()}
	}
	return out
}
