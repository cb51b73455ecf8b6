package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/lendhub/pkg/app"
	"github.com/ghuser/lendhub/services/reader/application/handlers"
	appsvcs "github.com/ghuser/lendhub/services/reader/application/services"
)

// ReaderRoutes registers registry endpoints on the provided chi router.
func ReaderRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Route("/reader", func(r chi.Router) {
		get := handlers.NewGetReaderHandler(svcs)
		r.Get("/", get.List)
		r.Get("/{id}", get.ByID)
		r.Get("/{id}/issuance", get.Loans)
		r.Post("/", handlers.NewPostReaderHandler(svcs).Execute)
		r.Delete("/{id}", handlers.NewDeleteReaderHandler(svcs).Execute)
	})
}
