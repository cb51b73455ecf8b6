package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/lendhub/pkg/app"
	"github.com/ghuser/lendhub/services/book/application/handlers"
	appsvcs "github.com/ghuser/lendhub/services/book/application/services"
)

// BookRoutes registers catalog endpoints on the provided chi router.
func BookRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Route("/book", func(r chi.Router) {
		get := handlers.NewGetBookHandler(svcs)
		r.Get("/", get.List)
		r.Get("/{id}", get.ByID)
		r.Post("/", handlers.NewPostBookHandler(svcs).Execute)
		r.Delete("/{id}", handlers.NewDeleteBookHandler(svcs).Execute)
	})
}
