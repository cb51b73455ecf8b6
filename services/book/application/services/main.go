package services

import (
	"github.com/ghuser/lendhub/pkg/app"
	"github.com/ghuser/lendhub/services/book/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Book *BookService
}

// New wires all book application services with infrastructure from the Application container.
func New(a *app.Application) *Services {
	repo := postgres.NewBookRepository(a.Db)
	return &Services{
		Book: NewBookService(repo),
	}
}
