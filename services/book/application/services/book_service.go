package services

import (
	"context"
	"fmt"

	bookdomain "github.com/ghuser/lendhub/services/book/domain"
	"github.com/ghuser/lendhub/services/book/domain/models"
	"github.com/ghuser/lendhub/services/book/domain/repositories"
)

// BookService orchestrates creation, retrieval, and removal of catalog books.
type BookService struct {
	repo repositories.BookRepository
}

// NewBookService returns a BookService wired with the given repository.
func NewBookService(repo repositories.BookRepository) *BookService {
	return &BookService{repo: repo}
}

// Create validates and persists a Book, returning it with its assigned ID.
func (s *BookService) Create(ctx context.Context, title string) (*models.Book, error) {
	bookTitle, err := models.NewBookTitle(title)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", bookdomain.ErrInvalidTitle, err)
	}

	book := models.NewBook(bookTitle)
	if err := s.repo.Save(ctx, book); err != nil {
		return nil, fmt.Errorf("save book: %w", err)
	}
	return book, nil
}

// GetByID retrieves one Book. Returns ErrBookNotFound if absent.
func (s *BookService) GetByID(ctx context.Context, id int64) (*models.Book, error) {
	book, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get book: %w", err)
	}
	return book, nil
}

// List returns all books ordered by ascending identifier.
// Returns ErrNoBooks when the catalog is empty.
func (s *BookService) List(ctx context.Context) ([]*models.Book, error) {
	books, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	if len(books) == 0 {
		return nil, bookdomain.ErrNoBooks
	}
	return books, nil
}

// Delete removes a book and returns the removed record.
// Returns ErrBookNotFound if no matching book exists.
func (s *BookService) Delete(ctx context.Context, id int64) (*models.Book, error) {
	book, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get book: %w", err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("delete book: %w", err)
	}
	return book, nil
}
