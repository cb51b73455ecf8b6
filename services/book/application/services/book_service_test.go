package services

import (
	"context"
	"errors"
	"sort"
	"testing"

	bookdomain "github.com/ghuser/lendhub/services/book/domain"
	"github.com/ghuser/lendhub/services/book/domain/models"
)

type memBookRepo struct {
	nextID int64
	books  map[int64]*models.Book
}

func newMemBookRepo() *memBookRepo {
	return &memBookRepo{books: make(map[int64]*models.Book)}
}

func (r *memBookRepo) Save(_ context.Context, book *models.Book) error {
	r.nextID++
	book.ID = r.nextID
	cp := *book
	r.books[book.ID] = &cp
	return nil
}

func (r *memBookRepo) GetByID(_ context.Context, id int64) (*models.Book, error) {
	book, ok := r.books[id]
	if !ok {
		return nil, bookdomain.ErrBookNotFound
	}
	cp := *book
	return &cp, nil
}

func (r *memBookRepo) ListAll(_ context.Context) ([]*models.Book, error) {
	out := make([]*models.Book, 0, len(r.books))
	for _, book := range r.books {
		cp := *book
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memBookRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.books[id]; !ok {
		return bookdomain.ErrBookNotFound
	}
	delete(r.books, id)
	return nil
}

func TestBookService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("valid title gets an identifier", func(t *testing.T) {
		svc := NewBookService(newMemBookRepo())
		book, err := svc.Create(ctx, "Dune")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if book.ID == 0 {
			t.Fatal("expected assigned book ID")
		}
		if book.Title.String() != "Dune" {
			t.Fatalf("expected title %q, got %q", "Dune", book.Title.String())
		}
	})

	t.Run("blank title is rejected", func(t *testing.T) {
		svc := NewBookService(newMemBookRepo())
		_, err := svc.Create(ctx, "   ")
		if !errors.Is(err, bookdomain.ErrInvalidTitle) {
			t.Fatalf("expected ErrInvalidTitle, got %v", err)
		}
	})
}

func TestBookService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("empty catalog reports no books", func(t *testing.T) {
		svc := NewBookService(newMemBookRepo())
		if _, err := svc.List(ctx); !errors.Is(err, bookdomain.ErrNoBooks) {
			t.Fatalf("expected ErrNoBooks, got %v", err)
		}
	})

	t.Run("orders by ascending identifier", func(t *testing.T) {
		svc := NewBookService(newMemBookRepo())
		for _, title := range []string{"Dune", "Neuromancer", "Hyperion"} {
			if _, err := svc.Create(ctx, title); err != nil {
				t.Fatalf("create failed: %v", err)
			}
		}
		books, err := svc.List(ctx)
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(books) != 3 {
			t.Fatalf("expected 3 books, got %d", len(books))
		}
		for i := 1; i < len(books); i++ {
			if books[i-1].ID >= books[i].ID {
				t.Fatalf("expected ascending ids, got %d then %d", books[i-1].ID, books[i].ID)
			}
		}
	})
}

func TestBookService_GetByID(t *testing.T) {
	ctx := context.Background()
	svc := NewBookService(newMemBookRepo())

	if _, err := svc.GetByID(ctx, 42); !errors.Is(err, bookdomain.ErrBookNotFound) {
		t.Fatalf("expected ErrBookNotFound, got %v", err)
	}
}

func TestBookService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the removed book", func(t *testing.T) {
		svc := NewBookService(newMemBookRepo())
		created, err := svc.Create(ctx, "Dune")
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
		removed, err := svc.Delete(ctx, created.ID)
		if err != nil {
			t.Fatalf("delete failed: %v", err)
		}
		if removed.ID != created.ID || removed.Title != created.Title {
			t.Fatalf("expected removed book %+v, got %+v", created, removed)
		}
	})

	t.Run("unknown book reports not found", func(t *testing.T) {
		svc := NewBookService(newMemBookRepo())
		if _, err := svc.Delete(ctx, 42); !errors.Is(err, bookdomain.ErrBookNotFound) {
			t.Fatalf("expected ErrBookNotFound, got %v", err)
		}
	})
}
