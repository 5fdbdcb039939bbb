package repository

import (
	"context"
	"strings"
	"time"

	"github.com/duynhne/bookstore-service/internal/core/domain"
)

// MemoryBookRepository implements domain.BookRepository over an in-process
// map. Reads simulate a backend fetch: each call waits fetchDelay before
// answering, honoring context cancellation. Only the calling request is
// suspended.
type MemoryBookRepository struct {
	books      map[string]*domain.Book
	fetchDelay time.Duration
}

// NewBookRepository creates a MemoryBookRepository over the given catalog.
func NewBookRepository(catalog map[string]*domain.Book, fetchDelay time.Duration) *MemoryBookRepository {
	return &MemoryBookRepository{books: catalog, fetchDelay: fetchDelay}
}

// fetch is the single asynchronous-read contract all catalog reads share.
func (r *MemoryBookRepository) fetch(ctx context.Context) error {
	if r.fetchDelay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(r.fetchDelay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// All returns the full catalog keyed by ISBN, or (nil, nil) when the
// repository was constructed without one.
func (r *MemoryBookRepository) All(ctx context.Context) (map[string]*domain.Book, error) {
	if err := r.fetch(ctx); err != nil {
		return nil, err
	}
	if r.books == nil {
		return nil, nil
	}
	return r.books, nil
}

// GetByISBN returns the book with the given ISBN, or (nil, nil) when the
// ISBN is unknown.
func (r *MemoryBookRepository) GetByISBN(ctx context.Context, isbn string) (*domain.Book, error) {
	if err := r.fetch(ctx); err != nil {
		return nil, err
	}
	book, ok := r.books[isbn]
	if !ok {
		return nil, nil
	}
	return book, nil
}

// ByAuthor returns all books whose author matches exactly, or (nil, nil)
// when none match.
func (r *MemoryBookRepository) ByAuthor(ctx context.Context, author string) ([]*domain.Book, error) {
	if err := r.fetch(ctx); err != nil {
		return nil, err
	}
	var matches []*domain.Book
	for _, book := range r.books {
		if book.Author == author {
			matches = append(matches, book)
		}
	}
	return matches, nil
}

// ByTitle returns all books whose title contains the given string
// case-insensitively, or (nil, nil) when none match.
func (r *MemoryBookRepository) ByTitle(ctx context.Context, title string) ([]*domain.Book, error) {
	if err := r.fetch(ctx); err != nil {
		return nil, err
	}
	needle := strings.ToLower(title)
	var matches []*domain.Book
	for _, book := range r.books {
		if strings.Contains(strings.ToLower(book.Title), needle) {
			matches = append(matches, book)
		}
	}
	return matches, nil
}
