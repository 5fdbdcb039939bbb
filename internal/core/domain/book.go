package domain

import "context"

// Book is a catalog entry. The catalog is keyed by ISBN, so the ISBN is
// not repeated inside the record. Reviews map reviewer username to the
// review text; at most one entry per username.
type Book struct {
	Title   string            `json:"title"`
	Author  string            `json:"author"`
	Reviews map[string]string `json:"reviews"`
}

// BookRepository defines the data-access contract for the book catalog.
// Implementations live in internal/core/repository.
//
// All read methods take a context because catalog reads model a remote
// fetch and must be cancellable. Lookup methods return (nil, nil) when
// nothing matches.
type BookRepository interface {
	// All returns the full catalog keyed by ISBN.
	All(ctx context.Context) (map[string]*Book, error)

	// GetByISBN returns the book with the given ISBN.
	GetByISBN(ctx context.Context, isbn string) (*Book, error)

	// ByAuthor returns all books whose author matches exactly. Matches
	// are a flat list; the catalog key is not part of the records.
	ByAuthor(ctx context.Context, author string) ([]*Book, error)

	// ByTitle returns all books whose title contains the given string,
	// case-insensitively.
	ByTitle(ctx context.Context, title string) ([]*Book, error)
}
