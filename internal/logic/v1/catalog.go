package v1

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/duynhne/bookstore-service/internal/core/domain"
	"github.com/duynhne/bookstore-service/middleware"
)

// CatalogService implements the public bookstore operations: catalog
// reads and user self-registration. It depends on repository interfaces
// injected via the constructor and never touches storage directly.
type CatalogService struct {
	books domain.BookRepository
	users domain.UserRepository
}

// NewCatalogService creates a CatalogService with the given repositories.
func NewCatalogService(books domain.BookRepository, users domain.UserRepository) *CatalogService {
	return &CatalogService{books: books, users: users}
}

// Register adds a new user. Both fields must be present and the username
// must not be taken.
func (s *CatalogService) Register(ctx context.Context, req domain.CredentialsRequest) error {
	ctx, span := middleware.StartSpan(ctx, "catalog.register", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.String("username", req.Username),
	))
	defer span.End()

	if req.Username == "" || req.Password == "" {
		span.SetAttributes(attribute.Bool("request.valid", false))
		return fmt.Errorf("register: username and password required: %w", ErrValidation)
	}

	exists, err := s.users.Exists(ctx, req.Username)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("check existing user: %w", err)
	}
	if exists {
		span.SetAttributes(attribute.Bool("registration.success", false))
		return fmt.Errorf("register user %q: %w", req.Username, ErrUserExists)
	}

	if err := s.users.Create(ctx, domain.User{Username: req.Username, Password: req.Password}); err != nil {
		span.RecordError(err)
		return fmt.Errorf("insert user: %w", err)
	}

	span.SetAttributes(attribute.Bool("registration.success", true))
	span.AddEvent("user.registered")
	return nil
}

// ListAll returns the full catalog keyed by ISBN.
func (s *CatalogService) ListAll(ctx context.Context) (map[string]*domain.Book, error) {
	ctx, span := middleware.StartSpan(ctx, "catalog.list_all", trace.WithAttributes(
		attribute.String("layer", "logic"),
	))
	defer span.End()

	books, err := s.books.All(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	if books == nil {
		return nil, fmt.Errorf("fetch catalog: %w", ErrStoreUnavailable)
	}

	span.SetAttributes(attribute.Int("catalog.size", len(books)))
	return books, nil
}

// GetByISBN returns the book with the given ISBN.
func (s *CatalogService) GetByISBN(ctx context.Context, isbn string) (*domain.Book, error) {
	ctx, span := middleware.StartSpan(ctx, "catalog.get_by_isbn", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.String("book.isbn", isbn),
	))
	defer span.End()

	book, err := s.books.GetByISBN(ctx, isbn)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("fetch book %q: %w", isbn, err)
	}
	if book == nil {
		return nil, fmt.Errorf("book with ISBN %s: %w", isbn, ErrBookNotFound)
	}
	return book, nil
}

// ByAuthor returns all books by the given author, exact match.
func (s *CatalogService) ByAuthor(ctx context.Context, author string) ([]*domain.Book, error) {
	ctx, span := middleware.StartSpan(ctx, "catalog.by_author", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.String("book.author", author),
	))
	defer span.End()

	books, err := s.books.ByAuthor(ctx, author)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("fetch books by author %q: %w", author, err)
	}
	if len(books) == 0 {
		return nil, fmt.Errorf("books by author %s: %w", author, ErrBookNotFound)
	}
	return books, nil
}

// ByTitle returns all books whose title contains the given string,
// case-insensitively.
func (s *CatalogService) ByTitle(ctx context.Context, title string) ([]*domain.Book, error) {
	ctx, span := middleware.StartSpan(ctx, "catalog.by_title", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.String("book.title", title),
	))
	defer span.End()

	books, err := s.books.ByTitle(ctx, title)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("fetch books by title %q: %w", title, err)
	}
	if len(books) == 0 {
		return nil, fmt.Errorf("books with title containing %s: %w", title, ErrBookNotFound)
	}
	return books, nil
}

// Reviews returns the review map of the book with the given ISBN.
// The book must exist and have at least one review.
func (s *CatalogService) Reviews(ctx context.Context, isbn string) (map[string]string, error) {
	ctx, span := middleware.StartSpan(ctx, "catalog.reviews", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.String("book.isbn", isbn),
	))
	defer span.End()

	book, err := s.books.GetByISBN(ctx, isbn)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("fetch book %q: %w", isbn, err)
	}
	if book == nil {
		return nil, fmt.Errorf("book with ISBN %s: %w", isbn, ErrBookNotFound)
	}
	if len(book.Reviews) == 0 {
		return nil, fmt.Errorf("reviews for ISBN %s: %w", isbn, ErrNoReviews)
	}

	span.SetAttributes(attribute.Int("book.review_count", len(book.Reviews)))
	return book.Reviews, nil
}
