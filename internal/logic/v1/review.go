package v1

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/duynhne/bookstore-service/internal/core/domain"
	"github.com/duynhne/bookstore-service/middleware"
)

// ReviewOutcome distinguishes a first review from an overwrite.
type ReviewOutcome int

const (
	ReviewAdded ReviewOutcome = iota
	ReviewModified
)

// ReviewService implements the authenticated review operations. Callers
// must pass the username taken from the authenticated session, never
// from request input.
type ReviewService struct {
	books domain.BookRepository
}

// NewReviewService creates a ReviewService over the given catalog.
func NewReviewService(books domain.BookRepository) *ReviewService {
	return &ReviewService{books: books}
}

// Upsert inserts or overwrites the user's review on a book. A book keeps
// at most one review per username.
func (s *ReviewService) Upsert(ctx context.Context, isbn, reviewText, username string) (ReviewOutcome, error) {
	ctx, span := middleware.StartSpan(ctx, "review.upsert", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.String("book.isbn", isbn),
		attribute.String("user.name", username),
	))
	defer span.End()

	if reviewText == "" {
		span.SetAttributes(attribute.Bool("request.valid", false))
		return 0, fmt.Errorf("upsert review: review content required: %w", ErrValidation)
	}

	book, err := s.books.GetByISBN(ctx, isbn)
	if err != nil {
		span.RecordError(err)
		return 0, fmt.Errorf("fetch book %q: %w", isbn, err)
	}
	if book == nil {
		return 0, fmt.Errorf("book with ISBN %s: %w", isbn, ErrBookNotFound)
	}

	outcome := ReviewAdded
	if _, ok := book.Reviews[username]; ok {
		outcome = ReviewModified
	}
	book.Reviews[username] = reviewText

	span.SetAttributes(attribute.Bool("review.modified", outcome == ReviewModified))
	return outcome, nil
}

// Delete removes the user's review from a book. The book must exist and
// the user must have an existing review on it.
func (s *ReviewService) Delete(ctx context.Context, isbn, username string) error {
	ctx, span := middleware.StartSpan(ctx, "review.delete", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.String("book.isbn", isbn),
		attribute.String("user.name", username),
	))
	defer span.End()

	book, err := s.books.GetByISBN(ctx, isbn)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("fetch book %q: %w", isbn, err)
	}
	if book == nil {
		return fmt.Errorf("book with ISBN %s: %w", isbn, ErrBookNotFound)
	}

	if _, ok := book.Reviews[username]; !ok {
		return fmt.Errorf("review for ISBN %s by %s: %w", isbn, username, ErrReviewNotFound)
	}
	delete(book.Reviews, username)

	span.AddEvent("review.deleted")
	return nil
}
