package v1

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duynhne/bookstore-service/internal/core/domain"
	"github.com/duynhne/bookstore-service/internal/core/repository"
)

func newReviewService() *ReviewService {
	catalog := map[string]*domain.Book{
		"1": {Title: "Things Fall Apart", Author: "Chinua Achebe", Reviews: map[string]string{}},
	}
	return NewReviewService(repository.NewBookRepository(catalog, 0))
}

func TestUpsertAddedThenModified(t *testing.T) {
	svc := newReviewService()

	outcome, err := svc.Upsert(context.Background(), "1", "great", "alice")
	require.NoError(t, err)
	assert.Equal(t, ReviewAdded, outcome)

	outcome, err = svc.Upsert(context.Background(), "1", "even better", "alice")
	require.NoError(t, err)
	assert.Equal(t, ReviewModified, outcome)

	// Overwrite, never a second entry for the same user.
	book, err := svc.books.GetByISBN(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"alice": "even better"}, book.Reviews)
}

func TestUpsertFailures(t *testing.T) {
	tests := []struct {
		name    string
		isbn    string
		review  string
		wantErr error
	}{
		{name: "unknown book", isbn: "404", review: "great", wantErr: ErrBookNotFound},
		{name: "empty review", isbn: "1", review: "", wantErr: ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newReviewService()

			_, err := svc.Upsert(context.Background(), tt.isbn, tt.review, "alice")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDeleteReview(t *testing.T) {
	svc := newReviewService()

	_, err := svc.Upsert(context.Background(), "1", "great", "alice")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), "1", "alice"))

	book, err := svc.books.GetByISBN(context.Background(), "1")
	require.NoError(t, err)
	assert.NotContains(t, book.Reviews, "alice")
}

func TestDeleteFailures(t *testing.T) {
	tests := []struct {
		name    string
		isbn    string
		wantErr error
	}{
		{name: "unknown book", isbn: "404", wantErr: ErrBookNotFound},
		{name: "no review by user", isbn: "1", wantErr: ErrReviewNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newReviewService()

			err := svc.Delete(context.Background(), tt.isbn, "alice")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDeleteLeavesOtherReviews(t *testing.T) {
	svc := newReviewService()

	_, err := svc.Upsert(context.Background(), "1", "great", "alice")
	require.NoError(t, err)
	_, err = svc.Upsert(context.Background(), "1", "decent", "bob")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), "1", "alice"))

	book, err := svc.books.GetByISBN(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"bob": "decent"}, book.Reviews)
}
