package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duynhne/bookstore-service/internal/core/domain"
)

func testCatalog() map[string]*domain.Book {
	return map[string]*domain.Book{
		"1": {Title: "Things Fall Apart", Author: "Chinua Achebe", Reviews: map[string]string{}},
		"2": {Title: "The Divine Comedy", Author: "Dante Alighieri", Reviews: map[string]string{}},
		"3": {Title: "Fairy tales", Author: "Hans Christian Andersen", Reviews: map[string]string{}},
	}
}

func TestBookRepositoryAll(t *testing.T) {
	repo := NewBookRepository(testCatalog(), 0)

	books, err := repo.All(context.Background())
	require.NoError(t, err)
	assert.Len(t, books, 3)
}

func TestBookRepositoryAllNilCatalog(t *testing.T) {
	repo := NewBookRepository(nil, 0)

	books, err := repo.All(context.Background())
	require.NoError(t, err)
	assert.Nil(t, books)
}

func TestBookRepositoryGetByISBN(t *testing.T) {
	repo := NewBookRepository(testCatalog(), 0)

	book, err := repo.GetByISBN(context.Background(), "1")
	require.NoError(t, err)
	require.NotNil(t, book)
	assert.Equal(t, "Things Fall Apart", book.Title)

	missing, err := repo.GetByISBN(context.Background(), "99")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func titlesOf(books []*domain.Book) []string {
	titles := make([]string, 0, len(books))
	for _, b := range books {
		titles = append(titles, b.Title)
	}
	return titles
}

func TestBookRepositoryByAuthor(t *testing.T) {
	repo := NewBookRepository(testCatalog(), 0)

	tests := []struct {
		name   string
		author string
		want   int
	}{
		{name: "exact match", author: "Chinua Achebe", want: 1},
		{name: "case sensitive", author: "chinua achebe", want: 0},
		{name: "unknown author", author: "Nobody", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			books, err := repo.ByAuthor(context.Background(), tt.author)
			require.NoError(t, err)
			if tt.want == 0 {
				assert.Empty(t, books)
				return
			}
			assert.Len(t, books, tt.want)
		})
	}
}

func TestBookRepositoryByTitle(t *testing.T) {
	repo := NewBookRepository(testCatalog(), 0)

	tests := []struct {
		name  string
		title string
		want  []string
	}{
		{name: "substring case-insensitive", title: "the", want: []string{"Things Fall Apart", "The Divine Comedy"}},
		{name: "upper case query", title: "FAIRY", want: []string{"Fairy tales"}},
		{name: "no match", title: "zzz", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			books, err := repo.ByTitle(context.Background(), tt.title)
			require.NoError(t, err)
			if tt.want == nil {
				assert.Empty(t, books)
				return
			}
			assert.ElementsMatch(t, tt.want, titlesOf(books))
		})
	}
}

func TestBookRepositoryFetchDelayCancellation(t *testing.T) {
	repo := NewBookRepository(testCatalog(), time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.All(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
