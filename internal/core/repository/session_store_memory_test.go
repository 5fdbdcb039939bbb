package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duynhne/bookstore-service/internal/core/domain"
)

func TestSessionStoreCreateAndGet(t *testing.T) {
	store := NewSessionStore()

	sess := domain.Session{
		ID:          "sid-1",
		Username:    "alice",
		AccessToken: "token",
	}
	require.NoError(t, store.Create(context.Background(), sess))

	got, err := store.Get(context.Background(), "sid-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, "token", got.AccessToken)
}

func TestSessionStoreCreateRejectsIncomplete(t *testing.T) {
	store := NewSessionStore()

	err := store.Create(context.Background(), domain.Session{ID: "sid-1"})
	assert.Error(t, err)
}

func TestSessionStoreGetUnknown(t *testing.T) {
	store := NewSessionStore()

	got, err := store.Get(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSessionStoreRecordPersistsUntilDeleted(t *testing.T) {
	store := NewSessionStore()

	sess := domain.Session{
		ID:          "sid-1",
		Username:    "alice",
		AccessToken: "token",
	}
	require.NoError(t, store.Create(context.Background(), sess))

	// The store never evicts on its own; token verification decides
	// whether the session is still usable.
	for i := 0; i < 3; i++ {
		got, err := store.Get(context.Background(), "sid-1")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "token", got.AccessToken)
	}
}

func TestSessionStoreDelete(t *testing.T) {
	store := NewSessionStore()

	sess := domain.Session{
		ID:          "sid-1",
		Username:    "alice",
		AccessToken: "token",
	}
	require.NoError(t, store.Create(context.Background(), sess))
	require.NoError(t, store.Delete(context.Background(), "sid-1"))

	got, err := store.Get(context.Background(), "sid-1")
	require.NoError(t, err)
	assert.Nil(t, got)
}
