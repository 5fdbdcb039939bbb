package v1

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duynhne/bookstore-service/internal/core/domain"
	"github.com/duynhne/bookstore-service/internal/core/repository"
)

func newAuthService(t *testing.T) (*AuthService, *repository.MemorySessionStore) {
	t.Helper()

	users := repository.NewUserRepository()
	require.NoError(t, users.Create(context.Background(), domain.User{Username: "alice", Password: "pw1"}))

	sessions := repository.NewSessionStore()
	tokens := NewTokenIssuer("test-secret", time.Hour)
	return NewAuthService(users, sessions, tokens), sessions
}

func TestLoginSuccess(t *testing.T) {
	svc, sessions := newAuthService(t)

	result, err := svc.Login(context.Background(), domain.CredentialsRequest{Username: "alice", Password: "pw1"})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.NotEmpty(t, result.SessionID)

	// The session record binds token and username.
	sess, err := sessions.Get(context.Background(), result.SessionID)
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, "alice", sess.Username)
	assert.Equal(t, result.Token, sess.AccessToken)
}

func TestLoginFailures(t *testing.T) {
	tests := []struct {
		name    string
		req     domain.CredentialsRequest
		wantErr error
	}{
		{name: "missing username", req: domain.CredentialsRequest{Password: "pw1"}, wantErr: ErrValidation},
		{name: "missing password", req: domain.CredentialsRequest{Username: "alice"}, wantErr: ErrValidation},
		{name: "unknown user", req: domain.CredentialsRequest{Username: "mallory", Password: "pw1"}, wantErr: ErrInvalidCredentials},
		{name: "wrong password", req: domain.CredentialsRequest{Username: "alice", Password: "nope"}, wantErr: ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newAuthService(t)

			_, err := svc.Login(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLoginValidationDistinctFromBadCredentials(t *testing.T) {
	svc, _ := newAuthService(t)

	_, missingErr := svc.Login(context.Background(), domain.CredentialsRequest{Username: "alice"})
	_, badErr := svc.Login(context.Background(), domain.CredentialsRequest{Username: "alice", Password: "nope"})

	assert.ErrorIs(t, missingErr, ErrValidation)
	assert.NotErrorIs(t, missingErr, ErrInvalidCredentials)
	assert.ErrorIs(t, badErr, ErrInvalidCredentials)
	assert.NotErrorIs(t, badErr, ErrValidation)
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	svc, _ := newAuthService(t)
	tokens := NewTokenIssuer("test-secret", time.Hour)

	result, err := svc.Login(context.Background(), domain.CredentialsRequest{Username: "alice", Password: "pw1"})
	require.NoError(t, err)

	assert.NoError(t, tokens.VerifyToken(result.Token))
}
