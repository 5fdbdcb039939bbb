package v1

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/duynhne/bookstore-service/internal/core/domain"
	"github.com/duynhne/bookstore-service/middleware"
)

// LoginResult is returned on a successful login: the signed access token
// plus the session record ID the handler puts in the session cookie.
type LoginResult struct {
	Token     string
	SessionID string
}

// AuthService implements login and token verification. It depends on
// repository interfaces injected via the constructor.
type AuthService struct {
	users    domain.UserRepository
	sessions domain.SessionStore
	tokens   *TokenIssuer
}

// NewAuthService creates an AuthService with the given collaborators.
func NewAuthService(users domain.UserRepository, sessions domain.SessionStore, tokens *TokenIssuer) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
		tokens:   tokens,
	}
}

// Login validates the credentials against the user registry, issues a
// signed access token and creates the server-side session record.
// A missing field fails with ErrValidation and a credential mismatch
// with ErrInvalidCredentials; the two are distinct outcomes by contract.
func (s *AuthService) Login(ctx context.Context, req domain.CredentialsRequest) (*LoginResult, error) {
	ctx, span := middleware.StartSpan(ctx, "auth.login", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.String("username", req.Username),
	))
	defer span.End()

	if req.Username == "" || req.Password == "" {
		span.SetAttributes(attribute.Bool("request.valid", false))
		return nil, fmt.Errorf("login: username and password required: %w", ErrValidation)
	}

	user, err := s.users.GetByUsername(ctx, req.Username)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("query user %q: %w", req.Username, err)
	}
	if user == nil || user.Password != req.Password {
		span.SetAttributes(attribute.Bool("auth.success", false))
		span.AddEvent("authentication.failed")
		return nil, fmt.Errorf("authenticate user %q: %w", req.Username, ErrInvalidCredentials)
	}

	token, err := s.tokens.Issue(req.Password)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("issue token: %w", err)
	}

	// The record carries no expiry of its own: the embedded token is the
	// time authority, so an aged session reports a token error instead
	// of disappearing.
	session := domain.Session{
		ID:          uuid.NewString(),
		Username:    user.Username,
		AccessToken: token,
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("create session: %w", err)
	}

	span.SetAttributes(
		attribute.String("user.name", user.Username),
		attribute.Bool("auth.success", true),
	)
	span.AddEvent("user.authenticated")

	return &LoginResult{Token: token, SessionID: session.ID}, nil
}
