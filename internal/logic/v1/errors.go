// Package v1 provides the bookstore business logic for API version 1.
//
// Error Handling:
// This package defines sentinel errors for every failure class the
// service can report. Business methods wrap them with context using
// fmt.Errorf("%w"); handlers translate them to a status code and a
// JSON {message} body with an errors.Is switch. No error here is fatal
// to the process; each one terminates a single request.
package v1

import "errors"

// Sentinel errors for catalog, registration, authentication and review
// operations.
var (
	// ErrValidation indicates missing or invalid request input.
	// HTTP Status: 400 (404 on the login endpoint, inherited contract)
	ErrValidation = errors.New("invalid input")

	// ErrUserExists indicates the username is already registered.
	// HTTP Status: 409 Conflict
	ErrUserExists = errors.New("username already exists")

	// ErrBookNotFound indicates no book matches the given ISBN, author
	// or title.
	// HTTP Status: 404 Not Found
	ErrBookNotFound = errors.New("book not found")

	// ErrNoReviews indicates the book exists but has no reviews yet.
	// HTTP Status: 404 Not Found
	ErrNoReviews = errors.New("no reviews found")

	// ErrReviewNotFound indicates the caller has no review on the book.
	// HTTP Status: 404 Not Found
	ErrReviewNotFound = errors.New("review not found")

	// ErrInvalidCredentials indicates username/password did not match a
	// registered user.
	// HTTP Status: 208 (inherited contract; flagged, not fixed)
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNotLoggedIn indicates no live session record backs the request.
	// HTTP Status: 403 Forbidden
	ErrNotLoggedIn = errors.New("not logged in")

	// ErrTokenInvalid indicates the session token failed signature or
	// expiration verification.
	// HTTP Status: 403 Forbidden
	ErrTokenInvalid = errors.New("token invalid or expired")

	// ErrStoreUnavailable indicates the book catalog is absent.
	// HTTP Status: 500 Internal Server Error
	ErrStoreUnavailable = errors.New("book store unavailable")
)
