// Package v1 contains the HTTP handlers for the bookstore API.
//
// Handlers translate logic-layer sentinel errors into status codes and
// JSON {message} bodies; no business rules live here.
package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/duynhne/bookstore-service/internal/core/domain"
	"github.com/duynhne/bookstore-service/internal/logger"
	logicv1 "github.com/duynhne/bookstore-service/internal/logic/v1"
	"github.com/duynhne/bookstore-service/middleware"
)

// Handler groups the HTTP handlers for the bookstore API.
// Dependencies are injected via the constructor — no global state.
type Handler struct {
	catalog *logicv1.CatalogService
	auth    *logicv1.AuthService
	reviews *logicv1.ReviewService

	sessionCookie string
}

// NewHandler creates a Handler with the given services. sessionCookie is
// the name of the cookie carrying the session ID.
func NewHandler(catalog *logicv1.CatalogService, auth *logicv1.AuthService, reviews *logicv1.ReviewService, sessionCookie string) *Handler {
	return &Handler{
		catalog:       catalog,
		auth:          auth,
		reviews:       reviews,
		sessionCookie: sessionCookie,
	}
}

// RegisterPublicRoutes registers the unauthenticated catalog and
// registration routes at the root.
func (h *Handler) RegisterPublicRoutes(r gin.IRoutes) {
	r.POST("/register", h.Register)
	r.GET("/", h.ListBooks)
	r.GET("/isbn/:isbn", h.BookByISBN)
	r.GET("/author/:author", h.BooksByAuthor)
	r.GET("/title/:title", h.BooksByTitle)
	r.GET("/review/:isbn", h.BookReviews)
}

// RegisterCustomerRoutes registers login on the customer group and the
// review operations on the authenticated sub-group.
func (h *Handler) RegisterCustomerRoutes(customer *gin.RouterGroup, auth *middleware.AuthMiddleware) {
	customer.POST("/login", h.Login)

	authed := customer.Group("/auth")
	authed.Use(auth.RequireAuth())
	authed.PUT("/review/:isbn", h.UpsertReview)
	authed.DELETE("/review/:isbn", h.DeleteReview)
}

// startRequestSpan opens the web-layer span every handler begins with.
func startRequestSpan(c *gin.Context, name string) (*gin.Context, trace.Span) {
	ctx, span := middleware.StartSpan(c.Request.Context(), name, trace.WithAttributes(
		attribute.String("layer", "web"),
		attribute.String("method", c.Request.Method),
		attribute.String("path", c.Request.URL.Path),
	))
	c.Request = c.Request.WithContext(ctx)
	return c, span
}

// Register handles POST /register.
func (h *Handler) Register(c *gin.Context) {
	c, span := startRequestSpan(c, "http.register")
	defer span.End()

	log := logger.FromContext(c.Request.Context())

	var req domain.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		span.RecordError(err)
		c.JSON(http.StatusBadRequest, domain.MessageResponse{Message: "Unable to register. Username and password are required."})
		return
	}

	if err := h.catalog.Register(c.Request.Context(), req); err != nil {
		span.RecordError(err)
		log.Error().Err(err).Str("username", req.Username).Msg("Registration failed")

		switch {
		case errors.Is(err, logicv1.ErrValidation):
			c.JSON(http.StatusBadRequest, domain.MessageResponse{Message: "Unable to register. Username and password are required."})
		case errors.Is(err, logicv1.ErrUserExists):
			c.JSON(http.StatusConflict, domain.MessageResponse{Message: "Username already exists!"})
		default:
			c.JSON(http.StatusInternalServerError, domain.MessageResponse{Message: "Internal server error"})
		}
		return
	}

	log.Info().Str("username", req.Username).Msg("User registered")
	c.JSON(http.StatusOK, domain.MessageResponse{Message: "User successfully registered. Now you can login."})
}

// ListBooks handles GET /.
func (h *Handler) ListBooks(c *gin.Context) {
	c, span := startRequestSpan(c, "http.list_books")
	defer span.End()

	books, err := h.catalog.ListAll(c.Request.Context())
	if err != nil {
		span.RecordError(err)
		logger.FromContext(c.Request.Context()).Error().Err(err).Msg("Catalog listing failed")
		c.JSON(http.StatusInternalServerError, domain.MessageResponse{Message: "Error fetching book list."})
		return
	}

	c.JSON(http.StatusOK, books)
}

// BookByISBN handles GET /isbn/:isbn.
func (h *Handler) BookByISBN(c *gin.Context) {
	c, span := startRequestSpan(c, "http.book_by_isbn")
	defer span.End()

	isbn := c.Param("isbn")
	book, err := h.catalog.GetByISBN(c.Request.Context(), isbn)
	if err != nil {
		span.RecordError(err)
		c.JSON(http.StatusNotFound, domain.MessageResponse{Message: fmt.Sprintf("Book with ISBN %s not found.", isbn)})
		return
	}

	c.JSON(http.StatusOK, book)
}

// BooksByAuthor handles GET /author/:author.
func (h *Handler) BooksByAuthor(c *gin.Context) {
	c, span := startRequestSpan(c, "http.books_by_author")
	defer span.End()

	author := c.Param("author")
	books, err := h.catalog.ByAuthor(c.Request.Context(), author)
	if err != nil {
		span.RecordError(err)
		c.JSON(http.StatusNotFound, domain.MessageResponse{Message: fmt.Sprintf("No books found by author: %s.", author)})
		return
	}

	c.JSON(http.StatusOK, books)
}

// BooksByTitle handles GET /title/:title.
func (h *Handler) BooksByTitle(c *gin.Context) {
	c, span := startRequestSpan(c, "http.books_by_title")
	defer span.End()

	title := c.Param("title")
	books, err := h.catalog.ByTitle(c.Request.Context(), title)
	if err != nil {
		span.RecordError(err)
		c.JSON(http.StatusNotFound, domain.MessageResponse{Message: fmt.Sprintf("No books found with title containing: %s.", title)})
		return
	}

	c.JSON(http.StatusOK, books)
}

// BookReviews handles GET /review/:isbn.
func (h *Handler) BookReviews(c *gin.Context) {
	c, span := startRequestSpan(c, "http.book_reviews")
	defer span.End()

	isbn := c.Param("isbn")
	reviews, err := h.catalog.Reviews(c.Request.Context(), isbn)
	if err != nil {
		span.RecordError(err)

		switch {
		case errors.Is(err, logicv1.ErrNoReviews):
			c.JSON(http.StatusNotFound, domain.MessageResponse{Message: fmt.Sprintf("No reviews found for ISBN %s.", isbn)})
		default:
			c.JSON(http.StatusNotFound, domain.MessageResponse{Message: fmt.Sprintf("Book with ISBN %s not found.", isbn)})
		}
		return
	}

	c.JSON(http.StatusOK, reviews)
}
