package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/duynhne/bookstore-service/internal/core/domain"
	"github.com/duynhne/bookstore-service/internal/logger"
	logicv1 "github.com/duynhne/bookstore-service/internal/logic/v1"
	"github.com/duynhne/bookstore-service/middleware"
)

// UpsertReview handles PUT /customer/auth/review/:isbn.
// The review text comes from the `review` query parameter and the
// username from the authenticated session only.
func (h *Handler) UpsertReview(c *gin.Context) {
	c, span := startRequestSpan(c, "http.upsert_review")
	defer span.End()

	log := logger.FromContext(c.Request.Context())

	isbn := c.Param("isbn")
	review := c.Query("review")
	username := c.GetString(middleware.UsernameGinKey)

	outcome, err := h.reviews.Upsert(c.Request.Context(), isbn, review, username)
	if err != nil {
		span.RecordError(err)
		log.Warn().Err(err).Str("isbn", isbn).Str("username", username).Msg("Review upsert failed")

		switch {
		case errors.Is(err, logicv1.ErrValidation):
			c.JSON(http.StatusBadRequest, domain.MessageResponse{Message: "Review content is required."})
		case errors.Is(err, logicv1.ErrBookNotFound):
			c.JSON(http.StatusNotFound, domain.MessageResponse{Message: fmt.Sprintf("Book with ISBN %s not found.", isbn)})
		default:
			c.JSON(http.StatusInternalServerError, domain.MessageResponse{Message: "Internal server error"})
		}
		return
	}

	verb := "added"
	if outcome == logicv1.ReviewModified {
		verb = "modified"
	}
	log.Info().Str("isbn", isbn).Str("username", username).Str("outcome", verb).Msg("Review upserted")
	c.JSON(http.StatusOK, domain.MessageResponse{
		Message: fmt.Sprintf("Review for ISBN %s by %s %s successfully.", isbn, username, verb),
	})
}

// DeleteReview handles DELETE /customer/auth/review/:isbn.
func (h *Handler) DeleteReview(c *gin.Context) {
	c, span := startRequestSpan(c, "http.delete_review")
	defer span.End()

	log := logger.FromContext(c.Request.Context())

	isbn := c.Param("isbn")
	username := c.GetString(middleware.UsernameGinKey)

	if err := h.reviews.Delete(c.Request.Context(), isbn, username); err != nil {
		span.RecordError(err)
		log.Warn().Err(err).Str("isbn", isbn).Str("username", username).Msg("Review delete failed")

		switch {
		case errors.Is(err, logicv1.ErrReviewNotFound):
			c.JSON(http.StatusNotFound, domain.MessageResponse{Message: fmt.Sprintf("No review found for ISBN %s by user %s.", isbn, username)})
		case errors.Is(err, logicv1.ErrBookNotFound):
			c.JSON(http.StatusNotFound, domain.MessageResponse{Message: fmt.Sprintf("Book with ISBN %s not found.", isbn)})
		default:
			c.JSON(http.StatusInternalServerError, domain.MessageResponse{Message: "Internal server error"})
		}
		return
	}

	log.Info().Str("isbn", isbn).Str("username", username).Msg("Review deleted")
	c.JSON(http.StatusOK, domain.MessageResponse{
		Message: fmt.Sprintf("Review for ISBN %s by %s deleted successfully.", isbn, username),
	})
}
