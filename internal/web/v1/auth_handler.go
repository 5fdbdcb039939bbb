package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/duynhne/bookstore-service/internal/core/domain"
	"github.com/duynhne/bookstore-service/internal/logger"
	logicv1 "github.com/duynhne/bookstore-service/internal/logic/v1"
)

// Path the session cookie is scoped to: the whole customer surface.
const sessionCookiePath = "/customer"

// Login handles POST /customer/login.
//
// Missing fields answer 404 and a bad credential pair answers 208, both
// inherited from the published client contract. 208 is nonstandard for
// this purpose; kept deliberately, see DESIGN.md.
func (h *Handler) Login(c *gin.Context) {
	c, span := startRequestSpan(c, "http.login")
	defer span.End()

	log := logger.FromContext(c.Request.Context())

	var req domain.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		span.RecordError(err)
		c.JSON(http.StatusNotFound, domain.MessageResponse{Message: "Error logging in: Username and password are required"})
		return
	}

	result, err := h.auth.Login(c.Request.Context(), req)
	if err != nil {
		span.RecordError(err)
		log.Warn().Err(err).Str("username", req.Username).Msg("Login failed")

		switch {
		case errors.Is(err, logicv1.ErrValidation):
			c.JSON(http.StatusNotFound, domain.MessageResponse{Message: "Error logging in: Username and password are required"})
		case errors.Is(err, logicv1.ErrInvalidCredentials):
			c.JSON(http.StatusAlreadyReported, domain.MessageResponse{Message: "Invalid Login. Check username and password"})
		default:
			c.JSON(http.StatusInternalServerError, domain.MessageResponse{Message: "Internal server error"})
		}
		return
	}

	// Browser-session cookie: the access token inside the session record
	// carries the expiry, not the cookie.
	c.SetCookie(h.sessionCookie, result.SessionID, 0, sessionCookiePath, "", false, true)

	log.Info().Str("username", req.Username).Msg("Login successful")
	c.JSON(http.StatusOK, domain.LoginResponse{
		Message: "User successfully logged in",
		Token:   result.Token,
	})
}
