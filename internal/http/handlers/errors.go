package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fairwaylabs/golfcoach-backend/internal/apperr"
	"github.com/fairwaylabs/golfcoach-backend/internal/http/response"
)

// respondServiceError translates service errors into the wire taxonomy.
// Unclassified errors and upstream failures surface as a generic 500 so
// internal detail never leaks to clients.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperr.ErrValidation):
		response.RespondError(c, http.StatusBadRequest, "validation_failed", err)
	case errors.Is(err, apperr.ErrDuplicateEmail):
		response.RespondError(c, http.StatusBadRequest, "email_in_use", err)
	case errors.Is(err, apperr.ErrInvalidCredentials):
		response.RespondError(c, http.StatusUnauthorized, "invalid_credentials", errors.New("invalid email or password"))
	case errors.Is(err, apperr.ErrUnauthorized):
		response.RespondError(c, http.StatusUnauthorized, "unauthorized", errors.New("missing or invalid token"))
	case errors.Is(err, apperr.ErrInvalidOrExpiredToken):
		response.RespondError(c, http.StatusBadRequest, "invalid_or_expired_token", errors.New("password reset token is invalid or expired"))
	case errors.Is(err, apperr.ErrNotFound):
		response.RespondError(c, http.StatusNotFound, "not_found", err)
	default:
		response.RespondError(c, http.StatusInternalServerError, "internal_error", errors.New("something went wrong"))
	}
}
