package handlers

import (
	"errors"
	"net/http"

	"bleck-backend/internal/auth"
	apperrors "bleck-backend/internal/errors"
	"bleck-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ErrorResponse is the JSON envelope of every failed request
type ErrorResponse struct {
	Error     string `json:"error"`
	Reconnect bool   `json:"reconnect,omitempty"`
}

// respondError maps an error from the service layer to a status code and the JSON envelope.
// Transport failures are checked first: a refresh that failed on the network is not a reason to reconnect.
func respondError(c *gin.Context, err error) {
	log := logger.FromGinContext(c).WithError(err)

	var validationErr *apperrors.ValidationError
	switch {
	case errors.Is(err, apperrors.ErrUpstreamUnavailable):
		log.Error("Platform API unavailable")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Platform API is unavailable, please try again later"})
	case errors.Is(err, apperrors.ErrNotConnected):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Account not connected, please connect your account", Reconnect: true})
	case errors.Is(err, apperrors.ErrReconnectRequired):
		log.Warn("Platform session expired")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: apperrors.ErrReconnectRequired.Message, Reconnect: true})
	case errors.Is(err, apperrors.ErrOperationNotSupported):
		c.JSON(http.StatusNotImplemented, ErrorResponse{Error: err.Error()})
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: validationErr.Message})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	case apperrors.IsConfiguration(err):
		log.Error("Configuration error")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	default:
		if platformErr, ok := apperrors.AsPlatformError(err); ok {
			status := platformErr.StatusCode
			if status < http.StatusBadRequest || status > 599 {
				status = http.StatusBadGateway
			}
			log.Warn("Platform rejected request")
			c.JSON(status, ErrorResponse{Error: platformErr.Message})
			return
		}
		log.Error("Unhandled error")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}

// requireUserID returns the session user or answers 401
func requireUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return uuid.Nil, false
	}
	return userID, true
}
