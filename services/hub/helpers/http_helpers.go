package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"premise-hub/internal/huberrors"
	"premise-hub/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid message payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid message payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, huberrors.ErrOfferNotFound):
		return http.StatusNotFound, "offer not found"
	case errors.Is(err, huberrors.ErrAuctionNotFound):
		return http.StatusNotFound, "no active auction for offer"
	case errors.Is(err, huberrors.ErrInvalidMessage):
		return http.StatusBadRequest, "invalid message"
	case errors.Is(err, huberrors.ErrUnknownService):
		return http.StatusBadRequest, "unknown service option"
	case errors.Is(err, huberrors.ErrUnknownPriority):
		return http.StatusBadRequest, "unknown demand priority"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
