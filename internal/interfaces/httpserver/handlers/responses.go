package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"therapist-server/services/therapy-api/internal/utils/platformerrors"
)

type errorResponse struct {
	Error string `json:"error"`
}

// respondError collapses any failure to a generic response body. Specific
// error details were already logged once at the point of detection.
func respondError(c *gin.Context, err error) {
	status := platformerrors.HTTPStatus(err)

	message := "An error occurred"
	var platformErr *platformerrors.PlatformError
	if errors.As(err, &platformErr) {
		switch platformErr.Type {
		case platformerrors.ErrorTypeValidation:
			message = platformErr.Message
		case platformerrors.ErrorTypeNotFound:
			message = "Not found"
		}
	}

	c.JSON(status, errorResponse{Error: message})
}

// abortValidation rejects a malformed request before any domain call.
func abortValidation(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, errorResponse{Error: message})
}
