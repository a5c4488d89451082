package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/headshot-studio/backend/apperrors"
)

// respondError maps domain errors to HTTP status codes and emits the
// standard error envelope
func respondError(c *gin.Context, message string, err error) {
	status := http.StatusInternalServerError
	switch {
	case apperrors.IsNotFound(err):
		status = http.StatusNotFound
	case apperrors.IsInvalidState(err):
		status = http.StatusBadRequest
	case apperrors.IsProvider(err):
		status = http.StatusBadGateway
	}

	c.JSON(status, gin.H{
		"status":  "error",
		"message": message + ": " + err.Error(),
	})
}
