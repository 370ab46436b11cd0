package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"shoplink/internal/apperr"
)

// Every endpoint answers with the same envelope.
type envelope struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Timestamp string `json:"timestamp"`
}

func respond(c *gin.Context, code int, message string, data any) {
	c.JSON(code, envelope{
		Status:    "success",
		Message:   message,
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func respondErr(c *gin.Context, err error) {
	c.JSON(statusFor(err), envelope{
		Status:    "error",
		Message:   err.Error(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func respondBadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, envelope{
		Status:    "error",
		Message:   msg,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func statusFor(err error) int {
	switch apperr.KindOf(err) {
	case apperr.KindInvalidArgument, apperr.KindUnavailable, apperr.KindInsufficientStock:
		return http.StatusBadRequest
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindUnauthorized:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
