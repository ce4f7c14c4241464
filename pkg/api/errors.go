package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tuitionlab/assignflow/pkg/services"
)

// Error codes in API error envelopes.
const (
	errCodeValidation = "validation_failed"
	errCodeNotFound   = "not_found"
	errCodeConflict   = "conflict"
	errCodeForbidden  = "forbidden"
	errCodeInternal   = "internal_error"
)

// errorBody is the envelope every error response carries:
//
//	{"error": {"code": "...", "message": "...", "field": "..."}}
type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func respondError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, gin.H{"error": errorBody{Code: code, Message: message}})
}

// mapServiceError maps service-layer errors to HTTP error responses.
func mapServiceError(c *gin.Context, err error) {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": errorBody{
			Code:    errCodeValidation,
			Message: validErr.Error(),
			Field:   validErr.Field,
		}})
		return
	}
	if errors.Is(err, services.ErrNotFound) {
		respondError(c, http.StatusNotFound, errCodeNotFound, "resource not found")
		return
	}
	if errors.Is(err, services.ErrAlreadyExists) {
		respondError(c, http.StatusConflict, errCodeConflict, "resource already exists")
		return
	}
	if errors.Is(err, services.ErrInvalidTransition) {
		respondError(c, http.StatusConflict, errCodeConflict, "invalid state transition")
		return
	}

	// Unexpected error
	slog.Error("Unexpected service error", "error", err, "path", c.Request.URL.Path)
	respondError(c, http.StatusInternalServerError, errCodeInternal, "internal server error")
}
