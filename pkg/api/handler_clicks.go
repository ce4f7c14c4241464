package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// clickRequest is the body of POST /api/v1/clicks/:external_id. Delta
// defaults to 1; zero is a pure read of the current count.
type clickRequest struct {
	OriginalURL string `json:"original_url,omitempty"`
	Delta       *int64 `json:"delta,omitempty"`
}

// recordClick handles POST /api/v1/clicks/:external_id. Atomically bumps
// the click counter (never below zero, never decremented) and, when a
// broadcast editor is wired, reconciles the broadcast post if the click
// bucket changed.
func (s *Server) recordClick(c *gin.Context) {
	externalID := c.Param("external_id")
	if externalID == "" {
		respondError(c, http.StatusBadRequest, errCodeValidation, "external_id is required")
		return
	}

	var req clickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, errCodeValidation, "invalid request body: "+err.Error())
		return
	}

	delta := int64(1)
	if req.Delta != nil {
		delta = *req.Delta
	}

	clicks, err := s.deps.Clicks.IncrementClicks(c.Request.Context(), externalID, req.OriginalURL, delta)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	// Broadcast-post reconciliation is a side-effect: a failed edit never
	// fails the click write.
	if s.deps.Editor != nil {
		if err := s.deps.Editor.AfterClick(c.Request.Context(), externalID, clicks); err != nil {
			slog.Warn("Broadcast edit after click failed",
				"external_id", externalID, "clicks", clicks, "error", err)
		}
	}

	c.JSON(http.StatusOK, gin.H{"external_id": externalID, "clicks": clicks})
}
