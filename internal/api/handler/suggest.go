package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sahan/dominious/internal/service"
)

// SuggestHandler handles domain suggestion endpoints.
type SuggestHandler struct {
	suggest *service.SuggestService
}

// NewSuggestHandler creates a new suggestion handler.
func NewSuggestHandler(suggest *service.SuggestService) *SuggestHandler {
	return &SuggestHandler{suggest: suggest}
}

// SuggestRequest is the body for POST /api/v1/suggest.
type SuggestRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

// Suggest handles POST /api/v1/suggest.
func (h *SuggestHandler) Suggest(c *gin.Context) {
	var req SuggestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request: " + err.Error(),
		})
		return
	}

	domains, err := h.suggest.Suggest(c.Request.Context(), req.Prompt)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Suggestion failed: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"domains": domains,
		"total":   len(domains),
	})
}
