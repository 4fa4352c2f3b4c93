package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sahan/dominious/internal/domain"
	"github.com/sahan/dominious/internal/repository"
)

// FeedbackHandler handles contact-form submissions.
type FeedbackHandler struct {
	feedback *repository.FeedbackRepository
}

// NewFeedbackHandler creates a new feedback handler.
func NewFeedbackHandler(feedback *repository.FeedbackRepository) *FeedbackHandler {
	return &FeedbackHandler{feedback: feedback}
}

// FeedbackRequest is the body for POST /api/v1/feedback.
type FeedbackRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

// Submit handles POST /api/v1/feedback.
func (h *FeedbackHandler) Submit(c *gin.Context) {
	var req FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request: " + err.Error(),
		})
		return
	}

	fb := &domain.Feedback{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}
	if err := h.feedback.Create(c.Request.Context(), fb); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to save feedback: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":     fb.ID,
		"status": "received",
	})
}
