package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sahan/dominious/internal/domain"
	"github.com/sahan/dominious/internal/logger"
	"github.com/sahan/dominious/internal/service"
)

// streamPollInterval is how often the SSE stream samples a running
// task's snapshot.
const streamPollInterval = 500 * time.Millisecond

// TaskHandler handles batch enrichment and task tracking endpoints.
type TaskHandler struct {
	details *service.DetailService
	tasks   *service.TaskManager
}

// NewTaskHandler creates a new task handler.
func NewTaskHandler(details *service.DetailService, tasks *service.TaskManager) *TaskHandler {
	return &TaskHandler{details: details, tasks: tasks}
}

// DetailRequest is the body for POST /api/v1/details.
type DetailRequest struct {
	Prompt     string `json:"prompt" binding:"required"`
	DomainName string `json:"domain_name" binding:"required"`
}

// Detail handles POST /api/v1/details: synchronous single-name
// synthesis. Always returns 200 with a detail object; failures are
// expressed via the detail's error field.
func (h *TaskHandler) Detail(c *gin.Context) {
	var req DetailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request: " + err.Error(),
		})
		return
	}

	detail := h.details.Synthesize(c.Request.Context(), req.DomainName, req.Prompt)
	c.JSON(http.StatusOK, detail)
}

// EnrichRequest is the body for POST /api/v1/enrich.
type EnrichRequest struct {
	Prompt      string   `json:"prompt" binding:"required"`
	DomainNames []string `json:"domain_names" binding:"required"`
}

// Enrich handles POST /api/v1/enrich: queues an asynchronous batch and
// returns its task id immediately.
func (h *TaskHandler) Enrich(c *gin.Context) {
	var req EnrichRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request: " + err.Error(),
		})
		return
	}

	taskID := h.tasks.Create(len(req.DomainNames))

	// Detach from the request context so the batch survives the
	// response being written.
	runCtx := logger.FromContext(c.Request.Context()).WithContext(context.Background())
	go h.tasks.Run(runCtx, taskID, req.Prompt, req.DomainNames)

	c.JSON(http.StatusAccepted, gin.H{
		"task_id": taskID,
		"status":  domain.TaskStatusPending,
	})
}

// GetTask handles GET /api/v1/tasks/:id.
func (h *TaskHandler) GetTask(c *gin.Context) {
	snap := h.tasks.Get(c.Param("id"))
	if snap.Status == domain.TaskStatusNotFound {
		c.JSON(http.StatusNotFound, snap)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// DeleteTask handles DELETE /api/v1/tasks/:id.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id := c.Param("id")
	if !h.tasks.Delete(id) {
		c.JSON(http.StatusNotFound, gin.H{
			"task_id": id,
			"status":  domain.TaskStatusNotFound,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"task_id": id,
		"deleted": true,
	})
}

// StreamTask handles GET /api/v1/tasks/:id/stream: an SSE stream of
// task snapshots, closing after the task reaches a terminal state.
func (h *TaskHandler) StreamTask(c *gin.Context) {
	id := c.Param("id")

	first := h.tasks.Get(id)
	if first.Status == domain.TaskStatusNotFound {
		c.JSON(http.StatusNotFound, first)
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	ticker := time.NewTicker(streamPollInterval)
	defer ticker.Stop()

	sendSnapshot(c, &first)
	if first.Terminal() {
		return
	}

	for {
		select {
		case <-c.Request.Context().Done():
			return
		case <-ticker.C:
			snap := h.tasks.Get(id)
			sendSnapshot(c, &snap)
			if snap.Terminal() || snap.Status == domain.TaskStatusNotFound {
				return
			}
		}
	}
}

func sendSnapshot(c *gin.Context, snap *domain.EnrichmentTask) {
	c.SSEvent("progress", snap)
	c.Writer.Flush()
}
