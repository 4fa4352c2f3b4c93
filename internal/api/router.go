package api

import (
	"github.com/gin-gonic/gin"
	"github.com/sahan/dominious/internal/api/handler"
	"github.com/sahan/dominious/internal/api/middleware"
	"github.com/sahan/dominious/internal/repository"
	"github.com/sahan/dominious/internal/service"
)

// RouterConfig carries the collaborators the HTTP surface needs.
type RouterConfig struct {
	Suggest  *service.SuggestService
	Details  *service.DetailService
	Tasks    *service.TaskManager
	Feedback *repository.FeedbackRepository
	CORS     middleware.CORSConfig
	Mode     string
}

// SetupRouter configures the Gin router with all routes
func SetupRouter(cfg *RouterConfig) *gin.Engine {
	// Set Gin mode
	switch cfg.Mode {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	r := gin.New()

	// Add middleware
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS))

	// Create handlers
	healthHandler := handler.NewHealthHandler()
	suggestHandler := handler.NewSuggestHandler(cfg.Suggest)
	taskHandler := handler.NewTaskHandler(cfg.Details, cfg.Tasks)
	feedbackHandler := handler.NewFeedbackHandler(cfg.Feedback)

	// Health check
	r.GET("/health", healthHandler.Health)

	// API v1 routes
	v1 := r.Group("/api/v1")
	{
		// Suggestions
		v1.POST("/suggest", suggestHandler.Suggest)

		// Details
		v1.POST("/details", taskHandler.Detail)

		// Batch enrichment
		v1.POST("/enrich", taskHandler.Enrich)
		v1.GET("/tasks/:id", taskHandler.GetTask)
		v1.GET("/tasks/:id/stream", taskHandler.StreamTask)
		v1.DELETE("/tasks/:id", taskHandler.DeleteTask)

		// Feedback
		v1.POST("/feedback", feedbackHandler.Submit)
	}

	return r
}
