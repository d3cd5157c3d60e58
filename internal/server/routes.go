package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// registerRoutes wires every endpoint onto the engine.
func (s *Server) registerRoutes(r *gin.Engine) {
	// Form surface
	r.GET("/", s.listTasksPage)
	r.POST("/", s.createTaskForm)
	r.GET("/update/:id", s.updateTaskPage)
	r.POST("/update/:id", s.updateTaskForm)
	r.GET("/delete/:id", s.deleteTask)

	// Lifecycle transitions
	r.POST("/start_task/:id", s.startTask)
	r.POST("/end_task/:id", s.endTask)

	// Summaries
	r.GET("/summary/daily", s.dailySummary)
	r.GET("/summary/weekly", s.weeklySummary)

	// JSON API
	api := r.Group("/api")
	{
		api.GET("/tasks", s.listTasksAPI)
		api.GET("/tasks/:id", s.getTaskAPI)
		api.PUT("/tasks/:id", s.updateTaskAPI)
	}

	// Health check
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}
