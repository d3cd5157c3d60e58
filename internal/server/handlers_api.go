package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"todo-tracker/internal/errors"
	"todo-tracker/internal/services"
)

// taskPatchRequest is the JSON body of the partial update endpoint.
// Absent fields retain their stored value; a present status is applied
// as a manual override of the derived status.
type taskPatchRequest struct {
	Todo      *string `json:"todo"`
	Category  *string `json:"category"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
	Status    *string `json:"status"`
}

// failJSON writes a JSON failure with the status implied by the error type.
func (s *Server) failJSON(c *gin.Context, err error) {
	if errors.ShouldLogError(err) {
		s.log.Errorw("request failed", "path", c.Request.URL.Path, "error", err)
	}

	status := http.StatusInternalServerError
	message := errors.GetUserMessage(err)
	switch {
	case errors.IsErrorType(err, errors.ErrorTypeNotFound):
		status = http.StatusNotFound
	case errors.IsErrorType(err, errors.ErrorTypeValidation), errors.IsErrorType(err, errors.ErrorTypeInvalidInput):
		status = http.StatusBadRequest
	case errors.IsErrorType(err, errors.ErrorTypeDatabase):
		message = "There was an error while updating the task"
	}

	c.JSON(status, gin.H{"error": message})
}

// listTasksAPI returns all tasks as JSON.
func (s *Server) listTasksAPI(c *gin.Context) {
	tasks, err := s.tasks.List(c.Request.Context(), "")
	if err != nil {
		s.failJSON(c, err)
		return
	}

	c.JSON(http.StatusOK, NewTaskViews(tasks))
}

// getTaskAPI returns a single task as JSON.
func (s *Server) getTaskAPI(c *gin.Context) {
	id, err := taskIDParamJSON(c)
	if err != nil {
		return
	}

	task, err := s.tasks.Get(c.Request.Context(), id)
	if err != nil {
		s.failJSON(c, err)
		return
	}

	c.JSON(http.StatusOK, NewTaskView(task))
}

// updateTaskAPI applies a JSON partial update and returns the result.
func (s *Server) updateTaskAPI(c *gin.Context) {
	id, err := taskIDParamJSON(c)
	if err != nil {
		return
	}

	var req taskPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	patch := services.TaskPatch{
		Description: req.Todo,
		Category:    req.Category,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Status:      req.Status,
	}

	task, err := s.tasks.Patch(c.Request.Context(), id, patch)
	if err != nil {
		s.failJSON(c, err)
		return
	}

	c.JSON(http.StatusOK, NewTaskView(task))
}

// dailySummary reports total worked time for today.
func (s *Server) dailySummary(c *gin.Context) {
	summary, err := s.summaries.DailySummary(c.Request.Context())
	if err != nil {
		s.failJSON(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": summary.Message})
}

// weeklySummary reports total worked time since the most recent Sunday.
func (s *Server) weeklySummary(c *gin.Context) {
	summary, err := s.summaries.WeeklySummary(c.Request.Context())
	if err != nil {
		s.failJSON(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": summary.Message})
}

// taskIDParamJSON parses the :id path parameter, answering in JSON on failure.
func taskIDParamJSON(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid task id"})
		return 0, err
	}
	return id, nil
}
