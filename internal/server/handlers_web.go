package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"todo-tracker/internal/errors"
	"todo-tracker/internal/services"
)

// taskIDParam parses the :id path parameter.
func taskIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.String(http.StatusBadRequest, "invalid task id")
		return 0, false
	}
	return id, true
}

// failForm writes a form-route failure: 404 for missing tasks, 400 for bad
// input, and the generic message for anything else (storage failures stay
// opaque to the user).
func (s *Server) failForm(c *gin.Context, err error, genericMessage string) {
	if errors.ShouldLogError(err) {
		s.log.Errorw("request failed", "path", c.Request.URL.Path, "error", err)
	}

	switch {
	case errors.IsErrorType(err, errors.ErrorTypeNotFound):
		c.String(http.StatusNotFound, errors.GetUserMessage(err))
	case errors.IsErrorType(err, errors.ErrorTypeValidation), errors.IsErrorType(err, errors.ErrorTypeInvalidInput):
		c.String(http.StatusBadRequest, errors.GetUserMessage(err))
	default:
		c.String(http.StatusInternalServerError, genericMessage)
	}
}

// listTasksPage renders the task list, optionally filtered by exact
// category match.
func (s *Server) listTasksPage(c *gin.Context) {
	tasks, err := s.tasks.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		s.failForm(c, err, "There was an error while loading tasks")
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"Tasks":    NewTaskViews(tasks),
		"Category": c.Query("category"),
	})
}

// createTaskForm creates a task from the submitted form and redirects home.
func (s *Server) createTaskForm(c *gin.Context) {
	input := services.TaskInput{
		Description: c.PostForm("todo_item"),
		Category:    c.PostForm("category"),
		StartTime:   c.PostForm("start_time"),
		EndTime:     c.PostForm("end_time"),
	}

	if _, err := s.tasks.Create(c.Request.Context(), input); err != nil {
		s.failForm(c, err, "There was an error while adding the task")
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// updateTaskPage renders the edit form for a task.
func (s *Server) updateTaskPage(c *gin.Context) {
	id, ok := taskIDParam(c)
	if !ok {
		return
	}

	task, err := s.tasks.Get(c.Request.Context(), id)
	if err != nil {
		s.failForm(c, err, "There was an issue while loading that task.")
		return
	}

	c.HTML(http.StatusOK, "update.html", gin.H{
		"Task": NewTaskView(task),
	})
}

// updateTaskForm applies a full update from the submitted form.
func (s *Server) updateTaskForm(c *gin.Context) {
	id, ok := taskIDParam(c)
	if !ok {
		return
	}

	input := services.TaskInput{
		Description: c.PostForm("todo_item"),
		Category:    c.PostForm("category"),
		StartTime:   c.PostForm("start_time"),
		EndTime:     c.PostForm("end_time"),
	}

	if _, err := s.tasks.Update(c.Request.Context(), id, input); err != nil {
		s.failForm(c, err, "There was an issue while updating that task.")
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// deleteTask removes a task and redirects home.
func (s *Server) deleteTask(c *gin.Context) {
	id, ok := taskIDParam(c)
	if !ok {
		return
	}

	if err := s.tasks.Delete(c.Request.Context(), id); err != nil {
		s.failForm(c, err, "There was an error while deleting that todo.")
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// startTask marks a task In Progress with its start time set to now.
func (s *Server) startTask(c *gin.Context) {
	id, ok := taskIDParam(c)
	if !ok {
		return
	}

	if _, err := s.tasks.Start(c.Request.Context(), id); err != nil {
		s.failForm(c, err, "There was an error starting the task.")
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// endTask marks a task Completed with its end time set to now.
func (s *Server) endTask(c *gin.Context) {
	id, ok := taskIDParam(c)
	if !ok {
		return
	}

	if _, err := s.tasks.End(c.Request.Context(), id); err != nil {
		s.failForm(c, err, "There was an error ending the task.")
		return
	}

	c.Redirect(http.StatusFound, "/")
}
