package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-tracker/internal/services"
)

func TestListTasksAPI(t *testing.T) {
	s, tasks := setupServer(t)

	createTask(t, tasks, services.TaskInput{Description: "First", Category: "Work"})
	createTask(t, tasks, services.TaskInput{
		Description: "Second",
		StartTime:   "2024-01-01T09:00",
		EndTime:     "2024-01-01T11:30",
	})

	rec := doRequest(t, s, httptest.NewRequest(http.MethodGet, "/api/tasks", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var views []TaskView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &views))
	require.Len(t, views, 2)

	assert.Equal(t, "First", views[0].Todo)
	assert.Equal(t, "Work", views[0].Category)
	assert.Nil(t, views[0].Duration)
	assert.Equal(t, "Pending", views[0].Status)

	assert.Equal(t, "Second", views[1].Todo)
	require.NotNil(t, views[1].Duration)
	assert.Equal(t, "2.50 hours", *views[1].Duration)
	require.NotNil(t, views[1].DurationHours)
	assert.InDelta(t, 2.5, *views[1].DurationHours, 1e-9)
	assert.Equal(t, "Completed", views[1].Status)
}

func TestGetTaskAPI(t *testing.T) {
	s, tasks := setupServer(t)
	id := createTask(t, tasks, services.TaskInput{Description: "Lookup"})

	t.Run("should return the task", func(t *testing.T) {
		rec := doRequest(t, s, httptest.NewRequest(http.MethodGet, "/api/tasks/1", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var view TaskView
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
		assert.Equal(t, id, view.ID)
		assert.Equal(t, "Lookup", view.Todo)
	})

	t.Run("should return 404 for an unknown task", func(t *testing.T) {
		rec := doRequest(t, s, httptest.NewRequest(http.MethodGet, "/api/tasks/999", nil))
		require.Equal(t, http.StatusNotFound, rec.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Contains(t, body["error"], "not found")
	})

	t.Run("should return 400 for a malformed id", func(t *testing.T) {
		rec := doRequest(t, s, httptest.NewRequest(http.MethodGet, "/api/tasks/abc", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUpdateTaskAPI(t *testing.T) {
	t.Run("should apply a partial update", func(t *testing.T) {
		s, tasks := setupServer(t)
		createTask(t, tasks, services.TaskInput{
			Description: "Original",
			Category:    "Work",
			StartTime:   "2024-01-01T09:00",
			EndTime:     "2024-01-01T11:30",
		})

		req := httptest.NewRequest(http.MethodPut, "/api/tasks/1",
			strings.NewReader(`{"todo": "Renamed"}`))
		req.Header.Set("Content-Type", "application/json")

		rec := doRequest(t, s, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var view TaskView
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
		assert.Equal(t, "Renamed", view.Todo)
		assert.Equal(t, "Work", view.Category)
		assert.Equal(t, "Completed", view.Status)
		require.NotNil(t, view.Duration)
		assert.Equal(t, "2.50 hours", *view.Duration)
	})

	t.Run("should apply a status override", func(t *testing.T) {
		s, tasks := setupServer(t)
		createTask(t, tasks, services.TaskInput{
			Description: "Original",
			StartTime:   "2024-01-01T09:00",
			EndTime:     "2024-01-01T11:30",
		})

		req := httptest.NewRequest(http.MethodPut, "/api/tasks/1",
			strings.NewReader(`{"status": "In Progress"}`))
		req.Header.Set("Content-Type", "application/json")

		rec := doRequest(t, s, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var view TaskView
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
		assert.Equal(t, "In Progress", view.Status)
		require.NotNil(t, view.Duration)
		assert.Equal(t, "2.50 hours", *view.Duration)
	})

	t.Run("should reject an unknown status", func(t *testing.T) {
		s, tasks := setupServer(t)
		createTask(t, tasks, services.TaskInput{Description: "Original"})

		req := httptest.NewRequest(http.MethodPut, "/api/tasks/1",
			strings.NewReader(`{"status": "Done"}`))
		req.Header.Set("Content-Type", "application/json")

		rec := doRequest(t, s, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should reject a malformed body", func(t *testing.T) {
		s, tasks := setupServer(t)
		createTask(t, tasks, services.TaskInput{Description: "Original"})

		req := httptest.NewRequest(http.MethodPut, "/api/tasks/1",
			strings.NewReader(`{"todo": 42`))
		req.Header.Set("Content-Type", "application/json")

		rec := doRequest(t, s, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should return 404 for an unknown task", func(t *testing.T) {
		s, _ := setupServer(t)

		req := httptest.NewRequest(http.MethodPut, "/api/tasks/999",
			strings.NewReader(`{"todo": "Ghost"}`))
		req.Header.Set("Content-Type", "application/json")

		rec := doRequest(t, s, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestSummaryEndpoints(t *testing.T) {
	s, tasks := setupServer(t)

	// testNow is Wednesday 2024-01-17; its week began Sunday 2024-01-14.
	createTask(t, tasks, services.TaskInput{
		Description: "Today",
		StartTime:   "2024-01-17T09:00",
		EndTime:     "2024-01-17T10:30",
	})
	createTask(t, tasks, services.TaskInput{
		Description: "Monday",
		StartTime:   "2024-01-15T09:00",
		EndTime:     "2024-01-15T10:00",
	})

	t.Run("daily", func(t *testing.T) {
		rec := doRequest(t, s, httptest.NewRequest(http.MethodGet, "/summary/daily", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Total work today: 1 hours 30 minutes", body["message"])
	})

	t.Run("weekly", func(t *testing.T) {
		rec := doRequest(t, s, httptest.NewRequest(http.MethodGet, "/summary/weekly", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Total work this week (from 2024-01-14 to 2024-01-17): 2 hours 30 minutes", body["message"])
	})
}

func TestPing(t *testing.T) {
	s, _ := setupServer(t)

	rec := doRequest(t, s, httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "pong", body["message"])
}
