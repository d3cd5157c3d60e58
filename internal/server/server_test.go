package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"todo-tracker/internal/config"
	"todo-tracker/internal/logging"
	"todo-tracker/internal/repository/sqlite"
	"todo-tracker/internal/services"
)

// testNow is a Wednesday, local wall clock like the wire timestamps.
var testNow = time.Date(2024, 1, 17, 12, 0, 0, 0, time.Local)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func setupServer(t *testing.T) (*Server, services.TaskService) {
	t.Helper()

	repo, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	clock := func() time.Time { return testNow }
	tasks := services.NewTaskServiceWithClock(repo, clock)
	summaries := services.NewSummaryServiceWithClock(repo, clock)

	cfg := config.Default()
	cfg.Server.Mode = "debug"
	cfg.Server.TemplateGlob = "../../web/templates/*.html"

	return New(cfg, logging.NewNop(), tasks, summaries), tasks
}

func createTask(t *testing.T, tasks services.TaskService, input services.TaskInput) int64 {
	t.Helper()
	task, err := tasks.Create(context.Background(), input)
	require.NoError(t, err)
	return task.ID
}

func doRequest(t *testing.T, s *Server, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.Engine().ServeHTTP(rec, req)
	return rec
}
