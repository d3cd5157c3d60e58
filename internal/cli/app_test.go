package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-tracker/internal/repository/sqlite"
	"todo-tracker/internal/services"
)

// cliNow is a Wednesday, local wall clock like the wire timestamps.
var cliNow = time.Date(2024, 1, 17, 12, 0, 0, 0, time.Local)

func setupApp(t *testing.T) (*App, *bytes.Buffer) {
	t.Helper()

	repo, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	clock := func() time.Time { return cliNow }
	tasks := services.NewTaskServiceWithClock(repo, clock)
	summaries := services.NewSummaryServiceWithClock(repo, clock)

	var out bytes.Buffer
	return NewAppWithWriter(tasks, summaries, &out), &out
}

func TestAddTask(t *testing.T) {
	app, out := setupApp(t)
	ctx := context.Background()

	err := app.AddTask(ctx, "Write report", "Work", "2024-01-01T09:00", "2024-01-01T11:30")
	require.NoError(t, err)

	output := out.String()
	assert.Contains(t, output, "Added task 1")
	assert.Contains(t, output, "Write report")
	assert.Contains(t, output, "(Work)")
	assert.Contains(t, output, "[2.50 hours]")
	assert.Contains(t, output, "Completed")
}

func TestAddTask_InvalidInput(t *testing.T) {
	app, _ := setupApp(t)

	err := app.AddTask(context.Background(), "", "", "", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to add task")
}

func TestListTasks(t *testing.T) {
	app, out := setupApp(t)
	ctx := context.Background()

	t.Run("should report when there are no tasks", func(t *testing.T) {
		require.NoError(t, app.ListTasks(ctx, ""))
		assert.Contains(t, out.String(), "No tasks found")
		out.Reset()
	})

	require.NoError(t, app.AddTask(ctx, "Write report", "Work", "", ""))
	require.NoError(t, app.AddTask(ctx, "Buy groceries", "Errands", "", ""))
	out.Reset()

	t.Run("should list all tasks", func(t *testing.T) {
		require.NoError(t, app.ListTasks(ctx, ""))
		output := out.String()
		assert.Contains(t, output, "Write report")
		assert.Contains(t, output, "Buy groceries")
		assert.Contains(t, output, "unscheduled - open")
		out.Reset()
	})

	t.Run("should filter by category", func(t *testing.T) {
		require.NoError(t, app.ListTasks(ctx, "Work"))
		output := out.String()
		assert.Contains(t, output, "Write report")
		assert.NotContains(t, output, "Buy groceries")
		out.Reset()
	})
}

func TestStartAndEndTask(t *testing.T) {
	app, out := setupApp(t)
	ctx := context.Background()

	require.NoError(t, app.AddTask(ctx, "Track me", "", "", ""))
	out.Reset()

	require.NoError(t, app.StartTask(ctx, 1))
	assert.Contains(t, out.String(), "In Progress")
	out.Reset()

	require.NoError(t, app.EndTask(ctx, 1))
	assert.Contains(t, out.String(), "Completed")
}

func TestDeleteTask(t *testing.T) {
	app, out := setupApp(t)
	ctx := context.Background()

	require.NoError(t, app.AddTask(ctx, "Disposable", "", "", ""))
	out.Reset()

	require.NoError(t, app.DeleteTask(ctx, 1))
	assert.Contains(t, out.String(), "Deleted task 1")

	err := app.DeleteTask(ctx, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to delete task")
	assert.Contains(t, err.Error(), "not found")
}

func TestSummaries(t *testing.T) {
	app, out := setupApp(t)
	ctx := context.Background()

	// cliNow is Wednesday 2024-01-17; its week began Sunday 2024-01-14.
	require.NoError(t, app.AddTask(ctx, "Today", "", "2024-01-17T09:00", "2024-01-17T10:30"))
	require.NoError(t, app.AddTask(ctx, "Monday", "", "2024-01-15T09:00", "2024-01-15T10:00"))
	out.Reset()

	require.NoError(t, app.DailySummary(ctx))
	assert.Contains(t, out.String(), "Total work today: 1 hours 30 minutes")
	out.Reset()

	require.NoError(t, app.WeeklySummary(ctx))
	assert.Contains(t, out.String(), "Total work this week (from 2024-01-14 to 2024-01-17): 2 hours 30 minutes")
}
