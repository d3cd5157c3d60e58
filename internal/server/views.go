package server

import (
	"time"

	"todo-tracker/internal/domain"
	"todo-tracker/internal/validation"
)

// TaskView is the presentation form of a task, shared by the JSON API and
// the HTML templates. Timestamps are rendered at minute precision and the
// duration carries both the raw fractional-hour value and the formatted
// string, so arithmetic stays on the number and display on the string.
type TaskView struct {
	ID            int64    `json:"id"`
	Todo          string   `json:"todo"`
	Category      string   `json:"category"`
	StartTime     *string  `json:"start_time"`
	EndTime       *string  `json:"end_time"`
	Duration      *string  `json:"duration"`
	DurationHours *float64 `json:"duration_hours"`
	Status        string   `json:"status"`
	CreatedAt     string   `json:"created_at"`
}

// NewTaskView converts a domain task to its presentation form.
func NewTaskView(task *domain.Task) TaskView {
	view := TaskView{
		ID:            task.ID,
		Todo:          task.Description,
		Category:      task.Category,
		DurationHours: task.DurationHours,
		Status:        string(task.Status),
		CreatedAt:     task.CreatedAt.Format(validation.TimestampLayout),
	}

	view.StartTime = formatTimePtr(task.StartTime)
	view.EndTime = formatTimePtr(task.EndTime)

	if task.DurationHours != nil {
		formatted := domain.FormatDuration(*task.DurationHours)
		view.Duration = &formatted
	}

	return view
}

// NewTaskViews converts a slice of domain tasks to presentation form.
func NewTaskViews(tasks []*domain.Task) []TaskView {
	views := make([]TaskView, len(tasks))
	for i, task := range tasks {
		views[i] = NewTaskView(task)
	}
	return views
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(validation.TimestampLayout)
	return &formatted
}
