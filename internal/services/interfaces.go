package services

import (
	"context"
	"time"

	"todo-tracker/internal/domain"
)

// TaskInput carries the full set of writable task fields for create and
// full-update operations. Timestamps are wire-format strings
// ("2006-01-02T15:04"); empty means unset.
type TaskInput struct {
	Description string
	Category    string
	StartTime   string
	EndTime     string
}

// TaskPatch carries a partial update: nil fields retain their prior
// value, status included. Status, when supplied, is applied as an
// explicit override of the timestamp-derived status.
type TaskPatch struct {
	Description *string
	Category    *string
	StartTime   *string
	EndTime     *string
	Status      *string
}

// WorkSummary is the aggregate of worked time across a date window.
type WorkSummary struct {
	From    time.Time
	To      time.Time
	Hours   int
	Minutes int
	Message string
}

// TaskService handles the task lifecycle: CRUD, the start/end transitions
// and partial updates. Every mutation recomputes the duration from the
// resulting timestamps; create and full update also re-derive the status.
type TaskService interface {
	Create(ctx context.Context, input TaskInput) (*domain.Task, error)
	Get(ctx context.Context, id int64) (*domain.Task, error)
	List(ctx context.Context, category string) ([]*domain.Task, error)
	Update(ctx context.Context, id int64, input TaskInput) (*domain.Task, error)
	Delete(ctx context.Context, id int64) error

	Start(ctx context.Context, id int64) (*domain.Task, error)
	End(ctx context.Context, id int64) (*domain.Task, error)
	Patch(ctx context.Context, id int64, patch TaskPatch) (*domain.Task, error)
}

// SummaryService aggregates worked time across tasks by start date.
type SummaryService interface {
	DailySummary(ctx context.Context) (*WorkSummary, error)
	WeeklySummary(ctx context.Context) (*WorkSummary, error)
}
