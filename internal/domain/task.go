package domain

import (
	"time"
)

// Status is the lifecycle state of a task.
type Status string

const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
)

// IsValid checks if the status is one of the known lifecycle states.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// DeriveStatus returns the status implied by a task's end time: Completed
// once the end time is set and has passed relative to now, Pending otherwise.
// The In Progress state is only entered through the explicit start transition.
func DeriveStatus(end *time.Time, now time.Time) Status {
	if end != nil && now.After(*end) {
		return StatusCompleted
	}
	return StatusPending
}

// Task represents a to-do item in the domain model.
// This is a pure domain model without database-specific concerns.
type Task struct {
	ID            int64
	Description   string
	Category      string
	StartTime     *time.Time
	EndTime       *time.Time
	DurationHours *float64
	Status        Status
	CreatedAt     time.Time
}

// NewTask creates a new Task with the given description and category.
func NewTask(description, category string) Task {
	return Task{
		Description: description,
		Category:    category,
		Status:      StatusPending,
	}
}

// IsValid checks if the task has valid data.
func (t Task) IsValid() bool {
	return t.Description != "" && t.Status.IsValid()
}

// IsScheduled returns true if both timestamps are set.
func (t Task) IsScheduled() bool {
	return t.StartTime != nil && t.EndTime != nil
}

// Recalculate re-derives the duration and status from the current
// timestamps. Duration is never independently settable; it always equals
// the value recomputed here.
func (t *Task) Recalculate(now time.Time) {
	t.DurationHours = DurationHours(t.StartTime, t.EndTime)
	t.Status = DeriveStatus(t.EndTime, now)
}

// String returns the description for display purposes.
func (t Task) String() string {
	return t.Description
}
