package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveStatus(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		end      *time.Time
		expected Status
	}{
		{
			name:     "should stay pending without an end time",
			end:      nil,
			expected: StatusPending,
		},
		{
			name:     "should complete once the end time has passed",
			end:      timePtr(now.Add(-time.Hour)),
			expected: StatusCompleted,
		},
		{
			name:     "should stay pending while the end time is in the future",
			end:      timePtr(now.Add(time.Hour)),
			expected: StatusPending,
		},
		{
			name:     "should stay pending when the end time is exactly now",
			end:      &now,
			expected: StatusPending,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DeriveStatus(tt.end, now))
		})
	}
}

func TestStatusIsValid(t *testing.T) {
	assert.True(t, StatusPending.IsValid())
	assert.True(t, StatusInProgress.IsValid())
	assert.True(t, StatusCompleted.IsValid())
	assert.False(t, Status("Done").IsValid())
	assert.False(t, Status("").IsValid())
}

func TestNewTask(t *testing.T) {
	task := NewTask("Write report", "Work")

	assert.Equal(t, "Write report", task.Description)
	assert.Equal(t, "Work", task.Category)
	assert.Equal(t, StatusPending, task.Status)
	assert.Nil(t, task.StartTime)
	assert.Nil(t, task.EndTime)
	assert.Nil(t, task.DurationHours)
}

func TestTaskRecalculate(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 1, 11, 30, 0, 0, time.UTC)

	task := NewTask("Write report", "Work")
	task.StartTime = &start
	task.EndTime = &end
	task.Recalculate(now)

	require.NotNil(t, task.DurationHours)
	assert.InDelta(t, 2.5, *task.DurationHours, 1e-9)
	assert.Equal(t, StatusCompleted, task.Status)

	// Clearing the end time drops the duration and reverts to pending.
	task.EndTime = nil
	task.Recalculate(now)
	assert.Nil(t, task.DurationHours)
	assert.Equal(t, StatusPending, task.Status)
}

func TestTaskIsValid(t *testing.T) {
	task := NewTask("Write report", "Work")
	assert.True(t, task.IsValid())

	task.Description = ""
	assert.False(t, task.IsValid())

	task.Description = "Write report"
	task.Status = Status("Done")
	assert.False(t, task.IsValid())
}

func TestTaskIsScheduled(t *testing.T) {
	now := time.Now()
	task := NewTask("Write report", "Work")
	assert.False(t, task.IsScheduled())

	task.StartTime = &now
	assert.False(t, task.IsScheduled())

	task.EndTime = &now
	assert.True(t, task.IsScheduled())
}
