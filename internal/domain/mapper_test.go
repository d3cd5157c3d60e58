package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"todo-tracker/internal/repository/sqlite"
)

func TestTaskMapperRoundTrip(t *testing.T) {
	mapper := NewTaskMapper()

	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 1, 11, 30, 0, 0, time.UTC)
	hours := 2.5
	created := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)

	domainTask := Task{
		ID:            7,
		Description:   "Write report",
		Category:      "Work",
		StartTime:     &start,
		EndTime:       &end,
		DurationHours: &hours,
		Status:        StatusCompleted,
		CreatedAt:     created,
	}

	dbTask := mapper.ToDatabase(domainTask)
	assert.Equal(t, domainTask.ID, dbTask.ID)
	assert.Equal(t, domainTask.Description, dbTask.Description)
	assert.Equal(t, string(domainTask.Status), dbTask.Status)

	back := mapper.FromDatabase(dbTask)
	assert.Equal(t, domainTask, back)
}

func TestTaskMapperNilFields(t *testing.T) {
	mapper := NewTaskMapper()

	dbTask := sqlite.Task{
		ID:          1,
		Description: "Buy groceries",
		Status:      "Pending",
	}

	domainTask := mapper.FromDatabase(dbTask)
	assert.Nil(t, domainTask.StartTime)
	assert.Nil(t, domainTask.EndTime)
	assert.Nil(t, domainTask.DurationHours)
	assert.Equal(t, StatusPending, domainTask.Status)
}

func TestTaskMapperFromDatabaseSlice(t *testing.T) {
	mapper := NewTaskMapper()

	dbTasks := []*sqlite.Task{
		{ID: 1, Description: "First", Status: "Pending"},
		{ID: 2, Description: "Second", Status: "Completed"},
	}

	domainTasks := mapper.FromDatabaseSlice(dbTasks)
	assert.Len(t, domainTasks, 2)
	assert.Equal(t, int64(1), domainTasks[0].ID)
	assert.Equal(t, "Second", domainTasks[1].Description)
	assert.Equal(t, StatusCompleted, domainTasks[1].Status)
}
