package domain

import (
	"todo-tracker/internal/repository/sqlite"
)

// TaskMapper handles conversion between domain and database Task models.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// ToDatabase converts a domain Task to a database Task.
func (m *TaskMapper) ToDatabase(domainTask Task) sqlite.Task {
	return sqlite.Task{
		ID:            domainTask.ID,
		Description:   domainTask.Description,
		Category:      domainTask.Category,
		StartTime:     domainTask.StartTime,
		EndTime:       domainTask.EndTime,
		DurationHours: domainTask.DurationHours,
		Status:        string(domainTask.Status),
		CreatedAt:     domainTask.CreatedAt,
	}
}

// FromDatabase converts a database Task to a domain Task.
func (m *TaskMapper) FromDatabase(dbTask sqlite.Task) Task {
	return Task{
		ID:            dbTask.ID,
		Description:   dbTask.Description,
		Category:      dbTask.Category,
		StartTime:     dbTask.StartTime,
		EndTime:       dbTask.EndTime,
		DurationHours: dbTask.DurationHours,
		Status:        Status(dbTask.Status),
		CreatedAt:     dbTask.CreatedAt,
	}
}

// FromDatabaseSlice converts a slice of database Tasks to domain Tasks.
func (m *TaskMapper) FromDatabaseSlice(dbTasks []*sqlite.Task) []*Task {
	domainTasks := make([]*Task, len(dbTasks))
	for i, task := range dbTasks {
		domainTask := m.FromDatabase(*task)
		domainTasks[i] = &domainTask
	}
	return domainTasks
}

// Mapper provides a unified interface for all mapping operations.
type Mapper struct {
	Task *TaskMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		Task: NewTaskMapper(),
	}
}
