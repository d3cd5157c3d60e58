package services

import (
	"context"
	"time"

	"todo-tracker/internal/domain"
	"todo-tracker/internal/errors"
	"todo-tracker/internal/repository/sqlite"
	"todo-tracker/internal/validation"
)

// DefaultCategory is assigned when a task is created without a category.
const DefaultCategory = "General"

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	repo          sqlite.Repository
	mapper        *domain.Mapper
	taskValidator *validation.TaskValidator
	now           func() time.Time
}

// NewTaskService creates a new TaskService instance
func NewTaskService(repo sqlite.Repository) TaskService {
	return NewTaskServiceWithClock(repo, time.Now)
}

// NewTaskServiceWithClock creates a TaskService with an injectable clock
func NewTaskServiceWithClock(repo sqlite.Repository, now func() time.Time) TaskService {
	return &taskServiceImpl{
		repo:          repo,
		mapper:        domain.NewMapper(),
		taskValidator: validation.NewTaskValidator(),
		now:           now,
	}
}

// parseInput validates and parses the writable fields of a TaskInput.
func (t *taskServiceImpl) parseInput(input TaskInput) (string, *time.Time, *time.Time, error) {
	description, err := t.taskValidator.GetValidDescription(input.Description)
	if err != nil {
		return "", nil, nil, errors.NewValidationError("invalid task description", err)
	}

	start, err := t.taskValidator.ParseOptionalTimestamp("start_time", input.StartTime)
	if err != nil {
		return "", nil, nil, errors.NewInvalidInputError("start_time", input.StartTime, "must match "+validation.TimestampLayout)
	}

	end, err := t.taskValidator.ParseOptionalTimestamp("end_time", input.EndTime)
	if err != nil {
		return "", nil, nil, errors.NewInvalidInputError("end_time", input.EndTime, "must match "+validation.TimestampLayout)
	}

	return description, start, end, nil
}

// Create creates a new task, deriving its duration and initial status.
func (t *taskServiceImpl) Create(ctx context.Context, input TaskInput) (*domain.Task, error) {
	description, start, end, err := t.parseInput(input)
	if err != nil {
		return nil, err
	}

	category := input.Category
	if category == "" {
		category = DefaultCategory
	}

	task := domain.NewTask(description, category)
	task.StartTime = start
	task.EndTime = end
	task.CreatedAt = t.now()
	task.Recalculate(t.now())

	dbTask := t.mapper.Task.ToDatabase(task)
	if err := t.repo.CreateTask(ctx, &dbTask); err != nil {
		return nil, err
	}

	created := t.mapper.Task.FromDatabase(dbTask)
	return &created, nil
}

// Get retrieves a task by its ID
func (t *taskServiceImpl) Get(ctx context.Context, id int64) (*domain.Task, error) {
	if err := t.taskValidator.ValidateTaskID(id); err != nil {
		return nil, errors.NewValidationError("invalid task ID", err)
	}

	dbTask, err := t.repo.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	task := t.mapper.Task.FromDatabase(*dbTask)
	return &task, nil
}

// List returns all tasks, or only those whose category exactly matches
// the filter when one is supplied.
func (t *taskServiceImpl) List(ctx context.Context, category string) ([]*domain.Task, error) {
	opts := sqlite.SearchOptions{}
	if category != "" {
		opts.Category = &category
	}

	dbTasks, err := t.repo.ListTasks(ctx, opts)
	if err != nil {
		return nil, err
	}

	return t.mapper.Task.FromDatabaseSlice(dbTasks), nil
}

// Update overwrites a task's writable fields and re-derives duration and
// status from the new timestamps.
func (t *taskServiceImpl) Update(ctx context.Context, id int64, input TaskInput) (*domain.Task, error) {
	if err := t.taskValidator.ValidateTaskID(id); err != nil {
		return nil, errors.NewValidationError("invalid task ID", err)
	}

	description, start, end, err := t.parseInput(input)
	if err != nil {
		return nil, err
	}

	dbTask, err := t.repo.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	task := t.mapper.Task.FromDatabase(*dbTask)
	task.Description = description
	task.Category = input.Category
	task.StartTime = start
	task.EndTime = end
	task.Recalculate(t.now())

	updated := t.mapper.Task.ToDatabase(task)
	if err := t.repo.UpdateTask(ctx, &updated); err != nil {
		return nil, err
	}

	return &task, nil
}

// Delete removes a task by ID
func (t *taskServiceImpl) Delete(ctx context.Context, id int64) error {
	if err := t.taskValidator.ValidateTaskID(id); err != nil {
		return errors.NewValidationError("invalid task ID", err)
	}

	return t.repo.DeleteTask(ctx, id)
}

// Start sets the task's start time to now and marks it In Progress.
// An existing start time is overwritten.
func (t *taskServiceImpl) Start(ctx context.Context, id int64) (*domain.Task, error) {
	if err := t.taskValidator.ValidateTaskID(id); err != nil {
		return nil, errors.NewValidationError("invalid task ID", err)
	}

	dbTask, err := t.repo.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	now := t.now()
	task := t.mapper.Task.FromDatabase(*dbTask)
	task.StartTime = &now
	task.DurationHours = domain.DurationHours(task.StartTime, task.EndTime)
	task.Status = domain.StatusInProgress

	updated := t.mapper.Task.ToDatabase(task)
	if err := t.repo.UpdateTask(ctx, &updated); err != nil {
		return nil, err
	}

	return &task, nil
}

// End sets the task's end time to now, recomputes the duration and marks
// it Completed unconditionally. The start time is not checked.
func (t *taskServiceImpl) End(ctx context.Context, id int64) (*domain.Task, error) {
	if err := t.taskValidator.ValidateTaskID(id); err != nil {
		return nil, errors.NewValidationError("invalid task ID", err)
	}

	dbTask, err := t.repo.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	now := t.now()
	task := t.mapper.Task.FromDatabase(*dbTask)
	task.EndTime = &now
	task.DurationHours = domain.DurationHours(task.StartTime, task.EndTime)
	task.Status = domain.StatusCompleted

	updated := t.mapper.Task.ToDatabase(task)
	if err := t.repo.UpdateTask(ctx, &updated); err != nil {
		return nil, err
	}

	return &task, nil
}

// Patch applies a partial update. Unspecified fields retain their prior
// value, status included; duration is always recomputed from the
// resulting timestamps. When status is supplied it is applied verbatim
// as a manual override, which can desynchronize it from the
// timestamp-derived value.
func (t *taskServiceImpl) Patch(ctx context.Context, id int64, patch TaskPatch) (*domain.Task, error) {
	if err := t.taskValidator.ValidateTaskID(id); err != nil {
		return nil, errors.NewValidationError("invalid task ID", err)
	}

	dbTask, err := t.repo.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	task := t.mapper.Task.FromDatabase(*dbTask)

	if patch.Description != nil {
		description, err := t.taskValidator.GetValidDescription(*patch.Description)
		if err != nil {
			return nil, errors.NewValidationError("invalid task description", err)
		}
		task.Description = description
	}

	if patch.Category != nil {
		task.Category = *patch.Category
	}

	if patch.StartTime != nil {
		start, err := t.taskValidator.ParseOptionalTimestamp("start_time", *patch.StartTime)
		if err != nil {
			return nil, errors.NewInvalidInputError("start_time", *patch.StartTime, "must match "+validation.TimestampLayout)
		}
		task.StartTime = start
	}

	if patch.EndTime != nil {
		end, err := t.taskValidator.ParseOptionalTimestamp("end_time", *patch.EndTime)
		if err != nil {
			return nil, errors.NewInvalidInputError("end_time", *patch.EndTime, "must match "+validation.TimestampLayout)
		}
		task.EndTime = end
	}

	task.DurationHours = domain.DurationHours(task.StartTime, task.EndTime)

	if patch.Status != nil {
		if err := t.taskValidator.ValidateStatus(*patch.Status); err != nil {
			return nil, errors.NewInvalidInputError("status", *patch.Status, "unknown status")
		}
		task.Status = domain.Status(*patch.Status)
	}

	updated := t.mapper.Task.ToDatabase(task)
	if err := t.repo.UpdateTask(ctx, &updated); err != nil {
		return nil, err
	}

	return &task, nil
}
