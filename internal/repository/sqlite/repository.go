package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"todo-tracker/internal/errors"
	"todo-tracker/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// SearchOptions contains all possible task filter parameters
type SearchOptions struct {
	Category   *string    // exact category match
	StartFrom  *time.Time // inclusive lower bound on start_time
	StartUntil *time.Time // exclusive upper bound on start_time
}

// Repository defines the interface for database operations
type Repository interface {
	CreateTask(ctx context.Context, task *Task) error
	GetTask(ctx context.Context, id int64) (*Task, error)
	ListTasks(ctx context.Context, opts SearchOptions) ([]*Task, error)
	UpdateTask(ctx context.Context, task *Task) error
	DeleteTask(ctx context.Context, id int64) error

	// Utility
	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db *sql.DB
}

// New creates a new SQLite repository instance
func New(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	// Run migrations
	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// CreateTask creates a new task and assigns its ID
func (r *SQLiteRepository) CreateTask(ctx context.Context, task *Task) error {
	query := `
	INSERT INTO tasks (description, category, start_time, end_time, duration_hours, status, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?)`

	id, err := ExecuteWithLastInsertID(ctx, r.db, query,
		task.Description,
		task.Category,
		FormatTimePtrForDB(task.StartTime),
		FormatTimePtrForDB(task.EndTime),
		FormatFloatPtrForDB(task.DurationHours),
		task.Status,
		FormatTimeForDB(task.CreatedAt),
	)
	if err != nil {
		return err
	}

	task.ID = id
	return nil
}

// GetTask retrieves a task by ID
func (r *SQLiteRepository) GetTask(ctx context.Context, id int64) (*Task, error) {
	query := `
	SELECT id, description, category, start_time, end_time, duration_hours, status, created_at
	FROM tasks
	WHERE id = ?`

	return QuerySingle(ctx, r.db, query, ScanTask, "task", fmt.Sprintf("%d", id), id)
}

// ListTasks retrieves tasks matching the provided filter options.
// Without options it returns every task in insertion order.
func (r *SQLiteRepository) ListTasks(ctx context.Context, opts SearchOptions) ([]*Task, error) {
	var conditions []string
	var args []interface{}

	if opts.Category != nil {
		conditions = append(conditions, "category = ?")
		args = append(args, *opts.Category)
	}

	// A NULL start_time never satisfies either bound, so unscheduled tasks
	// fall out of date-windowed queries.
	if opts.StartFrom != nil {
		conditions = append(conditions, "start_time >= ?")
		args = append(args, FormatTimePtrForDB(opts.StartFrom))
	}
	if opts.StartUntil != nil {
		conditions = append(conditions, "start_time < ?")
		args = append(args, FormatTimePtrForDB(opts.StartUntil))
	}

	query := `
	SELECT id, description, category, start_time, end_time, duration_hours, status, created_at
	FROM tasks`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY id ASC"

	return QueryMultiple(ctx, r.db, query, ScanTasks, "tasks", args...)
}

// UpdateTask updates an existing task
func (r *SQLiteRepository) UpdateTask(ctx context.Context, task *Task) error {
	query := `
	UPDATE tasks
	SET description = ?, category = ?, start_time = ?, end_time = ?, duration_hours = ?, status = ?
	WHERE id = ?`

	return ExecuteWithRowsAffected(ctx, r.db, query, "task", fmt.Sprintf("%d", task.ID),
		task.Description,
		task.Category,
		FormatTimePtrForDB(task.StartTime),
		FormatTimePtrForDB(task.EndTime),
		FormatFloatPtrForDB(task.DurationHours),
		task.Status,
		task.ID,
	)
}

// DeleteTask deletes a task by ID
func (r *SQLiteRepository) DeleteTask(ctx context.Context, id int64) error {
	query := `DELETE FROM tasks WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "task", fmt.Sprintf("%d", id), id)
}
