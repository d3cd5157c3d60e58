package sqlite

import (
	"database/sql"
)

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanTask scans a single task from a database row
func ScanTask(scanner Scanner) (*Task, error) {
	task := &Task{}
	var category sql.NullString
	var startTime, endTime sql.NullTime
	var durationHours sql.NullFloat64

	err := scanner.Scan(
		&task.ID,
		&task.Description,
		&category,
		&startTime,
		&endTime,
		&durationHours,
		&task.Status,
		&task.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if category.Valid {
		task.Category = category.String
	}
	if startTime.Valid {
		task.StartTime = &startTime.Time
	}
	if endTime.Valid {
		task.EndTime = &endTime.Time
	}
	if durationHours.Valid {
		task.DurationHours = &durationHours.Float64
	}

	return task, nil
}

// ScanTasks scans multiple tasks from database rows
func ScanTasks(rows Rows) ([]*Task, error) {
	var tasks []*Task
	for rows.Next() {
		task, err := ScanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}
