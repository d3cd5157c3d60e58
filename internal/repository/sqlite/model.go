package sqlite

import "time"

// Task represents a task row in the tasks table.
type Task struct {
	ID            int64
	Description   string
	Category      string
	StartTime     *time.Time // Using pointers to allow NULL values
	EndTime       *time.Time
	DurationHours *float64
	Status        string
	CreatedAt     time.Time
}
