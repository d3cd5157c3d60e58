package cli

import (
	"context"
	"fmt"

	"todo-tracker/internal/services"
)

// AddTask creates a task from the given fields and prints the result.
// Timestamps are optional and use the same wire format as the web forms.
func (a *App) AddTask(ctx context.Context, description, category, start, end string) error {
	task, err := a.tasks.Create(ctx, services.TaskInput{
		Description: description,
		Category:    category,
		StartTime:   start,
		EndTime:     end,
	})
	if err != nil {
		return a.errors.Handle("add task", err)
	}

	fmt.Fprintf(a.out, "Added task %d\n", task.ID)
	a.printTask(task)
	return nil
}
