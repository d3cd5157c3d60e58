package cli

import (
	"context"
	"fmt"
)

// ListTasks prints every task, optionally filtered by exact category match.
func (a *App) ListTasks(ctx context.Context, category string) error {
	tasks, err := a.tasks.List(ctx, category)
	if err != nil {
		return a.errors.Handle("list tasks", err)
	}

	if len(tasks) == 0 {
		fmt.Fprintln(a.out, "No tasks found")
		return nil
	}

	for _, task := range tasks {
		a.printTask(task)
	}

	return nil
}
