package cli

import (
	"context"
	"fmt"
)

// StartTask sets a task's start time to now and marks it In Progress.
func (a *App) StartTask(ctx context.Context, id int64) error {
	task, err := a.tasks.Start(ctx, id)
	if err != nil {
		return a.errors.Handle("start task", err)
	}

	a.printTask(task)
	return nil
}

// EndTask sets a task's end time to now and marks it Completed.
func (a *App) EndTask(ctx context.Context, id int64) error {
	task, err := a.tasks.End(ctx, id)
	if err != nil {
		return a.errors.Handle("end task", err)
	}

	a.printTask(task)
	return nil
}

// DeleteTask removes a task by ID.
func (a *App) DeleteTask(ctx context.Context, id int64) error {
	if err := a.tasks.Delete(ctx, id); err != nil {
		return a.errors.Handle("delete task", err)
	}

	fmt.Fprintf(a.out, "Deleted task %d\n", id)
	return nil
}
