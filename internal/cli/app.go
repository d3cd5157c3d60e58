package cli

import (
	"fmt"
	"io"
	"os"

	"todo-tracker/internal/domain"
	"todo-tracker/internal/services"
	"todo-tracker/internal/validation"
)

// App bundles the services the maintenance commands operate on. Commands
// write to out so tests can capture their output.
type App struct {
	tasks     services.TaskService
	summaries services.SummaryService
	errors    *ErrorHandler
	out       io.Writer
}

// NewApp creates a CLI application writing to stdout.
func NewApp(tasks services.TaskService, summaries services.SummaryService) *App {
	return NewAppWithWriter(tasks, summaries, os.Stdout)
}

// NewAppWithWriter creates a CLI application with an explicit output writer.
func NewAppWithWriter(tasks services.TaskService, summaries services.SummaryService, out io.Writer) *App {
	return &App{
		tasks:     tasks,
		summaries: summaries,
		errors:    NewErrorHandler(),
		out:       out,
	}
}

// printTask prints one line per task in the format:
// [id] description (category) start - end [duration] status
func (a *App) printTask(task *domain.Task) {
	start := "unscheduled"
	if task.StartTime != nil {
		start = task.StartTime.Format(validation.TimestampLayout)
	}

	end := "open"
	if task.EndTime != nil {
		end = task.EndTime.Format(validation.TimestampLayout)
	}

	line := fmt.Sprintf("[%d] %s (%s) %s - %s", task.ID, task.Description, task.Category, start, end)
	if task.DurationHours != nil {
		line += fmt.Sprintf(" [%s]", domain.FormatDuration(*task.DurationHours))
	}
	line += " " + string(task.Status)

	fmt.Fprintln(a.out, line)
}
