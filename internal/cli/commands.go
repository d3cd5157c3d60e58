package cli

import (
	"strconv"

	"github.com/spf13/cobra"
)

// OpenApp opens the application stack for one command invocation. The
// returned closer releases the underlying database handle.
type OpenApp func() (*App, func(), error)

// RegisterCommands attaches the maintenance subcommands to the root
// command. Each invocation opens its own application stack so the
// commands work against the same database file the server uses.
func RegisterCommands(root *cobra.Command, open OpenApp) {
	root.AddCommand(
		newListCommand(open),
		newAddCommand(open),
		newStartCommand(open),
		newEndCommand(open),
		newDeleteCommand(open),
		newSummaryCommand(open),
	)
}

func withApp(open OpenApp, fn func(*cobra.Command, *App) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		app, closer, err := open()
		if err != nil {
			return err
		}
		defer closer()

		return fn(cmd, app)
	}
}

func newListCommand(open OpenApp) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: withApp(open, func(cmd *cobra.Command, app *App) error {
			return app.ListTasks(cmd.Context(), category)
		}),
	}

	cmd.Flags().StringVar(&category, "category", "", "filter by exact category")
	return cmd
}

func newAddCommand(open OpenApp) *cobra.Command {
	var category, start, end string

	cmd := &cobra.Command{
		Use:   "add <description>",
		Short: "Add a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(open, func(cmd *cobra.Command, app *App) error {
				return app.AddTask(cmd.Context(), args[0], category, start, end)
			})(cmd, args)
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "task category")
	cmd.Flags().StringVar(&start, "start", "", "start time (2006-01-02T15:04)")
	cmd.Flags().StringVar(&end, "end", "", "end time (2006-01-02T15:04)")
	return cmd
}

func newStartCommand(open OpenApp) *cobra.Command {
	return newIDCommand(open, "start <id>", "Start working on a task",
		func(cmd *cobra.Command, app *App, id int64) error {
			return app.StartTask(cmd.Context(), id)
		})
}

func newEndCommand(open OpenApp) *cobra.Command {
	return newIDCommand(open, "end <id>", "Finish working on a task",
		func(cmd *cobra.Command, app *App, id int64) error {
			return app.EndTask(cmd.Context(), id)
		})
}

func newDeleteCommand(open OpenApp) *cobra.Command {
	return newIDCommand(open, "delete <id>", "Delete a task",
		func(cmd *cobra.Command, app *App, id int64) error {
			return app.DeleteTask(cmd.Context(), id)
		})
}

func newIDCommand(open OpenApp, use, short string, fn func(*cobra.Command, *App, int64) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return err
			}

			return withApp(open, func(cmd *cobra.Command, app *App) error {
				return fn(cmd, app, id)
			})(cmd, args)
		},
	}
}

func newSummaryCommand(open OpenApp) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Report worked time",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "daily",
		Short: "Total work today",
		RunE: withApp(open, func(cmd *cobra.Command, app *App) error {
			return app.DailySummary(cmd.Context())
		}),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "weekly",
		Short: "Total work since Sunday",
		RunE: withApp(open, func(cmd *cobra.Command, app *App) error {
			return app.WeeklySummary(cmd.Context())
		}),
	})

	return cmd
}
