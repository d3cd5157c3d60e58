package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"todo-tracker/internal/cli"
	"todo-tracker/internal/config"
	"todo-tracker/internal/logging"
	"todo-tracker/internal/repository/sqlite"
	"todo-tracker/internal/server"
	"todo-tracker/internal/services"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var addr string
	var dbPath string

	cmd := &cobra.Command{
		Use:   "todod",
		Short: "Task tracking web service",
		Long:  "todod serves a single-user task tracker: task CRUD, start/end transitions, daily and weekly work summaries, and a JSON task API.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(addr, dbPath)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	cmd.PersistentFlags().StringVar(&dbPath, "db", "", "database file path (overrides config)")

	cli.RegisterCommands(cmd, func() (*cli.App, func(), error) {
		return openApp(dbPath)
	})

	return cmd
}

// openApp builds the service stack for a one-shot maintenance command
// against the same database file the server uses.
func openApp(dbOverride string) (*cli.App, func(), error) {
	cfg, err := config.Load(".")
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	dbPath := cfg.GetDatabasePath()
	if dbOverride != "" {
		dbPath = dbOverride
	}

	repo, err := sqlite.New(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}

	app := cli.NewApp(services.NewTaskService(repo), services.NewSummaryService(repo))
	return app, func() { repo.Close() }, nil
}

func run(addrOverride, dbOverride string) error {
	cfg, err := config.Load(".")
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if addrOverride != "" {
		cfg.Server.Addr = addrOverride
	}

	log, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer log.Sync()

	dbPath := cfg.GetDatabasePath()
	if dbOverride != "" {
		dbPath = dbOverride
	}

	repo, err := sqlite.New(dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer repo.Close()

	taskService := services.NewTaskService(repo)
	summaryService := services.NewSummaryService(repo)

	srv := server.New(cfg, log, taskService, summaryService)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return srv.Run(ctx)
}
